// Package playground adapts github.com/go-playground/validator/v10 to
// the formbridge.Validator interface, so struct-tag rule sets can back
// a bridge without any glue in the form code.
//
//	registry := formbridge.NewRegistry()
//	formbridge.Register[Signup](registry, playground.New())
//
// Violation paths are rewritten from the validator's namespace notation
// into the editing context's notation: the root segment is dropped and
// field segments use json tag names, so "Signup.Items[2].SKU" becomes
// "items[2].sku".
package playground

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/formbridge"
)

// Adapter wraps a *validator.Validate as a formbridge.Validator.
type Adapter struct {
	v *validator.Validate
}

// New builds an adapter around a fresh validator instance configured
// for bridge use: required-struct handling enabled and json tag names
// reported in namespaces.
func New() *Adapter {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(sf reflect.StructField) string {
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return sf.Name
		}
		return name
	})
	return &Adapter{v: v}
}

// Wrap adapts a caller-configured validator instance as-is. The caller
// is responsible for registering a tag-name function if violation paths
// should match json-tagged field identifiers.
func Wrap(v *validator.Validate) *Adapter {
	return &Adapter{v: v}
}

// Validate runs struct-tag validation against the model snapshot.
// Tag failures translate to violations; anything else, including
// *validator.InvalidValidationError for unvalidatable values, is an
// execution fault and propagates.
func (a *Adapter) Validate(ctx context.Context, model any) (formbridge.Violations, error) {
	err := a.v.StructCtx(ctx, model)
	if err == nil {
		return nil, nil
	}

	var ferrs validator.ValidationErrors
	if !errors.As(err, &ferrs) {
		return nil, err
	}

	out := make(formbridge.Violations, 0, len(ferrs))
	for _, fe := range ferrs {
		out = append(out, formbridge.Violation{
			Path:    trimRootSegment(fe.Namespace()),
			Message: message(fe),
		})
	}
	return out, nil
}

// trimRootSegment drops the leading struct name from a namespace, since
// the editing context's paths are rooted at the model itself.
func trimRootSegment(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("must have length %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
