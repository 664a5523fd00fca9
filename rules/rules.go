// Package rules provides a declarative, type-safe rule library that
// plugs into formbridge as a validator backend. Each helper constructs
// a small Rule value pairing a field path with a check against the
// model snapshot; Model assembles rules into a formbridge.Validator.
//
// Rules are evaluated without cascading: every rule runs on every pass
// and all failures are reported together. Cascade policies belong to
// the backing validation library, not to this package.
//
//	var signup = rules.Model(
//		rules.Required("name", func(s Signup) string { return s.Name }),
//		rules.Email("email", func(s Signup) string { return s.Email }),
//		rules.MinLen("password", func(s Signup) string { return s.Password }, 8),
//	)
package rules

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/dmitrymomot/formbridge"
)

// Numeric covers the built-in number kinds accepted by Min and Max.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule checks one aspect of a model of type T. A false result yields a
// violation at Path with Message; a non-nil error is an execution fault
// that aborts the whole pass.
type Rule[T any] struct {
	Path    string
	Message string
	Check   func(ctx context.Context, model T) (bool, error)
}

func pure[T any](path, message string, check func(T) bool) Rule[T] {
	return Rule[T]{
		Path:    path,
		Message: message,
		Check: func(_ context.Context, m T) (bool, error) {
			return check(m), nil
		},
	}
}

// Required fails when the field is empty or whitespace-only.
func Required[T any](path string, field func(T) string) Rule[T] {
	return pure(path, "field is required", func(m T) bool {
		return strings.TrimSpace(field(m)) != ""
	})
}

// MinLen fails when the field is shorter than min runes.
func MinLen[T any](path string, field func(T) string, min int) Rule[T] {
	msg := fmt.Sprintf("must be at least %d characters long", min)
	return pure(path, msg, func(m T) bool {
		return len([]rune(field(m))) >= min
	})
}

// MaxLen fails when the field is longer than max runes.
func MaxLen[T any](path string, field func(T) string, max int) Rule[T] {
	msg := fmt.Sprintf("must be at most %d characters long", max)
	return pure(path, msg, func(m T) bool {
		return len([]rune(field(m))) <= max
	})
}

// Email fails when the field is not a plausible email address for
// typical web use. Empty values pass; combine with Required when the
// field is mandatory.
func Email[T any](path string, field func(T) string) Rule[T] {
	return pure(path, "must be a valid email address", func(m T) bool {
		value := strings.TrimSpace(field(m))
		if value == "" {
			return true
		}
		addr, err := mail.ParseAddress(value)
		if err != nil || addr.Address != value {
			return false
		}
		_, domain, ok := strings.Cut(addr.Address, "@")
		return ok && strings.Contains(domain, ".")
	})
}

// Min fails when the field is below the given bound.
func Min[T any, N Numeric](path string, field func(T) N, min N) Rule[T] {
	msg := fmt.Sprintf("must be at least %v", min)
	return pure(path, msg, func(m T) bool {
		return field(m) >= min
	})
}

// Max fails when the field exceeds the given bound.
func Max[T any, N Numeric](path string, field func(T) N, max N) Rule[T] {
	msg := fmt.Sprintf("must be at most %v", max)
	return pure(path, msg, func(m T) bool {
		return field(m) <= max
	})
}

// Match fails when the field does not match the pattern. Empty values
// pass; combine with Required when the field is mandatory.
func Match[T any](path string, field func(T) string, re *regexp.Regexp, message string) Rule[T] {
	return pure(path, message, func(m T) bool {
		value := field(m)
		return value == "" || re.MatchString(value)
	})
}

// Func adapts a custom check, including context-aware ones such as
// remote uniqueness lookups. An error return is propagated as an
// execution fault, never converted into a violation.
func Func[T any](path, message string, check func(ctx context.Context, model T) (bool, error)) Rule[T] {
	return Rule[T]{Path: path, Message: message, Check: check}
}

type modelValidator[T any] struct {
	rules []Rule[T]
}

// Model assembles rules into a validator for model type T. The
// resulting validator accepts both T and *T snapshots.
func Model[T any](rules ...Rule[T]) formbridge.Validator {
	return modelValidator[T]{rules: rules}
}

func (mv modelValidator[T]) Validate(ctx context.Context, model any) (formbridge.Violations, error) {
	m, err := snapshot[T](model)
	if err != nil {
		return nil, err
	}

	var out formbridge.Violations
	for _, r := range mv.rules {
		ok, err := r.Check(ctx, m)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.Path, err)
		}
		if !ok {
			out = append(out, formbridge.Violation{Path: r.Path, Message: r.Message})
		}
	}
	return out, nil
}

func snapshot[T any](model any) (T, error) {
	switch m := model.(type) {
	case T:
		return m, nil
	case *T:
		if m != nil {
			return *m, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("rules: cannot validate %T with a %T validator", model, zero)
}
