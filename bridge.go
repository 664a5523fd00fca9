package formbridge

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
)

// Bridge wires a resolved validator into an editing context. It is
// created by Attach and holds no state between validation passes beyond
// the attached context, the resolved root validator, and its own
// message-store partition.
type Bridge struct {
	ec        *EditingContext
	validator Validator
	registry  *Registry
	children  ChildValidators
	store     *MessageStore
	log       *slog.Logger
}

// Option configures a Bridge at attach time.
type Option func(*Bridge)

// WithValidator supplies an inlined root validator, taking precedence
// over registry and child-map resolution.
func WithValidator(v Validator) Option {
	return func(b *Bridge) { b.validator = v }
}

// WithRegistry supplies the validator registry used to resolve the root
// validator and nested-model validators.
func WithRegistry(r *Registry) Option {
	return func(b *Bridge) { b.registry = r }
}

// WithChildValidators supplies explicit per-type validators for nested
// and array-element models that the registry cannot resolve. Entries
// here win over registry entries for nested types.
func WithChildValidators(cv ChildValidators) Option {
	return func(b *Bridge) { b.children = cv }
}

// WithLogger sets the logger used for attach and per-pass debug traces.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bridge) {
		if l != nil {
			b.log = l
		}
	}
}

// Attach resolves a validator for the context's model type and
// subscribes the bridge to the context's validation events. Resolution
// order: inlined validator, then registry entry for the model type,
// then child-validator-map entry.
//
// Resolution failure is a configuration error, not a validation
// failure: it surfaces here, immediately, so a missing registration
// never produces a silently empty-valid form.
func Attach(ec *EditingContext, opts ...Option) (*Bridge, error) {
	if ec == nil {
		return nil, ErrNilContext
	}

	b := &Bridge{ec: ec, log: slog.Default()}
	for _, opt := range opts {
		opt(b)
	}

	t, err := modelType(ec.Model())
	if err != nil {
		return nil, err
	}

	if b.validator == nil {
		if v, ok := b.registry.Resolve(t); ok {
			b.validator = v
		} else if v, ok := b.children[t]; ok {
			b.validator = v
		}
	}
	if b.validator == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoValidator, t)
	}

	b.store = ec.NewMessageStore()
	ec.OnValidationRequested(b.Validate)

	b.log.Debug("validator bridge attached",
		slog.String("bridge_id", b.store.ID()),
		slog.String("model_type", t.String()))
	return b, nil
}

// MessageStore exposes the bridge's own partition, mainly for
// inspection in tests and diagnostics.
func (b *Bridge) MessageStore() *MessageStore { return b.store }

// Validate runs the resolved validator against the current model
// snapshot, then recursively validates nested and array-element models
// through the child-map/registry mechanism. On success it replaces the
// bridge's messages with the new violation set and notifies state
// listeners exactly once, even when nothing changed.
//
// A validator execution fault is returned as-is and leaves the message
// store untouched: the form stays in its previous, now indeterminate,
// state until the caller resolves the fault.
func (b *Bridge) Validate(ctx context.Context, trigger Trigger) error {
	model := b.ec.Model()

	violations, err := b.validator.Validate(ctx, model)
	if err != nil {
		return err
	}

	root := reflect.ValueOf(model)
	for root.Kind() == reflect.Pointer && !root.IsNil() {
		root = root.Elem()
	}
	if root.Kind() == reflect.Struct {
		nested, err := b.walkNested(ctx, root, "")
		if err != nil {
			return err
		}
		violations = append(violations, nested...)
	}

	b.store.Clear()
	for _, v := range violations {
		b.store.Add(v.Path, v.Message)
	}
	b.ec.NotifyValidationStateChanged()

	b.log.Debug("validation pass complete",
		slog.String("bridge_id", b.store.ID()),
		slog.String("trigger", trigger.String()),
		slog.Int("violations", len(violations)))
	return nil
}

// walkNested scans the exported fields of a struct value for nested
// models: struct fields, and slices or arrays of structs. Pointers are
// followed; nil pointers are skipped.
func (b *Bridge) walkNested(ctx context.Context, v reflect.Value, prefix string) (Violations, error) {
	var out Violations
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		path := JoinPath(prefix, fieldPathName(sf))

		fv := v.Field(i)
		for fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				break
			}
			fv = fv.Elem()
		}

		switch fv.Kind() {
		case reflect.Struct:
			vs, err := b.validateSub(ctx, fv, path)
			if err != nil {
				return nil, err
			}
			out = append(out, vs...)
		case reflect.Slice, reflect.Array:
			for j := 0; j < fv.Len(); j++ {
				ev := fv.Index(j)
				for ev.Kind() == reflect.Pointer && !ev.IsNil() {
					ev = ev.Elem()
				}
				if ev.Kind() == reflect.Pointer {
					// nil element; later elements still validate
					continue
				}
				if ev.Kind() != reflect.Struct {
					break
				}
				vs, err := b.validateSub(ctx, ev, IndexPath(path, j))
				if err != nil {
					return nil, err
				}
				out = append(out, vs...)
			}
		}
	}
	return out, nil
}

// validateSub validates one nested model value. A type with no
// resolvable validator skips the entire subtree, deeper levels
// included.
func (b *Bridge) validateSub(ctx context.Context, v reflect.Value, path string) (Violations, error) {
	val, ok := b.resolveChild(v.Type())
	if !ok {
		return nil, nil
	}

	vs, err := val.Validate(ctx, v.Interface())
	if err != nil {
		return nil, err
	}

	out := make(Violations, 0, len(vs))
	for _, viol := range vs {
		out = append(out, Violation{Path: JoinPath(path, viol.Path), Message: viol.Message})
	}

	deeper, err := b.walkNested(ctx, v, path)
	if err != nil {
		return nil, err
	}
	return append(out, deeper...), nil
}

// resolveChild resolves a nested-model validator: explicit child map
// first, registry second.
func (b *Bridge) resolveChild(t reflect.Type) (Validator, bool) {
	if v, ok := b.children[t]; ok {
		return v, true
	}
	return b.registry.Resolve(t)
}
