package formbridge

import (
	"reflect"
	"sync"
)

// Registry maps model types to validator instances. It is populated at
// startup through static Register calls and read-only from the bridge's
// perspective afterwards; the mutex only keeps concurrent registration
// during init safe.
type Registry struct {
	mu         sync.RWMutex
	validators map[reflect.Type]Validator
}

func NewRegistry() *Registry {
	return &Registry{validators: make(map[reflect.Type]Validator)}
}

// Register binds a validator to model type T. Registering twice for the
// same type replaces the earlier entry: last registered wins.
func Register[T any](r *Registry, v Validator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.validators[TypeOf[T]()] = v
}

// Resolve looks up the validator registered for a model type.
func (r *Registry) Resolve(t reflect.Type) (Validator, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.validators[t]
	return v, ok
}

// ResolveFor looks up the validator for a model instance's type,
// following pointers.
func (r *Registry) ResolveFor(model any) (Validator, bool) {
	t, err := modelType(model)
	if err != nil {
		return nil, false
	}
	return r.Resolve(t)
}

// ChildValidators is an explicit mapping from nested-model type to
// validator instance, supplied by the form author when automatic
// registry resolution is unavailable. Treated as immutable once passed
// to Attach.
//
// Build a single entry with Child, or compose several with TypeOf:
//
//	formbridge.ChildValidators{
//		formbridge.TypeOf[Address](): addressValidator,
//		formbridge.TypeOf[Item]():    itemValidator,
//	}
type ChildValidators map[reflect.Type]Validator

// Child builds a single-entry ChildValidators map for model type T, so
// callers never touch reflect directly.
func Child[T any](v Validator) ChildValidators {
	return ChildValidators{TypeOf[T](): v}
}

// TypeOf returns the reflect.Type key for model type T, resolved once
// at the call site so lookups never reflect over instances.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// modelType dereferences pointers down to the underlying struct type.
func modelType(model any) (reflect.Type, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	t := reflect.TypeOf(model)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, ErrNotStruct
	}
	return t, nil
}
