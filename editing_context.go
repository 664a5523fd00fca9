package formbridge

import "context"

// ValidationHandler is invoked by the editing context whenever a
// field-change or submit event requests validation. A non-nil error is
// an execution fault from a validator and aborts the event.
type ValidationHandler func(ctx context.Context, trigger Trigger) error

// EditingContext is the live binding between a form and its backing
// model: the mutable model instance, the shared message store, and the
// event listeners that drive validation. It is owned by the surrounding
// form component and lives as long as the form does.
//
// The context is single-owner: all calls are expected to happen on the
// hosting framework's dispatch goroutine, so no locking is done.
type EditingContext struct {
	model              any
	stores             []*MessageStore
	validationHandlers []ValidationHandler
	stateListeners     []func()
}

// NewEditingContext wraps a model instance. The model is typically a
// pointer to a struct so edits made by the form are visible to
// validation snapshots.
func NewEditingContext(model any) *EditingContext {
	return &EditingContext{model: model}
}

// Model returns the bound model instance.
func (ec *EditingContext) Model() any { return ec.model }

// NewMessageStore creates a new contributor-scoped partition in the
// context's shared message collection. Aggregation order follows
// creation order.
func (ec *EditingContext) NewMessageStore() *MessageStore {
	s := newMessageStore()
	ec.stores = append(ec.stores, s)
	return s
}

// OnValidationRequested registers a handler to run on every
// field-change and submit event. Handlers run in registration order.
func (ec *EditingContext) OnValidationRequested(h ValidationHandler) {
	ec.validationHandlers = append(ec.validationHandlers, h)
}

// OnValidationStateChanged registers a listener fired whenever a
// contributor repopulates its messages, so dependent UI can re-render.
func (ec *EditingContext) OnValidationStateChanged(fn func()) {
	ec.stateListeners = append(ec.stateListeners, fn)
}

// NotifyValidationStateChanged fires every registered state listener
// once. Contributors call this exactly once per validation pass,
// whether or not the message set changed.
func (ec *EditingContext) NotifyValidationStateChanged() {
	for _, fn := range ec.stateListeners {
		fn()
	}
}

// NotifyFieldChanged signals that the field at the given path was
// edited and runs every validation handler. The first execution fault
// aborts the remaining handlers and is returned.
func (ec *EditingContext) NotifyFieldChanged(ctx context.Context, path string) error {
	_ = path // reserved for per-field validation scoping
	return ec.requestValidation(ctx, TriggerFieldChange)
}

// Submit runs every validation handler against the current model
// snapshot and reports whether the context is valid afterwards. An
// execution fault leaves validity indeterminate and is returned with
// valid=false.
func (ec *EditingContext) Submit(ctx context.Context) (bool, error) {
	if err := ec.requestValidation(ctx, TriggerSubmit); err != nil {
		return false, err
	}
	return ec.IsValid(), nil
}

func (ec *EditingContext) requestValidation(ctx context.Context, trigger Trigger) error {
	for _, h := range ec.validationHandlers {
		if err := h(ctx, trigger); err != nil {
			return err
		}
	}
	return nil
}

// MessagesFor aggregates the messages recorded against a field path
// across every partition, in partition-creation order.
func (ec *EditingContext) MessagesFor(path string) []string {
	var out []string
	for _, s := range ec.stores {
		out = append(out, s.Messages(path)...)
	}
	return out
}

// AllMessages returns every message in the context keyed by field path,
// aggregated across partitions in creation order.
func (ec *EditingContext) AllMessages() map[string][]string {
	out := make(map[string][]string)
	for _, s := range ec.stores {
		for path, msgs := range s.entries {
			out[path] = append(out[path], msgs...)
		}
	}
	return out
}

// IsValid reports whether no partition currently holds any message.
func (ec *EditingContext) IsValid() bool {
	for _, s := range ec.stores {
		if s.Len() > 0 {
			return false
		}
	}
	return true
}
