// Package formbridge binds a declarative validation library to a form
// editing context. It resolves the right validator for a form's bound
// model, runs it on field-change and submit events, and surfaces the
// resulting messages through a field-path-keyed message store that
// display components can read from.
//
// The package does not implement validation rules itself. Rules live in
// an external validator (see the playground and rules subpackages for
// two backends); formbridge only resolves and invokes them, and owns the
// bookkeeping between passes: stale messages contributed by a bridge are
// cleared before each repopulation without touching messages written by
// other contributors attached to the same context.
//
// Basic Usage:
//
//	type Signup struct {
//		Email    string `json:"email"`
//		Password string `json:"password"`
//	}
//
//	registry := formbridge.NewRegistry()
//	formbridge.Register[Signup](registry, signupValidator)
//
//	ec := formbridge.NewEditingContext(&form)
//	bridge, err := formbridge.Attach(ec, formbridge.WithRegistry(registry))
//	if err != nil {
//		// no validator is resolvable for Signup; configuration error
//	}
//
//	valid, err := ec.Submit(ctx)
//	msgs := ec.MessagesFor("email")
//
// Validator resolution happens once, at attach time: an inlined validator
// passed via WithValidator wins, then a registry entry for the model's
// type, then an entry in the child-validator map. A model type with no
// resolvable validator fails Attach immediately rather than silently
// validating to an empty-valid result.
//
// Nested models and slice elements are validated recursively through the
// same mechanism; subtrees whose type has no resolvable validator are
// skipped. Violation paths for nested fields use the context's own
// notation (dotted segments, bracketed indices: "items[2].sku") so
// field-bound display components resolve them directly.
package formbridge
