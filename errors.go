package formbridge

import "errors"

// Configuration errors surfaced at attach time.
var (
	ErrNoValidator = errors.New("no validator resolvable for model type")
	ErrNilContext  = errors.New("nil editing context")
	ErrNilModel    = errors.New("editing context has no model")
	ErrNotStruct   = errors.New("model must be a struct or pointer to struct")
)
