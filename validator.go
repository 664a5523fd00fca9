package formbridge

import (
	"context"
	"fmt"
	"strings"
)

// Violation is a single rule-violation record: a field path in the
// editing context's notation plus a human-readable message. Violations
// are transient; they exist only for the duration of a validation pass
// before being written into the message store.
type Violation struct {
	Path    string
	Message string
}

// Violations is the result of one validator invocation. An empty (or
// nil) slice means the model passed every rule.
type Violations []Violation

// Error implements the error interface so violations can travel error
// channels when a caller wants them to. The bridge itself never treats
// violations as a failure.
func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Path, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any violation targets the given path.
func (vs Violations) Has(path string) bool {
	for _, v := range vs {
		if v.Path == path {
			return true
		}
	}
	return false
}

// Get returns every message recorded against the given path.
func (vs Violations) Get(path string) []string {
	var messages []string
	for _, v := range vs {
		if v.Path == path {
			messages = append(messages, v.Message)
		}
	}
	return messages
}

// Paths returns the distinct violated paths in first-seen order.
func (vs Violations) Paths() []string {
	var paths []string
	seen := make(map[string]bool)
	for _, v := range vs {
		if !seen[v.Path] {
			paths = append(paths, v.Path)
			seen[v.Path] = true
		}
	}
	return paths
}

func (vs Violations) IsEmpty() bool { return len(vs) == 0 }

// Validator is the entry point the bridge invokes against a model
// snapshot. Violations are the recoverable channel; a non-nil error is
// an execution fault inside a rule and is propagated to the caller, not
// converted into messages. Implementations performing remote checks
// should honor ctx cancellation.
type Validator interface {
	Validate(ctx context.Context, model any) (Violations, error)
}

// ValidatorFunc adapts an ordinary function to the Validator interface.
type ValidatorFunc func(ctx context.Context, model any) (Violations, error)

func (f ValidatorFunc) Validate(ctx context.Context, model any) (Violations, error) {
	return f(ctx, model)
}

// Trigger identifies which editing-context event requested validation.
type Trigger int

const (
	TriggerFieldChange Trigger = iota
	TriggerSubmit
)

func (t Trigger) String() string {
	switch t {
	case TriggerFieldChange:
		return "field_change"
	case TriggerSubmit:
		return "submit"
	default:
		return "unknown"
	}
}
