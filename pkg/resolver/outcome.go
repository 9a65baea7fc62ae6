package resolver

import "github.com/Qianqian117/neovate-code/pkg/types"

// Outcome is the result of one resolution attempt. Exactly one of three
// states holds: a resolved descriptor, "unset" (no identifier was configured
// at any layer, which is not an error), or a resolution error. The zero value is the
// unset outcome.
type Outcome struct {
	model    types.Model
	resolved bool
	err      *types.ResolutionError
}

// Resolved wraps a successfully resolved descriptor.
func Resolved(m types.Model) Outcome {
	return Outcome{model: m, resolved: true}
}

// Unset is the outcome for an absent identifier.
func Unset() Outcome {
	return Outcome{}
}

// Failed wraps a resolution error.
func Failed(err *types.ResolutionError) Outcome {
	return Outcome{err: err}
}

// Model returns the resolved descriptor. ok is false for unset and failed
// outcomes.
func (o Outcome) Model() (types.Model, bool) {
	return o.model, o.resolved
}

// IsUnset reports whether nothing was configured at any layer.
func (o Outcome) IsUnset() bool {
	return !o.resolved && o.err == nil
}

// Err returns the resolution error, or nil for resolved and unset outcomes.
func (o Outcome) Err() *types.ResolutionError {
	return o.err
}
