// Package invocation provides the execution context handed to an operation
// invoker, and the builder that applies a resolution outcome to it. Contexts
// are value types: builders return modified copies and never touch the
// original, so one base context can be shared by concurrent or re-entrant
// operations.
package invocation

import (
	"github.com/google/uuid"

	"github.com/Qianqian117/neovate-code/pkg/resolver"
	"github.com/Qianqian117/neovate-code/pkg/types"
)

// Context carries everything the invoker needs for one model call.
type Context struct {
	// ID uniquely identifies this invocation, for correlation in caller logs.
	ID string

	// Operation is the operation name this context was built for.
	Operation string

	// DefaultModel is the invoker's built-in fallback, used whenever Model
	// is nil.
	DefaultModel types.Model

	// Model is the per-call resolved model. Nil means no model was
	// configured at any layer and the invoker must use DefaultModel.
	Model *types.Model

	// MaxTokens and Temperature are generation knobs carried through
	// unchanged by WithModel.
	MaxTokens   int
	Temperature float64
}

// New creates a base context for an operation with a fresh invocation ID.
func New(operation string, defaultModel types.Model) Context {
	return Context{
		ID:           uuid.NewString(),
		Operation:    operation,
		DefaultModel: defaultModel,
	}
}

// WithModel returns a copy of base carrying the resolution outcome:
//
//   - resolved: the copy's Model field is set to the descriptor;
//   - unset: the copy's Model field is explicitly nil, signalling the
//     invoker to fall back to DefaultModel;
//   - error: no context is produced and the error is returned; the caller
//     must abort this operation rather than invoke with a stale model.
//
// base itself is never modified.
func WithModel(base Context, outcome resolver.Outcome) (Context, error) {
	if err := outcome.Err(); err != nil {
		return Context{}, err
	}

	next := base
	next.Model = nil
	if model, ok := outcome.Model(); ok {
		next.Model = &model
	}
	return next, nil
}

// EffectiveModel returns the model the invoker should call: the per-call
// resolved model when present, otherwise the built-in default.
func (c Context) EffectiveModel() types.Model {
	if c.Model != nil {
		return *c.Model
	}
	return c.DefaultModel
}
