// Package resolver turns configured model identifiers into concrete model
// descriptors. It owns the single fallback chain for model selection
// (operation override, then global default, then unset) and validates the
// selected identifier against the catalog. Resolution is pure: the same identifier
// and catalog always yield the same outcome, and neither input is mutated.
package resolver

import (
	"github.com/Qianqian117/neovate-code/pkg/catalog"
	"github.com/Qianqian117/neovate-code/pkg/config"
	"github.com/Qianqian117/neovate-code/pkg/types"
)

// Select picks the identifier to resolve for an operation: the operation's
// model override when set and non-empty, otherwise the global default model.
// ok is false when neither layer configures a model; absence is a valid
// result, never an error.
func Select(snap config.Snapshot, operation string) (identifier string, ok bool) {
	if op, found := snap.Operation(operation); found && op.Model != "" {
		return op.Model, true
	}
	if snap.Model != "" {
		return snap.Model, true
	}
	return "", false
}

// Resolver validates identifiers against a catalog. The catalog must be
// populated before resolution runs; Resolver performs no I/O and no retries.
type Resolver struct {
	catalog *catalog.Catalog
}

// New creates a Resolver over the given catalog.
func New(cat *catalog.Catalog) *Resolver {
	return &Resolver{catalog: cat}
}

// Resolve resolves an identifier to a model descriptor. An empty identifier
// means nothing was configured and yields the unset outcome directly.
// Otherwise the identifier is parsed ("provider/model", split on the first
// "/"), the provider is looked up, then the model within it; matching is
// case-sensitive and exact, and the first failing step produces the
// corresponding error outcome. Error outcomes carry the full sorted list of
// valid alternatives.
func (r *Resolver) Resolve(identifier string) Outcome {
	if identifier == "" {
		return Unset()
	}

	id, err := types.ParseModelID(identifier)
	if err != nil {
		return Failed(err.(*types.ResolutionError))
	}

	if !r.catalog.HasProvider(id.Provider) {
		return Failed(types.NewUnknownProviderError(id.Provider, r.catalog.Providers()))
	}

	model, ok := r.catalog.Lookup(id.Provider, id.Model)
	if !ok {
		known, _ := r.catalog.Models(id.Provider)
		return Failed(types.NewUnknownModelError(id.Provider, id.Model, known))
	}

	return Resolved(model)
}

// ResolveOperation combines Select and Resolve: it resolves the model the
// given operation should use under the snapshot. An invalid operation
// override is surfaced as-is; there is no silent fallback to the global
// default, since an invalid override is a configuration mistake the user
// must fix.
func (r *Resolver) ResolveOperation(snap config.Snapshot, operation string) Outcome {
	identifier, ok := Select(snap, operation)
	if !ok {
		return Unset()
	}
	return r.Resolve(identifier)
}
