package catalog

import (
	"sort"

	"github.com/Qianqian117/neovate-code/pkg/types"
)

// Catalog maps provider names to the set of models each provider serves.
// Provider and model matching is case-sensitive and exact. The zero value
// is an empty catalog.
type Catalog struct {
	providers map[string]map[string]types.Model
}

// Build constructs a Catalog from a provider to models table. Entries are
// keyed by model name; a later entry for the same name replaces an earlier
// one. The input table is copied down to the descriptor slices, so the
// caller may reuse or mutate it freely.
func Build(table map[string][]types.Model) *Catalog {
	providers := make(map[string]map[string]types.Model, len(table))
	for provider, models := range table {
		set := make(map[string]types.Model, len(models))
		for _, m := range models {
			m.Provider = provider
			m.Capabilities = copyCapabilities(m.Capabilities)
			set[m.Name] = m
		}
		providers[provider] = set
	}
	return &Catalog{providers: providers}
}

// Providers returns the sorted list of known provider names.
func (c *Catalog) Providers() []string {
	names := make([]string, 0, len(c.providers))
	for name := range c.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasProvider reports whether the provider is known to the catalog.
func (c *Catalog) HasProvider(provider string) bool {
	_, ok := c.providers[provider]
	return ok
}

// Models returns the sorted model names for a provider. ok is false when
// the provider is not in the catalog.
func (c *Catalog) Models(provider string) (names []string, ok bool) {
	set, ok := c.providers[provider]
	if !ok {
		return nil, false
	}

	names = make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, true
}

// Lookup returns the descriptor for provider/model. ok is false when either
// the provider or the model is unknown.
func (c *Catalog) Lookup(provider, model string) (types.Model, bool) {
	set, ok := c.providers[provider]
	if !ok {
		return types.Model{}, false
	}

	m, ok := set[model]
	if ok {
		m.Capabilities = copyCapabilities(m.Capabilities)
	}
	return m, ok
}

func copyCapabilities(caps []string) []string {
	if caps == nil {
		return nil
	}
	out := make([]string, len(caps))
	copy(out, caps)
	return out
}

// Len returns the total number of models across all providers.
func (c *Catalog) Len() int {
	n := 0
	for _, set := range c.providers {
		n += len(set)
	}
	return n
}

// Merge produces a new Catalog containing every entry of base plus every
// entry of overlay; overlay entries win on provider/model collisions.
// Neither input is modified.
func Merge(base, overlay *Catalog) *Catalog {
	merged := make(map[string]map[string]types.Model, len(base.providers))

	for provider, set := range base.providers {
		dst := make(map[string]types.Model, len(set))
		for name, m := range set {
			dst[name] = m
		}
		merged[provider] = dst
	}

	for provider, set := range overlay.providers {
		dst, ok := merged[provider]
		if !ok {
			dst = make(map[string]types.Model, len(set))
			merged[provider] = dst
		}
		for name, m := range set {
			dst[name] = m
		}
	}

	return &Catalog{providers: merged}
}
