package types

import "strings"

// ModelID names a provider and a model within it. The configuration wire
// form is "<provider>/<model-name>", e.g. "anthropic/claude-3-5-sonnet-20241022".
type ModelID struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// String returns the canonical "provider/model" form.
func (id ModelID) String() string {
	return id.Provider + "/" + id.Model
}

// ParseModelID parses a "provider/model" identifier. The string is split on
// the first "/" so model names may themselves contain slashes (e.g.
// "openrouter/meta-llama/llama-3.1-70b-instruct"). A missing separator, an
// empty provider segment, or an empty model segment yields a
// MalformedIdentifier resolution error carrying the offending string.
func ParseModelID(s string) (ModelID, error) {
	idx := strings.Index(s, "/")
	if idx < 0 {
		return ModelID{}, NewMalformedIdentifierError(s)
	}

	provider := s[:idx]
	model := s[idx+1:]
	if provider == "" || model == "" {
		return ModelID{}, NewMalformedIdentifierError(s)
	}

	return ModelID{Provider: provider, Model: model}, nil
}
