package types

// Model is the descriptor for a concrete, resolved model. It is produced by
// a successful catalog lookup during resolution and held for the duration of
// one operation invocation; operation callers never construct one directly.
//
// Everything beyond Provider and Name is catalog-supplied metadata carried
// verbatim from the catalog entry. The resolver itself never reads it.
type Model struct {
	Provider string `json:"provider"`
	Name     string `json:"name"`

	DisplayName         string   `json:"display_name,omitempty"`
	ContextWindow       int      `json:"context_window,omitempty"`
	MaxOutputTokens     int      `json:"max_output_tokens,omitempty"`
	SupportsStreaming   bool     `json:"supports_streaming,omitempty"`
	SupportsToolCalling bool     `json:"supports_tool_calling,omitempty"`
	Capabilities        []string `json:"capabilities,omitempty"`
}

// ID returns the identifier this descriptor resolves from.
func (m Model) ID() ModelID {
	return ModelID{Provider: m.Provider, Model: m.Name}
}
