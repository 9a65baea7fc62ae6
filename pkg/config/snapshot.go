// Package config provides the layered configuration surface for model
// selection: an immutable snapshot merged once per process invocation from
// the global file, the project-local file, and the environment, plus the
// dotted-key store backing "config set/get/remove".
package config

// Snapshot is the merged, already-loaded view of user configuration the
// resolver consumes. It is a value type and is never mutated after loading;
// concurrent resolutions may share one Snapshot freely.
type Snapshot struct {
	// Model is the global default model identifier ("provider/model").
	// Empty means no global default is configured.
	Model string `yaml:"model,omitempty"`

	// Operations maps an operation name (e.g. "commit") to its overrides.
	Operations map[string]OperationConfig `yaml:"operations,omitempty"`
}

// OperationConfig holds per-operation overrides. The shape is deliberately
// open: new per-operation knobs are added here and flow through the same
// selector path without new plumbing.
type OperationConfig struct {
	// Model overrides the global default model for this operation.
	Model string `yaml:"model,omitempty"`

	// MaxTokens caps the response length for this operation (0 = provider default).
	MaxTokens int `yaml:"max_tokens,omitempty"`

	// Temperature overrides sampling temperature (0 = provider default).
	Temperature float64 `yaml:"temperature,omitempty"`
}

// Operation returns the overrides configured for an operation name.
// ok is false when the operation has no entry at all.
func (s Snapshot) Operation(name string) (OperationConfig, bool) {
	op, ok := s.Operations[name]
	return op, ok
}
