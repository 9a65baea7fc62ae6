package catalog

import "github.com/Qianqian117/neovate-code/pkg/types"

// Default returns the built-in catalog. It covers the providers the CLI
// ships support for, so resolution works before any remote population has
// run; a fetched catalog can be merged over it with Merge.
func Default() *Catalog {
	return Build(map[string][]types.Model{
		"anthropic": {
			{
				Name:                "claude-3-5-sonnet-20241022",
				DisplayName:         "Claude 3.5 Sonnet",
				ContextWindow:       200000,
				MaxOutputTokens:     8192,
				SupportsStreaming:   true,
				SupportsToolCalling: true,
				Capabilities:        []string{"chat", "code", "vision"},
			},
			{
				Name:                "claude-3-5-haiku-20241022",
				DisplayName:         "Claude 3.5 Haiku",
				ContextWindow:       200000,
				MaxOutputTokens:     8192,
				SupportsStreaming:   true,
				SupportsToolCalling: true,
				Capabilities:        []string{"chat", "code"},
			},
			{
				Name:                "claude-3-opus-20240229",
				DisplayName:         "Claude 3 Opus",
				ContextWindow:       200000,
				MaxOutputTokens:     4096,
				SupportsStreaming:   true,
				SupportsToolCalling: true,
				Capabilities:        []string{"chat", "code", "vision"},
			},
		},
		"openai": {
			{
				Name:                "gpt-4o",
				DisplayName:         "GPT-4o",
				ContextWindow:       128000,
				MaxOutputTokens:     16384,
				SupportsStreaming:   true,
				SupportsToolCalling: true,
				Capabilities:        []string{"chat", "code", "vision"},
			},
			{
				Name:                "gpt-4o-mini",
				DisplayName:         "GPT-4o mini",
				ContextWindow:       128000,
				MaxOutputTokens:     16384,
				SupportsStreaming:   true,
				SupportsToolCalling: true,
				Capabilities:        []string{"chat", "code"},
			},
			{
				Name:              "o1-mini",
				DisplayName:       "o1-mini",
				ContextWindow:     128000,
				MaxOutputTokens:   65536,
				SupportsStreaming: true,
				Capabilities:      []string{"chat", "reasoning"},
			},
		},
		"google": {
			{
				Name:                "gemini-1.5-pro",
				DisplayName:         "Gemini 1.5 Pro",
				ContextWindow:       2000000,
				MaxOutputTokens:     8192,
				SupportsStreaming:   true,
				SupportsToolCalling: true,
				Capabilities:        []string{"chat", "code", "vision"},
			},
			{
				Name:                "gemini-1.5-flash",
				DisplayName:         "Gemini 1.5 Flash",
				ContextWindow:       1000000,
				MaxOutputTokens:     8192,
				SupportsStreaming:   true,
				SupportsToolCalling: true,
				Capabilities:        []string{"chat", "code"},
			},
		},
		"deepseek": {
			{
				Name:                "deepseek-chat",
				DisplayName:         "DeepSeek Chat",
				ContextWindow:       64000,
				MaxOutputTokens:     8192,
				SupportsStreaming:   true,
				SupportsToolCalling: true,
				Capabilities:        []string{"chat", "code"},
			},
			{
				Name:              "deepseek-reasoner",
				DisplayName:       "DeepSeek Reasoner",
				ContextWindow:     64000,
				MaxOutputTokens:   8192,
				SupportsStreaming: true,
				Capabilities:      []string{"chat", "reasoning"},
			},
		},
		"ollama": {
			{
				Name:              "llama3.1",
				DisplayName:       "Llama 3.1 (local)",
				ContextWindow:     128000,
				SupportsStreaming: true,
				Capabilities:      []string{"chat", "code"},
			},
			{
				Name:              "qwen2.5-coder",
				DisplayName:       "Qwen 2.5 Coder (local)",
				ContextWindow:     32768,
				SupportsStreaming: true,
				Capabilities:      []string{"code"},
			},
		},
	})
}
