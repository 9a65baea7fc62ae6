// Package testutil provides shared fixtures for tests across the module.
package testutil

import (
	"github.com/Qianqian117/neovate-code/pkg/catalog"
	"github.com/Qianqian117/neovate-code/pkg/config"
	"github.com/Qianqian117/neovate-code/pkg/types"
)

// FixtureCatalog returns a small catalog with two providers, stable across
// tests: openai (gpt-4o, gpt-4o-mini) and anthropic
// (claude-3-5-sonnet-20241022, claude-3-5-haiku-20241022).
func FixtureCatalog() *catalog.Catalog {
	return catalog.Build(map[string][]types.Model{
		"openai": {
			{
				Name:                "gpt-4o",
				DisplayName:         "GPT-4o",
				ContextWindow:       128000,
				SupportsStreaming:   true,
				SupportsToolCalling: true,
			},
			{
				Name:              "gpt-4o-mini",
				DisplayName:       "GPT-4o mini",
				ContextWindow:     128000,
				SupportsStreaming: true,
			},
		},
		"anthropic": {
			{
				Name:                "claude-3-5-sonnet-20241022",
				DisplayName:         "Claude 3.5 Sonnet",
				ContextWindow:       200000,
				SupportsStreaming:   true,
				SupportsToolCalling: true,
			},
			{
				Name:              "claude-3-5-haiku-20241022",
				DisplayName:       "Claude 3.5 Haiku",
				ContextWindow:     200000,
				SupportsStreaming: true,
			},
		},
	})
}

// FixtureSnapshot returns a snapshot with a global default and one commit
// override, matching the catalog from FixtureCatalog.
func FixtureSnapshot() config.Snapshot {
	return config.Snapshot{
		Model: "openai/gpt-4o",
		Operations: map[string]config.OperationConfig{
			"commit": {Model: "anthropic/claude-3-5-haiku-20241022", MaxTokens: 500},
		},
	}
}
