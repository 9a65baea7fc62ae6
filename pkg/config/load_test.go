package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoad_SingleFile tests loading a single configuration file
func TestLoad_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.yaml", `
model: openai/gpt-4o
operations:
  commit:
    model: anthropic/claude-3-5-haiku-20241022
    max_tokens: 500
`)

	snap, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "openai/gpt-4o", snap.Model)

	op, ok := snap.Operation("commit")
	require.True(t, ok)
	assert.Equal(t, "anthropic/claude-3-5-haiku-20241022", op.Model)
	assert.Equal(t, 500, op.MaxTokens)

	_, ok = snap.Operation("branch")
	assert.False(t, ok)
}

// TestLoad_LayeredMerge tests that the project file overrides the global
// file field by field
func TestLoad_LayeredMerge(t *testing.T) {
	dir := t.TempDir()
	global := writeConfig(t, dir, "global.yaml", `
model: openai/gpt-4o
operations:
  commit:
    model: openai/gpt-4o-mini
    max_tokens: 500
  branch:
    model: openai/gpt-4o-mini
`)
	project := writeConfig(t, dir, "project.yaml", `
operations:
  commit:
    model: anthropic/claude-3-5-haiku-20241022
`)

	snap, err := Load(global, project)
	require.NoError(t, err)

	// Global default untouched by the project layer.
	assert.Equal(t, "openai/gpt-4o", snap.Model)

	// commit.model overridden, commit.max_tokens kept from the global layer.
	op, ok := snap.Operation("commit")
	require.True(t, ok)
	assert.Equal(t, "anthropic/claude-3-5-haiku-20241022", op.Model)
	assert.Equal(t, 500, op.MaxTokens)

	// branch untouched.
	op, ok = snap.Operation("branch")
	require.True(t, ok)
	assert.Equal(t, "openai/gpt-4o-mini", op.Model)
}

// TestLoad_MissingFilesSkipped tests that absent layers are not errors
func TestLoad_MissingFilesSkipped(t *testing.T) {
	dir := t.TempDir()
	project := writeConfig(t, dir, "project.yaml", "model: openai/gpt-4o\n")

	snap, err := Load(filepath.Join(dir, "does-not-exist.yaml"), project)
	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-4o", snap.Model)
}

// TestLoad_EmptyLayers tests the all-unset snapshot
func TestLoad_EmptyLayers(t *testing.T) {
	snap, err := Load()
	require.NoError(t, err)
	assert.Empty(t, snap.Model)
	assert.Empty(t, snap.Operations)
}

// TestLoad_ParseError tests that a malformed file aborts loading
func TestLoad_ParseError(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "broken.yaml", "model: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

// TestLoad_EnvOverridesGlobalModel tests that NEOVATE_MODEL outranks files
func TestLoad_EnvOverridesGlobalModel(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.yaml", `
model: openai/gpt-4o
operations:
  commit:
    model: anthropic/claude-3-5-haiku-20241022
`)

	t.Setenv(EnvModel, "deepseek/deepseek-chat")

	snap, err := Load(path)
	require.NoError(t, err)

	// Only the global default is overridden; operation overrides stand.
	assert.Equal(t, "deepseek/deepseek-chat", snap.Model)
	op, _ := snap.Operation("commit")
	assert.Equal(t, "anthropic/claude-3-5-haiku-20241022", op.Model)
}
