package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvModel is the environment variable that overrides the global default
// model. It outranks every configuration file.
const EnvModel = "NEOVATE_MODEL"

// Load builds the merged Snapshot from the given configuration files, in
// precedence order: each later path overrides earlier ones, and the
// NEOVATE_MODEL environment variable overrides them all for the global
// model. Missing files are skipped; an unreadable or unparseable file is an
// error. Load(globalPath, projectPath) is the usual call.
func Load(paths ...string) (Snapshot, error) {
	merged := Snapshot{}

	for _, path := range paths {
		layer, err := loadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return Snapshot{}, err
		}
		merged = merge(merged, layer)
	}

	if env := os.Getenv(EnvModel); env != "" {
		merged.Model = env
	}

	return merged, nil
}

// loadFile reads and parses a single configuration file.
func loadFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("config: load %s: %w", path, err)
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return snap, nil
}

// merge overlays layer onto base, field by field: a set (non-zero) value in
// layer wins; operation entries merge per field so a project file can
// override just one knob of an operation.
func merge(base, layer Snapshot) Snapshot {
	out := Snapshot{Model: base.Model}
	if layer.Model != "" {
		out.Model = layer.Model
	}

	if len(base.Operations) == 0 && len(layer.Operations) == 0 {
		return out
	}

	out.Operations = make(map[string]OperationConfig, len(base.Operations)+len(layer.Operations))
	for name, op := range base.Operations {
		out.Operations[name] = op
	}
	for name, op := range layer.Operations {
		prev := out.Operations[name]
		if op.Model != "" {
			prev.Model = op.Model
		}
		if op.MaxTokens != 0 {
			prev.MaxTokens = op.MaxTokens
		}
		if op.Temperature != 0 {
			prev.Temperature = op.Temperature
		}
		out.Operations[name] = prev
	}

	return out
}
