package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store edits one configuration file in place, addressed by dotted keys:
//
//	model                    global default model
//	<operation>.model        per-operation model override
//	<operation>.max_tokens   per-operation response cap
//	<operation>.temperature  per-operation sampling temperature
//
// A Store always operates on a single scope (one file); layering across
// scopes happens at read time via Load.
type Store struct {
	// Path is the configuration file this store reads and writes.
	Path string
}

// Get returns the value at key as a string. ok is false when the key is
// valid but unset. An invalid key is an error.
func (st Store) Get(key string) (value string, ok bool, err error) {
	snap, err := loadFileIfExists(st.Path)
	if err != nil {
		return "", false, err
	}

	op, field, err := splitKey(key)
	if err != nil {
		return "", false, err
	}

	if op == "" {
		return snap.Model, snap.Model != "", nil
	}

	oc := snap.Operations[op]
	switch field {
	case "model":
		return oc.Model, oc.Model != "", nil
	case "max_tokens":
		if oc.MaxTokens == 0 {
			return "", false, nil
		}
		return strconv.Itoa(oc.MaxTokens), true, nil
	case "temperature":
		if oc.Temperature == 0 {
			return "", false, nil
		}
		return strconv.FormatFloat(oc.Temperature, 'f', -1, 64), true, nil
	}
	return "", false, nil
}

// Set writes value at key and persists the file, creating it (and its
// directory) if needed.
func (st Store) Set(key, value string) error {
	snap, err := loadFileIfExists(st.Path)
	if err != nil {
		return err
	}

	op, field, err := splitKey(key)
	if err != nil {
		return err
	}

	if op == "" {
		snap.Model = value
		return st.write(snap)
	}

	if snap.Operations == nil {
		snap.Operations = make(map[string]OperationConfig)
	}
	oc := snap.Operations[op]

	switch field {
	case "model":
		oc.Model = value
	case "max_tokens":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("config: %s: expected an integer, got %q", key, value)
		}
		oc.MaxTokens = n
	case "temperature":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("config: %s: expected a number, got %q", key, value)
		}
		oc.Temperature = f
	}

	snap.Operations[op] = oc
	return st.write(snap)
}

// Remove clears the value at key and persists the file. Removing an unset
// key is a no-op. An operation entry with no remaining fields is dropped
// entirely.
func (st Store) Remove(key string) error {
	snap, err := loadFileIfExists(st.Path)
	if err != nil {
		return err
	}

	op, field, err := splitKey(key)
	if err != nil {
		return err
	}

	if op == "" {
		snap.Model = ""
		return st.write(snap)
	}

	oc, ok := snap.Operations[op]
	if !ok {
		return st.write(snap)
	}

	switch field {
	case "model":
		oc.Model = ""
	case "max_tokens":
		oc.MaxTokens = 0
	case "temperature":
		oc.Temperature = 0
	}

	if (oc == OperationConfig{}) {
		delete(snap.Operations, op)
	} else {
		snap.Operations[op] = oc
	}
	return st.write(snap)
}

// splitKey validates a dotted key. op is empty for the global "model" key.
func splitKey(key string) (op, field string, err error) {
	parts := strings.Split(key, ".")
	switch len(parts) {
	case 1:
		if parts[0] != "model" {
			return "", "", fmt.Errorf("config: unknown key %q", key)
		}
		return "", "model", nil
	case 2:
		op, field = parts[0], parts[1]
		if op == "" {
			return "", "", fmt.Errorf("config: unknown key %q", key)
		}
		switch field {
		case "model", "max_tokens", "temperature":
			return op, field, nil
		}
		return "", "", fmt.Errorf("config: unknown key %q", key)
	}
	return "", "", fmt.Errorf("config: unknown key %q", key)
}

func loadFileIfExists(path string) (Snapshot, error) {
	snap, err := loadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Snapshot{}, nil
		}
		return Snapshot{}, err
	}
	return snap, nil
}

func (st Store) write(snap Snapshot) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	if dir := filepath.Dir(st.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(st.Path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", st.Path, err)
	}
	return nil
}
