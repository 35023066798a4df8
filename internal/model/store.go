package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes the forest as JSON. The file is replaced atomically so a
// running server never reads a partial model.
func (f *Forest) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create model dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".model-*.json")
	if err != nil {
		return fmt.Errorf("create temp model file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := json.NewEncoder(tmp).Encode(f); err != nil {
		tmp.Close()
		return fmt.Errorf("encode model: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp model file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("install model file: %w", err)
	}
	return nil
}

// Load reads a forest saved by Save. A missing file yields an error matching
// fs.ErrNotExist.
func Load(path string) (*Forest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model %s: %w", path, err)
	}
	defer file.Close()

	var f Forest
	if err := json.NewDecoder(file).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode model %s: %w", path, err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}
	return &f, nil
}

// ErrFeatureMismatch marks a model trained on a different input layout.
var ErrFeatureMismatch = errors.New("model feature layout does not match")

// LoadFor reads a forest and checks that it takes exactly the given input
// columns. A model without feature names is checked by width only.
func LoadFor(path string, columns []string) (*Forest, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	if f.NumFeatures != len(columns) {
		return nil, fmt.Errorf("model %s: %w: expects %d features, have %d",
			path, ErrFeatureMismatch, f.NumFeatures, len(columns))
	}
	for i, name := range f.Features {
		if name != columns[i] {
			return nil, fmt.Errorf("model %s: %w: feature %d is %q, want %q",
				path, ErrFeatureMismatch, i, name, columns[i])
		}
	}
	return f, nil
}
