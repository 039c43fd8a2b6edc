// Package json provides a file based storage.Persistence implementation,
// with one json file per key.
package json

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/chainlearn/chainlearn/internal/storage"
)

// Save marshals the value into dir/name, creating the directory if needed.
func Save(dir string, name string, value interface{}) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("could not make dir '%s': %w", dir, err)
	}

	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not marshal value for '%s': %w", name, err)
	}

	p := filepath.Join(dir, name)
	if err := ioutil.WriteFile(p, b, 0644); err != nil {
		return fmt.Errorf("could not write file '%s': %w", p, err)
	}
	return nil
}

// Load unmarshals the value from dir/name.
func Load(dir string, name string, value interface{}) error {
	p := filepath.Join(dir, name)

	b, err := ioutil.ReadFile(p)
	if err != nil {
		return fmt.Errorf("could not read file '%s' (%s): %w", p, err.Error(), storage.NotFoundErr)
	}

	if err := json.Unmarshal(b, value); err != nil {
		return fmt.Errorf("could not unmarshal file '%s' (%s): %w", p, err.Error(), storage.CouldNotLoadErr)
	}
	return nil
}
