package json

import (
	"path/filepath"

	"github.com/chainlearn/chainlearn/internal/storage"
)

// Blob is a json file backed storage.Persistence implementation.
// Each key maps to one file under the blob directory.
type Blob struct {
	dir string
}

// NewBlob creates a new json blob store under the default storage directory.
func NewBlob(parts ...string) *Blob {
	pp := append([]string{storage.DefaultDir}, parts...)
	return &Blob{dir: filepath.Join(pp...)}
}

func (b *Blob) Store(k storage.Key, value interface{}) error {
	return Save(b.dir, fileName(k), value)
}

func (b *Blob) Load(k storage.Key, value interface{}) error {
	return Load(b.dir, fileName(k), value)
}

func fileName(k storage.Key) string {
	return k.Path() + ".json"
}
