package internal

import (
	"context"
	"os"
	"path/filepath"

	"github.com/NSBTW/courier/internal/contract"
)

// LocalRegistry resolves keys against a registry folder holding one file per
// key. A missing or unreadable key is "not found"; an existing empty file is
// a found-but-empty value, which callers must treat as a valid result.
type LocalRegistry struct {
	dir string
}

var _ contract.Lookup = &LocalRegistry{} // Compile-time check

// NewLocalRegistry returns a lookup over the given registry folder.
func NewLocalRegistry(dir string) *LocalRegistry {
	return &LocalRegistry{dir: dir}
}

// TryRead implements the Lookup interface.
func (r *LocalRegistry) TryRead(_ context.Context, key string) ([]byte, bool) {
	// Reject separators and relative elements so keys stay inside the folder
	if key == "" || filepath.Base(key) != key {
		return nil, false
	}
	value, err := os.ReadFile(filepath.Join(r.dir, key))
	if err != nil {
		return nil, false
	}
	return value, true
}
