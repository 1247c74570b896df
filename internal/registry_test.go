package internal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryReadKnownKey(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alpha"), []byte("value"), 0o644))
	registry := NewLocalRegistry(dir)

	value, found := registry.TryRead(context.Background(), "alpha")

	assert.True(t, found)
	assert.Equal(t, []byte("value"), value)
}

func TestTryReadUnknownKey(t *testing.T) {
	registry := NewLocalRegistry(t.TempDir())

	value, found := registry.TryRead(context.Background(), "missing")

	assert.False(t, found)
	assert.Nil(t, value)
}

func TestTryReadEmptyFileIsFound(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty"), nil, 0o644))
	registry := NewLocalRegistry(dir)

	value, found := registry.TryRead(context.Background(), "empty")

	// Found-but-empty must be distinguishable from not found
	assert.True(t, found)
	assert.Empty(t, value)
}

func TestTryReadRejectsPathKeys(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alpha"), []byte("value"), 0o644))
	registry := NewLocalRegistry(dir)

	tests := []string{"", "../alpha", "sub/alpha", "./alpha", "/etc/hosts"}
	for _, key := range tests {
		_, found := registry.TryRead(context.Background(), key)
		assert.False(t, found, "key %q must not resolve", key)
	}
}
