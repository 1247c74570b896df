package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadItemsInLexicographicOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte("2"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte("1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.json"), []byte("3"), 0o644))

	items, err := LoadItems(dir)

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "a.json", items[0].Name)
	assert.Equal(t, "b.json", items[1].Name)
	assert.Equal(t, "c.json", items[2].Name)
	assert.Equal(t, []byte("1"), items[0].Content)
}

func TestLoadItemsIgnoresNonItems(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "item.json"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0o755))

	items, err := LoadItems(dir)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "item.json", items[0].Name)
}

func TestLoadItemsEmptyFolder(t *testing.T) {
	items, err := LoadItems(t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLoadItemsMissingFolder(t *testing.T) {
	_, err := LoadItems(filepath.Join(t.TempDir(), "nope"))

	assert.ErrorContains(t, err, "cannot read items folder")
}
