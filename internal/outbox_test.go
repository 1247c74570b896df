package internal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrySendWritesSignedPayload(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "outbox")
	transmitter := NewOutboxTransmitter(dir)

	ok := transmitter.TrySend(context.Background(), []byte("signed-payload"))

	require.True(t, ok)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, []byte("signed-payload"), content)
}

func TestTrySendIsIdempotentPerPayload(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "outbox")
	transmitter := NewOutboxTransmitter(dir)

	require.True(t, transmitter.TrySend(context.Background(), []byte("same")))
	require.True(t, transmitter.TrySend(context.Background(), []byte("same")))
	require.True(t, transmitter.TrySend(context.Background(), []byte("different")))

	// Identical payloads share a digest name, so two files remain
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestTrySendReportsWriteFailure(t *testing.T) {
	// A regular file where the outbox folder should be makes MkdirAll fail
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	transmitter := NewOutboxTransmitter(blocker)

	ok := transmitter.TrySend(context.Background(), []byte("payload"))

	assert.False(t, ok)
}
