package internal

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NSBTW/courier/internal/contract"
)

// OutboxTransmitter delivers signed payloads into an outbox folder. Files
// are named by content digest, so concurrent sends never collide and
// redelivery of an identical payload is idempotent. Any write failure is
// reported as a failed send, never as an error.
type OutboxTransmitter struct {
	dir string
}

var _ contract.Transmitter = &OutboxTransmitter{} // Compile-time check

// NewOutboxTransmitter returns a transmitter writing into dir.
func NewOutboxTransmitter(dir string) *OutboxTransmitter {
	return &OutboxTransmitter{dir: dir}
}

// TrySend implements the Transmitter interface.
func (t *OutboxTransmitter) TrySend(_ context.Context, signed []byte) bool {
	if err := os.MkdirAll(t.dir, 0o755); err != nil {
		contract.LogWarn("Cannot create outbox folder", err)
		return false
	}

	digest := sha256.Sum256(signed)
	name := fmt.Sprintf("%x.signed", digest[:8])
	if err := os.WriteFile(filepath.Join(t.dir, name), signed, 0o644); err != nil {
		contract.LogWarn("Cannot write to outbox", err)
		return false
	}
	return true
}
