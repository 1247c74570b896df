// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/NSBTW/courier/schema"
)

// Lookup resolves a key to an optional value. Failure of the backing service
// is expressed through the found=false channel, never through a panic; from
// the caller's perspective "not found" and "service failure" are equivalent.
type Lookup interface {
	// TryRead returns the value stored under key and whether it was found.
	// A found result with an empty value is valid and distinct from not found.
	TryRead(ctx context.Context, key string) ([]byte, bool)
}

// Recognizer classifies raw item content into a structured ParsedItem,
// or rejects it.
type Recognizer interface {
	// TryRecognize returns the parsed form of item and whether recognition
	// succeeded. The ParsedItem is only meaningful when ok is true.
	TryRecognize(ctx context.Context, item schema.Item) (schema.ParsedItem, bool)
}

// Signer produces a signed byte payload from content and a signing context.
// Signing is assumed total: the contract exposes no failure channel.
type Signer interface {
	Sign(content []byte, sctx schema.SigningContext) []byte
}

// Transmitter attempts delivery of a signed payload and reports success.
type Transmitter interface {
	TrySend(ctx context.Context, signed []byte) bool
}
