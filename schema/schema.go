// Package schema has shared types for courier's dispatch and resolution flows.
package schema

import "time"

// Item represents an opaque named binary payload submitted for dispatch.
// It is immutable once created.
type Item struct {
	Name    string // Identifier used in reports and outbox naming
	Content []byte // Raw payload bytes as submitted
}

// ParsedItem is the result of recognizing an Item. It carries the declared
// format version, the creation timestamp, and the underlying content.
// It is only produced when recognition succeeds.
type ParsedItem struct {
	Format  FormatVersion // Declared envelope format version
	Created time.Time     // When the payload was created
	Content []byte        // Body bytes extracted from the envelope
}

// SigningContext carries the material a Signer needs to produce a signed
// payload. Courier never interprets the key itself.
type SigningContext struct {
	KeyID string // Identifier of the signing key
	Key   []byte // Opaque key material
}

// BatchResult is the output of a single batch run. Skipped holds the subset
// of input items that failed any pipeline gate, preserving their relative
// order from the input sequence. No per-item failure reason is recorded.
type BatchResult struct {
	Skipped   []Item        // Items not successfully sent, in input order
	Attempted int           // Total number of items processed
	Sent      int           // Number of items confirmed transmitted
	Duration  time.Duration // Wall-clock duration of the run
}

// ItemReport is a single row of the dispatch report.
type ItemReport struct {
	Name      string     `json:"name"`
	SizeBytes int        `json:"size_bytes"`
	Status    ItemStatus `json:"status"`
}

// Resolution is a single row of the resolution report.
type Resolution struct {
	Key       string `json:"key"`
	Found     bool   `json:"found"`
	SizeBytes int    `json:"size_bytes"`
}
