package internal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/NSBTW/courier/internal/contract"
	"github.com/NSBTW/courier/schema"
)

// envelope is the JSON wire form of a submitted item. Body is base64 in the
// JSON text; encoding/json decodes it into raw bytes.
type envelope struct {
	Format  string    `json:"format"`
	Created time.Time `json:"created"`
	Body    []byte    `json:"body"`
}

// EnvelopeRecognizer parses the courier JSON envelope. Anything that is not
// a well-formed envelope with a format tag and a creation timestamp is
// reported as not recognized; recognition never errors.
type EnvelopeRecognizer struct{}

var _ contract.Recognizer = &EnvelopeRecognizer{} // Compile-time check

// NewEnvelopeRecognizer returns the production envelope recognizer.
func NewEnvelopeRecognizer() *EnvelopeRecognizer {
	return &EnvelopeRecognizer{}
}

// TryRecognize implements the Recognizer interface.
func (r *EnvelopeRecognizer) TryRecognize(_ context.Context, item schema.Item) (schema.ParsedItem, bool) {
	var env envelope
	if err := json.Unmarshal(item.Content, &env); err != nil {
		return schema.ParsedItem{}, false
	}
	if env.Format == "" || env.Created.IsZero() {
		return schema.ParsedItem{}, false
	}
	return schema.ParsedItem{
		Format:  schema.FormatVersion(env.Format),
		Created: env.Created,
		Content: env.Body,
	}, true
}
