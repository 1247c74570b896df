package internal

import (
	"context"
	"testing"
	"time"

	"github.com/NSBTW/courier/schema"
	"github.com/stretchr/testify/assert"
)

func TestTryRecognizeValidEnvelope(t *testing.T) {
	recognizer := NewEnvelopeRecognizer()
	item := schema.Item{
		Name:    "item.json",
		Content: []byte(`{"format":"4.0","created":"2024-05-01T10:00:00Z","body":"aGVsbG8="}`),
	}

	parsed, ok := recognizer.TryRecognize(context.Background(), item)

	assert.True(t, ok)
	assert.Equal(t, schema.FormatVersion("4.0"), parsed.Format)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), parsed.Created)
	assert.Equal(t, []byte("hello"), parsed.Content)
}

func TestTryRecognizeRejectsMalformedItems(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: `format: 4.0`},
		{name: "empty content", content: ``},
		{name: "missing format", content: `{"created":"2024-05-01T10:00:00Z","body":"aGVsbG8="}`},
		{name: "missing created", content: `{"format":"4.0","body":"aGVsbG8="}`},
		{name: "bad timestamp", content: `{"format":"4.0","created":"yesterday","body":"aGVsbG8="}`},
		{name: "bad body encoding", content: `{"format":"4.0","created":"2024-05-01T10:00:00Z","body":"!!!"}`},
	}

	recognizer := NewEnvelopeRecognizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := schema.Item{Name: "item.json", Content: []byte(tt.content)}
			_, ok := recognizer.TryRecognize(context.Background(), item)
			assert.False(t, ok)
		})
	}
}

func TestTryRecognizeEmptyBody(t *testing.T) {
	recognizer := NewEnvelopeRecognizer()
	item := schema.Item{
		Name:    "item.json",
		Content: []byte(`{"format":"3.1","created":"2024-05-01T10:00:00Z","body":""}`),
	}

	// An empty body is still a recognized envelope
	parsed, ok := recognizer.TryRecognize(context.Background(), item)

	assert.True(t, ok)
	assert.Empty(t, parsed.Content)
}
