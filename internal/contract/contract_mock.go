package contract

import (
	"context"

	"github.com/NSBTW/courier/schema"
	"github.com/stretchr/testify/mock"
)

// MockLookup is a mock implementation of Lookup for testing.
type MockLookup struct {
	mock.Mock
}

var _ Lookup = &MockLookup{} // Compile-time check

// TryRead implements the Lookup interface.
func (m *MockLookup) TryRead(ctx context.Context, key string) ([]byte, bool) {
	args := m.Called(ctx, key)
	value, _ := args.Get(0).([]byte)
	return value, args.Bool(1)
}

// MockRecognizer is a mock implementation of Recognizer for testing.
type MockRecognizer struct {
	mock.Mock
}

var _ Recognizer = &MockRecognizer{} // Compile-time check

// TryRecognize implements the Recognizer interface.
func (m *MockRecognizer) TryRecognize(ctx context.Context, item schema.Item) (schema.ParsedItem, bool) {
	args := m.Called(ctx, item)
	parsed, _ := args.Get(0).(schema.ParsedItem)
	return parsed, args.Bool(1)
}

// MockSigner is a mock implementation of Signer for testing.
type MockSigner struct {
	mock.Mock
}

var _ Signer = &MockSigner{} // Compile-time check

// Sign implements the Signer interface.
func (m *MockSigner) Sign(content []byte, sctx schema.SigningContext) []byte {
	args := m.Called(content, sctx)
	signed, _ := args.Get(0).([]byte)
	return signed
}

// MockTransmitter is a mock implementation of Transmitter for testing.
type MockTransmitter struct {
	mock.Mock
}

var _ Transmitter = &MockTransmitter{} // Compile-time check

// TrySend implements the Transmitter interface.
func (m *MockTransmitter) TrySend(ctx context.Context, signed []byte) bool {
	args := m.Called(ctx, signed)
	return args.Bool(0)
}
