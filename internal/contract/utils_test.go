package contract

import (
	"testing"

	"github.com/NSBTW/courier/schema"
	"github.com/stretchr/testify/assert"
)

func TestGetPlainStatusLabel(t *testing.T) {
	assert.Equal(t, SentValue, GetPlainStatusLabel(schema.SentStatus))
	assert.Equal(t, SkippedValue, GetPlainStatusLabel(schema.SkippedStatus))
}

func TestGetColorStatusLabel(t *testing.T) {
	// Colored labels still contain the plain text
	assert.Contains(t, GetColorStatusLabel(schema.SentStatus), SentValue)
	assert.Contains(t, GetColorStatusLabel(schema.SkippedStatus), SkippedValue)
}

func TestGetPlainResolutionLabel(t *testing.T) {
	assert.Equal(t, FoundValue, GetPlainResolutionLabel(true))
	assert.Equal(t, UnresolvedValue, GetPlainResolutionLabel(false))
}

func TestGetColorResolutionLabel(t *testing.T) {
	assert.Contains(t, GetColorResolutionLabel(true), FoundValue)
	assert.Contains(t, GetColorResolutionLabel(false), UnresolvedValue)
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{input: "yes", want: true},
		{input: "TRUE", want: true},
		{input: "1", want: true},
		{input: "no", want: false},
		{input: "False", want: false},
		{input: "0", want: false},
		{input: "maybe", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{name: "short name untouched", input: "a.json", maxWidth: 20, want: "a.json"},
		{name: "exact width untouched", input: "abcdef", maxWidth: 6, want: "abcdef"},
		{name: "long name keeps tail", input: "very-long-item-name.json", maxWidth: 12, want: "...name.json"},
		{name: "tiny width keeps bare tail", input: "abcdef", maxWidth: 3, want: "def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateName(tt.input, tt.maxWidth)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), tt.maxWidth)
		})
	}
}
