package internal

import (
	"crypto/hmac"
	"crypto/sha256"
	"testing"

	"github.com/NSBTW/courier/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignLayout(t *testing.T) {
	signer := NewHMACSigner()
	sctx := schema.SigningContext{KeyID: "test", Key: []byte("secret")}
	content := []byte("payload")

	signed := signer.Sign(content, sctx)

	// Fixed-size tag prefix followed by the untouched content
	require.Len(t, signed, sha256.Size+len(content))
	assert.Equal(t, content, signed[sha256.Size:])

	mac := hmac.New(sha256.New, sctx.Key)
	mac.Write([]byte(sctx.KeyID))
	mac.Write(content)
	assert.Equal(t, mac.Sum(nil), signed[:sha256.Size])
}

func TestSignIsDeterministic(t *testing.T) {
	signer := NewHMACSigner()
	sctx := schema.SigningContext{KeyID: "test", Key: []byte("secret")}

	first := signer.Sign([]byte("payload"), sctx)
	second := signer.Sign([]byte("payload"), sctx)

	assert.Equal(t, first, second)
}

func TestSignTagBindsKeyAndKeyID(t *testing.T) {
	signer := NewHMACSigner()
	content := []byte("payload")

	base := signer.Sign(content, schema.SigningContext{KeyID: "test", Key: []byte("secret")})
	otherKey := signer.Sign(content, schema.SigningContext{KeyID: "test", Key: []byte("other")})
	otherID := signer.Sign(content, schema.SigningContext{KeyID: "prod", Key: []byte("secret")})

	assert.NotEqual(t, base[:sha256.Size], otherKey[:sha256.Size])
	assert.NotEqual(t, base[:sha256.Size], otherID[:sha256.Size])
}

func TestSignEmptyContent(t *testing.T) {
	signer := NewHMACSigner()
	sctx := schema.SigningContext{KeyID: "test", Key: []byte("secret")}

	signed := signer.Sign(nil, sctx)

	assert.Len(t, signed, sha256.Size)
}
