package internal

import (
	"crypto/hmac"
	"crypto/sha256"

	"github.com/NSBTW/courier/internal/contract"
	"github.com/NSBTW/courier/schema"
)

// HMACSigner produces signed payloads by prefixing the content with an
// HMAC-SHA256 tag over key ID and content. The tag is fixed-size, so
// receivers can split it off without any framing.
type HMACSigner struct{}

var _ contract.Signer = &HMACSigner{} // Compile-time check

// NewHMACSigner returns the production signer.
func NewHMACSigner() *HMACSigner {
	return &HMACSigner{}
}

// Sign implements the Signer interface. It is total: any key material,
// including an empty key, yields a signed payload.
func (s *HMACSigner) Sign(content []byte, sctx schema.SigningContext) []byte {
	mac := hmac.New(sha256.New, sctx.Key)
	mac.Write([]byte(sctx.KeyID))
	mac.Write(content)

	signed := make([]byte, 0, sha256.Size+len(content))
	signed = mac.Sum(signed)
	return append(signed, content...)
}
