package square

import (
	"crypto/rand"
	"encoding/hex"
)

// The payments endpoint rejects idempotency keys longer than 45 characters;
// order endpoints accept the full 90-char hex key.
const maxPaymentKeyLen = 45

// NewIdempotencyKey returns a fresh random key for a mutating order call.
func NewIdempotencyKey() string {
	b := make([]byte, 45)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms; an error here
		// means the process has no usable entropy source at all.
		panic("square: entropy source unavailable: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// NewPaymentIdempotencyKey returns a fresh key bounded to the payments
// endpoint's maximum length.
func NewPaymentIdempotencyKey() string {
	return NewIdempotencyKey()[:maxPaymentKeyLen]
}
