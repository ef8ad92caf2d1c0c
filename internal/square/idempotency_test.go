package square

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIdempotencyKey(t *testing.T) {
	key := NewIdempotencyKey()
	require.Len(t, key, 90) // 45 bytes, hex encoded
	for _, r := range key {
		require.Contains(t, "0123456789abcdef", string(r))
	}
}

func TestNewPaymentIdempotencyKey(t *testing.T) {
	key := NewPaymentIdempotencyKey()
	require.Len(t, key, maxPaymentKeyLen)
}

func TestIdempotencyKeysNeverRepeat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		key := NewIdempotencyKey()
		require.False(t, seen[key], "idempotency key repeated")
		seen[key] = true
	}
}
