package bloom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFixedSeedSourceReplays(t *testing.T) {
	src := FixedSeedSource{21, 42}
	require.Equal(t, uint64(21), src.Uint64())
	require.Equal(t, uint64(42), src.Uint64())
}

func TestCryptoSeedSource(t *testing.T) {
	src := CryptoSeedSource()
	a, b := src.Uint64(), src.Uint64()
	// Two independent draws colliding is a 1-in-2^64 event.
	require.NotEqual(t, a, b)
}
