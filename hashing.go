/*
In this implementation, the hashing function used is murmurhash,
a non-cryptographic hashing function.
*/
package bloom

import (
	"github.com/twmb/murmur3"
)

// hashPair holds the two base hash values all k locations are derived from.
type hashPair struct {
	h1, h2 uint64
}

// baseHashes digests data under the filter's two seeds. The two halves of
// the seeded 128-bit murmur sum serve as the base pair for double hashing.
// h2 is forced nonzero so the derived locations never collapse onto h1.
func baseHashes(data []byte, seedA, seedB uint64) hashPair {
	h1, h2 := murmur3.SeedSum128(seedA, seedB, data)
	if h2 == 0 {
		h2 = 1
	}
	return hashPair{h1: h1, h2: h2}
}

// location returns the ith hashed location before reduction mod m,
// g_i = h1 + i*h2 (Kirsch-Mitzenmacher double hashing).
func location(h hashPair, i uint64) uint64 {
	return h.h1 + i*h.h2
}
