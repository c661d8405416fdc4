package bloom

import (
	"crypto/rand"
	"encoding/binary"
)

// SeedSource yields uniformly distributed 64-bit values. It is consumed
// exactly twice, at construction time, to draw the filter's two hash seeds.
// *rand.Rand from math/rand satisfies it.
type SeedSource interface {
	Uint64() uint64
}

// CryptoSeedSource returns a SeedSource backed by crypto/rand.
func CryptoSeedSource() SeedSource {
	return cryptoSeedSource{}
}

type cryptoSeedSource struct{}

func (cryptoSeedSource) Uint64() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("bloom: reading crypto/rand: " + err.Error())
	}
	return binary.BigEndian.Uint64(buf[:])
}

// FixedSeedSource replays a fixed sequence of values, for deterministic
// filter construction in tests.
type FixedSeedSource []uint64

func (s *FixedSeedSource) Uint64() uint64 {
	v := (*s)[0]
	*s = (*s)[1:]
	return v
}
