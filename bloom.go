package bloom

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

type BloomFilter interface {
	// Cap returns the capacity, _m_, of a Bloom filter
	Cap() uint
	// K returns the number of hash functions used in the BloomFilter
	K() uint
	// Seeds returns the two hash seeds fixed at construction. They fully
	// determine the hashing scheme: a filter restored with the same m, k
	// and seeds derives the same locations for every item.
	Seeds() (uint64, uint64)
	// InsertedCount returns the number of Add calls made against the
	// filter. It is informational: duplicates are counted, and it plays
	// no part in membership answers.
	InsertedCount() uint64
	// BitSet returns the underlying bitset for this filter.
	BitSet() BitSet
	// Add data to the Bloom Filter. Returns the filter (allows chaining)
	Add(data []byte) BloomFilter
	// AddString to the Bloom Filter. Returns the filter (allows chaining)
	AddString(data string) BloomFilter
	// Test returns true if the data is in the BloomFilter, false otherwise.
	// If true, the result might be a false positive. If false, the data
	// is definitely not in the set.
	Test(data []byte) bool
	// TestString returns true if the string is in the BloomFilter, false otherwise.
	// If true, the result might be a false positive. If false, the data
	// is definitely not in the set.
	TestString(data string) bool
	// Locations returns the k raw locations the filter derives for data
	// under its seeds, before reduction mod m. They can be stored and
	// checked later with TestLocations, on this filter or on any filter
	// built with the same seeds.
	Locations(data []byte) []uint64
	// TestLocations returns true if all locations are set in the BloomFilter, false
	// otherwise.
	TestLocations(locs []uint64) bool
	// TestAndAdd is the equivalent to calling Test(data) then Add(data).
	// Returns the result of Test.
	TestAndAdd(data []byte) bool
	// TestAndAddString is the equivalent to calling Test(string) then Add(string).
	// Returns the result of Test.
	TestAndAddString(data string) bool
	// TestOrAdd is the equivalent to calling Test(data) then if not present Add(data).
	// Returns the result of Test.
	TestOrAdd(data []byte) bool
	// TestOrAddString is the equivalent to calling Test(string) then if not present Add(string).
	// Returns the result of Test.
	TestOrAddString(data string) bool
	// ApproximatedSize approximates the number of items
	// https://en.wikipedia.org/wiki/Bloom_filter#Approximating_the_number_of_items_in_a_Bloom_filter
	ApproximatedSize() uint32
	// MarshalJSON implements json.Marshaler interface.
	MarshalJSON() ([]byte, error)
	// UnmarshalJSON implements json.Unmarshaler interface.
	UnmarshalJSON(data []byte) error
	// WriteTo writes a binary representation of the BloomFilter to an i/o stream.
	// It returns the number of bytes written.
	WriteTo(stream io.Writer) (int64, error)
	// ReadFrom reads a binary representation of the BloomFilter (such as might
	// have been written by WriteTo()) from an i/o stream. It returns the number
	// of bytes read.
	ReadFrom(stream io.Reader) (int64, error)
	// GobEncode implements gob.GobEncoder interface.
	GobEncode() ([]byte, error)
	// GobDecode implements gob.GobDecoder interface.
	GobDecode(data []byte) error
	// Equal tests for the equality of two Bloom filters
	Equal(g BloomFilter) bool
}

// New creates a new Bloom filter with _m_ bits, _k_ hashing functions and
// explicit hash seeds. It is meant for callers who already know their
// sizing, e.g. when restoring persisted parameters; use NewWithEstimates to
// size a filter from an expected item count and false positive rate.
func New(m, k uint, seedA, seedB uint64, b BitSet) (BloomFilter, error) {
	if m == 0 {
		return nil, fmt.Errorf("%w: bit count must be > 0", ErrInvalidParameter)
	}
	if k == 0 {
		return nil, fmt.Errorf("%w: hash count must be > 0", ErrInvalidParameter)
	}
	return &bloomFilterImpl{
		m:     m,
		k:     k,
		seedA: seedA,
		seedB: seedB,
		b:     b.Init(m),
	}, nil
}

// NewWithEstimates creates a new Bloom filter for about n items with fp
// false positive rate, drawing the two hash seeds from src.
func NewWithEstimates(n uint, fp float64, src SeedSource, b BitSet) (BloomFilter, error) {
	m, k, err := EstimateParameters(n, fp)
	if err != nil {
		return nil, err
	}
	return New(m, k, src.Uint64(), src.Uint64(), b)
}

// From creates a new Bloom filter over a caller-provided word buffer, with
// len(_data_) * 64 bits and _k_ hashing functions. The data slice is not
// going to be reset.
func From(data []uint64, k uint, seedA, seedB uint64, b BitSet) (BloomFilter, error) {
	m := uint(len(data)) * 64
	return FromWithM(data, m, k, seedA, seedB, b)
}

// FromWithM creates a new Bloom filter with _m_ length, _k_ hashing
// functions over a caller-provided word buffer. The data slice is not going
// to be reset.
func FromWithM(data []uint64, m, k uint, seedA, seedB uint64, b BitSet) (BloomFilter, error) {
	if m == 0 {
		return nil, fmt.Errorf("%w: bit count must be > 0", ErrInvalidParameter)
	}
	if k == 0 {
		return nil, fmt.Errorf("%w: hash count must be > 0", ErrInvalidParameter)
	}
	return &bloomFilterImpl{
		m:     m,
		k:     k,
		seedA: seedA,
		seedB: seedB,
		b:     b.From(data),
	}, nil
}

// EstimateParameters computes requirements for m and k from the expected
// item count n and the target false positive rate p:
//
//	m = ceil(-n * ln(p) / (ln 2)^2)
//	k = round((m / n) * ln 2)
//
// both clamped to at least 1. Same (n, p) always yields same (m, k).
// Returns ErrInvalidParameter when n is zero or p is not strictly between
// 0 and 1.
func EstimateParameters(n uint, p float64) (m, k uint, err error) {
	if n == 0 {
		return 0, 0, fmt.Errorf("%w: expected item count must be > 0", ErrInvalidParameter)
	}
	if p <= 0 || p >= 1 {
		return 0, 0, fmt.Errorf("%w: false positive rate %v outside (0, 1)", ErrInvalidParameter, p)
	}
	m = uint(math.Ceil(-1 * float64(n) * math.Log(p) / (math.Ln2 * math.Ln2)))
	if m == 0 {
		m = 1
	}
	k = uint(math.Round(float64(m) / float64(n) * math.Ln2))
	if k == 0 {
		k = 1
	}
	return m, k, nil
}

// EstimateFalsePositiveRate returns, for a BloomFilter of m bits
// and k hash functions, an estimation of the false positive rate when
// storing n entries. This is an empirical, relatively slow
// test using integers as keys.
// This function is useful to validate the implementation.
func EstimateFalsePositiveRate(m, k, n uint, b BitSet) (float64, error) {
	rounds := uint64(100000)
	// We construct a new filter. The seeds are arbitrary but fixed, so
	// the estimate is reproducible.
	f, err := New(m, k, 0x9e3779b97f4a7c15, 0xc2b2ae3d27d4eb4f, b)
	if err != nil {
		return 0, err
	}
	n1 := make([]byte, 8)
	// We populate the filter with n values.
	for i := uint64(0); i < uint64(n); i++ {
		binary.BigEndian.PutUint64(n1, i)
		f.Add(n1)
	}
	fp := 0
	// test for number of rounds, on keys disjoint from the populated range
	for i := uint64(0); i < rounds; i++ {
		binary.BigEndian.PutUint64(n1, i+uint64(n)+1)
		if f.Test(n1) {
			fp++
		}
	}
	return float64(fp) / float64(rounds), nil
}
