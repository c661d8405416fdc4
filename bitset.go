package bloom

import "io"

type BitSet interface {
	// Init allocates the bit set for the given bit length. The length is
	// fixed from then on; the set never grows or shrinks.
	Init(length uint) BitSet
	// Set bit i to 1.
	// If i >= length, this function will panic: out-of-range indices
	// indicate a bug in the caller, not a runtime condition.
	// Warning: using a very large value for 'i' at Init time
	// may lead to a memory shortage and a panic: the caller is responsible
	// for providing sensible parameters in line with their memory capacity.
	Set(i uint) BitSet
	// Test whether bit i is set.
	Test(i uint) bool
	// InPlaceUnion creates the destructive union of base set and compare set.
	// This is the BitSet equivalent of | (or). There is no corresponding
	// clearing operation: bits only ever transition from 0 to 1.
	InPlaceUnion(compare BitSet)
	// Count (number of set bits).
	// Also known as "popcount" or "population count".
	Count() uint
	// WriteTo writes a BitSet to a stream
	WriteTo(stream io.Writer) (int64, error)
	// ReadFrom reads a BitSet from a stream written using WriteTo
	ReadFrom(stream io.Reader) (int64, error)
	// Equal tests the equivalence of two BitSets.
	// False if they are of different sizes, otherwise true
	// only if all the same bits are set
	Equal(c BitSet) bool
	// GetBitSetKey returns the key of redis bitset. It is used only for redis bitset
	GetBitSetKey() string
	// From is a constructor used to create a BitSet from an array of integers
	From(buf []uint64) BitSet
}
