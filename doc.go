/*
Package bloom provides data structures and methods for creating Bloom filters.

A Bloom filter is a representation of a set of _n_ items, where the main
requirement is to make membership queries; _i.e._, whether an item is a
member of a set.

A Bloom filter has two parameters: _m_, the number of bits in the backing
bit array, and _k_, the number of hashing functions applied to each item.
Rather than computing k independent hashes, this implementation derives two
64-bit base hashes of the item under a pair of seeds fixed at construction,
and combines them linearly (the Kirsch-Mitzenmacher technique): the i-th
location is (h1 + i*h2) mod m. A key is added by setting the bit at each of
the k locations; membership is tested by checking that every one of those
bits is set. If an item was added, Test always returns true (there are no
false negatives); if it was not, Test returns true with probability bounded
by the configured false positive rate.

Filters are backed by a BitSet, which may live in process memory or in
Redis. The in-memory bitset is allocated once at construction and never
grows; bits are only ever set, never cleared, which is what guarantees the
no-false-negative property. Deletion and resizing are out of scope.

Sizing is done from an expected item count and a target false positive
rate:

	m, k, err := bloom.EstimateParameters(1000, 0.01)

or in one step, drawing the two hash seeds from a SeedSource:

	f, err := bloom.NewWithEstimates(1000, 0.01, bloom.CryptoSeedSource(), bloom.NewWordBitSet())

This filter accepts keys for setting and testing as []byte. Thus, to add a
string item, "Love":

	f.AddString("Love")

Similarly, to test if "Love" is in bloom:

	if f.TestString("Love")

For numeric data, use the encoding/binary library. For example, to add an
uint32 to the filter:

	i := uint32(100)
	n1 := make([]byte, 4)
	binary.BigEndian.PutUint32(n1, i)
	f.Add(n1)

A filter performs no internal locking. Concurrent Test calls are safe as
long as no Add is in flight; any Add requires exclusive access to the
filter, enforced by the caller (a mutex, or single-writer ownership).

Finally, there is a method to estimate the false positive rate of a Bloom
filter with _m_ bits and _k_ hashing functions for a set of size _n_:

	if rate, _ := bloom.EstimateFalsePositiveRate(m, k, n, bloom.NewWordBitSet()); rate > 0.001 ...

It creates a temporary filter and is relatively expensive; it is only meant
for validating computed parameters.
*/
package bloom
