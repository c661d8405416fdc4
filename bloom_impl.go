package bloom

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"io"
	"math"
)

// A bloomFilterImpl is a representation of a set of _n_ items, where the
// main requirement is to make membership queries; _i.e._, whether an item
// is a member of a set. Bits in the backing set only ever transition from
// 0 to 1, which is what guarantees the absence of false negatives.
type bloomFilterImpl struct {
	m        uint
	k        uint
	seedA    uint64
	seedB    uint64
	b        BitSet
	inserted uint64
}

// location returns the ith hashed location using the two base hash values
func (f *bloomFilterImpl) location(h hashPair, i uint) uint {
	return uint(location(h, uint64(i)) % uint64(f.m))
}

func (f *bloomFilterImpl) Cap() uint {
	return f.m
}

func (f *bloomFilterImpl) K() uint {
	return f.k
}

func (f *bloomFilterImpl) Seeds() (uint64, uint64) {
	return f.seedA, f.seedB
}

func (f *bloomFilterImpl) InsertedCount() uint64 {
	return f.inserted
}

func (f *bloomFilterImpl) BitSet() BitSet {
	return f.b
}

func (f *bloomFilterImpl) Add(data []byte) BloomFilter {
	h := baseHashes(data, f.seedA, f.seedB)
	for i := uint(0); i < f.k; i++ {
		f.b.Set(f.location(h, i))
	}
	f.inserted++
	return f
}

func (f *bloomFilterImpl) AddString(data string) BloomFilter {
	return f.Add([]byte(data))
}

func (f *bloomFilterImpl) Test(data []byte) bool {
	h := baseHashes(data, f.seedA, f.seedB)
	for i := uint(0); i < f.k; i++ {
		if !f.b.Test(f.location(h, i)) {
			return false
		}
	}
	return true
}

func (f *bloomFilterImpl) TestString(data string) bool {
	return f.Test([]byte(data))
}

func (f *bloomFilterImpl) Locations(data []byte) []uint64 {
	h := baseHashes(data, f.seedA, f.seedB)
	locs := make([]uint64, f.k)
	for i := range locs {
		locs[i] = location(h, uint64(i))
	}
	return locs
}

func (f *bloomFilterImpl) TestLocations(locs []uint64) bool {
	for i := 0; i < len(locs); i++ {
		if !f.b.Test(uint(locs[i] % uint64(f.m))) {
			return false
		}
	}
	return true
}

func (f *bloomFilterImpl) TestAndAdd(data []byte) bool {
	present := true
	h := baseHashes(data, f.seedA, f.seedB)
	for i := uint(0); i < f.k; i++ {
		l := f.location(h, i)
		if !f.b.Test(l) {
			present = false
		}
		f.b.Set(l)
	}
	f.inserted++
	return present
}

func (f *bloomFilterImpl) TestAndAddString(data string) bool {
	return f.TestAndAdd([]byte(data))
}

func (f *bloomFilterImpl) TestOrAdd(data []byte) bool {
	present := true
	h := baseHashes(data, f.seedA, f.seedB)
	for i := uint(0); i < f.k; i++ {
		l := f.location(h, i)
		if !f.b.Test(l) {
			present = false
			f.b.Set(l)
		}
	}
	if !present {
		f.inserted++
	}
	return present
}

func (f *bloomFilterImpl) TestOrAddString(data string) bool {
	return f.TestOrAdd([]byte(data))
}

func (f *bloomFilterImpl) ApproximatedSize() uint32 {
	x := float64(f.b.Count())
	m := float64(f.Cap())
	k := float64(f.K())
	size := -1 * m / k * math.Log(1-x/m) / math.Log(math.E)
	return uint32(math.Floor(size + 0.5)) // round
}

// bloomFilterJSON is an unexported type for marshaling/unmarshaling BloomFilter struct.
// The bitset travels in its WriteTo stream form, base64-encoded by encoding/json.
type bloomFilterJSON struct {
	M        uint   `json:"m"`
	K        uint   `json:"k"`
	SeedA    uint64 `json:"sa"`
	SeedB    uint64 `json:"sb"`
	Inserted uint64 `json:"n"`
	B        []byte `json:"b"`
}

func (f *bloomFilterImpl) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	_, err := f.b.WriteTo(&buf)
	if err != nil {
		return nil, err
	}
	return json.Marshal(bloomFilterJSON{f.m, f.k, f.seedA, f.seedB, f.inserted, buf.Bytes()})
}

// UnmarshalJSON restores a filter marshaled with MarshalJSON. The receiver
// must already carry a BitSet of the desired backend; its contents are
// replaced.
func (f *bloomFilterImpl) UnmarshalJSON(data []byte) error {
	var j bloomFilterJSON
	err := json.Unmarshal(data, &j)
	if err != nil {
		return err
	}
	_, err = f.b.ReadFrom(bytes.NewReader(j.B))
	if err != nil {
		return err
	}
	f.m = j.M
	f.k = j.K
	f.seedA = j.SeedA
	f.seedB = j.SeedB
	f.inserted = j.Inserted
	return nil
}

func (f *bloomFilterImpl) WriteTo(stream io.Writer) (int64, error) {
	for _, v := range []uint64{uint64(f.m), uint64(f.k), f.seedA, f.seedB, f.inserted} {
		err := binary.Write(stream, binary.BigEndian, v)
		if err != nil {
			return 0, err
		}
	}
	numBytes, err := f.b.WriteTo(stream)
	return numBytes + int64(5*binary.Size(uint64(0))), err
}

func (f *bloomFilterImpl) ReadFrom(stream io.Reader) (int64, error) {
	var m, k, seedA, seedB, inserted uint64
	for _, p := range []*uint64{&m, &k, &seedA, &seedB, &inserted} {
		err := binary.Read(stream, binary.BigEndian, p)
		if err != nil {
			return 0, err
		}
	}
	numBytes, err := f.b.ReadFrom(stream)
	if err != nil {
		return 0, err
	}
	f.m = uint(m)
	f.k = uint(k)
	f.seedA = seedA
	f.seedB = seedB
	f.inserted = inserted
	return numBytes + int64(5*binary.Size(uint64(0))), nil
}

func (f *bloomFilterImpl) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (f *bloomFilterImpl) GobDecode(data []byte) error {
	buf := bytes.NewBuffer(data)
	_, err := f.ReadFrom(buf)

	return err
}

func (f *bloomFilterImpl) Equal(g BloomFilter) bool {
	ga, gb := g.Seeds()
	return f.m == g.Cap() && f.k == g.K() && f.seedA == ga && f.seedB == gb && f.b.Equal(g.BitSet())
}
