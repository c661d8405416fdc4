package bloom

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"
)

const wordBits = 64

// WordBitSet is an in-memory BitSet packed into 64-bit words. Storage is
// reserved once, at Init or From, as ceil(length/64) words; no operation
// allocates after that.
type WordBitSet struct {
	length uint
	words  []uint64
}

// NewWordBitSet returns an empty in-memory BitSet. It must be sized with
// Init or From before use.
func NewWordBitSet() BitSet {
	return &WordBitSet{}
}

func wordsNeeded(length uint) int {
	return int((length + wordBits - 1) / wordBits)
}

func (w *WordBitSet) Init(length uint) BitSet {
	w.length = length
	w.words = make([]uint64, wordsNeeded(length))
	return w
}

func (w *WordBitSet) Set(i uint) BitSet {
	if i >= w.length {
		panic(fmt.Sprintf("bloom: bit %d out of range [0, %d)", i, w.length))
	}
	w.words[i>>6] |= 1 << (i & (wordBits - 1))
	return w
}

func (w *WordBitSet) Test(i uint) bool {
	if i >= w.length {
		panic(fmt.Sprintf("bloom: bit %d out of range [0, %d)", i, w.length))
	}
	return w.words[i>>6]&(1<<(i&(wordBits-1))) != 0
}

func (w *WordBitSet) InPlaceUnion(compare BitSet) {
	c, ok := compare.(*WordBitSet)
	if !ok || c.length != w.length {
		panic("bloom: union requires two in-memory bitsets of equal length")
	}
	for i := range w.words {
		w.words[i] |= c.words[i]
	}
}

func (w *WordBitSet) Count() uint {
	var n uint
	for _, word := range w.words {
		n += uint(bits.OnesCount64(word))
	}
	return n
}

func (w *WordBitSet) WriteTo(stream io.Writer) (int64, error) {
	err := binary.Write(stream, binary.BigEndian, uint64(w.length))
	if err != nil {
		return 0, err
	}
	err = binary.Write(stream, binary.BigEndian, w.words)
	if err != nil {
		return int64(binary.Size(uint64(0))), err
	}
	return int64(binary.Size(uint64(0)) + binary.Size(w.words)), nil
}

func (w *WordBitSet) ReadFrom(stream io.Reader) (int64, error) {
	var length uint64
	err := binary.Read(stream, binary.BigEndian, &length)
	if err != nil {
		return 0, err
	}
	words := make([]uint64, wordsNeeded(uint(length)))
	err = binary.Read(stream, binary.BigEndian, words)
	if err != nil {
		return int64(binary.Size(uint64(0))), err
	}
	w.length = uint(length)
	w.words = words
	return int64(binary.Size(uint64(0)) + binary.Size(words)), nil
}

func (w *WordBitSet) Equal(c BitSet) bool {
	o, ok := c.(*WordBitSet)
	if !ok || o.length != w.length {
		return false
	}
	for i, word := range w.words {
		if o.words[i] != word {
			return false
		}
	}
	return true
}

func (w *WordBitSet) GetBitSetKey() string {
	return ""
}

func (w *WordBitSet) From(buf []uint64) BitSet {
	w.length = uint(len(buf)) * wordBits
	w.words = buf
	return w
}
