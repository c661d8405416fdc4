package bloom

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWordBitSetInit(t *testing.T) {
	b := NewWordBitSet().Init(70)
	require.Zero(t, b.Count())
	for i := uint(0); i < 70; i++ {
		require.False(t, b.Test(i))
	}
}

func TestWordBitSetSetAndTest(t *testing.T) {
	b := NewWordBitSet().Init(130)
	for _, i := range []uint{0, 1, 63, 64, 65, 128, 129} {
		require.False(t, b.Test(i))
		b.Set(i)
		require.True(t, b.Test(i))
	}
	require.Equal(t, uint(7), b.Count())

	// Setting an already set bit is a no-op.
	b.Set(63)
	require.Equal(t, uint(7), b.Count())
}

func TestWordBitSetOutOfRange(t *testing.T) {
	b := NewWordBitSet().Init(64)
	require.Panics(t, func() { b.Set(64) })
	require.Panics(t, func() { b.Test(64) })
	require.NotPanics(t, func() { b.Set(63) })
}

func TestWordBitSetInPlaceUnion(t *testing.T) {
	a := NewWordBitSet().Init(200)
	b := NewWordBitSet().Init(200)
	a.Set(3).Set(100)
	b.Set(100).Set(199)

	a.InPlaceUnion(b)
	require.True(t, a.Test(3))
	require.True(t, a.Test(100))
	require.True(t, a.Test(199))
	require.Equal(t, uint(3), a.Count())
	// The compared set is untouched.
	require.False(t, b.Test(3))
	require.Equal(t, uint(2), b.Count())

	c := NewWordBitSet().Init(64)
	require.Panics(t, func() { a.InPlaceUnion(c) })
}

func TestWordBitSetEqual(t *testing.T) {
	a := NewWordBitSet().Init(100)
	b := NewWordBitSet().Init(100)
	require.True(t, a.Equal(b))

	a.Set(42)
	require.False(t, a.Equal(b))
	b.Set(42)
	require.True(t, a.Equal(b))

	c := NewWordBitSet().Init(164)
	require.False(t, a.Equal(c))
}

func TestWordBitSetWriteToReadFrom(t *testing.T) {
	a := NewWordBitSet().Init(130)
	a.Set(0).Set(64).Set(129)

	var buf bytes.Buffer
	wn, err := a.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), wn)

	b := NewWordBitSet()
	rn, err := b.ReadFrom(&buf)
	require.NoError(t, err)
	require.Equal(t, wn, rn)
	require.True(t, a.Equal(b))
}

func TestWordBitSetFrom(t *testing.T) {
	buf := []uint64{0, 1 << 5}
	b := NewWordBitSet().From(buf)
	require.True(t, b.Test(69))
	require.False(t, b.Test(5))
	require.Equal(t, uint(1), b.Count())

	// The buffer is shared, not copied.
	b.Set(0)
	require.Equal(t, uint64(1), buf[0])
}
