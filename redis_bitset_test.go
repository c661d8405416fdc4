package bloom

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestRedisClient(t *testing.T) redis.UniversalClient {
	t.Helper()
	redisClient := redis.NewUniversalClient(&redis.UniversalOptions{Addrs: []string{":6379"}})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis not reachable: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })
	return redisClient
}

func TestRedisBasic(t *testing.T) {
	redisClient := newTestRedisClient(t)
	redisBitSet := NewRedisBitSet(redisClient, uuid.New().String(), time.Minute)

	f, err := New(1000, 4, 1, 2, redisBitSet)
	require.NoError(t, err)
	n1 := []byte("Bess")
	n2 := []byte("Jane")
	n3 := []byte("Emma")
	f.Add(n1)
	n3a := f.TestAndAdd(n3)
	require.True(t, f.Test(n1), "%v should be in", n1)
	require.False(t, f.Test(n2), "%v should not be in", n2)
	require.False(t, n3a, "%v should not be in the first time we look", n3)
	require.True(t, f.Test(n3), "%v should be in the second time we look", n3)
}

func TestRedisBitSetOps(t *testing.T) {
	redisClient := newTestRedisClient(t)
	b := NewRedisBitSet(redisClient, uuid.New().String(), time.Minute).Init(1000)

	require.Zero(t, b.Count())
	b.Set(0)
	b.Set(999)
	require.True(t, b.Test(0))
	require.True(t, b.Test(999))
	require.False(t, b.Test(500))
	require.Equal(t, uint(2), b.Count())
}

func TestRedisInPlaceUnion(t *testing.T) {
	redisClient := newTestRedisClient(t)
	a := NewRedisBitSet(redisClient, uuid.New().String(), time.Minute).Init(256)
	b := NewRedisBitSet(redisClient, uuid.New().String(), time.Minute).Init(256)

	a.Set(3)
	b.Set(200)
	a.InPlaceUnion(b)
	require.True(t, a.Test(3))
	require.True(t, a.Test(200))
	require.Equal(t, uint(2), a.Count())
}

func TestRedisFrom(t *testing.T) {
	redisClient := newTestRedisClient(t)

	buf := []uint64{0x0102030405060708, 1}
	a := NewRedisBitSet(redisClient, uuid.New().String(), time.Minute).From(buf)
	require.Equal(t, uint(14), a.Count())

	// The same words under another key are an equal set.
	b := NewRedisBitSet(redisClient, uuid.New().String(), time.Minute).From(buf)
	require.True(t, a.Equal(b))

	// A filter built over a word buffer answers membership through Redis.
	f, err := From(make([]uint64, 2), 5, 21, 42, NewRedisBitSet(redisClient, uuid.New().String(), time.Minute))
	require.NoError(t, err)
	require.Equal(t, uint(128), f.Cap())
	require.False(t, f.TestString("Bess"))
	f.AddString("Bess")
	require.True(t, f.TestString("Bess"))
}

func TestRedisFilterSharedKey(t *testing.T) {
	redisClient := newTestRedisClient(t)
	key := uuid.New().String()

	f, err := New(9586, 7, 21, 42, NewRedisBitSet(redisClient, key, time.Minute))
	require.NoError(t, err)
	f.AddString("Bess")

	// A second filter over the same key, seeds and sizing sees the
	// same membership. It attaches without Init so the stored bits
	// survive.
	g := &bloomFilterImpl{
		m:     9586,
		k:     7,
		seedA: 21,
		seedB: 42,
		b:     NewRedisBitSet(redisClient, key, time.Minute),
	}
	require.True(t, g.TestString("Bess"))
	require.False(t, g.TestString("Jane"))
}
