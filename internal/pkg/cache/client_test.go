package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gooficina/internal/pkg/cache"
)

func newRedis(t *testing.T) (*cache.RedisClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := cache.NewRedisClient(mr.Addr(), time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func TestRedisClient_IncrFixedWindow(t *testing.T) {
	client, mr := newRedis(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := client.Incr(ctx, "rate_limit:10.0.0.1", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, time.Minute, mr.TTL("rate_limit:10.0.0.1"))

	// a janela não é estendida pelas chamadas seguintes
	mr.FastForward(40 * time.Second)
	_, err := client.Incr(ctx, "rate_limit:10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 20*time.Second, mr.TTL("rate_limit:10.0.0.1"))

	mr.FastForward(21 * time.Second)
	got, err := client.Incr(ctx, "rate_limit:10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestRedisClient_IncrRestoresMissingTTL(t *testing.T) {
	client, mr := newRedis(t)
	require.NoError(t, mr.Set("rate_limit:10.0.0.2", "7"))
	require.Zero(t, mr.TTL("rate_limit:10.0.0.2"))

	got, err := client.Incr(context.Background(), "rate_limit:10.0.0.2", time.Minute)

	require.NoError(t, err)
	assert.Equal(t, int64(8), got)
	assert.Equal(t, time.Minute, mr.TTL("rate_limit:10.0.0.2"))
}

func TestRedisClient_GetSetDelete(t *testing.T) {
	client, _ := newRedis(t)
	ctx := context.Background()

	_, err := client.Get(ctx, "client:1")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)

	require.NoError(t, client.Set(ctx, "client:1", `{"name":"Ana"}`, time.Minute))
	val, err := client.Get(ctx, "client:1")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Ana"}`, val)

	require.NoError(t, client.Delete(ctx, "client:1"))
	_, err = client.Get(ctx, "client:1")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}
