package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*HoursCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewHoursCache(client, ttl), mr
}

func TestHoursCache_TaskTotalRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	_, ok, err := cache.GetTaskTotal(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.SetTaskTotal(ctx, 1, 10))

	total, ok, err := cache.GetTaskTotal(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(10), total)
}

func TestHoursCache_ZeroTotalIsAHit(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.SetMonthTotal(ctx, 2024, time.February, 0))

	total, ok, err := cache.GetMonthTotal(ctx, 2024, time.February)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, total)
}

func TestHoursCache_Expires(t *testing.T) {
	cache, mr := newTestCache(t, 30*time.Second)
	ctx := context.Background()

	require.NoError(t, cache.SetTaskTotal(ctx, 3, 7))
	mr.FastForward(31 * time.Second)

	_, ok, err := cache.GetTaskTotal(ctx, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHoursCache_InvalidateDropsTaskAndMonth(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.SetTaskTotal(ctx, 1, 5))
	require.NoError(t, cache.SetTaskTotal(ctx, 2, 6))
	require.NoError(t, cache.SetMonthTotal(ctx, 2024, time.March, 11))
	require.NoError(t, cache.SetMonthTotal(ctx, 2024, time.April, 12))

	require.NoError(t, cache.Invalidate(ctx, 1, 2024, time.March))

	assert.False(t, mr.Exists(taskTotalKey(1)))
	assert.False(t, mr.Exists(monthTotalKey(2024, time.March)))
	assert.True(t, mr.Exists(taskTotalKey(2)))
	assert.True(t, mr.Exists(monthTotalKey(2024, time.April)))
}

func TestHoursCache_KeyFormat(t *testing.T) {
	assert.Equal(t, "mytime:tracker:total:task:42", taskTotalKey(42))
	assert.Equal(t, "mytime:tracker:total:month:2023-03", monthTotalKey(2023, time.March))
}

func TestHoursCache_ReadErrorSurfaces(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	mr.Close()

	_, _, err := cache.GetTaskTotal(context.Background(), 1)
	assert.Error(t, err)
}

func TestNewRedisClient_PingFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisClient(context.Background(), configFor(addr))
	assert.Error(t, err)
}

func TestNewRedisClient_Success(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), configFor(mr.Addr()))
	require.NoError(t, err)
	defer client.Close()
	assert.NotNil(t, client.GetClient())
}
