package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-lock-keeper/internal/config"
	"github.com/MKhiriev/go-lock-keeper/internal/logger"
	"github.com/MKhiriev/go-lock-keeper/models"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func testView() models.VaultView {
	return models.VaultView{
		ID:          "0x00000000000000000000000000000000000000aa",
		Owner:       "0x0000000000000000000000000000000000000001",
		Asset:       "native",
		Schedule:    models.ScheduleSpec{Kind: "single_maturity", UnlockAt: 1000},
		Status:      "active",
		Deposited:   "100",
		Withdrawn:   "0",
		Reclaimed:   "0",
		Unallocated: "0",
		Remaining:   "100",
		Beneficiaries: []models.BeneficiaryView{
			{Address: "0x0000000000000000000000000000000000000002", Allocated: "100", Withdrawn: "0"},
		},
	}
}

func TestRedisSnapshotCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	c := NewRedisSnapshotCache(client, time.Minute)

	_, err := c.Get(ctx, testView().ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, c.Set(ctx, testView()))
	assert.True(t, mr.Exists(snapshotPrefix+":"+testView().ID))
	assert.Equal(t, time.Minute, mr.TTL(snapshotPrefix+":"+testView().ID))

	got, err := c.Get(ctx, testView().ID)
	require.NoError(t, err)
	assert.Equal(t, testView(), got)

	require.NoError(t, c.Invalidate(ctx, testView().ID))
	_, err = c.Get(ctx, testView().ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisSnapshotCache_Expiry(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	c := NewRedisSnapshotCache(client, time.Second)

	require.NoError(t, c.Set(ctx, testView()))
	mr.FastForward(2 * time.Second)

	_, err := c.Get(ctx, testView().ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCache_DecodeFailure(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	c := NewRedisSnapshotCache(client, 0)

	require.NoError(t, mr.Set(snapshotPrefix+":broken", "\xc1"))

	_, err := c.Get(ctx, "broken")
	assert.ErrorIs(t, err, ErrDecodeFailed)
}

func TestNewSnapshotCache(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		c, err := NewSnapshotCache(ctx, config.Cache{}, logger.Nop())
		require.NoError(t, err)
		_, err = c.Get(ctx, "x")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, c.Set(ctx, testView()))
		assert.NoError(t, c.Invalidate(ctx, "x"))
		assert.NoError(t, c.Close())
	})

	t.Run("redis", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		defer mr.Close()

		c, err := NewSnapshotCache(ctx, config.Cache{RedisURL: "redis://" + mr.Addr() + "/0", TTL: time.Minute}, logger.Nop())
		require.NoError(t, err)
		defer c.Close()

		require.NoError(t, c.Set(ctx, testView()))
		got, err := c.Get(ctx, testView().ID)
		require.NoError(t, err)
		assert.Equal(t, testView().Remaining, got.Remaining)
	})

	t.Run("bad url", func(t *testing.T) {
		_, err := NewSnapshotCache(ctx, config.Cache{RedisURL: "://nope"}, logger.Nop())
		assert.Error(t, err)
	})
}
