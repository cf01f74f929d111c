// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-lock-keeper/internal/config"
	"github.com/MKhiriev/go-lock-keeper/internal/logger"
	"github.com/MKhiriev/go-lock-keeper/models"
)

const snapshotPrefix = "vault"

//go:generate mockgen -source=snapshots.go -destination=../mock/cache_mock.go -package=mock

// SnapshotCache stores rendered vault views keyed by vault ID. Writers
// invalidate after every payout and again after storing a view whose
// revision fell behind, so a hit is never older than the last state change.
type SnapshotCache interface {
	// Get returns ErrNotFound on a miss.
	Get(ctx context.Context, id string) (models.VaultView, error)
	Set(ctx context.Context, view models.VaultView) error
	Invalidate(ctx context.Context, id string) error
	Close() error
}

// NewSnapshotCache connects to Redis when cfg.RedisURL is set and returns a
// cache that always misses otherwise.
func NewSnapshotCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (SnapshotCache, error) {
	if cfg.RedisURL == "" {
		log.Debug().Str("func", "NewSnapshotCache").Msg("snapshot cache disabled")
		return NopSnapshotCache{}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewSnapshotCache").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	log.Info().Str("func", "NewSnapshotCache").Str("addr", opts.Addr).Msg("connected to redis")

	return NewRedisSnapshotCache(client, cfg.TTL), nil
}

// RedisSnapshotCache is a msgpack-encoded [SnapshotCache] in Redis.
type RedisSnapshotCache struct {
	client *redis.Client
	views  *Cache[models.VaultView]
	ttl    time.Duration
}

// NewRedisSnapshotCache wraps an existing client.
func NewRedisSnapshotCache(client *redis.Client, ttl time.Duration) *RedisSnapshotCache {
	return &RedisSnapshotCache{
		client: client,
		views: New(Options[models.VaultView]{
			Client:  client,
			Encoder: MsgpackEncoder[models.VaultView](),
			Decoder: MsgpackDecoder[models.VaultView](),
			Prefix:  snapshotPrefix,
		}),
		ttl: ttl,
	}
}

func (c *RedisSnapshotCache) Get(ctx context.Context, id string) (models.VaultView, error) {
	return c.views.Get(ctx, id)
}

func (c *RedisSnapshotCache) Set(ctx context.Context, view models.VaultView) error {
	return c.views.Set(ctx, view.ID, view, c.ttl)
}

func (c *RedisSnapshotCache) Invalidate(ctx context.Context, id string) error {
	return c.views.Delete(ctx, id)
}

func (c *RedisSnapshotCache) Close() error {
	return c.client.Close()
}

// NopSnapshotCache is used when no Redis is configured.
type NopSnapshotCache struct{}

func (NopSnapshotCache) Get(context.Context, string) (models.VaultView, error) {
	return models.VaultView{}, ErrNotFound
}

func (NopSnapshotCache) Set(context.Context, models.VaultView) error { return nil }

func (NopSnapshotCache) Invalidate(context.Context, string) error { return nil }

func (NopSnapshotCache) Close() error { return nil }
