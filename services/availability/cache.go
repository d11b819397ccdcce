package availability

import (
	"context"
	"encoding/json"
	"time"

	"dentalcare/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const cachePrefix = "availability:"

// SnapshotCache stores computed availability per date.
type SnapshotCache interface {
	Get(ctx context.Context, date string) ([]models.Treatment, bool)
	Set(ctx context.Context, date string, treatments []models.Treatment)
	Invalidate(ctx context.Context, date string)
	InvalidateAll(ctx context.Context)
}

// RedisSnapshotCache keeps availability snapshots in Redis with a short TTL.
// Cache failures are logged and treated as misses.
type RedisSnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisSnapshotCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisSnapshotCache {
	return &RedisSnapshotCache{client: client, ttl: ttl, logger: logger}
}

func (c *RedisSnapshotCache) Get(ctx context.Context, date string) ([]models.Treatment, bool) {
	raw, err := c.client.Get(ctx, cachePrefix+date).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("availability cache read failed", zap.String("date", date), zap.Error(err))
		}
		return nil, false
	}
	var treatments []models.Treatment
	if err := json.Unmarshal(raw, &treatments); err != nil {
		c.logger.Warn("availability cache entry corrupt", zap.String("date", date), zap.Error(err))
		return nil, false
	}
	return treatments, true
}

func (c *RedisSnapshotCache) Set(ctx context.Context, date string, treatments []models.Treatment) {
	raw, err := json.Marshal(treatments)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cachePrefix+date, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("availability cache write failed", zap.String("date", date), zap.Error(err))
	}
}

func (c *RedisSnapshotCache) Invalidate(ctx context.Context, date string) {
	if err := c.client.Del(ctx, cachePrefix+date).Err(); err != nil {
		c.logger.Warn("availability cache invalidation failed", zap.String("date", date), zap.Error(err))
	}
}

// InvalidateAll drops every cached date, used when the catalog changes.
func (c *RedisSnapshotCache) InvalidateAll(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, cachePrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("availability cache scan failed", zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("availability cache flush failed", zap.Error(err))
	}
}
