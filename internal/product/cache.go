package product

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache holds full projections by id. Failures are never fatal to a request.
type Cache interface {
	Get(ctx context.Context, id int64) (*Product, bool)
	Set(ctx context.Context, p *Product)
	Invalidate(ctx context.Context, id int64)
}

type NopCache struct{}

func (NopCache) Get(context.Context, int64) (*Product, bool) { return nil, false }
func (NopCache) Set(context.Context, *Product)               {}
func (NopCache) Invalidate(context.Context, int64)           {}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

func NewRedisCache(client *redis.Client, ttl time.Duration, log *slog.Logger) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, log: log}
}

func (c *RedisCache) key(id int64) string { return "product:" + strconv.FormatInt(id, 10) }

func (c *RedisCache) Get(ctx context.Context, id int64) (*Product, bool) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.log.Warn("product cache get failed", "id", id, "err", err)
		return nil, false
	}
	var p Product
	if err := json.Unmarshal(data, &p); err != nil {
		c.log.Warn("product cache unmarshal failed", "id", id, "err", err)
		return nil, false
	}
	if p.ID != id {
		c.log.Warn("product cache id mismatch", "key_id", id, "model_id", p.ID)
		c.Invalidate(ctx, id)
		return nil, false
	}
	return &p, true
}

func (c *RedisCache) Set(ctx context.Context, p *Product) {
	data, err := json.Marshal(p)
	if err != nil {
		c.log.Warn("product cache marshal failed", "id", p.ID, "err", err)
		return
	}
	if err := c.client.Set(ctx, c.key(p.ID), data, c.ttl).Err(); err != nil {
		c.log.Warn("product cache set failed", "id", p.ID, "err", err)
	}
}

func (c *RedisCache) Invalidate(ctx context.Context, id int64) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		c.log.Warn("product cache del failed", "id", id, "err", err)
	}
}
