package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/barrapos/backoffice-api/internal/domain/entity"
)

// RedisProductCache cache de productos sobre Redis con TTL corto. Los fallos
// de Redis degradan a cache miss: nunca tumban una lectura.
type RedisProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisProductCache construye el cache.
func NewRedisProductCache(addr, password string, db int, ttl time.Duration) *RedisProductCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisProductCache{client: client, ttl: ttl}
}

// Ping verifica la conexión.
func (c *RedisProductCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close cierra el cliente.
func (c *RedisProductCache) Close() error {
	return c.client.Close()
}

func productKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

func (c *RedisProductCache) Get(ctx context.Context, id int64) (*entity.Product, bool) {
	val, err := c.client.Get(ctx, productKey(id)).Result()
	if err != nil {
		return nil, false
	}
	var p entity.Product
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		return nil, false
	}
	return &p, true
}

func (c *RedisProductCache) Set(ctx context.Context, p *entity.Product) {
	if p == nil {
		return
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, productKey(p.ID), payload, c.ttl).Err()
}

func (c *RedisProductCache) Invalidate(ctx context.Context, id int64) {
	_ = c.client.Del(ctx, productKey(id)).Err()
}
