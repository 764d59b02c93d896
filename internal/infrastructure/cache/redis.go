package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jmoraesdev/lotemap-api/internal/application/reservation"
	"github.com/jmoraesdev/lotemap-api/internal/application/usecase"
	"github.com/jmoraesdev/lotemap-api/pkg/config"
)

var (
	_ usecase.Cache     = (*RedisCache)(nil)
	_ reservation.Cache = (*RedisCache)(nil)
)

// RedisCache cache de leitura para a vitrine de lotes e o dashboard.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache constrói o cliente e testa a conexão.
func NewRedisCache(ctx context.Context, cfg config.RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisCache{client: client}, nil
}

// GetJSON preenche dest com o valor da chave; false sem erro no cache miss.
func (c *RedisCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON serializa val e grava com TTL.
func (c *RedisCache) SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error {
	data, err := json.Marshal(val)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete descarta as chaves informadas.
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// Close fecha a conexão com o Redis.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
