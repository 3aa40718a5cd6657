package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/vent-agent/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisCache keeps count results in Redis under prefix+digest.
type RedisCache struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
	logger *zerolog.Logger
}

func NewRedisCache(client redis.Cmdable, prefix string, ttl time.Duration, logger *zerolog.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns nil, nil on a miss.
func (c *RedisCache) Get(ctx context.Context, key string) (*models.CountResult, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	var result models.CountResult
	if err := json.Unmarshal(data, &result); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("Dropping undecodable cache entry")
		return nil, nil
	}
	return &result, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, result models.CountResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, c.prefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}

	c.logger.Debug().Str("key", key).Dur("ttl", c.ttl).Msg("Result cached")
	return nil
}
