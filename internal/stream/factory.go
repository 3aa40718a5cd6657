package stream

import (
	"context"
	"fmt"

	"github.com/povarna/generative-ai-agents/vent-agent/internal/stream/redis"
	"github.com/rs/zerolog"
)

func NewStreamConsumer(
	ctx context.Context,
	cfg *StreamConfig,
	exec redis.Executor,
	sink redis.ReportSink,
	logger *zerolog.Logger,
) (StreamConsumer, error) {

	// If provider is empty, fallback to the default configuration.
	provider := cfg.Provider
	if provider == "" {
		provider = "redis"
	}

	switch provider {
	case "redis":
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("redis config required")
		}

		client, err := redis.Connect(ctx, cfg.RedisConfig)
		if err != nil {
			return nil, err
		}

		return redis.NewConsumer(client, cfg.RedisConfig, exec, sink, logger), nil

	default:
		return nil, fmt.Errorf("unsupported stream provider: %s", cfg.Provider)
	}
}
