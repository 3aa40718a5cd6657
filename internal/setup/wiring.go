package setup

import (
	"context"
	"fmt"
	"os"

	goredis "github.com/redis/go-redis/v9"

	"github.com/povarna/generative-ai-agents/vent-agent/internal/cache"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/config"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/database"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/executor"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/intersect"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/overlap"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/redis"
	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel      string
	RedisAddr     string
	RedisPassword string
	Database      database.Config
}

type Dependencies struct {
	Executor *executor.Executor
	Engine   *config.EngineConfig
	Reports  *database.DB
	Redis    *goredis.Client
	Logger   *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		Database: database.Config{
			Host:     getEnv("DATABASE_HOST", ""),
			Port:     getEnv("DATABASE_PORT", "5432"),
			User:     getEnv("DATABASE_USER", "postgres"),
			Password: getEnv("DATABASE_PASSWORD", ""),
			Database: getEnv("DATABASE_NAME", "vents"),
			SSLMode:  getEnv("DATABASE_SSLMODE", "disable"),
		},
	}
}

// Wire builds the executor from the engine YAML. The Redis cache and the Postgres report store
// are only created when configured.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	engineConfig, err := config.LoadEngineConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load engine config: %w", err)
	}

	deps := &Dependencies{
		Engine: engineConfig,
		Logger: logger,
	}

	var resultCache executor.ResultCache
	if engineConfig.Cache.Enabled && cfg.RedisAddr != "" {
		client, err := redis.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, 3)
		if err != nil {
			return nil, fmt.Errorf("failed to connect result cache: %w", err)
		}
		ttl, _ := engineConfig.CacheTTL()
		deps.Redis = client
		resultCache = cache.NewRedisCache(client, engineConfig.Cache.Prefix, ttl, logger)
	}

	if cfg.Database.Host != "" {
		db, err := database.New(ctx, cfg.Database)
		if err != nil {
			deps.Close()
			return nil, err
		}
		deps.Reports = db
		if err := db.EnsureSchema(ctx); err != nil {
			deps.Close()
			return nil, err
		}
	}

	var validator executor.Validator
	if engineConfig.Engine.Validate {
		validator = intersect.NewValidator()
	}

	deps.Executor = executor.NewExecutor(
		overlap.NewCounter(engineConfig.Engine.Workers),
		validator,
		resultCache,
		executor.Settings{
			Threshold:            engineConfig.Engine.Threshold,
			Validate:             engineConfig.Engine.Validate,
			MaxValidatorSegments: engineConfig.Engine.MaxValidatorSegments,
		},
		logger,
	)

	logger.Info().
		Int("threshold", engineConfig.Engine.Threshold).
		Int("workers", engineConfig.Engine.Workers).
		Bool("validate", engineConfig.Engine.Validate).
		Bool("cache", resultCache != nil).
		Bool("reports", deps.Reports != nil).
		Msg("Dependencies wired")

	return deps, nil
}

func (d *Dependencies) Close() {
	if d.Redis != nil {
		_ = d.Redis.Close()
	}
	if d.Reports != nil {
		d.Reports.Close()
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}
