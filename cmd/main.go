package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/stream"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/stream/redis"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	logger := log.Logger

	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := setup.LoadConfig()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(lvl)
	}

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}
	defer deps.Close()

	redisAddr := cfg.RedisAddr
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	streamCfg := redis.NewRedisStreamConfig(
		redisAddr,
		cfg.RedisPassword,
		"vent-jobs",           // stream name
		"vent-group",          // consumer group
		os.Getenv("HOSTNAME"), // unique consumer name
	)
	streamCfg.ResultStream = os.Getenv("RESULT_STREAM")

	var sink redis.ReportSink
	if deps.Reports != nil {
		sink = deps.Reports
	}

	consumer, err := stream.NewStreamConsumer(ctx, &stream.StreamConfig{
		Provider:    os.Getenv("STREAM_PROVIDER"),
		RedisConfig: streamCfg,
	}, deps.Executor, sink, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create consumer")
	}

	// Setup consumer
	if err := consumer.Setup(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to setup consumer")
	}

	// Start consumer
	go func() {
		if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("Consumer stopped with error")
		}
	}()

	// Wait for context to be done
	<-ctx.Done()
	logger.Info().Msg("Shutting down...")
	_ = consumer.Stop()

	log.Info().Msg("Vent Agent stopped")
}
