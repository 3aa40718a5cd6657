package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/models"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/parser"
	red "github.com/povarna/generative-ai-agents/vent-agent/internal/redis"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	input := flag.String("input", "", "Vent file to publish as one counting job")
	id := flag.String("id", "", "Request identifier (defaults to the stream entry ID)")
	threshold := flag.Int("threshold", 0, "Minimum number of covering lines (0 uses the engine default)")
	stream := flag.String("stream", "vent-jobs", "Stream name")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Usage: producer -input <vent file>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := run(*input, *id, *threshold, *stream); err != nil {
		log.Error().Err(err).Msg("producer failed")
		os.Exit(1)
	}
}

func run(input, id string, threshold int, stream string) error {
	_ = godotenv.Load()

	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	segments, err := parser.Parse(f)
	if err != nil {
		return err
	}

	req := models.CountRequest{ID: id, Threshold: threshold}
	for _, s := range segments {
		req.Lines = append(req.Lines, models.FromSegment(s))
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return err
	}

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	ctx := context.Background()
	client, err := red.ConnectRedis(ctx, addr, os.Getenv("REDIS_PASSWORD"), 3)
	if err != nil {
		return err
	}
	defer client.Close()

	entryID, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{"payload": string(payload)},
	}).Result()
	if err != nil {
		return err
	}

	log.Info().Str("stream", stream).Str("id", entryID).Int("lines", len(req.Lines)).Msg("Published successfully!")
	return nil
}
