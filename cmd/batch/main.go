package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/executor"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/geometry"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/intersect"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/models"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/overlap"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/parser"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type options struct {
	threshold int
	workers   int
	validate  bool
}

func main() {
	startTime := time.Now()

	input := flag.String("input", filepath.Join("aoc_inputs", "daily_input_5"), "Vent file relative path, '-' for stdin")
	threshold := flag.Int("threshold", models.DefaultThreshold, "Minimum number of covering lines")
	workers := flag.Int("workers", 1, "Concurrent rasterization workers")
	validate := flag.Bool("validate", false, "Cross-check results with the pairwise intersection validator")
	level := flag.String("log-level", "warn", "Log level")
	flag.Parse()

	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logger.New(*level).Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var source io.Reader
	if *input == "-" {
		source = os.Stdin
		log.Info().Msg("Reading from stdin")
	} else {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatal().Err(err).Str("file", *input).Msg("Failed to open input file")
		}
		defer f.Close()
		source = f
		log.Info().Str("file", *input).Msg("Reading input file")
	}

	opts := options{threshold: *threshold, workers: *workers, validate: *validate}
	if err := run(context.Background(), source, os.Stdout, opts, &log.Logger); err != nil {
		log.Fatal().Err(err).Msg("Counting failed")
	}

	log.Info().Dur("duration", time.Since(startTime)).Msg("Processing complete")
}

func run(ctx context.Context, source io.Reader, out io.Writer, opts options, logger *zerolog.Logger) error {
	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var segments []geometry.Segment
	for record := range parser.NewReader(source, logger).ReadAll(readCtx) {
		if record.Error != nil {
			return fmt.Errorf("line %d: %w", record.LineNumber, record.Error)
		}
		segments = append(segments, record.Segment)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var validator executor.Validator
	if opts.validate {
		validator = intersect.NewValidator()
	}

	counter := overlap.NewCounter(opts.workers)
	logger.Debug().Int("segments", len(segments)).Int("workers", counter.Workers()).Msg("Input loaded")

	exec := executor.NewExecutor(
		counter,
		validator,
		nil,
		executor.Settings{
			Threshold:            opts.threshold,
			Validate:             opts.validate,
			MaxValidatorSegments: len(segments),
		},
		logger,
	)

	req := models.CountRequest{ID: "batch", Lines: make([]models.VentLine, 0, len(segments))}
	for _, s := range segments {
		req.Lines = append(req.Lines, models.FromSegment(s))
	}

	result, err := exec.Execute(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Total overlap points of straight lines: %d\n", result.AxisAligned)
	fmt.Fprintf(out, "Total intersections: %d\n", result.All)
	return nil
}
