package executor

//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/vent-agent/internal/geometry"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/models"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/overlap"
	"github.com/rs/zerolog"
)

// ErrOracleMismatch means the rasterizing counter and the pairwise validator disagreed.
var ErrOracleMismatch = errors.New("overlap counter and intersection validator disagree")

// OverlapCounter rasterizes segments and counts points covered at least minCoverage times
type OverlapCounter interface {
	CountParallel(ctx context.Context, segments []geometry.Segment, minCoverage int) (int, error)
}

// Validator independently counts points covered by two or more segments
type Validator interface {
	Count(segments []geometry.Segment) (int, error)
}

// ResultCache stores results by input digest
type ResultCache interface {
	Get(ctx context.Context, key string) (*models.CountResult, error)
	Set(ctx context.Context, key string, result models.CountResult) error
}

type Settings struct {
	Threshold            int
	Validate             bool
	MaxValidatorSegments int
}

type Executor struct {
	counter   OverlapCounter
	validator Validator
	cache     ResultCache
	settings  Settings
	logger    *zerolog.Logger
}

// NewExecutor wires the passes together. validator and cache may be nil.
func NewExecutor(
	counter OverlapCounter,
	validator Validator,
	cache ResultCache,
	settings Settings,
	logger *zerolog.Logger,
) *Executor {
	if settings.Threshold == 0 {
		settings.Threshold = models.DefaultThreshold
	}
	return &Executor{
		counter:   counter,
		validator: validator,
		cache:     cache,
		settings:  settings,
		logger:    logger,
	}
}

// Execute runs the axis-aligned pass and the full pass over the request's vent lines.
// Any failing segment fails the whole request.
func (e *Executor) Execute(ctx context.Context, req models.CountRequest) (models.CountResult, error) {
	start := time.Now()
	threshold := req.Threshold
	if threshold == 0 {
		threshold = e.settings.Threshold
	}

	e.logger.Info().Str("requestID", req.ID).Int("lines", len(req.Lines)).Int("threshold", threshold).Msg("starting count")

	if err := req.Validate(); err != nil {
		return models.CountResult{}, err
	}

	segments := req.Segments()
	key := Digest(segments, threshold)

	if cached := e.lookup(ctx, key); cached != nil {
		cached.ID = req.ID
		cached.Cached = true
		e.logger.Info().Str("requestID", req.ID).Msg("cache hit")
		return *cached, nil
	}

	axisAligned, err := e.counter.CountParallel(ctx, overlap.AxisAligned(segments), threshold)
	if err != nil {
		return models.CountResult{}, fmt.Errorf("axis-aligned pass: %w", err)
	}

	all, err := e.counter.CountParallel(ctx, segments, threshold)
	if err != nil {
		return models.CountResult{}, fmt.Errorf("full pass: %w", err)
	}

	result := models.CountResult{
		ID:          req.ID,
		Threshold:   threshold,
		Lines:       len(segments),
		AxisAligned: axisAligned,
		All:         all,
		CreatedAt:   time.Now(),
	}

	if e.shouldValidate(segments, threshold) {
		if err := e.crossCheck(segments, result); err != nil {
			return models.CountResult{}, err
		}
		result.Validated = true
	}

	result.Duration = time.Since(start)

	if e.cache != nil {
		if err := e.cache.Set(ctx, key, result); err != nil {
			e.logger.Warn().Err(err).Str("requestID", req.ID).Msg("failed to cache result")
		}
	}

	e.logger.Info().
		Str("requestID", req.ID).
		Int("axisAligned", axisAligned).
		Int("all", all).
		Bool("validated", result.Validated).
		Dur("duration", result.Duration).
		Msg("count complete")

	return result, nil
}

func (e *Executor) lookup(ctx context.Context, key string) *models.CountResult {
	if e.cache == nil {
		return nil
	}

	cached, err := e.cache.Get(ctx, key)
	if err != nil {
		e.logger.Warn().Err(err).Str("key", key).Msg("cache lookup failed")
		return nil
	}
	return cached
}

// The validator only answers the two-or-more question and is quadratic in the segment count.
func (e *Executor) shouldValidate(segments []geometry.Segment, threshold int) bool {
	return e.settings.Validate &&
		e.validator != nil &&
		threshold == 2 &&
		len(segments) <= e.settings.MaxValidatorSegments
}

func (e *Executor) crossCheck(segments []geometry.Segment, result models.CountResult) error {
	axisAligned, err := e.validator.Count(overlap.AxisAligned(segments))
	if err != nil {
		return fmt.Errorf("validator axis-aligned pass: %w", err)
	}
	all, err := e.validator.Count(segments)
	if err != nil {
		return fmt.Errorf("validator full pass: %w", err)
	}

	if axisAligned != result.AxisAligned || all != result.All {
		e.logger.Error().
			Str("requestID", result.ID).
			Int("counterAxisAligned", result.AxisAligned).
			Int("validatorAxisAligned", axisAligned).
			Int("counterAll", result.All).
			Int("validatorAll", all).
			Msg("oracle mismatch")
		return fmt.Errorf("%w: counter=%d/%d validator=%d/%d",
			ErrOracleMismatch, result.AxisAligned, result.All, axisAligned, all)
	}
	return nil
}
