package overlap

import (
	"context"
	"errors"
	"fmt"

	"github.com/povarna/generative-ai-agents/vent-agent/internal/geometry"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidThreshold = errors.New("minimum coverage must be at least 1")

// Counter answers "how many lattice points are covered by at least N segments".
type Counter struct {
	workers int
}

// NewCounter returns a counter. workers <= 1 rasterizes on the calling goroutine.
func NewCounter(workers int) *Counter {
	if workers < 1 {
		workers = 1
	}
	return &Counter{workers: workers}
}

func (c *Counter) Workers() int {
	return c.workers
}

// Count rasterizes every segment into a fresh CoverageMap. The first unsupported segment aborts
// the pass and no count is returned.
func (c *Counter) Count(segments []geometry.Segment, minCoverage int) (int, error) {
	if minCoverage < 1 {
		return 0, ErrInvalidThreshold
	}

	coverage, err := c.Coverage(segments)
	if err != nil {
		return 0, err
	}
	return coverage.CountAtLeast(minCoverage), nil
}

// Coverage builds the full coverage map for segments.
func (c *Counter) Coverage(segments []geometry.Segment) (*CoverageMap, error) {
	coverage := NewCoverageMap()
	for i, segment := range segments {
		if err := coverage.Add(segment); err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
	}
	return coverage, nil
}

// CountParallel splits the segments across the configured workers. Each worker fills a private
// CoverageMap and the partial maps are summed before thresholding.
func (c *Counter) CountParallel(ctx context.Context, segments []geometry.Segment, minCoverage int) (int, error) {
	if minCoverage < 1 {
		return 0, ErrInvalidThreshold
	}
	if c.workers == 1 || len(segments) < 2*c.workers {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		return c.Count(segments, minCoverage)
	}

	partials := make([]*CoverageMap, c.workers)
	chunk := (len(segments) + c.workers - 1) / c.workers

	g, ctx := errgroup.WithContext(ctx)
	for w := range c.workers {
		start := w * chunk
		end := min(start+chunk, len(segments))
		if start >= end {
			continue
		}

		g.Go(func() error {
			partial := NewCoverageMap()
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := partial.Add(segments[i]); err != nil {
					return fmt.Errorf("segment %d: %w", i, err)
				}
			}
			partials[w] = partial
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	coverage := NewCoverageMap()
	for _, partial := range partials {
		if partial != nil {
			coverage.Merge(partial)
		}
	}
	return coverage.CountAtLeast(minCoverage), nil
}

// AxisAligned keeps only horizontal and vertical segments. The input slice is not modified.
func AxisAligned(segments []geometry.Segment) []geometry.Segment {
	filtered := make([]geometry.Segment, 0, len(segments))
	for _, s := range segments {
		if s.IsAxisAligned() {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
