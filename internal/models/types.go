package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/vent-agent/internal/geometry"
)

const DefaultThreshold = 2

var ErrInvalidVentLine = errors.New("invalid vent line")

// VentLine is one raw (x1, y1, x2, y2) tuple as supplied by callers.
type VentLine struct {
	X1 int `json:"x1" jsonschema:"start x coordinate"`
	Y1 int `json:"y1" jsonschema:"start y coordinate"`
	X2 int `json:"x2" jsonschema:"end x coordinate"`
	Y2 int `json:"y2" jsonschema:"end y coordinate"`
}

func (l VentLine) Segment() geometry.Segment {
	return geometry.FromCoords(l.X1, l.Y1, l.X2, l.Y2)
}

// Validate checks that every coordinate lies in [0, geometry.MaxCoordinate].
func (l VentLine) Validate() error {
	for _, c := range []int{l.X1, l.Y1, l.X2, l.Y2} {
		if c < 0 || c > geometry.MaxCoordinate {
			return fmt.Errorf("%w: %d,%d -> %d,%d: coordinates must be within [0, %d]",
				ErrInvalidVentLine, l.X1, l.Y1, l.X2, l.Y2, geometry.MaxCoordinate)
		}
	}
	return nil
}

func FromSegment(s geometry.Segment) VentLine {
	return VentLine{X1: s.A().X, Y1: s.A().Y, X2: s.B().X, Y2: s.B().Y}
}

// Input message

type CountRequest struct {
	ID        string     `json:"id"`
	Lines     []VentLine `json:"lines"`
	Threshold int        `json:"threshold,omitempty"`
}

// Validate reports the first invalid line, numbered from 1.
func (r CountRequest) Validate() error {
	for i, l := range r.Lines {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return nil
}

func (r CountRequest) Segments() []geometry.Segment {
	segments := make([]geometry.Segment, 0, len(r.Lines))
	for _, l := range r.Lines {
		segments = append(segments, l.Segment())
	}
	return segments
}

// Final output

type CountResult struct {
	ID          string        `json:"id"`
	Threshold   int           `json:"threshold"`
	Lines       int           `json:"lines"`
	AxisAligned int           `json:"axis_aligned"`
	All         int           `json:"all"`
	Validated   bool          `json:"validated"`
	Cached      bool          `json:"cached"`
	Duration    time.Duration `json:"duration_ns"`
	CreatedAt   time.Time     `json:"created_at"`
}
