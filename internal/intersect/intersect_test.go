package intersect

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/povarna/generative-ai-agents/vent-agent/internal/geometry"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/overlap"
)

func seg(x1, y1, x2, y2 int) geometry.Segment {
	return geometry.FromCoords(x1, y1, x2, y2)
}

func sampleSegments() []geometry.Segment {
	return []geometry.Segment{
		seg(0, 9, 5, 9), seg(8, 0, 0, 8), seg(9, 4, 3, 4), seg(2, 2, 2, 1), seg(7, 0, 7, 4),
		seg(6, 4, 2, 0), seg(0, 9, 2, 9), seg(3, 4, 1, 4), seg(0, 0, 8, 8), seg(5, 5, 8, 2),
	}
}

func TestIntersection(t *testing.T) {
	tests := []struct {
		name     string
		s1, s2   geometry.Segment
		expected int
	}{
		{"collinear horizontal prefix", seg(0, 9, 5, 9), seg(0, 9, 2, 9), 3},
		{"collinear horizontal touching", seg(0, 9, 2, 9), seg(2, 9, 5, 9), 1},
		{"collinear vertical", seg(9, 0, 9, 5), seg(9, 0, 9, 2), 3},
		{"collinear anti-diagonal", seg(6, 0, 0, 6), seg(6, 0, 3, 3), 4},
		{"collinear diagonal", seg(0, 0, 6, 6), seg(0, 0, 3, 3), 4},
		{"diagonal cross", seg(0, 0, 6, 6), seg(0, 6, 6, 0), 1},
		{"diagonal and vertical", seg(0, 0, 6, 6), seg(3, 6, 3, 0), 1},
		{"perpendicular at endpoint", seg(0, 0, 4, 0), seg(4, 0, 4, 4), 1},
		{"point on line", seg(3, 3, 3, 3), seg(0, 0, 8, 8), 1},
		{"same point", seg(3, 3, 3, 3), seg(3, 3, 3, 3), 1},
		{"collinear disjoint horizontal", seg(0, 5, 3, 5), seg(4, 5, 8, 5), 0},
		{"collinear disjoint anti-diagonal", seg(6, 0, 4, 2), seg(3, 3, 2, 4), 0},
		{"collinear disjoint diagonal", seg(0, 0, 2, 2), seg(3, 3, 4, 4), 0},
		{"crossing lines beyond segments", seg(0, 0, 2, 0), seg(5, 1, 5, 4), 0},
		{"half lattice crossing", seg(0, 0, 1, 1), seg(0, 1, 1, 0), 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			points, err := Intersection(test.s1, test.s2)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(points) != test.expected {
				t.Errorf("expected %d points, got %d: %v", test.expected, len(points), points)
			}

			swapped, err := Intersection(test.s2, test.s1)
			if err != nil {
				t.Fatalf("unexpected error on swapped pair: %v", err)
			}
			if len(swapped) != len(points) {
				t.Errorf("expected symmetric result, got %d and %d", len(points), len(swapped))
			}
		})
	}
}

func TestIntersection_CrossingPoint(t *testing.T) {
	points, err := Intersection(seg(8, 0, 0, 8), seg(7, 0, 7, 4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 1 || points[0] != (geometry.Point{X: 7, Y: 1}) {
		t.Errorf("expected [7,1], got %v", points)
	}
}

func TestIntersection_ParallelNotCollinear(t *testing.T) {
	tests := []struct {
		name   string
		s1, s2 geometry.Segment
	}{
		{"horizontal", seg(0, 8, 3, 8), seg(0, 9, 3, 9)},
		{"diagonal", seg(0, 0, 3, 3), seg(1, 0, 4, 3)},
		{"point off line", seg(1, 2, 1, 2), seg(0, 0, 5, 0)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			points, err := Intersection(test.s1, test.s2)
			if !errors.Is(err, geometry.ErrDegenerateIntersection) {
				t.Errorf("expected ErrDegenerateIntersection, got %v", err)
			}
			if len(points) != 0 {
				t.Errorf("expected no points, got %v", points)
			}
		})
	}
}

func TestValidator_Count_Sample(t *testing.T) {
	validator := NewValidator()

	straight, err := validator.Count(overlap.AxisAligned(sampleSegments()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if straight != 5 {
		t.Errorf("expected 5, got %d", straight)
	}

	all, err := validator.Count(sampleSegments())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if all != 12 {
		t.Errorf("expected 12, got %d", all)
	}
}

func TestValidator_Count_UnsupportedSlope(t *testing.T) {
	_, err := NewValidator().Count([]geometry.Segment{seg(0, 0, 5, 0), seg(0, 0, 1, 2)})
	if !errors.Is(err, geometry.ErrUnsupportedSlope) {
		t.Errorf("expected ErrUnsupportedSlope, got %v", err)
	}
}

func TestValidator_Count_CoordinateOutOfRange(t *testing.T) {
	huge := seg(0, 0, math.MaxInt, 0)

	if _, err := NewValidator().Count([]geometry.Segment{huge, seg(0, 0, 0, 0)}); !errors.Is(err, geometry.ErrCoordinateOutOfRange) {
		t.Errorf("Count: expected ErrCoordinateOutOfRange, got %v", err)
	}
	if _, err := Intersection(seg(0, 5, 5, 0), huge); !errors.Is(err, geometry.ErrCoordinateOutOfRange) {
		t.Errorf("Intersection: expected ErrCoordinateOutOfRange, got %v", err)
	}
}

func TestIntersection_AtCoordinateBound(t *testing.T) {
	m := geometry.MaxCoordinate
	got, err := Intersection(seg(-m, -m, m, m), seg(-m, m, m, -m))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != (geometry.Point{X: 0, Y: 0}) {
		t.Errorf("expected crossing at 0,0, got %v", got)
	}
}

func TestValidator_Count_EmptyAndSingle(t *testing.T) {
	validator := NewValidator()

	for _, segments := range [][]geometry.Segment{nil, {seg(0, 0, 5, 5)}} {
		count, err := validator.Count(segments)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 0 {
			t.Errorf("expected 0, got %d", count)
		}
	}
}

// The rasterizer and the pairwise validator must agree on every horizontal, vertical and 45° input.
func TestValidator_AgreesWithCounter(t *testing.T) {
	rng := rand.New(rand.NewPCG(2021, 5))
	validator := NewValidator()
	counter := overlap.NewCounter(1)

	for round := 0; round < 200; round++ {
		segments := randomSegments(rng, 2+rng.IntN(25), 4+rng.IntN(20))

		want, err := counter.Count(segments, 2)
		if err != nil {
			t.Fatalf("round %d: counter error: %v", round, err)
		}
		got, err := validator.Count(segments)
		if err != nil {
			t.Fatalf("round %d: validator error: %v", round, err)
		}
		if got != want {
			t.Fatalf("round %d: validator counted %d, counter counted %d for %v", round, got, want, segments)
		}
	}
}

func randomSegments(rng *rand.Rand, n int, size int) []geometry.Segment {
	segments := make([]geometry.Segment, 0, n)
	for range n {
		a := geometry.Point{X: rng.IntN(size), Y: rng.IntN(size)}
		length := rng.IntN(size)
		b := a
		switch rng.IntN(4) {
		case 0:
			b.X += length
		case 1:
			b.Y -= length
		case 2:
			b.X -= length
			b.Y -= length
		default:
			b.X += length
			b.Y -= length
		}
		segments = append(segments, geometry.NewSegment(a, b))
	}
	return segments
}
