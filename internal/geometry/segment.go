package geometry

import "fmt"

type Orientation int

const (
	Invalid Orientation = iota
	Horizontal
	Vertical
	Diagonal45
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal45:
		return "diagonal45"
	default:
		return "invalid"
	}
}

// Segment is a closed line segment between two lattice points. The endpoints are stored
// lexicographically ordered, so a segment and its reversal are equal values.
type Segment struct {
	a Point
	b Point
}

// NewSegment canonicalizes the endpoints. The slope is not checked here; unsupported segments
// fail when their points are enumerated.
func NewSegment(a, b Point) Segment {
	if b.Less(a) {
		a, b = b, a
	}
	return Segment{a: a, b: b}
}

// FromCoords builds a segment from an (x1, y1, x2, y2) tuple.
func FromCoords(x1, y1, x2, y2 int) Segment {
	return NewSegment(Point{X: x1, Y: y1}, Point{X: x2, Y: y2})
}

func (s Segment) A() Point { return s.a }
func (s Segment) B() Point { return s.b }

// Delta returns b - a. Because of the canonical order dx is never negative.
func (s Segment) Delta() (dx, dy int) {
	return s.b.X - s.a.X, s.b.Y - s.a.Y
}

func (s Segment) Orientation() Orientation {
	dx, dy := s.Delta()
	switch {
	case dy == 0:
		return Horizontal
	case dx == 0:
		return Vertical
	case abs(dx) == abs(dy):
		return Diagonal45
	default:
		return Invalid
	}
}

// IsAxisAligned reports whether the segment is horizontal or vertical. A single point is both.
func (s Segment) IsAxisAligned() bool {
	o := s.Orientation()
	return o == Horizontal || o == Vertical
}

// Len is the number of lattice points covered: max(|dx|, |dy|) + 1.
func (s Segment) Len() int {
	dx, dy := s.Delta()
	return max(abs(dx), abs(dy)) + 1
}

// Check reports whether the segment can be rasterized: both endpoints within MaxCoordinate and a
// supported slope. Delta and Len are only meaningful for segments that pass.
func (s Segment) Check() error {
	if !s.a.InRange() || !s.b.InRange() {
		return &GeometryError{Kind: CoordinateOutOfRange, Segment: s}
	}
	if s.Orientation() == Invalid {
		return &GeometryError{Kind: UnsupportedSlope, Segment: s}
	}
	return nil
}

// Walk calls visit for every lattice point on the segment, a to b inclusive.
func (s Segment) Walk(visit func(Point)) error {
	if err := s.Check(); err != nil {
		return err
	}

	dx, dy := s.Delta()
	stepX, stepY := sign(dx), sign(dy)
	p := s.a
	for range s.Len() {
		visit(p)
		p.X += stepX
		p.Y += stepY
	}
	return nil
}

// CoveredPoints returns every lattice point on the segment, endpoints included.
func (s Segment) CoveredPoints() ([]Point, error) {
	if err := s.Check(); err != nil {
		return nil, err
	}

	points := make([]Point, 0, s.Len())
	err := s.Walk(func(p Point) {
		points = append(points, p)
	})
	return points, err
}

func (s Segment) String() string {
	return fmt.Sprintf("%s -> %s", s.a, s.b)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
