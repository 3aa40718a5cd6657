// Package intersect finds the lattice points shared by pairs of segments with closed-form line
// intersection. It is slower than rasterizing (every pair is visited) and serves as an independent
// oracle for the overlap counter.
//
// All tests are exact: cross products and parameter bounds are evaluated in integers, and a
// crossing is reported only if it lands on a lattice point.
package intersect

import (
	"errors"

	"github.com/povarna/generative-ai-agents/vent-agent/internal/geometry"
)

type vector struct {
	x, y int
}

func sub(p, q geometry.Point) vector {
	return vector{x: p.X - q.X, y: p.Y - q.Y}
}

func cross(v, w vector) int {
	return v.x*w.y - v.y*w.x
}

// Intersection returns the lattice points covered by both segments.
//
// A parallel pair that is not collinear yields geometry.ErrDegenerateIntersection, which callers
// should read as "no intersection". Collinear pairs yield every point of the shared run, and
// crossing pairs yield at most one point.
func Intersection(s1, s2 geometry.Segment) ([]geometry.Point, error) {
	for _, seg := range []geometry.Segment{s1, s2} {
		if !seg.A().InRange() || !seg.B().InRange() {
			return nil, &geometry.GeometryError{Kind: geometry.CoordinateOutOfRange, Segment: seg}
		}
	}

	p, q := s1.A(), s2.A()
	r, s := sub(s1.B(), p), sub(s2.B(), q)
	qp := sub(q, p)

	det := cross(r, s)
	if det == 0 {
		if cross(qp, r) != 0 || cross(qp, s) != 0 {
			return nil, &geometry.GeometryError{Kind: geometry.DegenerateIntersection, Segment: s1, Other: &s2}
		}
		return collinearRun(s1, s2)
	}

	// p + t*r == q + u*s with t = tNum/det, u = uNum/det.
	tNum, uNum := cross(qp, s), cross(qp, r)
	if det < 0 {
		det, tNum, uNum = -det, -tNum, -uNum
	}
	if tNum < 0 || tNum > det || uNum < 0 || uNum > det {
		return nil, nil
	}

	// With t reduced, p + t*r is a lattice point only if det divides r. Two 45° diagonals can
	// cross halfway between lattice points; no vent covers such a point.
	g := gcd(tNum, det)
	tNum, det = tNum/g, det/g
	if r.x%det != 0 || r.y%det != 0 {
		return nil, nil
	}
	return []geometry.Point{{X: p.X + tNum*(r.x/det), Y: p.Y + tNum*(r.y/det)}}, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// collinearRun enumerates the overlap of two segments lying on the same line. Canonical endpoint
// order is monotone along any line, so the overlap is [max(a1, a2), min(b1, b2)].
func collinearRun(s1, s2 geometry.Segment) ([]geometry.Point, error) {
	start, end := s1.A(), s1.B()
	if start.Less(s2.A()) {
		start = s2.A()
	}
	if s2.B().Less(end) {
		end = s2.B()
	}
	if end.Less(start) {
		return nil, nil
	}
	return geometry.NewSegment(start, end).CoveredPoints()
}

// Validator computes the set of points covered by two or more segments pairwise.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// OverlapPoints unions the intersections of every unordered pair of segments.
func (v *Validator) OverlapPoints(segments []geometry.Segment) (map[geometry.Point]struct{}, error) {
	for _, s := range segments {
		if err := s.Check(); err != nil {
			return nil, err
		}
	}

	points := make(map[geometry.Point]struct{})
	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			shared, err := Intersection(segments[i], segments[j])
			if err != nil {
				if errors.Is(err, geometry.ErrDegenerateIntersection) {
					continue
				}
				return nil, err
			}
			for _, p := range shared {
				points[p] = struct{}{}
			}
		}
	}
	return points, nil
}

// Count is the number of points covered by at least two segments.
func (v *Validator) Count(segments []geometry.Segment) (int, error) {
	points, err := v.OverlapPoints(segments)
	if err != nil {
		return 0, err
	}
	return len(points), nil
}
