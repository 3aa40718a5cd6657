package geometry

import "fmt"

// MaxCoordinate bounds |X| and |Y|. Segment lengths and the pairwise cross products stay far
// inside int range, and a single segment covers at most 2*MaxCoordinate+1 points.
const MaxCoordinate = 1 << 20

// Point is an integer lattice coordinate. It is comparable and used directly as a map key.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Less orders points lexicographically by (X, Y).
func (p Point) Less(o Point) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

// InRange reports whether both coordinates lie in [-MaxCoordinate, MaxCoordinate].
func (p Point) InRange() bool {
	return p.X >= -MaxCoordinate && p.X <= MaxCoordinate &&
		p.Y >= -MaxCoordinate && p.Y <= MaxCoordinate
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}
