package overlap

import "github.com/povarna/generative-ai-agents/vent-agent/internal/geometry"

// CoverageMap tallies how many segments pass through each lattice point.
// It belongs to a single counting pass and is not safe for concurrent use.
type CoverageMap struct {
	tally map[geometry.Point]int
}

func NewCoverageMap() *CoverageMap {
	return &CoverageMap{tally: make(map[geometry.Point]int)}
}

// Add rasterizes the segment into the map. On error the map is left untouched.
func (m *CoverageMap) Add(segment geometry.Segment) error {
	points, err := segment.CoveredPoints()
	if err != nil {
		return err
	}

	for _, p := range points {
		m.tally[p]++
	}
	return nil
}

// Merge adds the tallies of other into m. Tallies are summed, never overwritten.
func (m *CoverageMap) Merge(other *CoverageMap) {
	for p, n := range other.tally {
		m.tally[p] += n
	}
}

func (m *CoverageMap) Tally(p geometry.Point) int {
	return m.tally[p]
}

// Len is the number of distinct points covered at least once.
func (m *CoverageMap) Len() int {
	return len(m.tally)
}

func (m *CoverageMap) CountAtLeast(minCoverage int) int {
	var count int
	for _, n := range m.tally {
		if n >= minCoverage {
			count++
		}
	}
	return count
}

// PointsAtLeast returns the points whose tally is >= minCoverage, in no particular order.
func (m *CoverageMap) PointsAtLeast(minCoverage int) []geometry.Point {
	var points []geometry.Point
	for p, n := range m.tally {
		if n >= minCoverage {
			points = append(points, p)
		}
	}
	return points
}
