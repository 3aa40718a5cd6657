package executor

import (
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/geometry"
)

// Digest identifies a counting request independently of line order or endpoint direction.
func Digest(segments []geometry.Segment, threshold int) string {
	sorted := slices.Clone(segments)
	slices.SortFunc(sorted, func(s1, s2 geometry.Segment) int {
		switch {
		case s1.A() != s2.A():
			return comparePoints(s1.A(), s2.A())
		default:
			return comparePoints(s1.B(), s2.B())
		}
	})

	h := xxhash.New()
	_, _ = h.WriteString(strconv.Itoa(threshold))
	for _, s := range sorted {
		_, _ = h.WriteString("|")
		_, _ = h.WriteString(s.String())
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

func comparePoints(p, q geometry.Point) int {
	switch {
	case p == q:
		return 0
	case p.Less(q):
		return -1
	default:
		return 1
	}
}
