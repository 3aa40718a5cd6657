package geometry

import "fmt"

type ErrorKind int

const (
	UnsupportedSlope ErrorKind = iota + 1
	// DegenerateIntersection marks a parallel, non-collinear pair. Callers treat it as "no
	// intersection" rather than as a failure.
	DegenerateIntersection
	CoordinateOutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case UnsupportedSlope:
		return "unsupported slope"
	case DegenerateIntersection:
		return "degenerate intersection"
	case CoordinateOutOfRange:
		return "coordinate out of range"
	default:
		return "unknown geometry error"
	}
}

// GeometryError reports a segment (or pair of segments) the engine cannot handle.
type GeometryError struct {
	Kind    ErrorKind
	Segment Segment
	Other   *Segment
}

var (
	ErrUnsupportedSlope       = &GeometryError{Kind: UnsupportedSlope}
	ErrDegenerateIntersection = &GeometryError{Kind: DegenerateIntersection}
	ErrCoordinateOutOfRange   = &GeometryError{Kind: CoordinateOutOfRange}
)

func (e *GeometryError) Error() string {
	if e.Other != nil {
		return fmt.Sprintf("%s between segments %s and %s", e.Kind, e.Segment, e.Other)
	}
	return fmt.Sprintf("%s for segment %s", e.Kind, e.Segment)
}

// Is matches any GeometryError of the same kind, so errors.Is(err, ErrUnsupportedSlope) works
// regardless of which segment failed.
func (e *GeometryError) Is(target error) bool {
	t, ok := target.(*GeometryError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}
