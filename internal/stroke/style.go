package stroke

// LineCap specifies the shape of open path endpoints.
type LineCap int

const (
	// LineCapButt closes the outline with a straight cut at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound closes the outline with a semicircle.
	LineCapRound
	// LineCapSquare extends the outline by half the width before cutting.
	LineCapSquare
)

// String returns the SVG name of the cap.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "unknown"
	}
}

// LineJoin specifies the shape of convex corners between segments.
type LineJoin int

const (
	// LineJoinMiter extends both edges until they meet.
	LineJoinMiter LineJoin = iota
	// LineJoinRound bridges the corner with a circular arc.
	LineJoinRound
	// LineJoinBevel bridges the corner with a straight line.
	LineJoinBevel
)

// String returns the SVG name of the join.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "unknown"
	}
}
