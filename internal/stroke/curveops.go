package stroke

// CurveOps is the curve math capability the path algorithms depend on.
// Path uses DefaultOps unless another implementation is supplied with
// Path.WithOps, which lets the geometry engine be checked against a
// reference implementation.
type CurveOps interface {
	// Split returns the part of s between parameters t0 and t1.
	Split(s Segment, t0, t1 float64) Segment

	// Offset approximates the offset of s at distance radius with
	// segments of the same kind.
	Offset(s Segment, radius float64) []Segment

	// Intersect returns the first intersection of a and b, ordered by the
	// parameter on a.
	Intersect(a, b Segment) (Intersection, bool)

	// QuadraticFromPoints returns the quadratic curve from start to end
	// that passes through the given point at parameter t.
	QuadraticFromPoints(start, through, end Point, t float64) QuadraticCurve
}

// Default curve math settings.
const (
	// DefaultTolerance is the maximum deviation of an offset curve from
	// the exact offset distance.
	DefaultTolerance = 0.05

	// DefaultMaxDepth bounds offset subdivision, so one source curve
	// yields at most 2^DefaultMaxDepth pieces per monotone span.
	DefaultMaxDepth = 10

	// DefaultThreshold is the bounding box size at which curve-curve
	// subdivision stops and reports an intersection.
	DefaultThreshold = 0.01
)

// BezierOps implements CurveOps with the Bezier math in this package.
type BezierOps struct {
	Tolerance float64
	MaxDepth  int
	Threshold float64
}

// DefaultOps is the CurveOps used by segments and new paths.
var DefaultOps = NewBezierOps()

// NewBezierOps returns BezierOps with default settings.
func NewBezierOps() BezierOps {
	return BezierOps{
		Tolerance: DefaultTolerance,
		MaxDepth:  DefaultMaxDepth,
		Threshold: DefaultThreshold,
	}
}

// WithTolerance returns a copy with the offset tolerance set.
// Non-positive values are ignored.
func (o BezierOps) WithTolerance(tolerance float64) BezierOps {
	if tolerance > 0 {
		o.Tolerance = tolerance
	}
	return o
}

// WithMaxDepth returns a copy with the offset subdivision depth set.
// Negative values are ignored.
func (o BezierOps) WithMaxDepth(depth int) BezierOps {
	if depth >= 0 {
		o.MaxDepth = depth
	}
	return o
}

// Split returns the part of s between t0 and t1.
func (o BezierOps) Split(s Segment, t0, t1 float64) Segment {
	return segmentFromBezier(bezier(s.Points()).subsegment(t0, t1))
}

// Offset approximates the offset of s.
func (o BezierOps) Offset(s Segment, radius float64) []Segment {
	pieces := fitOffset(bezier(s.Points()), radius, o.Tolerance, o.MaxDepth)
	segs := make([]Segment, len(pieces))
	for i, b := range pieces {
		segs[i] = segmentFromBezier(b)
	}
	if len(segs) > 1 {
		slogger().Debug("stroke: curve offset", "kind", s.Kind().String(), "pieces", len(segs))
	}
	return segs
}

// Intersect returns the first intersection of a and b.
func (o BezierOps) Intersect(a, b Segment) (Intersection, bool) {
	hits := o.Intersections(a, b)
	if len(hits) == 0 {
		return Intersection{}, false
	}
	return hits[0], true
}

// Intersections returns every intersection of a and b ordered by the
// parameter on a.
func (o BezierOps) Intersections(a, b Segment) []Intersection {
	return intersections(a, b, o.Threshold)
}

// QuadraticFromPoints returns the quadratic curve from start to end that
// passes through the given point at parameter t.
func (o BezierOps) QuadraticFromPoints(start, through, end Point, t float64) QuadraticCurve {
	return quadraticFromPoints(start, through, end, t)
}

// quadraticFromPoints solves for the control point of the quadratic
// through start, through (at t) and end.
func quadraticFromPoints(start, through, end Point, t float64) QuadraticCurve {
	switch {
	case t <= 0:
		return NewQuadraticCurve(through, through, end)
	case t >= 1:
		return NewQuadraticCurve(start, through, through)
	}

	// B(t) = (1-t)^2 S + 2t(1-t) C + t^2 E
	mt := 1 - t
	c := through.Sub(start.Scale(mt * mt)).Sub(end.Scale(t * t)).Scale(1 / (2 * t * mt))
	return NewQuadraticCurve(start, c, end)
}
