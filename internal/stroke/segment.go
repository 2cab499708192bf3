package stroke

import "math"

// SegmentKind identifies the variant of a Segment.
type SegmentKind int

const (
	// KindLine is a straight line segment.
	KindLine SegmentKind = iota
	// KindQuadratic is a quadratic Bezier curve.
	KindQuadratic
	// KindCubic is a cubic Bezier curve.
	KindCubic
)

// String returns the SVG command letter for the kind.
func (k SegmentKind) String() string {
	switch k {
	case KindLine:
		return "L"
	case KindQuadratic:
		return "Q"
	case KindCubic:
		return "C"
	default:
		return "?"
	}
}

// Segment is one drawable primitive of a path. The first point is the
// start anchor and the last point the end anchor; anything in between is
// a control point.
//
// Segments are values: every operation returns a new segment.
type Segment interface {
	// Kind returns the variant of the segment.
	Kind() SegmentKind

	// Points returns a copy of the segment's points.
	Points() []Point

	// FirstPoint returns the start anchor.
	FirstPoint() Point

	// LastPoint returns the end anchor.
	LastPoint() Point

	// Parametric returns the control points of the Bezier curve used for
	// numeric intersection.
	Parametric() []Point

	// Offset approximates the curve at constant distance radius. A
	// positive radius offsets to the left of the direction of travel.
	Offset(radius float64) Path

	// ReversePoints returns the same geometry traversed end to start.
	ReversePoints() Segment

	// Intersects returns the first intersection with other, ordered by
	// the parameter on the receiver.
	Intersects(other Segment) (Intersection, bool)

	// ExtendIntersects intersects the end tangent of the receiver with
	// the start tangent of other, both taken as infinite lines.
	ExtendIntersects(other Segment) (Point, bool)

	// Element returns the draw command that continues a path with this
	// segment.
	Element() PathElement
}

// Line is a straight segment.
type Line struct {
	pts [2]Point
}

// NewLine creates a line from start to end.
func NewLine(start, end Point) Line {
	return Line{pts: [2]Point{start, end}}
}

// Kind returns KindLine.
func (Line) Kind() SegmentKind { return KindLine }

// Points returns the start and end points.
func (l Line) Points() []Point { return []Point{l.pts[0], l.pts[1]} }

// FirstPoint returns the start point.
func (l Line) FirstPoint() Point { return l.pts[0] }

// LastPoint returns the end point.
func (l Line) LastPoint() Point { return l.pts[1] }

// Parametric returns the line as a cubic whose first handle is rotated by
// a tiny angle, so that parallel or zero-area hulls never reach the
// subdivision intersector.
func (l Line) Parametric() []Point {
	const nudge = 0.001 // degrees
	first, last := l.pts[0], l.pts[1]
	delta := last.Sub(first)
	return []Point{first, first.Add(delta.SetTheta(delta.Theta() + nudge)), last, last}
}

// Offset translates the line by radius, perpendicular to its direction.
func (l Line) Offset(radius float64) Path {
	return NewPath([]Segment{l.offset(radius)}, false, LineJoinMiter)
}

func (l Line) offset(radius float64) Line {
	if radius == 0 {
		return l
	}
	r := radius
	if r < 0 {
		r = -r
	}
	delta := l.pts[1].Sub(l.pts[0]).SetR(r)
	position := radius / r
	shift := delta.SetTheta(delta.Theta() + position*90)
	return NewLine(l.pts[0].Add(shift), l.pts[1].Add(shift))
}

// ReversePoints swaps start and end.
func (l Line) ReversePoints() Segment { return NewLine(l.pts[1], l.pts[0]) }

// Intersects returns the first intersection with other.
func (l Line) Intersects(other Segment) (Intersection, bool) {
	return DefaultOps.Intersect(l, other)
}

// ExtendIntersects intersects the line with the start tangent of other.
func (l Line) ExtendIntersects(other Segment) (Point, bool) {
	return extendIntersects(l, other)
}

// Element returns a LineTo to the end point.
func (l Line) Element() PathElement { return LineTo{Point: l.pts[1]} }

// QuadraticCurve is a quadratic Bezier segment.
type QuadraticCurve struct {
	pts [3]Point
}

// NewQuadraticCurve creates a quadratic Bezier from start through the
// control point to end.
func NewQuadraticCurve(start, control, end Point) QuadraticCurve {
	return QuadraticCurve{pts: [3]Point{start, control, end}}
}

// Kind returns KindQuadratic.
func (QuadraticCurve) Kind() SegmentKind { return KindQuadratic }

// Points returns start, control and end.
func (q QuadraticCurve) Points() []Point { return []Point{q.pts[0], q.pts[1], q.pts[2]} }

// FirstPoint returns the start point.
func (q QuadraticCurve) FirstPoint() Point { return q.pts[0] }

// LastPoint returns the end point.
func (q QuadraticCurve) LastPoint() Point { return q.pts[2] }

// Parametric returns the control points.
func (q QuadraticCurve) Parametric() []Point { return q.Points() }

// Offset approximates the offset curve with one or more quadratic curves.
func (q QuadraticCurve) Offset(radius float64) Path {
	return NewPath(DefaultOps.Offset(q, radius), false, LineJoinMiter)
}

// ReversePoints returns the curve traversed from end to start.
func (q QuadraticCurve) ReversePoints() Segment {
	return NewQuadraticCurve(q.pts[2], q.pts[1], q.pts[0])
}

// Intersects returns the first intersection with other.
func (q QuadraticCurve) Intersects(other Segment) (Intersection, bool) {
	return DefaultOps.Intersect(q, other)
}

// ExtendIntersects intersects the end tangent with the start tangent of other.
func (q QuadraticCurve) ExtendIntersects(other Segment) (Point, bool) {
	return extendIntersects(q, other)
}

// Element returns a QuadTo.
func (q QuadraticCurve) Element() PathElement {
	return QuadTo{Control: q.pts[1], Point: q.pts[2]}
}

// CubicCurve is a cubic Bezier segment.
type CubicCurve struct {
	pts [4]Point
}

// NewCubicCurve creates a cubic Bezier from start through two control
// points to end.
func NewCubicCurve(start, control1, control2, end Point) CubicCurve {
	return CubicCurve{pts: [4]Point{start, control1, control2, end}}
}

// Kind returns KindCubic.
func (CubicCurve) Kind() SegmentKind { return KindCubic }

// Points returns start, both control points and end.
func (c CubicCurve) Points() []Point {
	return []Point{c.pts[0], c.pts[1], c.pts[2], c.pts[3]}
}

// FirstPoint returns the start point.
func (c CubicCurve) FirstPoint() Point { return c.pts[0] }

// LastPoint returns the end point.
func (c CubicCurve) LastPoint() Point { return c.pts[3] }

// Parametric returns the control points.
func (c CubicCurve) Parametric() []Point { return c.Points() }

// Offset approximates the offset curve with one or more cubic curves.
func (c CubicCurve) Offset(radius float64) Path {
	return NewPath(DefaultOps.Offset(c, radius), false, LineJoinMiter)
}

// ReversePoints returns the curve traversed from end to start.
func (c CubicCurve) ReversePoints() Segment {
	return NewCubicCurve(c.pts[3], c.pts[2], c.pts[1], c.pts[0])
}

// Intersects returns the first intersection with other.
func (c CubicCurve) Intersects(other Segment) (Intersection, bool) {
	return DefaultOps.Intersect(c, other)
}

// ExtendIntersects intersects the end tangent with the start tangent of other.
func (c CubicCurve) ExtendIntersects(other Segment) (Point, bool) {
	return extendIntersects(c, other)
}

// Element returns a CubicTo.
func (c CubicCurve) Element() PathElement {
	return CubicTo{Control1: c.pts[1], Control2: c.pts[2], Point: c.pts[3]}
}

// segmentFromBezier builds the segment variant matching the curve degree.
func segmentFromBezier(b bezier) Segment {
	switch b.degree() {
	case 1:
		return NewLine(b[0], b[1])
	case 2:
		return NewQuadraticCurve(b[0], b[1], b[2])
	default:
		return NewCubicCurve(b[0], b[1], b[2], b[3])
	}
}

// extendIntersects intersects the infinite line through the last two
// distinct points of a with the one through the first two distinct points
// of b. It reports false when the lines are parallel.
func extendIntersects(a, b Segment) (Point, bool) {
	ap := a.Points()
	bp := b.Points()

	p2 := ap[len(ap)-1]
	p1 := ap[len(ap)-2]
	for i := len(ap) - 2; i > 0 && p1.EqualWithin(p2, 1e-9); i-- {
		p1 = ap[i-1]
	}
	p3 := bp[0]
	p4 := bp[1]
	for i := 1; i < len(bp)-1 && p4.EqualWithin(p3, 1e-9); i++ {
		p4 = bp[i+1]
	}

	return lineIntersection(p1, p2, p3, p4)
}

// lineIntersection intersects the infinite lines p1p2 and p3p4.
func lineIntersection(p1, p2, p3, p4 Point) (Point, bool) {
	x1, y1, x2, y2 := p1.X, p1.Y, p2.X, p2.Y
	x3, y3, x4, y4 := p3.X, p3.Y, p4.X, p4.Y

	d := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if d == 0 || !isFinite(d) {
		return Point{}, false
	}
	// Parallel within floating point noise.
	scale := p1.Distance(p2) * p3.Distance(p4)
	if math.Abs(d) <= 1e-10*scale {
		return Point{}, false
	}

	a := x1*y2 - y1*x2
	b := x3*y4 - y3*x4
	return Point{
		X: (a*(x3-x4) - (x1-x2)*b) / d,
		Y: (a*(y3-y4) - (y1-y2)*b) / d,
	}, true
}
