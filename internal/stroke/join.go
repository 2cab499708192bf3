package stroke

import "math"

// joinBridge returns the segments connecting start (the end of the
// previous segment) to end (the start of the next one) around a convex
// corner whose edges, extended, meet at corner.
func joinBridge(join LineJoin, start, end, corner Point, ops CurveOps) []Segment {
	switch join {
	case LineJoinRound:
		return roundJoin(start, end, corner, ops)
	case LineJoinBevel:
		return []Segment{NewLine(start, end)}
	default:
		return []Segment{NewLine(start, corner), NewLine(corner, end)}
	}
}

// roundJoin bridges start and end with two quadratic pieces of the circle
// tangent to both edges. The circle center lies where the perpendiculars
// to the edges through start and end cross; for offsets of lines that is
// the original vertex.
func roundJoin(start, end, corner Point, ops CurveOps) []Segment {
	deltaStart := corner.Sub(start)
	deltaEnd := corner.Sub(end)

	center, ok := lineIntersection(
		start, start.Add(deltaStart.SetTheta(deltaStart.Theta()+90)),
		end, end.Add(deltaEnd.SetTheta(deltaEnd.Theta()+90)),
	)
	if !ok {
		return []Segment{NewLine(start, end)}
	}
	return arcPieces(start, end, center, ops)
}

// arcPieces approximates the shorter arc from start to end around center
// with two quadratic curves meeting at the arc midpoint.
func arcPieces(start, end, center Point, ops CurveOps) []Segment {
	half := halfPoint(start, end, center)
	firstHalf := halfPoint(start, half, center)
	lastHalf := halfPoint(half, end, center)
	return []Segment{
		ops.QuadraticFromPoints(start, firstHalf, half, 0.5),
		ops.QuadraticFromPoints(half, lastHalf, end, 0.5),
	}
}

// halfPoint returns the point on the circle around center through first
// that bisects the shorter arc from first to last. The sweep is measured
// in degrees and wrapped so it never exceeds 180 in magnitude.
func halfPoint(first, last, center Point) Point {
	d1 := first.Sub(center)
	d2 := last.Sub(center)
	sweep := d2.Theta() - d1.Theta()
	if math.Abs(sweep) > 180 {
		sweep -= math.Copysign(360, sweep)
	}
	return center.Add(d1.SetTheta(d1.Theta() + sweep/2))
}
