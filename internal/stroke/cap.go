package stroke

// CapPath returns the geometry closing an open outline from start (the
// end of one offset side) to end (the start of the other). The cap bulges
// to the left of the chord from start to end, which is outward for the
// forward-then-backward traversal used by Outline.
func CapPath(start, end Point, lineCap LineCap) Path {
	return capPath(start, end, lineCap, DefaultOps)
}

func capPath(start, end Point, lineCap LineCap, ops CurveOps) Path {
	var segs []Segment
	switch lineCap {
	case LineCapRound:
		center := start.Center(end)
		apex := capApex(start, end)
		segs = []Segment{
			ops.QuadraticFromPoints(start, halfPoint(start, apex, center), apex, 0.5),
			ops.QuadraticFromPoints(apex, halfPoint(apex, end, center), end, 0.5),
		}
	case LineCapSquare:
		r := end.Distance(start) / 2
		side := NewLine(start, end).offset(r)
		segs = []Segment{
			NewLine(start, side.FirstPoint()),
			side,
			NewLine(side.LastPoint(), end),
		}
	default:
		segs = []Segment{NewLine(start, end)}
	}
	return NewPath(segs, false, LineJoinMiter).WithOps(ops)
}

// capApex returns the point half the chord length away from the chord
// midpoint, perpendicular to the chord on its left side.
func capApex(start, end Point) Point {
	r := end.Distance(start) / 2
	center := start.Center(end)
	delta := center.Sub(start)
	return center.Add(delta.SetR(r).SetTheta(delta.Theta() + 90))
}
