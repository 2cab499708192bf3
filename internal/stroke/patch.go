package stroke

// ConnectPatchWhenNeed returns segs with every gap between consecutive
// segments repaired, so that each segment starts where the previous one
// ends. For a gap between prev and cur:
//
//  1. If prev and cur cross, both are cut at the crossing (inner corner).
//  2. Otherwise, if their end tangents meet, the corner is bridged
//     according to join (outer corner).
//  3. Otherwise the tangents are parallel and the pair is left as is.
//
// When closed is true the pair (last, first) is repaired as well. The first
// segment stays first; bridge segments for the closing pair go at the end.
func ConnectPatchWhenNeed(segs []Segment, closed bool, join LineJoin, ops CurveOps) []Segment {
	if ops == nil {
		ops = DefaultOps
	}

	result := make([]Segment, 0, len(segs)+4)
	for _, seg := range segs {
		if len(result) == 0 {
			result = append(result, seg)
			continue
		}
		prev, bridge, cur := patchPair(result[len(result)-1], seg, join, ops, true)
		result[len(result)-1] = prev
		result = append(result, bridge...)
		result = append(result, cur)
	}

	if closed && len(result) > 0 {
		n := len(result)
		// A lone segment is never cut against itself.
		last, bridge, first := patchPair(result[n-1], result[0], join, ops, n > 1)
		result[n-1] = last
		result[0] = first
		result = append(result, bridge...)
	}
	return result
}

// patchPair repairs the gap between prev and cur. It returns the
// replacement for prev, the bridging segments and the replacement for cur.
func patchPair(prev, cur Segment, join LineJoin, ops CurveOps, intersect bool) (Segment, []Segment, Segment) {
	if prev.LastPoint().Equal(cur.FirstPoint()) {
		return prev, nil, cur
	}

	if intersect {
		if hit, ok := ops.Intersect(prev, cur); ok {
			slogger().Debug("stroke: cut at intersection",
				"prev", prev.Kind().String(), "cur", cur.Kind().String(),
				"t1", hit.T1, "t2", hit.T2)
			return withLastPoint(ops.Split(prev, 0, hit.T1), hit.Point),
				nil,
				withFirstPoint(ops.Split(cur, hit.T2, 1), hit.Point)
		}
	}

	if corner, ok := prev.ExtendIntersects(cur); ok {
		slogger().Debug("stroke: join", "style", join.String())
		return prev, joinBridge(join, prev.LastPoint(), cur.FirstPoint(), corner, ops), cur
	}
	return prev, nil, cur
}

// withFirstPoint returns s with its start anchor moved to p.
func withFirstPoint(s Segment, p Point) Segment {
	pts := s.Points()
	pts[0] = p
	return segmentFromBezier(pts)
}

// withLastPoint returns s with its end anchor moved to p.
func withLastPoint(s Segment, p Point) Segment {
	pts := s.Points()
	pts[len(pts)-1] = p
	return segmentFromBezier(pts)
}
