package stroke

import "math"

// Offset curve fitting.
//
// The exact offset of a Bezier curve is not a polynomial curve, so it is
// approximated piecewise. Each piece is a curve of the same degree whose
// end points sit on the true offset and whose end tangents are parallel to
// the source. A piece is accepted when sampled points stay within the
// tolerance of the offset distance; otherwise the source is split in half
// and both halves are fitted again.

// fitOffset approximates the offset of b at distance radius.
func fitOffset(b bezier, radius, tolerance float64, maxDepth int) []bezier {
	if radius == 0 || b.degenerate() {
		return []bezier{append(bezier(nil), b...)}
	}
	if b.degree() == 1 {
		l := NewLine(b[0], b[1]).offset(radius)
		return []bezier{l.Points()}
	}

	var out []bezier
	for _, piece := range splitAtInflections(b) {
		out = appendOffset(out, piece, radius, tolerance, maxDepth)
	}
	return out
}

// splitAtInflections breaks a cubic into pieces without curvature sign
// changes. Offsets of such pieces are well approximated by one cubic.
func splitAtInflections(b bezier) []bezier {
	ts := b.inflections()
	if len(ts) == 0 {
		return []bezier{b}
	}

	pieces := make([]bezier, 0, len(ts)+1)
	rest := b
	prev := 0.0
	for _, t := range ts {
		left, right := rest.split((t - prev) / (1 - prev))
		pieces = append(pieces, left)
		rest = right
		prev = t
	}
	return append(pieces, rest)
}

func appendOffset(out []bezier, b bezier, radius, tolerance float64, depth int) []bezier {
	candidate := offsetCandidate(b, radius)
	if depth <= 0 || offsetError(b, candidate, radius) <= tolerance {
		return append(out, candidate)
	}

	left, right := b.split(0.5)
	out = appendOffset(out, left, radius, tolerance, depth-1)
	return appendOffset(out, right, radius, tolerance, depth-1)
}

// offsetCandidate builds a same-degree curve approximating the offset of b.
func offsetCandidate(b bezier, radius float64) bezier {
	last := len(b) - 1
	p0 := b[0].Add(b.normal(0).Scale(radius))
	pn := b[last].Add(b.normal(1).Scale(radius))

	if b.degree() == 2 {
		t0 := b.tangent(0)
		t1 := b.tangent(1)
		c, ok := lineIntersection(p0, p0.Add(t0), pn, pn.Sub(t1))
		if !ok {
			c = b[1].Add(b.normal(0.5).Scale(radius))
		}
		return bezier{p0, c, pn}
	}

	// Handles shrink or grow with the local radius of curvature.
	k0 := math.Max(0, 1-radius*b.curvature(0))
	k1 := math.Max(0, 1-radius*b.curvature(1))
	return bezier{
		p0,
		p0.Add(b[1].Sub(b[0]).Scale(k0)),
		pn.Add(b[2].Sub(b[3]).Scale(k1)),
		pn,
	}
}

// offsetError returns the largest deviation of the candidate's distance to
// the source curve from the offset distance, over interior samples.
func offsetError(b, candidate bezier, radius float64) float64 {
	want := math.Abs(radius)
	d1 := b.deriv()
	d2 := d1.deriv()

	var worst float64
	for k := 1; k < 8; k++ {
		t := float64(k) / 8
		p := candidate.eval(t)

		// Project p back onto the source, starting from the same parameter.
		s := t
		for i := 0; i < 4; i++ {
			diff := b.eval(s).Sub(p)
			v := d1.eval(s)
			den := v.Dot(v) + diff.Dot(d2.eval(s))
			if math.Abs(den) < 1e-12 {
				break
			}
			s = clamp01(s - diff.Dot(v)/den)
		}

		dist := math.Min(p.Distance(b.eval(s)), p.Distance(b.eval(t)))
		if e := math.Abs(dist - want); e > worst {
			worst = e
		}
	}
	return worst
}
