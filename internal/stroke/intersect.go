package stroke

import (
	"math"
	"sort"
)

// Intersection is a point shared by two segments together with the
// parameter of that point on each of them.
type Intersection struct {
	// T1 is the parameter on the first segment.
	T1 float64
	// T2 is the parameter on the second segment.
	T2 float64
	// Point is the intersection point, evaluated on the first segment.
	Point Point
}

// rangeEps admits roots that fall a hair outside [0, 1].
const rangeEps = 1e-9

// intersections returns all intersections of a and b ordered by T1.
func intersections(a, b Segment, threshold float64) []Intersection {
	var result []Intersection

	aLine := a.Kind() == KindLine
	bLine := b.Kind() == KindLine
	ap := a.Points()
	bp := b.Points()

	switch {
	case aLine && bLine:
		if hit, ok, parallel := intersectLines(ap[0], ap[1], bp[0], bp[1]); ok {
			result = []Intersection{hit}
		} else if parallel {
			result = intersectCurves(bezier(a.Parametric()), bezier(b.Parametric()), threshold)
			result = projectLineParams(result, a, b)
		}
	case aLine:
		result = intersectLineCurve(a, bezier(bp), threshold)
	case bLine:
		result = intersectLineCurve(b, bezier(ap), threshold)
		for i := range result {
			result[i].T1, result[i].T2 = result[i].T2, result[i].T1
			result[i].Point = bezier(ap).eval(result[i].T1)
		}
	default:
		result = intersectCurves(bezier(ap), bezier(bp), threshold)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].T1 < result[j].T1 })
	return result
}

// intersectLines intersects two line segments in closed form. parallel is
// set when the determinant vanishes, in which case ok is false.
func intersectLines(p1, p2, p3, p4 Point) (hit Intersection, ok, parallel bool) {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	denom := d1.Cross(d2)
	if math.Abs(denom) <= 1e-10*d1.R()*d2.R() {
		return Intersection{}, false, true
	}

	w := p3.Sub(p1)
	t := w.Cross(d2) / denom
	u := w.Cross(d1) / denom
	if t < -rangeEps || t > 1+rangeEps || u < -rangeEps || u > 1+rangeEps {
		return Intersection{}, false, false
	}
	t = clamp01(t)
	u = clamp01(u)
	return Intersection{T1: t, T2: u, Point: p1.Lerp(p2, t)}, true, false
}

// intersectLineCurve intersects a line with a quadratic or cubic curve by
// rotating the curve into the line's frame and solving for the roots of
// its distance polynomial. T1 is the parameter on the line.
func intersectLineCurve(l Segment, c bezier, threshold float64) []Intersection {
	lp := l.Points()
	l0, l1 := lp[0], lp[1]
	d := l1.Sub(l0)
	length := d.R()
	if length < 1e-12 {
		result := intersectCurves(bezier(l.Parametric()), c, threshold)
		for i := range result {
			result[i].T1 = 0
		}
		return result
	}

	ys := make([]float64, len(c))
	for i, p := range c {
		ys[i] = d.Cross(p.Sub(l0)) / length
	}

	var roots []float64
	switch c.degree() {
	case 2:
		roots = solveQuadratic(ys[0]-2*ys[1]+ys[2], 2*(ys[1]-ys[0]), ys[0])
	case 3:
		roots = solveCubic(
			-ys[0]+3*ys[1]-3*ys[2]+ys[3],
			3*ys[0]-6*ys[1]+3*ys[2],
			-3*ys[0]+3*ys[1],
			ys[0],
		)
	default:
		return nil
	}

	var result []Intersection
	for _, t := range unitRoots(roots) {
		p := c.eval(t)
		u := p.Sub(l0).Dot(d) / (length * length)
		if u < -rangeEps || u > 1+rangeEps {
			continue
		}
		result = append(result, Intersection{T1: clamp01(u), T2: t, Point: p})
	}
	return result
}

// intersectCurves finds intersections of two curves by recursive bounding
// box subdivision, then polishes each hit with Newton iterations.
func intersectCurves(a, b bezier, threshold float64) []Intersection {
	var hits []Intersection
	budget := 1 << 14

	var rec func(a bezier, a0, a1 float64, b bezier, b0, b1 float64, depth int)
	rec = func(a bezier, a0, a1 float64, b bezier, b0, b1 float64, depth int) {
		if budget <= 0 {
			return
		}
		budget--

		aMin, aMax := a.bounds()
		bMin, bMax := b.bounds()
		if aMax.X < bMin.X || bMax.X < aMin.X || aMax.Y < bMin.Y || bMax.Y < aMin.Y {
			return
		}
		if depth >= 48 || (boxSize(aMin, aMax) < threshold && boxSize(bMin, bMax) < threshold) {
			hits = append(hits, Intersection{T1: (a0 + a1) / 2, T2: (b0 + b1) / 2})
			return
		}

		am := (a0 + a1) / 2
		bm := (b0 + b1) / 2
		al, ar := a.split(0.5)
		bl, br := b.split(0.5)
		rec(al, a0, am, bl, b0, bm, depth+1)
		rec(al, a0, am, br, bm, b1, depth+1)
		rec(ar, am, a1, bl, b0, bm, depth+1)
		rec(ar, am, a1, br, bm, b1, depth+1)
	}
	rec(a, 0, 1, b, 0, 1, 0)

	for i := range hits {
		hits[i].T1, hits[i].T2 = refineIntersection(a, b, hits[i].T1, hits[i].T2)
		hits[i].Point = a.eval(hits[i].T1)
	}
	return dedupeIntersections(hits)
}

// refineIntersection runs Newton's method on a(s) - b(t) = 0 starting from
// the subdivision estimate. The estimate is kept when Newton does not
// improve on it.
func refineIntersection(a, b bezier, s, t float64) (float64, float64) {
	da := a.deriv()
	db := b.deriv()
	bestS, bestT := s, t
	bestErr := a.eval(s).Distance(b.eval(t))

	for i := 0; i < 8 && bestErr > 1e-9; i++ {
		r := b.eval(t).Sub(a.eval(s))
		u := da.eval(s)
		v := db.eval(t).Scale(-1)
		det := u.Cross(v)
		if math.Abs(det) < 1e-12 {
			break
		}
		s = clamp01(s + r.Cross(v)/det)
		t = clamp01(t + u.Cross(r)/det)
		if e := a.eval(s).Distance(b.eval(t)); e < bestErr {
			bestS, bestT, bestErr = s, t, e
		}
	}
	return bestS, bestT
}

// dedupeIntersections drops hits that converged onto the same parameters.
func dedupeIntersections(hits []Intersection) []Intersection {
	if len(hits) < 2 {
		return hits
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].T1 < hits[j].T1 })
	result := hits[:1]
	for _, h := range hits[1:] {
		last := result[len(result)-1]
		if math.Abs(h.T1-last.T1) < 1e-2 && math.Abs(h.T2-last.T2) < 1e-2 {
			continue
		}
		result = append(result, h)
	}
	return result
}

// projectLineParams replaces parameters measured on the nudged cubic form
// of a line with the parameter of the projected point on the line itself.
func projectLineParams(hits []Intersection, a, b Segment) []Intersection {
	for i := range hits {
		hits[i].T1 = projectOnLine(a, hits[i].Point)
		hits[i].T2 = projectOnLine(b, hits[i].Point)
	}
	return hits
}

func projectOnLine(l Segment, p Point) float64 {
	lp := l.Points()
	d := lp[1].Sub(lp[0])
	l2 := d.Dot(d)
	if l2 == 0 {
		return 0
	}
	return clamp01(p.Sub(lp[0]).Dot(d) / l2)
}

func boxSize(minPt, maxPt Point) float64 {
	return math.Max(maxPt.X-minPt.X, maxPt.Y-minPt.Y)
}

func clamp01(t float64) float64 {
	return math.Min(math.Max(t, 0), 1)
}
