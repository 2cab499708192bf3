package stroke

import "math"

// Polynomial root solvers used for inflection points and line-curve
// intersections. Based on the kurbo algorithms.

// solveQuadratic finds real roots of ax^2 + bx + c = 0 in ascending order.
// A vanishing leading coefficient degrades to the linear equation.
func solveQuadratic(a, b, c float64) []float64 {
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		root := -c / b
		if isFinite(root) {
			return []float64{root}
		}
		if c == 0 && b == 0 {
			return []float64{0}
		}
		return nil
	}

	arg := sc1*sc1 - 4*sc0
	var root1 float64
	switch {
	case !isFinite(arg):
		root1 = -sc1
	case arg < 0:
		return nil
	case arg == 0:
		return []float64{-0.5 * sc1}
	default:
		// Numerically stable form, see https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}

	root2 := sc0 / root1
	if !isFinite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		return []float64{root2, root1}
	}
	return []float64{root1, root2}
}

// solveCubic finds real roots of ax^3 + bx^2 + cx + d = 0 (unsorted).
//
// Uses the method from https://momentsingraphics.de/CubicRoots.html,
// based on Jim Blinn's "How to Solve a Cubic Equation".
func solveCubic(a, b, c, d float64) []float64 {
	if math.Abs(a) <= 1e-12*(math.Abs(b)+math.Abs(c)+math.Abs(d)) {
		return solveQuadratic(b, c, d)
	}

	const oneThird = 1.0 / 3.0
	aRecip := 1 / a
	c2 := b * (oneThird * aRecip)
	c1 := c * (oneThird * aRecip)
	c0 := d * aRecip
	if !isFinite(c0) || !isFinite(c1) || !isFinite(c2) {
		return solveQuadratic(b, c, d)
	}

	d0 := -c2*c2 + c1
	d1 := -c1*c2 + c0
	d2 := c2*c0 - c1*c1
	disc := 4*d0*d2 - d1*d1
	de := -2*c2*d0 + d1

	switch {
	case disc < 0:
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * de
		t1 := math.Cbrt(r+sq) + math.Cbrt(r-sq)
		return []float64{t1 - c2}
	case disc == 0:
		t1 := math.Copysign(math.Sqrt(-d0), de)
		return []float64{t1 - c2, -2*t1 - c2}
	}

	th := math.Atan2(math.Sqrt(disc), -de) * oneThird
	thSin, thCos := math.Sincos(th)
	ss3 := thSin * math.Sqrt(3)
	t := 2 * math.Sqrt(-d0)
	return []float64{
		t*thCos - c2,
		t*0.5*(-thCos+ss3) - c2,
		t*0.5*(-thCos-ss3) - c2,
	}
}

// unitRoots keeps the roots inside [0, 1], snapping values within a small
// epsilon of the boundaries onto them.
func unitRoots(roots []float64) []float64 {
	const eps = 1e-9
	var result []float64
	for _, r := range roots {
		if !isFinite(r) || r < -eps || r > 1+eps {
			continue
		}
		result = append(result, math.Min(math.Max(r, 0), 1))
	}
	return result
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
