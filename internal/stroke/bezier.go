package stroke

import (
	"math"
	"sort"
)

// bezier is a Bezier curve of degree len-1 (1 to 3) given by its control
// points. It is the parametric form every Segment converts to for the
// curve math in this package.
type bezier []Point

// degree returns the polynomial degree of the curve.
func (b bezier) degree() int {
	return len(b) - 1
}

// eval evaluates the curve at parameter t (0 to 1) using de Casteljau's algorithm.
func (b bezier) eval(t float64) Point {
	var tmp [4]Point
	n := copy(tmp[:], b)
	for k := n - 1; k > 0; k-- {
		for i := 0; i < k; i++ {
			tmp[i] = tmp[i].Lerp(tmp[i+1], t)
		}
	}
	return tmp[0]
}

// split divides the curve at t into two curves of the same degree.
func (b bezier) split(t float64) (bezier, bezier) {
	n := len(b)
	left := make(bezier, n)
	right := make(bezier, n)

	var tmp [4]Point
	copy(tmp[:], b)
	left[0] = tmp[0]
	right[n-1] = tmp[n-1]
	for k := n - 1; k > 0; k-- {
		for i := 0; i < k; i++ {
			tmp[i] = tmp[i].Lerp(tmp[i+1], t)
		}
		left[n-k] = tmp[0]
		right[k-1] = tmp[k-1]
	}
	return left, right
}

// subsegment returns the portion of the curve from t0 to t1.
func (b bezier) subsegment(t0, t1 float64) bezier {
	if t0 <= 0 {
		if t1 >= 1 {
			return append(bezier(nil), b...)
		}
		left, _ := b.split(t1)
		return left
	}
	_, right := b.split(t0)
	if t1 >= 1 {
		return right
	}
	left, _ := right.split((t1 - t0) / (1 - t0))
	return left
}

// deriv returns the derivative curve (the hodograph), one degree lower.
func (b bezier) deriv() bezier {
	n := b.degree()
	d := make(bezier, n)
	for i := 0; i < n; i++ {
		d[i] = b[i+1].Sub(b[i]).Scale(float64(n))
	}
	return d
}

// tangent returns the direction of travel at t. When the derivative
// vanishes (a control point coincides with its anchor) the direction
// towards the nearest distinct control point is used instead.
func (b bezier) tangent(t float64) Point {
	d := b.deriv().eval(t)
	if d.R() > 1e-9 {
		return d
	}
	if t < 0.5 {
		for i := 1; i < len(b); i++ {
			if v := b[i].Sub(b[0]); v.R() > 1e-9 {
				return v
			}
		}
		return Point{}
	}
	last := len(b) - 1
	for i := last - 1; i >= 0; i-- {
		if v := b[last].Sub(b[i]); v.R() > 1e-9 {
			return v
		}
	}
	return Point{}
}

// normal returns the unit normal at t, the tangent rotated 90 degrees
// counter-clockwise.
func (b bezier) normal(t float64) Point {
	return b.tangent(t).unit().perp()
}

// curvature returns the signed curvature at t. Positive curvature turns
// towards the normal.
func (b bezier) curvature(t float64) float64 {
	if b.degree() < 2 {
		return 0
	}
	d1 := b.deriv()
	v := d1.eval(t)
	l := v.R()
	if l < 1e-9 {
		return 0
	}
	a := d1.deriv().eval(t)
	return v.Cross(a) / (l * l * l)
}

// bounds returns the bounding box of the control polygon, which always
// contains the curve.
func (b bezier) bounds() (minPt, maxPt Point) {
	minPt, maxPt = b[0], b[0]
	for _, p := range b[1:] {
		minPt.X = math.Min(minPt.X, p.X)
		minPt.Y = math.Min(minPt.Y, p.Y)
		maxPt.X = math.Max(maxPt.X, p.X)
		maxPt.Y = math.Max(maxPt.Y, p.Y)
	}
	return minPt, maxPt
}

// inflections returns the parameter values of inflection points of a
// cubic, strictly inside (0, 1).
func (b bezier) inflections() []float64 {
	if b.degree() != 3 {
		return nil
	}
	// See https://www.caffeineowl.com/graphics/2d/vectorial/cubic-inflexion.html
	a := b[1].Sub(b[0])
	bb := b[2].Sub(b[1]).Sub(a)
	c := b[3].Sub(b[0]).Sub(b[2].Sub(b[1]).Scale(3))

	roots := solveQuadratic(bb.Cross(c), a.Cross(c), a.Cross(bb))

	var result []float64
	for _, t := range roots {
		if t > 1e-6 && t < 1-1e-6 {
			result = append(result, t)
		}
	}
	sort.Float64s(result)
	return result
}

// chord returns the distance between the end anchors.
func (b bezier) chord() float64 {
	return b[0].Distance(b[len(b)-1])
}

// degenerate reports whether all control points coincide.
func (b bezier) degenerate() bool {
	for _, p := range b[1:] {
		if !p.EqualWithin(b[0], 1e-9) {
			return false
		}
	}
	return true
}
