package svgpath

import "math"

// Unarc returns the absolute path with every elliptical arc replaced by
// cubic curves, one per quarter turn or less. Arcs with a zero radius
// become lines; arcs ending at their start point are dropped.
func (p Path) Unarc() Path {
	abs := p.Abs()
	out := Path{Segments: make([]Segment, 0, len(abs.Segments))}
	var cur cursor

	for _, s := range abs.Segments {
		if s.Cmd != 'A' {
			cur.advance(s)
			out.Segments = append(out.Segments, s)
			continue
		}

		x2, y2 := s.Args[5], s.Args[6]
		switch {
		case cur.x == x2 && cur.y == y2:
		case s.Args[0] == 0 || s.Args[1] == 0:
			out.Segments = append(out.Segments, Segment{Cmd: 'L', Args: []float64{x2, y2}})
		default:
			for _, c := range arcToCubics(cur.x, cur.y, s.Args[0], s.Args[1], s.Args[2],
				s.Args[3] != 0, s.Args[4] != 0, x2, y2) {
				out.Segments = append(out.Segments, Segment{Cmd: 'C', Args: c[:]})
			}
		}
		cur.x, cur.y = x2, y2
	}
	return out
}

// arcToCubics converts an SVG endpoint arc to cubic Bezier control points
// (c1x, c1y, c2x, c2y, x, y). rot is in degrees. The conversion follows
// the endpoint to center parameterization of SVG 1.1 appendix F.6.
func arcToCubics(x1, y1, rx, ry, rot float64, large, sweep bool, x2, y2 float64) [][6]float64 {
	sinPhi, cosPhi := math.Sincos(rot * math.Pi / 180)

	// Step 1: endpoint midpoint in the ellipse frame.
	dx := (x1 - x2) / 2
	dy := (y1 - y2) / 2
	x1p := cosPhi*dx + sinPhi*dy
	y1p := -sinPhi*dx + cosPhi*dy

	rx, ry = math.Abs(rx), math.Abs(ry)
	if lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// Step 2: center in the ellipse frame.
	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1p*y1p - ry2*x1p*x1p
	den := rx2*y1p*y1p + ry2*x1p*x1p
	coef := 0.0
	if num > 0 && den > 0 {
		coef = math.Sqrt(num / den)
	}
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	// Step 3: center in user space.
	cx := cosPhi*cxp - sinPhi*cyp + (x1+x2)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y1+y2)/2

	// Step 4: start angle and sweep on the unit circle.
	ux, uy := (x1p-cxp)/rx, (y1p-cyp)/ry
	vx, vy := (-x1p-cxp)/rx, (-y1p-cyp)/ry
	theta := math.Atan2(uy, ux)
	delta := math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(delta)/(math.Pi/2) - 1e-9))
	if n < 1 {
		n = 1
	}
	step := delta / float64(n)
	alpha := 4.0 / 3.0 * math.Tan(step/4)

	toUser := func(x, y float64) (float64, float64) {
		x *= rx
		y *= ry
		return cosPhi*x - sinPhi*y + cx, sinPhi*x + cosPhi*y + cy
	}

	curves := make([][6]float64, n)
	for i := range curves {
		sin1, cos1 := math.Sincos(theta + float64(i)*step)
		sin2, cos2 := math.Sincos(theta + float64(i+1)*step)

		c1x, c1y := toUser(cos1-alpha*sin1, sin1+alpha*cos1)
		c2x, c2y := toUser(cos2+alpha*sin2, sin2-alpha*cos2)
		ex, ey := toUser(cos2, sin2)
		curves[i] = [6]float64{c1x, c1y, c2x, c2y, ex, ey}
	}
	curves[n-1][4], curves[n-1][5] = x2, y2
	return curves
}
