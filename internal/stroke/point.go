package stroke

import (
	"fmt"
	"math"
)

// angleRadian converts radians to degrees.
const angleRadian = 180 / math.Pi

// Epsilon is the per-axis tolerance used by Point.Equal.
//
// Offsetting and splitting accumulate floating point error, so two segment
// endpoints that should coincide rarely compare exactly equal. The value
// matches the default output precision of two decimals.
const Epsilon = 1e-2

// Point represents a 2D point or vector in Cartesian coordinates.
// Polar accessors use degrees.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Polar creates a point from an angle in degrees and a radius.
func Polar(theta, r float64) Point {
	return Point{
		X: r * math.Cos(theta/angleRadian),
		Y: r * math.Sin(theta/angleRadian),
	}
}

// R returns the distance from the origin.
func (p Point) R() float64 {
	return math.Hypot(p.X, p.Y)
}

// Theta returns the angle from the positive x axis in degrees.
func (p Point) Theta() float64 {
	return math.Atan2(p.Y, p.X) * angleRadian
}

// SetX returns a copy of p with x replaced.
func (p Point) SetX(x float64) Point {
	return Point{X: x, Y: p.Y}
}

// SetY returns a copy of p with y replaced.
func (p Point) SetY(y float64) Point {
	return Point{X: p.X, Y: y}
}

// SetR returns the point with the same angle at radius r.
func (p Point) SetR(r float64) Point {
	return Polar(p.Theta(), r)
}

// SetTheta returns the point with the same radius at angle theta (degrees).
func (p Point) SetTheta(theta float64) Point {
	return Polar(theta, p.R())
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns the point scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Center returns p moved halfway towards q.
func (p Point) Center(q Point) Point {
	delta := p.Sub(q)
	return Point{X: p.X - delta.X/2, Y: p.Y - delta.Y/2}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).R()
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (z-component of 3D cross).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// RotateAround rotates p by theta degrees around center.
func (p Point) RotateAround(center Point, theta float64) Point {
	d := p.Sub(center)
	return center.Add(d.SetTheta(d.Theta() + theta))
}

// Equal reports whether p and q coincide within Epsilon on both axes.
func (p Point) Equal(q Point) bool {
	return p.EqualWithin(q, Epsilon)
}

// EqualWithin reports whether p and q coincide within eps on both axes.
func (p Point) EqualWithin(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// String returns the point as "x, y".
func (p Point) String() string {
	return fmt.Sprintf("%g, %g", p.X, p.Y)
}

// unit returns the vector scaled to length 1, or the zero vector.
func (p Point) unit() Point {
	l := p.R()
	if l < 1e-12 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// perp returns the vector rotated 90 degrees counter-clockwise.
func (p Point) perp() Point {
	return Point{X: -p.Y, Y: p.X}
}
