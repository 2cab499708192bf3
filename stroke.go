package outline

import (
	"fmt"
	"math"
)

// Stroke describes how a path is stroked.
type Stroke struct {
	// Width is the line width. It must be positive and finite.
	Width float64

	// Cap is the shape of the ends of open subpaths.
	Cap LineCap

	// Join is the shape of convex corners.
	Join LineJoin
}

// DefaultStroke returns a 1 unit wide stroke with butt caps and miter
// joins, the SVG defaults.
func DefaultStroke() Stroke {
	return Stroke{
		Width: 1,
		Cap:   LineCapButt,
		Join:  LineJoinMiter,
	}
}

// WithWidth returns a copy of the stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithCap returns a copy of the stroke with the given line cap.
func (s Stroke) WithCap(c LineCap) Stroke {
	s.Cap = c
	return s
}

// WithJoin returns a copy of the stroke with the given line join.
func (s Stroke) WithJoin(j LineJoin) Stroke {
	s.Join = j
	return s
}

// RoundStroke returns a stroke with round caps and joins.
func RoundStroke() Stroke {
	return Stroke{
		Width: 1,
		Cap:   LineCapRound,
		Join:  LineJoinRound,
	}
}

// SquareStroke returns a stroke with square caps and miter joins.
func SquareStroke() Stroke {
	return Stroke{
		Width: 1,
		Cap:   LineCapSquare,
		Join:  LineJoinMiter,
	}
}

// Validate reports whether the stroke can be outlined.
func (s Stroke) Validate() error {
	if !(s.Width > 0) || math.IsInf(s.Width, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidWidth, s.Width)
	}
	if !s.Cap.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLineCap, int(s.Cap))
	}
	if !s.Join.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLineJoin, int(s.Join))
	}
	return nil
}

// String returns the stroke in SVG attribute form.
func (s Stroke) String() string {
	return fmt.Sprintf("stroke-width=%g stroke-linecap=%s stroke-linejoin=%s", s.Width, s.Cap, s.Join)
}
