package stroke

import "errors"

var (
	// ErrEmptyPath is returned when a path has no drawable segments.
	ErrEmptyPath = errors.New("stroke: empty path")

	// ErrNoStartPoint is returned when an element sequence does not begin
	// with a MoveTo.
	ErrNoStartPoint = errors.New("stroke: path does not start with MoveTo")

	// ErrInvalidRadius is returned when the outline radius is not a
	// positive finite number.
	ErrInvalidRadius = errors.New("stroke: radius must be positive and finite")
)
