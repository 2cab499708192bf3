package outline

import (
	"errors"

	"github.com/gogpu/outline/internal/stroke"
	"github.com/gogpu/outline/internal/svgpath"
)

var (
	// ErrInvalidWidth is returned when the stroke width is not a positive
	// finite number.
	ErrInvalidWidth = errors.New("outline: stroke width must be positive")

	// ErrInvalidLineCap is returned for a line cap name other than butt,
	// round or square.
	ErrInvalidLineCap = errors.New("outline: invalid line cap")

	// ErrInvalidLineJoin is returned for a line join name other than
	// miter, round or bevel.
	ErrInvalidLineJoin = errors.New("outline: invalid line join")

	// ErrOutOfRange is returned when the outline has coordinates that
	// cannot be written as path data.
	ErrOutOfRange = errors.New("outline: coordinates out of range")

	// ErrSyntax is wrapped by errors for malformed path data.
	ErrSyntax = svgpath.ErrSyntax

	// ErrEmptyPath is wrapped by errors for path data that draws nothing.
	ErrEmptyPath = stroke.ErrEmptyPath

	// ErrNoStartPoint is wrapped by errors for path data that does not
	// begin with a moveto.
	ErrNoStartPoint = stroke.ErrNoStartPoint
)
