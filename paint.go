package outline

import (
	"fmt"
	"strings"

	"github.com/gogpu/outline/internal/stroke"
)

// LineCap specifies the shape of the ends of open subpaths.
type LineCap int

const (
	// LineCapButt ends the stroke flat at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound ends the stroke with a semicircle.
	LineCapRound
	// LineCapSquare extends the stroke by half its width past the endpoint.
	LineCapSquare
)

// String returns the SVG stroke-linecap keyword.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return fmt.Sprintf("LineCap(%d)", int(c))
	}
}

// ParseLineCap parses an SVG stroke-linecap keyword. Case and surrounding
// space are ignored; the empty string selects LineCapButt.
func ParseLineCap(s string) (LineCap, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "butt":
		return LineCapButt, nil
	case "round":
		return LineCapRound, nil
	case "square":
		return LineCapSquare, nil
	}
	return LineCapButt, fmt.Errorf("%w: %q", ErrInvalidLineCap, s)
}

// MarshalText implements encoding.TextMarshaler.
func (c LineCap) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLineCap, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *LineCap) UnmarshalText(text []byte) error {
	v, err := ParseLineCap(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c LineCap) valid() bool {
	return c >= LineCapButt && c <= LineCapSquare
}

func (c LineCap) toStroke() stroke.LineCap {
	switch c {
	case LineCapRound:
		return stroke.LineCapRound
	case LineCapSquare:
		return stroke.LineCapSquare
	default:
		return stroke.LineCapButt
	}
}

// LineJoin specifies the shape of convex corners between segments.
type LineJoin int

const (
	// LineJoinMiter extends the outer edges until they meet.
	LineJoinMiter LineJoin = iota
	// LineJoinRound rounds the corner with a circular arc.
	LineJoinRound
	// LineJoinBevel cuts the corner with a straight line.
	LineJoinBevel
)

// String returns the SVG stroke-linejoin keyword.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return fmt.Sprintf("LineJoin(%d)", int(j))
	}
}

// ParseLineJoin parses an SVG stroke-linejoin keyword. Case and
// surrounding space are ignored; the empty string selects LineJoinMiter.
func ParseLineJoin(s string) (LineJoin, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "miter":
		return LineJoinMiter, nil
	case "round":
		return LineJoinRound, nil
	case "bevel":
		return LineJoinBevel, nil
	}
	return LineJoinMiter, fmt.Errorf("%w: %q", ErrInvalidLineJoin, s)
}

// MarshalText implements encoding.TextMarshaler.
func (j LineJoin) MarshalText() ([]byte, error) {
	if !j.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLineJoin, int(j))
	}
	return []byte(j.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (j *LineJoin) UnmarshalText(text []byte) error {
	v, err := ParseLineJoin(string(text))
	if err != nil {
		return err
	}
	*j = v
	return nil
}

func (j LineJoin) valid() bool {
	return j >= LineJoinMiter && j <= LineJoinBevel
}

func (j LineJoin) toStroke() stroke.LineJoin {
	switch j {
	case LineJoinRound:
		return stroke.LineJoinRound
	case LineJoinBevel:
		return stroke.LineJoinBevel
	default:
		return stroke.LineJoinMiter
	}
}
