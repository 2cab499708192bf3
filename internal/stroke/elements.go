package stroke

import "fmt"

// PathElement represents a drawing command with absolute coordinates.
// Paths are built from elements and report themselves as elements.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// HorizontalTo draws a horizontal line to the given x.
type HorizontalTo struct{ X float64 }

func (HorizontalTo) isPathElement() {}

// VerticalTo draws a vertical line to the given y.
type VerticalTo struct{ Y float64 }

func (VerticalTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// FromElements builds one Path per subpath of the element sequence. Every
// MoveTo starts a new subpath; Close adds a closing line when the current
// point is away from the subpath start and marks the subpath closed.
// Zero-length segments are dropped, as are subpaths left without segments.
func FromElements(elems []PathElement, join LineJoin) ([]Path, error) {
	if len(elems) == 0 {
		return nil, ErrEmptyPath
	}
	if _, ok := elems[0].(MoveTo); !ok {
		return nil, fmt.Errorf("%w: first element is %T", ErrNoStartPoint, elems[0])
	}

	var (
		paths   []Path
		current = NewPath(nil, false, join)
		start   Point
		last    Point
	)
	flush := func() {
		if !current.IsEmpty() {
			paths = append(paths, current)
		}
		current = NewPath(nil, false, join)
	}
	appendSeg := func(b bezier) {
		if b.degenerate() {
			return
		}
		current = current.Append(segmentFromBezier(b))
	}

	for _, el := range elems {
		switch e := el.(type) {
		case MoveTo:
			flush()
			start = e.Point
			last = e.Point
		case LineTo:
			appendSeg(bezier{last, e.Point})
			last = e.Point
		case HorizontalTo:
			p := last.SetX(e.X)
			appendSeg(bezier{last, p})
			last = p
		case VerticalTo:
			p := last.SetY(e.Y)
			appendSeg(bezier{last, p})
			last = p
		case QuadTo:
			appendSeg(bezier{last, e.Control, e.Point})
			last = e.Point
		case CubicTo:
			appendSeg(bezier{last, e.Control1, e.Control2, e.Point})
			last = e.Point
		case Close:
			if !start.Equal(last) {
				appendSeg(bezier{last, start})
			}
			if !current.IsEmpty() {
				current = current.SetClosed()
			}
			flush()
			last = start
		default:
			return nil, fmt.Errorf("stroke: unsupported path element %T", el)
		}
	}
	flush()

	if len(paths) == 0 {
		return nil, ErrEmptyPath
	}
	slogger().Debug("stroke: built paths", "subpaths", len(paths))
	return paths, nil
}

// Elements returns the drawing commands for the path: a MoveTo to the
// first point, one element per segment and Close when the path is closed.
// A gap left between parallel segments is bridged with a LineTo.
func (p Path) Elements() []PathElement {
	if p.IsEmpty() {
		return nil
	}
	elems := make([]PathElement, 0, len(p.segs)+2)
	elems = append(elems, MoveTo{Point: p.FirstPoint()})
	for i, s := range p.segs {
		if i > 0 && !p.segs[i-1].LastPoint().Equal(s.FirstPoint()) {
			elems = append(elems, LineTo{Point: s.FirstPoint()})
		}
		elems = append(elems, s.Element())
	}
	if p.closed {
		elems = append(elems, Close{})
	}
	return elems
}
