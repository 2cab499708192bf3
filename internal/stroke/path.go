package stroke

import (
	"fmt"
	"math"
	"strings"
)

// Path is an ordered sequence of segments forming one open or closed
// contour, drawn with a single line join style.
//
// Path is an immutable value. Every method that changes structure returns
// a new Path and re-runs join patching where needed, so consecutive
// segments of a path built through these methods share endpoints.
type Path struct {
	segs   []Segment
	closed bool
	join   LineJoin
	ops    CurveOps
}

// NewPath creates a path from segs as given, without patching.
func NewPath(segs []Segment, closed bool, join LineJoin) Path {
	return Path{
		segs:   concat(segs),
		closed: closed,
		join:   join,
		ops:    DefaultOps,
	}
}

// WithOps returns a copy of the path that uses ops for curve math.
// nil restores DefaultOps.
func (p Path) WithOps(ops CurveOps) Path {
	if ops == nil {
		ops = DefaultOps
	}
	p.ops = ops
	return p
}

// Segments returns a copy of the segment list.
func (p Path) Segments() []Segment {
	return concat(p.segs)
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segs)
}

// IsEmpty reports whether the path has no segments.
func (p Path) IsEmpty() bool {
	return len(p.segs) == 0
}

// Closed reports whether the path is closed.
func (p Path) Closed() bool {
	return p.closed
}

// Join returns the line join style of the path.
func (p Path) Join() LineJoin {
	return p.join
}

// FirstSegment returns the first segment. It panics on an empty path.
func (p Path) FirstSegment() Segment {
	return p.segs[0]
}

// LastSegment returns the last segment. It panics on an empty path.
func (p Path) LastSegment() Segment {
	return p.segs[len(p.segs)-1]
}

// FirstPoint returns the start point of the path. It panics on an empty path.
func (p Path) FirstPoint() Point {
	return p.FirstSegment().FirstPoint()
}

// LastPoint returns the end point of the path. It panics on an empty path.
func (p Path) LastPoint() Point {
	return p.LastSegment().LastPoint()
}

// Append returns the path extended by seg, patched onto the current end.
func (p Path) Append(seg Segment) Path {
	return p.rebuild(ConnectPatchWhenNeed(concat(p.segs, seg), false, p.join, p.ops), p.closed)
}

// Connect returns the path followed by other, with all gaps patched.
func (p Path) Connect(other Path, closed bool) Path {
	return p.rebuild(ConnectPatchWhenNeed(concat(p.segs, other.segs...), closed, p.join, p.ops), closed)
}

// SetClosed returns the path closed, with the gap between its last and
// first segment patched.
func (p Path) SetClosed() Path {
	return p.rebuild(ConnectPatchWhenNeed(p.segs, true, p.join, p.ops), true)
}

// ReversePoints returns the path traversed backwards.
func (p Path) ReversePoints() Path {
	segs := make([]Segment, len(p.segs))
	for i, s := range p.segs {
		segs[len(segs)-1-i] = s.ReversePoints()
	}
	return p.rebuild(segs, p.closed)
}

// Offset returns the open path at constant distance radius, patching the
// gaps that open up between offset segments at corners.
func (p Path) Offset(radius float64) Path {
	result := p.rebuild(nil, false)
	for _, seg := range p.segs {
		piece := p.rebuild(p.ops.Offset(seg, radius), false)
		result = result.Connect(piece, false)
	}
	return result
}

// Outline returns the closed fill region covered by stroking the path
// with a line of width 2*radius.
//
// An open path yields one contour: the forward offset, the end cap, the
// reversed backward offset and the start cap. A closed path yields two
// contours, the outer and inner boundary of the ring, traversed in
// opposite directions.
func (p Path) Outline(radius float64, lineCap LineCap) ([]Path, error) {
	if p.IsEmpty() {
		return nil, ErrEmptyPath
	}
	if !(radius > 0) || math.IsInf(radius, 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRadius, radius)
	}

	forward := p.Offset(radius)
	backward := p.Offset(-radius).ReversePoints()

	if p.closed {
		return []Path{forward.SetClosed(), backward.SetClosed()}, nil
	}

	endCap := capPath(forward.LastPoint(), backward.FirstPoint(), lineCap, p.ops)
	startCap := capPath(backward.LastPoint(), forward.FirstPoint(), lineCap, p.ops)

	outline := forward.
		Connect(endCap, false).
		Connect(backward, false).
		Connect(startCap, false).
		SetClosed()

	slogger().Debug("stroke: outline",
		"segments", p.Len(), "outline", outline.Len(),
		"cap", lineCap.String(), "join", p.join.String())
	return []Path{outline}, nil
}

// String returns the points of every segment, segments separated by " | ".
func (p Path) String() string {
	parts := make([]string, len(p.segs))
	for i, s := range p.segs {
		pts := s.Points()
		strs := make([]string, len(pts))
		for j, pt := range pts {
			strs[j] = pt.String()
		}
		parts[i] = strings.Join(strs, " ")
	}
	return strings.Join(parts, " | ")
}

// rebuild returns a path with the same join and curve math.
func (p Path) rebuild(segs []Segment, closed bool) Path {
	return Path{segs: segs, closed: closed, join: p.join, ops: p.ops}
}

// concat returns a freshly allocated slice holding a followed by b, so
// paths never share a backing array.
func concat(a []Segment, b ...Segment) []Segment {
	out := make([]Segment, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
