package outline

import (
	"fmt"

	"github.com/gogpu/outline/internal/stroke"
	"github.com/gogpu/outline/internal/svgpath"
)

// toElements converts absolute path data without shorthands or arcs into
// drawing elements.
func toElements(p svgpath.Path) ([]stroke.PathElement, error) {
	elems := make([]stroke.PathElement, 0, len(p.Segments))
	for _, s := range p.Segments {
		a := s.Args
		switch s.Cmd {
		case 'M':
			elems = append(elems, stroke.MoveTo{Point: stroke.Pt(a[0], a[1])})
		case 'L':
			elems = append(elems, stroke.LineTo{Point: stroke.Pt(a[0], a[1])})
		case 'H':
			elems = append(elems, stroke.HorizontalTo{X: a[0]})
		case 'V':
			elems = append(elems, stroke.VerticalTo{Y: a[0]})
		case 'Q':
			elems = append(elems, stroke.QuadTo{
				Control: stroke.Pt(a[0], a[1]),
				Point:   stroke.Pt(a[2], a[3]),
			})
		case 'C':
			elems = append(elems, stroke.CubicTo{
				Control1: stroke.Pt(a[0], a[1]),
				Control2: stroke.Pt(a[2], a[3]),
				Point:    stroke.Pt(a[4], a[5]),
			})
		case 'Z':
			elems = append(elems, stroke.Close{})
		default:
			return nil, fmt.Errorf("outline: unexpected command %q", s.Cmd)
		}
	}
	return elems, nil
}

// appendElements appends drawing elements to p as absolute path data.
func appendElements(p *svgpath.Path, elems []stroke.PathElement) {
	for _, el := range elems {
		var seg svgpath.Segment
		switch e := el.(type) {
		case stroke.MoveTo:
			seg = svgpath.Segment{Cmd: 'M', Args: []float64{e.Point.X, e.Point.Y}}
		case stroke.LineTo:
			seg = svgpath.Segment{Cmd: 'L', Args: []float64{e.Point.X, e.Point.Y}}
		case stroke.QuadTo:
			seg = svgpath.Segment{Cmd: 'Q', Args: []float64{
				e.Control.X, e.Control.Y, e.Point.X, e.Point.Y,
			}}
		case stroke.CubicTo:
			seg = svgpath.Segment{Cmd: 'C', Args: []float64{
				e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y,
			}}
		case stroke.Close:
			seg = svgpath.Segment{Cmd: 'Z', Args: []float64{}}
		default:
			continue
		}
		p.Segments = append(p.Segments, seg)
	}
}
