package svgpath

// cursor tracks the current point and subpath start while walking
// absolute segments.
type cursor struct {
	x, y   float64
	sx, sy float64
}

// advance moves the cursor past an absolute segment.
func (c *cursor) advance(s Segment) {
	switch s.Cmd {
	case 'M':
		c.x, c.y = s.Args[0], s.Args[1]
		c.sx, c.sy = c.x, c.y
	case 'Z':
		c.x, c.y = c.sx, c.sy
	case 'H':
		c.x = s.Args[0]
	case 'V':
		c.y = s.Args[0]
	default:
		c.x, c.y = s.Args[len(s.Args)-2], s.Args[len(s.Args)-1]
	}
}

// Abs returns the path with every relative command converted to its
// absolute form.
func (p Path) Abs() Path {
	out := Path{Segments: make([]Segment, 0, len(p.Segments))}
	var cur cursor

	for _, s := range p.Segments {
		args := make([]float64, len(s.Args))
		copy(args, s.Args)
		if s.Cmd >= 'a' && s.Cmd <= 'z' {
			switch s.Cmd {
			case 'h':
				args[0] += cur.x
			case 'v':
				args[0] += cur.y
			case 'a':
				args[5] += cur.x
				args[6] += cur.y
			default:
				for k := 0; k+1 < len(args); k += 2 {
					args[k] += cur.x
					args[k+1] += cur.y
				}
			}
		}
		seg := Segment{Cmd: toUpper(s.Cmd), Args: args}
		cur.advance(seg)
		out.Segments = append(out.Segments, seg)
	}
	return out
}

// Unshort returns the absolute path with smooth curve shorthands expanded:
// S becomes C and T becomes Q. The implied control point is the reflection
// of the previous control point, or the current point when the previous
// command is not a curve of the same kind.
func (p Path) Unshort() Path {
	abs := p.Abs()
	out := Path{Segments: make([]Segment, 0, len(abs.Segments))}
	var (
		cur  cursor
		prev Segment
	)

	for _, s := range abs.Segments {
		seg := s
		switch s.Cmd {
		case 'S':
			cx, cy := cur.x, cur.y
			if prev.Cmd == 'C' {
				cx, cy = 2*cur.x-prev.Args[2], 2*cur.y-prev.Args[3]
			}
			seg = Segment{Cmd: 'C', Args: []float64{cx, cy, s.Args[0], s.Args[1], s.Args[2], s.Args[3]}}
		case 'T':
			cx, cy := cur.x, cur.y
			if prev.Cmd == 'Q' {
				cx, cy = 2*cur.x-prev.Args[0], 2*cur.y-prev.Args[1]
			}
			seg = Segment{Cmd: 'Q', Args: []float64{cx, cy, s.Args[0], s.Args[1]}}
		}
		cur.advance(seg)
		prev = seg
		out.Segments = append(out.Segments, seg)
	}
	return out
}
