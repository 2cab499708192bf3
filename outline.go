package outline

import (
	"fmt"
	"math"

	"github.com/gogpu/outline/internal/stroke"
	"github.com/gogpu/outline/internal/svgpath"
)

// Outline converts SVG path data stroked with s into path data for the
// equivalent filled region.
//
// Open subpaths become one closed contour each, capped with s.Cap.
// Closed subpaths become two contours, the outer and inner edge of the
// ring, with opposite winding so the ring fills correctly under either
// fill rule. The result uses only absolute M, L, Q, C and Z commands with
// numbers rounded to the configured precision.
func Outline(d string, s Stroke, opts ...Option) (string, error) {
	return outline(d, s, newOptions(opts))
}

// Attrs holds stroke settings as SVG attribute strings, the form they take
// in documents and configuration files.
type Attrs struct {
	Width    float64 `yaml:"width"`
	Linecap  string  `yaml:"linecap"`
	Linejoin string  `yaml:"linejoin"`
}

// Stroke parses the attributes. Empty cap and join select butt and miter.
func (a Attrs) Stroke() (Stroke, error) {
	c, err := ParseLineCap(a.Linecap)
	if err != nil {
		return Stroke{}, err
	}
	j, err := ParseLineJoin(a.Linejoin)
	if err != nil {
		return Stroke{}, err
	}
	s := Stroke{Width: a.Width, Cap: c, Join: j}
	if err := s.Validate(); err != nil {
		return Stroke{}, err
	}
	return s, nil
}

// OutlineAttrs is Outline with stroke settings given as attribute strings.
func OutlineAttrs(d string, a Attrs, opts ...Option) (string, error) {
	s, err := a.Stroke()
	if err != nil {
		return "", err
	}
	return Outline(d, s, opts...)
}

func outline(d string, s Stroke, o options) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	src, err := svgpath.Parse(d)
	if err != nil {
		return "", fmt.Errorf("outline: parse path: %w", err)
	}
	// Shorthands first: an S after an arc reflects nothing.
	elems, err := toElements(src.Unshort().Unarc())
	if err != nil {
		return "", err
	}
	paths, err := stroke.FromElements(elems, s.Join.toStroke())
	if err != nil {
		return "", fmt.Errorf("outline: build path: %w", err)
	}

	ops := o.curveOps()
	var out svgpath.Path
	for _, p := range paths {
		contours, err := p.WithOps(ops).Outline(s.Width/2, s.Cap.toStroke())
		if err != nil {
			return "", fmt.Errorf("outline: %w", err)
		}
		for _, c := range contours {
			appendElements(&out, c.Elements())
		}
	}

	if err := checkFinite(out); err != nil {
		return "", err
	}

	Logger().Debug("outline: stroked path",
		"subpaths", len(paths), "commands", len(out.Segments),
		"width", s.Width, "cap", s.Cap.String(), "join", s.Join.String())
	return out.Round(o.precision).String(), nil
}

func checkFinite(p svgpath.Path) error {
	for i, s := range p.Segments {
		for _, v := range s.Args {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: command %d (%c)", ErrOutOfRange, i, s.Cmd)
			}
		}
	}
	return nil
}
