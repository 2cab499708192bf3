package svgpath

import (
	"math"
	"strconv"
	"strings"
)

// Round returns the path with every argument rounded to prec decimals.
// Values whose scaled form overflows are kept as they are.
func (p Path) Round(prec int) Path {
	scale := math.Pow(10, float64(prec))
	out := Path{Segments: make([]Segment, len(p.Segments))}
	for i, s := range p.Segments {
		args := make([]float64, len(s.Args))
		for k, v := range s.Args {
			// Values too large to scale have no fractional digits anyway.
			if scaled := v * scale; !math.IsInf(scaled, 0) {
				v = math.Round(scaled) / scale
			}
			args[k] = v
		}
		out.Segments[i] = Segment{Cmd: s.Cmd, Args: args}
	}
	return out
}

// String returns the path data: each command letter followed by its
// arguments separated by spaces, for example "M10 20L30 40Z".
func (p Path) String() string {
	var sb strings.Builder
	for _, s := range p.Segments {
		sb.WriteByte(s.Cmd)
		for k, v := range s.Args {
			if k > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(formatNumber(v))
		}
	}
	return sb.String()
}

// formatNumber prints v in the shortest form that reads back exactly.
// Negative zero prints as 0.
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
