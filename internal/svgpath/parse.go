package svgpath

import (
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// ErrSyntax is returned for malformed path data. The wrapping error names
// the byte position of the problem (1-based).
var ErrSyntax = errors.New("svgpath: syntax error")

// Segment is one path command with its arguments, for example
// {Cmd: 'L', Args: [10 20]}. Lowercase commands are relative.
type Segment struct {
	Cmd  byte
	Args []float64
}

// Path is a sequence of path commands.
type Path struct {
	Segments []Segment
}

// argCount returns the number of arguments of an uppercase command.
func argCount(cmd byte) (int, bool) {
	switch cmd {
	case 'Z':
		return 0, true
	case 'H', 'V':
		return 1, true
	case 'M', 'L', 'T':
		return 2, true
	case 'S', 'Q':
		return 4, true
	case 'C':
		return 6, true
	case 'A':
		return 7, true
	}
	return 0, false
}

func toUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t' || path[i] == '\f') {
		i++
	}
	return i
}

// Parse parses SVG path data. Commands may be repeated implicitly by
// supplying further argument sets; sets following a moveto are linetos.
// An empty string yields an empty path.
func Parse(d string) (Path, error) {
	path := []byte(d)
	var p Path

	i := skipCommaWhitespace(path)
	if i == len(path) {
		return p, nil
	}
	if path[i] != 'M' && path[i] != 'm' {
		return Path{}, fmt.Errorf("%w: path must start with moveto at position %d", ErrSyntax, i+1)
	}

	var cmd byte
	for {
		i += skipCommaWhitespace(path[i:])
		if i >= len(path) {
			break
		}

		if isLetter(path[i]) {
			cmd = path[i]
			i++
		} else if toUpper(cmd) == 'Z' {
			return Path{}, fmt.Errorf("%w: unexpected %q after closepath at position %d", ErrSyntax, path[i], i+1)
		}

		n, ok := argCount(toUpper(cmd))
		if !ok {
			return Path{}, fmt.Errorf("%w: unknown command %q at position %d", ErrSyntax, cmd, i)
		}

		args := make([]float64, n)
		for j := 0; j < n; j++ {
			i += skipCommaWhitespace(path[i:])
			if toUpper(cmd) == 'A' && (j == 3 || j == 4) {
				if i < len(path) && (path[i] == '0' || path[i] == '1') {
					args[j] = float64(path[i] - '0')
					i++
					continue
				}
				return Path{}, fmt.Errorf("%w: arc flags of %q must be 0 or 1 at position %d", ErrSyntax, cmd, i+1)
			}

			num, m := strconv.ParseFloat(path[i:])
			if m == 0 {
				return Path{}, fmt.Errorf("%w: %q needs %d numbers at position %d", ErrSyntax, cmd, n, i+1)
			}
			args[j] = num
			i += m
		}
		p.Segments = append(p.Segments, Segment{Cmd: cmd, Args: args})

		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
	}
	return p, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(d string) Path {
	p, err := Parse(d)
	if err != nil {
		panic(err)
	}
	return p
}
