// Package svgpath reads, normalizes and writes SVG path data.
//
// A Path keeps the commands as written. The normalizing methods return new
// paths: Abs resolves relative commands, Unshort expands the S and T
// shorthands and Unarc replaces elliptical arcs with cubic curves, so that
// a path passed through all three contains only M, L, H, V, C, Q and Z
// commands with absolute coordinates.
//
//	p, err := svgpath.Parse("m10 10 l20 0 a5 5 0 0 1 0 10 z")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(p.Unarc().Unshort().Abs().Round(2))
package svgpath
