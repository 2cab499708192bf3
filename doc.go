// Package outline converts stroked SVG paths into filled outlines.
//
// # Overview
//
// A renderer draws a stroke by sweeping a line of some width along a path.
// outline computes the region that sweep covers and returns it as ordinary
// path data, so the shape can be filled instead of stroked. This is useful
// for font and icon tooling, for cutters and plotters that only understand
// fills, and for boolean operations that work on regions.
//
// # Quick Start
//
//	import "github.com/gogpu/outline"
//
//	d, err := outline.Outline("M50,50 L350,350", outline.DefaultStroke().WithWidth(20))
//	// d == "M42.93 57.07L342.93 357.07L357.07 342.93L57.07 42.93L42.93 57.07Z"
//
// Stroke settings can also be given the way they appear in SVG:
//
//	d, err := outline.OutlineAttrs(src, outline.Attrs{
//		Width:    8,
//		Linecap:  "round",
//		Linejoin: "bevel",
//	})
//
// # Batches
//
// An Outliner applies one stroke to many paths. It caches results by
// path data and runs OutlineAll on a pool of goroutines:
//
//	o, err := outline.NewOutliner(outline.RoundStroke().WithWidth(4))
//	if err != nil {
//		return err
//	}
//	defer o.Close()
//	outs, err := o.OutlineAll(ctx, paths)
//
// # Geometry
//
// Each segment is offset by half the stroke width to both sides. Lines
// offset exactly; quadratic and cubic curves are approximated by curves
// of the same degree within a tolerance (see WithTolerance). Gaps between
// offset segments are closed with the line join, and segments that
// overlap at inner corners are cut where they cross.
//
// Caps and joins follow SVG: butt, round and square caps; miter, round
// and bevel joins. Miter limits and dash patterns are not applied.
// Self-intersections between non-adjacent segments are left in the output.
//
// # Coordinate System
//
// Coordinates are taken as given, with Y pointing down as in SVG. Output
// numbers are rounded to 2 decimals unless WithPrecision says otherwise.
//
// # Logging
//
// The package is silent by default. SetLogger installs a *slog.Logger for
// this package and its internals.
package outline
