// Package stroke converts stroked paths into the closed outlines that
// cover the same area, expressed with lines, quadratic and cubic Bezier
// curves only.
//
// # Algorithm Overview
//
// Each segment of a path is offset to both sides by half the stroke width:
//   - Lines are offset exactly by moving both endpoints along the normal.
//   - Curves are approximated by curves of the same degree, subdivided
//     until the sampled distance to the source stays within tolerance.
//
// Offsetting opens gaps at corners. ConnectPatchWhenNeed closes them:
// on the inner side of a corner the two offsets cross and are trimmed at
// the crossing; on the outer side the gap is bridged by the line join.
//
// An open path becomes one closed contour:
//  1. Forward offset goes forward
//  2. End cap connects forward to backward
//  3. Backward offset is reversed
//  4. Start cap connects backward to forward and closes
//
// A closed path becomes two closed contours, one per side.
//
// # Line Caps
//
//   - LineCapButt: Flat cap ending exactly at the endpoint
//   - LineCapRound: Semicircular cap with radius = width/2
//   - LineCapSquare: Square cap extending width/2 beyond the endpoint
//
// # Line Joins
//
//   - LineJoinMiter: Offset edges extended to their meeting point
//   - LineJoinRound: Circular arc around the original vertex
//   - LineJoinBevel: Straight line across the corner
//
// # Usage
//
//	paths, err := stroke.FromElements([]stroke.PathElement{
//	    stroke.MoveTo{Point: stroke.Pt(50, 50)},
//	    stroke.LineTo{Point: stroke.Pt(150, 150)},
//	    stroke.LineTo{Point: stroke.Pt(150, 50)},
//	}, stroke.LineJoinRound)
//	if err != nil {
//	    return err
//	}
//	outlines, err := paths[0].Outline(10, stroke.LineCapRound)
//
// Point equality throughout the package is approximate, see Epsilon.
package stroke
