package stroke

import (
	"math"
	"testing"
)

func TestBezier_Eval(t *testing.T) {
	quad := bezier{Pt(0, 0), Pt(5, 10), Pt(10, 0)}

	assertPoint(t, "eval(0)", quad.eval(0), Pt(0, 0), 0)
	assertPoint(t, "eval(1)", quad.eval(1), Pt(10, 0), 0)
	assertPoint(t, "eval(0.5)", quad.eval(0.5), Pt(5, 5), 1e-12)

	line := bezier{Pt(0, 0), Pt(10, 20)}
	assertPoint(t, "line eval(0.3)", line.eval(0.3), Pt(3, 6), 1e-12)
}

func TestBezier_Split(t *testing.T) {
	cubic := bezier{Pt(0, 0), Pt(10, 30), Pt(40, 30), Pt(50, 0)}

	for _, split := range []float64{0.25, 0.5, 0.8} {
		left, right := cubic.split(split)
		if len(left) != 4 || len(right) != 4 {
			t.Fatalf("split(%v) degrees = %d, %d, want 3, 3", split, left.degree(), right.degree())
		}

		assertPoint(t, "left end", left[3], cubic.eval(split), 1e-9)
		assertPoint(t, "right start", right[0], cubic.eval(split), 1e-9)

		for _, u := range []float64{0.1, 0.5, 0.9} {
			assertPoint(t, "left(u)", left.eval(u), cubic.eval(u*split), 1e-9)
			assertPoint(t, "right(u)", right.eval(u), cubic.eval(split+u*(1-split)), 1e-9)
		}
	}
}

func TestBezier_Subsegment(t *testing.T) {
	quad := bezier{Pt(0, 0), Pt(50, 100), Pt(100, 0)}

	sub := quad.subsegment(0.2, 0.6)
	assertPoint(t, "start", sub[0], quad.eval(0.2), 1e-9)
	assertPoint(t, "end", sub[2], quad.eval(0.6), 1e-9)
	assertPoint(t, "mid", sub.eval(0.5), quad.eval(0.4), 1e-9)

	whole := quad.subsegment(0, 1)
	whole[1] = Pt(-1, -1)
	if quad[1] != Pt(50, 100) {
		t.Error("subsegment(0, 1) must not alias the source")
	}
}

func TestBezier_Tangent(t *testing.T) {
	quad := bezier{Pt(0, 0), Pt(5, 10), Pt(10, 0)}
	assertPoint(t, "tangent(0.5)", quad.tangent(0.5), Pt(10, 0), 1e-12)

	// First handle on the anchor: the derivative vanishes at t=0.
	cubic := bezier{Pt(0, 0), Pt(0, 0), Pt(10, 10), Pt(20, 0)}
	got := cubic.tangent(0).unit()
	assertPoint(t, "degenerate tangent", got, Pt(1, 1).unit(), 1e-12)

	n := bezier{Pt(0, 0), Pt(10, 0)}.normal(0)
	assertPoint(t, "normal", n, Pt(0, 1), 1e-12)
}

func TestBezier_Curvature(t *testing.T) {
	if k := (bezier{Pt(0, 0), Pt(10, 10)}).curvature(0.5); k != 0 {
		t.Errorf("line curvature = %v, want 0", k)
	}

	// Arch turning clockwise in the y-up frame.
	arch := bezier{Pt(0, 0), Pt(1, 1), Pt(2, 0)}
	if k := arch.curvature(0.5); k >= 0 {
		t.Errorf("arch curvature = %v, want negative", k)
	}

	bowl := bezier{Pt(0, 0), Pt(1, -1), Pt(2, 0)}
	if k := bowl.curvature(0.5); k <= 0 {
		t.Errorf("bowl curvature = %v, want positive", k)
	}
}

func TestBezier_Inflections(t *testing.T) {
	tests := []struct {
		name  string
		curve bezier
		want  []float64
	}{
		{
			name:  "symmetric S",
			curve: bezier{Pt(0, 0), Pt(1, 1), Pt(2, -1), Pt(3, 0)},
			want:  []float64{0.5},
		},
		{
			name:  "arch",
			curve: bezier{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)},
			want:  nil,
		},
		{
			name:  "quadratic",
			curve: bezier{Pt(0, 0), Pt(5, 10), Pt(10, 0)},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.curve.inflections()
			if len(got) != len(tt.want) {
				t.Fatalf("inflections() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if !approxEqual(got[i], tt.want[i], 1e-9) {
					t.Errorf("inflections()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBezier_Bounds(t *testing.T) {
	minPt, maxPt := bezier{Pt(3, -1), Pt(-2, 4), Pt(5, 2)}.bounds()
	assertPoint(t, "min", minPt, Pt(-2, -1), 0)
	assertPoint(t, "max", maxPt, Pt(5, 4), 0)
}

func TestBezier_Degenerate(t *testing.T) {
	if !(bezier{Pt(1, 1), Pt(1, 1), Pt(1, 1)}).degenerate() {
		t.Error("coincident points should be degenerate")
	}
	if (bezier{Pt(1, 1), Pt(1, 2)}).degenerate() {
		t.Error("distinct points should not be degenerate")
	}
	if got := (bezier{Pt(0, 0), Pt(9, 9), Pt(3, 4)}).chord(); got != 5 {
		t.Errorf("chord() = %v, want 5", got)
	}
}

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    []float64
	}{
		{"two roots", 1, -3, 2, []float64{1, 2}},
		{"double root", 1, -2, 1, []float64{1}},
		{"no real roots", 1, 0, 1, nil},
		{"linear", 0, 2, -1, []float64{0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := solveQuadratic(tt.a, tt.b, tt.c)
			if len(got) != len(tt.want) {
				t.Fatalf("solveQuadratic(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.c, got, tt.want)
			}
			for i := range got {
				if !approxEqual(got[i], tt.want[i], 1e-9) {
					t.Errorf("root[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSolveCubic(t *testing.T) {
	// (x-1)(x-2)(x-3)
	roots := solveCubic(1, -6, 11, -6)
	if len(roots) != 3 {
		t.Fatalf("solveCubic = %v, want 3 roots", roots)
	}
	for _, want := range []float64{1, 2, 3} {
		found := false
		for _, r := range roots {
			if approxEqual(r, want, 1e-9) {
				found = true
			}
		}
		if !found {
			t.Errorf("solveCubic = %v, missing root %v", roots, want)
		}
	}

	// Leading coefficient vanishes: x^2 - 1.
	roots = solveCubic(0, 1, 0, -1)
	if len(roots) != 2 {
		t.Errorf("degenerate solveCubic = %v, want 2 roots", roots)
	}
}

func TestUnitRoots(t *testing.T) {
	got := unitRoots([]float64{-0.5, -1e-12, 0.3, 1 + 1e-12, 1.5, math.NaN()})
	want := []float64{0, 0.3, 1}
	if len(got) != len(want) {
		t.Fatalf("unitRoots = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("unitRoots[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
