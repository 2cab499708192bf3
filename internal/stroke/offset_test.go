package stroke

import (
	"math"
	"testing"
)

// distanceToCurve returns the distance from p to a dense sampling of b.
func distanceToCurve(p Point, b bezier) float64 {
	const samples = 4000
	best := math.Inf(1)
	for i := 0; i <= samples; i++ {
		if d := p.Distance(b.eval(float64(i) / samples)); d < best {
			best = d
		}
	}
	return best
}

func checkOffset(t *testing.T, src Segment, radius, slack float64) []Segment {
	t.Helper()

	pieces := DefaultOps.Offset(src, radius)
	if len(pieces) == 0 {
		t.Fatal("Offset() returned no pieces")
	}

	b := bezier(src.Points())
	want := math.Abs(radius)
	for i, piece := range pieces {
		if piece.Kind() != src.Kind() {
			t.Errorf("piece %d Kind() = %v, want %v", i, piece.Kind(), src.Kind())
		}
		if i > 0 {
			assertPoint(t, "piece joint", piece.FirstPoint(), pieces[i-1].LastPoint(), 1e-6)
		}
		pb := bezier(piece.Points())
		for k := 0; k <= 10; k++ {
			p := pb.eval(float64(k) / 10)
			if d := distanceToCurve(p, b); math.Abs(d-want) > slack {
				t.Errorf("piece %d at t=%v: distance %v, want %v±%v", i, float64(k)/10, d, want, slack)
			}
		}
	}

	assertPoint(t, "offset start", pieces[0].FirstPoint(), b[0].Add(b.normal(0).Scale(radius)), 1e-9)
	assertPoint(t, "offset end", pieces[len(pieces)-1].LastPoint(), b[len(b)-1].Add(b.normal(1).Scale(radius)), 1e-9)
	return pieces
}

func TestOffset_Quadratic(t *testing.T) {
	quad := NewQuadraticCurve(Pt(0, 0), Pt(50, 100), Pt(100, 0))

	for _, r := range []float64{10, -10, 3} {
		checkOffset(t, quad, r, 0.25)
	}
}

func TestOffset_Cubic(t *testing.T) {
	tests := []struct {
		name  string
		curve CubicCurve
	}{
		{"arch", NewCubicCurve(Pt(50, 50), Pt(200, 200), Pt(300, 200), Pt(300, 50))},
		{"S curve", NewCubicCurve(Pt(0, 0), Pt(30, 60), Pt(70, -60), Pt(100, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkOffset(t, tt.curve, 5, 0.25)
			checkOffset(t, tt.curve, -5, 0.25)
		})
	}
}

func TestOffset_SplitsAtInflection(t *testing.T) {
	s := NewCubicCurve(Pt(0, 0), Pt(1, 1), Pt(2, -1), Pt(3, 0))
	pieces := splitAtInflections(bezier(s.Points()))
	if len(pieces) != 2 {
		t.Fatalf("splitAtInflections() = %d pieces, want 2", len(pieces))
	}
	assertPoint(t, "split point", pieces[0][3], Pt(1.5, 0), 1e-9)
}

func TestOffset_LineIsExact(t *testing.T) {
	pieces := DefaultOps.Offset(NewLine(Pt(0, 0), Pt(0, 10)), 4)
	if len(pieces) != 1 {
		t.Fatalf("Offset() = %d pieces, want 1", len(pieces))
	}
	assertPoint(t, "start", pieces[0].FirstPoint(), Pt(-4, 0), 1e-9)
	assertPoint(t, "end", pieces[0].LastPoint(), Pt(-4, 10), 1e-9)
}

func TestOffset_ZeroRadius(t *testing.T) {
	quad := NewQuadraticCurve(Pt(0, 0), Pt(5, 10), Pt(10, 0))
	pieces := DefaultOps.Offset(quad, 0)
	if len(pieces) != 1 {
		t.Fatalf("Offset(0) = %d pieces, want 1", len(pieces))
	}
	for i, p := range pieces[0].Points() {
		assertPoint(t, "point", p, quad.Points()[i], 0)
	}
}

func TestOffset_MaxDepthBoundsPieces(t *testing.T) {
	quad := NewQuadraticCurve(Pt(0, 0), Pt(50, 100), Pt(100, 0))

	coarse := NewBezierOps().WithMaxDepth(0).Offset(quad, 10)
	if len(coarse) != 1 {
		t.Errorf("MaxDepth 0: %d pieces, want 1", len(coarse))
	}

	fine := NewBezierOps().WithTolerance(0.001).WithMaxDepth(3).Offset(quad, 10)
	if len(fine) > 8 {
		t.Errorf("MaxDepth 3: %d pieces, want at most 8", len(fine))
	}
}

func TestBezierOps_Settings(t *testing.T) {
	ops := NewBezierOps()
	if ops.Tolerance != DefaultTolerance || ops.MaxDepth != DefaultMaxDepth || ops.Threshold != DefaultThreshold {
		t.Errorf("NewBezierOps() = %+v, want defaults", ops)
	}

	if got := ops.WithTolerance(-1).Tolerance; got != DefaultTolerance {
		t.Errorf("negative tolerance should be ignored, got %v", got)
	}
	if got := ops.WithTolerance(0.5).Tolerance; got != 0.5 {
		t.Errorf("WithTolerance(0.5) = %v", got)
	}
	if got := ops.WithMaxDepth(-1).MaxDepth; got != DefaultMaxDepth {
		t.Errorf("negative depth should be ignored, got %v", got)
	}
}

func TestBezierOps_Split(t *testing.T) {
	l := NewLine(Pt(0, 0), Pt(10, 0))
	s := DefaultOps.Split(l, 0.25, 0.75)
	if s.Kind() != KindLine {
		t.Fatalf("Split() Kind() = %v, want L", s.Kind())
	}
	assertPoint(t, "start", s.FirstPoint(), Pt(2.5, 0), 1e-12)
	assertPoint(t, "end", s.LastPoint(), Pt(7.5, 0), 1e-12)
}

func TestQuadraticFromPoints(t *testing.T) {
	q := DefaultOps.QuadraticFromPoints(Pt(0, 0), Pt(5, 5), Pt(10, 0), 0.5)
	pts := q.Points()
	assertPoint(t, "control", pts[1], Pt(5, 10), 1e-12)
	assertPoint(t, "through", bezier(pts).eval(0.5), Pt(5, 5), 1e-12)

	q = DefaultOps.QuadraticFromPoints(Pt(0, 0), Pt(2, 3), Pt(10, 0), 0.25)
	assertPoint(t, "through at 0.25", bezier(q.Points()).eval(0.25), Pt(2, 3), 1e-12)
}
