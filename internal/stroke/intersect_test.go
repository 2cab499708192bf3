package stroke

import (
	"math"
	"testing"
)

func TestIntersect_Lines(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Segment
		wantOK bool
		t1, t2 float64
		point  Point
	}{
		{
			name:   "crossing diagonals",
			a:      NewLine(Pt(0, 0), Pt(10, 10)),
			b:      NewLine(Pt(0, 10), Pt(10, 0)),
			wantOK: true,
			t1:     0.5,
			t2:     0.5,
			point:  Pt(5, 5),
		},
		{
			name:   "cross off center",
			a:      NewLine(Pt(0, 0), Pt(100, 0)),
			b:      NewLine(Pt(25, -10), Pt(25, 30)),
			wantOK: true,
			t1:     0.25,
			t2:     0.25,
			point:  Pt(25, 0),
		},
		{
			name:   "tangents meet beyond the segments",
			a:      NewLine(Pt(0, 0), Pt(10, 0)),
			b:      NewLine(Pt(20, 10), Pt(20, 20)),
			wantOK: false,
		},
		{
			name:   "parallel",
			a:      NewLine(Pt(0, 0), Pt(10, 0)),
			b:      NewLine(Pt(0, 5), Pt(10, 5)),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := tt.a.Intersects(tt.b)
			if ok != tt.wantOK {
				t.Fatalf("Intersects() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !approxEqual(hit.T1, tt.t1, 1e-9) || !approxEqual(hit.T2, tt.t2, 1e-9) {
				t.Errorf("Intersects() T = (%v, %v), want (%v, %v)", hit.T1, hit.T2, tt.t1, tt.t2)
			}
			assertPoint(t, "Point", hit.Point, tt.point, 1e-9)
		})
	}
}

func TestIntersect_LineCurve(t *testing.T) {
	line := NewLine(Pt(0, 2.5), Pt(10, 2.5))
	quad := NewQuadraticCurve(Pt(0, 0), Pt(5, 10), Pt(10, 0))

	// y(t) = 20t(1-t) = 2.5
	lo := (1 - math.Sqrt(0.5)) / 2
	hi := (1 + math.Sqrt(0.5)) / 2

	all := DefaultOps.Intersections(line, quad)
	if len(all) != 2 {
		t.Fatalf("Intersections() = %v, want 2 hits", all)
	}
	if !approxEqual(all[0].T1, lo, 1e-9) || !approxEqual(all[1].T1, hi, 1e-9) {
		t.Errorf("line parameters = %v, %v, want %v, %v", all[0].T1, all[1].T1, lo, hi)
	}
	assertPoint(t, "first hit", all[0].Point, Pt(10*lo, 2.5), 1e-9)

	// Swapped operands report the curve parameter first.
	hit, ok := quad.Intersects(line)
	if !ok {
		t.Fatal("curve-line Intersects() ok = false")
	}
	if !approxEqual(hit.T1, lo, 1e-9) || !approxEqual(hit.T2, lo, 1e-9) {
		t.Errorf("curve-line T = (%v, %v), want (%v, %v)", hit.T1, hit.T2, lo, lo)
	}
	assertPoint(t, "curve-line point", hit.Point, Pt(10*lo, 2.5), 1e-9)
}

func TestIntersect_LineMissesCurve(t *testing.T) {
	line := NewLine(Pt(0, 8), Pt(10, 8))
	quad := NewQuadraticCurve(Pt(0, 0), Pt(5, 10), Pt(10, 0))
	if hit, ok := line.Intersects(quad); ok {
		t.Errorf("Intersects() = %+v, want none", hit)
	}

	// Crossing the curve's supporting geometry but outside the line's extent.
	short := NewLine(Pt(4, 2.5), Pt(6, 2.5))
	if hit, ok := short.Intersects(quad); ok {
		t.Errorf("short Intersects() = %+v, want none", hit)
	}
}

func TestIntersect_Curves(t *testing.T) {
	a := NewQuadraticCurve(Pt(0, 0), Pt(5, 10), Pt(10, 0))
	b := NewQuadraticCurve(Pt(0, 5), Pt(5, -5), Pt(10, 5))

	lo := (1 - math.Sqrt(0.5)) / 2
	hi := (1 + math.Sqrt(0.5)) / 2

	hits := DefaultOps.Intersections(a, b)
	if len(hits) != 2 {
		t.Fatalf("Intersections() = %v, want 2 hits", hits)
	}
	for i, want := range []float64{lo, hi} {
		if !approxEqual(hits[i].T1, want, 1e-4) || !approxEqual(hits[i].T2, want, 1e-4) {
			t.Errorf("hit %d T = (%v, %v), want (%v, %v)", i, hits[i].T1, hits[i].T2, want, want)
		}
	}
	assertPoint(t, "first point", hits[0].Point, Pt(10*lo, 2.5), 1e-3)
}

func TestIntersect_CubicCurves(t *testing.T) {
	a := NewCubicCurve(Pt(0, 0), Pt(30, 100), Pt(70, 100), Pt(100, 0))
	b := NewCubicCurve(Pt(0, 100), Pt(30, 0), Pt(70, 0), Pt(100, 100))

	hit, ok := a.Intersects(b)
	if !ok {
		t.Fatal("Intersects() ok = false")
	}
	pa := bezier(a.Points()).eval(hit.T1)
	pb := bezier(b.Points()).eval(hit.T2)
	if d := pa.Distance(pb); d > 1e-3 {
		t.Errorf("hit points are %v apart", d)
	}
	if hits := DefaultOps.Intersections(a, b); len(hits) != 2 {
		t.Errorf("Intersections() = %d hits, want 2", len(hits))
	}
}

func TestIntersect_Disjoint(t *testing.T) {
	a := NewCubicCurve(Pt(0, 0), Pt(10, 10), Pt(20, 10), Pt(30, 0))
	b := NewCubicCurve(Pt(0, 50), Pt(10, 60), Pt(20, 60), Pt(30, 50))
	if hit, ok := a.Intersects(b); ok {
		t.Errorf("Intersects() = %+v, want none", hit)
	}
}

func TestDedupeIntersections(t *testing.T) {
	hits := []Intersection{
		{T1: 0.5, T2: 0.2},
		{T1: 0.501, T2: 0.201},
		{T1: 0.1, T2: 0.9},
	}
	got := dedupeIntersections(hits)
	if len(got) != 2 {
		t.Fatalf("dedupeIntersections() = %v, want 2 hits", got)
	}
	if got[0].T1 != 0.1 {
		t.Errorf("first T1 = %v, want 0.1", got[0].T1)
	}
}
