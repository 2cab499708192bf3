package stroke

import (
	"math"
	"testing"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func assertPoint(t *testing.T, name string, got, want Point, eps float64) {
	t.Helper()
	if !got.EqualWithin(want, eps) {
		t.Errorf("%s = (%v), want (%v)", name, got, want)
	}
}

func TestPoint_Polar(t *testing.T) {
	tests := []struct {
		name  string
		theta float64
		r     float64
		want  Point
	}{
		{"zero angle", 0, 2, Pt(2, 0)},
		{"quarter turn", 90, 2, Pt(0, 2)},
		{"half turn", 180, 1, Pt(-1, 0)},
		{"negative angle", -90, 3, Pt(0, -3)},
		{"diagonal", 45, math.Sqrt2, Pt(1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertPoint(t, "Polar", Polar(tt.theta, tt.r), tt.want, 1e-12)
		})
	}
}

func TestPoint_PolarAccessors(t *testing.T) {
	p := Pt(3, 4)

	if p.R() != 5 {
		t.Errorf("R() = %v, want 5", p.R())
	}
	if got := Pt(0, 1).Theta(); !approxEqual(got, 90, 1e-12) {
		t.Errorf("Theta() = %v, want 90", got)
	}

	assertPoint(t, "SetR", p.SetR(10), Pt(6, 8), 1e-12)
	assertPoint(t, "SetTheta", p.SetTheta(0), Pt(5, 0), 1e-12)
	assertPoint(t, "SetX", p.SetX(7), Pt(7, 4), 0)
	assertPoint(t, "SetY", p.SetY(7), Pt(3, 7), 0)
}

func TestPoint_Operations(t *testing.T) {
	a := Pt(1, 2)
	b := Pt(5, 8)

	assertPoint(t, "Add", a.Add(b), Pt(6, 10), 0)
	assertPoint(t, "Sub", b.Sub(a), Pt(4, 6), 0)
	assertPoint(t, "Scale", a.Scale(3), Pt(3, 6), 0)
	assertPoint(t, "Center", a.Center(b), Pt(3, 5), 0)
	assertPoint(t, "Lerp", a.Lerp(b, 0.25), Pt(2, 3.5), 1e-12)

	if got := Pt(0, 0).Distance(Pt(3, 4)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := a.Dot(b); got != 21 {
		t.Errorf("Dot = %v, want 21", got)
	}
	if got := Pt(1, 0).Cross(Pt(0, 1)); got != 1 {
		t.Errorf("Cross = %v, want 1", got)
	}
}

func TestPoint_RotateAround(t *testing.T) {
	got := Pt(20, 10).RotateAround(Pt(10, 10), 90)
	assertPoint(t, "RotateAround", got, Pt(10, 20), 1e-9)

	got = Pt(20, 10).RotateAround(Pt(10, 10), -180)
	assertPoint(t, "RotateAround", got, Pt(0, 10), 1e-9)
}

func TestPoint_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want bool
	}{
		{"identical", Pt(1, 1), Pt(1, 1), true},
		{"within epsilon", Pt(1, 1), Pt(1.005, 0.995), true},
		{"x too far", Pt(1, 1), Pt(1.02, 1), false},
		{"y too far", Pt(1, 1), Pt(1, 0.98), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPoint_UnitAndPerp(t *testing.T) {
	assertPoint(t, "unit", Pt(0, 5).unit(), Pt(0, 1), 1e-12)
	assertPoint(t, "unit of zero", Point{}.unit(), Point{}, 0)
	assertPoint(t, "perp", Pt(1, 0).perp(), Pt(0, 1), 0)
}
