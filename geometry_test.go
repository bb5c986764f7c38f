package skiggle

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	if d := Distance(Pt(0, 0), Pt(3, 4)); d != 5 {
		t.Errorf("expected distance of 5, have %g", d)
	}
}

func TestAbsoluteAngle(t *testing.T) {
	inputs := []struct {
		dy, dx, angle float64
	}{
		{0, 1, 0},
		{1, 0, 90},
		{0, -1, 180},
		{-1, 0, 270},
		{1, 1, 45},
		{-1, 1, 315},
	}
	for i, input := range inputs {
		a := AbsoluteAngle(input.dy, input.dx)
		if math.Abs(a-input.angle) > 1e-9 {
			t.Errorf("test #%d: expected %g°, have %g°", i, input.angle, a)
		}
		if a < 0 || a >= 360 {
			t.Errorf("test #%d: angle %g out of range", i, a)
		}
	}
}

func TestAxialDistance(t *testing.T) {
	if d := AxialDistance(190, 0); math.Abs(d-10) > 1e-9 {
		t.Errorf("expected 10°, have %g", d)
	}
	if d := AxialDistance(350, 0); math.Abs(d-10) > 1e-9 {
		t.Errorf("expected 10°, have %g", d)
	}
	if d := AxialDistance(315, 135); d != 0 {
		t.Errorf("expected opposite directions to have distance 0, have %g", d)
	}
	if d := AxialDistance(0, 90); d != 90 {
		t.Errorf("expected 90°, have %g", d)
	}
}

func TestCurvatureCollinear(t *testing.T) {
	k := Curvature3Point(Pt(0, 0), Pt(1, 1), Pt(2, 2))
	if math.Abs(k) > 1e-12 {
		t.Errorf("expected curvature 0 for collinear points, have %g", k)
	}
	k = Curvature3Point(Pt(1, 1), Pt(5, 5), Pt(1, 1))
	if k != 0 {
		t.Errorf("expected 0 for coinciding outer points, have %g", k)
	}
}

func TestCurvatureCircle(t *testing.T) {
	const r = 50.0
	for _, h := range []float64{0.05, 0.1, 0.2} {
		p0 := Pt(r*math.Cos(h), -r*math.Sin(h))
		p1 := Pt(r, 0)
		p2 := Pt(r*math.Cos(h), r*math.Sin(h))
		k := Curvature3Point(p0, p1, p2)
		// three-point estimation error grows with h²
		if math.Abs(math.Abs(k)-1/r) > 0.02/r {
			t.Errorf("step %g: expected |curvature| ≈ %g, have %g", h, 1/r, k)
		}
		// reverse orientation flips the sign
		if k2 := Curvature3Point(p2, p1, p0); math.Signbit(k2) == math.Signbit(k) {
			t.Errorf("step %g: expected sign to flip with orientation", h)
		}
	}
}

func TestHistogram5(t *testing.T) {
	h := Histogram5([]float64{0, -1, 2, 3, 4, 5, -10})
	sum := 0
	for _, n := range h {
		sum += n
	}
	if sum != 7 {
		t.Errorf("expected 7 values in buckets, have %d", sum)
	}
	if h[0] != 3 || h[4] != 1 {
		t.Errorf("unexpected histogram %v", h)
	}
}

func TestRectExtend(t *testing.T) {
	var r Rect
	if !r.Empty() {
		t.Fatalf("expected zero rect to be empty")
	}
	r = r.Extend(Pt(10, 10)).Extend(Pt(5, 20))
	if r.Width() != 5 || r.Height() != 10 {
		t.Errorf("expected 5×10, have %g×%g", r.Width(), r.Height())
	}
	u := r.Union(Rect{})
	if u != r {
		t.Errorf("union with empty rect should not change %v", r)
	}
}
