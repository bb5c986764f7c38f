package skiggle

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStrokeEmpty(t *testing.T) {
	_, err := NewStroke(nil)
	if errors.Cause(err) != ErrEmptyStroke {
		t.Errorf("expected ErrEmptyStroke, have %v", err)
	}
}

func TestStrokeLength(t *testing.T) {
	s, _ := NewStroke([]Point{{0, 0}, {30, 40}, {30, 40}, {30, 50}})
	if !near(s.Length(), 60) {
		t.Errorf("expected length 60, have %g", s.Length())
	}
	if len(s.Points()) != 3 {
		t.Errorf("expected duplicate point to be dropped, have %d points", len(s.Points()))
	}
	if s.From() != 0 || !near(s.To(), 60) {
		t.Errorf("expected range [0,60], have [%g,%g]", s.From(), s.To())
	}
}

func TestStrokeTapIsPadded(t *testing.T) {
	s, err := NewStroke([]Point{{5, 5}, {5, 5}})
	if err != nil {
		t.Fatal(err)
	}
	if !near(s.Length(), 1) {
		t.Errorf("expected padded tap to have length 1, have %g", s.Length())
	}
	b := s.Bounds()
	if b.Width() != 0 || !near(b.Height(), 1) || b.Center() != Pt(5, 5) {
		t.Errorf("unexpected bounds of tap: %v", b)
	}
}

func TestStrokePosTan(t *testing.T) {
	s, _ := NewStroke([]Point{{0, 0}, {30, 40}})
	pos, tan := s.PosTan(25)
	if !near(pos.X, 15) || !near(pos.Y, 20) {
		t.Errorf("expected position (15,20), have %v", pos)
	}
	if !near(tan.X, 0.6) || !near(tan.Y, 0.8) {
		t.Errorf("expected unit tangent (0.6,0.8), have %v", tan)
	}
	pos, _ = s.PosTan(100)
	if pos != s.End() {
		t.Errorf("expected position to be clamped to end point, have %v", pos)
	}
}

func TestStrokeSub(t *testing.T) {
	s, _ := NewStroke([]Point{{0, 0}, {0, 100}, {100, 100}})
	sub := s.Sub(50, 150)
	pts := sub.Points()
	if len(pts) != 3 {
		t.Fatalf("expected 3 points in sub-stroke, have %v", pts)
	}
	if pts[0] != Pt(0, 50) || pts[1] != Pt(0, 100) || pts[2] != Pt(50, 100) {
		t.Errorf("unexpected sub-stroke %v", pts)
	}
	if !near(sub.Length(), 100) || !near(sub.From(), 50) || !near(sub.To(), 150) {
		t.Errorf("unexpected sub-stroke range [%g,%g]", sub.From(), sub.To())
	}
	subsub := sub.Sub(10, 20)
	if !near(subsub.From(), 60) || !near(subsub.To(), 70) {
		t.Errorf("expected nested range [60,70], have [%g,%g]", subsub.From(), subsub.To())
	}
}
