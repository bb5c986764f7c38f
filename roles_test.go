package skiggle

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type testInk []*Segment

func (ink testInk) Segments() []*Segment { return ink }
func (ink testInk) PadHeight() float64   { return 480 }
func (ink testInk) Bounds() Rect {
	var r Rect
	for _, seg := range ink {
		r = r.Union(seg.Bounds)
	}
	return r
}

func line(sc ShapeCode, x0, y0, x1, y1 float64) *Segment {
	s, _ := NewStroke([]Point{{x0, y0}, {x1, y1}})
	return &Segment{
		Shape:  sc,
		Stroke: s,
		Length: s.Length(),
		Bounds: s.Bounds(),
		Start:  s.Start(),
		End:    s.End(),
	}
}

func TestCaretAndVGap(t *testing.T) {
	// '^': slash up, back-slash down, meeting at the top
	fs := line(FSlash, 0, 100, 50, 0)
	bs := line(BSlash, 52, 2, 100, 100)
	if !CaretGap(fs, bs) {
		t.Errorf("expected caret gap to hold for ^")
	}
	if VGap(fs, bs) {
		t.Errorf("expected V gap to fail for ^")
	}
	// 'V': back-slash down, slash up, meeting at the bottom
	bs = line(BSlash, 0, 0, 50, 100)
	fs = line(FSlash, 52, 98, 100, 0)
	if !VGap(bs, fs) {
		t.Errorf("expected V gap to hold for V")
	}
	if CaretGap(bs, fs) {
		t.Errorf("expected caret gap to fail for V")
	}
}

func TestOrdering(t *testing.T) {
	a := line(HLine, 0, 100, 50, 100)
	b := line(HLine, 0, 0, 50, 0)
	top, bottom := OrderTopBottom(a, b)
	if top != b || bottom != a {
		t.Errorf("expected segments to be swapped into top/bottom order")
	}
	l, r := OrderLeftRight(a, line(VLine, -10, 0, -10, 100))
	if l.Shape != VLine || r != a {
		t.Errorf("expected VLine to be on the left")
	}
	m1, m2 := ThirdMarks(Pt(0, 0), Pt(90, 30))
	if m1 != Pt(30, 10) || m2 != Pt(60, 20) {
		t.Errorf("unexpected third marks %v, %v", m1, m2)
	}
}

func TestExpect(t *testing.T) {
	ink := testInk{line(HLine, 0, 0, 50, 0), line(VLine, 25, 0, 25, 100)}
	r, ok := Expect(ink, VLine, HLine)
	if !ok {
		t.Fatalf("expected shapes to match in any order")
	}
	if r.One(VLine) != ink[1] || r.One(FC) != nil {
		t.Errorf("unexpected roles %v", r)
	}
	if _, ok = Expect(ink, VLine, VLine); ok {
		t.Errorf("expected mismatch for two VLines")
	}
	if _, ok = Expect(ink, VLine); ok {
		t.Errorf("expected mismatch for wrong segment count")
	}
}

func TestMatchBest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skiggle.core")
	defer teardown()
	ink := testInk{line(HLine, 0, 0, 50, 0), line(VLine, 25, 0, 25, 100)}
	table := VerifierTable{
		'1': Check(func(Ink) bool { return false }),
		'T': Check(func(ink Ink) bool {
			r, ok := Expect(ink, HLine, VLine)
			return ok && Near(r.One(VLine).Top(), r.One(HLine).Mid(), 10)
		}),
		'L': Check(func(Ink) bool { return true }),
	}
	c, ok := MatchBest("1TL+", ink, table)
	if !ok || c != 'T' {
		t.Errorf("expected first verifying candidate T, have %q", c)
	}
	if _, ok = MatchBest("+?", ink, table); ok {
		t.Errorf("expected characters without verifier to never verify")
	}
	if _, ok = MatchBest("", ink, table); ok {
		t.Errorf("expected empty candidate string to never match")
	}
}
