package han

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	sk "github.com/npillmayer/skiggle"
	"github.com/npillmayer/skiggle/alphabet"
	"golang.org/x/text/language"
)

type testInk []*sk.Segment

func (ink testInk) Segments() []*sk.Segment { return ink }
func (ink testInk) PadHeight() float64      { return alphabet.DefaultPadHeight }
func (ink testInk) Bounds() sk.Rect {
	var r sk.Rect
	for _, seg := range ink {
		r = r.Union(seg.Bounds)
	}
	return r
}

func line(sc sk.ShapeCode, x0, y0, x1, y1 float64) *sk.Segment {
	start, end := sk.Pt(x0, y0), sk.Pt(x1, y1)
	return &sk.Segment{Shape: sc, Bounds: sk.R(start, end), Start: start, End: end,
		Centroid: sk.Midpoint(start, end)}
}

func TestNumerals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skiggle.han")
	defer teardown()
	//
	table, err := Config().Table()
	if err != nil {
		t.Fatal(err)
	}
	inputs := []struct {
		ink  testInk
		char rune
	}{
		{testInk{line(sk.HLine, 100, 240, 380, 240)}, '一'},
		{testInk{
			line(sk.HLine, 140, 150, 340, 150),
			line(sk.HLine, 100, 330, 380, 330)}, '二'},
		{testInk{
			line(sk.HLine, 140, 120, 340, 120),
			line(sk.HLine, 160, 240, 320, 240),
			line(sk.HLine, 100, 360, 380, 360)}, '三'},
		{testInk{
			line(sk.HLine, 100, 240, 380, 240),
			line(sk.VLine, 240, 80, 240, 400)}, '十'},
		{testInk{
			line(sk.FSlash, 230, 100, 100, 400),
			line(sk.BSlash, 250, 110, 380, 400)}, '八'},
		{testInk{&sk.Segment{Shape: sk.Circle, Bounds: sk.R(sk.Pt(100, 100), sk.Pt(300, 300))}}, '〇'},
	}
	for _, input := range inputs {
		shapes := make([]sk.ShapeCode, len(input.ink))
		for i, seg := range input.ink {
			shapes[i] = seg.Shape
		}
		cands := table.Narrow(shapes)
		r, ok := sk.MatchBest(cands, input.ink, Verifiers())
		if !ok || r != input.char {
			t.Errorf("expected %q, have %q/%v (candidates %q)", input.char, r, ok, cands)
		}
	}
}

func TestHorizontalCountEnforced(t *testing.T) {
	two := testInk{
		line(sk.HLine, 140, 150, 340, 150),
		line(sk.HLine, 100, 330, 380, 330)}
	vt := Verifiers()
	if _, ok := vt.Verify('三', two); ok {
		t.Errorf("two strokes must not verify as 三")
	}
	if _, ok := vt.Verify('一', two); ok {
		t.Errorf("two strokes must not verify as 一")
	}
	if _, ok := vt.Verify('四', two); ok {
		t.Errorf("四 has no rule and must never verify")
	}
}

func TestLocale(t *testing.T) {
	m, ok := alphabet.ForLocale(language.MustParse("zh-CN"))
	if !ok || m.Config.Name != Name {
		t.Errorf("expected Chinese locale to select module %q", Name)
	}
}
