package latin

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	sk "github.com/npillmayer/skiggle"
	"github.com/npillmayer/skiggle/alphabet"
	"github.com/npillmayer/skiggle/candidates"
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

// line creates a straight segment from (x0,y0) to (x1,y1).
func line(sc sk.ShapeCode, x0, y0, x1, y1 float64) *sk.Segment {
	start, end := sk.Pt(x0, y0), sk.Pt(x1, y1)
	return &sk.Segment{
		Shape:    sc,
		Length:   sk.Distance(start, end),
		Bounds:   sk.R(start, end),
		Start:    start,
		End:      end,
		Centroid: sk.Midpoint(start, end),
	}
}

// curve creates a curved segment from (x0,y0) to (x1,y1) inside a box.
func curve(sc sk.ShapeCode, x0, y0, x1, y1 float64, box sk.Rect) *sk.Segment {
	seg := line(sc, x0, y0, x1, y1)
	seg.Bounds = box
	seg.Centroid = box.Center()
	return seg
}

func dot(x, y float64) *sk.Segment {
	return line(sk.Dot, x, y-0.5, x, y+0.5)
}

func box(x0, y0, x1, y1 float64) sk.Rect {
	return sk.R(sk.Pt(x0, y0), sk.Pt(x1, y1))
}

func recognize(t *testing.T, table *candidates.Table, ink testInk) (rune, bool, string) {
	t.Helper()
	shapes := make([]sk.ShapeCode, len(ink))
	for i, seg := range ink {
		shapes[i] = seg.Shape
	}
	cands := table.Narrow(shapes)
	r, ok := sk.MatchBest(cands, ink, Verifiers())
	return r, ok, cands
}

func TestRecognize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skiggle.latin")
	defer teardown()
	//
	table, err := Config().Table()
	if err != nil {
		t.Fatal(err)
	}
	inputs := []struct {
		name string
		ink  testInk
		char rune
	}{
		{"T", testInk{
			line(sk.HLine, 100, 100, 300, 100),
			line(sk.VLine, 200, 100, 200, 400)}, 'T'},
		{"L", testInk{
			line(sk.VLine, 100, 100, 100, 400),
			line(sk.HLine, 100, 400, 300, 400)}, 'L'},
		{"plus", testInk{
			line(sk.HLine, 100, 260, 300, 260),
			line(sk.VLine, 200, 100, 200, 400)}, '+'},
		{"t", testInk{
			line(sk.VLine, 200, 100, 200, 400),
			line(sk.HLine, 120, 180, 280, 180)}, 't'},
		{"7", testInk{
			line(sk.HLine, 100, 100, 300, 100),
			line(sk.FSlash, 300, 100, 150, 400)}, '7'},
		{"A", testInk{
			line(sk.FSlash, 50, 400, 150, 100),
			line(sk.BSlash, 150, 100, 250, 400),
			line(sk.HLine, 100, 250, 200, 250)}, 'A'},
		{"E", testInk{
			line(sk.VLine, 100, 100, 100, 400),
			line(sk.HLine, 100, 100, 250, 100),
			line(sk.HLine, 100, 250, 220, 250),
			line(sk.HLine, 100, 400, 250, 400)}, 'E'},
		{"H", testInk{
			line(sk.VLine, 100, 100, 100, 400),
			line(sk.VLine, 300, 100, 300, 400),
			line(sk.HLine, 100, 250, 300, 250)}, 'H'},
		{"I", testInk{
			line(sk.HLine, 100, 100, 300, 100),
			line(sk.VLine, 200, 100, 200, 400),
			line(sk.HLine, 100, 400, 300, 400)}, 'I'},
		{"]", testInk{
			line(sk.HLine, 100, 100, 300, 100),
			line(sk.VLine, 300, 100, 300, 400),
			line(sk.HLine, 100, 400, 300, 400)}, ']'},
		{"X", testInk{
			line(sk.BSlash, 100, 100, 300, 400),
			line(sk.FSlash, 300, 100, 100, 400)}, 'X'},
		{"V", testInk{
			line(sk.BSlash, 100, 100, 200, 400),
			line(sk.FSlash, 200, 400, 300, 100)}, 'V'},
		{"caret", testInk{
			line(sk.FSlash, 100, 400, 200, 100),
			line(sk.BSlash, 200, 100, 300, 400)}, '^'},
		{"less", testInk{
			line(sk.FSlash, 300, 100, 100, 250),
			line(sk.BSlash, 100, 250, 300, 400)}, '<'},
		{"W", testInk{
			line(sk.BSlash, 100, 100, 150, 400),
			line(sk.FSlash, 150, 400, 200, 100),
			line(sk.BSlash, 200, 100, 250, 400),
			line(sk.FSlash, 250, 400, 300, 100)}, 'W'},
		{"O", testInk{
			curve(sk.Circle, 200, 100, 200, 100, box(100, 100, 300, 300))}, 'O'},
		{"o", testInk{
			curve(sk.Circle, 125, 100, 125, 100, box(100, 100, 150, 150))}, 'o'},
		{"D", testInk{
			line(sk.VLine, 100, 100, 100, 400),
			curve(sk.BC, 100, 100, 100, 400, box(100, 100, 250, 400))}, 'D'},
		{"P", testInk{
			line(sk.VLine, 100, 100, 100, 400),
			curve(sk.BC, 100, 100, 100, 250, box(100, 100, 200, 250))}, 'P'},
		{"p", testInk{
			line(sk.VLine, 100, 200, 100, 380),
			curve(sk.BC, 100, 200, 100, 290, box(100, 200, 170, 290))}, 'p'},
		{"S", testInk{
			curve(sk.FC, 250, 100, 200, 200, box(150, 100, 250, 200)),
			curve(sk.BC, 200, 200, 150, 300, box(150, 200, 250, 300))}, 'S'},
		{"3", testInk{
			curve(sk.BC, 100, 100, 100, 250, box(100, 100, 200, 250)),
			curve(sk.BC, 100, 250, 100, 400, box(100, 250, 200, 400))}, '3'},
		{"9", testInk{
			curve(sk.FC, 200, 100, 200, 175, box(120, 100, 200, 175)),
			line(sk.VLine, 200, 100, 200, 250)}, '9'},
		{"q", testInk{
			curve(sk.FC, 200, 300, 200, 375, box(120, 300, 200, 375)),
			line(sk.VLine, 200, 300, 200, 450)}, 'q'},
		{"i", testInk{
			line(sk.VLine, 200, 200, 200, 400),
			dot(200, 150)}, 'i'},
		{"exclamation mark", testInk{
			line(sk.VLine, 200, 100, 200, 300),
			dot(200, 350)}, '!'},
		{"dash", testInk{
			line(sk.HLine, 100, 200, 300, 200)}, '-'},
		{"underscore", testInk{
			line(sk.HLine, 100, 400, 300, 400)}, '_'},
	}
	for _, input := range inputs {
		r, ok, cands := recognize(t, table, input.ink)
		if !ok {
			t.Errorf("%s: no candidate of %q verified", input.name, cands)
			continue
		}
		if r != input.char {
			t.Errorf("%s: expected %q, have %q (candidates %q)", input.name, input.char, r, cands)
		}
	}
}

func TestCandidateOrder(t *testing.T) {
	table, err := Config().Table()
	if err != nil {
		t.Fatal(err)
	}
	c := table.Narrow([]sk.ShapeCode{sk.HLine, sk.VLine})
	if c != "1TLt+" {
		t.Errorf("expected candidates for -| to be %q, have %q", "1TLt+", c)
	}
	c = table.Narrow([]sk.ShapeCode{sk.BSlash, sk.FSlash})
	if !strings.HasPrefix(c, "VX") || !strings.HasSuffix(c, "^") {
		t.Errorf("expected candidates for \\/ to range from V to ^, have %q", c)
	}
}

func TestNoRuleNeverVerifies(t *testing.T) {
	vt := Verifiers()
	ink := testInk{curve(sk.Circle, 200, 100, 200, 100, box(100, 100, 300, 300))}
	for _, c := range "0268efghjlmnr $&*?@`{}~" {
		if _, ok := vt.Verify(c, ink); ok {
			t.Errorf("%q should have no verifier", c)
		}
	}
	for c := range vt {
		if !strings.ContainsRune(Alphabet, c) {
			t.Errorf("verifier for %q, which is not part of the alphabet", c)
		}
	}
}

func TestRegistered(t *testing.T) {
	m, ok := alphabet.Lookup(Name)
	if !ok {
		t.Fatalf("expected module %q to be registered", Name)
	}
	if m.Config.Alphabet != Alphabet {
		t.Errorf("registered alphabet differs")
	}
	if len([]rune(Alphabet)) != 95 {
		t.Errorf("expected 95 printable ASCII characters, have %d", len([]rune(Alphabet)))
	}
}

func TestVerifiersAreDeterministic(t *testing.T) {
	inks := []testInk{
		{line(sk.HLine, 100, 100, 300, 100), line(sk.VLine, 200, 100, 200, 400)},
		{line(sk.HLine, 100, 100, 300, 100), line(sk.FSlash, 300, 100, 150, 400)},
		{line(sk.BSlash, 100, 100, 200, 400), line(sk.FSlash, 200, 400, 300, 100)},
		{curve(sk.Circle, 200, 100, 200, 100, box(100, 100, 300, 300))},
		{line(sk.VLine, 100, 100, 100, 400), curve(sk.BC, 100, 100, 100, 250, box(100, 100, 200, 250))},
	}
	verifiers := Verifiers()
	for i, ink := range inks {
		for _, c := range Config().Alphabet {
			r1, ok1 := verifiers.Verify(c, ink)
			r2, ok2 := verifiers.Verify(c, ink)
			if r1 != r2 || ok1 != ok2 {
				t.Errorf("ink #%d, %q: verification differs between calls: %q/%v vs %q/%v",
					i, c, r1, ok1, r2, ok2)
			}
		}
	}
}
