package character

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/skiggle"
	"github.com/npillmayer/skiggle/candidates"
	"github.com/npillmayer/skiggle/latin"
	"github.com/npillmayer/skiggle/segment"
	"github.com/pkg/errors"
)

func pts(coords ...float64) []skiggle.Point {
	var p []skiggle.Point
	for i := 0; i+1 < len(coords); i += 2 {
		p = append(p, skiggle.Pt(coords[i], coords[i+1]))
	}
	return p
}

func latinCharacter(t *testing.T, opts ...Option) *Character {
	t.Helper()
	table, err := latin.Config().Table()
	if err != nil {
		t.Fatal(err)
	}
	c, err := New(table, latin.Verifiers(), opts...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func submit(t *testing.T, c *Character, points []skiggle.Point) Result {
	t.Helper()
	res, err := c.Submit(points)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestTwoStrokeT(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skiggle.character")
	defer teardown()
	//
	c := latinCharacter(t)
	res := submit(t, c, pts(100, 100, 300, 100))
	if res.OK && res.Matched == 'T' {
		t.Errorf("a single bar must not be a T")
	}
	res = submit(t, c, pts(200, 100, 200, 400))
	if !res.OK || res.Matched != 'T' {
		t.Fatalf("expected T, have %q (candidates %q)", res.Matched, res.Candidates)
	}
	if res.Candidates != "T1Lt+" {
		t.Errorf("expected candidates %q, have %q", "T1Lt+", res.Candidates)
	}
	if c.Describe() != "Len:2, -, |" {
		t.Errorf("unexpected description %q", c.Describe())
	}
}

func TestVAndCaret(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skiggle.character")
	defer teardown()
	//
	c := latinCharacter(t)
	submit(t, c, pts(100, 100, 250, 400))
	res := submit(t, c, pts(250, 400, 400, 100))
	if res.Matched != 'V' {
		t.Errorf("expected V, have %q (shapes %v, candidates %q)", res.Matched, res.Shapes, res.Candidates)
	}
	c.Reset()
	submit(t, c, pts(100, 400, 250, 100))
	res = submit(t, c, pts(250, 100, 400, 400))
	if res.Matched != '^' {
		t.Errorf("expected ^, have %q (shapes %v, candidates %q)", res.Matched, res.Shapes, res.Candidates)
	}
}

// In this alphabet, '7' is written as a vertical line followed by a
// horizontal line, and 'L' has no verifier.
func TestCustomAlphabet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skiggle.character")
	defer teardown()
	//
	shapes := map[skiggle.ShapeCode]string{}
	for _, sc := range skiggle.Shapes {
		shapes[sc] = "00"
	}
	shapes[skiggle.VLine] = "11"
	shapes[skiggle.HLine] = "11"
	table, err := candidates.NewTable("L7", shapes, [4]string{"00", "11", "00", "00"})
	if err != nil {
		t.Fatal(err)
	}
	verifiers := skiggle.VerifierTable{
		'7': skiggle.Check(func(ink skiggle.Ink) bool {
			segs := ink.Segments()
			return len(segs) == 2 && segs[0].Shape == skiggle.VLine && segs[1].Shape == skiggle.HLine
		}),
	}
	c, err := New(table, verifiers)
	if err != nil {
		t.Fatal(err)
	}
	res := submit(t, c, pts(100, 100, 100, 300))
	if res.OK || res.Candidates != "" {
		t.Errorf("expected no candidates for a single line, have %q", res.Candidates)
	}
	res = submit(t, c, pts(100, 300, 250, 300))
	if !res.OK || res.Matched != '7' || res.Candidates != "7L" {
		t.Errorf("expected 7 with candidates \"7L\", have %q/%q", res.Matched, res.Candidates)
	}
}

func TestCancelGesture(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skiggle.character")
	defer teardown()
	//
	c := latinCharacter(t)
	scribble := pts(0, 0, 100, 10, 0, 20, 100, 30, 0, 40, 100, 50, 0, 60)
	submit(t, c, pts(100, 100, 300, 100))
	for i := 0; i < 3; i++ {
		res := submit(t, c, scribble)
		if !res.Cancelled {
			t.Fatalf("expected scribble #%d to cancel", i+1)
		}
		if len(c.Segments()) != 0 || len(c.Strokes()) != 0 || !c.Bounds().Empty() {
			t.Errorf("expected character to be empty after cancel #%d", i+1)
		}
	}
	line, _ := skiggle.NewStroke(pts(0, 0, 100, 0))
	if c.IsCancelGesture(line) {
		t.Errorf("a straight line is not a cancel gesture")
	}
	dot, _ := skiggle.NewStroke(pts(10, 10))
	if c.IsCancelGesture(dot) {
		t.Errorf("a dot is not a cancel gesture")
	}
	strict := latinCharacter(t, WithCancelRatio(0.5))
	if !strict.IsCancelGesture(line) {
		t.Errorf("expected a line to cancel with ratio 0.5")
	}
}

func TestReset(t *testing.T) {
	c := latinCharacter(t)
	submit(t, c, pts(100, 100, 300, 100))
	c.Reset()
	c.Reset()
	if len(c.Segments()) != 0 || c.Candidates() != "" {
		t.Errorf("expected empty character after reset")
	}
	if _, ok := c.Matched(); ok {
		t.Errorf("expected no match after reset")
	}
	if m, ok, cands := c.Recognize(); ok || m != 0 || cands != "" {
		t.Errorf("expected no candidates for an empty character, have %q/%q", m, cands)
	}
	res := submit(t, c, pts(100, 400, 300, 400))
	if res.Matched != '_' {
		t.Errorf("expected '_' after reset, have %q", res.Matched)
	}
}

func TestResetKeepsFormerSegments(t *testing.T) {
	c := latinCharacter(t)
	submit(t, c, pts(100, 100, 300, 100))
	segs, strokes := c.Segments(), c.Strokes()
	if len(segs) != 1 || segs[0].Shape != skiggle.HLine {
		t.Fatalf("expected a single horizontal segment, have %v", segs)
	}
	c.Reset()
	submit(t, c, pts(200, 100, 200, 400))
	if segs[0].Shape != skiggle.HLine {
		t.Errorf("segments of a former character changed to %v", segs[0].Shape)
	}
	if strokes[0].Start() != skiggle.Pt(100, 100) {
		t.Errorf("strokes of a former character changed, start is %v", strokes[0].Start())
	}
}

func TestTooManySegments(t *testing.T) {
	c := latinCharacter(t)
	for i := 0; i < 5; i++ {
		y := float64(50 + 60*i)
		submit(t, c, pts(100, y, 300, y))
	}
	m, ok, cands := c.Recognize()
	if ok || m != 0 || cands != candidates.TooComplex {
		t.Errorf("expected %q for 5 segments, have %q/%q", candidates.TooComplex, m, cands)
	}
}

func TestTooComplex(t *testing.T) {
	params := segment.DefaultParams()
	params.MaxDepth = 0
	c := latinCharacter(t, WithParams(params), WithCancelRatio(10))
	res := submit(t, c, pts(0, 0, 0, 100, 100, 100))
	if res.OK || res.Candidates != candidates.TooComplex {
		t.Errorf("expected %q, have %q", candidates.TooComplex, res.Candidates)
	}
	stroke, _ := skiggle.NewStroke(pts(0, 0, 0, 100, 100, 100))
	if err := c.AddSegments(stroke); errors.Cause(err) != segment.ErrTooComplex {
		t.Errorf("expected ErrTooComplex, have %v", err)
	}
}

func TestOptions(t *testing.T) {
	table, _ := latin.Config().Table()
	if _, err := New(table, latin.Verifiers(), WithPadHeight(0)); err == nil {
		t.Errorf("expected error for pad height 0")
	}
	if _, err := New(nil, latin.Verifiers()); err == nil {
		t.Errorf("expected error for missing table")
	}
	c, err := New(table, latin.Verifiers(), WithPadHeight(1000))
	if err != nil {
		t.Fatal(err)
	}
	if c.PadHeight() != 1000 {
		t.Errorf("expected pad height 1000, have %g", c.PadHeight())
	}
}
