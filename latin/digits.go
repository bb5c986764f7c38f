package latin

import (
	"math"

	sk "github.com/npillmayer/skiggle"
)

// '1' is a vertical line, optionally with a slash as a flag at the top and
// a horizontal line as a base.
func is1(ink sk.Ink) bool {
	n := len(ink.Segments())
	if n < 1 || n > 3 {
		return false
	}
	r := sk.FindRoles(ink)
	if r.Count(sk.VLine) != 1 || r.Count(sk.FSlash) > 1 || r.Count(sk.HLine) > 1 {
		return false
	}
	if r.Count(sk.VLine)+r.Count(sk.FSlash)+r.Count(sk.HLine) != n {
		return false
	}
	v := r.One(sk.VLine)
	thr := 0.1 * v.Height()
	if flag := r.One(sk.FSlash); flag != nil && !sk.Near(v.Top(), flag.Top(), thr) {
		return false
	}
	if base := r.One(sk.HLine); base != nil && !sk.Near(v.Bottom(), base.Mid(), thr) {
		return false
	}
	return true
}

// '3' is two backward C's stacked on top of each other.
func is3(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.BC, sk.BC)
	if !ok {
		return false
	}
	top, bottom := r.TopBottom(sk.BC)
	thr := 0.25 * (bottom.Bottom().Y - top.Top().Y)
	return sk.Near(top.Bottom(), bottom.Top(), thr)
}

// '4' is a slash going down to the left end of a horizontal line, crossed
// by a vertical line.
func is4(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.HLine, sk.VLine, sk.FSlash)
	if !ok {
		return false
	}
	h, v, fs := r.One(sk.HLine), r.One(sk.VLine), r.One(sk.FSlash)
	thr := 0.25 * v.Height()
	return sk.Near(h.Left(), fs.Bottom(), thr) && sk.Near(v.Mid(), h.Mid(), thr)
}

// '5' is a horizontal bar, a vertical line down from its left end and a
// backward C below.
func is5(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.HLine, sk.VLine, sk.BC)
	if !ok {
		return false
	}
	h, v, bc := r.One(sk.HLine), r.One(sk.VLine), r.One(sk.BC)
	thr := 0.25 * (bc.Bottom().Y - h.Left().Y)
	return sk.Near(h.Left(), v.Top(), thr) && sk.Near(v.Bottom(), bc.Top(), thr)
}

// '7' is a horizontal bar with a slash hanging from its right end.
func is7(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.HLine, sk.FSlash)
	if !ok {
		return false
	}
	h, fs := r.One(sk.HLine), r.One(sk.FSlash)
	return sk.Near(h.Right(), fs.Top(), 0.25*fs.Height())
}

func is9(ink sk.Ink) bool {
	return isLoopWithStem(ink, -1, 0.4*ink.PadHeight())
}

func isSmallQ(ink sk.Ink) bool {
	return isLoopWithStem(ink, 0.4*ink.PadHeight(), ink.PadHeight()+1)
}

// isLoopWithStem checks for a forward C closed by a vertical line at its
// right, as in '9' and 'q'. The two differ by the position of the stem's
// top on the writing pad.
func isLoopWithStem(ink sk.Ink, minTop, maxTop float64) bool {
	r, ok := sk.Expect(ink, sk.VLine, sk.FC)
	if !ok {
		return false
	}
	v, fc := r.One(sk.VLine), r.One(sk.FC)
	thr := 0.25 * v.Height()
	return sk.Near(v.Top(), fc.Top(), thr) &&
		sk.Near(v.Mid(), fc.Bottom(), thr) &&
		sk.Between(v.Top().Y, minTop, maxTop)
}

func minmax(a, b float64) (float64, float64) {
	return math.Min(a, b), math.Max(a, b)
}
