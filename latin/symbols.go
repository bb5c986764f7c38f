package latin

import (
	"math"

	sk "github.com/npillmayer/skiggle"
)

// '!' is a vertical line with a dot below it.
func isExclamationMark(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.VLine, sk.Dot)
	if !ok {
		return false
	}
	v, dot := r.One(sk.VLine), r.One(sk.Dot)
	dy := dot.Top().Y - v.Bottom().Y
	return sk.Between(dy, 0, 0.5*v.Height()) &&
		math.Abs(dot.Top().X-v.Bottom().X) < 0.1*v.Height()
}

// '#' is two horizontal bars crossed by two slashes. The crossings lie at
// the third-marks of all four lines.
func isHash(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.HLine, sk.HLine, sk.FSlash, sk.FSlash)
	if !ok {
		return false
	}
	top, bottom := r.TopBottom(sk.HLine)
	left, right := r.LeftRight(sk.FSlash)
	top1, top2 := sk.ThirdMarks(top.LeftRight())
	bottom1, bottom2 := sk.ThirdMarks(bottom.LeftRight())
	left1, left2 := sk.ThirdMarks(left.TopBottom())
	right1, right2 := sk.ThirdMarks(right.TopBottom())
	thr := math.Min(
		math.Min(sk.Distance(top1, top2), sk.Distance(bottom1, bottom2)),
		math.Min(sk.Distance(left1, left2), sk.Distance(right1, right2)))
	return sk.Near(top1, left1, thr) &&
		sk.Near(top2, right1, thr) &&
		sk.Near(bottom1, left2, thr) &&
		sk.Near(bottom2, right2, thr)
}

// '%' is a slash with a circle on either side of it.
func isPercent(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.Circle, sk.Circle, sk.FSlash)
	if !ok {
		return false
	}
	top, bottom := r.TopBottom(sk.Circle)
	fs := r.One(sk.FSlash)
	thr := 0.5 * fs.Height()
	return sk.Near(fs.Mid(), top.Centroid, thr) && sk.Near(fs.Mid(), bottom.Centroid, thr)
}

// rightParenOrComma tells ')' from ',' by the vertical position on the pad.
func rightParenOrComma(c rune, ink sk.Ink) (rune, bool) {
	bc := onlyOne(ink, sk.BC)
	if bc == nil {
		return c, false
	}
	if isLow(ink, bc) {
		return ',', true
	}
	return ')', true
}

// '+' is a horizontal and a vertical line crossing at their midpoints.
func isPlus(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.HLine, sk.VLine)
	if !ok {
		return false
	}
	h, v := r.One(sk.HLine), r.One(sk.VLine)
	tops, bottoms := sk.Gaps(v, h)
	return sk.Distance(v.Mid(), h.Mid()) < 0.25*math.Max(tops, bottoms)
}

// dashOrUnderscore tells '-' from '_' by the vertical position on the pad.
func dashOrUnderscore(c rune, ink sk.Ink) (rune, bool) {
	h := onlyOne(ink, sk.HLine)
	if h == nil {
		return c, false
	}
	if isLow(ink, h) {
		return '_', true
	}
	return '-', true
}

// maxDotOffset is the maximum horizontal offset in pixels between the two
// dots of a ':' or the bars of a '='.
const maxDotOffset = 20

func isColon(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.Dot, sk.Dot)
	if !ok {
		return false
	}
	top, bottom := r.TopBottom(sk.Dot)
	return math.Abs(top.Centroid.X-bottom.Centroid.X) < maxDotOffset
}

func isSemicolon(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.Dot, sk.BC)
	if !ok {
		return false
	}
	dot, bc := r.One(sk.Dot), r.One(sk.BC)
	return math.Abs(dot.Centroid.X-bc.Top().X) < maxDotOffset
}

// lessOrGreater checks for two slashes meeting at a point. If the upper one
// is a back-slash, the point is on the right and the character is '>'.
func lessOrGreater(c rune, ink sk.Ink) (rune, bool) {
	r, ok := sk.Expect(ink, sk.BSlash, sk.FSlash)
	if !ok {
		return c, false
	}
	top, bottom := sk.OrderTopBottom(r.One(sk.BSlash), r.One(sk.FSlash))
	height := bottom.Bottom().Y - top.Top().Y
	if !sk.Near(top.Bottom(), bottom.Top(), 0.1*height) {
		return c, false
	}
	if top.Shape == sk.BSlash {
		return '>', true
	}
	return '<', true
}

func isEqualSign(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.HLine, sk.HLine)
	if !ok {
		return false
	}
	top, bottom := r.TopBottom(sk.HLine)
	return math.Abs(top.Centroid.X-bottom.Centroid.X) < maxDotOffset
}

func isCaret(ink sk.Ink) bool {
	segs := ink.Segments()
	return len(segs) == 2 && sk.CaretGap(segs[0], segs[1])
}
