package latin

import (
	"math"

	sk "github.com/npillmayer/skiggle"
)

// 'A' is a caret made of two slashes, crossed by a horizontal bar
// somewhere in the middle.
func isCapitalA(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.FSlash, sk.BSlash, sk.HLine)
	if !ok {
		return false
	}
	fs, bs, h := r.One(sk.FSlash), r.One(sk.BSlash), r.One(sk.HLine)
	if !sk.CaretGap(fs, bs) {
		return false
	}
	box := fs.Bounds.Union(bs.Bounds)
	off := h.Mid().Sub(box.Min)
	return sk.Between(off.X, 0.25*box.Width(), 0.75*box.Width()) &&
		sk.Between(off.Y, 0.25*box.Height(), 0.75*box.Height())
}

// 'B' is a vertical line with two backward C's attached to its right.
func isCapitalB(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.BC, sk.BC, sk.VLine)
	if !ok {
		return false
	}
	top, bottom := r.TopBottom(sk.BC)
	v := r.One(sk.VLine)
	thr := 0.25 * v.Height()
	return sk.Near(v.Top(), top.Top(), thr) &&
		sk.Near(v.Mid(), top.Bottom(), 2*thr) &&
		sk.Near(v.Mid(), bottom.Top(), 2*thr) &&
		sk.Near(v.Bottom(), bottom.Bottom(), thr)
}

// isCShape checks for a single forward C which is not too narrow, to tell it
// from a '('.
func isCShape(ink sk.Ink) bool {
	fc := onlyOne(ink, sk.FC)
	return fc != nil && fc.Bounds.Width() > 0.4*fc.Bounds.Height()
}

func isCapitalD(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.BC, sk.VLine)
	if !ok {
		return false
	}
	bc, v := r.One(sk.BC), r.One(sk.VLine)
	thr := 0.25 * v.Height()
	return sk.Near(v.Top(), bc.Top(), thr) && sk.Near(v.Bottom(), bc.Bottom(), thr)
}

// 'E' is a vertical line with three horizontal bars starting at its top,
// middle and bottom.
func isCapitalE(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.HLine, sk.HLine, sk.HLine, sk.VLine)
	if !ok {
		return false
	}
	bars := sk.SortTopBottom(r[sk.HLine], (*sk.Segment).Left)
	v := r.One(sk.VLine)
	thr := 0.25 * v.Height()
	return sk.Near(v.Top(), bars[0].Left(), thr) &&
		sk.Near(v.Mid(), bars[1].Left(), thr) &&
		sk.Near(v.Bottom(), bars[2].Left(), thr)
}

// 'F' is a vertical line with a bar at its top and a second bar below.
func isCapitalF(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.HLine, sk.HLine, sk.VLine)
	if !ok {
		return false
	}
	bars := sk.SortTopBottom(r[sk.HLine], func(seg *sk.Segment) sk.Point { return seg.Start })
	v := r.One(sk.VLine)
	thr := 0.25 * v.Height()
	dy := math.Abs(bars[0].Left().Y - bars[1].Left().Y)
	return sk.Between(dy, thr, 0.75*v.Height()) && sk.Near(v.Top(), bars[0].Left(), thr)
}

// 'G' is a forward C with a short bar and a vertical line closing it at
// the lower right.
func isCapitalG(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.FC, sk.HLine, sk.VLine)
	if !ok {
		return false
	}
	fc, h, v := r.One(sk.FC), r.One(sk.HLine), r.One(sk.VLine)
	ref := math.Min(h.Width(), v.Height())
	return math.Abs(h.Mid().Y-v.Top().Y) <= 0.25*ref &&
		math.Abs(h.Mid().X-v.Top().X) <= 0.5*ref &&
		math.Abs(v.Mid().Y-fc.Bottom().Y) <= 0.5*ref &&
		math.Abs(v.Mid().X-fc.Bottom().X) <= 0.25*ref
}

func isCapitalH(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.VLine, sk.VLine, sk.HLine)
	if !ok {
		return false
	}
	left, right := r.LeftRight(sk.VLine)
	h := r.One(sk.HLine)
	thr := 0.25 * h.Width()
	return sk.Near(h.Left(), left.Mid(), thr) && sk.Near(h.Right(), right.Mid(), thr)
}

// capitalIOrBracket tells 'I', '[' and ']' apart. All of them are a vertical
// line between two horizontal bars; they differ by where the vertical line
// meets the bars.
func capitalIOrBracket(c rune, ink sk.Ink) (rune, bool) {
	r, ok := sk.Expect(ink, sk.HLine, sk.HLine, sk.VLine)
	if !ok {
		return c, false
	}
	top, bottom := r.TopBottom(sk.HLine)
	v := r.One(sk.VLine)
	thr := 0.1 * v.Height()
	switch {
	case sk.Near(v.Top(), top.Mid(), thr) && sk.Near(v.Bottom(), bottom.Mid(), thr):
		return 'I', true
	case sk.Near(v.Top(), top.Right(), thr) && sk.Near(v.Bottom(), bottom.Right(), thr):
		return ']', true
	case sk.Near(v.Top(), top.Left(), thr) && sk.Near(v.Bottom(), bottom.Left(), thr):
		return '[', true
	}
	return c, false
}

func isCapitalJ(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.HLine, sk.VLine, sk.U)
	if !ok {
		return false
	}
	h, v, u := r.One(sk.HLine), r.One(sk.VLine), r.One(sk.U)
	thr := 0.1 * v.Height()
	return sk.Near(v.Top(), h.Mid(), thr) && sk.Near(v.Bottom(), u.Right(), thr)
}

// capitalOrSmallK checks for a vertical line with two slashes meeting at its
// middle. The arms of a 'K' span (nearly) the height of the vertical line.
func capitalOrSmallK(c rune, ink sk.Ink) (rune, bool) {
	r, ok := sk.Expect(ink, sk.FSlash, sk.BSlash, sk.VLine)
	if !ok {
		return c, false
	}
	fs, bs, v := r.One(sk.FSlash), r.One(sk.BSlash), r.One(sk.VLine)
	thr := 0.25 * v.Height()
	if !sk.Near(fs.Bottom(), bs.Top(), thr) ||
		!sk.Near(fs.Bottom(), v.Mid(), thr) ||
		!sk.Near(bs.Top(), v.Mid(), thr) {
		return c, false
	}
	if bs.Bottom().Y-fs.Top().Y > 0.75*v.Height() {
		return 'K', true
	}
	return 'k', true
}

func isCapitalL(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.HLine, sk.VLine)
	if !ok {
		return false
	}
	h, v := r.One(sk.HLine), r.One(sk.VLine)
	return sk.Near(v.Bottom(), h.Left(), 0.25*v.Height())
}

// 'M' is two vertical lines with a 'V' of slashes hanging between their tops.
func isCapitalM(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.VLine, sk.VLine, sk.BSlash, sk.FSlash)
	if !ok {
		return false
	}
	left, right := r.LeftRight(sk.VLine)
	bs, fs := r.One(sk.BSlash), r.One(sk.FSlash)
	return sk.Near(bs.Top(), left.Top(), 0.25*bs.Height()) &&
		sk.VGap(fs, bs) &&
		sk.Near(fs.Top(), right.Top(), 0.25*fs.Height())
}

func isCapitalN(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.VLine, sk.VLine, sk.BSlash)
	if !ok {
		return false
	}
	left, right := r.LeftRight(sk.VLine)
	bs := r.One(sk.BSlash)
	thr := 0.25 * bs.Height()
	return sk.Near(bs.Top(), left.Top(), thr) && sk.Near(bs.Bottom(), right.Bottom(), thr)
}

// capitalOrSmallP checks for a vertical line with a backward C attached to
// its upper half. A capital 'P' spans more than 60% of the pad's height.
func capitalOrSmallP(c rune, ink sk.Ink) (rune, bool) {
	r, ok := sk.Expect(ink, sk.VLine, sk.BC)
	if !ok {
		return c, false
	}
	v, bc := r.One(sk.VLine), r.One(sk.BC)
	thr := 0.25 * v.Height()
	if !sk.Near(v.Top(), bc.Top(), thr) || !sk.Near(v.Mid(), bc.Bottom(), 2*thr) {
		return c, false
	}
	if ink.Bounds().Height() > 0.6*ink.PadHeight() {
		return 'P', true
	}
	return 'p', true
}

// 'Q' is a circle with a back-slash starting near its center.
func isCapitalQ(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.Circle, sk.BSlash)
	if !ok {
		return false
	}
	o, bs := r.One(sk.Circle), r.One(sk.BSlash)
	return sk.Near(bs.Top(), o.Centroid, 0.5*o.Bounds.Height())
}

// 'R' is a 'P' with a back-slash as a leg.
func isCapitalR(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.BC, sk.BSlash, sk.VLine)
	if !ok {
		return false
	}
	bc, bs, v := r.One(sk.BC), r.One(sk.BSlash), r.One(sk.VLine)
	thr := 0.25 * v.Height()
	return sk.Near(v.Top(), bc.Top(), thr) &&
		sk.Near(v.Mid(), bc.Bottom(), 2*thr) &&
		sk.Near(v.Mid(), bs.Top(), 2*thr)
}

// isSShape checks for a forward C continued by a backward C below.
func isSShape(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.FC, sk.BC)
	if !ok {
		return false
	}
	fc, bc := r.One(sk.FC), r.One(sk.BC)
	return sk.Near(fc.Bottom(), bc.Top(), 0.25*sk.Distance(fc.Top(), bc.Bottom()))
}

func isCapitalT(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.HLine, sk.VLine)
	if !ok {
		return false
	}
	h, v := r.One(sk.HLine), r.One(sk.VLine)
	return sk.Near(v.Top(), h.Mid(), 0.15*v.Height())
}

func isVShape(ink sk.Ink) bool {
	segs := ink.Segments()
	return len(segs) == 2 && sk.VGap(segs[0], segs[1])
}

// isWShape checks for two 'V's side by side, the middle strokes meeting at
// the top.
func isWShape(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.BSlash, sk.BSlash, sk.FSlash, sk.FSlash)
	if !ok {
		return false
	}
	lbs, rbs := r.LeftRight(sk.BSlash)
	lfs, rfs := r.LeftRight(sk.FSlash)
	return sk.VGap(lbs, lfs) && sk.CaretGap(lfs, rbs) && sk.VGap(rbs, rfs)
}

// isXShape checks for two slashes crossing near their midpoints.
func isXShape(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.BSlash, sk.FSlash)
	if !ok {
		return false
	}
	bs, fs := r.One(sk.BSlash), r.One(sk.FSlash)
	minGap, maxGap := minmax(sk.Gaps(bs, fs))
	if minGap <= 0.25*maxGap {
		return false // rather a 'V' or a caret
	}
	bsTop, bsBottom := bs.TopBottom()
	fsTop, fsBottom := fs.TopBottom()
	return fsTop.X > bsTop.X && fsTop.Y < bsBottom.Y &&
		fsBottom.X < bsBottom.X && fsBottom.Y > bsTop.Y &&
		sk.Distance(bs.Mid(), fs.Mid()) < 0.25*maxGap
}

// 'Y' is a 'V' standing on a vertical line.
func isCapitalY(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.FSlash, sk.BSlash, sk.VLine)
	if !ok {
		return false
	}
	fs, bs, v := r.One(sk.FSlash), r.One(sk.BSlash), r.One(sk.VLine)
	if !sk.VGap(fs, bs) {
		return false
	}
	joint := sk.Midpoint(fs.Bottom(), bs.Bottom())
	return sk.Near(joint, v.Top(), 0.5*v.Height())
}

// isZShape checks for two horizontal bars connected by a slash from the
// right end of the top bar to the left end of the bottom bar.
func isZShape(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.HLine, sk.HLine, sk.FSlash)
	if !ok {
		return false
	}
	top, bottom := r.TopBottom(sk.HLine)
	fs := r.One(sk.FSlash)
	thr := 0.25 * fs.Height()
	return sk.Near(fs.Top(), top.Right(), thr) && sk.Near(fs.Bottom(), bottom.Left(), thr)
}

// Lower case letters with rules of their own. Lower case letters differing
// from their capitals only by size are handled together with the capitals.

func isSmallA(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.FC, sk.VLine)
	if !ok {
		return false
	}
	fc, v := r.One(sk.FC), r.One(sk.VLine)
	thr := 0.2 * v.Height()
	return sk.Near(v.Top(), fc.Top(), thr) && sk.Near(v.Bottom(), fc.Bottom(), thr)
}

func isSmallB(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.VLine, sk.BC)
	if !ok {
		return false
	}
	v, bc := r.One(sk.VLine), r.One(sk.BC)
	thr := 0.2 * v.Height()
	return sk.Near(v.Mid(), bc.Top(), thr) && sk.Near(v.Bottom(), bc.Bottom(), thr)
}

func isSmallD(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.FC, sk.VLine)
	if !ok {
		return false
	}
	fc, v := r.One(sk.FC), r.One(sk.VLine)
	thr := 0.2 * v.Height()
	return sk.Near(v.Mid(), fc.Top(), thr) && sk.Near(v.Bottom(), fc.Bottom(), thr)
}

// 'i' is a vertical line with a dot above it.
func isSmallI(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.VLine, sk.Dot)
	if !ok {
		return false
	}
	v, dot := r.One(sk.VLine), r.One(sk.Dot)
	dy := v.Top().Y - dot.Bottom().Y
	return sk.Between(dy, 0, 0.5*v.Height()) &&
		math.Abs(v.Top().X-dot.Bottom().X) < 0.1*v.Height()
}

// 't' is a vertical line crossed by a bar in its upper half.
func isSmallT(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.VLine, sk.HLine)
	if !ok {
		return false
	}
	v, h := r.One(sk.VLine), r.One(sk.HLine)
	d := sk.Distance(v.Top(), h.Mid())
	return sk.Between(d, 0.2*v.Height(), 0.5*v.Height())
}

// 'y' is a short back-slash ending in the middle of a long slash.
func isSmallY(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.BSlash, sk.FSlash)
	if !ok {
		return false
	}
	bs, fs := r.One(sk.BSlash), r.One(sk.FSlash)
	return sk.Near(bs.Bottom(), fs.Mid(), 0.25*fs.Height())
}
