package latin

import sk "github.com/npillmayer/skiggle"

// Verifiers returns the verifier table for the alphabet. Characters without
// a geometric rule (0 2 6 8 e f g h j l m n r, space and some symbols) are
// not part of the table and never verify.
func Verifiers() sk.VerifierTable {
	vt := sk.VerifierTable{
		'1': sk.Check(is1),
		'3': sk.Check(is3),
		'4': sk.Check(is4),
		'5': sk.Check(is5),
		'7': sk.Check(is7),
		'9': sk.Check(is9),
		//
		'A': sk.Check(isCapitalA),
		'B': sk.Check(isCapitalB),
		'D': sk.Check(isCapitalD),
		'E': sk.Check(isCapitalE),
		'F': sk.Check(isCapitalF),
		'G': sk.Check(isCapitalG),
		'H': sk.Check(isCapitalH),
		'J': sk.Check(isCapitalJ),
		'L': sk.Check(isCapitalL),
		'M': sk.Check(isCapitalM),
		'N': sk.Check(isCapitalN),
		'Q': sk.Check(isCapitalQ),
		'R': sk.Check(isCapitalR),
		'T': sk.Check(isCapitalT),
		'Y': sk.Check(isCapitalY),
		//
		'a': sk.Check(isSmallA),
		'b': sk.Check(isSmallB),
		'd': sk.Check(isSmallD),
		'i': sk.Check(isSmallI),
		'q': sk.Check(isSmallQ),
		't': sk.Check(isSmallT),
		'y': sk.Check(isSmallY),
		//
		'!':  sk.Check(isExclamationMark),
		'#':  sk.Check(isHash),
		'%':  sk.Check(isPercent),
		'(':  sk.Check(single(sk.FC)),
		'+':  sk.Check(isPlus),
		'.':  sk.Check(single(sk.Dot)),
		'/':  sk.Check(single(sk.FSlash)),
		'\\': sk.Check(single(sk.BSlash)),
		'|':  sk.Check(single(sk.VLine)),
		':':  sk.Check(isColon),
		';':  sk.Check(isSemicolon),
		'=':  sk.Check(isEqualSign),
		'^':  sk.Check(isCaret),
	}
	siblings := []struct {
		runes  string
		verify sk.VerifyFunc
	}{
		{"Cc", sized('C', 'c', isCShape)},
		{"Oo", sized('O', 'o', single(sk.Circle))},
		{"Ss", sized('S', 's', isSShape)},
		{"Uu", sized('U', 'u', single(sk.U))},
		{"Vv", sized('V', 'v', isVShape)},
		{"Ww", sized('W', 'w', isWShape)},
		{"Xx", sized('X', 'x', isXShape)},
		{"Zz", sized('Z', 'z', isZShape)},
		{"Kk", capitalOrSmallK},
		{"Pp", capitalOrSmallP},
		{"I[]", capitalIOrBracket},
		{"),", rightParenOrComma},
		{"-_", dashOrUnderscore},
		{"<>", lessOrGreater},
	}
	for _, s := range siblings {
		for _, r := range s.runes {
			vt[r] = s.verify
		}
	}
	return vt
}

// isSmallLetter is true if the ink is small enough for a lower case letter.
func isSmallLetter(ink sk.Ink) bool {
	return sk.Between(ink.Bounds().Height(), 0, 0.4*ink.PadHeight())
}

// isLow is true if a segment sits in the lower third of the writing pad.
func isLow(ink sk.Ink, seg *sk.Segment) bool {
	return seg.Centroid.Y > ink.PadHeight()*2/3
}

// sized creates a verifier for an upper case letter and its lower case
// sibling, deciding between them by the size of the ink.
func sized(upper, lower rune, pred func(sk.Ink) bool) sk.VerifyFunc {
	return func(c rune, ink sk.Ink) (rune, bool) {
		if !pred(ink) {
			return c, false
		}
		tracer().Debugf("%c/%c: ink height %.1f, pad height %.1f", upper, lower,
			ink.Bounds().Height(), ink.PadHeight())
		if isSmallLetter(ink) {
			return lower, true
		}
		return upper, true
	}
}

// single creates a predicate for characters made of a single segment of a
// given shape.
func single(sc sk.ShapeCode) func(sk.Ink) bool {
	return func(ink sk.Ink) bool {
		_, ok := sk.Expect(ink, sc)
		return ok
	}
}

func onlyOne(ink sk.Ink, sc sk.ShapeCode) *sk.Segment {
	r, ok := sk.Expect(ink, sc)
	if !ok {
		return nil
	}
	return r.One(sc)
}
