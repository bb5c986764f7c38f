package skiggle

// Ink is a read-only view of a character-in-progress, as handed to verifiers.
type Ink interface {
	Segments() []*Segment // classified segments, in writing order
	Bounds() Rect         // bounding box of all strokes so far
	PadHeight() float64   // height of the writing pad, for size heuristics
}

// Verifier checks a candidate character against the geometry of a
// character-in-progress.
//
// Verify returns true if the ink passes the geometric rules for c. The
// rune returned is the character actually matched. It differs from c only
// for verifiers which decide between siblings by size or position, e.g.
// a verifier for 'C' may report a lowercase 'c' for small ink.
//
// Verifiers must be pure functions of their input.
type Verifier interface {
	Verify(c rune, ink Ink) (rune, bool)
}

// VerifyFunc is the function type of a single character's verifier.
type VerifyFunc func(c rune, ink Ink) (rune, bool)

// Check wraps a predicate without sibling dispatch as a VerifyFunc.
func Check(pred func(Ink) bool) VerifyFunc {
	return func(c rune, ink Ink) (rune, bool) {
		if pred(ink) {
			return c, true
		}
		return c, false
	}
}

// VerifierTable maps characters to their verifiers. Characters without an
// entry never verify.
type VerifierTable map[rune]VerifyFunc

// Verify is part of interface Verifier.
func (vt VerifierTable) Verify(c rune, ink Ink) (rune, bool) {
	if f, ok := vt[c]; ok && f != nil {
		return f(c, ink)
	}
	return c, false
}

var _ Verifier = VerifierTable{}

// MatchBest iterates over a candidate string and returns the first
// character that verifies. Candidate order therefore acts as a priority.
func MatchBest(candidates string, ink Ink, v Verifier) (rune, bool) {
	for _, c := range candidates {
		if m, ok := v.Verify(c, ink); ok {
			tracer().Debugf("candidate %q verified as %q", c, m)
			return m, true
		}
	}
	tracer().Debugf("none of %q verified", candidates)
	return 0, false
}
