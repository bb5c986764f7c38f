package skiggle

import "sort"

// Roles groups the segments of a character by shape, keeping writing order
// within each group. Verifiers use roles to find the segments playing a part
// in a character, e.g. "the vertical line" and "the top horizontal line".
type Roles map[ShapeCode][]*Segment

// FindRoles groups the segments of ink by shape code.
func FindRoles(ink Ink) Roles {
	r := make(Roles)
	for _, seg := range ink.Segments() {
		r[seg.Shape] = append(r[seg.Shape], seg)
	}
	return r
}

// Expect checks that ink consists of exactly the given shapes, in any order,
// and returns the roles if it does.
//
//     r, ok := Expect(ink, HLine, HLine, VLine)  // e.g. for 'I'
//
func Expect(ink Ink, shapes ...ShapeCode) (Roles, bool) {
	segs := ink.Segments()
	if len(segs) != len(shapes) {
		return nil, false
	}
	want := make(map[ShapeCode]int, len(shapes))
	for _, sc := range shapes {
		want[sc]++
	}
	r := FindRoles(ink)
	for sc, n := range want {
		if len(r[sc]) != n {
			return nil, false
		}
	}
	return r, true
}

// Count returns the number of segments with shape sc.
func (r Roles) Count(sc ShapeCode) int {
	return len(r[sc])
}

// One returns the first segment with shape sc, or nil.
func (r Roles) One(sc ShapeCode) *Segment {
	if len(r[sc]) == 0 {
		return nil
	}
	return r[sc][0]
}

// TopBottom returns the first two segments of shape sc, ordered top to bottom.
// It panics if there are fewer than two; use Expect or Count first.
func (r Roles) TopBottom(sc ShapeCode) (*Segment, *Segment) {
	return OrderTopBottom(r[sc][0], r[sc][1])
}

// LeftRight returns the first two segments of shape sc, ordered left to right.
// It panics if there are fewer than two; use Expect or Count first.
func (r Roles) LeftRight(sc ShapeCode) (*Segment, *Segment) {
	return OrderLeftRight(r[sc][0], r[sc][1])
}

// OrderLeftRight orders two segments by the x-coordinate of their chord midpoints.
func OrderLeftRight(a, b *Segment) (*Segment, *Segment) {
	if b.Mid().X < a.Mid().X {
		return b, a
	}
	return a, b
}

// OrderTopBottom orders two segments by the y-coordinate of their chord midpoints.
func OrderTopBottom(a, b *Segment) (*Segment, *Segment) {
	if b.Mid().Y < a.Mid().Y {
		return b, a
	}
	return a, b
}

// SortTopBottom sorts segments by a key point's y-coordinate, topmost first.
func SortTopBottom(segs []*Segment, key func(*Segment) Point) []*Segment {
	sorted := make([]*Segment, len(segs))
	copy(sorted, segs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return key(sorted[i]).Y < key(sorted[j]).Y
	})
	return sorted
}

// Gaps returns the distance between the top ends and between the bottom ends
// of two segments.
func Gaps(a, b *Segment) (tops, bottoms float64) {
	at, ab := a.TopBottom()
	bt, bb := b.TopBottom()
	return Distance(at, bt), Distance(ab, bb)
}

// CaretGap is true if two segments meet at the top, like '^': the gap
// between the tops is less than a quarter of the gap between the bottoms.
func CaretGap(a, b *Segment) bool {
	tops, bottoms := Gaps(a, b)
	return tops < 0.25*bottoms
}

// VGap is true if two segments meet at the bottom, like 'V'.
func VGap(a, b *Segment) bool {
	tops, bottoms := Gaps(a, b)
	return bottoms < 0.25*tops
}

// ThirdMarks returns the points at one third and two thirds of the way
// from p to q.
func ThirdMarks(p, q Point) (Point, Point) {
	third := q.Sub(p).Mul(1.0 / 3)
	return p.Add(third), p.Add(third.Mul(2))
}

// Between is true if lo < x < hi.
func Between(x, lo, hi float64) bool {
	return lo < x && x < hi
}

// Near is true if p and q are less than threshold apart.
func Near(p, q Point, threshold float64) bool {
	return Distance(p, q) < threshold
}
