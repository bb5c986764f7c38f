/*
Package candidates narrows down the characters of an alphabet, given the
primitive shapes a character has been decomposed into.

Every primitive shape has a set of characters containing it, and every
segment count (1 to 4) has a set of characters made up of that many
segments. Intersecting the sets for the shapes of all segments with the set
for their count yields the candidates for a character. Sets are bit-sets
over the alphabet, with bit i representing the i-th rune of the alphabet.

Tables are built once from an alphabet configuration and are read-only
afterwards. They may be shared between goroutines.

BSD License

Please refer to the License file in the root directory of this module.
*/
package candidates

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/skiggle"
	"github.com/pkg/errors"
)

// tracer traces with key 'skiggle.candidates'.
func tracer() tracing.Trace {
	return tracing.Select("skiggle.candidates")
}

// TooComplex is the candidate string for characters which cannot be
// recognized at all, e.g. because they consist of too many segments.
const TooComplex = "???"

// MaxSegments is the maximum number of segments a character may consist of.
const MaxSegments = 4

// Set is a set of characters of an alphabet.
type Set struct {
	bits *bitset.BitSet
}

// ParseSet creates a set from a string of '0's and '1's. Position i of the
// string corresponds to rune i of the alphabet.
func ParseSet(bits string) (Set, error) {
	b := bitset.New(uint(len(bits)))
	for i, c := range bits {
		switch c {
		case '1':
			b.Set(uint(i))
		case '0':
		default:
			return Set{}, errors.Errorf("illegal character %q in bit string at position %d", c, i)
		}
	}
	return Set{bits: b}, nil
}

// Contains is true if the set contains the i-th character of the alphabet.
func (s Set) Contains(i int) bool {
	return s.bits != nil && s.bits.Test(uint(i))
}

// Len returns the number of characters in s.
func (s Set) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// Table holds the constant sets for an alphabet.
type Table struct {
	alphabet []rune
	shapes   map[skiggle.ShapeCode]Set
	counts   [MaxSegments]Set
}

// NewTable creates a table for an alphabet. shapes maps primitive shapes to
// their bit strings, counts holds the bit strings for characters of 1 to 4
// segments. Bit strings must have exactly one position per rune of the
// alphabet. Shapes without a bit string have an empty set, as has
// skiggle.Unknown.
func NewTable(alphabet string, shapes map[skiggle.ShapeCode]string, counts [MaxSegments]string) (*Table, error) {
	t := &Table{
		alphabet: []rune(alphabet),
		shapes:   make(map[skiggle.ShapeCode]Set, len(shapes)),
	}
	n := len(t.alphabet)
	if n == 0 {
		return nil, errors.New("cannot create candidate table for empty alphabet")
	}
	parse := func(name, bits string) (Set, error) {
		if len(bits) != n {
			return Set{}, errors.Errorf("bit string for %s has length %d, alphabet has %d runes",
				name, len(bits), n)
		}
		set, err := ParseSet(bits)
		return set, errors.Wrapf(err, "bit string for %s", name)
	}
	for sc, bits := range shapes {
		if sc == skiggle.Unknown {
			return nil, errors.New("no bit string allowed for shape Unknown")
		}
		set, err := parse(sc.String(), bits)
		if err != nil {
			return nil, err
		}
		t.shapes[sc] = set
	}
	for i, bits := range counts {
		set, err := parse(countName(i+1), bits)
		if err != nil {
			return nil, err
		}
		t.counts[i] = set
	}
	tracer().Debugf("candidate table for %d runes", n)
	return t, nil
}

func countName(n int) string {
	return [...]string{"", "1 segment", "2 segments", "3 segments", "4 segments"}[n]
}

// Alphabet returns the alphabet of the table.
func (t *Table) Alphabet() string {
	return string(t.alphabet)
}

// Len returns the number of runes of the alphabet.
func (t *Table) Len() int {
	return len(t.alphabet)
}

// Members returns the characters containing a shape, in alphabet order.
func (t *Table) Members(sc skiggle.ShapeCode) string {
	set, ok := t.shapes[sc]
	if !ok {
		return ""
	}
	return t.stringOf(set.bits)
}

// WithCount returns the characters made of n segments, in alphabet order.
func (t *Table) WithCount(n int) string {
	if n < 1 || n > MaxSegments {
		return ""
	}
	return t.stringOf(t.counts[n-1].bits)
}

// Narrow returns the candidates for a character consisting of segments with
// the given shapes. Candidates are ordered by their position in the alphabet.
// For no shapes or more than MaxSegments shapes, Narrow returns TooComplex.
func (t *Table) Narrow(shapes []skiggle.ShapeCode) string {
	n := len(shapes)
	if n == 0 || n > MaxSegments {
		return TooComplex
	}
	work := t.intersection(shapes)
	if work == nil {
		return ""
	}
	work.InPlaceIntersection(t.counts[n-1].bits)
	c := t.stringOf(work)
	tracer().Debugf("narrowed %v to %q", shapes, c)
	return c
}

// Containing returns the characters containing all of the given shapes, in
// alphabet order, regardless of their segment count. Adding a shape never
// adds a character. For no shapes, Containing returns the whole alphabet.
func (t *Table) Containing(shapes []skiggle.ShapeCode) string {
	if len(shapes) == 0 {
		return t.Alphabet()
	}
	return t.stringOf(t.intersection(shapes))
}

// intersection returns a fresh bit-set of the characters containing all
// shapes, or nil if one of them has no set.
func (t *Table) intersection(shapes []skiggle.ShapeCode) *bitset.BitSet {
	set, ok := t.shapes[shapes[0]]
	if !ok || set.bits == nil {
		return nil
	}
	work := set.bits.Clone()
	for _, sc := range shapes[1:] {
		s, ok := t.shapes[sc]
		if !ok || s.bits == nil {
			return nil
		}
		work.InPlaceIntersection(s.bits)
	}
	return work
}

func (t *Table) stringOf(b *bitset.BitSet) string {
	if b == nil {
		return ""
	}
	var sb strings.Builder
	for i, ok := b.NextSet(0); ok && int(i) < len(t.alphabet); i, ok = b.NextSet(i + 1) {
		sb.WriteRune(t.alphabet[i])
	}
	return sb.String()
}
