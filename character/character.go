/*
Package character accumulates the ink of a single handwritten character and
recognizes it.

A Character collects strokes one after the other. Every stroke is split
into classified segments, the segments narrow down the candidates from an
alphabet, and the candidates are checked by the alphabet's verifiers. After
each stroke the current best match and the candidate string are available,
thus a user interface may update a candidate strip while the user writes.

	c, _ := character.New(table, verifiers)
	for _, points := range strokes {
		result, _ := c.Submit(points)
		fmt.Printf("%c  %s\n", result.Matched, result.Candidates)
	}

A long, jagged scribble (arc length more than twice the sum of the width
and height of its bounding box, by default) is a cancel gesture and clears
the character.

A Character is not safe for concurrent use. Candidate tables and verifiers
may be shared between characters.

BSD License

Please refer to the License file in the root directory of this module.
*/
package character

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/skiggle"
	"github.com/npillmayer/skiggle/candidates"
	"github.com/npillmayer/skiggle/segment"
	"github.com/pkg/errors"
)

// tracer traces with key 'skiggle.character'.
func tracer() tracing.Trace {
	return tracing.Select("skiggle.character")
}

// Character is a character-in-progress. It implements skiggle.Ink.
type Character struct {
	table      *candidates.Table
	verifier   skiggle.Verifier
	classifier *segment.Classifier
	opts       Options
	strokes    []*skiggle.Stroke
	segments   []*skiggle.Segment
	bounds     skiggle.Rect
	tooComplex bool   // a stroke could not be segmented
	candidates string // result of last recognition
	matched    rune   // result of last recognition, 0 if none
}

var _ skiggle.Ink = &Character{}

// New creates an empty character for an alphabet, given by its candidate
// table and its verifiers.
func New(table *candidates.Table, verifier skiggle.Verifier, opts ...Option) (*Character, error) {
	if table == nil || verifier == nil {
		return nil, errors.New("character needs a candidate table and a verifier")
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	classifier, err := segment.NewClassifier(o.Params)
	if err != nil {
		return nil, err
	}
	return &Character{
		table:      table,
		verifier:   verifier,
		classifier: classifier,
		opts:       o,
	}, nil
}

// Segments is part of interface skiggle.Ink.
func (c *Character) Segments() []*skiggle.Segment {
	return c.segments
}

// Bounds is part of interface skiggle.Ink.
func (c *Character) Bounds() skiggle.Rect {
	return c.bounds
}

// PadHeight is part of interface skiggle.Ink.
func (c *Character) PadHeight() float64 {
	return c.opts.PadHeight
}

// Strokes returns the strokes of the character, in writing order.
func (c *Character) Strokes() []*skiggle.Stroke {
	return c.strokes
}

// Candidates returns the candidate string of the last recognition.
func (c *Character) Candidates() string {
	return c.candidates
}

// Matched returns the character matched by the last recognition, if any.
func (c *Character) Matched() (rune, bool) {
	return c.matched, c.matched != 0
}

// AddStroke appends a stroke and extends the bounding box of the character.
func (c *Character) AddStroke(stroke *skiggle.Stroke) {
	c.strokes = append(c.strokes, stroke)
	c.bounds = c.bounds.Union(stroke.Bounds())
}

// AddSegments classifies a stroke and appends its segments. If the stroke is
// too complex to segment, AddSegments returns segment.ErrTooComplex and the
// character will not be recognized until it is reset.
func (c *Character) AddSegments(stroke *skiggle.Stroke) error {
	segs, err := c.classifier.Classify(stroke)
	if err != nil {
		if errors.Cause(err) == segment.ErrTooComplex {
			c.tooComplex = true
		}
		return err
	}
	c.segments = append(c.segments, segs...)
	tracer().Debugf("stroke adds %d segment(s): %s", len(segs), c.Describe())
	return nil
}

// IsCancelGesture is true if a stroke is a long scribble, meant to clear the
// character instead of adding to it.
func (c *Character) IsCancelGesture(stroke *skiggle.Stroke) bool {
	b := stroke.Bounds()
	extent := b.Width() + b.Height()
	if extent <= 0 {
		return false
	}
	return stroke.Length()/extent > c.opts.CancelRatio
}

// Reset clears the character. Reset is idempotent.
func (c *Character) Reset() {
	c.strokes = nil
	c.segments = nil
	c.bounds = skiggle.Rect{}
	c.tooComplex = false
	c.candidates = ""
	c.matched = 0
}

// Recognize narrows down the candidates for the segments so far and verifies
// them. It returns the first candidate which verifies, if any, and the
// candidate string. The candidate string starts with the matched character,
// followed by the other candidates in alphabet order.
//
// If a stroke was too complex to segment, or if the character has more
// segments than any character of the alphabet, the candidate string is
// candidates.TooComplex. A character without segments has no candidates.
func (c *Character) Recognize() (rune, bool, string) {
	c.matched = 0
	if c.tooComplex {
		c.candidates = candidates.TooComplex
		return 0, false, c.candidates
	}
	if len(c.segments) == 0 {
		c.candidates = ""
		return 0, false, ""
	}
	shapes := make([]skiggle.ShapeCode, len(c.segments))
	for i, seg := range c.segments {
		shapes[i] = seg.Shape
	}
	c.candidates = c.table.Narrow(shapes)
	if c.candidates == candidates.TooComplex {
		return 0, false, c.candidates
	}
	m, ok := skiggle.MatchBest(c.candidates, c, c.verifier)
	if !ok {
		return 0, false, c.candidates
	}
	c.matched = m
	c.candidates = string(m) + strings.Map(func(r rune) rune {
		if r == m {
			return -1
		}
		return r
	}, c.candidates)
	return m, true, c.candidates
}

// Describe lists the shapes of the segments so far, e.g. "Len:2, -, /".
func (c *Character) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Len:%d", len(c.segments))
	for _, seg := range c.segments {
		sb.WriteString(", ")
		sb.WriteRune(seg.Shape.Glyph())
	}
	return sb.String()
}
