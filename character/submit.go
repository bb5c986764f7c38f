package character

import (
	"github.com/npillmayer/skiggle"
	"github.com/npillmayer/skiggle/segment"
	"github.com/pkg/errors"
)

// Result is the outcome of submitting a stroke.
type Result struct {
	Matched    rune                // best match, 0 if none
	OK         bool                // true if a candidate verified
	Candidates string              // candidate string, matched character first
	Cancelled  bool                // the stroke was a cancel gesture and the character has been reset
	Shapes     []skiggle.ShapeCode // shapes of all segments so far
}

// Submit processes a finished pen gesture. It constructs a stroke from the
// points, checks for a cancel gesture, classifies the stroke and recognizes
// the character. Strokes too complex to segment are not an error; they
// result in candidate string candidates.TooComplex.
func (c *Character) Submit(points []skiggle.Point) (Result, error) {
	stroke, err := skiggle.NewStroke(points)
	if err != nil {
		return Result{}, err
	}
	if c.IsCancelGesture(stroke) {
		tracer().Infof("cancel gesture, clearing character")
		c.Reset()
		return Result{Cancelled: true}, nil
	}
	c.AddStroke(stroke)
	if err = c.AddSegments(stroke); err != nil && errors.Cause(err) != segment.ErrTooComplex {
		return Result{}, err
	}
	m, ok, cands := c.Recognize()
	res := Result{
		Matched:    m,
		OK:         ok,
		Candidates: cands,
		Shapes:     make([]skiggle.ShapeCode, len(c.segments)),
	}
	for i, seg := range c.segments {
		res.Shapes[i] = seg.Shape
	}
	return res, nil
}
