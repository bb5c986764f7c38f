/*
Package segment decomposes pen strokes into primitive shapes.

How it works

A stroke is sampled at equidistant points along its arc length (20 by
default). For the samples, the classifier computes tangent orientation and
curvature, using a three-point estimator, and the difference of curvature
between neighbouring samples.

A stroke made of a single primitive shape has either no curvature at all
(a line) or a more or less constant one (a curve). If, on the other hand,
the curvature jumps somewhere along the stroke, the stroke is split at the
jump. To find a better split position, the region around the jump is
sampled again at a finer resolution. Both parts of the stroke are then
classified on their own, and may be split again.

Parts which are not split any further are classified as one of the
primitive shapes of package skiggle, following a fixed order of
predicates:

	dot, horizontal line, back-slash, vertical line, forward slash,
	back-C, forward-C, circle, U

Splitting is iterative and the nesting of splits is capped
(Params.MaxDepth). Strokes exceeding the cap are rejected with
ErrTooComplex.

Usage

	classifier, err := segment.NewClassifier(segment.DefaultParams())
	…
	segments, err := classifier.Classify(stroke)

Classifiers hold no mutable state and may be shared between goroutines.

BSD License

Please refer to the License file in the root directory of this module.
*/
package segment

import (
	"math"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/skiggle"
	"github.com/pkg/errors"
)

// tracer traces with key 'skiggle.segment'.
func tracer() tracing.Trace {
	return tracing.Select("skiggle.segment")
}

// ErrTooComplex is returned for strokes which would have to be split beyond
// the maximum nesting depth.
var ErrTooComplex = errors.New("stroke too complex to segment")

// Classifier splits strokes into segments and classifies them.
type Classifier struct {
	params Params
}

// NewClassifier creates a classifier for a set of parameters.
func NewClassifier(params Params) (*Classifier, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Classifier{params: params}, nil
}

// Params returns the parameters of the classifier.
func (c *Classifier) Params() Params {
	return c.params
}

type workItem struct {
	stroke *skiggle.Stroke
	depth  int
}

// Classify decomposes a stroke into a list of segments, in writing order.
// The segments cover the stroke, except for gaps of Params.SpliceGap between
// the parts of a split.
func (c *Classifier) Classify(stroke *skiggle.Stroke) ([]*skiggle.Segment, error) {
	if stroke == nil {
		return nil, skiggle.ErrEmptyStroke
	}
	var segments []*skiggle.Segment
	stack := arraystack.New()
	stack.Push(workItem{stroke: stroke})
	for !stack.Empty() {
		top, _ := stack.Pop()
		item := top.(workItem)
		m := c.measure(item.stroke)
		if c.hasMultipleSegments(m) {
			if head, tail, ok := c.split(item.stroke, m); ok {
				if item.depth+1 > c.params.MaxDepth {
					tracer().Infof("stroke of length %.1f needs more than %d nested splits",
						stroke.Length(), c.params.MaxDepth)
					return nil, ErrTooComplex
				}
				// LIFO: push the tail first, so the head is classified first
				stack.Push(workItem{stroke: tail, depth: item.depth + 1})
				stack.Push(workItem{stroke: head, depth: item.depth + 1})
				continue
			}
		}
		seg := c.leaf(item.stroke, m)
		tracer().Debugf("segment %v [%.1f,%.1f] κ=%.4f angle=%.1f", seg, seg.From(), seg.To(),
			seg.AvgKappa, seg.AvgAngle)
		segments = append(segments, seg)
	}
	return segments, nil
}

// hasMultipleSegments decides whether a curvature jump is large enough,
// both absolutely and relative to the average curvature.
func (c *Classifier) hasMultipleSegments(m *measurement) bool {
	return m.maxKappaDiff > c.params.MaxKappaDiff &&
		m.maxKappaDiff > c.params.KappaDiffFactor*math.Abs(m.avgKappa)
}

// split finds the split position for a stroke and carves it into two
// sub-strokes. If no acceptable split position exists, ok is false.
func (c *Classifier) split(s *skiggle.Stroke, m *measurement) (head, tail *skiggle.Stroke, ok bool) {
	n := c.params.Samples
	L := s.Length()
	step := L / float64(n)
	idx := m.splitIndex
	from := float64(max(0, idx+1-c.params.SplitOffset)) * step
	to := math.Min(float64(min(idx+c.params.SplitOffset, n))*step, L)
	boundary := float64(idx) * step
	if to > from {
		mid := s.Sub(from, to)
		mm := c.measure(mid)
		if mm.maxKappaDiff > m.maxKappaDiff {
			boundary = from + float64(mm.splitIndex)*mid.Length()/float64(n)
		}
	}
	if math.Min(L-boundary, boundary) <= c.params.MinSegmentFraction*L {
		tracer().Debugf("split at %.1f of %.1f rejected, too close to an end", boundary, L)
		return nil, nil, false
	}
	if boundary+c.params.SpliceGap >= L {
		return nil, nil, false
	}
	tracer().Debugf("split stroke [%.1f,%.1f] at %.1f", s.From(), s.To(), s.From()+boundary)
	return s.Sub(0, boundary), s.Sub(boundary+c.params.SpliceGap, L), true
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
