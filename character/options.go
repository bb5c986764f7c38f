package character

import (
	"github.com/npillmayer/skiggle/alphabet"
	"github.com/npillmayer/skiggle/segment"
	"github.com/pkg/errors"
)

// DefaultCancelRatio is the ratio of arc length to bounding box extent
// above which a stroke is a cancel gesture.
const DefaultCancelRatio = 2.0

// Options configure a Character.
type Options struct {
	CancelRatio float64        // threshold for cancel gestures
	PadHeight   float64        // height of the writing pad
	Params      segment.Params // parameters of the segment classifier
}

// DefaultOptions returns the options used if a client does not set any.
func DefaultOptions() Options {
	return Options{
		CancelRatio: DefaultCancelRatio,
		PadHeight:   alphabet.DefaultPadHeight,
		Params:      segment.DefaultParams(),
	}
}

func (o Options) validate() error {
	if o.CancelRatio <= 0 {
		return errors.Errorf("cancel ratio must be positive, is %g", o.CancelRatio)
	}
	if o.PadHeight <= 0 {
		return errors.Errorf("pad height must be positive, is %g", o.PadHeight)
	}
	return nil
}

// Option is a functional option for New.
type Option func(*Options)

// WithCancelRatio sets the threshold for cancel gestures.
func WithCancelRatio(ratio float64) Option {
	return func(o *Options) {
		o.CancelRatio = ratio
	}
}

// WithPadHeight sets the height of the writing pad, which size dependent
// verifiers compare the ink with.
func WithPadHeight(h float64) Option {
	return func(o *Options) {
		o.PadHeight = h
	}
}

// WithParams sets the parameters of the segment classifier.
func WithParams(p segment.Params) Option {
	return func(o *Options) {
		o.Params = p
	}
}
