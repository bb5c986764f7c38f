package segment

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/pkg/errors"
)

// Params holds the tunable constants of the segment classifier. The defaults
// have been found by experiment and are not derived from a model; they should
// be changed with care.
type Params struct {
	Samples            int     // number of sample points per stroke
	SplitOffset        int     // samples bracketing a split point on each side
	MaxKappaDiff       float64 // curvature jump needed for a split
	KappaDiffFactor    float64 // curvature jump relative to |average curvature| needed for a split
	MinSegmentFraction float64 // minimum length of a split-off part, relative to the stroke
	SpliceGap          float64 // arc length left out between two split parts
	StraightKappa      float64 // |average curvature| below which a segment is a line
	HLineSpread        float64 // degrees around 0° for horizontal lines
	VLineSpread        float64 // degrees around 90° for vertical lines
	BSlashSpread       float64 // degrees around 45° for back-slashes
	FSlashSpread       float64 // degrees around 135° for forward slashes
	BCTolerance        float64 // vertical centroid offset for ')', relative to the horizontal gap
	FCTolerance        float64 // vertical centroid offset for '(', relative to the horizontal gap
	UTolerance         float64 // horizontal centroid offset for 'U', relative to the vertical gap
	ClosedFraction     float64 // end point distance for closed loops, relative to arc length
	DotSize            float64 // maximum extent of a dot, in pixels
	MaxDepth           int     // maximum nesting of splits
}

// DefaultParams returns the standard set of classifier parameters.
func DefaultParams() Params {
	return Params{
		Samples:            20,
		SplitOffset:        5,
		MaxKappaDiff:       0.025,
		KappaDiffFactor:    5,
		MinSegmentFraction: 0.1,
		SpliceGap:          1,
		StraightKappa:      0.005,
		HLineSpread:        15,
		VLineSpread:        15,
		BSlashSpread:       30,
		FSlashSpread:       30,
		BCTolerance:        0.5,
		FCTolerance:        0.25,
		UTolerance:         0.25,
		ClosedFraction:     0.1,
		DotSize:            2,
		MaxDepth:           8,
	}
}

// Validate rejects parameter sets the classifier cannot work with.
func (p Params) Validate() error {
	if p.Samples < 5 {
		return errors.Errorf("segment params: need at least 5 samples, have %d", p.Samples)
	}
	if p.SplitOffset < 1 || p.SplitOffset >= p.Samples {
		return errors.Errorf("segment params: split offset %d out of range [1,%d)", p.SplitOffset, p.Samples)
	}
	if p.MaxDepth < 0 {
		return errors.Errorf("segment params: negative max depth %d", p.MaxDepth)
	}
	if p.MinSegmentFraction < 0 || p.MinSegmentFraction >= 0.5 {
		return errors.Errorf("segment params: min segment fraction %g out of range [0,0.5)", p.MinSegmentFraction)
	}
	for _, f := range p.fields() {
		if *f.value < 0 {
			return errors.Errorf("segment params: %s must not be negative, is %g", f.key, *f.value)
		}
	}
	return nil
}

type floatField struct {
	key   string
	value *float64
}

func (p *Params) fields() []floatField {
	return []floatField{
		{"maxkappadiff", &p.MaxKappaDiff},
		{"kappadifffactor", &p.KappaDiffFactor},
		{"minsegmentfraction", &p.MinSegmentFraction},
		{"splicegap", &p.SpliceGap},
		{"straightkappa", &p.StraightKappa},
		{"hlinespread", &p.HLineSpread},
		{"vlinespread", &p.VLineSpread},
		{"bslashspread", &p.BSlashSpread},
		{"fslashspread", &p.FSlashSpread},
		{"bctolerance", &p.BCTolerance},
		{"fctolerance", &p.FCTolerance},
		{"utolerance", &p.UTolerance},
		{"closedfraction", &p.ClosedFraction},
		{"dotsize", &p.DotSize},
	}
}

// ConfigPrefix is the prefix of configuration keys for classifier parameters,
// e.g. "skiggle.segment.samples".
const ConfigPrefix = "skiggle.segment."

// ParamsFromConfig starts with the default parameters and overrides every
// parameter set in conf. Keys are the lowercase parameter names, prefixed
// by ConfigPrefix.
func ParamsFromConfig(conf schuko.Configuration) (Params, error) {
	p := DefaultParams()
	if conf == nil {
		return p, nil
	}
	ints := map[string]*int{
		"samples":     &p.Samples,
		"splitoffset": &p.SplitOffset,
		"maxdepth":    &p.MaxDepth,
	}
	for key, v := range ints {
		if conf.IsSet(ConfigPrefix + key) {
			*v = conf.GetInt(ConfigPrefix + key)
		}
	}
	for _, f := range p.fields() {
		if !conf.IsSet(ConfigPrefix + f.key) {
			continue
		}
		s := strings.TrimSpace(conf.GetString(ConfigPrefix + f.key))
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return p, errors.Wrapf(err, "segment params: cannot read %s%s", ConfigPrefix, f.key)
		}
		*f.value = x
	}
	tracer().Debugf("classifier parameters: %+v", p)
	return p, p.Validate()
}
