package segment

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/skiggle"
)

// measurement holds the sampled statistics of a stroke. Every call to
// measure allocates its own slices.
type measurement struct {
	samples        []skiggle.Point
	kappa          []float64 // curvature at sample i, 0 where not computed
	kappaDiff      []float64 // kappa[i] - kappa[i-1], 0 where not computed
	avgKappa       float64
	avgAngle       float64 // undirected tangent orientation in [0,180)
	centroid       skiggle.Point
	maxKappa       float64
	maxKappaAt     skiggle.Point
	maxKappaDiff   float64
	maxKappaDiffAt skiggle.Point
	splitIndex     int // sample index of maxKappaDiff, -1 if none
}

// measure samples a stroke at Params.Samples equidistant positions.
//
// Tangent orientation is taken at the interior samples. Curvature at sample
// i-1 is estimated from samples i-2, i-1 and i, for 2 ≤ i ≤ n-2. The
// curvature difference at sample i is kappa[i]-kappa[i-1], i.e. it is
// attributed to the sample where the new curvature shows up.
//
// The average orientation is an axial mean: orientations are doubled before
// averaging, so that a line drawn in either direction has the same mean.
func (c *Classifier) measure(s *skiggle.Stroke) *measurement {
	n := c.params.Samples
	m := &measurement{
		samples:    make([]skiggle.Point, n),
		kappa:      make([]float64, n),
		kappaDiff:  make([]float64, n),
		splitIndex: -1,
	}
	step := s.Length() / float64(n)
	var sumX, sumY, sumKappa, cos2, sin2 float64
	kcount := 0
	for i := 0; i < n; i++ {
		pos, tan := s.PosTan(float64(i) * step)
		m.samples[i] = pos
		sumX += pos.X
		sumY += pos.Y
		if i > 0 && i < n-1 {
			a := skiggle.AbsoluteAngle(tan.Y, tan.X) * math.Pi / 90 // doubled, in radians
			cos2 += math.Cos(a)
			sin2 += math.Sin(a)
		}
		if i < 2 || i > n-2 {
			continue
		}
		k := skiggle.Curvature3Point(m.samples[i-2], m.samples[i-1], pos)
		m.kappa[i-1] = k
		sumKappa += k
		kcount++
		if math.Abs(k) > m.maxKappa {
			m.maxKappa = math.Abs(k)
			m.maxKappaAt = m.samples[i-1]
		}
		if i < 3 { // no predecessor to compare with
			continue
		}
		d := k - m.kappa[i-2]
		m.kappaDiff[i-1] = d
		if math.Abs(d) > m.maxKappaDiff {
			m.maxKappaDiff = math.Abs(d)
			m.maxKappaDiffAt = m.samples[i-1]
			m.splitIndex = i - 1
		}
	}
	m.centroid = skiggle.Pt(sumX/float64(n), sumY/float64(n))
	if kcount > 0 {
		m.avgKappa = sumKappa / float64(kcount)
	}
	if cos2 != 0 || sin2 != 0 {
		m.avgAngle = math.Mod(math.Atan2(sin2, cos2)*90/math.Pi+180, 180)
	}
	if tracer().GetTraceLevel() >= tracing.LevelDebug {
		tracer().Debugf("κ-diff histogram %v, max |Δκ| = %.4f at #%d", skiggle.Histogram5(m.kappaDiff),
			m.maxKappaDiff, m.splitIndex)
	}
	return m
}

// leaf classifies a stroke which will not be split any further.
func (c *Classifier) leaf(s *skiggle.Stroke, m *measurement) *skiggle.Segment {
	seg := &skiggle.Segment{
		Stroke:            s,
		Length:            s.Length(),
		Bounds:            s.Bounds(),
		Start:             s.Start(),
		End:               s.End(),
		AvgKappa:          m.avgKappa,
		AvgAngle:          m.avgAngle,
		Centroid:          m.centroid,
		MaxKappa:          m.maxKappa,
		MaxKappaAt:        m.maxKappaAt,
		MaxKappaDiff:      m.maxKappaDiff,
		MaxKappaDiffAt:    m.maxKappaDiffAt,
		MaxKappaDiffIndex: m.splitIndex,
	}
	seg.Shape = c.shapeOf(seg)
	return seg
}

func (c *Classifier) shapeOf(seg *skiggle.Segment) skiggle.ShapeCode {
	p := c.params
	if seg.Bounds.Width() < p.DotSize && seg.Bounds.Height() < p.DotSize {
		return skiggle.Dot
	}
	if math.Abs(seg.AvgKappa) < p.StraightKappa {
		switch a := seg.AvgAngle; {
		case skiggle.AxialDistance(a, 0) < p.HLineSpread:
			return skiggle.HLine
		case skiggle.AxialDistance(a, 45) < p.BSlashSpread:
			return skiggle.BSlash
		case skiggle.AxialDistance(a, 90) < p.VLineSpread:
			return skiggle.VLine
		case skiggle.AxialDistance(a, 135) < p.FSlashSpread:
			return skiggle.FSlash
		}
		return skiggle.Unknown
	}
	endMid := skiggle.Midpoint(seg.Start, seg.End)
	cog := seg.Centroid
	gapX := math.Abs(endMid.X - cog.X)
	gapY := math.Abs(endMid.Y - cog.Y)
	switch {
	case endMid.X < cog.X && math.Abs(cog.Y-endMid.Y) < p.BCTolerance*gapX:
		return skiggle.BC
	case cog.X < endMid.X && math.Abs(cog.Y-endMid.Y) < p.FCTolerance*gapX:
		return skiggle.FC
	case skiggle.Distance(seg.Start, seg.End) < p.ClosedFraction*seg.Length:
		return skiggle.Circle
	case cog.Y > endMid.Y && math.Abs(cog.X-endMid.X) < p.UTolerance*gapY:
		return skiggle.U
	}
	return skiggle.Unknown
}
