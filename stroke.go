package skiggle

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// ErrEmptyStroke is returned when a stroke is to be created without any points.
var ErrEmptyStroke = errors.New("stroke needs at least one point")

// Stroke is a finished pen gesture, from pen-down to pen-up, as an ordered
// polyline. Strokes are immutable once created. They are parameterized by
// arc length, i.e. positions on a stroke are addressed by their distance from
// the start point, measured along the stroke.
//
// A stroke may be a sub-stroke of another one. From() and To() then tell the
// arc length range the sub-stroke covers within the outermost stroke.
type Stroke struct {
	points []Point
	cum    []float64 // cumulative arc length at each point
	bounds Rect
	offset float64 // arc length offset within the root stroke
}

// NewStroke creates a stroke from a sequence of points. Consecutive
// duplicate points are dropped. A stroke with zero length (a single tap)
// is padded into a vertical line of length 1, centered at the tap position.
func NewStroke(points []Point) (*Stroke, error) {
	if len(points) == 0 {
		return nil, ErrEmptyStroke
	}
	return newStroke(points, 0), nil
}

func newStroke(points []Point, offset float64) *Stroke {
	s := &Stroke{offset: offset}
	s.points = make([]Point, 0, len(points))
	for i, p := range points {
		if i > 0 && p == s.points[len(s.points)-1] {
			continue
		}
		s.points = append(s.points, p)
	}
	if len(s.points) == 1 {
		p := s.points[0]
		s.points = []Point{{p.X, p.Y - 0.5}, {p.X, p.Y + 0.5}}
	}
	s.cum = make([]float64, len(s.points))
	for i, p := range s.points {
		s.bounds = s.bounds.Extend(p)
		if i > 0 {
			s.cum[i] = s.cum[i-1] + Distance(s.points[i-1], p)
		}
	}
	return s
}

// Length returns the arc length of the stroke.
func (s *Stroke) Length() float64 {
	return s.cum[len(s.cum)-1]
}

// Bounds returns the bounding box of the stroke.
func (s *Stroke) Bounds() Rect {
	return s.bounds
}

// Start returns the first point of the stroke.
func (s *Stroke) Start() Point {
	return s.points[0]
}

// End returns the last point of the stroke.
func (s *Stroke) End() Point {
	return s.points[len(s.points)-1]
}

// Points returns a copy of the points of the stroke.
func (s *Stroke) Points() []Point {
	pts := make([]Point, len(s.points))
	copy(pts, s.points)
	return pts
}

// From returns the arc length position of the start of s within the
// outermost stroke it has been carved from.
func (s *Stroke) From() float64 {
	return s.offset
}

// To returns the arc length position of the end of s within the
// outermost stroke it has been carved from.
func (s *Stroke) To() float64 {
	return s.offset + s.Length()
}

// PosTan returns the position at arc length d and the unit tangent vector
// of the stroke at this position. d is clamped to [0, Length()].
// At a vertex, the tangent of the incoming polyline edge is returned.
func (s *Stroke) PosTan(d float64) (pos Point, tan Point) {
	d = math.Max(0, math.Min(d, s.Length()))
	i := sort.SearchFloat64s(s.cum, d) // first i with cum[i] >= d
	if i == 0 {
		i = 1
	}
	p, q := s.points[i-1], s.points[i]
	edge := s.cum[i] - s.cum[i-1]
	t := (d - s.cum[i-1]) / edge
	pos = p.Add(q.Sub(p).Mul(t))
	tan = q.Sub(p).Mul(1 / edge)
	return
}

// Sub returns the sub-stroke between arc length positions from and to
// (both relative to s and clamped to [0, Length()]). End points are
// interpolated; the vertices of s in between are kept.
func (s *Stroke) Sub(from, to float64) *Stroke {
	L := s.Length()
	from = math.Max(0, math.Min(from, L))
	to = math.Max(from, math.Min(to, L))
	start, _ := s.PosTan(from)
	end, _ := s.PosTan(to)
	pts := []Point{start}
	for i, c := range s.cum {
		if c > from && c < to {
			pts = append(pts, s.points[i])
		}
	}
	pts = append(pts, end)
	return newStroke(pts, s.offset+from)
}
