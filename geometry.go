package skiggle

import (
	"fmt"
	"math"
)

// Point is a position on the writing pad, in screen coordinates.
type Point struct {
	X, Y float64
}

// Pt is a shortcut for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p scaled by k.
func (p Point) Mul(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

// Midpoint returns the point halfway between p and q.
func Midpoint(p, q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.1f,%.1f)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle. The zero value is an empty rectangle,
// which will adopt the first point it is extended with.
type Rect struct {
	Min, Max Point
	valid    bool
}

// R creates a rectangle spanning two corner points.
func R(p, q Point) Rect {
	r := Rect{}
	return r.Extend(p).Extend(q)
}

// Empty is true if the rectangle has never been extended.
func (r Rect) Empty() bool {
	return !r.valid
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent of r.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the center point of r.
func (r Rect) Center() Point {
	return Midpoint(r.Min, r.Max)
}

// Extend returns the smallest rectangle containing r and p.
func (r Rect) Extend(p Point) Rect {
	if !r.valid {
		return Rect{Min: p, Max: p, valid: true}
	}
	r.Min.X = math.Min(r.Min.X, p.X)
	r.Min.Y = math.Min(r.Min.Y, p.Y)
	r.Max.X = math.Max(r.Max.X, p.X)
	r.Max.Y = math.Max(r.Max.Y, p.Y)
	return r
}

// Union returns the smallest rectangle containing r and s.
func (r Rect) Union(s Rect) Rect {
	if !s.valid {
		return r
	}
	return r.Extend(s.Min).Extend(s.Max)
}

func (r Rect) String() string {
	if !r.valid {
		return "[empty]"
	}
	return fmt.Sprintf("[%v-%v]", r.Min, r.Max)
}

// --- Geometry utilities ----------------------------------------------------

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// AbsoluteAngle returns the angle of a tangent vector (dx, dy) in degrees,
// normalized into [0,360). With screen coordinates, 90° points downwards.
func AbsoluteAngle(dy, dx float64) float64 {
	a := math.Mod(360+math.Atan2(dy, dx)*180/math.Pi, 360)
	if a < 0 { // -0.0 and rounding
		a += 360
	}
	if a >= 360 {
		a -= 360
	}
	return a
}

// AxialDistance returns the angle between two undirected lines with
// orientations a and ref (in degrees). The result is in [0,90].
// A line heading 10° and one heading 190° have an axial distance of 0.
func AxialDistance(a, ref float64) float64 {
	d := math.Mod(math.Abs(a-ref), 180)
	if d > 90 {
		d = 180 - d
	}
	return d
}

// Curvature3Point estimates the curvature at p1 from three consecutive
// points, using the finite-difference formula of M. Marji (2003).
// For points on a circle of radius r the result is ≈ 1/r, its sign
// depending on orientation. If p0 and p2 coincide, the curvature is
// undefined and 0 is returned.
func Curvature3Point(p0, p1, p2 Point) float64 {
	a1 := (p2.X - p0.X) / 2
	a2 := (p2.X+p0.X)/2 - p1.X
	b1 := (p2.Y - p0.Y) / 2
	b2 := (p2.Y+p0.Y)/2 - p1.Y
	denom := a1*a1 + b1*b1
	if denom == 0 {
		return 0
	}
	return 2 * (a1*b2 - a2*b1) / math.Pow(denom, 1.5)
}

// Histogram5 buckets the absolute values of a sample into 5 bins of equal
// width between the minimum and the maximum absolute value.
// Used for diagnostics only.
func Histogram5(values []float64) [5]int {
	var buckets [5]int
	if len(values) == 0 {
		return buckets
	}
	min, max := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		min = math.Min(min, math.Abs(v))
		max = math.Max(max, math.Abs(v))
	}
	width := (max - min) / 5
	for _, v := range values {
		v = math.Abs(v)
		b := 4
		for i := 0; i < 4; i++ {
			if v <= min+float64(i+1)*width {
				b = i
				break
			}
		}
		buckets[b]++
	}
	return buckets
}
