package skiggle

import (
	"fmt"
	"math"
)

// Segment is a part of a stroke which has been classified as a single
// primitive shape. Segments are created by the segment classifier and
// are not modified afterwards.
type Segment struct {
	Shape    ShapeCode // primitive shape of this segment
	Stroke   *Stroke   // the sub-stroke this segment covers
	Length   float64   // arc length
	Bounds   Rect      // bounding box
	Start    Point     // first point, in writing order
	End      Point     // last point, in writing order
	AvgKappa float64   // average curvature
	AvgAngle float64   // average tangent orientation in [0,180)
	Centroid Point     // mean of the sample points

	MaxKappa          float64 // maximum |curvature|
	MaxKappaAt        Point   // position of maximum |curvature|
	MaxKappaDiff      float64 // maximum |curvature difference|
	MaxKappaDiffAt    Point   // position of maximum |curvature difference|
	MaxKappaDiffIndex int     // sample index of maximum |curvature difference|, -1 if none
}

// From returns the arc length position where the segment starts within its stroke.
func (seg *Segment) From() float64 {
	return seg.Stroke.From()
}

// To returns the arc length position where the segment ends within its stroke.
func (seg *Segment) To() float64 {
	return seg.Stroke.To()
}

// Top returns the upper end point of the segment.
func (seg *Segment) Top() Point {
	t, _ := seg.TopBottom()
	return t
}

// Bottom returns the lower end point of the segment.
func (seg *Segment) Bottom() Point {
	_, b := seg.TopBottom()
	return b
}

// TopBottom returns the end points of the segment, ordered by y-coordinate.
func (seg *Segment) TopBottom() (Point, Point) {
	if seg.End.Y < seg.Start.Y {
		return seg.End, seg.Start
	}
	return seg.Start, seg.End
}

// Left returns the left end point of the segment.
func (seg *Segment) Left() Point {
	l, _ := seg.LeftRight()
	return l
}

// Right returns the right end point of the segment.
func (seg *Segment) Right() Point {
	_, r := seg.LeftRight()
	return r
}

// LeftRight returns the end points of the segment, ordered by x-coordinate.
func (seg *Segment) LeftRight() (Point, Point) {
	if seg.End.X < seg.Start.X {
		return seg.End, seg.Start
	}
	return seg.Start, seg.End
}

// Mid returns the midpoint of the chord between the end points.
func (seg *Segment) Mid() Point {
	return Midpoint(seg.Start, seg.End)
}

// Height is the vertical distance between the end points.
func (seg *Segment) Height() float64 {
	return math.Abs(seg.End.Y - seg.Start.Y)
}

// Width is the horizontal distance between the end points.
func (seg *Segment) Width() float64 {
	return math.Abs(seg.End.X - seg.Start.X)
}

func (seg *Segment) String() string {
	return fmt.Sprintf("%c%v→%v", seg.Shape.Glyph(), seg.Start, seg.End)
}
