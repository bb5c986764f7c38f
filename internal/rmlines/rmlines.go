/*
Package rmlines decodes reMarkable ".rm" page files into strokes.

A page file holds the lines drawn on one page of a reMarkable tablet, grouped
into layers. Versions 3 and 5 of the binary format are supported. Lines
drawn with an eraser tool are dropped, all other lines are considered ink,
regardless of brush and color.

	page, err := rmlines.Decode(r)
	…
	strokes := page.Strokes(480 / rmlines.PageHeight)

BSD License

Please refer to the License file in the root directory of this module.
*/
package rmlines

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/skiggle"
	"github.com/pkg/errors"
)

// tracer traces with key 'skiggle.rmlines'.
func tracer() tracing.Trace {
	return tracing.Select("skiggle.rmlines")
}

// Dimensions of a reMarkable page in pixels.
const (
	PageWidth  = 1404
	PageHeight = 1872
)

// Version is the version of a page file.
type Version int

// Supported versions of the page file format.
const (
	V3 Version = 3
	V5 Version = 5
)

// Page file headers. Headers are padded with blanks to HeaderLen bytes.
const (
	HeaderV3  = "reMarkable .lines file, version=3          "
	HeaderV5  = "reMarkable .lines file, version=5          "
	HeaderLen = 43
)

// ErrUnknownHeader is returned for files which are not page files or use
// an unsupported version of the format.
var ErrUnknownHeader = errors.New("unknown page file header")

// BrushType is the tool a line has been drawn with.
type BrushType uint32

// Eraser tools. Version 5 files use the same codes as version 3.
const (
	Eraser    BrushType = 6
	EraseArea BrushType = 8
)

// IsEraser is true for eraser tools.
func (b BrushType) IsEraser() bool {
	return b == Eraser || b == EraseArea
}

// Point is a sample of a line, as recorded by the tablet.
type Point struct {
	X, Y      float32
	Speed     float32
	Direction float32
	Width     float32
	Pressure  float32
}

// Line is a single pen stroke.
type Line struct {
	BrushType  BrushType
	BrushColor uint32
	Padding    uint32
	BrushSize  float32
	Unknown    float32 // version 5 only
	Points     []Point
}

// Layer is a group of lines.
type Layer struct {
	Lines []Line
}

// Page is the content of a page file.
type Page struct {
	Version Version
	Layers  []Layer
}

// Strokes returns the ink lines of all layers as strokes, in drawing order.
// Coordinates are multiplied by scale. Eraser lines and lines without
// points are dropped.
func (page *Page) Strokes(scale float64) [][]skiggle.Point {
	var strokes [][]skiggle.Point
	for _, layer := range page.Layers {
		for _, line := range layer.Lines {
			if line.BrushType.IsEraser() || len(line.Points) == 0 {
				continue
			}
			stroke := make([]skiggle.Point, len(line.Points))
			for i, p := range line.Points {
				stroke[i] = skiggle.Pt(float64(p.X)*scale, float64(p.Y)*scale)
			}
			strokes = append(strokes, stroke)
		}
	}
	tracer().Debugf("page has %d strokes", len(strokes))
	return strokes
}
