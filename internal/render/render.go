/*
Package render draws classified ink into images, for diagnostics.

Every segment is drawn in a color telling its shape, with the glyph of the
shape next to its centroid. A caption line below the writing pad shows a
title, usually the recognition result.

BSD License

Please refer to the License file in the root directory of this module.
*/
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/skiggle"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// tracer traces with key 'skiggle.render'.
func tracer() tracing.Trace {
	return tracing.Select("skiggle.render")
}

// Drawing is the content of an image.
type Drawing struct {
	Segments  []*skiggle.Segment
	PadHeight float64 // height of the writing pad, in ink coordinates
	Title     string  // caption, may be empty
}

// Options control the appearance of an image.
type Options struct {
	Scale     float64 // pixels per ink unit
	LineWidth float64 // in pixels
	FontSize  float64 // in points at 72 dpi
	Labels    bool    // draw shape glyphs next to segments
}

// DefaultOptions returns options for images at ink scale.
func DefaultOptions() Options {
	return Options{Scale: 1, LineWidth: 3, FontSize: 14, Labels: true}
}

// Option changes an option.
type Option func(*Options)

// WithScale sets the number of pixels per ink unit.
func WithScale(s float64) Option {
	return func(o *Options) {
		o.Scale = s
	}
}

// WithoutLabels suppresses shape glyphs.
func WithoutLabels() Option {
	return func(o *Options) {
		o.Labels = false
	}
}

// Palette holds the colors for shapes. Unknown shapes are drawn in gray.
var Palette = map[skiggle.ShapeCode]color.RGBA{
	skiggle.VLine:  {0x1f, 0x77, 0xb4, 0xff},
	skiggle.HLine:  {0xff, 0x7f, 0x0e, 0xff},
	skiggle.FSlash: {0x2c, 0xa0, 0x2c, 0xff},
	skiggle.BSlash: {0xd6, 0x27, 0x28, 0xff},
	skiggle.FC:     {0x94, 0x67, 0xbd, 0xff},
	skiggle.BC:     {0x8c, 0x56, 0x4b, 0xff},
	skiggle.Circle: {0xe3, 0x77, 0xc2, 0xff},
	skiggle.Dot:    {0x00, 0x00, 0x00, 0xff},
	skiggle.U:      {0xbc, 0xbd, 0x22, 0xff},
}

var gray = color.RGBA{0x7f, 0x7f, 0x7f, 0xff}

func colorOf(sc skiggle.ShapeCode) color.RGBA {
	if c, ok := Palette[sc]; ok {
		return c
	}
	return gray
}

const margin = 10 // pixels

// Render draws a drawing into a new image. The image covers a square pad
// of the drawing's pad height, extended to the right and bottom if ink
// exceeds the pad.
func Render(d Drawing, opts ...Option) (*image.RGBA, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Scale <= 0 || o.LineWidth <= 0 {
		return nil, errors.Errorf("render: invalid scale %g or line width %g", o.Scale, o.LineWidth)
	}
	pad := skiggle.R(skiggle.Pt(0, 0), skiggle.Pt(d.PadHeight, d.PadHeight))
	for _, seg := range d.Segments {
		pad = pad.Union(seg.Bounds)
	}
	caption := 0
	if d.Title != "" {
		caption = int(math.Ceil(2 * o.FontSize))
	}
	w := int(math.Ceil(pad.Max.X*o.Scale)) + 2*margin
	h := int(math.Ceil(pad.Max.Y*o.Scale)) + 2*margin
	img := image.NewRGBA(image.Rect(0, 0, w, h+caption))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)
	padFrame := image.Rect(margin, margin, w-margin, h-margin)
	frame(img, padFrame, color.RGBA{0xdd, 0xdd, 0xdd, 0xff})
	toPixel := func(p skiggle.Point) (float32, float32) {
		return float32(p.X*o.Scale + margin), float32(p.Y*o.Scale + margin)
	}
	for _, seg := range d.Segments {
		z := vector.NewRasterizer(w, h)
		points := segmentPoints(seg)
		for i := 1; i < len(points); i++ {
			x0, y0 := toPixel(points[i-1])
			x1, y1 := toPixel(points[i])
			thickLine(z, x0, y0, x1, y1, float32(o.LineWidth))
		}
		z.Draw(img, image.Rect(0, 0, w, h), &image.Uniform{colorOf(seg.Shape)}, image.Point{})
	}
	if !o.Labels && d.Title == "" {
		return img, nil
	}
	ctx, err := newContext(img, o.FontSize)
	if err != nil {
		return nil, err
	}
	if o.Labels {
		for _, seg := range d.Segments {
			x, y := toPixel(seg.Centroid)
			ctx.SetSrc(&image.Uniform{colorOf(seg.Shape)})
			pt := freetype.Pt(int(x), int(y))
			pt = pt.Add(fixed.P(int(o.LineWidth)+2, -int(o.LineWidth)-2))
			if _, err = ctx.DrawString(string(seg.Shape.Glyph()), pt); err != nil {
				return nil, errors.Wrap(err, "render: label")
			}
		}
	}
	if d.Title != "" {
		ctx.SetSrc(&image.Uniform{color.Black})
		if _, err = ctx.DrawString(d.Title, freetype.Pt(margin, h+caption/2+int(o.FontSize/3))); err != nil {
			return nil, errors.Wrap(err, "render: title")
		}
	}
	tracer().Debugf("rendered %d segments into %v", len(d.Segments), img.Bounds())
	return img, nil
}

// WritePNG renders a drawing and encodes it as PNG.
func WritePNG(out io.Writer, d Drawing, opts ...Option) error {
	img, err := Render(d, opts...)
	if err != nil {
		return err
	}
	return png.Encode(out, img)
}

// segmentPoints returns the polyline of a segment. Segments without a
// stroke are drawn as a straight line from start to end.
func segmentPoints(seg *skiggle.Segment) []skiggle.Point {
	if seg.Stroke != nil {
		return seg.Stroke.Points()
	}
	return []skiggle.Point{seg.Start, seg.End}
}

// thickLine adds a line of width w as a closed quadrilateral path.
func thickLine(z *vector.Rasterizer, x0, y0, x1, y1, w float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		dx, dy, l = 0, 1, 1
	}
	nx, ny := -dy/l*w/2, dx/l*w/2
	// extend the ends by half the width to join consecutive lines
	ex, ey := dx/l*w/2, dy/l*w/2
	z.MoveTo(x0+nx-ex, y0+ny-ey)
	z.LineTo(x1+nx+ex, y1+ny+ey)
	z.LineTo(x1-nx+ex, y1-ny+ey)
	z.LineTo(x0-nx-ex, y0-ny-ey)
	z.ClosePath()
}

func frame(img *image.RGBA, r image.Rectangle, c color.Color) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}

var (
	regular     *truetype.Font
	regularErr  error
	regularOnce sync.Once
)

func newContext(img *image.RGBA, size float64) (*freetype.Context, error) {
	regularOnce.Do(func() {
		regular, regularErr = freetype.ParseFont(goregular.TTF)
	})
	if regularErr != nil {
		return nil, errors.Wrap(regularErr, "render: cannot parse font")
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(regular)
	ctx.SetFontSize(size)
	ctx.SetHinting(font.HintingFull)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	return ctx, nil
}
