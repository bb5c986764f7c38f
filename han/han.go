/*
Package han is an alphabet module for the Chinese numerals 〇 to 十.

Only the numerals made of straight strokes have rules: 〇, 一, 二, 三, 八
and 十. The other numerals are part of the alphabet and show up as
candidates, but never verify.

Importing this package registers the module with package alphabet under
the name "han". It is selected for Chinese locales.

BSD License

Please refer to the License file in the root directory of this module.
*/
package han

import (
	"github.com/npillmayer/schuko/tracing"
	sk "github.com/npillmayer/skiggle"
	"github.com/npillmayer/skiggle/alphabet"
	"golang.org/x/text/language"
)

// tracer traces with key 'skiggle.han'.
func tracer() tracing.Trace {
	return tracing.Select("skiggle.han")
}

// Name is the name the module is registered with.
const Name = "han"

// Alphabet is the alphabet of the module.
const Alphabet = "〇一二三四五六七八九十?"

// Config returns the alphabet configuration of the module.
func Config() alphabet.Config {
	return alphabet.Config{
		Name:     Name,
		Alphabet: Alphabet,
		Shapes: map[sk.ShapeCode]string{
			sk.VLine:  "000010000010",
			sk.HLine:  "011111100010",
			sk.FSlash: "000010001000",
			sk.BSlash: "000000001000",
			sk.FC:     "000000000000",
			sk.Circle: "100000000000",
			sk.BC:     "000000000000",
			sk.Dot:    "000000000000",
			sk.U:      "000000000000",
		},
		Counts: [4]string{
			"110001100000",
			"001000001010",
			"000110000000",
			"000000000000",
		},
		PadHeight: alphabet.DefaultPadHeight,
	}
}

// Verifiers returns the verifier table for the alphabet.
func Verifiers() sk.VerifierTable {
	return sk.VerifierTable{
		'〇': sk.Check(isCircle),
		'一': sk.Check(horizontalStrokes(1)),
		'二': sk.Check(horizontalStrokes(2)),
		'三': sk.Check(horizontalStrokes(3)),
		'八': sk.Check(isCaret),
		'十': sk.Check(isCross),
	}
}

func init() {
	alphabet.MustRegister(alphabet.Module{
		Config:   Config(),
		Verifier: Verifiers(),
		Tags:     []language.Tag{language.Chinese, language.SimplifiedChinese, language.TraditionalChinese},
	})
}

func isCircle(ink sk.Ink) bool {
	_, ok := sk.Expect(ink, sk.Circle)
	return ok
}

// horizontalStrokes creates a predicate for ink consisting of exactly n
// horizontal lines.
func horizontalStrokes(n int) func(sk.Ink) bool {
	shapes := make([]sk.ShapeCode, n)
	for i := range shapes {
		shapes[i] = sk.HLine
	}
	return func(ink sk.Ink) bool {
		_, ok := sk.Expect(ink, shapes...)
		return ok
	}
}

// 八 is two strokes, falling to the left and to the right from a common top.
func isCaret(ink sk.Ink) bool {
	segs := ink.Segments()
	return len(segs) == 2 && sk.CaretGap(segs[0], segs[1])
}

// 十 is a horizontal and a vertical line crossing at their midpoints.
func isCross(ink sk.Ink) bool {
	r, ok := sk.Expect(ink, sk.HLine, sk.VLine)
	if !ok {
		return false
	}
	h, v := r.One(sk.HLine), r.One(sk.VLine)
	tops, bottoms := sk.Gaps(v, h)
	maxGap := tops
	if bottoms > maxGap {
		maxGap = bottoms
	}
	d := sk.Distance(v.Mid(), h.Mid())
	tracer().Debugf("十: midpoints %.1f apart, max gap %.1f", d, maxGap)
	return d < 0.25*maxGap
}
