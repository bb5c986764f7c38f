package skiggle

import "strings"

// ShapeCode is the primitive shape a segment has been classified as.
type ShapeCode int8

// Primitive shapes. Directions refer to screen coordinates.
const (
	Unknown ShapeCode = iota // matches none of the shape predicates
	VLine                    // vertical line '|'
	HLine                    // horizontal line '-'
	FSlash                   // forward slash '/'
	BSlash                   // back slash '\'
	FC                       // forward C-curve, opening to the right, like '('
	BC                       // backward C-curve, opening to the left, like ')'
	Circle                   // closed loop 'O'
	Dot                      // near-zero extent '.'
	U                        // U-curve, opening upwards
)

// Shapes lists all primitive shapes except Unknown.
var Shapes = []ShapeCode{VLine, HLine, FSlash, BSlash, FC, BC, Circle, Dot, U}

var shapeNames = [...]string{"Unknown", "VLine", "HLine", "FSlash", "BSlash", "FC", "BC", "Circle", "Dot", "U"}

var shapeGlyphs = [...]rune{'?', '|', '-', '/', '\\', '(', ')', 'O', '.', 'U'}

func (sc ShapeCode) String() string {
	if sc < 0 || int(sc) >= len(shapeNames) {
		return shapeNames[0]
	}
	return shapeNames[sc]
}

// Glyph returns a single character depicting the shape. Glyphs are used
// in diagnostics and configuration files.
func (sc ShapeCode) Glyph() rune {
	if sc < 0 || int(sc) >= len(shapeGlyphs) {
		return shapeGlyphs[0]
	}
	return shapeGlyphs[sc]
}

// ShapeFromString finds a shape code either by its name (case-insensitive)
// or by its glyph. The second return value is false if s denotes no shape.
func ShapeFromString(s string) (ShapeCode, bool) {
	for i, n := range shapeNames {
		if strings.EqualFold(s, n) {
			return ShapeCode(i), true
		}
	}
	if r := []rune(s); len(r) == 1 {
		for i, g := range shapeGlyphs {
			if g == r[0] {
				return ShapeCode(i), true
			}
		}
	}
	return Unknown, false
}

// IsLine is true for the straight shapes.
func (sc ShapeCode) IsLine() bool {
	return sc >= VLine && sc <= BSlash
}
