package inkfile

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Write outputs a record as a line of an ink file.
func Write(w io.Writer, rec Record) error {
	var b strings.Builder
	b.WriteString(formatChar(rec.Char))
	for _, stroke := range rec.Strokes {
		b.WriteString(" ;")
		for _, p := range stroke {
			b.WriteByte(' ')
			b.WriteString(strconv.FormatFloat(p.X, 'f', -1, 64))
			b.WriteByte(',')
			b.WriteString(strconv.FormatFloat(p.Y, 'f', -1, 64))
		}
	}
	if rec.Comment != "" {
		b.WriteString("  # ")
		b.WriteString(rec.Comment)
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

func formatChar(c rune) string {
	if c == '#' || c == ';' || !unicode.IsGraphic(c) || unicode.IsSpace(c) {
		return fmt.Sprintf("U+%04X", c)
	}
	return string(c)
}
