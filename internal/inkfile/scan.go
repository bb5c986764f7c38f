package inkfile

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/skiggle"
	"github.com/pkg/errors"
)

// tracer traces with key 'skiggle.inkfile'.
func tracer() tracing.Trace {
	return tracing.Select("skiggle.inkfile")
}

// Scanner is a line-level scanner for ink files.
//
//	for sc.Next() {
//	    rec := sc.Record()
//	    …
//	}
//	if err := sc.Err(); err != nil {
//	    …
//	}
type Scanner struct {
	lines   *bufio.Scanner
	lineNo  int
	record  Record
	lastErr error
}

// NewScanner creates a scanner for an input reader.
func NewScanner(r io.Reader) (*Scanner, error) {
	if r == nil {
		return nil, errors.New("no input present")
	}
	return &Scanner{lines: bufio.NewScanner(r)}, nil
}

// Next advances to the next record. Blank lines and comment lines are
// skipped. Next returns false at the end of input or on the first malformed
// line.
func (sc *Scanner) Next() bool {
	if sc.lastErr != nil {
		return false
	}
	for sc.lines.Scan() {
		sc.lineNo++
		text := strings.TrimSpace(sc.lines.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		rec, err := parseLine(text)
		if err != nil {
			sc.lastErr = errors.Wrapf(err, "line %d", sc.lineNo)
			return false
		}
		rec.LineNo = sc.lineNo
		sc.record = rec
		tracer().Debugf("ink %s", rec)
		return true
	}
	sc.lastErr = sc.lines.Err()
	return false
}

// Record returns the record most recently scanned.
func (sc *Scanner) Record() Record {
	return sc.record
}

// Err returns the first error encountered, if any.
func (sc *Scanner) Err() error {
	return sc.lastErr
}

// Parse iterates over each record of an ink file and calls callback f on it.
func Parse(r io.Reader, f func(rec Record)) error {
	sc, err := NewScanner(r)
	if err != nil {
		return err
	}
	for sc.Next() {
		f(sc.Record())
	}
	return sc.Err()
}

// ReadAll reads all records of an ink file.
func ReadAll(r io.Reader) (*Records, error) {
	recs := NewRecords()
	err := Parse(r, func(rec Record) {
		recs.Add(rec)
	})
	return recs, err
}

func parseLine(text string) (Record, error) {
	rec := Record{}
	if i := strings.IndexByte(text, '#'); i >= 0 {
		rec.Comment = strings.TrimSpace(text[i+1:])
		text = text[:i]
	}
	fields := strings.Split(text, ";")
	c, err := parseChar(strings.TrimSpace(fields[0]))
	if err != nil {
		return rec, err
	}
	rec.Char = c
	for i, field := range fields[1:] {
		stroke, err := ParseStroke(field)
		if err != nil {
			return rec, errors.Wrapf(err, "stroke #%d", i+1)
		}
		rec.Strokes = append(rec.Strokes, stroke)
	}
	return rec, nil
}

func parseChar(field string) (rune, error) {
	if strings.HasPrefix(field, "U+") {
		n, err := strconv.ParseUint(field[2:], 16, 32)
		if err != nil {
			return 0, errors.Wrapf(err, "malformed code point %q", field)
		}
		return rune(n), nil
	}
	c, size := utf8.DecodeRuneInString(field)
	if c == utf8.RuneError || size != len(field) {
		return 0, errors.Errorf("expected a single character, have %q", field)
	}
	return c, nil
}

// ParseStroke reads the points of a stroke field, e.g. "100,100 300,100".
func ParseStroke(field string) ([]skiggle.Point, error) {
	coords := strings.Fields(field)
	if len(coords) == 0 {
		return nil, errors.New("stroke without points")
	}
	points := make([]skiggle.Point, len(coords))
	for i, xy := range coords {
		comma := strings.IndexByte(xy, ',')
		if comma < 0 {
			return nil, errors.Errorf("malformed point %q", xy)
		}
		x, err := strconv.ParseFloat(xy[:comma], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "malformed point %q", xy)
		}
		y, err := strconv.ParseFloat(xy[comma+1:], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "malformed point %q", xy)
		}
		points[i] = skiggle.Pt(x, y)
	}
	return points, nil
}
