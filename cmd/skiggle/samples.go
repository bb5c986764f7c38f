package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/skiggle"
	"github.com/npillmayer/skiggle/internal/inkfile"
	"github.com/npillmayer/skiggle/internal/rmlines"
	"github.com/pkg/errors"
)

// sample is a handwritten character to recognize.
type sample struct {
	name    string // file and line
	want    rune   // expected character, 0 if unknown
	strokes [][]skiggle.Point
}

// loadSamples reads the characters of an ink file or a reMarkable page.
// A page holds a single character; it is scaled from page size to pad size.
func loadSamples(path string, padHeight float64) ([]sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if filepath.Ext(path) == ".rm" {
		page, err := rmlines.Decode(f)
		if err != nil {
			return nil, errors.Wrap(err, path)
		}
		s := sample{name: path, strokes: page.Strokes(padHeight / rmlines.PageHeight)}
		return []sample{s}, nil
	}
	var samples []sample
	err = inkfile.Parse(f, func(rec inkfile.Record) {
		if len(rec.Strokes) == 0 {
			return
		}
		samples = append(samples, sample{
			name:    fmt.Sprintf("%s:%d", path, rec.LineNo),
			want:    rec.Char,
			strokes: rec.Strokes,
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return samples, nil
}
