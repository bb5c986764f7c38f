package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/skiggle/engine"
	"github.com/npillmayer/skiggle/internal/render"
	flag "github.com/ogier/pflag"
	"github.com/pkg/errors"
)

func renderCmd(conf schuko.Configuration, args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	outdir := fs.StringP("out", "o", ".", "output directory")
	scale := fs.Float64("scale", 1, "pixels per ink unit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("render: no input files")
	}
	eng, pad, err := newEngine(conf)
	if err != nil {
		return err
	}
	for _, path := range fs.Args() {
		samples, err := loadSamples(path, pad)
		if err != nil {
			return err
		}
		for i, s := range samples {
			out := filepath.Join(*outdir, imageName(path, i))
			if err = renderSample(eng, s, pad, out, render.WithScale(*scale)); err != nil {
				return errors.Wrap(err, s.name)
			}
			fmt.Println(out)
		}
	}
	return nil
}

// imageName derives the name of the image file for sample #i of an input file.
func imageName(path string, i int) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return fmt.Sprintf("%s-%03d.png", base, i+1)
}

func renderSample(eng *engine.Engine, s sample, pad float64, out string, opts ...render.Option) error {
	h, err := eng.BeginCharacter()
	if err != nil {
		return err
	}
	defer eng.EndCharacter(h)
	for _, stroke := range s.strokes {
		if _, err = eng.Submit(h, stroke); err != nil {
			return err
		}
	}
	c, err := eng.Character(h)
	if err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	d := render.Drawing{
		Segments:  c.Segments(),
		PadHeight: pad,
		Title:     title(c.Matched()) + "  " + c.Describe(),
	}
	if err = render.WritePNG(f, d, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func title(r rune, ok bool) string {
	if !ok {
		return "no match"
	}
	return fmt.Sprintf("%q", r)
}
