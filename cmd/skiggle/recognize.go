package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/skiggle"
	"github.com/npillmayer/skiggle/candidates"
	"github.com/npillmayer/skiggle/engine"
	flag "github.com/ogier/pflag"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// result is the outcome of recognizing a sample.
type result struct {
	sample     sample
	matched    rune
	ok         bool
	candidates string
	shapes     []skiggle.ShapeCode
	cancelled  bool
}

func (r result) correct() bool {
	return r.ok && r.matched == r.sample.want
}

func (r result) status() string {
	switch {
	case r.cancelled:
		return "cancelled"
	case r.candidates == candidates.TooComplex:
		return "too complex"
	case r.sample.want == 0:
		return ""
	case r.correct():
		return "ok"
	}
	return fmt.Sprintf("FAIL, want %q", r.sample.want)
}

func recognizeCmd(conf schuko.Configuration, args []string) error {
	fs := flag.NewFlagSet("recognize", flag.ExitOnError)
	jobs := fs.IntP("jobs", "j", runtime.NumCPU(), "number of characters to recognize in parallel")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("recognize: no input files")
	}
	eng, pad, err := newEngine(conf)
	if err != nil {
		return err
	}
	var samples []sample
	for _, path := range fs.Args() {
		s, err := loadSamples(path, pad)
		if err != nil {
			return err
		}
		samples = append(samples, s...)
	}
	results, err := recognizeAll(context.Background(), eng, samples, *jobs)
	if err != nil {
		return err
	}
	report(os.Stdout, results)
	return nil
}

// recognizeAll recognizes samples concurrently, with at most jobs
// characters in progress at a time. Results are in sample order.
func recognizeAll(ctx context.Context, eng *engine.Engine, samples []sample, jobs int) ([]result, error) {
	if jobs < 1 {
		jobs = 1
	}
	results := make([]result, len(samples))
	sem := semaphore.NewWeighted(int64(jobs))
	g, ctx := errgroup.WithContext(ctx)
	for i := range samples {
		if err := sem.Acquire(ctx, 1); err != nil {
			break // a recognition failed and cancelled ctx
		}
		i := i
		g.Go(func() error {
			defer sem.Release(1)
			r, err := recognize(eng, samples[i])
			if err != nil {
				return errors.Wrap(err, samples[i].name)
			}
			results[i] = r
			return nil
		})
	}
	return results, g.Wait()
}

// recognize submits the strokes of a sample to a new character.
func recognize(eng *engine.Engine, s sample) (result, error) {
	h, err := eng.BeginCharacter()
	if err != nil {
		return result{}, err
	}
	defer eng.EndCharacter(h)
	r := result{sample: s}
	for _, stroke := range s.strokes {
		res, err := eng.Submit(h, stroke)
		if err != nil {
			return r, err
		}
		r.matched, r.ok, r.candidates = res.Matched, res.OK, res.Candidates
		r.shapes, r.cancelled = res.Shapes, res.Cancelled
	}
	tracer().Debugf("%s: %q %q", s.name, r.matched, r.candidates)
	return r, nil
}

func report(w io.Writer, results []result) {
	n, known := 0, 0
	for _, r := range results {
		m := "-"
		if r.ok {
			m = string(r.matched)
		}
		fmt.Fprintf(w, "%-24s %-3s %-12q %s\n", r.sample.name, m, r.candidates, r.status())
		if r.sample.want != 0 {
			known++
			if r.correct() {
				n++
			}
		}
	}
	if known > 0 {
		fmt.Fprintf(w, "%d of %d characters recognized\n", n, known)
	}
}
