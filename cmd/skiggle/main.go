/*
Skiggle recognizes single handwritten characters from ink files.

Usage:

	skiggle [flags] recognize [-j n] file.ink|file.rm …
	skiggle [flags] render [-o dir] [--scale s] file.ink|file.rm …
	skiggle [flags] console

Flags:

	-alphabet name|file.yaml   alphabet to use (default: from user locale)
	-trace level               trace level for all tracers (Debug, Info, Error)
	-pad height                height of the writing pad
	-cancel ratio              threshold for cancel gestures

Configuration is read from a NestedText file "skiggle.nt" at the standard
configuration locations of the operating system. Flags override
configuration values. Recognized keys are

	skiggle.alphabet
	skiggle.pad.height
	skiggle.cancel.ratio
	skiggle.segment.*          classifier parameters, e.g. skiggle.segment.samples
	tracelevel.<selector>      trace level per tracer, e.g. tracelevel.skiggle.segment

BSD License

Please refer to the License file in the root directory of this module.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"

	_ "github.com/npillmayer/skiggle/han"
	_ "github.com/npillmayer/skiggle/latin"
)

// tracer traces with key 'skiggle.cli'.
func tracer() tracing.Trace {
	return tracing.Select("skiggle.cli")
}

func main() {
	alphabetFlag := flag.String("alphabet", "", "alphabet name or YAML file")
	traceFlag := flag.String("trace", "", "trace level (Debug, Info, Error)")
	padFlag := flag.Float64("pad", 0, "height of the writing pad")
	cancelFlag := flag.Float64("cancel", 0, "threshold for cancel gestures")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}
	conf := koanfadapter.New(nil, "skiggle", []string{"nt"})
	conf.InitDefaults()
	if *alphabetFlag != "" {
		conf.Set(keyAlphabet, *alphabetFlag)
	}
	if *traceFlag != "" {
		conf.Set("tracelevel.root", *traceFlag)
		for _, sel := range selectors {
			conf.Set("tracelevel."+sel, *traceFlag)
		}
	}
	if *padFlag != 0 {
		conf.Set(keyPadHeight, fmt.Sprint(*padFlag))
	}
	if *cancelFlag != 0 {
		conf.Set(keyCancelRatio, fmt.Sprint(*cancelFlag))
	}
	initTracing(conf)
	var err error
	cmd, args := flag.Arg(0), flag.Args()[1:]
	switch cmd {
	case "recognize":
		err = recognizeCmd(conf, args)
	case "render":
		err = renderCmd(conf, args)
	case "console":
		err = consoleCmd(conf, args)
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		tracer().Errorf(err.Error())
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] recognize|render|console [args]\n", os.Args[0])
	flag.PrintDefaults()
}

// selectors lists the tracers of the packages of this module.
var selectors = []string{
	"skiggle.cli", "skiggle.segment", "skiggle.candidates", "skiggle.alphabet",
	"skiggle.latin", "skiggle.han", "skiggle.character", "skiggle.engine",
	"skiggle.inkfile", "skiggle.rmlines", "skiggle.render", "skiggle.core",
}

func initTracing(conf *koanfadapter.KConf) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tracing.SetTraceSelector(trace2go.Selector())
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintf(os.Stderr, "cannot configure tracing: %v\n", err)
	}
}
