package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/skiggle/alphabet"
	"github.com/npillmayer/skiggle/engine"
	"github.com/npillmayer/skiggle/segment"
	"github.com/pkg/errors"
)

// Configuration keys, besides the segment classifier parameters.
const (
	keyAlphabet    = "skiggle.alphabet"
	keyPadHeight   = "skiggle.pad.height"
	keyCancelRatio = "skiggle.cancel.ratio"
)

// engineOptions collects engine options from the configuration.
func engineOptions(conf schuko.Configuration) ([]engine.Option, error) {
	params, err := segment.ParamsFromConfig(conf)
	if err != nil {
		return nil, err
	}
	opts := []engine.Option{engine.WithParams(params)}
	if x, ok, err := getFloat(conf, keyCancelRatio); err != nil {
		return nil, err
	} else if ok {
		opts = append(opts, engine.WithCancelRatio(x))
	}
	if x, ok, err := getFloat(conf, keyPadHeight); err != nil {
		return nil, err
	} else if ok {
		opts = append(opts, engine.WithPadHeight(x))
	}
	return opts, nil
}

func getFloat(conf schuko.Configuration, key string) (float64, bool, error) {
	if !conf.IsSet(key) {
		return 0, false, nil
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(conf.GetString(key)), 64)
	if err != nil {
		return 0, false, errors.Wrapf(err, "configuration key %s", key)
	}
	return x, true, nil
}

// selectAlphabet finds the alphabet module to use. The configured value may
// be the name of a registered module or a YAML file. A YAML file must be
// named after a registered module, which contributes the verifier. Without
// a configured value, the module is chosen by the user's locale.
func selectAlphabet(conf schuko.Configuration) (alphabet.Module, error) {
	name := strings.TrimSpace(conf.GetString(keyAlphabet))
	if name == "" {
		m, ok := alphabet.FromEnvironment()
		if !ok {
			return m, errors.New("no alphabet module registered")
		}
		return m, nil
	}
	if ext := filepath.Ext(name); ext != ".yaml" && ext != ".yml" {
		m, ok := alphabet.Lookup(name)
		if !ok {
			return m, errors.Errorf("unknown alphabet %q, have %v", name, alphabet.Names())
		}
		return m, nil
	}
	return alphabetFromFile(name)
}

func alphabetFromFile(path string) (alphabet.Module, error) {
	f, err := os.Open(path)
	if err != nil {
		return alphabet.Module{}, err
	}
	defer f.Close()
	config, err := alphabet.LoadYAML(f)
	if err != nil {
		return alphabet.Module{}, errors.Wrapf(err, "alphabet file %s", path)
	}
	m, ok := alphabet.Lookup(config.Name)
	if !ok {
		return m, errors.Errorf("alphabet file %s: no module %q to take verifiers from", path, config.Name)
	}
	m.Config = config
	return m, nil
}

// newEngine creates an engine for the configured alphabet. It returns the
// engine and the height of the writing pad in effect.
func newEngine(conf schuko.Configuration) (*engine.Engine, float64, error) {
	opts, err := engineOptions(conf)
	if err != nil {
		return nil, 0, err
	}
	m, err := selectAlphabet(conf)
	if err != nil {
		return nil, 0, err
	}
	eng := engine.New(opts...)
	if err = eng.InitializeAlphabet(m.Config, m.Verifier); err != nil {
		return nil, 0, err
	}
	pad := m.Config.PadHeight
	if x, ok, _ := getFloat(conf, keyPadHeight); ok {
		pad = x
	}
	tracer().Infof("using alphabet %q, pad height %g", m.Config.Name, pad)
	return eng, pad, nil
}
