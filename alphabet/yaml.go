package alphabet

import (
	"io"
	"io/ioutil"

	"github.com/npillmayer/skiggle"
	"github.com/npillmayer/skiggle/candidates"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// yamlConfig is the file format of alphabet configurations:
//
//     name: digits
//     alphabet: "0123456789"
//     padheight: 480
//     shapes:
//       "|": "0100110001"
//       "-": "0110110100"
//       …
//     counts:
//       - "1100000000"
//       …
//
// Shapes are keyed either by their glyph or by their name (e.g. "VLine").
type yamlConfig struct {
	Name      string            `yaml:"name"`
	Alphabet  string            `yaml:"alphabet"`
	PadHeight float64           `yaml:"padheight"`
	Shapes    map[string]string `yaml:"shapes"`
	Counts    []string          `yaml:"counts"`
}

// LoadYAML reads an alphabet configuration in YAML format. The configuration
// is normalized and validated.
func LoadYAML(r io.Reader) (Config, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading alphabet configuration")
	}
	var yc yamlConfig
	if err = yaml.UnmarshalStrict(data, &yc); err != nil {
		return Config{}, errors.Wrap(err, "decoding alphabet configuration")
	}
	c := Config{
		Name:      yc.Name,
		Alphabet:  yc.Alphabet,
		PadHeight: yc.PadHeight,
		Shapes:    make(map[skiggle.ShapeCode]string, len(yc.Shapes)),
	}
	for key, bits := range yc.Shapes {
		sc, ok := skiggle.ShapeFromString(key)
		if !ok || sc == skiggle.Unknown {
			return Config{}, errors.Errorf("alphabet %q: unknown shape %q", yc.Name, key)
		}
		if _, dup := c.Shapes[sc]; dup {
			return Config{}, errors.Errorf("alphabet %q: shape %v given twice", yc.Name, sc)
		}
		c.Shapes[sc] = bits
	}
	if len(yc.Counts) != candidates.MaxSegments {
		return Config{}, errors.Errorf("alphabet %q: need %d segment count bit strings, have %d",
			yc.Name, candidates.MaxSegments, len(yc.Counts))
	}
	copy(c.Counts[:], yc.Counts)
	c = c.Normalized()
	if err = c.Validate(); err != nil {
		return Config{}, err
	}
	tracer().Infof("loaded alphabet %q with %d runes", c.Name, len([]rune(c.Alphabet)))
	return c, nil
}
