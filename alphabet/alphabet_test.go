package alphabet

import (
	"sort"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/skiggle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func abcConfig() Config {
	return Config{
		Name:     "abc",
		Alphabet: "abc",
		Shapes: map[skiggle.ShapeCode]string{
			skiggle.VLine:  "110",
			skiggle.HLine:  "011",
			skiggle.FSlash: "000",
			skiggle.BSlash: "000",
			skiggle.FC:     "001",
			skiggle.BC:     "000",
			skiggle.Circle: "100",
			skiggle.Dot:    "000",
			skiggle.U:      "000",
		},
		Counts: [4]string{"100", "011", "000", "000"},
	}
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skiggle.alphabet")
	defer teardown()
	//
	require.NoError(t, abcConfig().Validate())
	broken := []struct {
		name   string
		modify func(*Config)
		msg    string
	}{
		{"empty", func(c *Config) { c.Alphabet = "" }, "empty"},
		{"duplicate", func(c *Config) { c.Alphabet = "aba" }, "positions 0 and 2"},
		{"short bits", func(c *Config) { c.Shapes[skiggle.Dot] = "00" }, "length 2"},
		{"bad char", func(c *Config) { c.Counts[2] = "0x0" }, "illegal character"},
		{"missing shape", func(c *Config) { delete(c.Shapes, skiggle.U) }, "missing bit string for shape"},
		{"missing count", func(c *Config) { c.Counts[3] = "" }, "4 segments"},
		{"no name", func(c *Config) { c.Name = "" }, "no name"},
	}
	for _, b := range broken {
		c := abcConfig()
		b.modify(&c)
		err := c.Validate()
		if assert.Error(t, err, b.name) {
			assert.Contains(t, err.Error(), b.msg, b.name)
		}
		_, err = c.Table()
		assert.Error(t, err, b.name)
	}
}

func TestNormalized(t *testing.T) {
	c := abcConfig()
	c.Alphabet = "e\u0301ab"
	for sc := range c.Shapes {
		c.Shapes[sc] = "000"
	}
	c.Counts = [4]string{"100", "000", "000", "000"}
	assert.Error(t, c.Validate(), "4 code points, 3 bits")
	n := c.Normalized()
	assert.Equal(t, "\u00e9ab", n.Alphabet)
	assert.Equal(t, float64(DefaultPadHeight), n.PadHeight)
	assert.NoError(t, n.Validate())
}

func TestTable(t *testing.T) {
	table, err := abcConfig().Table()
	require.NoError(t, err)
	assert.Equal(t, "abc", table.Alphabet())
	assert.Equal(t, "ab", table.Members(skiggle.VLine))
	assert.Equal(t, "b", table.Narrow([]skiggle.ShapeCode{skiggle.VLine, skiggle.HLine}))
}

const digitsYAML = `
name: digits
alphabet: "0123456789"
padheight: 300
shapes:
  "|": "0100110001"
  HLine: "0110110100"
  /: "0000000100"
  \: "0000000000"
  "(": "0000001000"
  ")": "0011010000"
  O: "1000001010"
  .: "0000000000"
  U: "0000000000"
counts:
  - "1100000000"
  - "0111001101"
  - "0001110000"
  - "0000000000"
`

func TestLoadYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skiggle.alphabet")
	defer teardown()
	//
	c, err := LoadYAML(strings.NewReader(digitsYAML))
	require.NoError(t, err)
	assert.Equal(t, "digits", c.Name)
	assert.Equal(t, 300.0, c.PadHeight)
	assert.Equal(t, "0110110100", c.Shapes[skiggle.HLine])
	assert.Equal(t, "0000001000", c.Shapes[skiggle.FC])
	table, err := c.Table()
	require.NoError(t, err)
	assert.Equal(t, "7", table.Narrow([]skiggle.ShapeCode{skiggle.HLine, skiggle.FSlash}))
	//
	_, err = LoadYAML(strings.NewReader(strings.Replace(digitsYAML, "HLine", "Squiggle", 1)))
	assert.Error(t, err)
	_, err = LoadYAML(strings.NewReader(strings.Replace(digitsYAML, `  - "0000000000"`, "", 1)))
	assert.Error(t, err)
}

type never struct{}

func (never) Verify(c rune, ink skiggle.Ink) (rune, bool) { return c, false }

func TestRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skiggle.alphabet")
	defer teardown()
	//
	c := abcConfig()
	assert.Error(t, Register(Module{Config: c}), "module without verifier")
	c.Alphabet = ""
	assert.Error(t, Register(Module{Config: c, Verifier: never{}}))
	assert.Panics(t, func() { MustRegister(Module{Config: c, Verifier: never{}}) })
	//
	latin := abcConfig()
	latin.Name = DefaultModule
	MustRegister(Module{Config: latin, Verifier: never{}, Tags: []language.Tag{language.English}})
	han := abcConfig()
	han.Name = "han-test"
	MustRegister(Module{Config: han, Verifier: never{}, Tags: []language.Tag{language.Chinese}})
	names := Names()
	assert.Contains(t, names, "han-test")
	assert.True(t, sort.StringsAreSorted(names), "names are sorted")
	//
	m, ok := Lookup("han-test")
	require.True(t, ok)
	assert.Equal(t, float64(DefaultPadHeight), m.Config.PadHeight)
	_, ok = Lookup("klingon")
	assert.False(t, ok)
	//
	m, ok = ForLocale(language.MustParse("zh-CN"))
	require.True(t, ok)
	assert.Equal(t, "han-test", m.Config.Name)
	m, ok = ForLocale(language.German)
	require.True(t, ok)
	assert.Equal(t, DefaultModule, m.Config.Name)
	m, ok = ForLocale(language.MustParse("en-GB"))
	require.True(t, ok)
	assert.Equal(t, DefaultModule, m.Config.Name)
}
