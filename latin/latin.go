/*
Package latin is the alphabet module for the printable ASCII characters.

The alphabet is sorted by the frequency of characters in English text,
digits first, then upper case letters, lower case letters and symbols.
Recognition reports the first candidate which passes its verifier, thus
ambiguous ink resolves to the more frequent character.

Upper and lower case letters which differ only in size (C/c, O/o, S/s, …)
share a verifier. The verifier decides by the height of the ink relative to
the writing pad. The same holds for characters differing only by their
vertical position on the pad, like '-' and '_'.

Importing this package registers the module with package alphabet under
the name "latin":

	import _ "github.com/npillmayer/skiggle/latin"

BSD License

Please refer to the License file in the root directory of this module.
*/
package latin

import (
	"github.com/npillmayer/schuko/tracing"
	sk "github.com/npillmayer/skiggle"
	"github.com/npillmayer/skiggle/alphabet"
	"golang.org/x/text/language"
)

// tracer traces with key 'skiggle.latin'.
func tracer() tracing.Trace {
	return tracing.Select("skiggle.latin")
}

// Name is the name the module is registered with.
const Name = "latin"

// Alphabet is the frequency sorted alphabet of the module.
const Alphabet = "0123456789" +
	"ETAOINSHRDLCUMWFGYPBVKJXQZ" +
	"etaoinshrdlcumwfgypbvkjxqz" +
	" !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Config returns the alphabet configuration of the module.
func Config() alphabet.Config {
	return alphabet.Config{
		Name:     Name,
		Alphabet: Alphabet,
		Shapes: map[sk.ShapeCode]string{
			sk.VLine:  "01001100011100110111100101011101100001101101111001000011010010111010010001000000000001010000100",
			sk.HLine:  "01101101001110100100100001100000100111000000000000010000000001100100000011010000010001010100000",
			sk.FSlash: "01001001000010000000000110010011010100000000000000100100110101000101000010000100101000001000000",
			sk.BSlash: "00000000000010010010000110010011011000000000000000100100110100000000000010000000101000101010000",
			sk.FC:     "00000010010000001000010000100000000010100010010100000000000010000010001000000000000000000000000",
			sk.Circle: "10000010100001000000000000000000001000010000000000000000000000000001000000000000000000000000000",
			sk.BC:     "00110100000000001011000000001100000000000010000000000011000000000010000100100001000100000000000",
			sk.Dot:    "00000000000000000000000000000000000000001000000000000000001000010000000000001011000100000000000",
			sk.U:      "00000000000000000000001000000000100000000000000010000000001000000000000000000000000000000000000",
		},
		Counts: [4]string{
			"11000000000001000000011000000000000000010101101110010000000000000000011100111100000000100110100",
			"01110011110100001001100000101010011011101010010001000111101110011000000001000011111100001000000",
			"01001100000010110110000001010101100100000000000000000000010001100011000010000000000001010000000",
			"00000000001000000000000110000000000000000000000000100000000000000100000000000000000000000000000",
		},
		PadHeight: alphabet.DefaultPadHeight,
	}
}

func init() {
	alphabet.MustRegister(alphabet.Module{
		Config:   Config(),
		Verifier: Verifiers(),
		Tags: []language.Tag{
			language.English, language.German, language.French,
			language.Spanish, language.Italian, language.Dutch,
		},
	})
}
