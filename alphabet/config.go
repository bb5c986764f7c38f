/*
Package alphabet holds alphabet configurations and a registry of alphabet
modules.

An alphabet configuration is pure data: a string of runes, one bit string
per primitive shape and one bit string per segment count. Position i of a
bit string tells whether rune i of the alphabet contains the shape (or
consists of that many segments, respectively). The order of runes in the
alphabet is significant: recognition reports the first candidate, in
alphabet order, which passes verification. Alphabets are therefore
conventionally sorted by frequency of use.

Alphabet modules bundle a configuration with the verifiers for its
characters. Modules register themselves, usually in an init function:

	func init() {
		alphabet.MustRegister(alphabet.Module{
			Config:   config,
			Verifier: verifiers,
			Tags:     []language.Tag{language.English},
		})
	}

Clients select modules either by name or by a user's locale.

BSD License

Please refer to the License file in the root directory of this module.
*/
package alphabet

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/skiggle"
	"github.com/npillmayer/skiggle/candidates"
	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

// tracer traces with key 'skiggle.alphabet'.
func tracer() tracing.Trace {
	return tracing.Select("skiggle.alphabet")
}

// DefaultPadHeight is the height of the writing pad assumed for size
// heuristics, if a configuration does not specify one.
const DefaultPadHeight = 480

// Config is the configuration of an alphabet.
type Config struct {
	Name      string                         // name of the alphabet, e.g. "latin"
	Alphabet  string                         // runes in priority order
	Shapes    map[skiggle.ShapeCode]string   // bit string per primitive shape
	Counts    [candidates.MaxSegments]string // bit strings for 1…4 segments
	PadHeight float64                        // writing pad height for size heuristics
}

// Normalized returns a copy of c with its alphabet in Unicode normalization
// form NFC, and a default pad height if none is set.
func (c Config) Normalized() Config {
	n := c
	n.Alphabet = norm.NFC.String(c.Alphabet)
	if n.PadHeight <= 0 {
		n.PadHeight = DefaultPadHeight
	}
	return n
}

// Validate checks a configuration for consistency. It reports the first
// problem found.
func (c Config) Validate() error {
	if c.Name == "" {
		return errors.New("alphabet has no name")
	}
	runes := []rune(c.Alphabet)
	if len(runes) == 0 {
		return errors.Errorf("alphabet %q is empty", c.Name)
	}
	seen := make(map[rune]int, len(runes))
	for i, r := range runes {
		if j, dup := seen[r]; dup {
			return errors.Errorf("alphabet %q: rune %q at positions %d and %d", c.Name, r, j, i)
		}
		seen[r] = i
	}
	for _, sc := range skiggle.Shapes {
		if _, ok := c.Shapes[sc]; !ok {
			return errors.Errorf("alphabet %q: missing bit string for shape %v", c.Name, sc)
		}
	}
	for i, bits := range c.Counts {
		if bits == "" {
			return errors.Errorf("alphabet %q: missing bit string for %d segments", c.Name, i+1)
		}
	}
	if _, err := c.table(); err != nil {
		return errors.Wrapf(err, "alphabet %q", c.Name)
	}
	return nil
}

// Table validates c and creates the candidate table for it.
func (c Config) Table() (*candidates.Table, error) {
	if err := c.Validate(); err != nil {
		tracer().Errorf("rejected alphabet configuration: %v", err)
		return nil, err
	}
	return c.table()
}

func (c Config) table() (*candidates.Table, error) {
	return candidates.NewTable(c.Alphabet, c.Shapes, c.Counts)
}
