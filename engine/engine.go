/*
Package engine is the interface between a pen input layer and the
recognizer.

An Engine is initialized with an alphabet once. Afterwards clients begin
characters, submit strokes for them and reset or end them:

	eng := engine.New()
	if err := eng.InitializeAlphabet(latin.Config(), latin.Verifiers()); err != nil {
		…
	}
	h, _ := eng.BeginCharacter()
	defer eng.EndCharacter(h)
	for _, points := range strokes {
		r, ok, cands, _ := eng.SubmitStroke(h, points)
		…
	}

An engine may serve many characters concurrently, e.g. for multiple input
fields. Each character must be driven by one goroutine at a time. The
candidate table of the alphabet is built once and shared read-only between
all characters.

BSD License

Please refer to the License file in the root directory of this module.
*/
package engine

import (
	"sync"

	"github.com/google/uuid"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/skiggle"
	"github.com/npillmayer/skiggle/alphabet"
	"github.com/npillmayer/skiggle/candidates"
	"github.com/npillmayer/skiggle/character"
	"github.com/npillmayer/skiggle/segment"
	"github.com/pkg/errors"
)

// tracer traces with key 'skiggle.engine'.
func tracer() tracing.Trace {
	return tracing.Select("skiggle.engine")
}

// ErrNoAlphabet is returned by operations on an engine without an alphabet.
var ErrNoAlphabet = errors.New("engine has no alphabet")

// ErrUnknownHandle is returned for handles which have not been returned by
// BeginCharacter or which have already been ended.
var ErrUnknownHandle = errors.New("unknown character handle")

// Handle identifies a character-in-progress.
type Handle uuid.UUID

func (h Handle) String() string {
	return uuid.UUID(h).String()
}

// Engine manages characters-in-progress for an alphabet.
type Engine struct {
	mu         sync.RWMutex
	opts       []character.Option
	alphabet   string
	table      *candidates.Table
	pool       *characterPool
	characters map[Handle]pooled
}

// pooled is a character together with the pool it has been borrowed from.
type pooled struct {
	c    *character.Character
	pool *characterPool
}

// Option configures an engine.
type Option func(*Engine)

// WithParams sets the parameters of the segment classifier.
func WithParams(p segment.Params) Option {
	return func(e *Engine) {
		e.opts = append(e.opts, character.WithParams(p))
	}
}

// WithCancelRatio sets the threshold for cancel gestures.
func WithCancelRatio(ratio float64) Option {
	return func(e *Engine) {
		e.opts = append(e.opts, character.WithCancelRatio(ratio))
	}
}

// WithPadHeight sets the height of the writing pad. If not set, the pad
// height of the alphabet configuration is used.
func WithPadHeight(h float64) Option {
	return func(e *Engine) {
		e.opts = append(e.opts, character.WithPadHeight(h))
	}
}

// New creates an engine without an alphabet.
func New(opts ...Option) *Engine {
	e := &Engine{characters: make(map[Handle]pooled)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// InitializeAlphabet sets the alphabet of the engine. The configuration is
// validated and the candidate table is built once. Characters begun before
// keep their former alphabet.
func (e *Engine) InitializeAlphabet(config alphabet.Config, verifier skiggle.Verifier) error {
	if verifier == nil {
		return errors.Errorf("alphabet %q has no verifier", config.Name)
	}
	config = config.Normalized()
	table, err := config.Table()
	if err != nil {
		return errors.Wrap(err, "cannot initialize alphabet")
	}
	opts := append([]character.Option{character.WithPadHeight(config.PadHeight)}, e.opts...)
	// check options once, instead of failing on every BeginCharacter
	if _, err = character.New(table, verifier, opts...); err != nil {
		return errors.Wrap(err, "cannot initialize alphabet")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.alphabet = config.Name
	e.table = table
	e.pool = newCharacterPool(table, verifier, opts)
	tracer().Infof("engine initialized with alphabet %q (%d runes)", config.Name, table.Len())
	return nil
}

// Alphabet returns the name of the engine's alphabet.
func (e *Engine) Alphabet() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.alphabet
}

// Table returns the candidate table of the engine's alphabet, or nil if the
// engine has not been initialized.
func (e *Engine) Table() *candidates.Table {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.table
}

// BeginCharacter allocates a new character-in-progress.
func (e *Engine) BeginCharacter() (Handle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pool == nil {
		return Handle{}, ErrNoAlphabet
	}
	c, err := e.pool.borrow()
	if err != nil {
		return Handle{}, err
	}
	h := Handle(uuid.New())
	e.characters[h] = pooled{c: c, pool: e.pool}
	tracer().Debugf("begin character %v", h)
	return h, nil
}

// SubmitStroke adds a finished pen gesture to a character and returns the
// current best match and the candidate string. A cancel gesture resets the
// character and returns no match.
func (e *Engine) SubmitStroke(h Handle, points []skiggle.Point) (rune, bool, string, error) {
	c, err := e.lookup(h)
	if err != nil {
		return 0, false, "", err
	}
	res, err := c.Submit(points)
	if err != nil {
		return 0, false, "", err
	}
	return res.Matched, res.OK, res.Candidates, nil
}

// Submit is like SubmitStroke, but returns the full result.
func (e *Engine) Submit(h Handle, points []skiggle.Point) (character.Result, error) {
	c, err := e.lookup(h)
	if err != nil {
		return character.Result{}, err
	}
	return c.Submit(points)
}

// ResetCharacter clears a character for reuse.
func (e *Engine) ResetCharacter(h Handle) error {
	c, err := e.lookup(h)
	if err != nil {
		return err
	}
	c.Reset()
	return nil
}

// EndCharacter releases a character. The handle is invalid afterwards.
func (e *Engine) EndCharacter(h Handle) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	p, ok := e.characters[h]
	if !ok {
		return errors.Wrapf(ErrUnknownHandle, "handle %v", h)
	}
	delete(e.characters, h)
	tracer().Debugf("end character %v", h)
	return p.pool.release(p.c)
}

// Character returns the character-in-progress for a handle, e.g., for
// diagnostics.
func (e *Engine) Character(h Handle) (*character.Character, error) {
	return e.lookup(h)
}

func (e *Engine) lookup(h Handle) (*character.Character, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	p, ok := e.characters[h]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownHandle, "handle %v", h)
	}
	return p.c, nil
}
