package main

import (
	"os"
	"strings"

	"github.com/abiosoft/ishell"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/skiggle"
	"github.com/npillmayer/skiggle/alphabet"
	"github.com/npillmayer/skiggle/engine"
	"github.com/npillmayer/skiggle/internal/inkfile"
	"github.com/npillmayer/skiggle/internal/render"
	flag "github.com/ogier/pflag"
	"github.com/pkg/errors"
)

// console holds the state of an interactive session: an engine and the
// character currently written.
type console struct {
	eng *engine.Engine
	pad float64
	h   engine.Handle
}

func consoleCmd(conf schuko.Configuration, args []string) error {
	eng, pad, err := newEngine(conf)
	if err != nil {
		return err
	}
	con := &console{eng: eng, pad: pad}
	if con.h, err = eng.BeginCharacter(); err != nil {
		return err
	}
	shell := ishell.New()
	shell.Println("Skiggle console, alphabet " + eng.Alphabet())
	for _, cmd := range con.commands() {
		shell.AddCmd(cmd)
	}
	shell.Run()
	return eng.EndCharacter(con.h)
}

func (con *console) commands() []*ishell.Cmd {
	return []*ishell.Cmd{
		{
			Name:     "stroke",
			Help:     "submit a stroke, e.g. stroke 100,100 300,100",
			LongHelp: "Usage: stroke x,y x,y …\n\nAdds a stroke to the current character and recognizes it.",
			Func:     con.stroke,
		},
		{Name: "reset", Help: "clear the current character", Func: con.reset},
		{Name: "show", Help: "show the segments of the current character", Func: con.show},
		{Name: "alphabet", Help: "show or switch the alphabet", Func: con.switchAlphabet},
		{Name: "members", Help: "list the characters containing all given shapes, e.g. members - /", Func: con.members},
		{Name: "save", Help: "append the current character to an ink file: save [-c comment] file char", Func: con.save},
		{Name: "render", Help: "render the current character to a PNG file: render file", Func: con.renderPNG},
	}
}

func (con *console) stroke(c *ishell.Context) {
	points, err := inkfile.ParseStroke(strings.Join(c.Args, " "))
	if err != nil {
		c.Err(err)
		return
	}
	res, err := con.eng.Submit(con.h, points)
	if err != nil {
		c.Err(err)
		return
	}
	if res.Cancelled {
		c.Println("cancelled")
		return
	}
	shapes := make([]string, len(res.Shapes))
	for i, sc := range res.Shapes {
		shapes[i] = string(sc.Glyph())
	}
	if res.OK {
		c.Printf("%q  candidates %q  shapes %s\n", res.Matched, res.Candidates, strings.Join(shapes, " "))
	} else {
		c.Printf("no match  candidates %q  shapes %s\n", res.Candidates, strings.Join(shapes, " "))
	}
}

func (con *console) reset(c *ishell.Context) {
	if err := con.eng.ResetCharacter(con.h); err != nil {
		c.Err(err)
	}
}

func (con *console) show(c *ishell.Context) {
	ch, err := con.eng.Character(con.h)
	if err != nil {
		c.Err(err)
		return
	}
	c.Println(ch.Describe())
	for i, seg := range ch.Segments() {
		c.Printf("#%d %v\n", i+1, seg)
	}
}

func (con *console) switchAlphabet(c *ishell.Context) {
	if len(c.Args) == 0 {
		c.Printf("%s (available: %s)\n", con.eng.Alphabet(), strings.Join(alphabet.Names(), ", "))
		return
	}
	m, ok := alphabet.Lookup(c.Args[0])
	if !ok {
		c.Err(errors.Errorf("unknown alphabet %q", c.Args[0]))
		return
	}
	if err := con.eng.InitializeAlphabet(m.Config, m.Verifier); err != nil {
		c.Err(err)
		return
	}
	// the current character keeps the former alphabet
	con.eng.EndCharacter(con.h)
	h, err := con.eng.BeginCharacter()
	if err != nil {
		c.Err(err)
		return
	}
	con.h, con.pad = h, m.Config.PadHeight
}

func (con *console) members(c *ishell.Context) {
	if len(c.Args) == 0 {
		c.Err(errors.New("usage: members shape …"))
		return
	}
	shapes := make([]skiggle.ShapeCode, len(c.Args))
	for i, arg := range c.Args {
		sc, ok := skiggle.ShapeFromString(arg)
		if !ok {
			c.Err(errors.Errorf("unknown shape %q", arg))
			return
		}
		shapes[i] = sc
	}
	c.Printf("%q\n", con.eng.Table().Containing(shapes))
}

func (con *console) save(c *ishell.Context) {
	flagSet := flag.NewFlagSet("save", flag.ContinueOnError)
	comment := flagSet.StringP("comment", "c", "", "comment to append to the record")
	if err := flagSet.Parse(c.Args); err != nil {
		if err != flag.ErrHelp {
			c.Err(err)
		}
		return
	}
	args := flagSet.Args()
	if len(args) != 2 {
		c.Err(errors.New("usage: save [-c comment] file char"))
		return
	}
	ch, err := con.eng.Character(con.h)
	if err != nil {
		c.Err(err)
		return
	}
	rec := inkfile.Record{Char: []rune(args[1])[0], Comment: *comment}
	for _, s := range ch.Strokes() {
		rec.Strokes = append(rec.Strokes, s.Points())
	}
	f, err := os.OpenFile(args[0], os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		c.Err(err)
		return
	}
	if err = inkfile.Write(f, rec); err != nil {
		f.Close()
		c.Err(err)
		return
	}
	if err = f.Close(); err != nil {
		c.Err(err)
	}
}

func (con *console) renderPNG(c *ishell.Context) {
	if len(c.Args) != 1 {
		c.Err(errors.New("usage: render file"))
		return
	}
	ch, err := con.eng.Character(con.h)
	if err != nil {
		c.Err(err)
		return
	}
	f, err := os.Create(c.Args[0])
	if err != nil {
		c.Err(err)
		return
	}
	d := render.Drawing{Segments: ch.Segments(), PadHeight: con.pad, Title: ch.Describe()}
	if err = render.WritePNG(f, d); err != nil {
		f.Close()
		c.Err(err)
		return
	}
	if err = f.Close(); err != nil {
		c.Err(err)
	}
}
