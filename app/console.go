package app

import (
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyterm"

	"argand/hal"
	"argand/plot"
)

const (
	consoleRows       = 5
	consoleFontHeight = 6
	consoleFontOffset = 5
)

// console tees log lines into a tinyterm terminal drawn along the bottom of
// the screen.
type console struct {
	next    hal.Logger
	surface *plot.Console
	term    *tinyterm.Terminal
	visible bool
}

func newConsole(next hal.Logger, width int) *console {
	c := &console{
		next:    next,
		surface: plot.NewConsole(width, consoleRows*consoleFontHeight),
		visible: true,
	}
	c.term = tinyterm.NewTerminal(c.surface)
	c.term.Configure(&tinyterm.Config{
		Font:       &tinyfont.TomThumb,
		FontHeight: consoleFontHeight,
		FontOffset: consoleFontOffset,
	})
	return c
}

func (c *console) WriteLineString(s string) {
	if c.next != nil {
		c.next.WriteLineString(s)
	}
	c.term.Write([]byte(s))
	c.term.Write([]byte("\r\n"))
}

func (c *console) WriteLineBytes(b []byte) {
	if c.next != nil {
		c.next.WriteLineBytes(b)
	}
	c.term.Write(b)
	c.term.Write([]byte("\r\n"))
}

// height is the strip height in pixels, zero while hidden.
func (c *console) height() int {
	if !c.visible {
		return 0
	}
	_, h := c.surface.Size()
	return int(h)
}

func (c *console) draw(t plot.Target) {
	if !c.visible {
		return
	}
	_, th := t.Size()
	c.surface.Blit(t, 0, th-c.height())
}
