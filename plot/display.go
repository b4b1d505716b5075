package plot

import (
	"image/color"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Display)(nil)

// Display adapts a Target to drivers.Displayer.
type Display struct {
	t Target
}

func NewDisplay(t Target) *Display {
	return &Display{t: t}
}

func (d *Display) Size() (x, y int16) {
	if d.t == nil {
		return 0, 0
	}
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	if d.t == nil {
		return
	}
	d.t.SetPixel(int(x), int(y), fromRGBA(c))
}

// Display is a no-op; the owner of the Target presents it.
func (d *Display) Display() error { return nil }
