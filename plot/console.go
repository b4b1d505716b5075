package plot

import (
	"image/color"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Console)(nil)

// Console is an off-screen pixel surface for a text terminal. It keeps its
// own buffer and emulates a panel's vertical scroll register: SetScroll picks
// the buffer row shown at the top, and Blit copies the surface in that order.
type Console struct {
	w, h   int
	pix    []Color
	scroll int
}

func NewConsole(w, h int) *Console {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Console{w: w, h: h, pix: make([]Color, w*h)}
}

func (c *Console) Size() (x, y int16) { return int16(c.w), int16(c.h) }

func (c *Console) SetPixel(x, y int16, col color.RGBA) {
	if int(x) < 0 || int(y) < 0 || int(x) >= c.w || int(y) >= c.h {
		return
	}
	c.pix[int(y)*c.w+int(x)] = fromRGBA(col)
}

// Display is a no-op; Blit moves the pixels.
func (c *Console) Display() error { return nil }

func (c *Console) FillRectangle(x, y, width, height int16, col color.RGBA) error {
	fill := fromRGBA(col)
	x0, y0 := max(int(x), 0), max(int(y), 0)
	x1, y1 := min(int(x)+int(width), c.w), min(int(y)+int(height), c.h)
	for yy := y0; yy < y1; yy++ {
		row := c.pix[yy*c.w : (yy+1)*c.w]
		for xx := x0; xx < x1; xx++ {
			row[xx] = fill
		}
	}
	return nil
}

func (c *Console) SetScroll(line int16) {
	if c.h == 0 {
		return
	}
	c.scroll = ((int(line) % c.h) + c.h) % c.h
}

func (c *Console) SetRotation(drivers.Rotation) error { return nil }

// Blit draws the console onto t with its top-left corner at (x0, y0).
func (c *Console) Blit(t Target, x0, y0 int) {
	for y := 0; y < c.h; y++ {
		src := (y + c.scroll) % c.h
		row := c.pix[src*c.w : (src+1)*c.w]
		for x, col := range row {
			t.SetPixel(x0+x, y0+y, col)
		}
	}
}
