package plot

import (
	"math"

	"argand/cplx"

	"tinygo.org/x/tinyfont"
)

const (
	minScale = 1e-3
	maxScale = 1e6

	// Projected coordinates beyond this are treated as off-plane so that
	// line drawing stays bounded.
	maxCoord = 1 << 15
)

// Font is used for point labels.
var Font tinyfont.Fonter = &tinyfont.TomThumb

// Plane is a viewport onto the complex plane.
type Plane struct {
	Center cplx.Complex
	Scale  float32 // pixels per unit
	W, H   int
}

func NewPlane(w, h int, scale float32) *Plane {
	p := &Plane{W: w, H: h}
	p.SetScale(scale)
	return p
}

// Project maps z to pixel coordinates. ok is false for non-finite values or
// points too far outside the viewport to draw.
func (p *Plane) Project(z cplx.Complex) (x, y int, ok bool) {
	d := z.Sub(p.Center).MulReal(p.Scale)
	fx := math.Round(float64(d.Real()))
	fy := math.Round(float64(d.Imag()))
	if math.IsNaN(fx) || math.IsNaN(fy) || math.Abs(fx) > maxCoord || math.Abs(fy) > maxCoord {
		return 0, 0, false
	}
	return p.W/2 + int(fx), p.H/2 - int(fy), true
}

// Unproject maps a pixel back to the complex value at its position.
func (p *Plane) Unproject(x, y int) cplx.Complex {
	d := cplx.New(float32(x-p.W/2), float32(p.H/2-y))
	return p.Center.Add(d.DivReal(p.Scale))
}

func (p *Plane) Pan(d cplx.Complex) { p.Center.AddAssign(d) }

// Zoom multiplies the scale by f, keeping the center fixed.
func (p *Plane) Zoom(f float32) {
	if f <= 0 || math.IsNaN(float64(f)) {
		return
	}
	p.SetScale(p.Scale * f)
}

func (p *Plane) SetScale(s float32) {
	if math.IsNaN(float64(s)) || s < minScale {
		s = minScale
	}
	if s > maxScale {
		s = maxScale
	}
	p.Scale = s
}

// DrawAxes draws the real and imaginary axes with a tick at every unit when
// ticks are at least 8 pixels apart.
func (p *Plane) DrawAxes(t Target, c Color) {
	ox, oy, ok := p.Project(0)
	if !ok {
		return
	}
	if oy >= 0 && oy < p.H {
		for x := 0; x < p.W; x++ {
			t.SetPixel(x, oy, c)
		}
	}
	if ox >= 0 && ox < p.W {
		for y := 0; y < p.H; y++ {
			t.SetPixel(ox, y, c)
		}
	}
	if p.Scale < 8 {
		return
	}

	lo := p.Unproject(0, p.H)
	hi := p.Unproject(p.W, 0)
	for _, k := range unitSteps(lo.Real(), hi.Real(), p.W) {
		x, _, ok := p.Project(cplx.FromReal(k))
		if !ok {
			continue
		}
		t.SetPixel(x, oy-1, c)
		t.SetPixel(x, oy+1, c)
	}
	for _, k := range unitSteps(lo.Imag(), hi.Imag(), p.H) {
		_, y, ok := p.Project(cplx.I.MulReal(k))
		if !ok {
			continue
		}
		t.SetPixel(ox-1, y, c)
		t.SetPixel(ox+1, y, c)
	}
}

// unitSteps returns the integers in [lo, hi], capped at n entries.
func unitSteps(lo, hi float32, n int) []float32 {
	var out []float32
	for k := float32(math.Ceil(float64(lo))); k <= hi && len(out) < n; k++ {
		if k+1 == k {
			break
		}
		out = append(out, k)
	}
	return out
}

// DrawPoint draws a 3x3 marker at z.
func (p *Plane) DrawPoint(t Target, z cplx.Complex, c Color) {
	x, y, ok := p.Project(z)
	if !ok {
		return
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			t.SetPixel(x+dx, y+dy, c)
		}
	}
}

// DrawVector draws a straight segment from a to b.
func (p *Plane) DrawVector(t Target, a, b cplx.Complex, c Color) {
	x0, y0, ok0 := p.Project(a)
	x1, y1, ok1 := p.Project(b)
	if !ok0 || !ok1 {
		return
	}
	drawLine(t, x0, y0, x1, y1, c)
}

// DrawLabel writes z's algebraic form to the upper right of its marker.
func (p *Plane) DrawLabel(t Target, z cplx.Complex, c Color) {
	x, y, ok := p.Project(z)
	if !ok {
		return
	}
	p.DrawText(t, x+3, y-3, z.String(), c)
}

// DrawText writes s with its baseline at (x, y).
func (p *Plane) DrawText(t Target, x, y int, s string, c Color) {
	tinyfont.WriteLine(NewDisplay(t), Font, int16(x), int16(y), s, c.ToRGBA())
}

// TextWidth returns the rendered width of s in pixels.
func TextWidth(s string) int {
	_, w := tinyfont.LineWidth(Font, s)
	return int(w)
}

func drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
