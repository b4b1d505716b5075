package plot

import (
	"math"
	"testing"

	"argand/cplx"
)

func newTarget(w, h int) *RGB565Target {
	return &RGB565Target{Buf: make([]byte, w*h*2), Stride: w * 2, W: w, H: h}
}

func countColored(t *RGB565Target, x0, y0, x1, y1 int) int {
	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if t.At(x, y) != RGB(0, 0, 0) {
				n++
			}
		}
	}
	return n
}

func TestRGB565TargetRoundTrip(t *testing.T) {
	tg := newTarget(4, 3)
	tg.Clear(RGB(0xff, 0xff, 0xff))
	if got := tg.At(3, 2); got != RGB(0xff, 0xff, 0xff) {
		t.Fatalf("after clear=%v", got)
	}
	tg.SetPixel(1, 1, RGB(0xff, 0, 0))
	if got := tg.At(1, 1); got != RGB(0xff, 0, 0) {
		t.Fatalf("red=%v", got)
	}

	// Clipped writes are ignored.
	tg.SetPixel(-1, 0, RGB(0, 0, 0))
	tg.SetPixel(4, 0, RGB(0, 0, 0))
	if got := tg.At(0, 0); got != RGB(0xff, 0xff, 0xff) {
		t.Fatalf("clip leaked: %v", got)
	}
	if got := tg.At(9, 9); got != (Color{}) {
		t.Fatalf("out-of-bounds read=%v", got)
	}
}

func TestProjectUnproject(t *testing.T) {
	p := NewPlane(100, 100, 10)
	x, y, ok := p.Project(cplx.New(1, 1))
	if !ok || x != 60 || y != 40 {
		t.Fatalf("Project(1+i)=(%d,%d,%v)", x, y, ok)
	}
	if z := p.Unproject(60, 40); z != cplx.New(1, 1) {
		t.Fatalf("Unproject=%v", z)
	}

	p.Pan(cplx.New(1, 1))
	if x, y, _ := p.Project(cplx.New(1, 1)); x != 50 || y != 50 {
		t.Fatalf("after pan=(%d,%d)", x, y)
	}

	nan := float32(math.NaN())
	if _, _, ok := p.Project(cplx.New(nan, 0)); ok {
		t.Fatal("NaN projected")
	}
	if _, _, ok := p.Project(cplx.FromReal(float32(math.Inf(1)))); ok {
		t.Fatal("Inf projected")
	}
}

func TestZoomClamps(t *testing.T) {
	p := NewPlane(10, 10, 10)
	p.Zoom(2)
	if p.Scale != 20 {
		t.Fatalf("scale=%v", p.Scale)
	}
	p.Zoom(0)
	p.Zoom(-1)
	if p.Scale != 20 {
		t.Fatalf("invalid zoom changed scale to %v", p.Scale)
	}
	p.Zoom(1e12)
	if p.Scale != maxScale {
		t.Fatalf("scale=%v, want %v", p.Scale, float32(maxScale))
	}
	p.SetScale(0)
	if p.Scale != minScale {
		t.Fatalf("scale=%v, want %v", p.Scale, float32(minScale))
	}
}

func TestDrawPrimitives(t *testing.T) {
	tg := newTarget(64, 64)
	p := NewPlane(64, 64, 10)
	white := RGB(0xff, 0xff, 0xff)

	p.DrawAxes(tg, white)
	if tg.At(0, 32) != white || tg.At(32, 0) != white {
		t.Fatal("axes missing")
	}
	// Unit tick above the real axis at x=42.
	if tg.At(42, 31) != white {
		t.Fatal("tick missing")
	}

	tg.Clear(RGB(0, 0, 0))
	p.DrawPoint(tg, cplx.New(-1, 1), white)
	if n := countColored(tg, 0, 0, 64, 64); n != 9 {
		t.Fatalf("point pixels=%d, want 9", n)
	}

	tg.Clear(RGB(0, 0, 0))
	p.DrawVector(tg, 0, cplx.New(2, 0), white)
	if n := countColored(tg, 0, 0, 64, 64); n != 21 {
		t.Fatalf("vector pixels=%d, want 21", n)
	}
	if tg.At(32, 32) != white || tg.At(52, 32) != white {
		t.Fatal("vector endpoints missing")
	}
}

func TestDrawLabel(t *testing.T) {
	tg := newTarget(64, 64)
	p := NewPlane(64, 64, 10)
	z := cplx.New(1, 1)

	p.DrawLabel(tg, z, RGB(0xff, 0xff, 0xff))
	x, y, _ := p.Project(z)
	w := TextWidth(z.String())
	if w <= 0 {
		t.Fatalf("width=%d", w)
	}
	if n := countColored(tg, x+3, y-3-8, x+3+w+1, y); n == 0 {
		t.Fatal("label not drawn")
	}
}

func TestDisplaySize(t *testing.T) {
	d := NewDisplay(newTarget(12, 7))
	if w, h := d.Size(); w != 12 || h != 7 {
		t.Fatalf("size=%dx%d", w, h)
	}
	if err := d.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}
}

func TestConsoleScrollAndFill(t *testing.T) {
	c := NewConsole(4, 4)
	red := RGB(0xff, 0, 0)
	if err := c.FillRectangle(-2, 0, 10, 1, red.ToRGBA()); err != nil {
		t.Fatalf("FillRectangle: %v", err)
	}

	tg := newTarget(4, 6)
	c.Blit(tg, 0, 2)
	if n := countColored(tg, 0, 0, 4, 6); n != 4 {
		t.Fatalf("colored=%d, want one clipped row of 4", n)
	}
	if tg.At(0, 2) != red || tg.At(3, 2) != red {
		t.Fatalf("row 0 not at y=2")
	}

	// Scrolling by one row moves buffer row 0 to the bottom.
	c.SetScroll(1)
	tg = newTarget(4, 4)
	c.Blit(tg, 0, 0)
	if tg.At(0, 3) != red || tg.At(0, 0) == red {
		t.Fatalf("scroll=1: top=%v bottom=%v", tg.At(0, 0), tg.At(0, 3))
	}
	c.SetScroll(-3)
	tg = newTarget(4, 4)
	c.Blit(tg, 0, 0)
	if tg.At(0, 3) != red {
		t.Fatalf("scroll=-3 should wrap to 1")
	}
}
