package app

import (
	"math"

	"argand/cplx"
	"argand/plot"
)

// scene is one of the viewer modes.
type scene interface {
	// view returns the initial viewport for a w x h target.
	view(w, h int) *plot.Plane
	// advance moves an animated scene forward; it reports whether anything changed.
	advance() bool
	// draw paints the background layer, under the axes.
	draw(t plot.Target, p *plot.Plane)
	// drawOverlay paints vectors, markers and labels over the axes.
	drawOverlay(t plot.Target, p *plot.Plane)
}

const (
	defaultOrbitSteps = 48
	defaultMandelIter = 32
	defaultRoots      = 8
	maxRoots          = 360
	circleSegments    = 64
)

var (
	colorCircle = plot.RGB(0x24, 0x24, 0x40)
	colorVector = plot.RGB(0x4a, 0xdf, 0x6a)
	colorPath   = plot.RGB(0x2a, 0x7f, 0x3a)
	colorPoint  = plot.RGB(0xff, 0xdd, 0x66)
	colorLabel  = plot.RGB(0xee, 0xee, 0xee)
	colorInside = plot.RGB(0x10, 0x10, 0x30)
	colorEscape = plot.RGB(0x66, 0xaa, 0xff)
)

func newScene(m Mode, cfg Config, v *viewer) scene {
	switch m {
	case ModeMandel:
		return newMandelScene(cfg.Steps, v.logf)
	case ModeRoots:
		return newRootsScene(cfg.Z, cfg.Steps, v.logf)
	default:
		return newOrbitScene(cfg.Z, cfg.Steps, v.logf)
	}
}

func fitScale(w, h int, units float32) float32 {
	return float32(min(w, h)) / (2 * units)
}

// unitRoot returns exp(2πik/n).
func unitRoot(k, n int) cplx.Complex {
	theta := 2 * math.Pi * float64(k) / float64(n)
	return cplx.New(float32(math.Cos(theta)), float32(math.Sin(theta)))
}

func drawUnitCircle(t plot.Target, p *plot.Plane) {
	prev := unitRoot(0, circleSegments)
	for k := 1; k <= circleSegments; k++ {
		next := unitRoot(k, circleSegments)
		p.DrawVector(t, prev, next, colorCircle)
		prev = next
	}
}

// orbitScene plots the successive powers z^0, z^1, ... z^steps.
type orbitScene struct {
	z      cplx.Complex
	w      cplx.Complex
	steps  int
	points []cplx.Complex
	logf   func(string, ...any)
}

func newOrbitScene(z cplx.Complex, steps int, logf func(string, ...any)) *orbitScene {
	if steps <= 0 {
		steps = defaultOrbitSteps
	}
	s := &orbitScene{z: z, w: 1, steps: steps, logf: logf}
	s.advance()
	return s
}

func (s *orbitScene) view(w, h int) *plot.Plane {
	return plot.NewPlane(w, h, fitScale(w, h, 2.5))
}

func (s *orbitScene) advance() bool {
	if len(s.points) > s.steps {
		return false
	}
	s.logf("orbit: z^%d = %v", len(s.points), s.w)
	s.points = append(s.points, s.w)
	s.w.MulAssign(s.z)
	return true
}

func (s *orbitScene) draw(plot.Target, *plot.Plane) {}

func (s *orbitScene) drawOverlay(t plot.Target, p *plot.Plane) {
	drawUnitCircle(t, p)
	for i := 1; i < len(s.points); i++ {
		p.DrawVector(t, s.points[i-1], s.points[i], colorPath)
	}
	for _, pt := range s.points {
		p.DrawPoint(t, pt, colorPoint)
	}
	if n := len(s.points); n > 0 {
		last := s.points[n-1]
		p.DrawVector(t, 0, last, colorVector)
		p.DrawLabel(t, last, colorLabel)
	}
}

// mandelScene renders the escape time of z <- z*z + c.
type mandelScene struct {
	iter int
	logf func(string, ...any)
}

func newMandelScene(iter int, logf func(string, ...any)) *mandelScene {
	if iter <= 0 {
		iter = defaultMandelIter
	}
	return &mandelScene{iter: iter, logf: logf}
}

func (s *mandelScene) view(w, h int) *plot.Plane {
	p := plot.NewPlane(w, h, fitScale(w, h, 1.6))
	p.Center = cplx.New(-0.5, 0)
	return p
}

func (s *mandelScene) advance() bool { return false }

func (s *mandelScene) draw(t plot.Target, p *plot.Plane) {
	w, h := t.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := escapeTime(p.Unproject(x, y), s.iter)
			if n >= s.iter {
				t.SetPixel(x, y, colorInside)
				continue
			}
			t.SetPixel(x, y, colorEscape.Scale(float32(n+1)/float32(s.iter)))
		}
	}
	s.logf("mandel: %dx%d center=%v scale=%g iter=%d", w, h, p.Center, p.Scale, s.iter)
}

func (s *mandelScene) drawOverlay(plot.Target, *plot.Plane) {}

// escapeTime returns the first n at which |z| exceeds 2, or limit if it never does.
func escapeTime(c cplx.Complex, limit int) int {
	var z cplx.Complex
	for n := 0; n < limit; n++ {
		z = z.Mul(z).Add(c)
		if z.LengthSquared() > 4 {
			return n
		}
	}
	return limit
}

// rootsScene shows the n-th roots of unity rotated by z/|z|.
type rootsScene struct {
	roots []cplx.Complex
}

func newRootsScene(z cplx.Complex, n int, logf func(string, ...any)) *rootsScene {
	if n <= 0 {
		n = defaultRoots
	}
	if n > maxRoots {
		n = maxRoots
	}

	u := cplx.Complex(1)
	if l := z.Length(); l > 0 && !math.IsInf(float64(l), 0) {
		u = z.DivReal(l)
	}

	s := &rootsScene{roots: make([]cplx.Complex, n)}
	for k := range s.roots {
		s.roots[k] = unitRoot(k, n).Mul(u)
		logf("roots: w%d = %v arg=%.2f°", k, s.roots[k], degrees(s.roots[k].Angle()))
	}
	if n > 1 {
		a, b := s.roots[0], s.roots[1]
		cos := a.Dot(b) / (a.Length() * b.Length())
		logf("roots: n=%d spacing=%.2f°", n, degrees(float32(math.Acos(float64(clamp(cos, -1, 1))))))
	}
	return s
}

func (s *rootsScene) view(w, h int) *plot.Plane {
	return plot.NewPlane(w, h, fitScale(w, h, 1.5))
}

func (s *rootsScene) advance() bool { return false }

func (s *rootsScene) draw(plot.Target, *plot.Plane) {}

func (s *rootsScene) drawOverlay(t plot.Target, p *plot.Plane) {
	drawUnitCircle(t, p)
	for _, r := range s.roots {
		p.DrawVector(t, 0, r, colorVector)
		p.DrawPoint(t, r, colorPoint)
	}
	if len(s.roots) <= 12 {
		for _, r := range s.roots {
			p.DrawLabel(t, r, colorLabel)
		}
	}
}

func degrees(rad float32) float32 { return rad * 180 / math.Pi }

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
