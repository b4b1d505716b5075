package app

import (
	"errors"
	"fmt"

	"argand/cplx"
	"argand/hal"
	"argand/plot"
)

var (
	// ErrUnknownMode is returned by New for a Config.Mode it does not know.
	ErrUnknownMode = errors.New("unknown mode")
	// ErrQuit is returned by the step function when the user asks to leave.
	ErrQuit = errors.New("quit")
)

// Mode selects the scene shown on the plane.
type Mode string

const (
	ModeOrbit  Mode = "orbit"
	ModeMandel Mode = "mandel"
	ModeRoots  Mode = "roots"
)

var modes = []Mode{ModeOrbit, ModeMandel, ModeRoots}

// Config is the viewer configuration.
type Config struct {
	Mode Mode
	// Z is the orbit generator and the rotation applied to roots of unity.
	Z cplx.Complex
	// Steps is the orbit length, the Mandelbrot iteration limit or the root
	// count, depending on Mode. Zero selects a per-mode default.
	Steps int
}

const (
	// advancePace is the number of host ticks between scene advances.
	advancePace = 250
	panPixels   = 20
	zoomStep    = 1.25
)

var (
	colorBG   = plot.RGB(0x00, 0x00, 0x00)
	colorAxis = plot.RGB(0x44, 0x44, 0x44)
	colorHUD  = plot.RGB(0xee, 0xee, 0xee)
)

type viewer struct {
	cfg   Config
	mode  int
	log   hal.Logger
	con   *console
	fb    hal.Framebuffer
	kbd   hal.Keyboard
	ticks <-chan uint64

	target *plot.RGB565Target
	plane  *plot.Plane
	scene  scene

	lastAdvance uint64
	dirty       bool
}

// New builds a viewer on h and returns its per-frame step function.
func New(h hal.HAL, cfg Config) (func() error, error) {
	v, err := newViewer(h, cfg)
	if err != nil {
		return nil, err
	}
	return v.step, nil
}

func newViewer(h hal.HAL, cfg Config) (*viewer, error) {
	if cfg.Mode == "" {
		cfg.Mode = ModeOrbit
	}
	mode := -1
	for i, m := range modes {
		if m == cfg.Mode {
			mode = i
		}
	}
	if mode < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Mode)
	}

	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("app: rgb565 framebuffer: %w", hal.ErrNotImplemented)
	}

	con := newConsole(h.Logger(), fb.Width())
	v := &viewer{
		cfg:  cfg,
		mode: mode,
		log:  con,
		con:  con,
		fb:   fb,
		target: &plot.RGB565Target{
			Buf:    fb.Buffer(),
			Stride: fb.StrideBytes(),
			W:      fb.Width(),
			H:      fb.Height(),
		},
	}
	if in := h.Input(); in != nil {
		v.kbd = in.Keyboard()
	}
	if t := h.Time(); t != nil {
		v.ticks = t.Ticks()
	}
	v.enter(mode)
	return v, nil
}

func (v *viewer) logf(format string, args ...any) {
	if v.log == nil {
		return
	}
	v.log.WriteLineString(fmt.Sprintf(format, args...))
}

// enter switches to modes[i] and resets the view.
func (v *viewer) enter(i int) {
	v.mode = i
	v.logf("mode: %s z=%v", modes[i], v.cfg.Z)
	v.scene = newScene(modes[i], v.cfg, v)
	v.plane = v.scene.view(v.target.W, v.target.H)
	v.dirty = true
}

// setZ replaces the generator and restarts the current scene, keeping the view.
func (v *viewer) setZ(z cplx.Complex) {
	v.cfg.Z = z
	plane := v.plane
	v.enter(v.mode)
	v.plane = plane
}

func (v *viewer) step() error {
	if err := v.handleKeys(); err != nil {
		return err
	}

	if now, ok := v.drainTicks(); ok && now-v.lastAdvance >= advancePace {
		v.lastAdvance = now
		if v.scene.advance() {
			v.dirty = true
		}
	}

	if !v.dirty {
		return nil
	}
	v.dirty = false
	v.render()
	return v.fb.Present()
}

// drainTicks returns the latest pending tick, if any.
func (v *viewer) drainTicks() (uint64, bool) {
	var last uint64
	var ok bool
	for {
		select {
		case seq := <-v.ticks:
			last, ok = seq, true
		default:
			return last, ok
		}
	}
}

func (v *viewer) handleKeys() error {
	if v.kbd == nil {
		return nil
	}
	for {
		select {
		case ev := <-v.kbd.Events():
			if err := v.handleKey(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (v *viewer) handleKey(ev hal.KeyEvent) error {
	if !ev.Press {
		return nil
	}
	unit := float32(panPixels) / v.plane.Scale
	switch ev.Code {
	case hal.KeyUp:
		v.plane.Pan(cplx.I.MulReal(unit))
	case hal.KeyDown:
		v.plane.Pan(cplx.I.MulReal(-unit))
	case hal.KeyLeft:
		v.plane.Pan(cplx.FromReal(-unit))
	case hal.KeyRight:
		v.plane.Pan(cplx.FromReal(unit))
	case hal.KeyEnter:
		v.enter((v.mode + 1) % len(modes))
		return nil
	case hal.KeyEscape:
		return ErrQuit
	default:
		switch ev.Rune {
		case '+', '=':
			v.plane.Zoom(zoomStep)
		case '-', '_':
			v.plane.Zoom(1 / zoomStep)
		case 'r':
			v.plane = v.scene.view(v.target.W, v.target.H)
		case 's':
			v.setZ(v.cfg.Z.Swap())
		case 'n':
			v.setZ(v.cfg.Z.Neg())
		case 'i':
			v.setZ(cplx.FromReal(1).Div(v.cfg.Z))
		case 'c':
			v.con.visible = !v.con.visible
		case 'q':
			return ErrQuit
		default:
			return nil
		}
	}
	v.dirty = true
	return nil
}

func (v *viewer) render() {
	v.target.Clear(colorBG)
	v.scene.draw(v.target, v.plane)
	v.plane.DrawAxes(v.target, colorAxis)
	v.scene.drawOverlay(v.target, v.plane)

	hud := fmt.Sprintf("%s  z=%v", modes[v.mode], v.cfg.Z)
	v.plane.DrawText(v.target, 2, 8, hud, colorHUD)
	center := fmt.Sprintf("c=%v", v.plane.Center)
	v.plane.DrawText(v.target, v.target.W-2-plot.TextWidth(center), 8, center, colorHUD)

	v.con.draw(v.target)
}
