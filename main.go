package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"argand/app"
	"argand/cplx"
	"argand/hal"
	"argand/internal/buildinfo"
)

func main() {
	var cfg hal.HeadlessConfig
	var mode string
	var re, im float64
	var steps int
	var version bool
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.StringVar(&mode, "mode", string(app.ModeOrbit), "Scene: orbit, mandel or roots.")
	flag.Float64Var(&re, "re", 0.95, "Real part of z.")
	flag.Float64Var(&im, "im", 0.31, "Imaginary part of z.")
	flag.IntVar(&steps, "steps", 0, "Orbit length, iteration limit or root count (0 = mode default).")
	flag.BoolVar(&version, "version", false, "Print build info and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	appCfg := app.Config{
		Mode:  app.Mode(mode),
		Z:     cplx.New(float32(re), float32(im)),
		Steps: steps,
	}
	newApp := func(h hal.HAL) (func() error, error) {
		return app.New(h, appCfg)
	}

	var err error
	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, newApp, cfg)
	} else {
		err = hal.RunWindow(newApp)
	}
	if err == nil || errors.Is(err, app.ErrQuit) || errors.Is(err, context.Canceled) {
		return
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
