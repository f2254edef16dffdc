//go:build !js

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"

	"github.com/supermuesli/spinner/pkg/loop"
	"github.com/supermuesli/spinner/pkg/render"
)

type config struct {
	title    string
	width    float64
	height   float64
	fps      int
	hud      bool
	headless bool
	ticks    uint64
}

var cfg config

func run() {
	width, height := fitDisplay(cfg.width, cfg.height)

	win, err := pixelgl.NewWindow(pixelgl.WindowConfig{
		Title:  cfg.title,
		Bounds: pixel.R(0, 0, width, height),
		VSync:  false,
	})
	if err != nil {
		log.Fatalf("create window: %v", err)
	}

	app := render.NewApp(render.WithHUD(cfg.hud))
	bounds := win.Bounds()

	// render loop
	loop.Start(&loop.Native{Done: win.Closed}, func() {
		app.Tick(win, bounds)
		win.Update()
	}, cfg.fps, false)

	log.Printf("window closed after %d ticks, rotation %.3f rad", app.Ticks(), app.Rotation)
}

func runHeadless() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := render.NewApp(render.WithHUD(cfg.hud))
	rec := &render.Recorder{}
	bounds := pixel.R(0, 0, cfg.width, cfg.height)

	done := func() bool {
		if ctx.Err() != nil {
			return true
		}
		return cfg.ticks > 0 && app.Ticks() >= cfg.ticks
	}

	loop.Start(&loop.Native{Done: done}, func() {
		app.Tick(rec, bounds)
	}, cfg.fps, false)

	log.Printf("headless: %d ticks, %d shapes in last frame, rotation %.3f rad",
		loop.Default.Frames(), len(rec.Shapes), app.Rotation)
}

func main() {
	flag.StringVar(&cfg.title, "title", "spinner", "Window title.")
	flag.Float64Var(&cfg.width, "width", 640, "Window width in pixels.")
	flag.Float64Var(&cfg.height, "height", 480, "Window height in pixels.")
	flag.IntVar(&cfg.fps, "fps", 30, "Target frames per second (0 = unpaced).")
	flag.BoolVar(&cfg.hud, "hud", false, "Show tick count and rotation.")
	flag.BoolVar(&cfg.headless, "headless", false, "Run without a window.")
	flag.Uint64Var(&cfg.ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run until interrupted).")
	flag.Parse()

	if cfg.headless {
		runHeadless()
		return
	}

	pixelgl.Run(run)
}
