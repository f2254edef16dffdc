//go:build js && wasm

package main

import (
	"log"

	"github.com/supermuesli/spinner/pkg/canvas2d"
	"github.com/supermuesli/spinner/pkg/loop"
	"github.com/supermuesli/spinner/pkg/render"
)

const (
	width  = 640
	height = 480
	fps    = 30
)

func main() {
	canvas, err := canvas2d.New("spinner", width, height)
	if err != nil {
		log.Fatal(err)
	}

	app := render.NewApp()
	bounds := canvas.Bounds()

	loop.Start(&loop.Browser{}, func() {
		app.Tick(canvas, bounds)
	}, fps, false)

	// the browser drives the loop now; keep the Go runtime alive for its callbacks
	select {}
}
