//go:build js && wasm

package canvas2d

import (
	"errors"
	"fmt"
	"image/color"
	"syscall/js"

	"github.com/faiface/pixel"
)

// Canvas is a browser canvas that satisfies render.Surface.
type Canvas struct {
	el  js.Value
	ctx js.Value

	width  float64
	height float64
}

// New finds the canvas with the given id, creating and appending it to the
// page body if it does not exist yet, and sizes it to width x height.
func New(id string, width, height int) (*Canvas, error) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return nil, errors.New("canvas2d: no document")
	}

	el := doc.Call("getElementById", id)
	if !el.Truthy() {
		el = doc.Call("createElement", "canvas")
		el.Set("id", id)
		doc.Get("body").Call("appendChild", el)
	}
	el.Set("width", width)
	el.Set("height", height)

	ctx := el.Call("getContext", "2d")
	if !ctx.Truthy() {
		return nil, fmt.Errorf("canvas2d: %q has no 2d context", id)
	}

	return &Canvas{
		el:     el,
		ctx:    ctx,
		width:  float64(width),
		height: float64(height),
	}, nil
}

// Bounds returns the drawable area in pixel coordinates.
func (c *Canvas) Bounds() pixel.Rect {
	return pixel.R(0, 0, c.width, c.height)
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.Color) {
	c.ctx.Set("fillStyle", cssColor(pixel.ToRGBA(col)))
	c.ctx.Call("fillRect", 0, 0, c.width, c.height)
}

// MakeTriangles implements pixel.Target.
func (c *Canvas) MakeTriangles(t pixel.Triangles) pixel.TargetTriangles {
	td := pixel.MakeTrianglesData(t.Len())
	td.Update(t)
	return &canvasTriangles{TrianglesData: td, c: c}
}

// MakePicture implements pixel.Target. Textured geometry is not rasterized.
func (c *Canvas) MakePicture(p pixel.Picture) pixel.TargetPicture {
	return skippedPicture{p}
}

func (c *Canvas) fill(td *pixel.TrianglesData) {
	// one path per colour, so shared edges are not anti-aliased twice
	for _, run := range colorRuns(td) {
		c.ctx.Set("fillStyle", cssColor(td.Color(run[0])))
		c.ctx.Call("beginPath")
		for i := run[0]; i < run[1]; i++ {
			p := td.Position(i)
			// pixel's y axis points up, the canvas' points down
			x, y := p.X, c.height-p.Y
			if (i-run[0])%3 == 0 {
				c.ctx.Call("moveTo", x, y)
			} else {
				c.ctx.Call("lineTo", x, y)
			}
		}
		c.ctx.Call("fill")
	}
}

type canvasTriangles struct {
	*pixel.TrianglesData
	c *Canvas
}

func (ct *canvasTriangles) Draw() {
	ct.c.fill(ct.TrianglesData)
}

type skippedPicture struct {
	pixel.Picture
}

func (skippedPicture) Draw(pixel.TargetTriangles) {}
