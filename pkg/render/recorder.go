package render

import (
	"image/color"

	"github.com/faiface/pixel"
)

// Shape is one batch of triangles submitted to a Recorder.
type Shape struct {
	Color    pixel.RGBA
	Vertices []pixel.Vec
	Textured bool
}

// Recorder is a Surface that keeps the submitted geometry in memory instead of rasterizing it.
type Recorder struct {
	Background pixel.RGBA
	Clears     int
	Shapes     []Shape
}

// Clear starts a new frame filled with c.
func (r *Recorder) Clear(c color.Color) {
	r.Background = pixel.ToRGBA(c)
	r.Clears++
	r.Shapes = r.Shapes[:0]
}

// MakeTriangles implements pixel.Target.
func (r *Recorder) MakeTriangles(t pixel.Triangles) pixel.TargetTriangles {
	td := pixel.MakeTrianglesData(t.Len())
	td.Update(t)
	return &recordedTriangles{TrianglesData: td, r: r}
}

// MakePicture implements pixel.Target.
func (r *Recorder) MakePicture(p pixel.Picture) pixel.TargetPicture {
	return &recordedPicture{Picture: p, r: r}
}

func (r *Recorder) record(td *pixel.TrianglesData, textured bool) {
	if td.Len() == 0 {
		return
	}
	s := Shape{
		Color:    td.Color(0),
		Vertices: make([]pixel.Vec, td.Len()),
		Textured: textured,
	}
	for i := range s.Vertices {
		s.Vertices[i] = td.Position(i)
	}
	r.Shapes = append(r.Shapes, s)
}

type recordedTriangles struct {
	*pixel.TrianglesData
	r *Recorder
}

func (rt *recordedTriangles) Draw() {
	rt.r.record(rt.TrianglesData, false)
}

type recordedPicture struct {
	pixel.Picture
	r *Recorder
}

func (rp *recordedPicture) Draw(t pixel.TargetTriangles) {
	if rt, ok := t.(*recordedTriangles); ok {
		rp.r.record(rt.TrianglesData, true)
	}
}
