package render

import (
	"image/color"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"golang.org/x/image/colornames"
)

const (
	// DT is the simulated time of one tick. It is fixed and never measured.
	DT = 1.0 / 30.0

	// RadiansPerSecond is how fast the square turns.
	RadiansPerSecond = 2.0

	// SquareSize is the side length of the square in pixels.
	SquareSize = 50.0
)

var (
	// Background fills the frame before anything is drawn.
	Background = colornames.Lime
	// Foreground is the colour of the square.
	Foreground = colornames.Red
)

var squareCorners = [4]pixel.Vec{
	pixel.V(0, 0),
	pixel.V(SquareSize, 0),
	pixel.V(SquareSize, SquareSize),
	pixel.V(0, SquareSize),
}

// Surface is anything a frame can be drawn onto.
type Surface interface {
	pixel.Target
	Clear(c color.Color)
}

// Option configures an App.
type Option func(*App)

// WithHUD toggles the text overlay.
func WithHUD(enabled bool) Option {
	return func(app *App) {
		if enabled && app.hud == nil {
			app.hud = NewHUD()
		}
		if !enabled {
			app.hud = nil
		}
	}
}

// App holds the rotation angle and the drawing backend that renders it.
type App struct {
	Rotation float64

	imd   *imdraw.IMDraw
	hud   *HUD
	ticks uint64
}

// NewApp prepares a new App at angle 0
func NewApp(opts ...Option) *App {
	app := &App{
		imd: imdraw.New(nil),
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// Update advances the rotation by dt seconds
func (app *App) Update(dt float64) {
	app.Rotation += RadiansPerSecond * dt
}

// Transform places the square's centre on the centre of bounds and turns it by the current rotation.
func (app *App) Transform(bounds pixel.Rect) pixel.Matrix {
	return pixel.IM.
		Moved(pixel.V(-SquareSize/2, -SquareSize/2)).
		Rotated(pixel.ZV, app.Rotation).
		Moved(bounds.Center())
}

// Render draws one frame onto s
func (app *App) Render(s Surface, bounds pixel.Rect) {
	s.Clear(Background)

	m := app.Transform(bounds)

	app.imd.Clear()
	app.imd.Color = Foreground
	for _, v := range squareCorners {
		app.imd.Push(m.Project(v))
	}
	app.imd.Polygon(0)
	app.imd.Draw(s)

	if app.hud != nil {
		app.hud.Draw(s, bounds, app.ticks, app.Rotation)
	}
}

// Tick runs one update and one render, in that order.
func (app *App) Tick(s Surface, bounds pixel.Rect) {
	app.Update(DT)
	app.ticks++
	app.Render(s, bounds)
}

// Ticks returns how many ticks have completed
func (app *App) Ticks() uint64 {
	return app.ticks
}
