package render

import (
	"math"
	"testing"

	"github.com/faiface/pixel"
)

var screen = pixel.R(0, 0, 640, 480)

func TestUpdateAccumulates(t *testing.T) {
	for _, n := range []int{0, 1, 2, 29, 30, 100} {
		app := NewApp()
		want := 0.0
		for i := 0; i < n; i++ {
			app.Update(DT)
			want += 2.0 * (1.0 / 30.0)
		}
		if app.Rotation != want {
			t.Errorf("after %d ticks rotation = %v, want %v", n, app.Rotation, want)
		}
		if math.Abs(app.Rotation-float64(n)*2.0/30.0) > 1e-9 {
			t.Errorf("after %d ticks rotation = %v, want about %v", n, app.Rotation, float64(n)*2.0/30.0)
		}
	}
}

func TestRotationIsNotWrapped(t *testing.T) {
	app := NewApp()
	for i := 0; i < 300; i++ {
		app.Update(DT)
	}
	if app.Rotation < 2*math.Pi {
		t.Fatalf("rotation = %v, want it to keep growing past 2π", app.Rotation)
	}
}

func TestTransformCentersSquare(t *testing.T) {
	app := NewApp()
	got := app.Transform(screen).Project(pixel.V(SquareSize/2, SquareSize/2))
	if got != pixel.V(320, 240) {
		t.Fatalf("square centre at angle 0 = %v, want (320, 240)", got)
	}

	origin := app.Transform(screen).Project(pixel.ZV)
	if origin != pixel.V(295, 215) {
		t.Fatalf("square corner at angle 0 = %v, want (295, 215)", origin)
	}
}

func TestTransformRotatesAroundCenter(t *testing.T) {
	app := NewApp()
	app.Rotation = math.Pi / 2
	m := app.Transform(screen)

	tests := []struct {
		in, want pixel.Vec
	}{
		{pixel.V(25, 25), pixel.V(320, 240)},
		{pixel.V(0, 0), pixel.V(345, 215)},
		{pixel.V(50, 50), pixel.V(295, 265)},
	}
	for _, tt := range tests {
		got := m.Project(tt.in)
		if got.To(tt.want).Len() > 1e-9 {
			t.Errorf("Project(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTickAfterHalfSecond(t *testing.T) {
	app := NewApp()
	rec := &Recorder{}
	for i := 0; i < 15; i++ {
		app.Tick(rec, screen)
	}
	if math.Abs(app.Rotation-1.0) > 1e-12 {
		t.Fatalf("rotation after 15 ticks = %v, want 1.0", app.Rotation)
	}
	if app.Ticks() != 15 {
		t.Fatalf("Ticks() = %d, want 15", app.Ticks())
	}
	if rec.Clears != 15 {
		t.Fatalf("surface cleared %d times, want 15", rec.Clears)
	}
}

func TestRenderDrawsOneSquare(t *testing.T) {
	app := NewApp()
	rec := &Recorder{}

	// twice, so the cached target triangles get updated as well
	for i := 0; i < 2; i++ {
		app.Render(rec, screen)

		if rec.Background != pixel.ToRGBA(Background) {
			t.Fatalf("background = %v, want %v", rec.Background, pixel.ToRGBA(Background))
		}
		if len(rec.Shapes) != 1 {
			t.Fatalf("drew %d shapes, want 1", len(rec.Shapes))
		}
		s := rec.Shapes[0]
		if s.Color != pixel.ToRGBA(Foreground) {
			t.Errorf("square color = %v, want %v", s.Color, pixel.ToRGBA(Foreground))
		}
		if len(s.Vertices) != 6 {
			t.Fatalf("square has %d vertices, want 6", len(s.Vertices))
		}
		for _, v := range s.Vertices {
			if v.X < 295 || v.X > 345 || v.Y < 215 || v.Y > 265 {
				t.Errorf("vertex %v outside the centred square", v)
			}
		}
	}
}

func TestRenderDoesNotAdvance(t *testing.T) {
	app := NewApp()
	app.Render(&Recorder{}, screen)
	if app.Rotation != 0 || app.Ticks() != 0 {
		t.Fatalf("Render changed state: rotation %v, ticks %d", app.Rotation, app.Ticks())
	}
}

func TestHUD(t *testing.T) {
	app := NewApp(WithHUD(true))
	rec := &Recorder{}
	app.Tick(rec, screen)

	var textured int
	for _, s := range rec.Shapes {
		if s.Textured {
			textured++
		}
	}
	if textured == 0 {
		t.Fatal("HUD drew nothing")
	}

	app = NewApp(WithHUD(true), WithHUD(false))
	rec = &Recorder{}
	app.Tick(rec, screen)
	if len(rec.Shapes) != 1 {
		t.Fatalf("drew %d shapes with the HUD off, want 1", len(rec.Shapes))
	}
}

func TestHUDFallsBackToBasicFont(t *testing.T) {
	hud := newHUD([]byte("not a font"))
	rec := &Recorder{}
	hud.Draw(rec, screen, 1, 0.5)
	if len(rec.Shapes) == 0 {
		t.Fatal("fallback HUD drew nothing")
	}
}

func TestHUDShowsCurrentTick(t *testing.T) {
	app := NewApp(WithHUD(true))
	rec := &Recorder{}

	app.Tick(rec, screen)
	if want := "tick\t1\nrotation\t0.067 rad"; app.hud.status != want {
		t.Fatalf("HUD after first tick = %q, want %q", app.hud.status, want)
	}

	for i := 0; i < 14; i++ {
		app.Tick(rec, screen)
	}
	if want := "tick\t15\nrotation\t1.000 rad"; app.hud.status != want {
		t.Fatalf("HUD after 15 ticks = %q, want %q", app.hud.status, want)
	}
}
