package render

import (
	"fmt"
	"log"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

const hudFontSize = 14

// HUD prints the tick count and rotation in the top left corner.
type HUD struct {
	atlas  *text.Atlas
	txt    *text.Text
	status string
}

// NewHUD builds the overlay from the Go Regular face, or the 7x13 bitmap face if that fails to load.
func NewHUD() *HUD {
	return newHUD(goregular.TTF)
}

func newHUD(ttf []byte) *HUD {
	var face font.Face = basicfont.Face7x13
	if f, err := loadTTF(ttf, hudFontSize); err != nil {
		log.Printf("hud: falling back to basicfont: %v", err)
	} else {
		face = f
	}

	atlas := text.NewAtlas(face, text.ASCII)
	txt := text.New(pixel.ZV, atlas)
	txt.Color = colornames.Black

	return &HUD{atlas: atlas, txt: txt}
}

// Draw writes the overlay for the current tick onto t.
func (hud *HUD) Draw(t pixel.Target, bounds pixel.Rect, ticks uint64, rotation float64) {
	hud.status = fmt.Sprintf("tick\t%d\nrotation\t%.3f rad", ticks, rotation)
	hud.txt.Clear()
	hud.txt.WriteString(hud.status)

	// text grows downwards from its origin, so anchor below the top edge
	origin := pixel.V(bounds.Min.X+8, bounds.Max.Y-8-hud.atlas.Ascent())
	hud.txt.Draw(t, pixel.IM.Moved(origin))
}
