//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the key binding help on top of the grid. H toggles it.
type Overlay struct {
	show  bool
	panel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Update toggles visibility.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
}

// Draw paints the help panel anchored to the bottom-right corner.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	lines := HelpLines()
	w := 0
	for _, l := range lines {
		w = max(w, len(l)*7)
	}
	w += panelPadding * 2
	h := panelPadding*2 + len(lines)*lineHeight
	if o.panel == nil || o.panel.Bounds().Dx() != w || o.panel.Bounds().Dy() != h {
		o.panel = ebiten.NewImage(w, h)
	}
	o.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 220})
	for i, line := range lines {
		text.Draw(o.panel, line, basicfont.Face7x13, panelPadding, panelPadding+(i+1)*lineHeight-4, color.White)
	}
	bounds := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(bounds.Dx()-w-panelMargin), float64(bounds.Dy()-h-panelMargin))
	screen.DrawImage(o.panel, op)
}
