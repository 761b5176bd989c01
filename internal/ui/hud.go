//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"trail-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// ParameterProvider exposes the values shown on the HUD.
type ParameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders a small status panel in the top-left corner.
type HUD struct {
	src      ParameterProvider
	snapshot core.ParameterSnapshot
	lines    []string
	panel    *ebiten.Image
}

// NewHUD constructs a HUD reading from the provided source.
func NewHUD(src ParameterProvider) *HUD {
	return &HUD{src: src}
}

// Update refreshes the cached parameter snapshot.
func (h *HUD) Update(fps int) {
	if h == nil || h.src == nil {
		return
	}
	h.snapshot = h.src.Parameters()
	h.lines = h.lines[:0]
	for _, group := range h.snapshot.Groups {
		for _, p := range group.Params {
			h.lines = append(h.lines, fmt.Sprintf("%-10s %s", p.Label, formatValue(p)))
		}
	}
	h.lines = append(h.lines, fmt.Sprintf("%-10s %d", "Max FPS", fps))
}

// Draw paints the HUD panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || len(h.lines) == 0 {
		return
	}
	height := panelPadding*2 + len(h.lines)*lineHeight
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(panelWidth, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	face := basicfont.Face7x13
	for i, line := range h.lines {
		y := panelPadding + (i+1)*lineHeight - 4
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(panelMargin, panelMargin)
	screen.DrawImage(h.panel, op)
}

func formatValue(p core.Parameter) string {
	if p.Type != core.ParamTypeFloat {
		return p.Value
	}
	f, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return "--"
	}
	return strconv.FormatFloat(f, 'f', 1, 64)
}

const (
	panelWidth   = 180
	panelPadding = 8
	panelMargin  = 8
	lineHeight   = 16
)
