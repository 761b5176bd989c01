// Package view maps grid coordinates to screen pixels and back.
package view

import (
	"math"

	"trail-life/pkg/core"
)

// Viewport holds the pan offset and zoom level of the grid on screen. It is a
// plain value: every operation returns an updated copy.
type Viewport struct {
	OffsetX  float64
	OffsetY  float64
	CellSize int
}

// Arena describes how many whole cells fit a window and the remainder-based
// offset that centres them.
type Arena struct {
	Cols    int
	Rows    int
	OffsetX int
	OffsetY int
}

// New returns a viewport with no pan offset. cellSize is clamped to 1.
func New(cellSize int) Viewport {
	return Viewport{CellSize: max(cellSize, 1)}
}

func (v Viewport) size() int { return max(v.CellSize, 1) }

// WorldToScreen returns the top-left pixel of cell c.
func (v Viewport) WorldToScreen(c core.Coord) (float64, float64) {
	s := float64(v.size())
	return v.OffsetX + float64(c.X)*s, v.OffsetY + float64(c.Y)*s
}

// ScreenToWorld returns the cell containing the pixel (px, py). Any point maps
// to a valid coordinate; the grid has no edge.
func (v Viewport) ScreenToWorld(px, py float64) core.Coord {
	s := float64(v.size())
	return core.Coord{
		X: int(math.Floor((px - v.OffsetX) / s)),
		Y: int(math.Floor((py - v.OffsetY) / s)),
	}
}

// Pan shifts the grid by (dx, dy) pixels.
func (v Viewport) Pan(dx, dy float64) Viewport {
	v.OffsetX += dx
	v.OffsetY += dy
	return v
}

// Zoom grows (direction > 0) or shrinks (direction < 0) the cell size by one
// pixel, keeping the grid point under (ax, ay) fixed on screen. The cell size
// never drops below 1; a zoom that would do so leaves v unchanged.
func (v Viewport) Zoom(direction int, ax, ay float64) Viewport {
	old := v.size()
	next := old
	switch {
	case direction > 0:
		next = old + 1
	case direction < 0:
		next = old - 1
	}
	if next < 1 || next == old {
		v.CellSize = old
		return v
	}
	v.OffsetX = ax - (ax-v.OffsetX)*float64(next)/float64(old)
	v.OffsetY = ay - (ay-v.OffsetY)*float64(next)/float64(old)
	v.CellSize = next
	return v
}

// Layout computes the arena for a window of w x h pixels at the current cell
// size.
func (v Viewport) Layout(w, h int) Arena {
	s := v.size()
	w, h = max(w, 0), max(h, 0)
	return Arena{
		Cols:    w / s,
		Rows:    h / s,
		OffsetX: (w % s) / 2,
		OffsetY: (h % s) / 2,
	}
}

// Centered returns v with its offset set to the arena's centering offset for a
// w x h window.
func (v Viewport) Centered(w, h int) (Viewport, Arena) {
	a := v.Layout(w, h)
	v.OffsetX = float64(a.OffsetX)
	v.OffsetY = float64(a.OffsetY)
	return v, a
}

// Visible reports whether any part of cell c lies inside a w x h window.
func (v Viewport) Visible(c core.Coord, w, h int) bool {
	px, py := v.WorldToScreen(c)
	s := float64(v.size())
	return px+s > 0 && py+s > 0 && px < float64(w) && py < float64(h)
}
