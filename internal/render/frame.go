package render

import (
	"iter"
	"math"

	"trail-life/pkg/core"
	"trail-life/pkg/view"
)

// Indexer resolves a cell age to a palette slot; slot 0 is the background.
type Indexer interface {
	Index(age int) uint8
}

// Frame stores one palette slot per screen pixel in row-major order.
type Frame struct {
	W, H int
	data []uint8
}

// NewFrame allocates a frame with the given dimensions.
func NewFrame(w, h int) *Frame {
	f := &Frame{}
	f.Resize(w, h)
	return f
}

// Resize changes the dimensions, reusing the backing slice when it is large
// enough. Contents are cleared.
func (f *Frame) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	f.W, f.H = w, h
	if cap(f.data) >= w*h {
		f.data = f.data[:w*h]
	} else {
		f.data = make([]uint8, w*h)
	}
	f.Clear()
}

// Cells exposes the backing slice.
func (f *Frame) Cells() []uint8 { return f.data }

// At returns the slot at pixel (x, y).
func (f *Frame) At(x, y int) uint8 { return f.data[y*f.W+x] }

// Clear fills the frame with the background slot.
func (f *Frame) Clear() {
	clear(f.data)
}

// Rasterize clears the frame and paints every visible cell as a square of the
// viewport's cell size. Cells entirely outside the frame are skipped. It
// returns the number of cells drawn.
func (f *Frame) Rasterize(cells iter.Seq2[core.Coord, int], v view.Viewport, pal Indexer) int {
	f.Clear()
	size := max(v.CellSize, 1)
	drawn := 0
	for c, age := range cells {
		if !v.Visible(c, f.W, f.H) {
			continue
		}
		slot := pal.Index(age)
		if slot == 0 {
			continue
		}
		px, py := v.WorldToScreen(c)
		x0, y0 := int(math.Floor(px)), int(math.Floor(py))
		x1, y1 := min(x0+size, f.W), min(y0+size, f.H)
		x0, y0 = max(x0, 0), max(y0, 0)
		for y := y0; y < y1; y++ {
			row := f.data[y*f.W : (y+1)*f.W]
			for x := x0; x < x1; x++ {
				row[x] = slot
			}
		}
		drawn++
	}
	return drawn
}
