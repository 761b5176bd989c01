//go:build ebiten

package render

import (
	"image/color"
	"iter"

	"trail-life/pkg/core"
	"trail-life/pkg/view"

	"github.com/hajimehoshi/ebiten/v2"
)

// Palette is the mapper surface the painter needs.
type Palette interface {
	Indexer
	Palette() []color.RGBA
}

// GridPainter rasterizes engine snapshots into a window-sized image.
type GridPainter struct {
	frame *Frame
	img   *ebiten.Image
	buf   []byte
	drawn int
}

// NewGridPainter allocates a painter for a w x h pixel window.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{frame: NewFrame(w, h)}
	gp.alloc()
	return gp
}

func (gp *GridPainter) alloc() {
	gp.buf = make([]byte, 4*gp.frame.W*gp.frame.H)
	if gp.img != nil {
		gp.img.Dispose()
	}
	gp.img = ebiten.NewImage(gp.frame.W, gp.frame.H)
}

// Resize adapts the painter to a new window size.
func (gp *GridPainter) Resize(w, h int) {
	if w == gp.frame.W && h == gp.frame.H {
		return
	}
	gp.frame.Resize(w, h)
	gp.alloc()
}

// Draw paints the visible cells of a snapshot onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, cells iter.Seq2[core.Coord, int], v view.Viewport, pal Palette) {
	gp.drawn = gp.frame.Rasterize(cells, v, pal)
	fillPaletteRGBA(gp.buf, gp.frame.Cells(), pal.Palette())
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Drawn returns the number of cells painted by the last Draw.
func (gp *GridPainter) Drawn() int { return gp.drawn }

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.frame.W, gp.frame.H }
