package render

import (
	"image/color"
	"maps"
	"testing"

	"trail-life/pkg/core"
	"trail-life/pkg/palette"
	"trail-life/pkg/view"
)

type ageIndex struct{}

func (ageIndex) Index(age int) uint8 {
	if age < 0 {
		return 9
	}
	return uint8(age)
}

func TestRasterizeDrawsVisibleSquares(t *testing.T) {
	f := NewFrame(10, 6)
	cells := map[core.Coord]int{
		{X: 0, Y: 0}:   1,
		{X: 3, Y: 1}:   -2,
		{X: 100, Y: 0}: 1,
		{X: -50, Y: 0}: 2,
	}
	v := view.Viewport{OffsetX: 1, OffsetY: 0, CellSize: 3}

	drawn := f.Rasterize(maps.All(cells), v, ageIndex{})
	if drawn != 1 {
		t.Fatalf("drawn = %d, want 1", drawn)
	}
	for y := 0; y < 3; y++ {
		for x := 1; x < 4; x++ {
			if f.At(x, y) != 1 {
				t.Fatalf("pixel (%d,%d) = %d, want 1", x, y, f.At(x, y))
			}
		}
	}
	if f.At(0, 0) != 0 || f.At(4, 0) != 0 || f.At(1, 3) != 0 {
		t.Fatal("cell painted outside its square")
	}

	v = v.Pan(-2, 0)
	drawn = f.Rasterize(maps.All(cells), v, ageIndex{})
	if drawn != 2 {
		t.Fatalf("after pan drawn = %d, want 2", drawn)
	}
	if f.At(0, 0) != 1 || f.At(1, 0) != 1 || f.At(2, 0) != 0 {
		t.Fatal("partially visible cell not clipped at the left edge")
	}
	if f.At(8, 3) != 9 || f.At(9, 5) != 9 || f.At(7, 3) != 0 {
		t.Fatalf("trail cell square wrong: %d %d %d", f.At(8, 3), f.At(9, 5), f.At(7, 3))
	}
}

func TestRasterizeSkipsBackgroundSlots(t *testing.T) {
	f := NewFrame(4, 4)
	m := palette.Default(0)
	cells := map[core.Coord]int{{X: 1, Y: 1}: -1}
	if drawn := f.Rasterize(maps.All(cells), view.New(1), m); drawn != 0 {
		t.Fatalf("drawn = %d, want 0", drawn)
	}
}

func TestFrameResizeClears(t *testing.T) {
	f := NewFrame(2, 2)
	f.Cells()[3] = 7
	f.Resize(1, 1)
	f.Resize(2, 2)
	if f.At(1, 1) != 0 {
		t.Fatal("Resize must clear the frame")
	}
	f.Resize(0, -1)
	if f.W != 1 || f.H != 1 {
		t.Fatalf("Resize clamps to 1x1, got %dx%d", f.W, f.H)
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	pal := []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}}
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{0, 1, 9}, pal)
	want := []byte{1, 0, 0, 255, 0, 2, 0, 255, 0, 2, 0, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf = %v, want %v", buf, want)
		}
	}
	fillPaletteRGBA(buf, []uint8{0, 1, 9}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d after empty palette fill", i, b)
		}
	}
}
