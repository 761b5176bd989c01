package core

// Coord is an integer position on the unbounded grid.
type Coord struct {
	X, Y int
}

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord { return Coord{X: c.X + dx, Y: c.Y + dy} }

// Size describes a rectangular extent in cells or pixels.
type Size struct {
	W int
	H int
}
