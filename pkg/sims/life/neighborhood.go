package life

import "trail-life/pkg/core"

var mooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors returns the Moore neighborhood of c, excluding c itself.
func Neighbors(c core.Coord) [8]core.Coord {
	var out [8]core.Coord
	for i, d := range mooreOffsets {
		out[i] = c.Add(d[0], d[1])
	}
	return out
}

// LiveNeighborCount counts the neighbors of c that are alive in m.
func LiveNeighborCount(c core.Coord, m *CellMap) int {
	n := 0
	for _, d := range mooreOffsets {
		if m.Alive(c.Add(d[0], d[1])) {
			n++
		}
	}
	return n
}
