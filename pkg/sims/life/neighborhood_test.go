package life

import (
	"testing"

	"trail-life/pkg/core"
)

func TestNeighborsMooreDistinct(t *testing.T) {
	c := core.Coord{X: -3, Y: 7}
	seen := map[core.Coord]bool{}
	for _, n := range Neighbors(c) {
		if n == c {
			t.Fatal("neighborhood includes the cell itself")
		}
		if seen[n] {
			t.Fatalf("neighbor %v enumerated twice", n)
		}
		dx, dy := n.X-c.X, n.Y-c.Y
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Fatalf("neighbor %v not adjacent to %v", n, c)
		}
		seen[n] = true
	}
	if len(seen) != 8 {
		t.Fatalf("got %d neighbors, want 8", len(seen))
	}
}

func TestLiveNeighborCountIgnoresTrails(t *testing.T) {
	m := NewCellMap(0)
	origin := core.Coord{}
	m.Set(origin, 5)
	m.Set(core.Coord{X: 1, Y: 0}, 1)
	m.Set(core.Coord{X: 1, Y: 1}, 12)
	m.Set(core.Coord{X: -1, Y: -1}, -1)
	m.Set(core.Coord{X: 2, Y: 0}, 1)

	if got := LiveNeighborCount(origin, m); got != 2 {
		t.Fatalf("LiveNeighborCount = %d, want 2", got)
	}
	if got := LiveNeighborCount(core.Coord{X: 100, Y: 100}, m); got != 0 {
		t.Fatalf("isolated count = %d, want 0", got)
	}
}
