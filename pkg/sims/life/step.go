package life

import "trail-life/pkg/core"

// Advance computes the generation that follows prev and returns it as a new
// map; prev is not modified. trailLen is the number of generations a dead
// cell keeps fading before it is forgotten; zero disables trails.
//
// Only entries of prev and the neighborhoods of its live cells are visited,
// so the cost does not depend on how far apart the cells are.
func Advance(prev *CellMap, trailLen int) *CellMap {
	next := NewCellMap(prev.Len())
	visited := make(map[core.Coord]struct{}, prev.Len()*4)

	for c, age := range prev.All() {
		if age > 0 {
			n := LiveNeighborCount(c, prev)
			if n == 2 || n == 3 {
				next.Set(c, age+1)
			} else if trailLen > 0 {
				next.Set(c, -1)
			}
			visited[c] = struct{}{}

			for _, nb := range Neighbors(c) {
				if _, seen := visited[nb]; seen {
					continue
				}
				visited[nb] = struct{}{}
				if prev.Alive(nb) {
					continue
				}
				if LiveNeighborCount(nb, prev) == 3 {
					next.Set(nb, 1)
				}
			}
			continue
		}

		// Births decided by an earlier live cell take precedence over fading.
		if _, decided := next.Get(c); decided {
			continue
		}
		if faded := age - 1; -faded <= trailLen {
			next.Set(c, faded)
		}
	}
	return next
}
