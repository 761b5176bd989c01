package life

import (
	"iter"

	"trail-life/pkg/core"
)

// CellMap is the sparse state of the automaton: a coordinate-keyed age table.
//
// A positive age counts the consecutive generations a cell has been alive
// (1 means just born). A negative age marks a dead cell that is still fading;
// its magnitude is the number of generations since death. Age zero is never
// stored: an absent key is an empty cell. The zero value is an empty map.
type CellMap struct {
	ages map[core.Coord]int
}

// NewCellMap returns an empty map with room for hint entries.
func NewCellMap(hint int) *CellMap {
	if hint < 0 {
		hint = 0
	}
	return &CellMap{ages: make(map[core.Coord]int, hint)}
}

// Get returns the stored age for c and whether an entry exists.
func (m *CellMap) Get(c core.Coord) (int, bool) {
	if m == nil {
		return 0, false
	}
	age, ok := m.ages[c]
	return age, ok
}

// Age returns the age for c, or 0 when absent.
func (m *CellMap) Age(c core.Coord) int {
	age, _ := m.Get(c)
	return age
}

// Alive reports whether c holds a positive age.
func (m *CellMap) Alive(c core.Coord) bool { return m.Age(c) > 0 }

// Set stores age for c. Setting 0 removes the entry.
func (m *CellMap) Set(c core.Coord, age int) {
	if age == 0 {
		if m.ages != nil {
			delete(m.ages, c)
		}
		return
	}
	if m.ages == nil {
		m.ages = make(map[core.Coord]int)
	}
	m.ages[c] = age
}

// Len returns the number of stored entries, alive and trailing.
func (m *CellMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.ages)
}

// Population counts alive and trailing entries separately.
func (m *CellMap) Population() (alive, trailing int) {
	if m == nil {
		return 0, 0
	}
	for _, age := range m.ages {
		if age > 0 {
			alive++
		} else {
			trailing++
		}
	}
	return alive, trailing
}

// All yields every (coordinate, age) entry once, in unspecified order. The
// sequence may be ranged over any number of times.
func (m *CellMap) All() iter.Seq2[core.Coord, int] {
	return func(yield func(core.Coord, int) bool) {
		if m == nil {
			return
		}
		for c, age := range m.ages {
			if !yield(c, age) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the map.
func (m *CellMap) Clone() *CellMap {
	out := NewCellMap(m.Len())
	for c, age := range m.All() {
		out.ages[c] = age
	}
	return out
}

// Equal reports whether both maps hold identical entries.
func (m *CellMap) Equal(other *CellMap) bool {
	if m.Len() != other.Len() {
		return false
	}
	for c, age := range m.All() {
		if got, ok := other.Get(c); !ok || got != age {
			return false
		}
	}
	return true
}
