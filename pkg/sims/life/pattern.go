package life

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"trail-life/pkg/core"
)

// AliveSymbol marks a live cell in plain-text patterns.
const AliveSymbol = 'o'

// DeadSymbol marks an empty cell in plain-text patterns.
const DeadSymbol = '.'

var (
	// ErrRaggedPattern reports rows of unequal length.
	ErrRaggedPattern = errors.New("life: pattern rows differ in length")
	// ErrUnknownSymbol reports a character that is neither alive nor dead.
	ErrUnknownSymbol = errors.New("life: unknown pattern symbol")
)

// Pattern is a rectangular seed: the live cells relative to its top-left
// corner, plus the bounding extent.
type Pattern struct {
	Size  core.Size
	Cells []core.Coord
}

// ParsePattern converts rows of text into a Pattern. Every row must have the
// same length and contain only AliveSymbol or DeadSymbol.
func ParsePattern(rows []string) (Pattern, error) {
	p := Pattern{Size: core.Size{H: len(rows)}}
	for y, row := range rows {
		runes := []rune(row)
		if y == 0 {
			p.Size.W = len(runes)
		} else if len(runes) != p.Size.W {
			return Pattern{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedPattern, y, len(runes), p.Size.W)
		}
		for x, r := range runes {
			switch r {
			case AliveSymbol:
				p.Cells = append(p.Cells, core.Coord{X: x, Y: y})
			case DeadSymbol:
			default:
				return Pattern{}, fmt.Errorf("%w %q at row %d column %d", ErrUnknownSymbol, r, y, x)
			}
		}
	}
	return p, nil
}

// MustParsePattern is like ParsePattern but panics on malformed input. It is
// intended for patterns compiled into the binary.
func MustParsePattern(rows ...string) Pattern {
	p, err := ParsePattern(rows)
	if err != nil {
		panic(err)
	}
	return p
}

// String renders the pattern back into its plain-text form.
func (p Pattern) String() string {
	grid := make([][]rune, p.Size.H)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(string(DeadSymbol), p.Size.W))
	}
	for _, c := range p.Cells {
		if c.Y >= 0 && c.Y < p.Size.H && c.X >= 0 && c.X < p.Size.W {
			grid[c.Y][c.X] = AliveSymbol
		}
	}
	lines := make([]string, len(grid))
	for y, row := range grid {
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}

// CenteredAnchor returns the top-left coordinate that centres p within a
// cols x rows arena.
func (p Pattern) CenteredAnchor(cols, rows int) core.Coord {
	return core.Coord{X: cols/2 - p.Size.W/2, Y: rows/2 - p.Size.H/2}
}

// RandomPattern scatters round(density*cols*rows) distinct live cells over a
// cols x rows rectangle. The result depends only on the RNG state.
func RandomPattern(cols, rows int, density float64, rng *core.RNG) Pattern {
	p := Pattern{Size: core.Size{W: max(cols, 0), H: max(rows, 0)}}
	total := p.Size.W * p.Size.H
	if total == 0 || density <= 0 {
		return p
	}
	want := int(math.Round(math.Min(density, 1) * float64(total)))
	picked := make(map[core.Coord]struct{}, want)
	for len(picked) < want {
		c := core.Coord{X: rng.IntN(p.Size.W), Y: rng.IntN(p.Size.H)}
		if _, dup := picked[c]; dup {
			continue
		}
		picked[c] = struct{}{}
		p.Cells = append(p.Cells, c)
	}
	sort.Slice(p.Cells, func(i, j int) bool {
		if p.Cells[i].Y != p.Cells[j].Y {
			return p.Cells[i].Y < p.Cells[j].Y
		}
		return p.Cells[i].X < p.Cells[j].X
	})
	return p
}
