package life

import (
	"iter"

	"trail-life/pkg/core"
	"trail-life/pkg/view"
)

// State is the run state of an Engine.
type State uint8

const (
	// Uninitialized is the state before the first seed.
	Uninitialized State = iota
	// Paused engines only advance through Step.
	Paused
	// Running engines advance on every AdvanceOneGeneration call.
	Running
)

func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case Running:
		return "running"
	default:
		return "uninitialized"
	}
}

// Engine owns one cell map and one viewport and exposes the operations the
// renderer, input translator and animation driver call. It is not safe for
// concurrent use; all calls are expected from a single loop.
type Engine struct {
	cells    *CellMap
	shared   bool
	viewport view.Viewport

	trailLen   int
	state      State
	generation int

	pattern Pattern
	anchor  core.Coord
	seeded  bool

	history      []*CellMap
	historyDepth int
}

// New returns an uninitialized engine configured from cfg.
func New(cfg Config) *Engine {
	return &Engine{
		cells:        NewCellMap(0),
		viewport:     view.New(cfg.CellSize),
		trailLen:     max(cfg.TrailLength, 0),
		historyDepth: max(cfg.History, 0),
	}
}

// State reports whether the engine is uninitialized, paused or running.
func (e *Engine) State() State { return e.state }

// Generation returns the number of generations advanced since the last seed.
func (e *Engine) Generation() int { return e.generation }

// TrailLength returns the number of generations a dead cell keeps fading.
func (e *Engine) TrailLength() int { return e.trailLen }

// Viewport returns the current viewport.
func (e *Engine) Viewport() view.Viewport { return e.viewport }

// SetViewport replaces the viewport, for example after a window resize.
func (e *Engine) SetViewport(v view.Viewport) {
	v.CellSize = max(v.CellSize, 1)
	e.viewport = v
}

// Population returns the number of alive and trailing cells.
func (e *Engine) Population() (alive, trailing int) { return e.cells.Population() }

// Seed replaces the state with p placed at anchor, every live cell at age 1,
// and pauses the engine.
func (e *Engine) Seed(p Pattern, anchor core.Coord) {
	e.pattern = p
	e.anchor = anchor
	e.seeded = true
	e.load()
}

func (e *Engine) load() {
	cells := NewCellMap(len(e.pattern.Cells))
	for _, c := range e.pattern.Cells {
		cells.Set(e.anchor.Add(c.X, c.Y), 1)
	}
	e.publish(cells)
	e.generation = 0
	e.dropHistory()
	e.state = Paused
}

func (e *Engine) dropHistory() {
	clear(e.history)
	e.history = e.history[:0]
}

// Start resumes automatic advancing. It has no effect before the first seed.
func (e *Engine) Start() {
	if e.state == Paused {
		e.state = Running
	}
}

// Pause stops automatic advancing.
func (e *Engine) Pause() {
	if e.state == Running {
		e.state = Paused
	}
}

// Toggle switches between running and paused.
func (e *Engine) Toggle() {
	switch e.state {
	case Running:
		e.Pause()
	case Paused:
		e.Start()
	}
}

// Step advances exactly one generation while paused. Running engines ignore it.
func (e *Engine) Step() {
	if e.state != Paused {
		return
	}
	e.advance()
}

// AdvanceOneGeneration is called by the animation driver once per eligible
// tick. Paused engines ignore it.
func (e *Engine) AdvanceOneGeneration() {
	if e.state != Running {
		return
	}
	e.advance()
}

func (e *Engine) advance() {
	next := Advance(e.cells, e.trailLen)
	if e.historyDepth > 0 {
		if len(e.history) == e.historyDepth {
			copy(e.history, e.history[1:])
			e.history = e.history[:len(e.history)-1]
		}
		e.history = append(e.history, e.cells)
	}
	e.publish(next)
	e.generation++
}

// Back restores the previous generation while paused. It reports whether a
// generation was restored.
func (e *Engine) Back() bool {
	if e.state != Paused || len(e.history) == 0 {
		return false
	}
	last := len(e.history) - 1
	prev := e.history[last]
	e.history[last] = nil
	e.history = e.history[:last]
	e.publish(prev)
	// prev may still back a snapshot taken before it was archived.
	e.shared = true
	e.generation--
	return true
}

// HistoryLen returns the number of generations Back can restore.
func (e *Engine) HistoryLen() int { return len(e.history) }

// PaintCell sets the cell under the screen point (px, py) alive (age 1) or
// empty, bypassing the rules. It works in any state.
func (e *Engine) PaintCell(px, py float64, alive bool) core.Coord {
	c := e.viewport.ScreenToWorld(px, py)
	if e.shared {
		e.cells = e.cells.Clone()
		e.shared = false
	}
	if alive {
		e.cells.Set(c, 1)
	} else {
		e.cells.Set(c, 0)
	}
	if e.state == Uninitialized {
		e.state = Paused
	}
	return c
}

// Reset reloads the last seeded pattern, or clears the grid if none was
// seeded, and pauses the engine.
func (e *Engine) Reset() {
	if !e.seeded {
		e.Clear()
		return
	}
	e.load()
}

// Clear empties the grid and pauses the engine. The last pattern is kept for
// a later Reset.
func (e *Engine) Clear() {
	e.publish(NewCellMap(0))
	e.generation = 0
	e.dropHistory()
	e.state = Paused
}

// Pan shifts the viewport by (dx, dy) pixels.
func (e *Engine) Pan(dx, dy float64) { e.viewport = e.viewport.Pan(dx, dy) }

// Zoom changes the cell size by one step around the screen point (ax, ay).
func (e *Engine) Zoom(direction int, ax, ay float64) {
	e.viewport = e.viewport.Zoom(direction, ax, ay)
}

// Snapshot returns the entries as they are at call time. Later engine calls
// never change what the returned sequence yields.
func (e *Engine) Snapshot() iter.Seq2[core.Coord, int] {
	e.shared = true
	return e.cells.All()
}

// publish swaps in a fully built map so readers see whole generations only.
func (e *Engine) publish(m *CellMap) {
	e.cells = m
	e.shared = false
}
