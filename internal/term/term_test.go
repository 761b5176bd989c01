package term

import (
	"context"
	"maps"
	"strings"
	"testing"
	"time"

	"trail-life/internal/app"
	"trail-life/pkg/core"
	"trail-life/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func newTestTerminal(t *testing.T, pattern string) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(20, 11)

	cfg := app.NewConfig()
	cfg.Pattern = pattern
	cfg.Cell = 1
	cfg.Paused = true
	s, err := app.NewSession(cfg, 20, 10, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return New(screen, s), screen
}

func aliveAt(e *life.Engine, c core.Coord) bool {
	return maps.Collect(e.Snapshot())[c] > 0
}

func cellStyle(screen tcell.SimulationScreen, x, y int) tcell.Style {
	cells, w, _ := screen.GetContents()
	return cells[y*w+x].Style
}

func TestDrawPaintsCellsAndStatus(t *testing.T) {
	term, screen := newTestTerminal(t, "block")
	term.Draw()

	pal := term.session.Palette
	alive := term.styles[pal.Index(1)]
	empty := term.styles[0]

	// The block is centred in the 20x10 arena.
	for _, c := range []core.Coord{{X: 9, Y: 4}, {X: 10, Y: 4}, {X: 9, Y: 5}, {X: 10, Y: 5}} {
		if got := cellStyle(screen, c.X, c.Y); got != alive {
			t.Fatalf("cell %v not drawn alive", c)
		}
	}
	if got := cellStyle(screen, 0, 0); got != empty {
		t.Fatal("empty cell not drawn with the background")
	}

	cells, w, h := screen.GetContents()
	var status strings.Builder
	for x := 0; x < w; x++ {
		status.WriteString(string(cells[(h-1)*w+x].Runes))
	}
	if !strings.Contains(status.String(), "paused") {
		t.Fatalf("status line %q missing state", status.String())
	}
}

func TestHandleKeys(t *testing.T) {
	term, _ := newTestTerminal(t, "blinker")
	e := term.session.Engine

	if !term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)) {
		t.Fatal("step key quit")
	}
	if e.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", e.Generation())
	}
	term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if e.State() != life.Running {
		t.Fatal("space did not start the engine")
	}
	term.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if e.Viewport().OffsetX != 1 {
		t.Fatalf("left arrow pan = %v", e.Viewport().OffsetX)
	}
	if term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q must quit")
	}
	if term.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)) {
		t.Fatal("ctrl-c must quit")
	}
}

func TestHandleMouse(t *testing.T) {
	term, _ := newTestTerminal(t, "block")
	e := term.session.Engine

	term.HandleEvent(tcell.NewEventMouse(2, 2, tcell.Button2, tcell.ModNone))
	if !aliveAt(e, core.Coord{X: 2, Y: 2}) {
		t.Fatal("right click did not paint a cell")
	}
	term.HandleEvent(tcell.NewEventMouse(2, 2, tcell.Button2, tcell.ModShift))
	if aliveAt(e, core.Coord{X: 2, Y: 2}) {
		t.Fatal("shift right click did not erase the cell")
	}

	term.HandleEvent(tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone))
	term.HandleEvent(tcell.NewEventMouse(8, 4, tcell.Button1, tcell.ModNone))
	term.HandleEvent(tcell.NewEventMouse(8, 4, tcell.ButtonNone, tcell.ModNone))
	term.HandleEvent(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	v := e.Viewport()
	if v.OffsetX != 3 || v.OffsetY != -1 {
		t.Fatalf("drag panned to %v,%v, want 3,-1", v.OffsetX, v.OffsetY)
	}

	term.HandleEvent(tcell.NewEventMouse(4, 4, tcell.WheelUp, tcell.ModNone))
	if e.Viewport().CellSize != 2 {
		t.Fatalf("wheel up cell size = %d, want 2", e.Viewport().CellSize)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	term, _ := newTestTerminal(t, "glider")
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- term.Run(ctx, 120) }()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestRunStopsOnQuitKey(t *testing.T) {
	term, screen := newTestTerminal(t, "glider")
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	done := make(chan error, 1)
	go func() { done <- term.Run(context.Background(), 120) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on q")
	}
}

func TestHelpToggle(t *testing.T) {
	term, screen := newTestTerminal(t, "block")
	term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone))
	term.Draw()

	cells, w, _ := screen.GetContents()
	var first strings.Builder
	for x := 0; x < w; x++ {
		first.WriteString(string(cells[x].Runes))
	}
	if !strings.Contains(first.String(), "space") {
		t.Fatalf("help row %q missing key bindings", first.String())
	}

	term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone))
	term.Draw()
	if got := cellStyle(screen, 1, 0); got != term.styles[0] {
		t.Fatal("help still drawn after toggling off")
	}
}
