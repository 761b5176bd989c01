// Package term runs the automaton in a terminal. Each character cell is one
// screen pixel; the bottom row holds a status line.
package term

import (
	"context"
	"fmt"
	"time"

	"trail-life/internal/app"
	"trail-life/internal/render"
	"trail-life/internal/ui"

	"github.com/gdamore/tcell/v2"
)

// Terminal draws a session onto a tcell screen and feeds it input events.
type Terminal struct {
	screen  tcell.Screen
	session *app.Session
	frame   *render.Frame
	styles  []tcell.Style
	status  tcell.Style
	drag    app.Drag
	help    bool
}

// New binds a session to an initialised screen.
func New(screen tcell.Screen, s *app.Session) *Terminal {
	t := &Terminal{
		screen:  screen,
		session: s,
		status:  tcell.StyleDefault.Reverse(true),
	}
	for _, c := range s.Palette.Palette() {
		bg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		t.styles = append(t.styles, tcell.StyleDefault.Background(bg))
	}
	w, h := screen.Size()
	t.resize(w, h)
	return t
}

func (t *Terminal) resize(w, h int) {
	gridH := max(h-1, 1)
	t.session.Resize(w, gridH)
	if t.frame == nil {
		t.frame = render.NewFrame(w, gridH)
		return
	}
	t.frame.Resize(w, gridH)
}

// Draw paints the current snapshot and the status line, then shows the screen.
func (t *Terminal) Draw() {
	e := t.session.Engine
	t.frame.Rasterize(e.Snapshot(), e.Viewport(), t.session.Palette)
	for y := 0; y < t.frame.H; y++ {
		for x := 0; x < t.frame.W; x++ {
			t.screen.SetContent(x, y, ' ', nil, t.styles[t.frame.At(x, y)])
		}
	}
	if t.help {
		t.drawHelp()
	}
	t.drawStatus()
	t.screen.Show()
}

func (t *Terminal) drawHelp() {
	for y, line := range ui.HelpLines() {
		if y >= t.frame.H {
			return
		}
		for x, r := range []rune(" " + line + " ") {
			if x >= t.frame.W {
				break
			}
			t.screen.SetContent(x, y, r, nil, t.status)
		}
	}
}

func (t *Terminal) drawStatus() {
	w, h := t.screen.Size()
	if h < 2 {
		return
	}
	line := []rune(t.StatusLine())
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(line) {
			r = line[x]
		}
		t.screen.SetContent(x, h-1, r, nil, t.status)
	}
}

// StatusLine summarises the engine state for the bottom row.
func (t *Terminal) StatusLine() string {
	e := t.session.Engine
	alive, trailing := e.Population()
	return fmt.Sprintf(" %s  gen %d  alive %d  trail %d  zoom %d  fps %d  h: help",
		e.State(), e.Generation(), alive, trailing, e.Viewport().CellSize, t.session.FPS())
}

var runeActions = map[rune]app.Action{
	' ': app.ActionToggle,
	'n': app.ActionStep,
	'b': app.ActionBack,
	'r': app.ActionReset,
	'c': app.ActionClear,
	'+': app.ActionZoomIn,
	'=': app.ActionZoomIn,
	'-': app.ActionZoomOut,
	']': app.ActionFaster,
	'[': app.ActionSlower,
}

// HandleEvent applies one input event. It returns false when the user asked
// to quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	e := t.session.Engine
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			e.Pan(1, 0)
		case tcell.KeyRight:
			e.Pan(-1, 0)
		case tcell.KeyUp:
			e.Pan(0, 1)
		case tcell.KeyDown:
			e.Pan(0, -1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'h':
				t.help = !t.help
			}
			if a, ok := runeActions[ev.Rune()]; ok {
				t.session.Apply(a)
			}
		}
	case *tcell.EventMouse:
		t.handleMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		t.resize(w, h)
		t.screen.Sync()
	}
	return true
}

func (t *Terminal) handleMouse(ev *tcell.EventMouse) {
	e := t.session.Engine
	mx, my := ev.Position()
	x, y := float64(mx), float64(my)
	buttons := ev.Buttons()

	if buttons&tcell.Button1 != 0 {
		if !t.drag.Grabbing() {
			t.drag.Move(x, y)
			t.drag.Press()
		}
	} else {
		t.drag.Release()
	}
	if dx, dy := t.drag.Move(x, y); dx != 0 || dy != 0 {
		e.Pan(dx, dy)
	}

	if buttons&tcell.Button2 != 0 && my < t.frame.H {
		e.PaintCell(x, y, ev.Modifiers()&tcell.ModShift == 0)
	}
	switch {
	case buttons&tcell.WheelUp != 0:
		e.Zoom(1, x, y)
	case buttons&tcell.WheelDown != 0:
		e.Zoom(-1, x, y)
	}
}

// Run drives the session until ctx is cancelled or the user quits. The screen
// is redrawn tps times a second; the engine advances at the session's FPS.
func (t *Terminal) Run(ctx context.Context, tps int) error {
	if tps <= 0 {
		tps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !t.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			t.session.Tick()
			t.Draw()
		}
	}
}
