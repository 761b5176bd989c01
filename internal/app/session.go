package app

import (
	"errors"
	"fmt"

	"trail-life/internal/core"
	pcore "trail-life/pkg/core"
	"trail-life/pkg/palette"
	"trail-life/pkg/sims/life"
	"trail-life/pkg/view"
)

// ErrUnknownPattern is returned for a pattern name missing from the registry.
var ErrUnknownPattern = errors.New("unknown pattern")

// Action is a control request from a UI button or key.
type Action uint8

const (
	ActionToggle Action = iota
	ActionStep
	ActionBack
	ActionReset
	ActionClear
	ActionZoomIn
	ActionZoomOut
	ActionFaster
	ActionSlower
)

const maxFPS = 60

// Session wires an engine to its palette and animation driver for one window.
type Session struct {
	Engine  *life.Engine
	Palette *palette.Mapper
	Driver  *core.Driver

	fps    int
	width  int
	height int
}

// NewSession seeds an engine for a w x h pixel window. The pattern is centred
// in the arena that fits the window.
func NewSession(cfg *Config, w, h int, clock core.Clock) (*Session, error) {
	lc := cfg.LifeConfig()
	factory, ok := life.Patterns()[lc.Pattern]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPattern, lc.Pattern)
	}

	pal := palette.Default(lc.TrailLength)
	lc.TrailLength = pal.TrailLen()
	engine := life.New(lc)

	v, arena := engine.Viewport().Centered(w, h)
	engine.SetViewport(v)
	p := factory(pcore.Size{W: arena.Cols, H: arena.Rows}, lc)
	engine.Seed(p, p.CenteredAnchor(arena.Cols, arena.Rows))
	if !cfg.Paused {
		engine.Start()
	}

	s := &Session{
		Engine:  engine,
		Palette: pal,
		fps:     min(max(lc.MaxFPS, 1), maxFPS),
		width:   w,
		height:  h,
	}
	s.Driver = core.NewDriver(engine, s.fps, clock)
	return s, nil
}

// Tick runs one render frame worth of scheduling and reports whether a
// generation was advanced.
func (s *Session) Tick() bool { return s.Driver.Tick() }

// FPS returns the current maximum generations per second.
func (s *Session) FPS() int { return s.fps }

// Size returns the window size in pixels.
func (s *Session) Size() (int, int) { return s.width, s.height }

// Resize records a new window size. The pan offset is kept so cells do not
// jump under the pointer.
func (s *Session) Resize(w, h int) {
	s.width, s.height = max(w, 1), max(h, 1)
}

// Arena returns the cell grid that fits the current window.
func (s *Session) Arena() view.Arena {
	return s.Engine.Viewport().Layout(s.width, s.height)
}

// Apply performs a control action.
func (s *Session) Apply(a Action) {
	e := s.Engine
	switch a {
	case ActionToggle:
		e.Toggle()
		if e.State() == life.Running {
			s.Driver.Restart()
		}
	case ActionStep:
		e.Step()
	case ActionBack:
		e.Back()
	case ActionReset:
		e.Reset()
	case ActionClear:
		e.Clear()
	case ActionZoomIn:
		e.Zoom(1, float64(s.width)/2, float64(s.height)/2)
	case ActionZoomOut:
		e.Zoom(-1, float64(s.width)/2, float64(s.height)/2)
	case ActionFaster:
		s.setFPS(s.fps + 1)
	case ActionSlower:
		s.setFPS(s.fps - 1)
	}
}

func (s *Session) setFPS(fps int) {
	s.fps = min(max(fps, 1), maxFPS)
	s.Driver.SetFPS(s.fps)
}
