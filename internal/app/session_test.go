package app

import (
	"errors"
	"flag"
	"testing"
	"time"

	"trail-life/pkg/sims/life"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-pattern", "glider", "-cell", "4", "-fps", "20", "-trail", "0", "-paused"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	lc := cfg.LifeConfig()
	if lc.Pattern != "glider" || lc.CellSize != 4 || lc.MaxFPS != 20 || lc.TrailLength != 0 || !cfg.Paused {
		t.Fatalf("parsed config = %+v", cfg)
	}
}

func TestNewSessionUnknownPattern(t *testing.T) {
	cfg := NewConfig()
	cfg.Pattern = "nope"
	if _, err := NewSession(cfg, 100, 100, nil); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("err = %v, want ErrUnknownPattern", err)
	}
}

func TestNewSessionCentresPattern(t *testing.T) {
	cfg := NewConfig()
	cfg.Pattern = "block"
	cfg.Cell = 10
	cfg.Paused = true
	s, err := NewSession(cfg, 105, 85, &fakeClock{now: time.Unix(0, 0)})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.Engine.State() != life.Paused {
		t.Fatalf("state = %v, want paused", s.Engine.State())
	}
	v := s.Engine.Viewport()
	if v.OffsetX != 2 || v.OffsetY != 2 {
		t.Fatalf("centering offset = %v,%v, want 2,2", v.OffsetX, v.OffsetY)
	}
	if a := s.Arena(); a.Cols != 10 || a.Rows != 8 {
		t.Fatalf("arena = %+v", a)
	}
	alive, _ := s.Engine.Population()
	if alive != 4 {
		t.Fatalf("alive = %d, want 4", alive)
	}
	for c := range s.Engine.Snapshot() {
		if c.X < 4 || c.X > 5 || c.Y < 3 || c.Y > 4 {
			t.Fatalf("block cell %v not centred", c)
		}
	}
}

func TestSessionTrailFollowsPalette(t *testing.T) {
	cfg := NewConfig()
	cfg.Trail = 7
	s, err := NewSession(cfg, 320, 240, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.Palette.TrailLen() != 7 || s.Engine.TrailLength() != 7 {
		t.Fatalf("trail lengths palette=%d engine=%d", s.Palette.TrailLen(), s.Engine.TrailLength())
	}
}

func TestSessionTickAndActions(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	cfg := NewConfig()
	cfg.Pattern = "blinker"
	cfg.FPS = 10
	s, err := NewSession(cfg, 200, 200, clock)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.Engine.State() != life.Running {
		t.Fatal("session should start running")
	}
	if !s.Tick() {
		t.Fatal("first tick must advance")
	}
	clock.now = clock.now.Add(50 * time.Millisecond)
	if s.Tick() {
		t.Fatal("tick advanced before the interval elapsed")
	}
	if s.Engine.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", s.Engine.Generation())
	}

	s.Apply(ActionToggle)
	s.Apply(ActionStep)
	s.Apply(ActionStep)
	if s.Engine.Generation() != 3 {
		t.Fatalf("generation after steps = %d, want 3", s.Engine.Generation())
	}
	s.Apply(ActionBack)
	if s.Engine.Generation() != 2 {
		t.Fatalf("generation after back = %d, want 2", s.Engine.Generation())
	}

	size := s.Engine.Viewport().CellSize
	s.Apply(ActionZoomIn)
	if s.Engine.Viewport().CellSize != size+1 {
		t.Fatal("zoom in did not grow cells")
	}
	s.Apply(ActionZoomOut)
	if s.Engine.Viewport().CellSize != size {
		t.Fatal("zoom out did not shrink cells")
	}

	for i := 0; i < 100; i++ {
		s.Apply(ActionFaster)
	}
	if s.FPS() != maxFPS {
		t.Fatalf("FPS = %d, want clamp at %d", s.FPS(), maxFPS)
	}
	for i := 0; i < 100; i++ {
		s.Apply(ActionSlower)
	}
	if s.FPS() != 1 {
		t.Fatalf("FPS = %d, want clamp at 1", s.FPS())
	}

	s.Apply(ActionClear)
	if alive, trailing := s.Engine.Population(); alive+trailing != 0 {
		t.Fatal("clear left cells")
	}
	s.Apply(ActionReset)
	if alive, _ := s.Engine.Population(); alive != 3 {
		t.Fatalf("reset restored %d cells, want 3", alive)
	}
}

func TestDragPans(t *testing.T) {
	var d Drag
	if dx, dy := d.Move(10, 10); dx != 0 || dy != 0 {
		t.Fatal("moving without a drag must not pan")
	}
	d.Press()
	if dx, dy := d.Move(15, 7); dx != 5 || dy != -3 {
		t.Fatalf("delta = %v,%v, want 5,-3", dx, dy)
	}
	if dx, dy := d.Move(15, 7); dx != 0 || dy != 0 {
		t.Fatal("stationary pointer must not pan")
	}
	d.Release()
	if d.Grabbing() {
		t.Fatal("still grabbing after release")
	}
	d.Move(100, 100)
	d.Press()
	if dx, dy := d.Move(101, 100); dx != 1 || dy != 0 {
		t.Fatalf("new drag jumped by %v,%v", dx, dy)
	}
}
