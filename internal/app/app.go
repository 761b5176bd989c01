//go:build ebiten

package app

import (
	"trail-life/internal/render"
	"trail-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface. It translates keyboard
// and mouse input into engine calls and paints a snapshot every frame.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	drag    Drag
}

// New constructs a Game for the provided session.
func New(s *Session) *Game {
	w, h := s.Size()
	return &Game{
		session: s,
		painter: render.NewGridPainter(w, h),
		hud:     ui.NewHUD(s.Engine),
		overlay: ui.NewOverlay(),
	}
}

var keyActions = map[ebiten.Key]Action{
	ebiten.KeySpace:        ActionToggle,
	ebiten.KeyN:            ActionStep,
	ebiten.KeyB:            ActionBack,
	ebiten.KeyR:            ActionReset,
	ebiten.KeyC:            ActionClear,
	ebiten.KeyEqual:        ActionZoomIn,
	ebiten.KeyMinus:        ActionZoomOut,
	ebiten.KeyBracketRight: ActionFaster,
	ebiten.KeyBracketLeft:  ActionSlower,
}

// Update handles per-frame input and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) {
			g.session.Apply(action)
		}
	}
	g.handlePointer()
	g.overlay.Update()
	g.session.Tick()
	g.hud.Update(g.session.FPS())
	return nil
}

func (g *Game) handlePointer() {
	e := g.session.Engine
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.drag.Press()
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.drag.Release()
	}
	if dx, dy := g.drag.Move(x, y); dx != 0 || dy != 0 {
		e.Pan(dx, dy)
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		alive := !ebiten.IsKeyPressed(ebiten.KeyShift)
		e.PaintCell(x, y, alive)
	}

	if _, wy := ebiten.Wheel(); wy > 0 {
		e.Zoom(1, x, y)
	} else if wy < 0 {
		e.Zoom(-1, x, y)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.session
	g.painter.Draw(screen, s.Engine.Snapshot(), s.Engine.Viewport(), s.Palette)
	g.hud.Draw(screen)
	g.overlay.Draw(screen)
}

// Layout tracks the window size so the painter always covers it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.session.Resize(outsideWidth, outsideHeight)
	g.painter.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
