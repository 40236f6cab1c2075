//go:build ebiten

package app

import (
	"time"

	"conway/internal/render"
	"conway/internal/ui"
	"conway/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.BoardPainter
	hud     *ui.HUD
	pace    *core.FixedStep

	scale  int
	paused bool
	seed   int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewBoardPainter(size.W, size.H, render.DefaultPalette()),
		hud:     ui.NewHUD(sim, ui.PanelWidth),
		pace:    core.NewFixedStep(cfg.FPS),
		scale:   cfg.Scale,
		paused:  cfg.Paused,
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.pace.Reset()
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	action := ui.ActionNone
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		action = ui.ActionTogglePause
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight), inpututil.IsKeyJustPressed(ebiten.KeyN):
		action = ui.ActionNext
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft), inpututil.IsKeyJustPressed(ebiten.KeyB):
		action = ui.ActionPrevious
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		action = ui.ActionRandomize
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.Reset(g.seed)
	}
	if clicked := g.hud.Update(g.boardWidth(), g.paused); clicked != ui.ActionNone {
		action = clicked
	}
	g.apply(action)

	if !g.paused && g.pace.ShouldStep() {
		g.sim.Step()
	}
	return nil
}

func (g *Game) apply(action ui.Action) {
	switch action {
	case ui.ActionTogglePause:
		g.paused = !g.paused
		g.pace.Reset()
	case ui.ActionNext:
		g.paused = true
		g.sim.Step()
	case ui.ActionPrevious:
		g.paused = true
		if r, ok := g.sim.(core.Rewinder); ok {
			r.StepBack()
		}
	case ui.ActionRandomize:
		g.Reset(time.Now().UnixNano())
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.sim.Cells(), g.scale)
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, g.boardWidth(), h)
}

// Layout returns the logical screen size: the board plus the HUD column.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return g.boardWidth() + ui.PanelWidth, max(s.H*g.scale, ui.MinPanelHeight)
}

func (g *Game) boardWidth() int { return g.sim.Size().W * g.scale }
