package life

import (
	"conway/pkg/core"
)

// Sim exposes a History through the core.Sim contract so the viewers can
// drive it like any other automaton.
type Sim struct {
	cfg     Config
	history *History
	display *core.ByteGrid
}

// New returns a Sim for cfg, seeded with cfg.Seed.
func New(cfg Config) *Sim {
	s := &Sim{cfg: cfg, display: core.NewByteGrid(cfg.Size, cfg.Size)}
	s.Reset(cfg.Seed)
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "life" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Size, H: s.cfg.Size} }

// Config returns the configuration the sim was built with.
func (s *Sim) Config() Config { return s.cfg }

// History exposes the underlying generation timeline.
func (s *Sim) History() *History { return s.history }

// Cells renders the current generation as 0/1 values.
func (s *Sim) Cells() []uint8 {
	s.display.FillBools(s.history.Current().cells)
	return s.display.Cells()
}

// Reset discards the history and starts from a board randomized with seed.
func (s *Sim) Reset(seed int64) {
	s.cfg.Seed = seed
	s.history = NewHistory(s.cfg.BufferSize, s.cfg.Size, WithSeed(seed))
}

// Step advances one generation.
func (s *Sim) Step() { s.history.StepForward() }

// StepBack returns to the previous retained generation, if any.
func (s *Sim) StepBack() { s.history.StepBackward() }

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
