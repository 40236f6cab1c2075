//go:build !ebiten

package app

import (
	"errors"

	"conway/pkg/core"
)

// ErrNoGUI is returned by every Game method when built without ebiten.
var ErrNoGUI = errors.New("window viewer needs the ebiten build tag")

// Game stands in for the window viewer in headless builds.
type Game struct{}

// New panics: there is no window viewer without the ebiten build tag.
func New(core.Sim, *Config) *Game { panic(ErrNoGUI) }

func (g *Game) Reset(int64) {}

func (g *Game) Update() error { return ErrNoGUI }

func (g *Game) Draw(any) {}

func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
