//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"conway/internal/app"
	"conway/internal/ui"
	"conway/pkg/core"
	_ "conway/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := app.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(2)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		logger.Error("unknown sim", slog.String("sim", cfg.Sim), slog.Any("available", core.Names()))
		os.Exit(2)
	}

	sim := factory(cfg.SimOptions())
	game := app.New(sim, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("conway: " + sim.Name())
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(w, h)

	logger.Info("starting",
		slog.String("sim", sim.Name()),
		slog.Int("size", cfg.Size),
		slog.Int("buffer", cfg.Buffer),
		slog.Int64("seed", cfg.Seed),
		slog.Int("fps", cfg.FPS),
		slog.Int("panel", ui.PanelWidth),
	)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
