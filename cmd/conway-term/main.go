package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"conway/internal/app"
	"conway/internal/term"
	"conway/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := app.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(2)
	}
	if cfg.Sim != "life" {
		logger.Error("terminal viewer only runs life", slog.String("sim", cfg.Sim))
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Error("creating screen", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		logger.Error("initializing screen", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sim := life.New(life.FromMap(cfg.SimOptions()))
	viewer := term.NewViewer(screen, sim, time.Second/time.Duration(cfg.FPS), cfg.Paused)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = viewer.Run(ctx)
	stop()
	screen.Fini()

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("viewer exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
	h := sim.History()
	logger.Info("stopped",
		slog.Int("generation", h.Generation()),
		slog.Int("live", h.Current().LiveCount()),
		slog.String("hex", h.Current().HexString()),
	)
}
