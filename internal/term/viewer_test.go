package term

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"conway/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestSim(t *testing.T, size int) *life.Sim {
	t.Helper()
	cfg := life.DefaultConfig()
	cfg.Size = size
	cfg.BufferSize = 4
	cfg.Seed = 7
	return life.New(cfg)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func rowText(screen tcell.SimulationScreen, row int) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for col := 0; col < w; col++ {
		runes := cells[row*w+col].Runes
		if len(runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(runes[0])
	}
	return b.String()
}

func TestDrawShowsBoardAndStatus(t *testing.T) {
	screen := newTestScreen(t, 80, 6)
	sim := newTestSim(t, 3)
	cells := []bool{
		false, true, false,
		false, true, false,
		false, true, false,
	}
	if err := sim.History().Current().SetCells(cells); err != nil {
		t.Fatalf("SetCells: %v", err)
	}

	v := NewViewer(screen, sim, time.Second, true)
	v.Draw()

	for row := 0; row < 3; row++ {
		if got := rowText(screen, row); !strings.HasPrefix(got, "  ██  ") {
			t.Fatalf("row %d = %q, want prefix %q", row, got, "  ██  ")
		}
	}
	status := rowText(screen, 5)
	for _, want := range []string{"gen 0", "live 3", "kept 1/4", "paused"} {
		if !strings.Contains(status, want) {
			t.Fatalf("status %q missing %q", status, want)
		}
	}
}

func TestDrawClipsToSmallScreen(t *testing.T) {
	screen := newTestScreen(t, 4, 3)
	sim := newTestSim(t, 32)
	v := NewViewer(screen, sim, time.Second, true)
	v.Draw()

	_, w, h := screen.GetContents()
	if w != 4 || h != 3 {
		t.Fatalf("screen size changed to %dx%d", w, h)
	}
}

func TestHandleEventSteps(t *testing.T) {
	screen := newTestScreen(t, 40, 10)
	sim := newTestSim(t, 8)
	v := NewViewer(screen, sim, time.Second, false)

	if v.HandleEvent(key(tcell.KeyRight)) {
		t.Fatal("right arrow must not quit")
	}
	if !v.Paused() {
		t.Fatal("manual stepping should pause the viewer")
	}
	v.HandleEvent(runeKey('n'))
	if got := sim.History().Generation(); got != 2 {
		t.Fatalf("generation = %d, want 2", got)
	}

	v.HandleEvent(key(tcell.KeyLeft))
	v.HandleEvent(runeKey('b'))
	if got := sim.History().Generation(); got != 0 {
		t.Fatalf("generation after two steps back = %d, want 0", got)
	}
	v.HandleEvent(key(tcell.KeyLeft))
	if got := sim.History().Generation(); got != 0 {
		t.Fatalf("stepping back past the start moved to %d", got)
	}
}

func TestHandleEventPauseToggle(t *testing.T) {
	screen := newTestScreen(t, 40, 10)
	v := NewViewer(screen, newTestSim(t, 4), time.Second, true)
	v.HandleEvent(runeKey(' '))
	if v.Paused() {
		t.Fatal("space should resume")
	}
	v.HandleEvent(runeKey(' '))
	if !v.Paused() {
		t.Fatal("space should pause again")
	}
}

func TestHandleEventResetAndRandomize(t *testing.T) {
	screen := newTestScreen(t, 40, 10)
	sim := newTestSim(t, 8)
	initial := sim.History().Current().HexString()
	v := NewViewer(screen, sim, time.Second, true)
	v.newSeed = func() int64 { return 12345 }

	v.HandleEvent(runeKey('n'))
	v.HandleEvent(runeKey('r'))
	if sim.History().Generation() != 0 || sim.History().Current().HexString() != initial {
		t.Fatal("r should restart from the configured seed")
	}

	v.HandleEvent(runeKey('s'))
	if got := sim.Config().Seed; got != 12345 {
		t.Fatalf("seed = %d, want 12345", got)
	}
	if sim.History().Current().HexString() == initial {
		t.Fatal("s should draw a fresh board")
	}
}

func TestHandleEventQuit(t *testing.T) {
	screen := newTestScreen(t, 40, 10)
	v := NewViewer(screen, newTestSim(t, 4), time.Second, true)
	for _, ev := range []*tcell.EventKey{runeKey('q'), key(tcell.KeyEscape), key(tcell.KeyCtrlC)} {
		if !v.HandleEvent(ev) {
			t.Fatalf("%s should quit", ev.Name())
		}
	}
	if v.HandleEvent(runeKey('x')) {
		t.Fatal("unbound keys must not quit")
	}
}

func TestRunProcessesInjectedKeys(t *testing.T) {
	screen := newTestScreen(t, 40, 10)
	sim := newTestSim(t, 8)
	v := NewViewer(screen, sim, time.Hour, true)

	screen.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := v.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := sim.History().Generation(); got != 2 {
		t.Fatalf("generation = %d, want 2", got)
	}
	if !strings.Contains(rowText(screen, 9), "gen 2") {
		t.Fatalf("status not redrawn: %q", rowText(screen, 9))
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	screen := newTestScreen(t, 40, 10)
	v := NewViewer(screen, newTestSim(t, 4), time.Hour, true)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := v.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run err = %v, want context.Canceled", err)
	}
}
