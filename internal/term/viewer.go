// Package term draws a life simulation in a terminal and lets the user step
// through its history with the keyboard.
package term

import (
	"context"
	"fmt"
	"time"

	"conway/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

var (
	liveStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// Viewer renders a life.Sim onto a tcell screen. Each cell takes two columns
// so the board looks square.
type Viewer struct {
	screen   tcell.Screen
	sim      *life.Sim
	interval time.Duration
	paused   bool
	newSeed  func() int64
}

// NewViewer creates a viewer advancing one generation per interval while
// running.
func NewViewer(screen tcell.Screen, sim *life.Sim, interval time.Duration, paused bool) *Viewer {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Viewer{
		screen:   screen,
		sim:      sim,
		interval: interval,
		paused:   paused,
		newSeed:  func() int64 { return time.Now().UnixNano() },
	}
}

// Paused reports whether automatic stepping is off.
func (v *Viewer) Paused() bool { return v.paused }

// Run draws and processes input until the user quits or ctx is done. The
// caller owns the screen's Init and Fini.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(v.interval)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if v.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if v.paused {
				continue
			}
			v.sim.Step()
		}
		v.Draw()
	}
}

// HandleEvent applies a key or resize event and reports whether the user
// asked to quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRight:
			v.paused = true
			v.sim.Step()
		case tcell.KeyLeft:
			v.paused = true
			v.sim.StepBack()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ':
				v.paused = !v.paused
			case 'n':
				v.paused = true
				v.sim.Step()
			case 'b':
				v.paused = true
				v.sim.StepBack()
			case 'r':
				v.sim.Reset(v.sim.Config().Seed)
			case 's':
				v.sim.Reset(v.newSeed())
			}
		}
	}
	return false
}

// Draw paints the current generation and a status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	grid := v.sim.History().Current()
	n := grid.Size()
	cells := grid.Cells()

	rows := min(n, height-1)
	cols := min(n, width/2)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			r, style := ' ', deadStyle
			if cells[row*n+col] {
				r, style = '█', liveStyle
			}
			v.screen.SetContent(2*col, row, r, nil, style)
			v.screen.SetContent(2*col+1, row, r, nil, style)
		}
	}

	if height > 0 {
		drawText(v.screen, 0, height-1, width, v.status(), statusStyle)
	}
	v.screen.Show()
}

func (v *Viewer) status() string {
	h := v.sim.History()
	state := "running"
	if v.paused {
		state = "paused"
	}
	return fmt.Sprintf(" gen %d  live %d  kept %d/%d  %s  |  ←/→ step  space run  r reset  s randomize  q quit",
		h.Generation(), h.Current().LiveCount(), h.Len(), h.Cap(), state)
}

func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= width {
			return
		}
		s.SetContent(col, y, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		s.SetContent(col, y, ' ', nil, style)
	}
}
