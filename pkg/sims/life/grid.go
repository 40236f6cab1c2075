package life

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"conway/pkg/core"
)

// Grid holds one generation of a square board in row-major order. Cells
// outside the board do not exist; there is no wrap-around.
type Grid struct {
	n     int
	cells []bool
}

// NewGrid allocates an n×n grid with every cell dead. A non-positive n yields
// an empty grid.
func NewGrid(n int) *Grid {
	if n < 0 {
		n = 0
	}
	return &Grid{n: n, cells: make([]bool, n*n)}
}

// Size returns the side length of the grid.
func (g *Grid) Size() int { return g.n }

// Cells returns a copy of the cell states in row-major order.
func (g *Grid) Cells() []bool { return slices.Clone(g.cells) }

// Get reports whether the cell at (row, col) is alive.
func (g *Grid) Get(row, col int) (bool, error) {
	idx, err := g.index(row, col)
	if err != nil {
		return false, err
	}
	return g.cells[idx], nil
}

// SetCell writes a single cell.
func (g *Grid) SetCell(row, col int, alive bool) error {
	idx, err := g.index(row, col)
	if err != nil {
		return err
	}
	g.cells[idx] = alive
	return nil
}

// SetCells replaces the whole state. The slice must hold exactly n*n values
// and is copied.
func (g *Grid) SetCells(cells []bool) error {
	if len(cells) != len(g.cells) {
		return fmt.Errorf("set cells: got %d values for a %dx%d grid: %w", len(cells), g.n, g.n, ErrInvalidInput)
	}
	g.cells = slices.Clone(cells)
	return nil
}

// Randomize sets every cell with an independent coin flip drawn from r.
func (g *Grid) Randomize(r *rand.Rand) {
	cells := make([]bool, len(g.cells))
	core.FillBools(r, cells)
	g.cells = cells
}

// RandomizeSeed is Randomize with a freshly seeded generator.
func (g *Grid) RandomizeSeed(seed int64) {
	g.Randomize(core.NewRNG(seed).Source())
}

// LiveNeighbors counts the live cells in the 3×3 window around index,
// excluding the cell itself and any position off the board.
func (g *Grid) LiveNeighbors(index int) int {
	if index < 0 || index >= len(g.cells) {
		return 0
	}
	row, col := index/g.n, index%g.n
	count := 0
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if r == row && c == col {
				continue
			}
			if !g.inBounds(r, c) {
				continue
			}
			if g.cells[r*g.n+c] {
				count++
			}
		}
	}
	return count
}

// LiveCount returns the number of live cells.
func (g *Grid) LiveCount() int {
	total := 0
	for _, alive := range g.cells {
		if alive {
			total++
		}
	}
	return total
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{n: g.n, cells: slices.Clone(g.cells)}
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	return g.n == other.n && slices.Equal(g.cells, other.cells)
}

// String draws the grid with one block per live cell and a newline per row.
func (g *Grid) String() string {
	var b strings.Builder
	for row := 0; row < g.n; row++ {
		for col := 0; col < g.n; col++ {
			if g.cells[row*g.n+col] {
				b.WriteString("█")
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.n && col >= 0 && col < g.n
}

func (g *Grid) index(row, col int) (int, error) {
	if !g.inBounds(row, col) {
		return 0, fmt.Errorf("cell (%d,%d) on a %dx%d grid: %w", row, col, g.n, g.n, ErrIndexOutOfRange)
	}
	return row*g.n + col, nil
}
