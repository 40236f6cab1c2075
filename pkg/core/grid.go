package core

// ByteGrid is the row-major 0/1 view of a board that renderers consume.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// FillBools writes 1 for every true value and 0 otherwise. Extra values on
// either side are ignored.
func (g *ByteGrid) FillBools(cells []bool) {
	n := min(len(cells), len(g.data))
	for i := 0; i < n; i++ {
		if cells[i] {
			g.data[i] = 1
			continue
		}
		g.data[i] = 0
	}
}
