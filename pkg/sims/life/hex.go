package life

import "strings"

const hexDigits = "0123456789abcdef"

// HexString packs the cells four at a time into hex digits, first cell of a
// group in bit 0, in row-major order. A space follows every fourth digit. A
// trailing partial group is padded with dead cells.
//
// Two grids of the same size are equal iff their hex strings match.
func (g *Grid) HexString() string {
	groups := (len(g.cells) + 3) / 4
	var b strings.Builder
	b.Grow(groups + groups/4)
	for i := 0; i < groups; i++ {
		var v byte
		for j := 0; j < 4; j++ {
			p := i*4 + j
			if p < len(g.cells) && g.cells[p] {
				v |= 1 << j
			}
		}
		b.WriteByte(hexDigits[v])
		if i%4 == 3 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
