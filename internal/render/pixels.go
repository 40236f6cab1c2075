package render

import "image/color"

// Palette holds the colours used for live and dead cells.
type Palette struct {
	Live color.Color
	Dead color.Color
}

// DefaultPalette draws live cells white on black.
func DefaultPalette() Palette {
	return Palette{Live: color.White, Dead: color.Black}
}

// fill writes one RGBA pixel per cell into buf. Any non-zero cell is live.
func (p Palette) fill(buf []byte, cells []uint8) {
	live := rgba(p.Live)
	dead := rgba(p.Dead)
	for i, c := range cells {
		px := dead
		if c != 0 {
			px = live
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

func rgba(c color.Color) [4]byte {
	if c == nil {
		return [4]byte{}
	}
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
