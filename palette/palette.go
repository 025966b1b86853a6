/*
Package palette implements the fixed 16 color PICO-8 display palette and
the mapping from arbitrary colors to palette indices.

The palette order is part of the cartridge format; every sprite pixel is
stored as an index into this table. Index 0 doubles as the fallback for
transparent and out of bounds pixels since the format has no transparency
bit of its own.
*/
package palette

import "image/color"

// Indices of the sixteen palette entries, in display order.
const (
	Black uint8 = iota
	DarkBlue
	DarkPurple
	DarkGreen
	Brown
	DarkGrey
	LightGrey
	White
	Red
	Orange
	Yellow
	Green
	Blue
	Indigo
	Pink
	Peach
)

// Colors is the PICO-8 palette. It is initialized once and must never be
// modified; the ordering is meaningful to every downstream consumer.
var Colors = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xff}, // 0: black
	color.RGBA{0x1d, 0x2b, 0x53, 0xff}, // 1: dark blue
	color.RGBA{0x7e, 0x25, 0x53, 0xff}, // 2: dark purple
	color.RGBA{0x00, 0x87, 0x51, 0xff}, // 3: dark green
	color.RGBA{0xab, 0x52, 0x36, 0xff}, // 4: brown
	color.RGBA{0x5f, 0x57, 0x4f, 0xff}, // 5: dark grey
	color.RGBA{0xc2, 0xc3, 0xc7, 0xff}, // 6: light grey
	color.RGBA{0xff, 0xf1, 0xe8, 0xff}, // 7: white
	color.RGBA{0xff, 0x00, 0x4d, 0xff}, // 8: red
	color.RGBA{0xff, 0xa3, 0x00, 0xff}, // 9: orange
	color.RGBA{0xff, 0xec, 0x27, 0xff}, // 10: yellow
	color.RGBA{0x00, 0xe4, 0x36, 0xff}, // 11: green
	color.RGBA{0x29, 0xad, 0xff, 0xff}, // 12: blue
	color.RGBA{0x83, 0x76, 0x9c, 0xff}, // 13: indigo
	color.RGBA{0xff, 0x77, 0xa8, 0xff}, // 14: pink
	color.RGBA{0xff, 0xcc, 0xaa, 0xff}, // 15: peach
}

// Nearest returns the index of the palette entry closest to c. A fully
// transparent color collapses to index 0 regardless of its RGB value.
func Nearest(c color.Color) uint8 {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return 0
	}
	return Index(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Index returns the palette index with the smallest squared Euclidean
// distance in RGB space to the given 8-bit triple. Ties resolve to the
// lowest index so the mapping is deterministic.
func Index(r, g, b uint8) uint8 {
	best, bestSum := uint8(0), uint32(1<<32-1)
	for i, e := range Colors {
		c := e.(color.RGBA)
		sum := sqDiff(uint32(r), uint32(c.R)) + sqDiff(uint32(g), uint32(c.G)) + sqDiff(uint32(b), uint32(c.B))
		if sum < bestSum {
			best, bestSum = uint8(i), sum
		}
	}
	return best
}

// Copied from color.sqDiff, minus the shift; the inputs are 8-bit so the
// square cannot overflow. Underflow in the subtraction is harmless, the
// multiplication is modular.
func sqDiff(x, y uint32) uint32 {
	d := x - y
	return d * d
}
