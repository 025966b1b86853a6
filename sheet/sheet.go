/*
Package sheet implements the PICO-8 sprite sheet and its cartridge text
encoding.

The sheet is defined as 128 by 128 pixels exactly which is organized as a
16 by 16 grid of 8 by 8 cells. Each pixel is a 4-bit palette index. The
sheet is serialized as the __gfx__ section of a cartridge: a header line
followed by 128 lines of 128 lowercase hexadecimal digits, one digit per
pixel in scan order.
*/
package sheet

import (
	"image"

	"github.com/picoforge/pico8/palette"
)

const (
	// Width is the sheet's side length in pixels.
	Width = 128
	// CellSize is the side length of one grid cell in pixels.
	CellSize = 8
	// GridSize is the sheet's side length in cells.
	GridSize = Width / CellSize
	// NumCells is the sheet's capacity in 8 by 8 cells.
	NumCells = GridSize * GridSize
)

// Sheet is the canonical output buffer. The zero value is a blank sheet,
// every pixel set to palette index 0.
type Sheet struct {
	Pix [Width * Width]uint8
}

// At returns the palette index at pixel (x, y).
func (s *Sheet) At(x, y int) uint8 {
	return s.Pix[y*Width+x]
}

// Set assigns the palette index at pixel (x, y).
func (s *Sheet) Set(x, y int, i uint8) {
	s.Pix[y*Width+x] = i
}

// Image renders the sheet as a paletted image, the inverse of the
// nearest-color mapping. Index 0 comes out as opaque black; the format
// has no transparency bit.
func (s *Sheet) Image() *image.Paletted {
	m := image.NewPaletted(image.Rect(0, 0, Width, Width), palette.Colors)
	copy(m.Pix, s.Pix[:])
	return m
}
