/*
Package sprite implements grid extraction of square sprite cells from a
palette-indexed source image.
*/
package sprite

import "image"

// BoundaryPolicy controls what happens when the source dimensions are not
// an exact multiple of the cell size.
type BoundaryPolicy int

const (
	// Truncate drops the remainder; only the floor(W/S) by floor(H/S)
	// grid that lies entirely inside the image is extracted.
	Truncate BoundaryPolicy = iota
	// PadZero keeps partial cells at the right and bottom edges and
	// fills the overhanging pixels with palette index 0.
	PadZero
)

// Cell is one extracted sprite: a Size by Size block of palette indices
// in row-major order. ID is the extraction sequence number and (X, Y)
// the cell's coordinates in the source grid.
type Cell struct {
	ID   int
	X, Y int
	Size int
	Pix  []uint8
}

// At returns the palette index at (x, y) within the cell.
func (c *Cell) At(x, y int) uint8 {
	return c.Pix[y*c.Size+x]
}

// Extract slices m into cells of the given size, emitted row-major; the
// slice order is the canonical sprite order used by the packer. m must
// already be indexed by the target palette (see palette.Remap), so cell
// values inherit its 0-15 range. An image smaller than one cell yields
// no cells under Truncate.
func Extract(m *image.Paletted, size int, policy BoundaryPolicy) []Cell {
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()

	cols, rows := w/size, h/size
	if policy == PadZero {
		cols, rows = (w+size-1)/size, (h+size-1)/size
	}
	if cols <= 0 || rows <= 0 {
		return nil
	}

	cells := make([]Cell, 0, cols*rows)
	for gy := 0; gy < rows; gy++ {
		for gx := 0; gx < cols; gx++ {
			c := Cell{
				ID:   gy*cols + gx,
				X:    gx,
				Y:    gy,
				Size: size,
				Pix:  make([]uint8, size*size),
			}
			for y := 0; y < size; y++ {
				for x := 0; x < size; x++ {
					px, py := gx*size+x, gy*size+y
					if px >= w || py >= h {
						// Beyond the source image; the cell
						// buffer is already index 0.
						continue
					}
					c.Pix[y*size+x] = m.ColorIndexAt(b.Min.X+px, b.Min.Y+py)
				}
			}
			cells = append(cells, c)
		}
	}
	return cells
}
