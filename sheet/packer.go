package sheet

import (
	"io/ioutil"
	"log"

	"github.com/picoforge/pico8/sprite"
)

// Packer places sprites into a sheet in input order. The cursor walks the
// 16 by 16 cell grid left to right, top to bottom. A sprite spanning more
// than one cell reserves its full rows, so no sprite is ever split across
// a row wrap and no two sprites can target the same cell.
type Packer struct {
	sheet   *Sheet
	cursor  int
	dropped int
	logger  *log.Logger
}

// NewPacker returns a Packer writing into a fresh sheet. Diagnostics for
// dropped sprites go to logger; nil discards them.
func NewPacker(logger *log.Logger) *Packer {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &Packer{
		sheet:  new(Sheet),
		logger: logger,
	}
}

// Place attempts to place one sprite at the current cursor and reports
// whether it was placed. A sprite that does not fit is dropped and the
// cursor left alone, so a later smaller sprite may still use the slot.
// The sprite's side length must be a multiple of CellSize.
func (p *Packer) Place(c *sprite.Cell) bool {
	f := c.Size / CellSize

	if p.cursor >= NumCells {
		p.dropped++
		p.logger.Printf("sprite %d dropped: sheet is out of capacity\n", c.ID)
		return false
	}

	cellX := p.cursor % GridSize
	cellY := p.cursor / GridSize

	if cellX+f > GridSize || cellY+f > GridSize {
		p.dropped++
		p.logger.Printf("sprite %d (%dx%d) dropped: does not fit at cell (%d, %d)\n", c.ID, c.Size, c.Size, cellX, cellY)
		return false
	}

	for dy := 0; dy < f; dy++ {
		for dx := 0; dx < f; dx++ {
			p.copyCell(c, dx, dy, cellX+dx, cellY+dy)
		}
	}

	if f == 1 {
		p.cursor++
	} else {
		// Reserve the footprint's rows outright; the next sprite
		// starts at the first cell of the row below them.
		p.cursor = (cellY + f) * GridSize
	}

	return true
}

// copyCell copies the 8 by 8 sub-block (dx, dy) of the sprite into the
// sheet cell (cx, cy).
func (p *Packer) copyCell(c *sprite.Cell, dx, dy, cx, cy int) {
	for y := 0; y < CellSize; y++ {
		for x := 0; x < CellSize; x++ {
			p.sheet.Set(cx*CellSize+x, cy*CellSize+y, c.At(dx*CellSize+x, dy*CellSize+y))
		}
	}
}

// Sheet returns the sheet packed so far.
func (p *Packer) Sheet() *Sheet {
	return p.sheet
}

// Dropped returns the number of sprites dropped so far.
func (p *Packer) Dropped() int {
	return p.dropped
}

// Pack places every cell in order and returns the resulting sheet along
// with the number of sprites that could not be placed.
func Pack(cells []sprite.Cell, logger *log.Logger) (*Sheet, int) {
	p := NewPacker(logger)
	for i := range cells {
		p.Place(&cells[i])
	}
	return p.sheet, p.dropped
}
