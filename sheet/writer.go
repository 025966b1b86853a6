package sheet

import (
	"bufio"
	"fmt"
	"io"
)

// SectionHeader introduces the sprite sheet section of a cartridge.
const SectionHeader = "__gfx__"

const hexDigits = "0123456789abcdef"

type encoder struct {
	w *bufio.Writer
}

func (e *encoder) encode(s *Sheet) error {
	if _, err := e.w.WriteString(SectionHeader + "\n"); err != nil {
		return err
	}

	var line [Width + 1]byte
	line[Width] = '\n'

	for y := 0; y < Width; y++ {
		for x := 0; x < Width; x++ {
			i := s.At(x, y)
			if i > 0x0f {
				panic(fmt.Sprintf("sheet: palette index %d out of range at (%d, %d)", i, x, y))
			}
			line[x] = hexDigits[i]
		}
		if _, err := e.w.Write(line[:]); err != nil {
			return err
		}
	}

	return e.w.Flush()
}

// Encode writes s to w as a __gfx__ section: the header line followed by
// 128 lines of 128 lowercase hex digits, one digit per pixel in scan
// order. A palette index above 15 violates the quantizer contract and
// panics rather than being masked off.
func Encode(w io.Writer, s *Sheet) error {
	e := encoder{w: bufio.NewWriter(w)}
	return e.encode(s)
}
