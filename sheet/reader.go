package sheet

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

var (
	// ErrNoSection is returned when the input has no __gfx__ section.
	ErrNoSection = errors.New("sheet: no __gfx__ section")

	errBadLine = errors.New("sheet: malformed __gfx__ line")
)

type decoder struct {
	s     *bufio.Scanner
	sheet Sheet
}

func (d *decoder) decode() error {
	for d.s.Scan() {
		if strings.TrimRight(d.s.Text(), "\r") == SectionHeader {
			return d.readRows()
		}
	}
	if err := d.s.Err(); err != nil {
		return err
	}
	return ErrNoSection
}

func (d *decoder) readRows() error {
	for y := 0; y < Width; y++ {
		if !d.s.Scan() {
			// The cartridge editor trims trailing blank rows;
			// unwritten rows stay index 0.
			return d.s.Err()
		}

		line := strings.TrimRight(d.s.Text(), "\r")
		if strings.HasPrefix(line, "__") || line == "" {
			// Start of the next cartridge section.
			return nil
		}
		if len(line) != Width {
			return errBadLine
		}

		for x := 0; x < Width; x++ {
			v, err := hexValue(line[x])
			if err != nil {
				return err
			}
			d.sheet.Set(x, y, v)
		}
	}
	return nil
}

func hexValue(b byte) (uint8, error) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', nil
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, nil
	}
	return 0, errBadLine
}

// Decode reads the first __gfx__ section found in r, which may be a bare
// section or a whole cartridge, and returns the sheet it describes. Rows
// missing from a truncated section decode as palette index 0.
func Decode(r io.Reader) (*Sheet, error) {
	d := decoder{s: bufio.NewScanner(r)}
	if err := d.decode(); err != nil {
		return nil, err
	}
	return &d.sheet, nil
}
