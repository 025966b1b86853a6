package pico8

import (
	"crypto/sha1"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/picoforge/pico8/palette"
	"github.com/picoforge/pico8/sheet"
	"github.com/picoforge/pico8/sprite"
)

// Options control a single conversion run.
type Options struct {
	// CellSize is the sprite granularity: 8, 16 or 32 pixels.
	CellSize int

	// Pad keeps partial cells at the image edges, filling the overhang
	// with palette index 0, instead of truncating them.
	Pad bool

	// Force converts even when the cache holds a sheet for this input.
	Force bool
}

func (o Options) validate() error {
	switch o.CellSize {
	case 8, 16, 32:
		return nil
	}
	return fmt.Errorf("pico8: unsupported cell size %d", o.CellSize)
}

func (o Options) policy() sprite.BoundaryPolicy {
	if o.Pad {
		return sprite.PadZero
	}
	return sprite.Truncate
}

// Result describes one finished conversion.
type Result struct {
	// SHA1 is the hex digest of the source file.
	SHA1 string

	// Sheet is the packed sprite sheet.
	Sheet *sheet.Sheet

	// Sprites is the number of sprites extracted from the source.
	Sprites int

	// Dropped is the number of sprites that could not be placed.
	Dropped int

	// Cached reports whether the sheet came from the cache database.
	Cached bool
}

// ConvertFile decodes the image at path and converts it.
func (c *Converter) ConvertFile(path string, opts Options) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return c.Convert(f, opts)
}

// Convert reads one image from r, quantizes it to the PICO-8 palette and
// packs its sprites into a sheet, consulting the cache database if one is
// configured. An undecodable source is fatal; sprites that do not fit the
// sheet are dropped with a logged warning and reported in the result.
func (c *Converter) Convert(r io.Reader, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	h := sha1.New()
	m, _, err := image.Decode(io.TeeReader(r, h))
	if err != nil {
		return nil, err
	}
	// The decoder may not consume trailing bytes; hash them too so the
	// digest always covers the whole file.
	if _, err := io.Copy(h, r); err != nil {
		return nil, err
	}
	sha := fmt.Sprintf("%X", h.Sum(nil))

	if c.db != nil && !opts.Force {
		res, err := c.db.Find(sha, opts.CellSize, opts.Pad)
		if err != nil {
			return nil, err
		}
		if res != nil {
			c.logger.Printf("cache hit for %s at size %d\n", sha, opts.CellSize)
			res.Cached = true
			return res, nil
		}
	}

	cells := sprite.Extract(palette.Remap(m), opts.CellSize, opts.policy())
	s, dropped := sheet.Pack(cells, c.logger)

	res := &Result{
		SHA1:    sha,
		Sheet:   s,
		Sprites: len(cells),
		Dropped: dropped,
	}

	if c.db != nil {
		if err := c.db.Add(res, opts.CellSize, opts.Pad); err != nil {
			return nil, err
		}
	}

	return res, nil
}
