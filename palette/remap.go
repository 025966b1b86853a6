package palette

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
)

// maxDirectColors bounds the per-image lookup cache. Sources with more
// distinct colors are reduced with a median cut first so the nearest
// search still runs once per distinct color rather than once per pixel.
const maxDirectColors = 256

// Remap converts m to a paletted image indexed by Colors, with the image
// origin normalized to (0, 0). Every pixel goes through the same mapping
// as Nearest; the median cut pre-pass on deep color sources only reduces
// how often that mapping is computed.
func Remap(m image.Image) *image.Paletted {
	b := m.Bounds()
	out := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), Colors)

	cache := make(map[color.Color]uint8)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := m.At(b.Min.X+x, b.Min.Y+y)
			i, ok := cache[c]
			if !ok {
				if len(cache) == maxDirectColors {
					return remapDeep(m)
				}
				i = Nearest(c)
				cache[c] = i
			}
			out.SetColorIndex(x, y, i)
		}
	}
	return out
}

// remapDeep handles images with too many distinct colors to cache
// directly: quantize down to maxDirectColors entries, map each entry
// once, then copy indices through the lookup table.
func remapDeep(m image.Image) *image.Paletted {
	b := m.Bounds()

	q := quantize.MedianCutQuantizer{AddTransparent: true}
	tmp := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, maxDirectColors), m))
	draw.Draw(tmp, b, m, b.Min, draw.Src)

	lookup := make([]uint8, len(tmp.Palette))
	for i, c := range tmp.Palette {
		lookup[i] = Nearest(c)
	}

	out := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), Colors)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.SetColorIndex(x, y, lookup[tmp.ColorIndexAt(b.Min.X+x, b.Min.Y+y)])
		}
	}
	return out
}
