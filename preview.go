package pico8

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/picoforge/pico8/sheet"
)

// Preview renders s as an RGBA image scaled up by the given integer
// factor with nearest-neighbor sampling, keeping the hard pixel edges.
// Purely a convenience for visual inspection; nothing consumes it.
func Preview(s *sheet.Sheet, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}

	src := s.Image()
	dst := image.NewRGBA(image.Rect(0, 0, sheet.Width*scale, sheet.Width*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	return dst
}
