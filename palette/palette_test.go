package palette

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorsHasSixteenEntries(t *testing.T) {
	require.Len(t, Colors, 16)
}

func TestNearestExactEntries(t *testing.T) {
	for i, c := range Colors {
		assert.Equal(t, uint8(i), Nearest(c), "palette entry %d should map to itself", i)
	}
}

func TestNearestTransparent(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
	}{
		{"transparent black", color.NRGBA{0, 0, 0, 0}},
		{"transparent white", color.NRGBA{255, 255, 255, 0}},
		{"transparent red", color.NRGBA{255, 0, 77, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, uint8(0), Nearest(tt.c))
		})
	}
}

func TestNearestKnownColors(t *testing.T) {
	tests := []struct {
		name     string
		r, g, b  uint8
		expected uint8
	}{
		{"near black", 10, 10, 10, Black},
		{"near red", 250, 5, 70, Red},
		{"near light grey", 200, 200, 200, LightGrey},
		{"near yellow", 250, 230, 50, Yellow},
		{"near dark blue", 30, 45, 90, DarkBlue},
		{"pure white", 255, 255, 255, White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Index(tt.r, tt.g, tt.b))
		})
	}
}

func TestNearestDeterministic(t *testing.T) {
	c := color.NRGBA{123, 45, 67, 255}
	first := Nearest(c)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Nearest(c))
	}
}

func TestRemapSolid(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			m.Set(x, y, color.NRGBA{255, 0, 77, 255})
		}
	}

	pm := Remap(m)
	require.Equal(t, image.Rect(0, 0, 16, 16), pm.Bounds())
	for i := range pm.Pix {
		require.Equal(t, Red, pm.Pix[i])
	}
}

func TestRemapTransparentCollapsesToZero(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			m.Set(x, y, color.NRGBA{200, 200, 200, 0})
		}
	}

	pm := Remap(m)
	for i := range pm.Pix {
		assert.Equal(t, uint8(0), pm.Pix[i])
	}
}

func TestRemapNormalizesOrigin(t *testing.T) {
	m := image.NewNRGBA(image.Rect(4, 4, 12, 12))
	for y := 4; y < 12; y++ {
		for x := 4; x < 12; x++ {
			m.Set(x, y, color.NRGBA{0, 228, 54, 255})
		}
	}

	pm := Remap(m)
	require.Equal(t, image.Rect(0, 0, 8, 8), pm.Bounds())
	assert.Equal(t, Green, pm.ColorIndexAt(0, 0))
}

func TestRemapDeepColor(t *testing.T) {
	// More than 256 distinct colors forces the median cut pre-pass.
	m := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			m.Set(x, y, color.NRGBA{uint8(x * 8), uint8(y * 8), uint8((x + y) * 4), 255})
		}
	}

	pm := Remap(m)
	require.Equal(t, image.Rect(0, 0, 32, 32), pm.Bounds())
	for i := range pm.Pix {
		require.True(t, pm.Pix[i] < 16, "index %d out of palette range", pm.Pix[i])
	}
	// The darkest corner should still land on a dark entry.
	assert.Equal(t, Black, pm.ColorIndexAt(0, 0))
}
