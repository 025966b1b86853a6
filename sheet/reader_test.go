package sheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRoundTrip(t *testing.T) {
	var s Sheet
	for i := range s.Pix {
		s.Pix[i] = uint8(i % 16)
	}

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, &s))

	got, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, s.Pix, got.Pix)
}

func TestDecodeWholeCartridge(t *testing.T) {
	var s Sheet
	s.Set(0, 0, 8)
	s.Set(127, 127, 15)

	b := new(bytes.Buffer)
	b.WriteString("pico-8 cartridge // http://www.pico-8.com\nversion 42\n__lua__\nfunction _draw()\n cls()\nend\n")
	require.NoError(t, Encode(b, &s))
	b.WriteString("__gff__\n" + strings.Repeat("0", 256) + "\n")

	got, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, s.Pix, got.Pix)
}

func TestDecodeTruncatedSection(t *testing.T) {
	// Only two rows present; the rest of the sheet decodes as index 0.
	input := SectionHeader + "\n" +
		strings.Repeat("8", Width) + "\n" +
		strings.Repeat("1", Width) + "\n" +
		"__gff__\n"

	s, err := Decode(strings.NewReader(input))
	require.NoError(t, err)

	for x := 0; x < Width; x++ {
		assert.Equal(t, uint8(8), s.At(x, 0))
		assert.Equal(t, uint8(1), s.At(x, 1))
		assert.Equal(t, uint8(0), s.At(x, 2))
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{"no section", "pico-8 cartridge\n__lua__\nprint(1)\n", ErrNoSection},
		{"empty input", "", ErrNoSection},
		{"short line", SectionHeader + "\n" + strings.Repeat("0", Width-1) + "\n", errBadLine},
		{"bad digit", SectionHeader + "\n" + strings.Repeat("0", Width-1) + "G\n", errBadLine},
		{"uppercase digit", SectionHeader + "\n" + strings.Repeat("A", Width) + "\n", errBadLine},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			assert.Equal(t, tt.expected, err)
		})
	}
}

func TestDecodeCarriageReturns(t *testing.T) {
	var s Sheet
	s.Set(5, 5, 12)

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, &s))

	dos := strings.ReplaceAll(b.String(), "\n", "\r\n")

	got, err := Decode(strings.NewReader(dos))
	require.NoError(t, err)
	assert.Equal(t, s.Pix, got.Pix)
}
