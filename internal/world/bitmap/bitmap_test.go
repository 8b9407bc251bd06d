package bitmap

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

// monochromeFixture encodes a 1 bit per pixel BMP with EncodeMonochrome
func monochromeFixture(t *testing.T, width, height int, black Classifier) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, EncodeMonochrome(&buf, width, height, black))
	return buf.Bytes()
}

// tShape draws a black bar across the top rows and a black stem down column 8
func tShape(x, y int) bool {
	return y == 0 || (x == 8 && y < 10)
}

func TestParseHeader(t *testing.T) {
	f, err := Parse(monochromeFixture(t, 321, 240, tShape))
	require.NoError(t, err)

	assert.Equal(t, "BM", f.Signature())
	assert.Equal(t, 321, f.Width())
	assert.Equal(t, 240, f.Height())
	assert.Equal(t, 1, f.BitsPerPixel())
	assert.Equal(t, 2, f.PaletteSize())
	assert.Equal(t, uint32(62), f.DataOffset())
	assert.Equal(t, 44, f.RowWidthBytes())
	assert.Equal(t, 31, f.RowPaddingBits())
	assert.Equal(t, uint32(62+44*240), f.FileSize())
}

func TestParseRejectsBadInput(t *testing.T) {
	_, err := Parse([]byte("GIF89a"))
	assert.ErrorIs(t, err, ErrNotBitmap)

	_, err = Parse([]byte("BM\x00\x00"))
	assert.ErrorIs(t, err, ErrTruncated)

	raw := monochromeFixture(t, 16, 16, tShape)
	_, err = Parse(raw[:len(raw)-10])
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestColourTable(t *testing.T) {
	f, err := Parse(monochromeFixture(t, 8, 8, tShape))
	require.NoError(t, err)

	table := f.ColourTable()
	require.Len(t, table, 2)
	assert.True(t, table[0].IsBlack())
	assert.True(t, table[1].IsWhite())
	assert.False(t, table[0].IsWhite())
}

func TestMonochromePixelColour(t *testing.T) {
	f, err := Parse(monochromeFixture(t, 321, 240, tShape))
	require.NoError(t, err)
	mono, err := NewMonochrome(f)
	require.NoError(t, err)

	for x := 0; x < 10; x++ {
		c, err := mono.PixelColour(x, 0)
		require.NoError(t, err)
		assert.True(t, c.IsBlack(), "pixel (%d, 0)", x)
	}
	for y := 4; y < 10; y++ {
		c, err := mono.PixelColour(8, y)
		require.NoError(t, err)
		assert.True(t, c.IsBlack(), "pixel (8, %d)", y)

		c, err = mono.PixelColour(9, y)
		require.NoError(t, err)
		assert.True(t, c.IsWhite(), "pixel (9, %d)", y)
	}

	_, err = mono.PixelColour(321, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = mono.PixelColour(0, 240)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	assert.Equal(t, image.Rect(0, 0, 321, 240), mono.Bounds())
}

func TestDecodeMonochromeClassifier(t *testing.T) {
	img, err := Decode(bytes.NewReader(monochromeFixture(t, 16, 12, tShape)))
	require.NoError(t, err)
	require.IsType(t, &Monochrome{}, img)

	blocked := BlackPixels(img)
	assert.True(t, blocked(3, 0))
	assert.True(t, blocked(8, 5))
	assert.False(t, blocked(3, 5))
	assert.False(t, blocked(-1, 0))
	assert.False(t, blocked(16, 0))
}

func TestDecodeOtherFormats(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.White)
		}
	}
	src.Set(1, 2, color.Black)
	src.Set(3, 0, color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff})

	var bmpBuf bytes.Buffer
	require.NoError(t, bmp.Encode(&bmpBuf, src))
	var pngBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, src))

	for name, raw := range map[string][]byte{"bmp": bmpBuf.Bytes(), "png": pngBuf.Bytes()} {
		t.Run(name, func(t *testing.T) {
			img, err := Decode(bytes.NewReader(raw))
			require.NoError(t, err)
			assert.Equal(t, 4, img.Bounds().Dx())

			blocked := BlackPixels(img)
			assert.True(t, blocked(1, 2))
			assert.True(t, blocked(3, 0))
			assert.False(t, blocked(0, 0))
		})
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.bmp")
	require.NoError(t, os.WriteFile(path, monochromeFixture(t, 9, 3, tShape), 0o644))

	img, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 9, 3), img.Bounds())

	_, err = Open(filepath.Join(t.TempDir(), "missing.bmp"))
	assert.Error(t, err)
}

func TestEncodeMonochrome(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeMonochrome(&buf, 16, 12, tShape))

	img, err := Decode(&buf)
	require.NoError(t, err)
	require.IsType(t, &Monochrome{}, img)

	blocked := BlackPixels(img)
	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			assert.Equal(t, tShape(x, y), blocked(x, y), "pixel (%d, %d)", x, y)
		}
	}

	assert.ErrorIs(t, EncodeMonochrome(&buf, 0, 4, tShape), ErrUnsupported)
}

func TestEncodeMonochromeReadableByLibraryDecoder(t *testing.T) {
	img, err := bmp.Decode(bytes.NewReader(monochromeFixture(t, 16, 12, tShape)))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 12), img.Bounds())

	blocked := BlackPixels(img)
	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			assert.Equal(t, tShape(x, y), blocked(x, y), "pixel (%d, %d)", x, y)
		}
	}
}
