package bitmap

import (
	"fmt"
	"image"
	"image/color"
)

// Colour is one colour table entry
type Colour struct {
	R, G, B  uint8
	Reserved uint8
}

// IsBlack checks for an all-zero entry
func (c Colour) IsBlack() bool {
	return c == Colour{}
}

// IsWhite checks for full intensity on every channel
func (c Colour) IsWhite() bool {
	return c == Colour{R: 0xff, G: 0xff, B: 0xff}
}

// RGBA implements color.Color
func (c Colour) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Monochrome looks up pixel colours in a 1 bit per pixel bitmap. It
// implements image.Image so it can be drawn or classified like any other
// decoded image.
type Monochrome struct {
	file  *File
	table []Colour
}

// NewMonochrome wraps a parsed 1 bit per pixel file
func NewMonochrome(f *File) (*Monochrome, error) {
	if f.BitsPerPixel() != 1 {
		return nil, fmt.Errorf("%w: %d bits per pixel, want 1", ErrUnsupported, f.BitsPerPixel())
	}

	table := f.ColourTable()
	if len(table) < 2 {
		return nil, fmt.Errorf("%w: %d colour table entries", ErrUnsupported, len(table))
	}

	return &Monochrome{file: f, table: table}, nil
}

// File returns the underlying bitmap
func (m *Monochrome) File() *File { return m.file }

// PixelColour returns the colour table entry for pixel (x, y)
func (m *Monochrome) PixelColour(x, y int) (Colour, error) {
	if x < 0 || x >= m.file.Width() {
		return Colour{}, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}

	row, err := m.file.Row(y)
	if err != nil {
		return Colour{}, err
	}

	// Pixels are packed most significant bit first
	mask := byte(0x80) >> (x % 8)
	bit := 0
	if row[x/8]&mask != 0 {
		bit = 1
	}

	return m.table[bit], nil
}

func (m *Monochrome) ColorModel() color.Model {
	return color.NRGBAModel
}

func (m *Monochrome) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.file.Width(), m.file.HeightPx())
}

func (m *Monochrome) At(x, y int) color.Color {
	c, err := m.PixelColour(x, y)
	if err != nil {
		return color.NRGBA{}
	}
	return c
}
