// Package bitmap reads map images and classifies their pixels.
//
// File gives byte-level access to an uncompressed BMP: its headers, colour
// table and pixel rows. Monochrome builds on a 1 bit per pixel File to look
// up pixel colours. Any other image format goes through the standard image
// decoders, and BlackPixels turns a decoded image into a Classifier.
package bitmap

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	ErrNotBitmap   = errors.New("not a BMP file")
	ErrTruncated   = errors.New("truncated BMP file")
	ErrUnsupported = errors.New("unsupported BMP variant")
	ErrOutOfBounds = errors.New("pixel out of bounds")
)

const (
	fileHeaderSize   = 14
	minDIBHeaderSize = 40
	colourEntrySize  = 4
)

// File is a raw BMP image
type File struct {
	raw []byte
}

// Read reads a whole BMP file from r
func Read(r io.Reader) (*File, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read bitmap: %w", err)
	}
	return Parse(raw)
}

// Parse validates the headers of a BMP file held in raw
func Parse(raw []byte) (*File, error) {
	if len(raw) < 2 || !bytes.Equal(raw[:2], []byte("BM")) {
		return nil, ErrNotBitmap
	}
	if len(raw) < fileHeaderSize+minDIBHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncated, len(raw))
	}

	f := &File{raw: raw}

	if f.DIBHeaderSize() < minDIBHeaderSize {
		return nil, fmt.Errorf("%w: DIB header of %d bytes", ErrUnsupported, f.DIBHeaderSize())
	}
	if f.Compression() != 0 {
		return nil, fmt.Errorf("%w: compression method %d", ErrUnsupported, f.Compression())
	}
	if f.Width() <= 0 || f.Height() == 0 {
		return nil, fmt.Errorf("%w: %dx%d image", ErrUnsupported, f.Width(), f.Height())
	}

	tableEnd := fileHeaderSize + int(f.DIBHeaderSize()) + f.PaletteSize()*colourEntrySize
	if tableEnd > len(raw) {
		return nil, fmt.Errorf("%w: colour table ends at byte %d", ErrTruncated, tableEnd)
	}

	dataEnd := int(f.DataOffset()) + f.RowWidthBytes()*f.HeightPx()
	if dataEnd > len(raw) {
		return nil, fmt.Errorf("%w: pixel data ends at byte %d of %d", ErrTruncated, dataEnd, len(raw))
	}

	return f, nil
}

func (f *File) u16(offset int) uint16 {
	return binary.LittleEndian.Uint16(f.raw[offset:])
}

func (f *File) u32(offset int) uint32 {
	return binary.LittleEndian.Uint32(f.raw[offset:])
}

// Signature returns the two identifying bytes ("BM")
func (f *File) Signature() string { return string(f.raw[:2]) }

// FileSize returns the size recorded in the file header
func (f *File) FileSize() uint32 { return f.u32(2) }

// DataOffset returns the starting address of the pixel array
func (f *File) DataOffset() uint32 { return f.u32(10) }

func (f *File) DIBHeaderSize() uint32 { return f.u32(14) }

// Width returns the image width in pixels
func (f *File) Width() int { return int(int32(f.u32(18))) }

// Height returns the signed height: positive for bottom-up row order,
// negative for top-down.
func (f *File) Height() int { return int(int32(f.u32(22))) }

// HeightPx returns the number of pixel rows
func (f *File) HeightPx() int {
	if h := f.Height(); h < 0 {
		return -h
	}
	return f.Height()
}

// BitsPerPixel returns the number of bits used to encode each pixel
func (f *File) BitsPerPixel() int { return int(f.u16(28)) }

func (f *File) Compression() uint32 { return f.u32(30) }

// PaletteSize returns the number of colour table entries. A zero count in
// the header means the full palette for paletted images.
func (f *File) PaletteSize() int {
	n := int(f.u32(46))
	if n == 0 && f.BitsPerPixel() <= 8 {
		return 1 << f.BitsPerPixel()
	}
	return n
}

// ColourTable returns the palette stored between the DIB header and the pixel data
func (f *File) ColourTable() []Colour {
	start := fileHeaderSize + int(f.DIBHeaderSize())
	n := f.PaletteSize()

	table := make([]Colour, 0, n)
	for i := 0; i < n; i++ {
		entry := f.raw[start+i*colourEntrySize : start+(i+1)*colourEntrySize]
		table = append(table, Colour{B: entry[0], G: entry[1], R: entry[2], Reserved: entry[3]})
	}
	return table
}

// RowWidthBytes returns the stored width of a pixel row, padded to 4 bytes
func (f *File) RowWidthBytes() int {
	return (f.BitsPerPixel()*f.Width() + 31) / 32 * 4
}

// RowPaddingBits returns the number of unused bits at the end of each row
func (f *File) RowPaddingBits() int {
	return f.RowWidthBytes()*8 - f.BitsPerPixel()*f.Width()
}

// Row returns the stored bytes for pixel row y, counted from the top of the image
func (f *File) Row(y int) ([]byte, error) {
	if y < 0 || y >= f.HeightPx() {
		return nil, fmt.Errorf("%w: row %d of %d", ErrOutOfBounds, y, f.HeightPx())
	}

	stored := y
	if f.Height() > 0 {
		stored = f.HeightPx() - 1 - y
	}

	start := int(f.DataOffset()) + stored*f.RowWidthBytes()
	return f.raw[start : start+f.RowWidthBytes()], nil
}
