package bitmap

import (
	"encoding/binary"
	"fmt"
	"io"
)

// EncodeMonochrome writes a bottom-up 1 bit per pixel BMP with a black and
// white colour table. black decides the colour of each pixel.
func EncodeMonochrome(w io.Writer, width, height int, black Classifier) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d image", ErrUnsupported, width, height)
	}

	rowBytes := (width + 31) / 32 * 4
	dataOffset := fileHeaderSize + minDIBHeaderSize + 2*colourEntrySize
	size := dataOffset + rowBytes*height

	buf := make([]byte, size)
	copy(buf, "BM")
	binary.LittleEndian.PutUint32(buf[2:], uint32(size))
	binary.LittleEndian.PutUint32(buf[10:], uint32(dataOffset))

	binary.LittleEndian.PutUint32(buf[14:], minDIBHeaderSize)
	binary.LittleEndian.PutUint32(buf[18:], uint32(width))
	binary.LittleEndian.PutUint32(buf[22:], uint32(height))
	binary.LittleEndian.PutUint16(buf[26:], 1) // planes
	binary.LittleEndian.PutUint16(buf[28:], 1) // bits per pixel
	binary.LittleEndian.PutUint32(buf[34:], uint32(rowBytes*height))
	binary.LittleEndian.PutUint32(buf[38:], 2835) // 72 dpi
	binary.LittleEndian.PutUint32(buf[42:], 2835)
	binary.LittleEndian.PutUint32(buf[46:], 2)

	// index 0 black, index 1 white
	white := fileHeaderSize + minDIBHeaderSize + colourEntrySize
	buf[white], buf[white+1], buf[white+2] = 0xff, 0xff, 0xff

	for y := 0; y < height; y++ {
		row := buf[dataOffset+(height-1-y)*rowBytes:]
		for x := 0; x < width; x++ {
			if !black(x, y) {
				row[x/8] |= 0x80 >> (x % 8)
			}
		}
	}

	_, err := w.Write(buf)
	return err
}
