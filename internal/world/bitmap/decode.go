package bitmap

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// Classifier answers whether the pixel at (x, y) is a blocking (black)
// pixel. Pixels outside the image are never blocking.
type Classifier func(x, y int) bool

// Decode reads an image. 1 bit per pixel BMP files are served by
// Monochrome; other BMP variants and PNG go through the image decoders.
func Decode(r io.Reader) (image.Image, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	if bytes.HasPrefix(raw, []byte("BM")) {
		f, err := Parse(raw)
		if err == nil && f.BitsPerPixel() == 1 {
			return NewMonochrome(f)
		}

		img, err := bmp.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to decode bitmap: %w", err)
		}
		return img, nil
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Open decodes the image file at path
func Open(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer file.Close()

	img, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// BlackPixels classifies pixels darker than mid grey as blocking.
// Transparent pixels are not blocking.
func BlackPixels(img image.Image) Classifier {
	bounds := img.Bounds()

	return func(x, y int) bool {
		pt := image.Pt(bounds.Min.X+x, bounds.Min.Y+y)
		if !pt.In(bounds) {
			return false
		}

		c := img.At(pt.X, pt.Y)
		if _, _, _, a := c.RGBA(); a == 0 {
			return false
		}
		gray := color.GrayModel.Convert(c).(color.Gray)
		return gray.Y < 0x80
	}
}
