package render

import (
	"image"
	"image/color"

	"chosenoffset.com/fogmap/internal/core/geometry"
	"chosenoffset.com/fogmap/internal/core/visibility"
)

// InputManager handles input from the user (keyboard, mouse, etc).
// Backends implement it so previews can share their input handling.
type InputManager interface {
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonJustPressed(button MouseButton) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys previews react to
const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyR // Patrol
	KeyQ
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
)

// Default overlay colours
var (
	FogColor      = color.NRGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xe0}
	ObserverColor = color.NRGBA{R: 0xff, G: 0xc8, B: 0x32, A: 0xff}
)

// FogMask draws the grid as an overlay with cellSize pixels per cell. Hidden
// cells are filled with fog, revealed cells are left transparent.
func FogMask(g *visibility.Grid, cellSize int, fog color.Color) *image.NRGBA {
	mask := image.NewNRGBA(image.Rect(0, 0, g.Width()*cellSize, g.Height()*cellSize))
	c := color.NRGBAModel.Convert(fog).(color.NRGBA)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if revealed, _ := g.IsRevealed(geometry.Pt(x, y)); revealed {
				continue
			}
			r := CellRect(geometry.Pt(x, y), cellSize)
			for py := r.Min.Y; py < r.Max.Y; py++ {
				for px := r.Min.X; px < r.Max.X; px++ {
					mask.SetNRGBA(px, py, c)
				}
			}
		}
	}

	return mask
}

// CellRect returns the pixel rectangle covered by cell.
func CellRect(cell geometry.Point, cellSize int) image.Rectangle {
	return image.Rect(cell.X*cellSize, cell.Y*cellSize, (cell.X+1)*cellSize, (cell.Y+1)*cellSize)
}

// CellAtPixel returns the cell under pixel (x, y), floored towards negative
// infinity.
func CellAtPixel(x, y, cellSize int) geometry.Point {
	return geometry.Pt(x, y).FloorDiv(cellSize)
}
