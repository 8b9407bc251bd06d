// Package visibility tracks which cells of a tile map have been revealed.
//
// A Grid packs one bit per cell. Logical coordinates start at the top-left
// corner while bits are addressed from the bottom-right corner:
// cell (x, y) lives at bit width*(height-1-y) + (width-1-x). Every read and
// write goes through the same inversion, so rendering the bits row by row
// gives x increasing left to right and y increasing top to bottom.
package visibility

import (
	"errors"
	"fmt"
	"math"
	"runtime"
)

var (
	// ErrInvalidDimension is returned for non-positive sizes, non-positive
	// scale factors, sizes not divisible by the scale factor and merges of
	// differently sized grids.
	ErrInvalidDimension = errors.New("invalid grid dimension")

	// ErrInvalidRadius is returned for a search radius that is not positive
	ErrInvalidRadius = errors.New("invalid search radius")

	// ErrOutOfBounds is returned for coordinates outside the grid
	ErrOutOfBounds = errors.New("coordinates out of bounds")
)

// Config describes a map in pixels and how pixels group into cells
type Config struct {
	WidthPx        int     // Map width in pixels
	HeightPx       int     // Map height in pixels
	ScaleFactor    int     // Pixels per cell along each axis
	SearchRadiusPx float64 // Reveal radius in pixels
	Workers        int     // Concurrent centres for RevealAll (0 = GOMAXPROCS)
}

// Validate checks the dimensions and radius
func (c Config) Validate() error {
	if c.ScaleFactor <= 0 {
		return fmt.Errorf("%w: scale factor %d", ErrInvalidDimension, c.ScaleFactor)
	}
	if c.WidthPx <= 0 || c.HeightPx <= 0 {
		return fmt.Errorf("%w: %dx%d pixels", ErrInvalidDimension, c.WidthPx, c.HeightPx)
	}
	if c.WidthPx%c.ScaleFactor != 0 || c.HeightPx%c.ScaleFactor != 0 {
		return fmt.Errorf("%w: %dx%d pixels not divisible by scale factor %d",
			ErrInvalidDimension, c.WidthPx, c.HeightPx, c.ScaleFactor)
	}
	if math.IsNaN(c.SearchRadiusPx) || math.IsInf(c.SearchRadiusPx, 0) || c.SearchRadiusPx <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRadius, c.SearchRadiusPx)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid worker count: %d", c.Workers)
	}
	return nil
}

// Width returns the number of cell columns
func (c Config) Width() int {
	return c.WidthPx / c.ScaleFactor
}

// Height returns the number of cell rows
func (c Config) Height() int {
	return c.HeightPx / c.ScaleFactor
}

// Radius returns the search radius in cells
func (c Config) Radius() float64 {
	return c.SearchRadiusPx / float64(c.ScaleFactor)
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}
