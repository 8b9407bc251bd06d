package visibility

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"chosenoffset.com/fogmap/internal/core/geometry"
)

// Grid is a fixed-size bitmask of revealed cells. Bits are only ever set;
// Reset is the single way to hide cells again.
//
// A Grid is not safe for concurrent mutation.
type Grid struct {
	cfg    Config
	width  int
	height int
	radius float64
	bits   *bitset.BitSet
}

// New creates a grid with every cell hidden
func New(cfg Config) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Grid{
		cfg:    cfg,
		width:  cfg.Width(),
		height: cfg.Height(),
		radius: cfg.Radius(),
	}
	g.bits = bitset.New(g.size())
	return g, nil
}

func (g *Grid) Width() int       { return g.width }
func (g *Grid) Height() int      { return g.height }
func (g *Grid) Radius() float64  { return g.radius }
func (g *Grid) ScaleFactor() int { return g.cfg.ScaleFactor }
func (g *Grid) Config() Config   { return g.cfg }

func (g *Grid) size() uint {
	return uint(g.width * g.height)
}

// InBounds reports whether p addresses a cell of the grid
func (g *Grid) InBounds(p geometry.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// BitPosition returns the storage index of cell p. Both coordinates are
// inverted against the grid size before the row-major index is taken.
func (g *Grid) BitPosition(p geometry.Point) (uint, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: %s on %dx%d grid", ErrOutOfBounds, p, g.width, g.height)
	}
	return g.index(p), nil
}

// index assumes p is in bounds
func (g *Grid) index(p geometry.Point) uint {
	invertedX := g.width - 1 - p.X
	invertedY := g.height - 1 - p.Y
	return uint(g.width*invertedY + invertedX)
}

// Reveal marks cell p as revealed. Revealing a cell twice changes nothing.
func (g *Grid) Reveal(p geometry.Point) error {
	i, err := g.BitPosition(p)
	if err != nil {
		return err
	}
	g.bits.Set(i)
	return nil
}

// IsRevealed reports whether cell p has been revealed
func (g *Grid) IsRevealed(p geometry.Point) (bool, error) {
	i, err := g.BitPosition(p)
	if err != nil {
		return false, err
	}
	return g.bits.Test(i), nil
}

// RevealedCount returns the number of revealed cells
func (g *Grid) RevealedCount() int {
	return int(g.bits.Count())
}

// Reset hides every cell
func (g *Grid) Reset() {
	g.bits.ClearAll()
}

// Merge reveals every cell revealed in other. Both grids must have the same
// cell dimensions.
func (g *Grid) Merge(other *Grid) error {
	if other.width != g.width || other.height != g.height {
		return fmt.Errorf("%w: cannot merge %dx%d into %dx%d",
			ErrInvalidDimension, other.width, other.height, g.width, g.height)
	}
	g.bits.InPlaceUnion(other.bits)
	return nil
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	clone := *g
	clone.bits = g.bits.Clone()
	return &clone
}

// CellAt returns the cell containing pixel px
func (g *Grid) CellAt(px geometry.Point) geometry.Point {
	return px.FloorDiv(g.cfg.ScaleFactor)
}

// PixelOrigin returns the top-left pixel of cell
func (g *Grid) PixelOrigin(cell geometry.Point) geometry.Point {
	return cell.Scale(float64(g.cfg.ScaleFactor))
}

// Rows renders the grid as height strings of width '0'/'1' characters, top
// row first.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var b strings.Builder
	b.Grow(g.width)

	for y := 0; y < g.height; y++ {
		b.Reset()
		for x := 0; x < g.width; x++ {
			if g.bits.Test(g.index(geometry.Pt(x, y))) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		rows[y] = b.String()
	}
	return rows
}

// String renders the grid one row per line
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n") + "\n"
}
