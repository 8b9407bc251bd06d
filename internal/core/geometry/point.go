// Package geometry provides the integer lattice primitives used by the
// visibility grid and zone polygons: points, directed edges and closed
// polygons.
//
// Coordinates follow screen conventions: x increases to the right and y
// increases down the page.
package geometry

import (
	"fmt"
	"math"
)

// Point represents a 2D tile coordinate. Points are values; every
// transformation returns a new Point.
type Point struct {
	X, Y int
}

// Origin is the point (0, 0)
var Origin = Point{}

// Pt is a shorthand constructor for Point
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Add returns p + q
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Translate returns p moved by (dx, dy)
func (p Point) Translate(dx, dy int) Point {
	return Point{p.X + dx, p.Y + dy}
}

// Scale multiplies both components by factor, rounding half away from zero.
func (p Point) Scale(factor float64) Point {
	return Point{
		X: int(math.Round(float64(p.X) * factor)),
		Y: int(math.Round(float64(p.Y) * factor)),
	}
}

// Dot returns the dot product of p and q
func (p Point) Dot(q Point) int {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the scalar 2D cross product of p and q
func (p Point) Cross(q Point) int {
	return p.X*q.Y - p.Y*q.X
}

// FloorDiv divides both coordinates by n, rounding towards negative infinity.
// n must be positive.
func (p Point) FloorDiv(n int) Point {
	return Point{X: floorDiv(p.X, n), Y: floorDiv(p.Y, n)}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(float64(p.X-q.X), float64(p.Y-q.Y))
}

// DistanceToOrigin returns the distance to (0, 0). Useful for sorting.
func (p Point) DistanceToOrigin() float64 {
	return p.DistanceTo(Origin)
}
