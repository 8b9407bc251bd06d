// Package walls outlines the blocking regions of a map.
//
// Outlines are informational: previews draw them, but nothing in the
// visibility grid takes them into account.
package walls

import (
	"chosenoffset.com/fogmap/internal/core/geometry"
)

// Side is the side of a cell a wall runs along
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	default:
		return "left"
	}
}

// Wall is an exposed edge of a blocking region, in cell corner coordinates:
// the top-left corner of cell (x, y) is (x, y) and its bottom-right corner
// is (x+1, y+1).
type Wall struct {
	Edge  geometry.Edge
	Side  Side
	Cells []geometry.Point // Blocking cells the wall belongs to
}

// BlocksFunc reports whether a cell blocks sight
type BlocksFunc func(x, y int) bool

// Outline returns the merged perimeter walls of every 4-connected region of
// blocking cells in a width x height grid.
func Outline(blocks BlocksFunc, width, height int) []Wall {
	var walls []Wall
	for _, region := range Regions(blocks, width, height) {
		walls = append(walls, perimeter(region)...)
	}
	return mergeCollinear(walls)
}

// Regions finds all connected regions of blocking cells
func Regions(blocks BlocksFunc, width, height int) [][]geometry.Point {
	visited := make(map[geometry.Point]bool)
	var regions [][]geometry.Point

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := geometry.Pt(x, y)
			if visited[cell] || !blocks(x, y) {
				continue
			}
			regions = append(regions, floodFill(blocks, cell, width, height, visited))
		}
	}

	return regions
}

// floodFill performs BFS to find all connected blocking cells
func floodFill(blocks BlocksFunc, start geometry.Point, width, height int, visited map[geometry.Point]bool) []geometry.Point {
	var region []geometry.Point
	queue := []geometry.Point{start}
	visited[start] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		region = append(region, current)

		// 4-connected, no diagonals
		neighbours := []geometry.Point{
			current.Translate(0, -1),
			current.Translate(1, 0),
			current.Translate(0, 1),
			current.Translate(-1, 0),
		}

		for _, n := range neighbours {
			if n.X < 0 || n.X >= width || n.Y < 0 || n.Y >= height {
				continue
			}
			if visited[n] || !blocks(n.X, n.Y) {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	return region
}

// perimeter returns one wall per exposed cell side, running clockwise
func perimeter(region []geometry.Point) []Wall {
	inRegion := make(map[geometry.Point]bool, len(region))
	for _, cell := range region {
		inRegion[cell] = true
	}

	var walls []Wall
	for _, cell := range region {
		topLeft := cell
		topRight := cell.Translate(1, 0)
		bottomRight := cell.Translate(1, 1)
		bottomLeft := cell.Translate(0, 1)

		add := func(side Side, from, to geometry.Point) {
			walls = append(walls, Wall{
				Edge:  geometry.NewEdge(from, to),
				Side:  side,
				Cells: []geometry.Point{cell},
			})
		}

		if !inRegion[cell.Translate(0, -1)] {
			add(Top, topLeft, topRight)
		}
		if !inRegion[cell.Translate(1, 0)] {
			add(Right, topRight, bottomRight)
		}
		if !inRegion[cell.Translate(0, 1)] {
			add(Bottom, bottomRight, bottomLeft)
		}
		if !inRegion[cell.Translate(-1, 0)] {
			add(Left, bottomLeft, topLeft)
		}
	}

	return walls
}

// mergeCollinear combines walls on the same side that meet end to end
func mergeCollinear(walls []Wall) []Wall {
	merged := make([]bool, len(walls))
	var result []Wall

	for i := range walls {
		if merged[i] {
			continue
		}

		current := walls[i]
		merged[i] = true

		for extended := true; extended; {
			extended = false
			for j := range walls {
				if merged[j] || !canMerge(current, walls[j]) {
					continue
				}
				current = merge(current, walls[j])
				merged[j] = true
				extended = true
				break
			}
		}

		result = append(result, current)
	}

	return result
}

// canMerge checks if two walls share a side and one ends where the other begins
func canMerge(a, b Wall) bool {
	if a.Side != b.Side {
		return false
	}
	if !geometry.PointsAreCollinear(a.Edge.Origin, a.Edge.Termination, b.Edge.Origin, b.Edge.Termination) {
		return false
	}
	return a.Edge.Termination == b.Edge.Origin || b.Edge.Termination == a.Edge.Origin
}

// merge joins b onto a, keeping the winding direction
func merge(a, b Wall) Wall {
	result := a
	if a.Edge.Termination == b.Edge.Origin {
		result.Edge = geometry.NewEdge(a.Edge.Origin, b.Edge.Termination)
	} else {
		result.Edge = geometry.NewEdge(b.Edge.Origin, a.Edge.Termination)
	}
	result.Cells = append(append([]geometry.Point(nil), a.Cells...), b.Cells...)
	return result
}
