package geometry

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints is returned when a polygon is built from fewer than three points
var ErrTooFewPoints = errors.New("polygon needs at least 3 points")

// Polygon is a closed boundary described by ordered vertices. The edge from
// the last vertex back to the first is implicit.
//
// Vertices that lie on a straight run between their neighbours are dropped at
// construction; the resulting edge ring is cached.
type Polygon struct {
	points []Point
	edges  []Edge
}

// NewPolygon simplifies points and builds the polygon's edge ring
func NewPolygon(points ...Point) (*Polygon, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}

	simplified := RemoveRedundantPoints(points...)
	return &Polygon{
		points: simplified,
		edges:  ringFromPoints(simplified),
	}, nil
}

// Points returns the simplified vertices
func (p *Polygon) Points() []Point {
	return append([]Point(nil), p.points...)
}

// Edges returns the closed edge ring
func (p *Polygon) Edges() []Edge {
	return append([]Edge(nil), p.edges...)
}

// Bounds returns the top-left and bottom-right corners of the bounding box
func (p *Polygon) Bounds() (minPt, maxPt Point) {
	if len(p.points) == 0 {
		return Point{}, Point{}
	}
	minPt, maxPt = p.points[0], p.points[0]
	for _, pt := range p.points[1:] {
		minPt.X = min(minPt.X, pt.X)
		minPt.Y = min(minPt.Y, pt.Y)
		maxPt.X = max(maxPt.X, pt.X)
		maxPt.Y = max(maxPt.Y, pt.Y)
	}
	return minPt, maxPt
}

// CoversPoint tests whether point is inside the polygon using the even-odd
// rule. A ray is cast from a point left of the map (x = -1, or left of the
// polygon when the polygon extends past x = -1) to point, and the boundary
// edges it crosses are counted.
//
// Rays passing exactly through a vertex or running along a boundary edge are
// counted as Edge.Intersects reports them; no tie-break is applied.
func (p *Polygon) CoversPoint(point Point) bool {
	outsideX := -1
	if minPt, _ := p.Bounds(); minPt.X <= outsideX {
		outsideX = minPt.X - 1
	}

	ray := NewEdge(Pt(outsideX, point.Y), point)

	crossings := 0
	for _, edge := range p.edges {
		if ray.Intersects(edge) {
			crossings++
		}
	}

	return crossings%2 == 1
}

// RemoveRedundantPoints drops every point that is collinear with its
// neighbours in the input (wrapping around at both ends). Order is preserved.
func RemoveRedundantPoints(points ...Point) []Point {
	n := len(points)
	if n < 3 {
		return append([]Point(nil), points...)
	}

	output := make([]Point, 0, n)
	for i, point := range points {
		previous := points[(i-1+n)%n]
		next := points[(i+1)%n]

		if PointsAreCollinear(previous, point, next) {
			continue
		}
		output = append(output, point)
	}

	return output
}

// EdgesFromPoints simplifies points and returns the closed ring of edges
// joining them.
func EdgesFromPoints(points ...Point) []Edge {
	return ringFromPoints(RemoveRedundantPoints(points...))
}

func ringFromPoints(points []Point) []Edge {
	if len(points) < 2 {
		return nil
	}

	edges := make([]Edge, 0, len(points))
	for i, point := range points {
		edges = append(edges, NewEdge(point, points[(i+1)%len(points)]))
	}
	return edges
}
