package geometry

import (
	"fmt"
	"math"
)

// Turn classifies the direction taken when walking through three points
type Turn int

const (
	CounterClockwise Turn = -1
	Collinear        Turn = 0
	Clockwise        Turn = 1
)

func (t Turn) String() string {
	switch t {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "collinear"
	}
}

// Edge is a directed line segment from Origin to Termination.
// An edge whose endpoints coincide is degenerate: it counts as both vertical
// and horizontal, and every derived quantity stays defined.
type Edge struct {
	Origin      Point
	Termination Point
}

// NewEdge creates an edge from origin to termination
func NewEdge(origin, termination Point) Edge {
	return Edge{Origin: origin, Termination: termination}
}

func (e Edge) String() string {
	return fmt.Sprintf("%s -> %s", e.Origin, e.Termination)
}

// XDiff is Origin.X - Termination.X
func (e Edge) XDiff() int {
	return e.Origin.X - e.Termination.X
}

// YDiff is Origin.Y - Termination.Y
func (e Edge) YDiff() int {
	return e.Origin.Y - e.Termination.Y
}

// DiagonalDistance returns the Chebyshev distance between the endpoints.
// It is the number of steps needed to visit every unit of the dominant axis.
func (e Edge) DiagonalDistance() int {
	return max(abs(e.XDiff()), abs(e.YDiff()))
}

// Length returns the Euclidean length of the edge
func (e Edge) Length() float64 {
	return e.Origin.DistanceTo(e.Termination)
}

// Angle returns atan2(XDiff, YDiff). A degenerate edge has angle 0.
func (e Edge) Angle() float64 {
	return math.Atan2(float64(e.XDiff()), float64(e.YDiff()))
}

func (e Edge) IsVertical() bool {
	return e.Origin.X == e.Termination.X
}

func (e Edge) IsHorizontal() bool {
	return e.Origin.Y == e.Termination.Y
}

// IsDegenerate reports whether the edge has zero length
func (e Edge) IsDegenerate() bool {
	return e.Origin == e.Termination
}

// Gradient returns 1 for vertical (and degenerate) edges, 0 for horizontal
// edges and YDiff/XDiff otherwise.
func (e Edge) Gradient() float64 {
	if e.IsVertical() {
		return 1
	}
	if e.IsHorizontal() {
		return 0
	}
	return float64(e.YDiff()) / float64(e.XDiff())
}

// YIntercept returns Origin.Y - Gradient*Origin.X.
//
// The value is meaningless for vertical edges because Gradient reports 1 for
// them; a vertical edge can therefore share an intercept with an unrelated
// 45 degree line.
func (e Edge) YIntercept() float64 {
	return float64(e.Origin.Y) - e.Gradient()*float64(e.Origin.X)
}

// Centre returns the midpoint, rounded half to even on each axis
func (e Edge) Centre() Point {
	return Point{
		X: interpolate(e.Origin.X, e.Termination.X, 0.5),
		Y: interpolate(e.Origin.Y, e.Termination.Y, 0.5),
	}
}

// Contains reports whether p is one of the edge's endpoints
func (e Edge) Contains(p Point) bool {
	return e.Origin == p || e.Termination == p
}

// Equals compares edges without regard to direction
func (e Edge) Equals(other Edge) bool {
	return e.Contains(other.Origin) && e.Contains(other.Termination) &&
		other.Contains(e.Origin) && other.Contains(e.Termination)
}

// IsParallelTo checks if the edge runs in the same direction as other
func (e Edge) IsParallelTo(other Edge) bool {
	if e.IsHorizontal() && other.IsHorizontal() {
		return true
	}
	if e.IsVertical() && other.IsVertical() {
		return true
	}
	return e.Gradient() == other.Gradient()
}

// Orientation returns the turn made by walking a -> b -> c.
func Orientation(a, b, c Point) Turn {
	val := (b.Y-a.Y)*(c.X-b.X) - (b.X-a.X)*(c.Y-b.Y)

	switch {
	case val > 0:
		return Clockwise
	case val < 0:
		return CounterClockwise
	default:
		return Collinear
	}
}

// Intersects reports whether the two segments properly cross.
//
// Only the general-position rule is applied: collinear segments, overlapping
// or not, never intersect.
func (e Edge) Intersects(other Edge) bool {
	acd := Orientation(e.Origin, other.Origin, other.Termination)
	bcd := Orientation(e.Termination, other.Origin, other.Termination)
	abc := Orientation(e.Origin, e.Termination, other.Origin)
	abd := Orientation(e.Origin, e.Termination, other.Termination)

	return acd != bcd && abc != abd
}

// IntermediaryPoints samples the edge in steps+2 lattice points: the origin,
// the points at t = i/steps for i in 1..steps, and the termination. The last
// sample coincides with the termination, which always stays last.
// A non-positive step count yields just the two endpoints.
func (e Edge) IntermediaryPoints(steps int) []Point {
	if steps < 0 {
		steps = 0
	}

	points := make([]Point, 0, steps+2)
	points = append(points, e.Origin)

	for step := 1; step <= steps; step++ {
		t := float64(step) / float64(steps)
		points = append(points, Point{
			X: interpolate(e.Origin.X, e.Termination.X, t),
			Y: interpolate(e.Origin.Y, e.Termination.Y, t),
		})
	}

	return append(points, e.Termination)
}

// Rasterise samples the edge at one point per unit of its dominant axis
func (e Edge) Rasterise() []Point {
	return e.IntermediaryPoints(e.DiagonalDistance())
}

// PointsAreCollinear checks whether every point lies on the line through the
// first two distinct points.
//
// Non-vertical lines are compared by gradient and y-intercept of the edges
// (p0, pi). Vertical lines are compared by x instead, because YIntercept
// cannot tell them apart from 45 degree lines.
func PointsAreCollinear(points ...Point) bool {
	if len(points) < 3 {
		return true
	}

	anchor := points[0]

	var reference *Edge
	for _, p := range points[1:] {
		if p != anchor {
			ref := NewEdge(anchor, p)
			reference = &ref
			break
		}
	}
	if reference == nil {
		return true
	}

	for _, p := range points[1:] {
		if p == anchor {
			continue
		}

		candidate := NewEdge(anchor, p)
		if reference.IsVertical() || candidate.IsVertical() {
			if reference.IsVertical() != candidate.IsVertical() {
				return false
			}
			continue
		}

		if candidate.YIntercept() != reference.YIntercept() {
			return false
		}
		if candidate.Gradient() != reference.Gradient() {
			return false
		}
	}

	return true
}

// interpolate returns start + (end-start)*t rounded half to even
func interpolate(start, end int, t float64) int {
	return int(math.RoundToEven(float64(start) + float64(end-start)*t))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
