package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointArithmetic(t *testing.T) {
	a := Pt(2, 2)
	b := Pt(5, 5)

	assert.Equal(t, Pt(7, 7), a.Add(b))
	assert.Equal(t, Pt(2, 2), Pt(7, 7).Sub(b))
	assert.Equal(t, Pt(3, 1), a.Translate(1, -1))
	assert.Equal(t, Pt(2, 2), a, "operations must not change the receiver")
}

func TestPointAdditiveInverse(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(-3, 8), Pt(1_000, -1), Pt(7, 7)}
	for _, a := range points {
		for _, b := range points {
			assert.Equal(t, a, a.Add(b).Sub(b), "(%s + %s) - %s", a, b, b)
		}
	}
}

func TestPointScale(t *testing.T) {
	assert.Equal(t, Pt(8, 12), Pt(2, 3).Scale(4))
	assert.Equal(t, Pt(3, -3), Pt(5, -5).Scale(0.5))
	assert.Equal(t, Pt(0, 0), Pt(9, -9).Scale(0))
}

func TestPointProducts(t *testing.T) {
	assert.Equal(t, 11, Pt(1, 2).Dot(Pt(3, 4)))
	assert.Equal(t, -2, Pt(1, 2).Cross(Pt(3, 4)))
	assert.Equal(t, 2, Pt(3, 4).Cross(Pt(1, 2)))
}

func TestPointFloorDiv(t *testing.T) {
	assert.Equal(t, Pt(2, 0), Pt(9, 3).FloorDiv(4))
	assert.Equal(t, Pt(-1, -1), Pt(-1, -4).FloorDiv(4))
	assert.Equal(t, Pt(-2, 1), Pt(-5, 4).FloorDiv(4))
	assert.Equal(t, Pt(-3, 3), Pt(-3, 3).FloorDiv(1))
}

func TestPointDistance(t *testing.T) {
	assert.InDelta(t, 2.8284271247461903, Pt(1, 1).DistanceTo(Pt(3, 3)), 1e-12)
	assert.InDelta(t, 5.0, Pt(3, 4).DistanceToOrigin(), 1e-12)

	points := []Point{Pt(0, 0), Pt(-3, 8), Pt(12, 5), Pt(7, -7)}
	for _, a := range points {
		for _, b := range points {
			assert.Equal(t, a.DistanceTo(b), b.DistanceTo(a))
		}
	}
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "(4, -2)", Pt(4, -2).String())
}
