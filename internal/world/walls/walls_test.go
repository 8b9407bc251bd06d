package walls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/fogmap/internal/core/geometry"
)

func blocksFrom(rows ...string) (BlocksFunc, int, int) {
	return func(x, y int) bool {
		return rows[y][x] == '#'
	}, len(rows[0]), len(rows)
}

func edges(walls []Wall) []geometry.Edge {
	out := make([]geometry.Edge, len(walls))
	for i, w := range walls {
		out[i] = w.Edge
	}
	return out
}

func TestOutlineSingleCell(t *testing.T) {
	blocks, w, h := blocksFrom(
		"...",
		".#.",
		"...",
	)

	walls := Outline(blocks, w, h)
	require.Len(t, walls, 4)
	assert.ElementsMatch(t, []geometry.Edge{
		geometry.NewEdge(geometry.Pt(1, 1), geometry.Pt(2, 1)),
		geometry.NewEdge(geometry.Pt(2, 1), geometry.Pt(2, 2)),
		geometry.NewEdge(geometry.Pt(2, 2), geometry.Pt(1, 2)),
		geometry.NewEdge(geometry.Pt(1, 2), geometry.Pt(1, 1)),
	}, edges(walls))

	for _, wall := range walls {
		assert.Equal(t, []geometry.Point{geometry.Pt(1, 1)}, wall.Cells)
	}
}

func TestOutlineMergesRuns(t *testing.T) {
	blocks, w, h := blocksFrom(
		"###",
	)

	walls := Outline(blocks, w, h)
	require.Len(t, walls, 4)
	assert.ElementsMatch(t, []geometry.Edge{
		geometry.NewEdge(geometry.Pt(0, 0), geometry.Pt(3, 0)),
		geometry.NewEdge(geometry.Pt(3, 0), geometry.Pt(3, 1)),
		geometry.NewEdge(geometry.Pt(3, 1), geometry.Pt(0, 1)),
		geometry.NewEdge(geometry.Pt(0, 1), geometry.Pt(0, 0)),
	}, edges(walls))

	for _, wall := range walls {
		if wall.Side == Top {
			assert.Len(t, wall.Cells, 3)
		}
	}
}

func TestOutlineLShape(t *testing.T) {
	blocks, w, h := blocksFrom(
		"#..",
		"#..",
		"###",
	)

	walls := Outline(blocks, w, h)
	assert.Len(t, walls, 6)

	var perimeter float64
	for _, wall := range walls {
		perimeter += wall.Edge.Length()
	}
	assert.Equal(t, 12.0, perimeter)
}

func TestRegions(t *testing.T) {
	blocks, w, h := blocksFrom(
		"##..#",
		"#...#",
		"..#..",
	)

	regions := Regions(blocks, w, h)
	require.Len(t, regions, 3)
	assert.Len(t, regions[0], 3)
	assert.Len(t, regions[1], 2)
	assert.Equal(t, []geometry.Point{geometry.Pt(2, 2)}, regions[2])
}

func TestOutlineEmpty(t *testing.T) {
	blocks, w, h := blocksFrom("....")
	assert.Empty(t, Outline(blocks, w, h))
}

func TestSideString(t *testing.T) {
	assert.Equal(t, "top", Top.String())
	assert.Equal(t, "left", Left.String())
}
