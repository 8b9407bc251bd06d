package maploader

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/fogmap/internal/core/geometry"
)

const jsonMap = `{
	"name": "outpost",
	"width": 128,
	"height": 32,
	"tile_size": 4,
	"player_spawn": {"x": 2, "y": 3},
	"patrol": [{"x": 0, "y": 0}, {"x": 31, "y": 7}],
	"zones": [
		{"name": "hangar", "points": [{"x": 1, "y": 1}, {"x": 10, "y": 1}, {"x": 10, "y": 6}, {"x": 1, "y": 6}]}
	]
}`

const yamlMap = `
name: outpost
tile_size: 2
image: floor.png
player_spawn: {x: 1, y: 1}
zones:
  - name: wall
    points:
      - {x: 0, y: 0}
      - {x: 1, y: 0}
      - {x: 2, y: 0}
      - {x: 2, y: 2}
      - {x: 0, y: 2}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeImage(t *testing.T, dir, name string) {
	t.Helper()

	// 8x6 white image with a black 2x2 block at the top-left
	img := image.NewGray(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			img.SetGray(x, y, color.Gray{Y: 0xff})
		}
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetGray(x, y, color.Gray{})
		}
	}

	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadJSONMap(t *testing.T) {
	path := writeFile(t, t.TempDir(), "outpost.json", jsonMap)

	m, err := LoadMap(path)
	require.NoError(t, err)

	assert.Equal(t, "outpost", m.Data.Name)
	assert.Equal(t, 32, m.Data.Columns())
	assert.Equal(t, 8, m.Data.Rows())
	assert.Equal(t, geometry.Pt(2, 3), m.Data.PlayerSpawn.Point())
	assert.Len(t, m.Data.Patrol, 2)
	assert.Nil(t, m.Image)
	assert.False(t, m.BlocksSight(0, 0))

	zones, err := m.Zones()
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Equal(t, "hangar", zones[0].Name)
	assert.True(t, zones[0].Polygon.CoversPoint(geometry.Pt(5, 3)))
}

func TestLoadYAMLMapWithImage(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "floor.png")
	path := writeFile(t, dir, "outpost.yaml", yamlMap)

	m, err := LoadMap(path)
	require.NoError(t, err)

	assert.Equal(t, 8, m.Data.Width, "width comes from the image")
	assert.Equal(t, 6, m.Data.Height, "height comes from the image")
	assert.Equal(t, 4, m.Data.Columns())
	assert.Equal(t, 3, m.Data.Rows())
	require.NotNil(t, m.Image)

	assert.True(t, m.BlocksSight(0, 0))
	assert.False(t, m.BlocksSight(1, 0))
	assert.False(t, m.BlocksSight(3, 2))

	zones, err := m.Zones()
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Len(t, zones[0].Polygon.Points(), 4, "collinear vertex is dropped")
}

func TestLoadMapErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadMap(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	tests := map[string]string{
		"bad json":          `{"name": `,
		"no size":           `{"tile_size": 4}`,
		"zero tile size":    `{"width": 8, "height": 8}`,
		"indivisible":       `{"width": 10, "height": 8, "tile_size": 4}`,
		"spawn outside":     `{"width": 8, "height": 8, "tile_size": 4, "player_spawn": {"x": 2, "y": 0}}`,
		"patrol outside":    `{"width": 8, "height": 8, "tile_size": 4, "patrol": [{"x": -1, "y": 0}]}`,
		"zone without name": `{"width": 8, "height": 8, "tile_size": 4, "zones": [{"points": [{"x":0,"y":0},{"x":1,"y":0},{"x":1,"y":1}]}]}`,
		"small zone":        `{"width": 8, "height": 8, "tile_size": 4, "zones": [{"name": "a", "points": [{"x":0,"y":0},{"x":1,"y":0}]}]}`,
		"missing image":     `{"width": 8, "height": 8, "tile_size": 4, "image": "nope.png"}`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, dir, "map.json", content)
			_, err := LoadMap(path)
			assert.Error(t, err)
		})
	}
}
