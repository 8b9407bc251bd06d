// Package placeholders generates simple placeholder maps: a row of walled
// rooms joined by doors, with one zone per room and a patrol route through
// their centres.
package placeholders

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"chosenoffset.com/fogmap/internal/world/bitmap"
	"chosenoffset.com/fogmap/internal/world/maploader"
)

// Layout describes a placeholder map in cells
type Layout struct {
	Name     string
	Rooms    int // Rooms side by side
	RoomSize int // Interior cells per room along each axis
	TileSize int // Pixels per cell
}

// DefaultLayout is the layout written by genmap
var DefaultLayout = Layout{
	Name:     "rooms",
	Rooms:    3,
	RoomSize: 8,
	TileSize: 4,
}

// Columns returns the map width in cells. Rooms share their dividing walls.
func (l Layout) Columns() int { return l.Rooms*(l.RoomSize+1) + 1 }

// Rows returns the map height in cells
func (l Layout) Rows() int { return l.RoomSize + 2 }

// Wall reports whether cell (x, y) is a wall
func (l Layout) Wall(x, y int) bool {
	if y == 0 || y == l.Rows()-1 {
		return true
	}
	if x%(l.RoomSize+1) != 0 {
		return false
	}
	// doors in the dividing walls, not the outer ones
	door := y >= l.Rows()/2-1 && y <= l.Rows()/2
	return !door || x == 0 || x == l.Columns()-1
}

// Blocked classifies pixels of the map image
func (l Layout) Blocked() bitmap.Classifier {
	return func(x, y int) bool {
		return l.Wall(x/l.TileSize, y/l.TileSize)
	}
}

// MapData builds the map file contents for an image stored at imagePath
func (l Layout) MapData(imagePath string) *maploader.MapData {
	data := &maploader.MapData{
		Name:      l.Name,
		Width:     l.Columns() * l.TileSize,
		Height:    l.Rows() * l.TileSize,
		TileSize:  l.TileSize,
		ImagePath: imagePath,
	}

	for i := 0; i < l.Rooms; i++ {
		left := i*(l.RoomSize+1) + 1
		right := left + l.RoomSize - 1
		centre := maploader.Coord{X: left + l.RoomSize/2, Y: l.Rows() / 2}

		data.Zones = append(data.Zones, maploader.ZoneData{
			Name: fmt.Sprintf("room-%d", i+1),
			Points: []maploader.Coord{
				{X: left, Y: 1}, {X: right, Y: 1}, {X: right, Y: l.RoomSize}, {X: left, Y: l.RoomSize},
			},
		})
		data.Patrol = append(data.Patrol, centre)
	}

	if len(data.Patrol) > 0 {
		data.PlayerSpawn = data.Patrol[0]
	}
	return data
}

// GenerateAndSave writes <name>.bmp and <name>.json into dir and returns the
// path of the map file.
func GenerateAndSave(layout Layout, dir string) (string, error) {
	if layout.Rooms <= 0 || layout.RoomSize < 3 || layout.TileSize <= 0 {
		return "", fmt.Errorf("invalid layout: %d rooms of %d cells, tile size %d",
			layout.Rooms, layout.RoomSize, layout.TileSize)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	imageName := layout.Name + ".bmp"
	data := layout.MapData(imageName)

	img, err := os.Create(filepath.Join(dir, imageName))
	if err != nil {
		return "", fmt.Errorf("failed to create image: %w", err)
	}
	if err := bitmap.EncodeMonochrome(img, data.Width, data.Height, layout.Blocked()); err != nil {
		img.Close()
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if err := img.Close(); err != nil {
		return "", fmt.Errorf("failed to close image: %w", err)
	}
	fmt.Printf("  Generated %s (%dx%d)\n", imageName, data.Width, data.Height)

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode map: %w", err)
	}

	mapPath := filepath.Join(dir, layout.Name+".json")
	if err := os.WriteFile(mapPath, append(raw, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("failed to write map: %w", err)
	}
	fmt.Printf("  Generated %s (%d zones)\n", filepath.Base(mapPath), len(data.Zones))

	return mapPath, nil
}
