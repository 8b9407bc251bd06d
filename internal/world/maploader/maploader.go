package maploader

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/fogmap/internal/core/geometry"
	"chosenoffset.com/fogmap/internal/world/bitmap"
)

// Coord is a cell coordinate in a map file
type Coord struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Point converts the coordinate to a geometry point
func (c Coord) Point() geometry.Point {
	return geometry.Pt(c.X, c.Y)
}

// ZoneData is a named polygon, in cell coordinates
type ZoneData struct {
	Name   string  `json:"name" yaml:"name"`
	Points []Coord `json:"points" yaml:"points"`
}

// MapData represents the loaded map configuration
type MapData struct {
	Name        string     `json:"name" yaml:"name"`
	Width       int        `json:"width" yaml:"width"`         // Map width in pixels (defaults to the image width)
	Height      int        `json:"height" yaml:"height"`       // Map height in pixels (defaults to the image height)
	TileSize    int        `json:"tile_size" yaml:"tile_size"` // Pixels per cell
	ImagePath   string     `json:"image,omitempty" yaml:"image,omitempty"`
	PlayerSpawn Coord      `json:"player_spawn" yaml:"player_spawn"`
	Patrol      []Coord    `json:"patrol,omitempty" yaml:"patrol,omitempty"`
	Zones       []ZoneData `json:"zones,omitempty" yaml:"zones,omitempty"`
}

// Columns returns the map width in cells
func (d *MapData) Columns() int { return d.Width / d.TileSize }

// Rows returns the map height in cells
func (d *MapData) Rows() int { return d.Height / d.TileSize }

// Map represents a loaded map with its optional background image
type Map struct {
	Data  *MapData
	Image image.Image // nil when the map has no image

	// Blocked classifies image pixels; nil when the map has no image
	Blocked bitmap.Classifier
}

// LoadMap loads a map from a JSON or YAML file and its associated image
func LoadMap(mapPath string) (*Map, error) {
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", mapPath, err)
	}

	mapData, err := ParseMapData(data, filepath.Ext(mapPath))
	if err != nil {
		return nil, fmt.Errorf("failed to parse map file %s: %w", mapPath, err)
	}

	gameMap := &Map{Data: mapData}

	if mapData.ImagePath != "" {
		imagePath := mapData.ImagePath
		if !filepath.IsAbs(imagePath) {
			imagePath = filepath.Join(filepath.Dir(mapPath), imagePath)
		}

		img, err := bitmap.Open(imagePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load map image for %s: %w", mapPath, err)
		}

		gameMap.Image = img
		gameMap.Blocked = bitmap.BlackPixels(img)

		if mapData.Width == 0 {
			mapData.Width = img.Bounds().Dx()
		}
		if mapData.Height == 0 {
			mapData.Height = img.Bounds().Dy()
		}
	}

	if err := validateMapData(mapData); err != nil {
		return nil, fmt.Errorf("invalid map data in %s: %w", mapPath, err)
	}

	return gameMap, nil
}

// ParseMapData decodes map data. Files ending in .yaml or .yml are read as
// YAML, anything else as JSON. The result is not validated.
func ParseMapData(data []byte, ext string) (*MapData, error) {
	var mapData MapData

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &mapData); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &mapData); err != nil {
			return nil, err
		}
	}

	return &mapData, nil
}

// validateMapData checks if the map data is valid
func validateMapData(data *MapData) error {
	if data.Width <= 0 || data.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", data.Width, data.Height)
	}

	if data.TileSize <= 0 {
		return fmt.Errorf("invalid tile size: %d", data.TileSize)
	}

	if data.Width%data.TileSize != 0 || data.Height%data.TileSize != 0 {
		return fmt.Errorf("map size %dx%d is not a multiple of tile size %d", data.Width, data.Height, data.TileSize)
	}

	inBounds := func(c Coord) bool {
		return c.X >= 0 && c.X < data.Columns() && c.Y >= 0 && c.Y < data.Rows()
	}

	if !inBounds(data.PlayerSpawn) {
		return fmt.Errorf("player spawn (%d, %d) outside %dx%d cells",
			data.PlayerSpawn.X, data.PlayerSpawn.Y, data.Columns(), data.Rows())
	}

	for i, c := range data.Patrol {
		if !inBounds(c) {
			return fmt.Errorf("patrol point %d (%d, %d) outside %dx%d cells", i, c.X, c.Y, data.Columns(), data.Rows())
		}
	}

	seen := make(map[string]bool)
	for i, zone := range data.Zones {
		if zone.Name == "" {
			return fmt.Errorf("zone %d has no name", i)
		}
		if seen[zone.Name] {
			return fmt.Errorf("duplicate zone name: %s", zone.Name)
		}
		seen[zone.Name] = true

		if len(zone.Points) < 3 {
			return fmt.Errorf("zone %s needs at least 3 points, got %d", zone.Name, len(zone.Points))
		}
	}

	return nil
}

// Zone is a named region of the map
type Zone struct {
	Name    string
	Polygon *geometry.Polygon
}

// Zones builds the polygons of every zone in the map
func (m *Map) Zones() ([]Zone, error) {
	zones := make([]Zone, 0, len(m.Data.Zones))

	for _, zoneData := range m.Data.Zones {
		points := make([]geometry.Point, len(zoneData.Points))
		for i, c := range zoneData.Points {
			points[i] = c.Point()
		}

		poly, err := geometry.NewPolygon(points...)
		if err != nil {
			return nil, fmt.Errorf("zone %s: %w", zoneData.Name, err)
		}
		zones = append(zones, Zone{Name: zoneData.Name, Polygon: poly})
	}

	return zones, nil
}

// BlocksSight reports whether the top-left pixel of cell (x, y) is a
// blocking pixel. Maps without an image never block.
func (m *Map) BlocksSight(x, y int) bool {
	if m.Blocked == nil {
		return false
	}
	return m.Blocked(x*m.Data.TileSize, y*m.Data.TileSize)
}
