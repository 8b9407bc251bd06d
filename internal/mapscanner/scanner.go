package mapscanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"chosenoffset.com/fogmap/internal/world/maploader"
)

// MapEntry represents a discoverable map in the data directory
type MapEntry struct {
	Name string // Display name from the map file
	Path string // Path to the map file
	Err  error  // Set when the file could not be parsed
}

// ScanDataDirectory scans the maps directory under dataPath for map files.
// Files that fail to parse are still listed, with Err set.
func ScanDataDirectory(dataPath string) ([]MapEntry, error) {
	mapsPath := filepath.Join(dataPath, "maps")
	entries, err := os.ReadDir(mapsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read maps directory: %w", err)
	}

	var maps []MapEntry

	for _, entry := range entries {
		// Skip directories and hidden files
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(mapsPath, name)
		maps = append(maps, scanMap(path, ext))
	}

	sort.Slice(maps, func(i, j int) bool { return maps[i].Path < maps[j].Path })
	return maps, nil
}

// scanMap reads the display name of a map without loading its image
func scanMap(path, ext string) MapEntry {
	entry := MapEntry{Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		entry.Err = err
		return entry
	}

	mapData, err := maploader.ParseMapData(data, ext)
	if err != nil {
		entry.Err = err
		return entry
	}

	if mapData.Name != "" {
		entry.Name = mapData.Name
	}
	return entry
}
