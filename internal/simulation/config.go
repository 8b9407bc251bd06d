// Package simulation provides the rules used when revealing a map.
// These rules are loaded from data files so each map can tune its own fog.
package simulation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/fogmap/internal/core/visibility"
	"chosenoffset.com/fogmap/internal/world/maploader"
)

// Config holds all reveal rules
type Config struct {
	// Perception rules
	Perception PerceptionConfig `json:"perception" yaml:"perception"`

	// Reveal scheduling
	Reveal RevealConfig `json:"reveal" yaml:"reveal"`
}

// PerceptionConfig defines how far an observer sees
type PerceptionConfig struct {
	SearchRadius float64 `json:"search_radius" yaml:"search_radius"` // Reveal radius in pixels
}

// RevealConfig defines how patrol reveals are scheduled
type RevealConfig struct {
	Workers int `json:"workers" yaml:"workers"` // Concurrent patrol points (0 = one per CPU)
}

// DefaultConfig returns the rules used when no rules file is present
func DefaultConfig() *Config {
	return &Config{
		Perception: PerceptionConfig{
			SearchRadius: 7.5,
		},
		Reveal: RevealConfig{
			Workers: 0,
		},
	}
}

// LoadConfig loads rules from a JSON or YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	return config, nil
}

// GridConfig combines the rules with a map's dimensions
func (c *Config) GridConfig(m *maploader.MapData) visibility.Config {
	return visibility.Config{
		WidthPx:        m.Width,
		HeightPx:       m.Height,
		ScaleFactor:    m.TileSize,
		SearchRadiusPx: c.Perception.SearchRadius,
		Workers:        c.Reveal.Workers,
	}
}
