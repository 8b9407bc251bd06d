// Package survey ties a loaded map to a visibility grid and moves an observer
// across it.
package survey

import (
	"context"
	"fmt"
	"log"
	"sort"

	"chosenoffset.com/fogmap/internal/core/geometry"
	"chosenoffset.com/fogmap/internal/core/visibility"
	"chosenoffset.com/fogmap/internal/simulation"
	"chosenoffset.com/fogmap/internal/world/maploader"
	"chosenoffset.com/fogmap/internal/world/walls"
)

// Survey holds the fog of war for one map.
type Survey struct {
	Map   *maploader.Map
	Rules *simulation.Config

	grid     *visibility.Grid
	zones    []maploader.Zone
	walls    []walls.Wall
	observer geometry.Point
	route    []geometry.Point
}

// Report summarises the state of the fog after a patrol.
type Report struct {
	Revealed int
	Total    int
	// Zones maps each zone name to the number of revealed cells inside it
	Zones  map[string]int
	Render string
}

// New builds the grid for m and reveals the area around the player spawn.
func New(m *maploader.Map, rules *simulation.Config) (*Survey, error) {
	if rules == nil {
		rules = simulation.DefaultConfig()
	}

	grid, err := visibility.New(rules.GridConfig(m.Data))
	if err != nil {
		return nil, fmt.Errorf("failed to create visibility grid: %w", err)
	}

	zones, err := m.Zones()
	if err != nil {
		return nil, fmt.Errorf("failed to build zones: %w", err)
	}

	route := make([]geometry.Point, len(m.Data.Patrol))
	for i, c := range m.Data.Patrol {
		route[i] = c.Point()
	}

	s := &Survey{
		Map:   m,
		Rules: rules,
		grid:  grid,
		zones: zones,
		route: route,
	}
	if m.Blocked != nil {
		s.walls = walls.Outline(m.BlocksSight, grid.Width(), grid.Height())
	}

	if err := s.MoveTo(m.Data.PlayerSpawn.Point()); err != nil {
		return nil, err
	}

	log.Printf("Survey of %q: %dx%d cells, radius %.2f cells, %d zones, %d walls",
		m.Data.Name, grid.Width(), grid.Height(), grid.Radius(), len(zones), len(s.walls))
	return s, nil
}

// Grid returns the visibility grid.
func (s *Survey) Grid() *visibility.Grid { return s.grid }

// Observer returns the observer's current cell.
func (s *Survey) Observer() geometry.Point { return s.observer }

// Walls returns the outline of the blocking cells of the map image.
func (s *Survey) Walls() []walls.Wall { return s.walls }

// Route returns the patrol route in cells.
func (s *Survey) Route() []geometry.Point {
	return append([]geometry.Point(nil), s.route...)
}

// MoveTo places the observer on cell and reveals around it. An out of bounds
// cell leaves the observer where it was.
func (s *Survey) MoveTo(cell geometry.Point) error {
	if _, err := s.grid.RevealRadius(cell); err != nil {
		return fmt.Errorf("move to %s: %w", cell, err)
	}
	s.observer = cell
	return nil
}

// Move steps the observer by (dx, dy) cells.
func (s *Survey) Move(dx, dy int) error {
	return s.MoveTo(s.observer.Translate(dx, dy))
}

// ZonesAt returns the names of the zones covering cell, sorted.
func (s *Survey) ZonesAt(cell geometry.Point) []string {
	var names []string
	for _, zone := range s.zones {
		if zone.Polygon.CoversPoint(cell) {
			names = append(names, zone.Name)
		}
	}
	sort.Strings(names)
	return names
}

// Blocked reports whether the map image marks cell as blocking. It does not
// affect what gets revealed.
func (s *Survey) Blocked(cell geometry.Point) bool {
	if !s.grid.InBounds(cell) {
		return false
	}
	return s.Map.BlocksSight(cell.X, cell.Y)
}

// Patrol reveals around every point of the patrol route concurrently and
// reports the result. A map without a route patrols the observer's cell.
func (s *Survey) Patrol(ctx context.Context) (Report, error) {
	route := s.route
	if len(route) == 0 {
		route = []geometry.Point{s.observer}
	}

	if err := s.grid.RevealAll(ctx, route...); err != nil {
		return Report{}, fmt.Errorf("patrol: %w", err)
	}

	report := s.Report()
	log.Printf("Patrol of %d points revealed %d/%d cells", len(route), report.Revealed, report.Total)
	return report, nil
}

// Report describes the current fog.
func (s *Survey) Report() Report {
	report := Report{
		Revealed: s.grid.RevealedCount(),
		Total:    s.grid.Width() * s.grid.Height(),
		Zones:    make(map[string]int, len(s.zones)),
		Render:   s.grid.String(),
	}

	for _, zone := range s.zones {
		report.Zones[zone.Name] = 0
	}

	for y := 0; y < s.grid.Height(); y++ {
		for x := 0; x < s.grid.Width(); x++ {
			cell := geometry.Pt(x, y)
			if revealed, _ := s.grid.IsRevealed(cell); !revealed {
				continue
			}
			for _, name := range s.ZonesAt(cell) {
				report.Zones[name]++
			}
		}
	}

	return report
}

// ZoneNames returns the zone names in map order.
func (s *Survey) ZoneNames() []string {
	names := make([]string, len(s.zones))
	for i, zone := range s.zones {
		names[i] = zone.Name
	}
	return names
}
