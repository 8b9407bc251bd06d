package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/fogmap/internal/game"
	"chosenoffset.com/fogmap/internal/mapscanner"
	"chosenoffset.com/fogmap/internal/render/ebiten"
	"chosenoffset.com/fogmap/internal/render/terminal"
	"chosenoffset.com/fogmap/internal/simulation"
	"chosenoffset.com/fogmap/internal/survey"
	"chosenoffset.com/fogmap/internal/world/maploader"
)

func main() {
	mapPath := flag.String("map", "data/maps/demo.json", "map file (JSON or YAML)")
	rulesPath := flag.String("rules", "data/rules.json", "rules file (JSON or YAML)")
	mode := flag.String("mode", "text", "preview mode: text, terminal or window")
	zoom := flag.Int("zoom", 4, "window pixels per map pixel")
	list := flag.String("list", "", "list the maps in a data directory and exit")
	flag.Parse()

	if *list != "" {
		if err := listMaps(*list); err != nil {
			log.Fatalf("Failed to scan data directory: %v", err)
		}
		return
	}

	gameMap, err := maploader.LoadMap(*mapPath)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}

	rules, err := simulation.LoadConfig(*rulesPath)
	if err != nil {
		log.Fatalf("Failed to load rules: %v", err)
	}

	s, err := survey.New(gameMap, rules)
	if err != nil {
		log.Fatalf("Failed to start survey: %v", err)
	}

	switch *mode {
	case "text":
		err = runText(s)
	case "terminal":
		err = runTerminal(s)
	case "window":
		viewer := ebiten.NewViewer(game.NewController(s, ebiten.NewInputManager(), 0), *zoom)
		err = ebiten.Run(viewer, "fogmap - "+gameMap.Data.Name)
	default:
		log.Fatalf("Unknown mode %q", *mode)
	}

	if err != nil {
		log.Fatal(err)
	}
}

// runText patrols the map and prints the fog and zone report.
func runText(s *survey.Survey) error {
	report, err := s.Patrol(context.Background())
	if err != nil {
		return err
	}

	fmt.Print(report.Render)
	fmt.Printf("revealed %d/%d cells\n", report.Revealed, report.Total)

	names := make([]string, 0, len(report.Zones))
	for name := range report.Zones {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-16s %d\n", name, report.Zones[name])
	}
	return nil
}

func runTerminal(s *survey.Survey) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	// log output would corrupt the screen
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)
	return terminal.NewViewer(screen, s).Run()
}

func listMaps(dataPath string) error {
	maps, err := mapscanner.ScanDataDirectory(dataPath)
	if err != nil {
		return err
	}

	for _, m := range maps {
		if m.Err != nil {
			log.Printf("Warning: %s: %v", m.Path, m.Err)
			continue
		}
		fmt.Printf("%-16s %s\n", m.Name, m.Path)
	}
	return nil
}
