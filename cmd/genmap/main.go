package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/fogmap/internal/placeholders"
)

func main() {
	layout := placeholders.DefaultLayout
	out := flag.String("out", "data/maps", "output directory")
	flag.StringVar(&layout.Name, "name", layout.Name, "map name, also used for the file names")
	flag.IntVar(&layout.Rooms, "rooms", layout.Rooms, "number of rooms")
	flag.IntVar(&layout.RoomSize, "room-size", layout.RoomSize, "interior cells per room side")
	flag.IntVar(&layout.TileSize, "tile", layout.TileSize, "pixels per cell")
	flag.Parse()

	fmt.Println("fogmap placeholder map generator")
	fmt.Println("================================")
	fmt.Println()

	path, err := placeholders.GenerateAndSave(layout, *out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Done! Preview it with: fogmap -map %s\n", path)
}
