// Command wallstats prints per-layer collider counts for every level in a
// directory, for both build strategies.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/automoto/exterminator-wizard/config"
	"github.com/automoto/exterminator-wizard/shared/leveldata"
	"github.com/automoto/exterminator-wizard/shared/wallgrid"
	"github.com/yohamta/donburi/features/math"
)

// ownerStats is one output line.
type ownerStats struct {
	Owner string
	Tile  string // "<w>x<h>" of the level's tiles
	Cells int
	Naive int
	Plate int
}

// countOwner builds colliders for owner with both strategies, the same way
// the viewer does. An owner with an unusable box counts zero colliders.
func countOwner(owner leveldata.WallOwner, cell wallgrid.CellSize) (naive, plate int) {
	_, n := wallgrid.BuildColliders(wallgrid.Naive{}, owner.Walls, cell, math.Vec2{})
	_, p := wallgrid.BuildColliders(wallgrid.PlateMerge{}, owner.Walls, cell, math.Vec2{})
	return len(n), len(p)
}

func collectStats(fsys fs.FS, levelsDir, layer string) ([]ownerStats, error) {
	levels, names, err := leveldata.LoadAllLevels(fsys, levelsDir, layer)
	if err != nil {
		return nil, err
	}

	var out []ownerStats
	for _, name := range names {
		data := levels[name]
		cell := data.CellSize(config.Colliders.CellWidth, config.Colliders.CellHeight)
		for _, owner := range data.Owners {
			if !owner.Walls.Valid() {
				log.Printf("[wallstats] warning: %s has invalid bounds %dx%d", owner.Key, owner.Walls.Width, owner.Walls.Height)
			}
			naive, plate := countOwner(owner, cell)
			out = append(out, ownerStats{
				Owner: owner.Key,
				Tile:  formatTile(data),
				Cells: owner.Walls.Len(),
				Naive: naive,
				Plate: plate,
			})
		}
	}
	return out, nil
}

func formatTile(data *leveldata.WallData) string {
	return fmt.Sprintf("%dx%d", data.TileWidth, data.TileHeight)
}

func main() {
	dir := flag.String("dir", "assets", "Root directory containing the levels directory")
	levelsDir := flag.String("levels", config.Colliders.LevelsDir, "Levels directory inside -dir")
	layer := flag.String("layer", config.Colliders.WallLayer, "Tile layer treated as walls")
	flag.Parse()

	stats, err := collectStats(os.DirFS(*dir), *levelsDir, *layer)
	if err != nil {
		log.Fatalf("[wallstats] %v", err)
	}

	log.Printf("[wallstats] %-24s %6s %6s %6s %6s", "owner", "tile", "cells", "naive", "plate")
	var total ownerStats
	for _, s := range stats {
		log.Printf("[wallstats] %-24s %6s %6d %6d %6d", s.Owner, s.Tile, s.Cells, s.Naive, s.Plate)
		total.Cells += s.Cells
		total.Naive += s.Naive
		total.Plate += s.Plate
	}
	log.Printf("[wallstats] %-24s %6s %6d %6d %6d", "total", "", total.Cells, total.Naive, total.Plate)
}
