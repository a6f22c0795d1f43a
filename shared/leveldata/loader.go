package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/exterminator-wizard/shared/wallgrid"
	"github.com/lafriks/go-tiled"
)

// OwnerKey builds the partition key for one wall layer of a level.
func OwnerKey(level, layer string) string {
	return level + "/" + layer
}

// LoadWallData parses a TMX file and returns its wall occupancy, one owner
// per wall layer. A tile layer is a wall layer if its
// "walls" bool property is set or its name equals wallLayer. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
func LoadWallData(fsys fs.FS, tmxPath, wallLayer string) (*WallData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	name := strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")
	data := &WallData{
		Name:       name,
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	for _, layer := range levelMap.Layers {
		if !layer.Properties.GetBool("walls") && layer.Name != wallLayer {
			continue
		}
		if len(layer.Tiles) < levelMap.Width*levelMap.Height {
			return nil, fmt.Errorf("layer %s in %s: expected %d tiles, got %d",
				layer.Name, tmxPath, levelMap.Width*levelMap.Height, len(layer.Tiles))
		}

		walls := wallgrid.NewOccupancySet(levelMap.Width, levelMap.Height)
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() || passable(tile) {
					continue
				}
				walls.Add(wallgrid.GridCoord{X: x, Y: y})
			}
		}

		data.Owners = append(data.Owners, WallOwner{
			Key:   OwnerKey(name, layer.Name),
			Layer: layer.Name,
			Walls: walls,
		})
	}

	return data, nil
}

// passable reports whether the tileset marks this tile as walkable even
// though it sits on a wall layer (doors, floor decals).
func passable(tile *tiled.LayerTile) bool {
	if tile.Tileset == nil {
		return false
	}
	tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return false
	}
	return tilesetTile.Properties.GetBool("passable")
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads wall
// data for each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir, wallLayer string) (map[string]*WallData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*WallData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadWallData(fsys, path, wallLayer)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
