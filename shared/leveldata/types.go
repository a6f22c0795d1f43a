// Package leveldata provides TMX level parsing shared between the viewer and
// the stats tool. It has no dependencies on ebitengine, donburi ECS, or
// resolv; pure data only.
package leveldata

import "github.com/automoto/exterminator-wizard/shared/wallgrid"

// WallData holds everything collider building needs from one TMX level.
type WallData struct {
	Name       string
	Width      int // in cells
	Height     int // in cells
	TileWidth  int
	TileHeight int
	Owners     []WallOwner
}

// CellSize returns w x h when both are positive, otherwise the map's own
// tile size.
func (d *WallData) CellSize(w, h float64) wallgrid.CellSize {
	if w > 0 && h > 0 {
		return wallgrid.CellSize{W: w, H: h}
	}
	return wallgrid.CellSize{W: float64(d.TileWidth), H: float64(d.TileHeight)}
}

// WallOwner is one wall layer of a level. Colliders are never merged across
// owners.
type WallOwner struct {
	Key   string // "<level>/<layer>"
	Layer string
	Walls *wallgrid.OccupancySet
}

// TotalCells counts wall cells across all owners.
func (d *WallData) TotalCells() int {
	n := 0
	for _, o := range d.Owners {
		n += o.Walls.Len()
	}
	return n
}
