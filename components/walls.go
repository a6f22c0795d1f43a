package components

import (
	"github.com/automoto/exterminator-wizard/shared/wallgrid"
	"github.com/yohamta/donburi"
)

// LevelWallsData is the wall snapshot of one loaded level, keyed by owner.
// It is replaced as a whole when the level is reloaded, never patched.
type LevelWallsData struct {
	Owners []string // load order
	Walls  map[string]*wallgrid.OccupancySet
	Stats  map[string]wallgrid.Stats // last build per owner
}

var LevelWalls = donburi.NewComponentType[LevelWallsData]()

// WallColliderData links a static collider back to the level entity, owner
// and grid rect it was built from.
type WallColliderData struct {
	Level    donburi.Entity
	Owner    string
	Rect     wallgrid.Rect
	Collider wallgrid.Collider
}

var WallCollider = donburi.NewComponentType[WallColliderData]()
