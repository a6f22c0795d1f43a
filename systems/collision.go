package systems

import (
	"github.com/automoto/exterminator-wizard/components"
	"github.com/automoto/exterminator-wizard/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BlockedAt reports whether the world point (x, y) lies inside a solid
// collider of the space. Points on a collider's far edge are outside.
func BlockedAt(space *resolv.Space, x, y float64) bool {
	probe := resolv.NewObject(x, y, 1, 1)
	space.Add(probe)
	defer space.Remove(probe)

	collision := probe.Check(0, 0, tags.ResolvSolid)
	if collision == nil {
		return false
	}
	for _, obj := range collision.Objects {
		if x >= obj.X && x < obj.X+obj.W && y >= obj.Y && y < obj.Y+obj.H {
			return true
		}
	}
	return false
}

// SpaceBlockedAt is BlockedAt against the world's collision space. A world
// without a space blocks nothing.
func SpaceBlockedAt(w donburi.World, x, y float64) bool {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return false
	}
	return BlockedAt(components.Space.Get(spaceEntry), x, y)
}
