package factory

import (
	"github.com/automoto/exterminator-wizard/archetypes"
	"github.com/automoto/exterminator-wizard/components"
	"github.com/automoto/exterminator-wizard/shared/netcomponents"
	"github.com/automoto/exterminator-wizard/shared/wallgrid"
	"github.com/automoto/exterminator-wizard/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWallCollider spawns one static wall covering rect, owned by level.
func CreateWallCollider(ecs *ecs.ECS, level donburi.Entity, owner string, rect wallgrid.Rect, collider wallgrid.Collider) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	pos := collider.Min()
	size := collider.Size()

	// Create collision object
	obj := resolv.NewObject(pos.X, pos.Y, size.X, size.Y, tags.ResolvSolid, tags.ResolvWall)
	obj.SetShape(resolv.NewRectangle(0, 0, size.X, size.Y))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	components.WallCollider.SetValue(wall, components.WallColliderData{
		Level:    level,
		Owner:    owner,
		Rect:     rect,
		Collider: collider,
	})
	netcomponents.NetWallCollider.SetValue(wall, netcomponents.NetWallColliderData{
		X:     pos.X,
		Y:     pos.Y,
		W:     size.X,
		H:     size.Y,
		Owner: owner,
	})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}
