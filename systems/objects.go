package systems

import (
	"github.com/automoto/exterminator-wizard/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects keeps resolv's cell assignment in sync with object positions.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
