package factory

import (
	"github.com/automoto/exterminator-wizard/archetypes"
	"github.com/automoto/exterminator-wizard/components"
	"github.com/automoto/exterminator-wizard/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Zoom: config.Viewer.Zoom})
	return camera
}
