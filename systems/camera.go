package systems

import (
	"github.com/automoto/exterminator-wizard/components"
	"github.com/automoto/exterminator-wizard/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateCamera advances any running pan.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	stepCamera(components.Camera.Get(cameraEntry), float32(1/ebiten.ActualTPS()))
}

func stepCamera(camera *components.CameraData, dt float32) {
	if camera.PanX == nil || camera.PanY == nil {
		return
	}
	// ActualTPS is 0 during the first ticks
	if dt <= 0 || dt > 1 {
		dt = 1.0 / 60
	}

	x, doneX := camera.PanX.Update(dt)
	y, doneY := camera.PanY.Update(dt)
	camera.Position = math.Vec2{X: float64(x), Y: float64(y)}

	if doneX && doneY {
		camera.PanX, camera.PanY = nil, nil
	}
}

// FocusCamera starts a pan from the camera's current position to target.
func FocusCamera(w donburi.World, target math.Vec2) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	duration := config.Viewer.PanDuration
	if duration <= 0 {
		camera.Position = target
		camera.PanX, camera.PanY = nil, nil
		return
	}
	camera.PanX = gween.New(float32(camera.Position.X), float32(target.X), duration, ease.OutQuad)
	camera.PanY = gween.New(float32(camera.Position.Y), float32(target.Y), duration, ease.OutQuad)
}

// focusOnBuiltLevel pans to the level whose colliders were just built.
func focusOnBuiltLevel(w donburi.World, ev components.CollidersBuiltEvent) {
	levelEntry, _, ok := findOwner(w, ev.Owner)
	if !ok {
		return
	}
	FocusCamera(w, components.Level.Get(levelEntry).Center())
}

// RegisterCameraHandlers makes the camera follow level loads.
func RegisterCameraHandlers(e *ecs.ECS) {
	components.CollidersBuilt.Subscribe(e.World, focusOnBuiltLevel)
}
