package systems

import (
	"image/color"

	"github.com/automoto/exterminator-wizard/components"
	"github.com/automoto/exterminator-wizard/config"
	"github.com/automoto/exterminator-wizard/shared/wallgrid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type view struct {
	camX, camY float64
	zoom       float64
	halfW      float64
	halfH      float64
}

func (v view) toScreen(x, y float64) (float32, float32) {
	return float32((x-v.camX)*v.zoom + v.halfW), float32((y-v.camY)*v.zoom + v.halfH)
}

func currentView(w donburi.World, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)

	// Safety check for zero zoom
	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	return view{
		camX:  camera.Position.X,
		camY:  camera.Position.Y,
		zoom:  zoom,
		halfW: float64(screen.Bounds().Dx()) / 2,
		halfH: float64(screen.Bounds().Dy()) / 2,
	}, true
}

// DrawCells fills every wall cell of the loaded level.
func DrawCells(ecs *ecs.ECS, screen *ebiten.Image) {
	settingsEntry, ok := components.Settings.First(ecs.World)
	if !ok || !components.Settings.Get(settingsEntry).ShowCells {
		return
	}
	v, ok := currentView(ecs.World, screen)
	if !ok {
		return
	}

	components.LevelWalls.Each(ecs.World, func(entry *donburi.Entry) {
		level := components.Level.Get(entry)
		walls := components.LevelWalls.Get(entry)
		cw := float32(level.Cell.W * v.zoom)
		ch := float32(level.Cell.H * v.zoom)
		for _, owner := range walls.Owners {
			for _, c := range walls.Walls[owner].Cells() {
				x, y := v.toScreen(level.Anchor.X+float64(c.X)*level.Cell.W, level.Anchor.Y+float64(c.Y)*level.Cell.H)
				vector.FillRect(screen, x+1, y+1, cw-2, ch-2, config.Viewer.CellColor, false)
			}
		}
	})
}

// DrawColliders outlines every wall collider in the space.
func DrawColliders(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(ecs.World, screen)
	if !ok {
		return
	}

	c := colliderColor(CurrentStrategy(ecs.World))
	components.WallCollider.Each(ecs.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if obj == nil || obj.Object == nil {
			return
		}
		x, y := v.toScreen(obj.X, obj.Y)
		w := float32(obj.W * v.zoom)
		h := float32(obj.H * v.zoom)

		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	})
}

func colliderColor(s wallgrid.Strategy) color.RGBA {
	if s.Name() == wallgrid.StrategyNaive {
		return config.Viewer.NaiveColor
	}
	return config.Viewer.PlateColor
}
