package scenes

import (
	"log"
	"sync"

	"github.com/automoto/exterminator-wizard/assets"
	cfg "github.com/automoto/exterminator-wizard/config"
	"github.com/automoto/exterminator-wizard/components"
	"github.com/automoto/exterminator-wizard/systems"
	factory2 "github.com/automoto/exterminator-wizard/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WallScene shows one level's wall cells and the colliders built from them.
type WallScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewWallScene() *WallScene {
	return &WallScene{}
}

func (ws *WallScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WallScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Viewer.BackgroundColor)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WallScene) configure() {
	levels, names, err := assets.LoadLevels()
	if err != nil {
		log.Fatalf("[level] %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Level events first so colliders exist before anything reads them
	ecs.AddSystem(systems.UpdateLevelEvents)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateCamera)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawCells)
	ecs.AddRenderer(cfg.Default, systems.DrawColliders)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ws.ecs = ecs

	systems.RegisterLevelHandlers(ws.ecs)
	systems.RegisterCameraHandlers(ws.ecs)

	// One space large enough for the biggest level
	maxW, maxH := 0, 0
	for _, data := range levels {
		cell := data.CellSize(cfg.Colliders.CellWidth, cfg.Colliders.CellHeight)
		maxW = max(maxW, int(float64(data.Width)*cell.W))
		maxH = max(maxH, int(float64(data.Height)*cell.H))
	}
	factory2.CreateSpace(ws.ecs, maxW, maxH, cfg.Colliders.SpaceCellSize, cfg.Colliders.SpaceCellSize)
	factory2.CreateCamera(ws.ecs)

	settingsEntry := factory2.CreateSettings(ws.ecs)
	components.LevelList.SetValue(settingsEntry, components.LevelListData{
		Names:  names,
		Levels: levels,
	})

	saved, err := systems.LoadSettings()
	if err == nil && saved != nil {
		systems.ApplySavedSettings(ws.ecs.World, saved)
	}

	index := components.Settings.Get(settingsEntry).LevelIndex
	systems.LoadLevel(ws.ecs, levels[names[index]], index)
}
