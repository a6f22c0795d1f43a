package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/exterminator-wizard/components"
	"github.com/automoto/exterminator-wizard/config"
	"github.com/automoto/exterminator-wizard/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based API
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hudLineHeight = 18

// DrawHUD prints the level name, strategy and collider counts per owner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	lines := HUDLines(ecs.World)
	face := fonts.HUD.Get()
	margin := config.Viewer.HUDMargin
	for i, line := range lines {
		text.Draw(screen, line, face, margin, margin+hudLineHeight*(i+1), config.Viewer.HUDTextColor)
	}
}

// HUDLines builds the HUD text for the loaded level.
func HUDLines(w donburi.World) []string {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return []string{"no level loaded"}
	}
	level := components.Level.Get(levelEntry)
	walls := components.LevelWalls.Get(levelEntry)

	name := level.Name
	if settingsEntry, ok := components.Settings.First(w); ok {
		if n := len(components.LevelList.Get(settingsEntry).Names); n > 0 {
			name = fmt.Sprintf("%s (%d/%d)", level.Name, level.Index+1, n)
		}
	}

	lines := []string{
		fmt.Sprintf("%s  [%s]  Tab: strategy  N/P: level  F1: cells",
			name, CurrentStrategy(w).Name()),
	}
	for _, owner := range walls.Owners {
		stats, ok := walls.Stats[owner]
		if !ok {
			lines = append(lines, fmt.Sprintf("%s: pending", owner))
			continue
		}
		layer := owner[strings.LastIndex(owner, "/")+1:]
		lines = append(lines, fmt.Sprintf("%s: %d cells -> %d colliders (%.0f%%)",
			layer, stats.Cells, stats.Colliders, stats.Ratio()*100))
	}
	return lines
}
