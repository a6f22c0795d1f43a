package systems

import (
	"testing"

	"github.com/automoto/exterminator-wizard/components"
	"github.com/automoto/exterminator-wizard/shared/leveldata"
	"github.com/automoto/exterminator-wizard/shared/wallgrid"
	"github.com/automoto/exterminator-wizard/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func withLevelList(t *testing.T, e *ecs.ECS, names ...string) {
	t.Helper()
	entry, ok := components.Settings.First(e.World)
	require.True(t, ok)
	list := components.LevelList.Get(entry)
	list.Levels = make(map[string]*leveldata.WallData)
	list.Names = names
	for _, name := range names {
		list.Levels[name] = roomLevel(name)
	}
}

func TestCycleLevel_Wraps(t *testing.T) {
	e := newTestECS(t)
	withLevelList(t, e, "a", "b", "c")

	require.NoError(t, CycleLevel(e, -1))
	UpdateLevelEvents(e)
	level, ok := CurrentLevel(e.World)
	require.True(t, ok)
	assert.Equal(t, "c", components.Level.Get(level).Name)
	assert.Equal(t, 2, components.Level.Get(level).Index)
	assert.Equal(t, 4, CountColliders(e.World, "c/walls"))
	assert.Contains(t, HUDLines(e.World)[0], "c (3/3)")

	require.NoError(t, CycleLevel(e, 1))
	UpdateLevelEvents(e)
	level, _ = CurrentLevel(e.World)
	assert.Equal(t, "a", components.Level.Get(level).Name)
	assert.Equal(t, 0, CountColliders(e.World, "c/walls"))
	assert.Equal(t, 4, CountColliders(e.World, "a/walls"))
}

func TestCycleLevel_NoLevels(t *testing.T) {
	e := newTestECS(t)
	assert.Error(t, CycleLevel(e, 1))
}

func TestToggleCells(t *testing.T) {
	e := newTestECS(t)
	entry, _ := components.Settings.First(e.World)
	before := components.Settings.Get(entry).ShowCells
	ToggleCells(e)
	assert.Equal(t, !before, components.Settings.Get(entry).ShowCells)
}

func TestHUDLines(t *testing.T) {
	e := newTestECS(t)
	assert.Equal(t, []string{"no level loaded"}, HUDLines(e.World))

	LoadLevel(e, roomLevel("room"), 0)
	assert.Equal(t, "room/walls: pending", HUDLines(e.World)[1])

	UpdateLevelEvents(e)
	lines := HUDLines(e.World)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "room")
	assert.Contains(t, lines[0], "[plate]")
	assert.Equal(t, "walls: 16 cells -> 4 colliders (25%)", lines[1])
	assert.Equal(t, "pits: 2 cells -> 1 colliders (50%)", lines[2])
}

func TestFocusCamera_PansToTarget(t *testing.T) {
	e := newTestECS(t)
	cameraEntry := factory.CreateCamera(e)
	camera := components.Camera.Get(cameraEntry)

	target := math.Vec2{X: 48, Y: 32}
	FocusCamera(e.World, target)
	require.NotNil(t, camera.PanX)

	for i := 0; i < 120 && camera.PanX != nil; i++ {
		stepCamera(camera, 1.0/60)
	}
	assert.Nil(t, camera.PanX)
	assert.InDelta(t, target.X, camera.Position.X, 0.001)
	assert.InDelta(t, target.Y, camera.Position.Y, 0.001)
}

func TestCameraFollowsBuiltLevel(t *testing.T) {
	e := newTestECS(t)
	cameraEntry := factory.CreateCamera(e)
	RegisterCameraHandlers(e)

	LoadLevel(e, roomLevel("room"), 0)
	// CollidersBuilt is published while LevelSpawned is handled, so allow a
	// second drain for it.
	UpdateLevelEvents(e)
	UpdateLevelEvents(e)

	camera := components.Camera.Get(cameraEntry)
	require.NotNil(t, camera.PanX)
	for i := 0; i < 120 && camera.PanX != nil; i++ {
		stepCamera(camera, 1.0/60)
	}
	assert.InDelta(t, 48.0, camera.Position.X, 0.001)
	assert.InDelta(t, 32.0, camera.Position.Y, 0.001)
}

func TestSavedSettingsRoundTrip(t *testing.T) {
	e := newTestECS(t)
	withLevelList(t, e, "a", "b")
	entry, _ := components.Settings.First(e.World)

	ApplySavedSettings(e.World, &SavedSettings{Strategy: "naive", ShowCells: false, LevelIndex: 1})
	settings := components.Settings.Get(entry)
	assert.Equal(t, wallgrid.StrategyNaive, settings.Strategy.Name())
	assert.False(t, settings.ShowCells)
	assert.Equal(t, 1, settings.LevelIndex)

	assert.Equal(t, &SavedSettings{Strategy: "naive", ShowCells: false, LevelIndex: 1}, SnapshotSettings(settings))

	// Stale values are ignored.
	ApplySavedSettings(e.World, &SavedSettings{Strategy: "quadtree", ShowCells: true, LevelIndex: 9})
	assert.Equal(t, wallgrid.StrategyNaive, settings.Strategy.Name())
	assert.Equal(t, 1, settings.LevelIndex)
	assert.True(t, settings.ShowCells)

	ApplySavedSettings(e.World, nil)
}

func TestSaveCurrentSettings_WithoutStorage(t *testing.T) {
	e := newTestECS(t)
	assert.NoError(t, SaveCurrentSettings(e.World))

	empty := ecs.NewECS(donburi.NewWorld())
	assert.NoError(t, SaveCurrentSettings(empty.World))
}
