package leveldata

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/automoto/exterminator-wizard/shared/wallgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWallData(t *testing.T) {
	data, err := LoadWallData(os.DirFS("testdata"), "levels/room.tmx", "walls")
	require.NoError(t, err)

	assert.Equal(t, "room", data.Name)
	assert.Equal(t, 6, data.Width)
	assert.Equal(t, 4, data.Height)
	assert.Equal(t, 16, data.TileWidth)
	assert.Equal(t, 16, data.TileHeight)

	require.Len(t, data.Owners, 2)
	assert.Equal(t, "room/walls", data.Owners[0].Key)
	assert.Equal(t, "room/pits", data.Owners[1].Key)

	walls := data.Owners[0].Walls
	assert.Equal(t, 16, walls.Len())
	assert.True(t, walls.Contains(wallgrid.GridCoord{X: 0, Y: 0}))
	assert.True(t, walls.Contains(wallgrid.GridCoord{X: 5, Y: 2}))
	assert.False(t, walls.Contains(wallgrid.GridCoord{X: 1, Y: 1}))
	// passable tile on the wall layer
	assert.False(t, walls.Contains(wallgrid.GridCoord{X: 4, Y: 1}))

	pits := data.Owners[1].Walls
	assert.Equal(t, []wallgrid.GridCoord{{X: 2, Y: 2}, {X: 3, Y: 2}}, pits.Cells())
	assert.Equal(t, 18, data.TotalCells())
}

func TestWallData_CellSize(t *testing.T) {
	data := &WallData{TileWidth: 8, TileHeight: 12}
	assert.Equal(t, wallgrid.CellSize{W: 8, H: 12}, data.CellSize(0, 0))
	assert.Equal(t, wallgrid.CellSize{W: 8, H: 12}, data.CellSize(16, 0))
	assert.Equal(t, wallgrid.CellSize{W: 16, H: 16}, data.CellSize(16, 16))
}

func TestLoadWallData_PlateMergeOnRoom(t *testing.T) {
	data, err := LoadWallData(os.DirFS("testdata"), "levels/room.tmx", "walls")
	require.NoError(t, err)

	rects := wallgrid.PlateMerge{}.Build(data.Owners[0].Walls)
	assert.Len(t, rects, 4)
}

func TestLoadWallData_MissingFile(t *testing.T) {
	_, err := LoadWallData(os.DirFS("testdata"), "levels/nope.tmx", "walls")
	assert.Error(t, err)
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(os.DirFS("testdata"), "levels", "walls")
	require.NoError(t, err)

	assert.Equal(t, []string{"empty", "room"}, names)
	require.Contains(t, levels, "empty")
	require.Len(t, levels["empty"].Owners, 1)
	assert.Equal(t, 0, levels["empty"].Owners[0].Walls.Len())
}

func TestLoadAllLevels_NoLevels(t *testing.T) {
	_, _, err := LoadAllLevels(fstest.MapFS{}, "levels", "walls")
	assert.Error(t, err)
}
