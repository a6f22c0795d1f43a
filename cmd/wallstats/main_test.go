package main

import (
	"os"
	"testing"

	"github.com/automoto/exterminator-wizard/shared/leveldata"
	"github.com/automoto/exterminator-wizard/shared/wallgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectStats(t *testing.T) {
	stats, err := collectStats(os.DirFS("../../shared/leveldata/testdata"), "levels", "walls")
	require.NoError(t, err)

	assert.Equal(t, []ownerStats{
		{Owner: "empty/walls", Tile: "16x16", Cells: 0, Naive: 0, Plate: 0},
		{Owner: "room/walls", Tile: "16x16", Cells: 16, Naive: 16, Plate: 4},
		{Owner: "room/pits", Tile: "16x16", Cells: 2, Naive: 2, Plate: 1},
	}, stats)
}

func TestCollectStats_MissingDir(t *testing.T) {
	_, err := collectStats(os.DirFS(t.TempDir()), "levels", "walls")
	assert.Error(t, err)
}

func TestCountOwner_InvalidBox(t *testing.T) {
	walls := wallgrid.NewOccupancySet(0, 3)
	walls.Add(wallgrid.GridCoord{X: 1, Y: 1})
	owner := leveldata.WallOwner{Key: "broken/walls", Layer: "walls", Walls: walls}

	naive, plate := countOwner(owner, wallgrid.UniformCell(16))
	assert.Equal(t, 0, naive)
	assert.Equal(t, 0, plate)
}
