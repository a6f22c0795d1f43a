package assets

import (
	"testing"

	"github.com/automoto/exterminator-wizard/shared/wallgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevels(t *testing.T) {
	levels, names, err := LoadLevels()
	require.NoError(t, err)
	assert.Equal(t, []string{"attic", "cellar"}, names)

	for _, name := range names {
		data := levels[name]
		require.NotEmpty(t, data.Owners, name)
		for _, owner := range data.Owners {
			naive := wallgrid.Naive{}.Build(owner.Walls)
			plate := wallgrid.PlateMerge{}.Build(owner.Walls)
			assert.Len(t, naive, owner.Walls.Len(), owner.Key)
			assert.LessOrEqual(t, len(plate), len(naive), owner.Key)
		}
	}

	cellar := levels["cellar"]
	require.Len(t, cellar.Owners, 2)
	assert.Equal(t, "cellar/pits", cellar.Owners[1].Key)
	// the door tile is passable
	assert.False(t, cellar.Owners[0].Walls.Contains(wallgrid.GridCoord{X: 7, Y: 3}))
	assert.Equal(t, 6, cellar.Owners[1].Walls.Len())
	assert.Len(t, wallgrid.PlateMerge{}.Build(cellar.Owners[1].Walls), 1)
}
