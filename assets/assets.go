package assets

import (
	"embed"

	"github.com/automoto/exterminator-wizard/config"
	"github.com/automoto/exterminator-wizard/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// LoadLevels parses every embedded level and returns them keyed by name,
// plus the names in load order.
func LoadLevels() (map[string]*leveldata.WallData, []string, error) {
	return leveldata.LoadAllLevels(assetFS, config.Colliders.LevelsDir, config.Colliders.WallLayer)
}
