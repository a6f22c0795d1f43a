package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreGlobals(t *testing.T) {
	colliders, debug := Colliders, Debug
	t.Cleanup(func() {
		Colliders = colliders
		Debug = debug
	})
}

func TestDefaultsAreValid(t *testing.T) {
	assert.NoError(t, Colliders.Validate())
}

func TestApplyOverrides(t *testing.T) {
	restoreGlobals(t)

	err := ApplyOverrides([]byte(`
colliders:
  cellWidth: 32
  strategy: naive
showCells: false
`))
	require.NoError(t, err)

	assert.Equal(t, 32.0, Colliders.CellWidth)
	assert.Equal(t, 0.0, Colliders.CellHeight)
	assert.Equal(t, "naive", Colliders.Strategy)
	assert.Equal(t, "walls", Colliders.WallLayer)
	assert.False(t, Debug.ShowCells)
}

func TestApplyOverrides_InvalidLeavesDefaults(t *testing.T) {
	restoreGlobals(t)

	tests := []struct {
		name string
		yaml string
	}{
		{name: "negative cell", yaml: "colliders:\n  cellHeight: -4\n"},
		{name: "unknown strategy", yaml: "colliders:\n  strategy: quadtree\n"},
		{name: "malformed", yaml: "colliders: [1, 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := Colliders
			assert.Error(t, ApplyOverrides([]byte(tt.yaml)))
			assert.Equal(t, before, Colliders)
		})
	}
}

func TestLoadOverrides_MissingFile(t *testing.T) {
	restoreGlobals(t)
	assert.NoError(t, LoadOverrides(filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestLoadOverrides_File(t *testing.T) {
	restoreGlobals(t)

	path := filepath.Join(t.TempDir(), "colliders.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colliders:\n  wallLayer: solid\n"), 0o644))
	require.NoError(t, LoadOverrides(path))
	assert.Equal(t, "solid", Colliders.WallLayer)
}
