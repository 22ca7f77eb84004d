package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_SaveAndLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gones.json")

	c := NewConfig()
	c.Window.Scale = 3
	c.Video.Brightness = 1.2
	require.NoError(t, c.SaveToFile(path))

	loaded := NewConfig()
	require.NoError(t, loaded.LoadFromFile(path))
	assert.Equal(t, 3, loaded.Window.Scale)
	assert.Equal(t, float32(1.2), loaded.Video.Brightness)
	assert.True(t, loaded.IsLoaded())
}

func TestConfig_LoadFromMissingFileWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing.json")

	c := NewConfig()
	require.NoError(t, c.LoadFromFile(path))
	assert.FileExists(t, path)
}

func TestConfig_ValidateClampsOutOfRangeValues(t *testing.T) {
	c := NewConfig()
	c.Video.Brightness = 10.0
	c.Video.Saturation = -1.0
	c.Audio.Channels = 7
	require.NoError(t, c.validate())
	assert.Equal(t, float32(1.0), c.Video.Brightness)
	assert.Equal(t, float32(1.0), c.Video.Saturation)
	assert.Equal(t, 2, c.Audio.Channels)
}

func TestConfig_GetWindowResolutionScalesNESResolution(t *testing.T) {
	c := NewConfig()
	c.Window.Scale = 2
	w, h := c.GetWindowResolution()
	assert.Equal(t, 512, w)
	assert.Equal(t, 480, h)
}

func TestConfig_CloneIsIndependentCopy(t *testing.T) {
	c := NewConfig()
	clone := c.Clone()
	clone.Window.Scale = 99
	assert.NotEqual(t, c.Window.Scale, clone.Window.Scale)
}
