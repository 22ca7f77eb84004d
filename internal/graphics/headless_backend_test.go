package graphics

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadlessBackend_CreateWindowRequiresInitialize(t *testing.T) {
	b := NewHeadlessBackend()
	_, err := b.CreateWindow("test", 256, 240)
	assert.Error(t, err)

	require.NoError(t, b.Initialize(Config{Headless: true}))
	w, err := b.CreateWindow("test", 256, 240)
	require.NoError(t, err)
	assert.False(t, w.ShouldClose())
}

func TestHeadlessBackend_IsHeadless(t *testing.T) {
	b := NewHeadlessBackend()
	assert.True(t, b.IsHeadless())
}

func TestHeadlessWindow_RenderFrameDumpsPPMAtMilestoneFrames(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(cwd)

	b := NewHeadlessBackend()
	require.NoError(t, b.Initialize(Config{Headless: true}))
	w, err := b.CreateWindow("test", 256, 240)
	require.NoError(t, err)

	var frame [256 * 240 * 3]uint8
	for i := 1; i <= 31; i++ {
		require.NoError(t, w.RenderFrame(&frame))
	}

	_, err = os.Stat("frame_031.ppm")
	assert.NoError(t, err)
}
