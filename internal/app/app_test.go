package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestROM(t *testing.T, dir string) string {
	t.Helper()
	header := []byte{'N', 'E', 'S', 0x1A, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]byte, 0x4000)
	prg[0x3FFC] = 0x00
	prg[0x3FFD] = 0x80
	rom := append(header, prg...)
	path := filepath.Join(dir, "test.nes")
	require.NoError(t, os.WriteFile(path, rom, 0644))
	return path
}

func TestApplication_NewApplicationHeadlessInitializes(t *testing.T) {
	app, err := NewApplicationWithMode("", true)
	require.NoError(t, err)
	assert.True(t, app.initialized)
	assert.Nil(t, app.window)
}

func TestApplication_LoadROMStartsEmulator(t *testing.T) {
	app, err := NewApplicationWithMode("", true)
	require.NoError(t, err)

	romPath := writeTestROM(t, t.TempDir())
	require.NoError(t, app.LoadROM(romPath))
	assert.Equal(t, romPath, app.GetROMPath())
	assert.True(t, app.emulator.IsRunning())
}

func TestApplication_PauseAndResumeToggleState(t *testing.T) {
	app, err := NewApplicationWithMode("", true)
	require.NoError(t, err)

	app.Pause()
	assert.True(t, app.IsPaused())
	app.Resume()
	assert.False(t, app.IsPaused())
	app.TogglePause()
	assert.True(t, app.IsPaused())
}

func TestApplication_StopEndsRunLoop(t *testing.T) {
	app, err := NewApplicationWithMode("", true)
	require.NoError(t, err)
	app.running = true
	app.Stop()
	assert.False(t, app.IsRunning())
}
