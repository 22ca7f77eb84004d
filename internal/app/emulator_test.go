package app

import (
	"testing"

	"github.com/claude/nescore/internal/cartridge"
	"github.com/claude/nescore/internal/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loopingCartridge() *cartridge.Cartridge {
	// JMP $8000, spins forever so Update() always has cycles to run.
	prg := make([]uint8, 0x4000)
	prg[0] = 0x4C
	prg[1] = 0x00
	prg[2] = 0x80
	prg[0x3FFC] = 0x00
	prg[0x3FFD] = 0x80
	return cartridge.FromProgram(prg)
}

func TestEmulator_UpdateAdvancesOneFrameWhenRunning(t *testing.T) {
	c := console.New()
	c.LoadCartridge(loopingCartridge())

	e := NewEmulator(c, NewConfig())
	e.Start()

	require.NoError(t, e.Update())
	assert.Equal(t, uint64(1), e.GetFrameCount())
	assert.Greater(t, e.GetCycleCount(), uint64(0))
}

func TestEmulator_UpdateDoesNothingWhenStopped(t *testing.T) {
	c := console.New()
	c.LoadCartridge(loopingCartridge())

	e := NewEmulator(c, NewConfig())
	require.NoError(t, e.Update())
	assert.Equal(t, uint64(0), e.GetFrameCount())
}

func TestEmulator_SetTargetFrameRateUpdatesTargetFrameTime(t *testing.T) {
	e := NewEmulator(console.New(), NewConfig())
	e.SetTargetFrameRate(30)
	assert.InDelta(t, float64(33333333), float64(e.GetTargetFrameTime()), 1000)
}
