package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeROM(t *testing.T) string {
	t.Helper()
	header := []byte{'N', 'E', 'S', 0x1A, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]byte, 0x4000)
	prg[0] = 0xA9 // LDA #$42
	prg[1] = 0x42
	prg[2] = 0x4C // JMP $8000
	prg[3] = 0x00
	prg[4] = 0x80
	prg[5] = 0x02 // unmapped opcode, exercises the INVALID path
	prg[0x3FFC] = 0x00
	prg[0x3FFD] = 0x80
	rom := append(header, prg...)
	path := filepath.Join(t.TempDir(), "test.nes")
	require.NoError(t, os.WriteFile(path, rom, 0644))
	return path
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = orig
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestRunDisasm_DumpsRequestedRangeWithMnemonics(t *testing.T) {
	romPath := writeROM(t)
	numInstructions = 5
	offset = 0

	out := captureStdout(t, func() {
		cmd := newRootCmd()
		cmd.SetArgs([]string{romPath, "-n", "5"})
		require.NoError(t, cmd.Execute())
	})

	assert.Contains(t, out, "0x8000:(0xa9)LDA")
	assert.Contains(t, out, "0x8002:(0x4c)JMP")
}

func TestRunDisasm_UnknownOpcodeReportsInvalid(t *testing.T) {
	romPath := writeROM(t)
	numInstructions = 1
	offset = 5

	out := captureStdout(t, func() {
		cmd := newRootCmd()
		cmd.SetArgs([]string{romPath, "-n", "1", "-o", "5"})
		require.NoError(t, cmd.Execute())
	})

	assert.Contains(t, out, "0x8005:(0x02)INVALID")
}

func TestRunDisasm_MissingFileReturnsError(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.nes")})
	assert.Error(t, cmd.Execute())
}
