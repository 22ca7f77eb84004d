package cartridge

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildINES(prgBanks, chrBanks int, flags6, flags7 uint8, prg, chr []uint8) []byte {
	header := []byte{'N', 'E', 'S', 0x1a, byte(prgBanks), byte(chrBanks), flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
	buf := bytes.NewBuffer(header)
	if prg == nil {
		prg = make([]uint8, prgBanks*prgBankSize)
	}
	if chr == nil {
		chr = make([]uint8, chrBanks*chrBankSize)
	}
	buf.Write(prg)
	buf.Write(chr)
	return buf.Bytes()
}

func TestFromImage_ValidNROM(t *testing.T) {
	prg := make([]uint8, prgBankSize)
	prg[0] = 0xA9
	image := buildINES(1, 1, 0, 0, prg, nil)

	cart, err := FromImage(bytes.NewReader(image))
	require.NoError(t, err)
	assert.Equal(t, MirrorHorizontal, cart.MirrorMode())
	assert.Equal(t, uint8(0xA9), cart.ReadPRG(0x8000))
	// 16KB ROM mirrors into the upper window too.
	assert.Equal(t, uint8(0xA9), cart.ReadPRG(0xC000))
}

func TestFromImage_VerticalMirroringFlag(t *testing.T) {
	image := buildINES(1, 1, 0x01, 0, nil, nil)
	cart, err := FromImage(bytes.NewReader(image))
	require.NoError(t, err)
	assert.Equal(t, MirrorVertical, cart.MirrorMode())
}

func TestFromImage_BatteryFlag(t *testing.T) {
	image := buildINES(1, 1, 0x02, 0, nil, nil)
	cart, err := FromImage(bytes.NewReader(image))
	require.NoError(t, err)
	assert.True(t, cart.HasBattery())
}

func TestFromImage_TrainerSkipped(t *testing.T) {
	prg := make([]uint8, prgBankSize)
	prg[0] = 0x42
	header := []byte{'N', 'E', 'S', 0x1a, 1, 1, 0x06, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	buf := bytes.NewBuffer(header)
	trainer := make([]uint8, trainerSize)
	for i := range trainer {
		trainer[i] = 0xEE
	}
	buf.Write(trainer)
	buf.Write(prg)
	buf.Write(make([]uint8, chrBankSize))

	cart, err := FromImage(buf)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), cart.ReadPRG(0x8000))
}

func TestFromImage_BadMagic(t *testing.T) {
	image := []byte("NOTANES\x1a" + string(make([]byte, 8)))
	_, err := FromImage(bytes.NewReader(image))
	require.Error(t, err)
	var ffErr *FileFormatError
	assert.ErrorAs(t, err, &ffErr)
}

func TestFromImage_ZeroPRGSize(t *testing.T) {
	image := buildINES(0, 0, 0, 0, []uint8{}, []uint8{})
	_, err := FromImage(bytes.NewReader(image))
	require.Error(t, err)
	var ffErr *FileFormatError
	assert.ErrorAs(t, err, &ffErr)
}

func TestFromImage_ShortFile(t *testing.T) {
	_, err := FromImage(bytes.NewReader([]byte{'N', 'E', 'S'}))
	require.Error(t, err)
}

func TestFromImage_CHRRAMWhenZeroBanks(t *testing.T) {
	image := buildINES(1, 0, 0, 0, nil, []uint8{})
	cart, err := FromImage(bytes.NewReader(image))
	require.NoError(t, err)
	cart.WriteCHR(0x0010, 0x77)
	assert.Equal(t, uint8(0x77), cart.ReadCHR(0x0010))
}

func TestFromProgram_DuplicatesIntoBothWindows(t *testing.T) {
	cart := FromProgram([]uint8{0x4C, 0x00, 0x80})
	assert.Equal(t, uint8(0x4C), cart.ReadPRG(0x8000))
	assert.Equal(t, uint8(0x4C), cart.ReadPRG(0xC000))
}

func TestMapper000_SRAMReadWrite(t *testing.T) {
	cart := FromProgram(nil)
	cart.WritePRG(0x6000, 0x99)
	assert.Equal(t, uint8(0x99), cart.ReadPRG(0x6000))
	cart.WritePRG(0x8000, 0xFF) // writes to ROM area are ignored
	assert.Equal(t, uint8(0x00), cart.ReadPRG(0x8000))
}

func TestMapper000_32KBROMDirectMapped(t *testing.T) {
	prg := make([]uint8, 2*prgBankSize)
	prg[0] = 0x11
	prg[prgBankSize] = 0x22
	image := buildINES(2, 1, 0, 0, prg, nil)
	cart, err := FromImage(bytes.NewReader(image))
	require.NoError(t, err)
	assert.Equal(t, uint8(0x11), cart.ReadPRG(0x8000))
	assert.Equal(t, uint8(0x22), cart.ReadPRG(0xC000))
}
