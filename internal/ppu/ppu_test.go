package ppu

import (
	"testing"

	"github.com/claude/nescore/internal/cartridge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCart struct {
	chr [0x2000]uint8
}

func (c *stubCart) ReadCHR(address uint16) uint8         { return c.chr[address] }
func (c *stubCart) WriteCHR(address uint16, value uint8) { c.chr[address] = value }

func newTestPPU() (*PPU, *VRAM, *stubCart) {
	cart := &stubCart{}
	vram := NewVRAM(cart, cartridge.MirrorHorizontal)
	p := New()
	p.SetVRAM(vram)
	return p, vram, cart
}

func TestPPU_RegisterMirroringIsHandledByCaller(t *testing.T) {
	// The bus normalizes address mod 8 before calling; PPU itself just
	// dispatches on the literal 0x2000-range value it receives.
	p, _, _ := newTestPPU()
	p.WriteRegister(0x2000, 0x80)
	assert.Equal(t, uint8(0x80), p.ppuCtrl)
}

func TestPPU_StatusReadClearsLatchAndVBlank(t *testing.T) {
	p, _, _ := newTestPPU()
	p.ppuStatus = 0x80
	p.w = true
	status := p.ReadRegister(0x2002)
	assert.Equal(t, uint8(0x80), status)
	assert.False(t, p.w)
	assert.Equal(t, uint8(0), p.ppuStatus&0x80)
}

func TestPPU_ScrollLatchSharedBetween2005And2006(t *testing.T) {
	p, _, _ := newTestPPU()
	p.WriteRegister(0x2005, 0x7D) // first write toggles latch
	assert.True(t, p.w)
	p.WriteRegister(0x2006, 0x20) // second write (shared latch) is taken as the VRAM addr low byte
	assert.False(t, p.w)
}

func TestPPU_VRAMAddrAutoIncrement(t *testing.T) {
	p, vram, _ := newTestPPU()
	vram.Write(0x2005, 0xAB)
	p.WriteRegister(0x2006, 0x20)
	p.WriteRegister(0x2006, 0x05)
	assert.Equal(t, uint16(0x2005), p.v)
	_ = p.ReadRegister(0x2007) // buffered read returns stale buffer, advances v
	assert.Equal(t, uint16(0x2006), p.v)
}

func TestPPU_OAMReadWrite(t *testing.T) {
	p, _, _ := newTestPPU()
	p.WriteRegister(0x2003, 0x10)
	p.WriteRegister(0x2004, 0x99)
	assert.Equal(t, uint8(0x11), p.oamAddr) // auto-increments
	p.WriteRegister(0x2003, 0x10)
	assert.Equal(t, uint8(0x99), p.ReadRegister(0x2004))
}

func TestPPU_PhaseAdvancesThroughPreRenderIntoVisible(t *testing.T) {
	p, _, _ := newTestPPU()
	p.Advance(cyclesPerScanline)
	phase := p.CurrentPhase()
	assert.Equal(t, PhaseVisibleLines, phase.Kind)
	assert.Equal(t, 0, phase.Line)
}

func TestPPU_VBlankSetsStatusAndFiresNMI(t *testing.T) {
	p, _, _ := newTestPPU()
	p.ppuCtrl = 0x80 // enable NMI on VBlank
	fired := false
	p.SetNMICallback(func() { fired = true })

	// Advance through pre-render + all 240 visible lines to reach vblank.
	p.Advance(cyclesPerScanline * (1 + visibleLines))
	p.Advance(cyclesPerScanline) // post-render
	p.Advance(2)                 // into vblank, cycle 1 sets VBL + NMI

	assert.True(t, p.IsVBlank())
	assert.True(t, fired)
}

func TestPPU_FullFrameAdvancesFrameCount(t *testing.T) {
	p, _, _ := newTestPPU()
	totalCycles := cyclesPerScanline * (1 + visibleLines + 1 + vblankLines)
	p.Advance(totalCycles)
	assert.Equal(t, uint64(1), p.FrameCount())
}

func TestPPU_BackgroundPixelFromNametable(t *testing.T) {
	p, vram, cart := newTestPPU()
	// Tile 1 is solid color index 3 (both pattern bits set).
	cart.chr[16] = 0xFF // low plane row 0
	cart.chr[24] = 0xFF // high plane row 0
	vram.Write(0x2000, 0x01) // nametable entry -> tile 1
	px := p.backgroundPixel(0, 0)
	require.False(t, px.transparent)
	assert.Equal(t, uint8(3), px.colorIndex)
}

func TestPPU_AttributeQuadrantSelectsPalette(t *testing.T) {
	p, vram, cart := newTestPPU()
	cart.chr[16] = 0xFF
	cart.chr[24] = 0xFF
	vram.Write(0x2000, 0x01)
	vram.Write(0x23C0, 0b11_10_01_00) // quadrant 0 -> palette 0 for tile(0,0)
	px := p.backgroundPixel(0, 0)
	assert.Equal(t, uint8(0), px.paletteIdx)
}

func TestPPU_AttributeQuadrantSelectsPaletteForOddTileRow(t *testing.T) {
	// tile(0,1) shares the same attribute byte as tile(0,0) (both fall in
	// the first 4x4 attribute block) but selects a different quadrant:
	// shift = ((0%4)/2) | ((1%2)<<1) = 2, so palette = (attr>>1)&3 = 2.
	p, vram, cart := newTestPPU()
	cart.chr[16] = 0xFF // tile 1, row 0 pattern bits
	cart.chr[24] = 0xFF
	vram.Write(0x2020, 0x01) // nametable entry for tile(0,1) -> tile 1
	vram.Write(0x23C0, 0b11_10_01_00)
	px := p.backgroundPixel(0, 8) // worldY=8 -> tileY=1, inTileY=0
	assert.Equal(t, uint8(2), px.paletteIdx)
}

func TestAttributeShift_DistinguishesOddAndEvenTileRows(t *testing.T) {
	assert.Equal(t, uint8(0), attributeShift(0, 0))
	assert.Equal(t, uint8(2), attributeShift(0, 1))
	assert.Equal(t, uint8(0), attributeShift(0, 2))
	assert.Equal(t, uint8(2), attributeShift(0, 3))
}

func TestAttributePaletteIndex_ReadsBitsForEachQuadrant(t *testing.T) {
	const attr = 0b11_10_01_00
	assert.Equal(t, uint8(0), attributePaletteIndex(attr, 0, 0)) // shift 0
	assert.Equal(t, uint8(2), attributePaletteIndex(attr, 0, 1)) // shift 2
	assert.Equal(t, uint8(1), attributePaletteIndex(attr, 2, 0)) // shift 1
	assert.Equal(t, uint8(0), attributePaletteIndex(attr, 2, 1)) // shift 3
}

func TestPPU_SpriteEvaluationRespectsEightSpriteLimit(t *testing.T) {
	p, _, _ := newTestPPU()
	for i := 0; i < 9; i++ {
		base := i * 4
		p.oam[base] = 0 // Y=0, visible starting at line 1
	}
	p.phase.Line = 1
	p.evaluateSprites()
	assert.Equal(t, 8, p.spriteCount)
	assert.NotEqual(t, uint8(0), p.ppuStatus&0x20)
}
