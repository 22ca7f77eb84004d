package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMemory struct {
	ram [0x10000]uint8
}

func (m *stubMemory) Read(address uint16) uint8         { return m.ram[address] }
func (m *stubMemory) Write(address uint16, value uint8) { m.ram[address] = value }

func newTestCPU() (*CPU, *stubMemory) {
	mem := &stubMemory{}
	c := New(mem)
	return c, mem
}

func TestCPU_ResetLoadsVectorAndPowerUpState(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0xFFFC] = 0x00
	mem.ram[0xFFFD] = 0x80
	c.Reset()
	assert.Equal(t, uint16(0x8000), c.PC)
	assert.Equal(t, uint8(0xFD), c.SP)
	assert.True(t, c.I)
	assert.False(t, c.C)
	assert.False(t, c.Z)
	assert.False(t, c.N)
}

func TestCPU_LDAImmediateSetsZeroFlag(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0x8000] = 0xA9 // LDA #$00
	mem.ram[0x8001] = 0x00
	c.PC = 0x8000
	c.Advance()
	assert.Equal(t, uint8(0), c.A)
	assert.True(t, c.Z)
	assert.False(t, c.N)
}

func TestCPU_LDAImmediateSetsNegativeFlag(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0x8000] = 0xA9
	mem.ram[0x8001] = 0x80
	c.PC = 0x8000
	c.Advance()
	assert.Equal(t, uint8(0x80), c.A)
	assert.True(t, c.N)
	assert.False(t, c.Z)
}

func TestCPU_ADCSetsCarryAndOverflow(t *testing.T) {
	c, mem := newTestCPU()
	c.A = 0x7F // +127
	mem.ram[0x8000] = 0x69 // ADC #$01
	mem.ram[0x8001] = 0x01
	c.PC = 0x8000
	c.Advance()
	assert.Equal(t, uint8(0x80), c.A)
	assert.True(t, c.V) // signed overflow: positive + positive = negative
	assert.False(t, c.C)
}

func TestCPU_SBCBorrowsWhenCarryClear(t *testing.T) {
	c, mem := newTestCPU()
	c.A = 0x00
	c.C = false // carry clear is a borrow-in: one extra is subtracted
	mem.ram[0x8000] = 0xE9 // SBC #$01
	mem.ram[0x8001] = 0x01
	c.PC = 0x8000
	c.Advance()
	assert.Equal(t, uint8(0xFE), c.A)
	assert.False(t, c.C) // result still negative-going: carry stays clear
}

func TestCPU_JSRPushesReturnAddressMinusOneHighByteFirst(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0x8000] = 0x20 // JSR $1234
	mem.ram[0x8001] = 0x34
	mem.ram[0x8002] = 0x12
	c.PC = 0x8000
	c.SP = 0xFF
	c.Advance()
	assert.Equal(t, uint16(0x1234), c.PC)
	assert.Equal(t, uint8(0xFD), c.SP)
	assert.Equal(t, uint8(0x80), mem.ram[0x01FF]) // high byte pushed first
	assert.Equal(t, uint8(0x02), mem.ram[0x01FE]) // low byte of PC+2 (0x8002)
}

func TestCPU_RTSPopsLowByteThenHighByteAndAddsOne(t *testing.T) {
	c, mem := newTestCPU()
	c.SP = 0xFD
	mem.ram[0x01FE] = 0x02 // low byte
	mem.ram[0x01FF] = 0x80 // high byte
	mem.ram[0x8000] = 0x60 // RTS
	c.PC = 0x8000
	c.Advance()
	assert.Equal(t, uint16(0x8003), c.PC)
	assert.Equal(t, uint8(0xFF), c.SP)
}

func TestCPU_JSRThenRTSRoundTrips(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0x8000] = 0x20 // JSR $9000
	mem.ram[0x8001] = 0x00
	mem.ram[0x8002] = 0x90
	mem.ram[0x9000] = 0x60 // RTS
	c.PC = 0x8000
	c.SP = 0xFF
	c.Advance() // JSR
	require.Equal(t, uint16(0x9000), c.PC)
	c.Advance() // RTS
	assert.Equal(t, uint16(0x8003), c.PC)
	assert.Equal(t, uint8(0xFF), c.SP)
}

func TestCPU_BRKAlwaysPushesAndSetsIRegardlessOfCurrentIFlag(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0xFFFE] = 0x00
	mem.ram[0xFFFF] = 0x90
	mem.ram[0x8000] = 0x00 // BRK
	c.PC = 0x8000
	c.SP = 0xFF
	c.I = false
	c.Advance()
	assert.Equal(t, uint16(0x9000), c.PC)
	assert.True(t, c.I)
	// Pushed status has B set, unused set; pushed PC is PC+2 (BRK is a 2-byte op on real hardware).
	pushedStatus := mem.ram[0x01FD]
	assert.NotEqual(t, uint8(0), pushedStatus&bFlagMask)
}

func TestCPU_SetZNReflectsTheValuePassedIn(t *testing.T) {
	c, _ := newTestCPU()
	c.setZN(0x00)
	assert.True(t, c.Z)
	assert.False(t, c.N)
	c.setZN(0xFF)
	assert.False(t, c.Z)
	assert.True(t, c.N)
}

func TestCPU_NMIIsEdgeTriggeredOnFallingEdge(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0xFFFA] = 0x00
	mem.ram[0xFFFB] = 0xA0
	mem.ram[0x8000] = 0xEA // NOP
	mem.ram[0x8001] = 0xEA // NOP
	c.PC = 0x8000
	c.SP = 0xFF
	c.SetNMI(true)
	c.Advance() // NOP; no pending NMI yet, line still high
	assert.Equal(t, uint16(0x8001), c.PC)
	c.SetNMI(false) // falling edge
	c.Advance()     // executes the NOP at 0x8001, then services the now-pending NMI
	assert.Equal(t, uint16(0xA000), c.PC)
}

func TestCPU_IRQIsGatedByInterruptDisableFlag(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0xFFFE] = 0x00
	mem.ram[0xFFFF] = 0xB0
	mem.ram[0x8000] = 0xEA
	mem.ram[0x8001] = 0xEA
	c.PC = 0x8000
	c.SP = 0xFF
	c.I = true
	c.SetIRQ(true)
	c.Advance()
	assert.NotEqual(t, uint16(0xB000), c.PC) // masked while I is set

	c.I = false
	c.Advance()
	assert.Equal(t, uint16(0xB000), c.PC)
}

func TestCPU_AbsoluteXPageCrossingAddsCycle(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0x8000] = 0xBD // LDA $80FF,X
	mem.ram[0x8001] = 0xFF
	mem.ram[0x8002] = 0x80
	c.X = 0x01 // crosses from page 0x80 to 0x81
	c.PC = 0x8000
	cycles := c.Advance()
	assert.Equal(t, uint64(5), cycles)
}

func TestCPU_IndirectJMPReproducesPageBoundaryBug(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0x8000] = 0x6C // JMP ($30FF)
	mem.ram[0x8001] = 0xFF
	mem.ram[0x8002] = 0x30
	mem.ram[0x30FF] = 0x40
	mem.ram[0x3000] = 0x12 // high byte wraps to start of the same page, not 0x3100
	mem.ram[0x3100] = 0x99
	c.PC = 0x8000
	c.Advance()
	assert.Equal(t, uint16(0x1240), c.PC)
}

func TestCPU_LAXLoadsBothAccumulatorAndX(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0x8000] = 0xA7 // LAX $10 (zero page)
	mem.ram[0x8001] = 0x10
	mem.ram[0x0010] = 0x42
	c.PC = 0x8000
	c.Advance()
	assert.Equal(t, uint8(0x42), c.A)
	assert.Equal(t, uint8(0x42), c.X)
}

func TestCPU_ExecuteRunsFixedStepCount(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0x8000] = 0xEA // NOP
	mem.ram[0x8001] = 0xEA
	mem.ram[0x8002] = 0xEA
	c.PC = 0x8000
	c.Execute(3)
	assert.Equal(t, uint16(0x8003), c.PC)
}

func TestCPU_ExecuteTraceFormatsLikeReferenceLog(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0x8000] = 0xA9 // LDA #$05
	mem.ram[0x8001] = 0x05
	c.PC = 0x8000
	c.SP = 0xFD
	var sink strings.Builder
	c.ExecuteTrace(1, &sink)
	line := sink.String()
	require.True(t, strings.HasPrefix(line, "8000 OP:(A9)LDA"))
	assert.Contains(t, line, "A:00")
	assert.Contains(t, line, "SP:FD")
	assert.Contains(t, line, "CYC:0")
}
