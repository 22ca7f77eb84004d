// Package console wires the CPU, PPU, APU, input, and bus together into
// the single driver the rest of the program runs: load a cartridge, then
// repeatedly call Advance (or Execute/ExecuteTrace) to make progress.
package console

import (
	"fmt"
	"io"

	"github.com/claude/nescore/internal/apu"
	"github.com/claude/nescore/internal/bus"
	"github.com/claude/nescore/internal/cartridge"
	"github.com/claude/nescore/internal/cpu"
	"github.com/claude/nescore/internal/input"
	"github.com/claude/nescore/internal/ppu"
)

// Console owns every component and coordinates their relative timing:
// three PPU cycles run for every CPU cycle, and an OAM DMA transfer
// suspends further CPU instructions for the cycles it costs.
type Console struct {
	CPU   *cpu.CPU
	PPU   *ppu.PPU
	APU   *apu.APU
	Bus   *bus.Bus
	Input *input.State

	cart *cartridge.Cartridge

	cpuCycles  uint64
	frameCount uint64
	nmiPending bool
}

// New creates a Console with no cartridge loaded. Call LoadCartridge
// before Advance/Execute/ExecuteTrace.
func New() *Console {
	c := &Console{
		PPU:   ppu.New(),
		APU:   apu.New(),
		Input: input.NewState(),
	}
	c.Bus = bus.New(c.PPU, c.APU, nil)
	c.Bus.SetInput(c.Input)
	c.CPU = cpu.New(c.Bus)
	c.PPU.SetNMICallback(c.onNMI)
	return c
}

// onNMI is called by the PPU the instant VBlank begins (if NMI-on-VBlank
// is enabled in PPUCTRL); it just raises a flag that the next Advance
// hands to the CPU, which services it after that instruction completes.
func (c *Console) onNMI() {
	c.nmiPending = true
}

// LoadCartridge installs cart as the program source, rebuilds the PPU's
// video RAM with the cartridge's mirroring mode, rewires the bus, and
// resets the CPU so PC loads from the reset vector.
func (c *Console) LoadCartridge(cart *cartridge.Cartridge) {
	c.cart = cart
	vram := ppu.NewVRAM(cart, cart.MirrorMode())
	c.PPU.SetVRAM(vram)
	c.Bus = bus.New(c.PPU, c.APU, cart)
	c.Bus.SetInput(c.Input)
	c.CPU = cpu.New(c.Bus)
	c.PPU.SetNMICallback(c.onNMI)
	c.Reset()
}

// Reset restarts the CPU from the reset vector and clears the PPU/APU/
// input state and cycle counters. It does not unload the cartridge.
func (c *Console) Reset() {
	c.CPU.Reset()
	c.PPU.Reset()
	c.APU.Reset()
	c.Input.Reset()
	c.cpuCycles = 0
	c.frameCount = 0
	c.nmiPending = false
}

// Advance runs exactly one CPU instruction, ticks the PPU three cycles
// for every CPU cycle spent, and folds in any OAM DMA stall the
// instruction triggered. Returns the CPU cycles charged.
func (c *Console) Advance() uint64 {
	if c.nmiPending {
		c.CPU.TriggerNMI()
		c.nmiPending = false
	}

	cycles := c.CPU.Advance()
	c.PPU.Advance(int(cycles * 3))

	if stall := uint64(c.Bus.TakeStallCycles()); stall > 0 {
		c.PPU.Advance(int(stall * 3))
		cycles += stall
	}

	c.cpuCycles += cycles
	c.frameCount = c.PPU.FrameCount()
	return cycles
}

// Execute runs the console for a fixed number of CPU instructions,
// returning the total CPU cycles charged.
func (c *Console) Execute(steps int) uint64 {
	var total uint64
	for i := 0; i < steps; i++ {
		total += c.Advance()
	}
	return total
}

// ExecuteTrace runs the console for steps instructions, writing one
// trace line per instruction to sink before it executes (see
// cpu.CPU.TraceLine for the line format).
func (c *Console) ExecuteTrace(steps int, sink io.Writer) uint64 {
	var total uint64
	for i := 0; i < steps; i++ {
		fmt.Fprintln(sink, c.CPU.TraceLine())
		total += c.Advance()
	}
	return total
}

// Run advances the console until frames additional frames have been
// rendered.
func (c *Console) Run(frames int) {
	target := c.frameCount + uint64(frames)
	for c.frameCount < target {
		c.Advance()
	}
}

// FrameBuffer returns the current 256x240x3 row-major RGB framebuffer.
func (c *Console) FrameBuffer() *[256 * 240 * 3]uint8 {
	return c.PPU.FrameBuffer()
}

// FrameCount returns the number of frames fully rendered so far.
func (c *Console) FrameCount() uint64 {
	return c.frameCount
}

// CycleCount returns the total CPU cycles charged so far.
func (c *Console) CycleCount() uint64 {
	return c.cpuCycles
}

// SetControllerButtons sets all eight button states for controller 1 or 2.
func (c *Console) SetControllerButtons(controller int, buttons [8]bool) {
	switch controller {
	case 1:
		c.Input.SetButtons1(buttons)
	case 2:
		c.Input.SetButtons2(buttons)
	}
}
