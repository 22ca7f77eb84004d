// Package bus implements the console's address decoder: the flat 16-bit
// memory map that unifies built-in RAM, PPU-mapped registers, save RAM,
// and banked program ROM.
package bus

// PPUInterface is the register-level surface the bus forwards
// PPU-mapped reads/writes to.
type PPUInterface interface {
	ReadRegister(address uint16) uint8
	WriteRegister(address uint16, value uint8)
}

// APUInterface is the register-level surface for the $4000-$4013/$4015/
// $4017 audio registers. This core stubs audio generation; writes are
// acknowledged and discarded, reads return open bus.
type APUInterface interface {
	WriteRegister(address uint16, value uint8)
	ReadStatus() uint8
}

// InputInterface is the controller-port surface at $4016/$4017.
type InputInterface interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// CartridgeInterface is the mapper-side contract for PRG/CHR access,
// satisfied by *cartridge.Cartridge.
type CartridgeInterface interface {
	ReadPRG(address uint16) uint8
	WritePRG(address uint16, value uint8)
	ReadCHR(address uint16) uint8
	WriteCHR(address uint16, value uint8)
}

// Bus is the single owner of built-in RAM and the sole router for every
// CPU-visible memory access. It holds the PPU, APU, input, and cartridge
// as sub-owned collaborators reached only through the interfaces above.
type Bus struct {
	ram [0x800]uint8

	ppu   PPUInterface
	apu   APUInterface
	input InputInterface
	cart  CartridgeInterface

	// openBusValue is the last byte read from any address; unmapped reads
	// return it rather than a constant zero (hardware "open bus" behavior).
	openBusValue uint8

	// dmaStallCycles accumulates the cost of OAM DMA transfers triggered by
	// writes to $4014; the console driver adds this to its cycle budget
	// after each CPU step.
	dmaStallCycles int
}

// New wires a Bus to its PPU, APU, and cartridge. Input may be attached
// later via SetInput.
func New(ppu PPUInterface, apu APUInterface, cart CartridgeInterface) *Bus {
	return &Bus{ppu: ppu, apu: apu, cart: cart}
}

// SetInput attaches the controller-port handler.
func (b *Bus) SetInput(input InputInterface) { b.input = input }

// TakeStallCycles returns and clears the CPU-suspension cycles accrued
// since the last call, e.g. from an OAM DMA transfer.
func (b *Bus) TakeStallCycles() int {
	c := b.dmaStallCycles
	b.dmaStallCycles = 0
	return c
}

// Read decodes address and returns the byte there. Unmapped reads return
// the lingering open-bus value rather than faulting.
func (b *Bus) Read(address uint16) uint8 {
	var value uint8

	switch {
	case address < 0x2000:
		value = b.ram[address&0x07FF]

	case address < 0x4000:
		value = b.ppu.ReadRegister(0x2000 + (address & 0x0007))

	case address < 0x4020:
		switch {
		case address == 0x4015:
			value = b.apu.ReadStatus()
		case address == 0x4016 || address == 0x4017:
			if b.input != nil {
				value = b.input.Read(address)
			} else {
				value = 0
			}
		default:
			value = b.openBusValue
		}

	case address >= 0x6000 && address < 0x8000:
		if b.cart != nil {
			value = b.cart.ReadPRG(address)
		} else {
			value = b.openBusValue
		}

	case address < 0x8000:
		// Expansion region ($4020-$5FFF): unmapped.
		value = b.openBusValue

	default:
		if b.cart != nil {
			value = b.cart.ReadPRG(address)
		} else {
			value = b.openBusValue
		}
	}

	b.openBusValue = value
	return value
}

// Write decodes address and routes value to the appropriate component.
// Writes to read-only or unmapped regions are silently discarded.
func (b *Bus) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		b.ram[address&0x07FF] = value

	case address < 0x4000:
		b.ppu.WriteRegister(0x2000+(address&0x0007), value)

	case address < 0x4020:
		switch {
		case address == 0x4014:
			b.triggerOAMDMA(value)
		case address == 0x4016:
			if b.input != nil {
				b.input.Write(address, value)
			}
		case address <= 0x4013, address == 0x4015, address == 0x4017:
			b.apu.WriteRegister(address, value)
		}
		// $4018-$401F (APU/IO test mode) are ignored.

	case address >= 0x6000 && address < 0x8000:
		if b.cart != nil {
			b.cart.WritePRG(address, value)
		}

	case address < 0x8000:
		// Expansion region: writes ignored.

	default:
		if b.cart != nil {
			b.cart.WritePRG(address, value)
		}
	}
}

// triggerOAMDMA performs the 256-byte copy from CPU page (page<<8) into
// PPU OAM via register $2004, and records the CPU stall this costs the
// caller: 513 cycles, or 514 if triggered on an odd CPU cycle. This core
// always charges the even-cycle cost since sub-instruction cycle phase
// isn't tracked.
func (b *Bus) triggerOAMDMA(page uint8) {
	base := uint16(page) << 8
	for i := uint16(0); i < 256; i++ {
		v := b.Read(base + i)
		b.ppu.WriteRegister(0x2004, v)
	}
	b.dmaStallCycles += 513
}
