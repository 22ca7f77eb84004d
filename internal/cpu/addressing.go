package cpu

// getOperandAddress resolves the effective address for mode, advancing PC
// past the instruction's operand bytes. The second return value reports
// whether resolving an indexed address crossed a page boundary, which
// some opcodes charge an extra cycle for.
func (cpu *CPU) getOperandAddress(mode AddressingMode) (uint16, bool) {
	switch mode {
	case Implied, Accumulator:
		cpu.PC++
		return 0, false

	case Immediate:
		address := cpu.PC + 1
		cpu.PC += 2
		return address, false

	case ZeroPage:
		address := uint16(cpu.memory.Read(cpu.PC + 1))
		cpu.PC += 2
		return address, false

	case ZeroPageX:
		base := cpu.memory.Read(cpu.PC + 1)
		address := uint16((base + cpu.X) & zeroPageMask)
		cpu.PC += 2
		return address, false

	case ZeroPageY:
		base := cpu.memory.Read(cpu.PC + 1)
		address := uint16((base + cpu.Y) & zeroPageMask)
		cpu.PC += 2
		return address, false

	case Relative:
		offset := int8(cpu.memory.Read(cpu.PC + 1))
		oldPC := cpu.PC + 2
		newPC := uint16(int32(oldPC) + int32(offset))
		cpu.PC = oldPC // overwritten by the branch handler if taken
		return newPC, (oldPC & pageMask) != (newPC & pageMask)

	case Absolute:
		low := uint16(cpu.memory.Read(cpu.PC + 1))
		high := uint16(cpu.memory.Read(cpu.PC + 2))
		cpu.PC += 3
		return (high << 8) | low, false

	case AbsoluteX:
		low := uint16(cpu.memory.Read(cpu.PC + 1))
		high := uint16(cpu.memory.Read(cpu.PC + 2))
		base := (high << 8) | low
		address := base + uint16(cpu.X)
		cpu.PC += 3
		return address, (base & pageMask) != (address & pageMask)

	case AbsoluteY:
		low := uint16(cpu.memory.Read(cpu.PC + 1))
		high := uint16(cpu.memory.Read(cpu.PC + 2))
		base := (high << 8) | low
		address := base + uint16(cpu.Y)
		cpu.PC += 3
		return address, (base & pageMask) != (address & pageMask)

	case Indirect: // JMP only
		lowPtr := uint16(cpu.memory.Read(cpu.PC + 1))
		highPtr := uint16(cpu.memory.Read(cpu.PC + 2))
		ptr := (highPtr << 8) | lowPtr

		var address uint16
		if (ptr & zeroPageMask) == zeroPageMask {
			// Hardware bug: the high byte wraps to the start of the
			// same page instead of crossing into the next one.
			low := uint16(cpu.memory.Read(ptr))
			high := uint16(cpu.memory.Read(ptr & pageMask))
			address = (high << 8) | low
		} else {
			low := uint16(cpu.memory.Read(ptr))
			high := uint16(cpu.memory.Read(ptr + 1))
			address = (high << 8) | low
		}
		cpu.PC += 3
		return address, false

	case IndexedIndirect: // (zp,X)
		base := cpu.memory.Read(cpu.PC + 1)
		ptr := (base + cpu.X) & zeroPageMask
		low := uint16(cpu.memory.Read(uint16(ptr)))
		high := uint16(cpu.memory.Read(uint16((ptr + 1) & zeroPageMask)))
		cpu.PC += 2
		return (high << 8) | low, false

	case IndirectIndexed: // (zp),Y
		ptr := uint16(cpu.memory.Read(cpu.PC + 1))
		low := uint16(cpu.memory.Read(ptr))
		high := uint16(cpu.memory.Read((ptr + 1) & zeroPageMask))
		base := (high << 8) | low
		address := base + uint16(cpu.Y)
		cpu.PC += 2
		return address, (base & pageMask) != (address & pageMask)

	default:
		return 0, false
	}
}

// pageCrossingExtraCycle is the set of opcodes whose documented timing
// charges one extra cycle when getOperandAddress reports a page
// crossing. Branches aren't in this set: their handlers already fold
// the crossing penalty into their own returned cycle count.
var pageCrossingExtraCycle = map[uint8]bool{
	// Indexed stores (STA abs,X / abs,Y / (zp),Y) are not listed: their
	// opcodeTable cycle count already includes their fixed extra cycle.
	// Indexed/indirect reads: LDA, LDX, LDY, ADC, AND, ORA, EOR, CMP.
	0xBD: true, 0xB9: true, 0xB1: true, 0xBE: true, 0xBC: true,
	0x7D: true, 0x79: true, 0x71: true,
	0x3D: true, 0x39: true, 0x31: true,
	0x1D: true, 0x19: true, 0x11: true,
	0x5D: true, 0x59: true, 0x51: true,
	0xDD: true, 0xD9: true, 0xD1: true,
	// Documented-illegal NOPs with an Absolute,X operand.
	0x1C: true, 0x3C: true, 0x5C: true, 0x7C: true, 0xDC: true, 0xFC: true,
	// Documented-illegal reads: LAX plus the RMW-combo opcodes.
	0xBF: true, 0xB3: true,
	0xD3: true, 0xD7: true, 0xDF: true,
	0xF3: true, 0xF7: true, 0xFF: true,
	0x13: true, 0x17: true, 0x1F: true,
	0x33: true, 0x37: true, 0x3F: true,
	0x53: true, 0x57: true, 0x5F: true,
	0x73: true, 0x77: true, 0x7F: true,
}

func pageCrossExtraCycle(opcode uint8) uint8 {
	if pageCrossingExtraCycle[opcode] {
		return 1
	}
	return 0
}
