package cpu

// opcodeTable is the full 6502 decode table: one row per opcode byte this
// core understands, pairing its addressing mode and timing with the
// handler that carries it out. initInstructions turns this into the
// CPU's direct opcode-indexed dispatch array.
var opcodeTable = []Instruction{
	// Load/store
	{Name: "LDA", Opcode: 0xA9, Bytes: 2, Cycles: 2, Mode: Immediate, Handler: (*CPU).lda},
	{Name: "LDA", Opcode: 0xA5, Bytes: 2, Cycles: 3, Mode: ZeroPage, Handler: (*CPU).lda},
	{Name: "LDA", Opcode: 0xB5, Bytes: 2, Cycles: 4, Mode: ZeroPageX, Handler: (*CPU).lda},
	{Name: "LDA", Opcode: 0xAD, Bytes: 3, Cycles: 4, Mode: Absolute, Handler: (*CPU).lda},
	{Name: "LDA", Opcode: 0xBD, Bytes: 3, Cycles: 4, Mode: AbsoluteX, Handler: (*CPU).lda},
	{Name: "LDA", Opcode: 0xB9, Bytes: 3, Cycles: 4, Mode: AbsoluteY, Handler: (*CPU).lda},
	{Name: "LDA", Opcode: 0xA1, Bytes: 2, Cycles: 6, Mode: IndexedIndirect, Handler: (*CPU).lda},
	{Name: "LDA", Opcode: 0xB1, Bytes: 2, Cycles: 5, Mode: IndirectIndexed, Handler: (*CPU).lda},

	{Name: "LDX", Opcode: 0xA2, Bytes: 2, Cycles: 2, Mode: Immediate, Handler: (*CPU).ldx},
	{Name: "LDX", Opcode: 0xA6, Bytes: 2, Cycles: 3, Mode: ZeroPage, Handler: (*CPU).ldx},
	{Name: "LDX", Opcode: 0xB6, Bytes: 2, Cycles: 4, Mode: ZeroPageY, Handler: (*CPU).ldx},
	{Name: "LDX", Opcode: 0xAE, Bytes: 3, Cycles: 4, Mode: Absolute, Handler: (*CPU).ldx},
	{Name: "LDX", Opcode: 0xBE, Bytes: 3, Cycles: 4, Mode: AbsoluteY, Handler: (*CPU).ldx},

	{Name: "LDY", Opcode: 0xA0, Bytes: 2, Cycles: 2, Mode: Immediate, Handler: (*CPU).ldy},
	{Name: "LDY", Opcode: 0xA4, Bytes: 2, Cycles: 3, Mode: ZeroPage, Handler: (*CPU).ldy},
	{Name: "LDY", Opcode: 0xB4, Bytes: 2, Cycles: 4, Mode: ZeroPageX, Handler: (*CPU).ldy},
	{Name: "LDY", Opcode: 0xAC, Bytes: 3, Cycles: 4, Mode: Absolute, Handler: (*CPU).ldy},
	{Name: "LDY", Opcode: 0xBC, Bytes: 3, Cycles: 4, Mode: AbsoluteX, Handler: (*CPU).ldy},

	{Name: "STA", Opcode: 0x85, Bytes: 2, Cycles: 3, Mode: ZeroPage, Handler: (*CPU).sta},
	{Name: "STA", Opcode: 0x95, Bytes: 2, Cycles: 4, Mode: ZeroPageX, Handler: (*CPU).sta},
	{Name: "STA", Opcode: 0x8D, Bytes: 3, Cycles: 4, Mode: Absolute, Handler: (*CPU).sta},
	{Name: "STA", Opcode: 0x9D, Bytes: 3, Cycles: 5, Mode: AbsoluteX, Handler: (*CPU).sta},
	{Name: "STA", Opcode: 0x99, Bytes: 3, Cycles: 5, Mode: AbsoluteY, Handler: (*CPU).sta},
	{Name: "STA", Opcode: 0x81, Bytes: 2, Cycles: 6, Mode: IndexedIndirect, Handler: (*CPU).sta},
	{Name: "STA", Opcode: 0x91, Bytes: 2, Cycles: 6, Mode: IndirectIndexed, Handler: (*CPU).sta},

	{Name: "STX", Opcode: 0x86, Bytes: 2, Cycles: 3, Mode: ZeroPage, Handler: (*CPU).stx},
	{Name: "STX", Opcode: 0x96, Bytes: 2, Cycles: 4, Mode: ZeroPageY, Handler: (*CPU).stx},
	{Name: "STX", Opcode: 0x8E, Bytes: 3, Cycles: 4, Mode: Absolute, Handler: (*CPU).stx},

	{Name: "STY", Opcode: 0x84, Bytes: 2, Cycles: 3, Mode: ZeroPage, Handler: (*CPU).sty},
	{Name: "STY", Opcode: 0x94, Bytes: 2, Cycles: 4, Mode: ZeroPageX, Handler: (*CPU).sty},
	{Name: "STY", Opcode: 0x8C, Bytes: 3, Cycles: 4, Mode: Absolute, Handler: (*CPU).sty},

	// Arithmetic
	{Name: "ADC", Opcode: 0x69, Bytes: 2, Cycles: 2, Mode: Immediate, Handler: (*CPU).adc},
	{Name: "ADC", Opcode: 0x65, Bytes: 2, Cycles: 3, Mode: ZeroPage, Handler: (*CPU).adc},
	{Name: "ADC", Opcode: 0x75, Bytes: 2, Cycles: 4, Mode: ZeroPageX, Handler: (*CPU).adc},
	{Name: "ADC", Opcode: 0x6D, Bytes: 3, Cycles: 4, Mode: Absolute, Handler: (*CPU).adc},
	{Name: "ADC", Opcode: 0x7D, Bytes: 3, Cycles: 4, Mode: AbsoluteX, Handler: (*CPU).adc},
	{Name: "ADC", Opcode: 0x79, Bytes: 3, Cycles: 4, Mode: AbsoluteY, Handler: (*CPU).adc},
	{Name: "ADC", Opcode: 0x61, Bytes: 2, Cycles: 6, Mode: IndexedIndirect, Handler: (*CPU).adc},
	{Name: "ADC", Opcode: 0x71, Bytes: 2, Cycles: 5, Mode: IndirectIndexed, Handler: (*CPU).adc},

	{Name: "SBC", Opcode: 0xE9, Bytes: 2, Cycles: 2, Mode: Immediate, Handler: (*CPU).sbc},
	{Name: "SBC", Opcode: 0xE5, Bytes: 2, Cycles: 3, Mode: ZeroPage, Handler: (*CPU).sbc},
	{Name: "SBC", Opcode: 0xF5, Bytes: 2, Cycles: 4, Mode: ZeroPageX, Handler: (*CPU).sbc},
	{Name: "SBC", Opcode: 0xED, Bytes: 3, Cycles: 4, Mode: Absolute, Handler: (*CPU).sbc},
	{Name: "SBC", Opcode: 0xFD, Bytes: 3, Cycles: 4, Mode: AbsoluteX, Handler: (*CPU).sbc},
	{Name: "SBC", Opcode: 0xF9, Bytes: 3, Cycles: 4, Mode: AbsoluteY, Handler: (*CPU).sbc},
	{Name: "SBC", Opcode: 0xE1, Bytes: 2, Cycles: 6, Mode: IndexedIndirect, Handler: (*CPU).sbc},
	{Name: "SBC", Opcode: 0xF1, Bytes: 2, Cycles: 5, Mode: IndirectIndexed, Handler: (*CPU).sbc},
	{Name: "SBC", Opcode: 0xEB, Bytes: 2, Cycles: 2, Mode: Immediate, Handler: (*CPU).sbc}, // illegal alias

	// Logical
	{Name: "AND", Opcode: 0x29, Bytes: 2, Cycles: 2, Mode: Immediate, Handler: (*CPU).and},
	{Name: "AND", Opcode: 0x25, Bytes: 2, Cycles: 3, Mode: ZeroPage, Handler: (*CPU).and},
	{Name: "AND", Opcode: 0x35, Bytes: 2, Cycles: 4, Mode: ZeroPageX, Handler: (*CPU).and},
	{Name: "AND", Opcode: 0x2D, Bytes: 3, Cycles: 4, Mode: Absolute, Handler: (*CPU).and},
	{Name: "AND", Opcode: 0x3D, Bytes: 3, Cycles: 4, Mode: AbsoluteX, Handler: (*CPU).and},
	{Name: "AND", Opcode: 0x39, Bytes: 3, Cycles: 4, Mode: AbsoluteY, Handler: (*CPU).and},
	{Name: "AND", Opcode: 0x21, Bytes: 2, Cycles: 6, Mode: IndexedIndirect, Handler: (*CPU).and},
	{Name: "AND", Opcode: 0x31, Bytes: 2, Cycles: 5, Mode: IndirectIndexed, Handler: (*CPU).and},

	{Name: "ORA", Opcode: 0x09, Bytes: 2, Cycles: 2, Mode: Immediate, Handler: (*CPU).ora},
	{Name: "ORA", Opcode: 0x05, Bytes: 2, Cycles: 3, Mode: ZeroPage, Handler: (*CPU).ora},
	{Name: "ORA", Opcode: 0x15, Bytes: 2, Cycles: 4, Mode: ZeroPageX, Handler: (*CPU).ora},
	{Name: "ORA", Opcode: 0x0D, Bytes: 3, Cycles: 4, Mode: Absolute, Handler: (*CPU).ora},
	{Name: "ORA", Opcode: 0x1D, Bytes: 3, Cycles: 4, Mode: AbsoluteX, Handler: (*CPU).ora},
	{Name: "ORA", Opcode: 0x19, Bytes: 3, Cycles: 4, Mode: AbsoluteY, Handler: (*CPU).ora},
	{Name: "ORA", Opcode: 0x01, Bytes: 2, Cycles: 6, Mode: IndexedIndirect, Handler: (*CPU).ora},
	{Name: "ORA", Opcode: 0x11, Bytes: 2, Cycles: 5, Mode: IndirectIndexed, Handler: (*CPU).ora},

	{Name: "EOR", Opcode: 0x49, Bytes: 2, Cycles: 2, Mode: Immediate, Handler: (*CPU).eor},
	{Name: "EOR", Opcode: 0x45, Bytes: 2, Cycles: 3, Mode: ZeroPage, Handler: (*CPU).eor},
	{Name: "EOR", Opcode: 0x55, Bytes: 2, Cycles: 4, Mode: ZeroPageX, Handler: (*CPU).eor},
	{Name: "EOR", Opcode: 0x4D, Bytes: 3, Cycles: 4, Mode: Absolute, Handler: (*CPU).eor},
	{Name: "EOR", Opcode: 0x5D, Bytes: 3, Cycles: 4, Mode: AbsoluteX, Handler: (*CPU).eor},
	{Name: "EOR", Opcode: 0x59, Bytes: 3, Cycles: 4, Mode: AbsoluteY, Handler: (*CPU).eor},
	{Name: "EOR", Opcode: 0x41, Bytes: 2, Cycles: 6, Mode: IndexedIndirect, Handler: (*CPU).eor},
	{Name: "EOR", Opcode: 0x51, Bytes: 2, Cycles: 5, Mode: IndirectIndexed, Handler: (*CPU).eor},

	// Shifts/rotates
	{Name: "ASL", Opcode: 0x0A, Bytes: 1, Cycles: 2, Mode: Accumulator, Handler: (*CPU).aslAcc},
	{Name: "ASL", Opcode: 0x06, Bytes: 2, Cycles: 5, Mode: ZeroPage, Handler: (*CPU).asl},
	{Name: "ASL", Opcode: 0x16, Bytes: 2, Cycles: 6, Mode: ZeroPageX, Handler: (*CPU).asl},
	{Name: "ASL", Opcode: 0x0E, Bytes: 3, Cycles: 6, Mode: Absolute, Handler: (*CPU).asl},
	{Name: "ASL", Opcode: 0x1E, Bytes: 3, Cycles: 7, Mode: AbsoluteX, Handler: (*CPU).asl},

	{Name: "LSR", Opcode: 0x4A, Bytes: 1, Cycles: 2, Mode: Accumulator, Handler: (*CPU).lsrAcc},
	{Name: "LSR", Opcode: 0x46, Bytes: 2, Cycles: 5, Mode: ZeroPage, Handler: (*CPU).lsr},
	{Name: "LSR", Opcode: 0x56, Bytes: 2, Cycles: 6, Mode: ZeroPageX, Handler: (*CPU).lsr},
	{Name: "LSR", Opcode: 0x4E, Bytes: 3, Cycles: 6, Mode: Absolute, Handler: (*CPU).lsr},
	{Name: "LSR", Opcode: 0x5E, Bytes: 3, Cycles: 7, Mode: AbsoluteX, Handler: (*CPU).lsr},

	{Name: "ROL", Opcode: 0x2A, Bytes: 1, Cycles: 2, Mode: Accumulator, Handler: (*CPU).rolAcc},
	{Name: "ROL", Opcode: 0x26, Bytes: 2, Cycles: 5, Mode: ZeroPage, Handler: (*CPU).rol},
	{Name: "ROL", Opcode: 0x36, Bytes: 2, Cycles: 6, Mode: ZeroPageX, Handler: (*CPU).rol},
	{Name: "ROL", Opcode: 0x2E, Bytes: 3, Cycles: 6, Mode: Absolute, Handler: (*CPU).rol},
	{Name: "ROL", Opcode: 0x3E, Bytes: 3, Cycles: 7, Mode: AbsoluteX, Handler: (*CPU).rol},

	{Name: "ROR", Opcode: 0x6A, Bytes: 1, Cycles: 2, Mode: Accumulator, Handler: (*CPU).rorAcc},
	{Name: "ROR", Opcode: 0x66, Bytes: 2, Cycles: 5, Mode: ZeroPage, Handler: (*CPU).ror},
	{Name: "ROR", Opcode: 0x76, Bytes: 2, Cycles: 6, Mode: ZeroPageX, Handler: (*CPU).ror},
	{Name: "ROR", Opcode: 0x6E, Bytes: 3, Cycles: 6, Mode: Absolute, Handler: (*CPU).ror},
	{Name: "ROR", Opcode: 0x7E, Bytes: 3, Cycles: 7, Mode: AbsoluteX, Handler: (*CPU).ror},

	// Comparisons
	{Name: "CMP", Opcode: 0xC9, Bytes: 2, Cycles: 2, Mode: Immediate, Handler: (*CPU).cmp},
	{Name: "CMP", Opcode: 0xC5, Bytes: 2, Cycles: 3, Mode: ZeroPage, Handler: (*CPU).cmp},
	{Name: "CMP", Opcode: 0xD5, Bytes: 2, Cycles: 4, Mode: ZeroPageX, Handler: (*CPU).cmp},
	{Name: "CMP", Opcode: 0xCD, Bytes: 3, Cycles: 4, Mode: Absolute, Handler: (*CPU).cmp},
	{Name: "CMP", Opcode: 0xDD, Bytes: 3, Cycles: 4, Mode: AbsoluteX, Handler: (*CPU).cmp},
	{Name: "CMP", Opcode: 0xD9, Bytes: 3, Cycles: 4, Mode: AbsoluteY, Handler: (*CPU).cmp},
	{Name: "CMP", Opcode: 0xC1, Bytes: 2, Cycles: 6, Mode: IndexedIndirect, Handler: (*CPU).cmp},
	{Name: "CMP", Opcode: 0xD1, Bytes: 2, Cycles: 5, Mode: IndirectIndexed, Handler: (*CPU).cmp},

	{Name: "CPX", Opcode: 0xE0, Bytes: 2, Cycles: 2, Mode: Immediate, Handler: (*CPU).cpx},
	{Name: "CPX", Opcode: 0xE4, Bytes: 2, Cycles: 3, Mode: ZeroPage, Handler: (*CPU).cpx},
	{Name: "CPX", Opcode: 0xEC, Bytes: 3, Cycles: 4, Mode: Absolute, Handler: (*CPU).cpx},

	{Name: "CPY", Opcode: 0xC0, Bytes: 2, Cycles: 2, Mode: Immediate, Handler: (*CPU).cpy},
	{Name: "CPY", Opcode: 0xC4, Bytes: 2, Cycles: 3, Mode: ZeroPage, Handler: (*CPU).cpy},
	{Name: "CPY", Opcode: 0xCC, Bytes: 3, Cycles: 4, Mode: Absolute, Handler: (*CPU).cpy},

	// Increment/decrement
	{Name: "INC", Opcode: 0xE6, Bytes: 2, Cycles: 5, Mode: ZeroPage, Handler: (*CPU).inc},
	{Name: "INC", Opcode: 0xF6, Bytes: 2, Cycles: 6, Mode: ZeroPageX, Handler: (*CPU).inc},
	{Name: "INC", Opcode: 0xEE, Bytes: 3, Cycles: 6, Mode: Absolute, Handler: (*CPU).inc},
	{Name: "INC", Opcode: 0xFE, Bytes: 3, Cycles: 7, Mode: AbsoluteX, Handler: (*CPU).inc},

	{Name: "DEC", Opcode: 0xC6, Bytes: 2, Cycles: 5, Mode: ZeroPage, Handler: (*CPU).dec},
	{Name: "DEC", Opcode: 0xD6, Bytes: 2, Cycles: 6, Mode: ZeroPageX, Handler: (*CPU).dec},
	{Name: "DEC", Opcode: 0xCE, Bytes: 3, Cycles: 6, Mode: Absolute, Handler: (*CPU).dec},
	{Name: "DEC", Opcode: 0xDE, Bytes: 3, Cycles: 7, Mode: AbsoluteX, Handler: (*CPU).dec},

	{Name: "INX", Opcode: 0xE8, Bytes: 1, Cycles: 2, Mode: Implied, Handler: (*CPU).inx},
	{Name: "DEX", Opcode: 0xCA, Bytes: 1, Cycles: 2, Mode: Implied, Handler: (*CPU).dex},
	{Name: "INY", Opcode: 0xC8, Bytes: 1, Cycles: 2, Mode: Implied, Handler: (*CPU).iny},
	{Name: "DEY", Opcode: 0x88, Bytes: 1, Cycles: 2, Mode: Implied, Handler: (*CPU).dey},

	// Register transfers
	{Name: "TAX", Opcode: 0xAA, Bytes: 1, Cycles: 2, Mode: Implied, Handler: (*CPU).tax},
	{Name: "TXA", Opcode: 0x8A, Bytes: 1, Cycles: 2, Mode: Implied, Handler: (*CPU).txa},
	{Name: "TAY", Opcode: 0xA8, Bytes: 1, Cycles: 2, Mode: Implied, Handler: (*CPU).tay},
	{Name: "TYA", Opcode: 0x98, Bytes: 1, Cycles: 2, Mode: Implied, Handler: (*CPU).tya},
	{Name: "TSX", Opcode: 0xBA, Bytes: 1, Cycles: 2, Mode: Implied, Handler: (*CPU).tsx},
	{Name: "TXS", Opcode: 0x9A, Bytes: 1, Cycles: 2, Mode: Implied, Handler: (*CPU).txs},

	// Stack
	{Name: "PHA", Opcode: 0x48, Bytes: 1, Cycles: 3, Mode: Implied, Handler: (*CPU).pha},
	{Name: "PLA", Opcode: 0x68, Bytes: 1, Cycles: 4, Mode: Implied, Handler: (*CPU).pla},
	{Name: "PHP", Opcode: 0x08, Bytes: 1, Cycles: 3, Mode: Implied, Handler: (*CPU).php},
	{Name: "PLP", Opcode: 0x28, Bytes: 1, Cycles: 4, Mode: Implied, Handler: (*CPU).plp},

	// Flags
	{Name: "CLC", Opcode: 0x18, Bytes: 1, Cycles: 2, Mode: Implied, Handler: (*CPU).clc},
	{Name: "SEC", Opcode: 0x38, Bytes: 1, Cycles: 2, Mode: Implied, Handler: (*CPU).sec},
	{Name: "CLI", Opcode: 0x58, Bytes: 1, Cycles: 2, Mode: Implied, Handler: (*CPU).cli},
	{Name: "SEI", Opcode: 0x78, Bytes: 1, Cycles: 2, Mode: Implied, Handler: (*CPU).sei},
	{Name: "CLV", Opcode: 0xB8, Bytes: 1, Cycles: 2, Mode: Implied, Handler: (*CPU).clv},
	{Name: "CLD", Opcode: 0xD8, Bytes: 1, Cycles: 2, Mode: Implied, Handler: (*CPU).cld},
	{Name: "SED", Opcode: 0xF8, Bytes: 1, Cycles: 2, Mode: Implied, Handler: (*CPU).sed},

	// Control flow
	{Name: "JMP", Opcode: 0x4C, Bytes: 3, Cycles: 3, Mode: Absolute, Handler: (*CPU).jmp},
	{Name: "JMP", Opcode: 0x6C, Bytes: 3, Cycles: 5, Mode: Indirect, Handler: (*CPU).jmp},
	{Name: "JSR", Opcode: 0x20, Bytes: 3, Cycles: 6, Mode: Absolute, Handler: (*CPU).jsr},
	{Name: "RTS", Opcode: 0x60, Bytes: 1, Cycles: 6, Mode: Implied, Handler: (*CPU).rts},
	{Name: "RTI", Opcode: 0x40, Bytes: 1, Cycles: 6, Mode: Implied, Handler: (*CPU).rti},

	// Branches
	{Name: "BCC", Opcode: 0x90, Bytes: 2, Cycles: 2, Mode: Relative, Handler: (*CPU).bcc},
	{Name: "BCS", Opcode: 0xB0, Bytes: 2, Cycles: 2, Mode: Relative, Handler: (*CPU).bcs},
	{Name: "BNE", Opcode: 0xD0, Bytes: 2, Cycles: 2, Mode: Relative, Handler: (*CPU).bne},
	{Name: "BEQ", Opcode: 0xF0, Bytes: 2, Cycles: 2, Mode: Relative, Handler: (*CPU).beq},
	{Name: "BPL", Opcode: 0x10, Bytes: 2, Cycles: 2, Mode: Relative, Handler: (*CPU).bpl},
	{Name: "BMI", Opcode: 0x30, Bytes: 2, Cycles: 2, Mode: Relative, Handler: (*CPU).bmi},
	{Name: "BVC", Opcode: 0x50, Bytes: 2, Cycles: 2, Mode: Relative, Handler: (*CPU).bvc},
	{Name: "BVS", Opcode: 0x70, Bytes: 2, Cycles: 2, Mode: Relative, Handler: (*CPU).bvs},

	// Miscellaneous
	{Name: "BIT", Opcode: 0x24, Bytes: 2, Cycles: 3, Mode: ZeroPage, Handler: (*CPU).bit},
	{Name: "BIT", Opcode: 0x2C, Bytes: 3, Cycles: 4, Mode: Absolute, Handler: (*CPU).bit},
	{Name: "NOP", Opcode: 0xEA, Bytes: 1, Cycles: 2, Mode: Implied, Handler: (*CPU).nop},
	{Name: "BRK", Opcode: 0x00, Bytes: 1, Cycles: 7, Mode: Implied, Handler: (*CPU).brk},

	// Documented-illegal NOPs, every addressing-mode variant real hardware decodes
	{Name: "NOP", Opcode: 0x1A, Bytes: 1, Cycles: 2, Mode: Implied, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0x3A, Bytes: 1, Cycles: 2, Mode: Implied, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0x5A, Bytes: 1, Cycles: 2, Mode: Implied, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0x7A, Bytes: 1, Cycles: 2, Mode: Implied, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0xDA, Bytes: 1, Cycles: 2, Mode: Implied, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0xFA, Bytes: 1, Cycles: 2, Mode: Implied, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0x80, Bytes: 2, Cycles: 2, Mode: Immediate, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0x82, Bytes: 2, Cycles: 2, Mode: Immediate, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0x89, Bytes: 2, Cycles: 2, Mode: Immediate, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0xC2, Bytes: 2, Cycles: 2, Mode: Immediate, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0xE2, Bytes: 2, Cycles: 2, Mode: Immediate, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0x04, Bytes: 2, Cycles: 3, Mode: ZeroPage, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0x44, Bytes: 2, Cycles: 3, Mode: ZeroPage, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0x64, Bytes: 2, Cycles: 3, Mode: ZeroPage, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0x14, Bytes: 2, Cycles: 4, Mode: ZeroPageX, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0x34, Bytes: 2, Cycles: 4, Mode: ZeroPageX, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0x54, Bytes: 2, Cycles: 4, Mode: ZeroPageX, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0x74, Bytes: 2, Cycles: 4, Mode: ZeroPageX, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0xD4, Bytes: 2, Cycles: 4, Mode: ZeroPageX, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0xF4, Bytes: 2, Cycles: 4, Mode: ZeroPageX, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0x0C, Bytes: 3, Cycles: 4, Mode: Absolute, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0x1C, Bytes: 3, Cycles: 4, Mode: AbsoluteX, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0x3C, Bytes: 3, Cycles: 4, Mode: AbsoluteX, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0x5C, Bytes: 3, Cycles: 4, Mode: AbsoluteX, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0x7C, Bytes: 3, Cycles: 4, Mode: AbsoluteX, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0xDC, Bytes: 3, Cycles: 4, Mode: AbsoluteX, Handler: (*CPU).nop},
	{Name: "NOP", Opcode: 0xFC, Bytes: 3, Cycles: 4, Mode: AbsoluteX, Handler: (*CPU).nop},

	// Documented-illegal combo opcodes
	{Name: "LAX", Opcode: 0xA7, Bytes: 2, Cycles: 3, Mode: ZeroPage, Handler: (*CPU).lax},
	{Name: "LAX", Opcode: 0xB7, Bytes: 2, Cycles: 4, Mode: ZeroPageY, Handler: (*CPU).lax},
	{Name: "LAX", Opcode: 0xAF, Bytes: 3, Cycles: 4, Mode: Absolute, Handler: (*CPU).lax},
	{Name: "LAX", Opcode: 0xBF, Bytes: 3, Cycles: 4, Mode: AbsoluteY, Handler: (*CPU).lax},
	{Name: "LAX", Opcode: 0xA3, Bytes: 2, Cycles: 6, Mode: IndexedIndirect, Handler: (*CPU).lax},
	{Name: "LAX", Opcode: 0xB3, Bytes: 2, Cycles: 5, Mode: IndirectIndexed, Handler: (*CPU).lax},

	{Name: "SAX", Opcode: 0x87, Bytes: 2, Cycles: 3, Mode: ZeroPage, Handler: (*CPU).sax},
	{Name: "SAX", Opcode: 0x97, Bytes: 2, Cycles: 4, Mode: ZeroPageY, Handler: (*CPU).sax},
	{Name: "SAX", Opcode: 0x8F, Bytes: 3, Cycles: 4, Mode: Absolute, Handler: (*CPU).sax},
	{Name: "SAX", Opcode: 0x83, Bytes: 2, Cycles: 6, Mode: IndexedIndirect, Handler: (*CPU).sax},

	{Name: "DCP", Opcode: 0xC7, Bytes: 2, Cycles: 5, Mode: ZeroPage, Handler: (*CPU).dcp},
	{Name: "DCP", Opcode: 0xD7, Bytes: 2, Cycles: 6, Mode: ZeroPageX, Handler: (*CPU).dcp},
	{Name: "DCP", Opcode: 0xCF, Bytes: 3, Cycles: 6, Mode: Absolute, Handler: (*CPU).dcp},
	{Name: "DCP", Opcode: 0xDF, Bytes: 3, Cycles: 7, Mode: AbsoluteX, Handler: (*CPU).dcp},
	{Name: "DCP", Opcode: 0xDB, Bytes: 3, Cycles: 7, Mode: AbsoluteY, Handler: (*CPU).dcp},
	{Name: "DCP", Opcode: 0xC3, Bytes: 2, Cycles: 8, Mode: IndexedIndirect, Handler: (*CPU).dcp},
	{Name: "DCP", Opcode: 0xD3, Bytes: 2, Cycles: 8, Mode: IndirectIndexed, Handler: (*CPU).dcp},

	{Name: "ISB", Opcode: 0xE7, Bytes: 2, Cycles: 5, Mode: ZeroPage, Handler: (*CPU).isb},
	{Name: "ISB", Opcode: 0xF7, Bytes: 2, Cycles: 6, Mode: ZeroPageX, Handler: (*CPU).isb},
	{Name: "ISB", Opcode: 0xEF, Bytes: 3, Cycles: 6, Mode: Absolute, Handler: (*CPU).isb},
	{Name: "ISB", Opcode: 0xFF, Bytes: 3, Cycles: 7, Mode: AbsoluteX, Handler: (*CPU).isb},
	{Name: "ISB", Opcode: 0xFB, Bytes: 3, Cycles: 7, Mode: AbsoluteY, Handler: (*CPU).isb},
	{Name: "ISB", Opcode: 0xE3, Bytes: 2, Cycles: 8, Mode: IndexedIndirect, Handler: (*CPU).isb},
	{Name: "ISB", Opcode: 0xF3, Bytes: 2, Cycles: 8, Mode: IndirectIndexed, Handler: (*CPU).isb},

	{Name: "SLO", Opcode: 0x07, Bytes: 2, Cycles: 5, Mode: ZeroPage, Handler: (*CPU).slo},
	{Name: "SLO", Opcode: 0x17, Bytes: 2, Cycles: 6, Mode: ZeroPageX, Handler: (*CPU).slo},
	{Name: "SLO", Opcode: 0x0F, Bytes: 3, Cycles: 6, Mode: Absolute, Handler: (*CPU).slo},
	{Name: "SLO", Opcode: 0x1F, Bytes: 3, Cycles: 7, Mode: AbsoluteX, Handler: (*CPU).slo},
	{Name: "SLO", Opcode: 0x1B, Bytes: 3, Cycles: 7, Mode: AbsoluteY, Handler: (*CPU).slo},
	{Name: "SLO", Opcode: 0x03, Bytes: 2, Cycles: 8, Mode: IndexedIndirect, Handler: (*CPU).slo},
	{Name: "SLO", Opcode: 0x13, Bytes: 2, Cycles: 8, Mode: IndirectIndexed, Handler: (*CPU).slo},

	{Name: "RLA", Opcode: 0x27, Bytes: 2, Cycles: 5, Mode: ZeroPage, Handler: (*CPU).rla},
	{Name: "RLA", Opcode: 0x37, Bytes: 2, Cycles: 6, Mode: ZeroPageX, Handler: (*CPU).rla},
	{Name: "RLA", Opcode: 0x2F, Bytes: 3, Cycles: 6, Mode: Absolute, Handler: (*CPU).rla},
	{Name: "RLA", Opcode: 0x3F, Bytes: 3, Cycles: 7, Mode: AbsoluteX, Handler: (*CPU).rla},
	{Name: "RLA", Opcode: 0x3B, Bytes: 3, Cycles: 7, Mode: AbsoluteY, Handler: (*CPU).rla},
	{Name: "RLA", Opcode: 0x23, Bytes: 2, Cycles: 8, Mode: IndexedIndirect, Handler: (*CPU).rla},
	{Name: "RLA", Opcode: 0x33, Bytes: 2, Cycles: 8, Mode: IndirectIndexed, Handler: (*CPU).rla},

	{Name: "SRE", Opcode: 0x47, Bytes: 2, Cycles: 5, Mode: ZeroPage, Handler: (*CPU).sre},
	{Name: "SRE", Opcode: 0x57, Bytes: 2, Cycles: 6, Mode: ZeroPageX, Handler: (*CPU).sre},
	{Name: "SRE", Opcode: 0x4F, Bytes: 3, Cycles: 6, Mode: Absolute, Handler: (*CPU).sre},
	{Name: "SRE", Opcode: 0x5F, Bytes: 3, Cycles: 7, Mode: AbsoluteX, Handler: (*CPU).sre},
	{Name: "SRE", Opcode: 0x5B, Bytes: 3, Cycles: 7, Mode: AbsoluteY, Handler: (*CPU).sre},
	{Name: "SRE", Opcode: 0x43, Bytes: 2, Cycles: 8, Mode: IndexedIndirect, Handler: (*CPU).sre},
	{Name: "SRE", Opcode: 0x53, Bytes: 2, Cycles: 8, Mode: IndirectIndexed, Handler: (*CPU).sre},

	{Name: "RRA", Opcode: 0x67, Bytes: 2, Cycles: 5, Mode: ZeroPage, Handler: (*CPU).rra},
	{Name: "RRA", Opcode: 0x77, Bytes: 2, Cycles: 6, Mode: ZeroPageX, Handler: (*CPU).rra},
	{Name: "RRA", Opcode: 0x6F, Bytes: 3, Cycles: 6, Mode: Absolute, Handler: (*CPU).rra},
	{Name: "RRA", Opcode: 0x7F, Bytes: 3, Cycles: 7, Mode: AbsoluteX, Handler: (*CPU).rra},
	{Name: "RRA", Opcode: 0x7B, Bytes: 3, Cycles: 7, Mode: AbsoluteY, Handler: (*CPU).rra},
	{Name: "RRA", Opcode: 0x63, Bytes: 2, Cycles: 8, Mode: IndexedIndirect, Handler: (*CPU).rra},
	{Name: "RRA", Opcode: 0x73, Bytes: 2, Cycles: 8, Mode: IndirectIndexed, Handler: (*CPU).rra},
}

// initInstructions populates the CPU's opcode-indexed dispatch array from
// opcodeTable. Unmapped slots stay nil; Advance treats those as an
// unimplemented-opcode fallback.
func (cpu *CPU) initInstructions() {
	for i := range opcodeTable {
		entry := opcodeTable[i]
		cpu.instructions[entry.Opcode] = &entry
	}
}
