package cpu

func (cpu *CPU) pha(_ uint16, _ bool) uint8 {
	cpu.push(cpu.A)
	return 0
}

func (cpu *CPU) pla(_ uint16, _ bool) uint8 {
	cpu.A = cpu.pop()
	cpu.setZN(cpu.A)
	return 0
}

// php always pushes with the B flag set, regardless of its live state.
func (cpu *CPU) php(_ uint16, _ bool) uint8 {
	cpu.push(cpu.GetStatusByte() | bFlagMask)
	return 0
}

func (cpu *CPU) plp(_ uint16, _ bool) uint8 {
	cpu.SetStatusByte(cpu.pop())
	return 0
}
