package cpu

func (cpu *CPU) lda(address uint16, _ bool) uint8 {
	cpu.A = cpu.memory.Read(address)
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) ldx(address uint16, _ bool) uint8 {
	cpu.X = cpu.memory.Read(address)
	cpu.setZN(cpu.X)
	return 0
}

func (cpu *CPU) ldy(address uint16, _ bool) uint8 {
	cpu.Y = cpu.memory.Read(address)
	cpu.setZN(cpu.Y)
	return 0
}

func (cpu *CPU) sta(address uint16, _ bool) uint8 {
	cpu.memory.Write(address, cpu.A)
	return 0
}

func (cpu *CPU) stx(address uint16, _ bool) uint8 {
	cpu.memory.Write(address, cpu.X)
	return 0
}

func (cpu *CPU) sty(address uint16, _ bool) uint8 {
	cpu.memory.Write(address, cpu.Y)
	return 0
}
