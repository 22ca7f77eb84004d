package cpu

func (cpu *CPU) cmp(address uint16, _ bool) uint8 {
	value := cpu.memory.Read(address)
	cpu.C = cpu.A >= value
	cpu.setZN(cpu.A - value)
	return 0
}

func (cpu *CPU) cpx(address uint16, _ bool) uint8 {
	value := cpu.memory.Read(address)
	cpu.C = cpu.X >= value
	cpu.setZN(cpu.X - value)
	return 0
}

func (cpu *CPU) cpy(address uint16, _ bool) uint8 {
	value := cpu.memory.Read(address)
	cpu.C = cpu.Y >= value
	cpu.setZN(cpu.Y - value)
	return 0
}
