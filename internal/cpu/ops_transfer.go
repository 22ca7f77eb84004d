package cpu

func (cpu *CPU) tax(_ uint16, _ bool) uint8 {
	cpu.X = cpu.A
	cpu.setZN(cpu.X)
	return 0
}

func (cpu *CPU) txa(_ uint16, _ bool) uint8 {
	cpu.A = cpu.X
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) tay(_ uint16, _ bool) uint8 {
	cpu.Y = cpu.A
	cpu.setZN(cpu.Y)
	return 0
}

func (cpu *CPU) tya(_ uint16, _ bool) uint8 {
	cpu.A = cpu.Y
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) tsx(_ uint16, _ bool) uint8 {
	cpu.X = cpu.SP
	cpu.setZN(cpu.X)
	return 0
}

// txs does not touch the flags, unlike every other transfer.
func (cpu *CPU) txs(_ uint16, _ bool) uint8 {
	cpu.SP = cpu.X
	return 0
}
