package cpu

func (cpu *CPU) clc(_ uint16, _ bool) uint8 { cpu.C = false; return 0 }
func (cpu *CPU) sec(_ uint16, _ bool) uint8 { cpu.C = true; return 0 }
func (cpu *CPU) cli(_ uint16, _ bool) uint8 { cpu.I = false; return 0 }
func (cpu *CPU) sei(_ uint16, _ bool) uint8 { cpu.I = true; return 0 }
func (cpu *CPU) clv(_ uint16, _ bool) uint8 { cpu.V = false; return 0 }
func (cpu *CPU) cld(_ uint16, _ bool) uint8 { cpu.D = false; return 0 }
func (cpu *CPU) sed(_ uint16, _ bool) uint8 { cpu.D = true; return 0 }
