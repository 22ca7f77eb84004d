package cpu

// handleNMI services a pending non-maskable interrupt: push PC and status
// (with B clear, matching a hardware-initiated interrupt rather than
// BRK), disable further interrupts, and vector through 0xFFFA.
func (cpu *CPU) handleNMI() {
	cpu.pushWord(cpu.PC)
	status := (cpu.GetStatusByte() &^ uint8(bFlagMask)) | unusedMask
	cpu.push(status)
	cpu.I = true
	low := uint16(cpu.memory.Read(nmiVector))
	high := uint16(cpu.memory.Read(nmiVector + 1))
	cpu.PC = (high << 8) | low
	cpu.cycles += 7
}

// handleIRQ is handleNMI's maskable counterpart, vectoring through 0xFFFE.
func (cpu *CPU) handleIRQ() {
	cpu.pushWord(cpu.PC)
	status := (cpu.GetStatusByte() &^ uint8(bFlagMask)) | unusedMask
	cpu.push(status)
	cpu.I = true
	low := uint16(cpu.memory.Read(irqVector))
	high := uint16(cpu.memory.Read(irqVector + 1))
	cpu.PC = (high << 8) | low
	cpu.cycles += 7
}

// SetNMI updates the NMI line's level. NMI is edge-triggered: a falling
// edge (line was high, now low) latches a pending interrupt; the level
// itself doesn't matter otherwise.
func (cpu *CPU) SetNMI(state bool) {
	if cpu.nmiPrevious && !state {
		cpu.nmiPending = true
	}
	cpu.nmiPrevious = state
}

// SetIRQ updates the IRQ line's level directly; unlike NMI it's
// level-triggered and gated by the I flag.
func (cpu *CPU) SetIRQ(state bool) {
	cpu.irqPending = state
}

// ProcessPendingInterrupts services any latched interrupt. Called after
// every instruction so a pending interrupt takes effect with the
// documented one-instruction delay.
func (cpu *CPU) ProcessPendingInterrupts() {
	if cpu.nmiPending {
		cpu.nmiPending = false
		cpu.handleNMI()
		return
	}
	if cpu.irqPending && !cpu.I {
		cpu.handleIRQ()
	}
}

// TriggerNMI latches an NMI directly, bypassing edge detection. Used by
// callers that already know they're delivering a genuine edge (tests,
// and any bus wiring that doesn't want to track line state itself).
func (cpu *CPU) TriggerNMI() {
	cpu.nmiPending = true
}

// TriggerIRQ is TriggerNMI's maskable counterpart.
func (cpu *CPU) TriggerIRQ() {
	cpu.irqPending = true
}

// GetStatusByte packs the individual flags into the traditional 6502
// processor status byte (bit 5 always reads back set).
func (cpu *CPU) GetStatusByte() uint8 {
	var status uint8 = unusedMask
	if cpu.N {
		status |= nFlagMask
	}
	if cpu.V {
		status |= vFlagMask
	}
	if cpu.B {
		status |= bFlagMask
	}
	if cpu.D {
		status |= dFlagMask
	}
	if cpu.I {
		status |= iFlagMask
	}
	if cpu.Z {
		status |= zFlagMask
	}
	if cpu.C {
		status |= cFlagMask
	}
	return status
}

// SetStatusByte unpacks status into the individual flags (PLP, RTI).
func (cpu *CPU) SetStatusByte(status uint8) {
	cpu.N = (status & nFlagMask) != 0
	cpu.V = (status & vFlagMask) != 0
	cpu.B = (status & bFlagMask) != 0
	cpu.D = (status & dFlagMask) != 0
	cpu.I = (status & iFlagMask) != 0
	cpu.Z = (status & zFlagMask) != 0
	cpu.C = (status & cFlagMask) != 0
}
