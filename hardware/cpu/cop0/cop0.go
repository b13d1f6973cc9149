// This file is part of Socsim.
//
// Socsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Socsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Socsim.  If not, see <https://www.gnu.org/licenses/>.

// Package cop0 implements the system control registers of the core
// (coprocessor zero).
//
// Only the registers required for exception handling are implemented:
// BADVADDR, COUNT, STATUS, CAUSE, EPC and PRId. Reads of other registers
// return zero and writes to them are ignored.
package cop0

import (
	"fmt"

	"github.com/socsim/socsim/hardware/cpu/exceptions"
)

// Register indexes as used by the MFC0 and MTC0 instructions.
const (
	BadVAddr = 8
	Count    = 9
	Status   = 12
	Cause    = 13
	EPC      = 14
	PRId     = 15
)

// STATUS register bits.
const (
	StatusIEc  = 0x00000001
	StatusKUc  = 0x00000002
	StatusMode = 0x0000003f
	StatusIM   = 0x0000ff00
	StatusBEV  = 0x00400000
)

// CAUSE register bits.
const (
	CauseExcCode = 0x0000007c
	CauseIP      = 0x0000ff00
	CauseIPSW    = 0x00000300
	CauseIPHW    = 0x0000fc00
	CauseBD      = 0x80000000
)

// BootstrapVector is the exception vector used when STATUS.BEV is set.
const BootstrapVector = 0xbfc00180

// Registers is the set of system control registers.
type Registers struct {
	status   uint32
	cause    uint32
	epc      uint32
	badVAddr uint32
	count    uint32
	prid     uint32
}

// NewRegisters is the preferred method of initialisation for the Registers
// type. The prid value is the fixed value of the PRId register.
func NewRegisters(prid uint32) *Registers {
	return &Registers{
		prid: prid,
	}
}

// Reset all registers to zero, except for PRId.
func (r *Registers) Reset() {
	*r = Registers{prid: r.prid}
}

func (r *Registers) String() string {
	return fmt.Sprintf("sr=%08x cause=%08x epc=%08x bad=%08x count=%08x",
		r.status, r.cause, r.epc, r.badVAddr, r.count)
}

// Read returns the value of the register as seen by the MFC0 instruction.
func (r *Registers) Read(reg int) uint32 {
	switch reg {
	case BadVAddr:
		return r.badVAddr
	case Count:
		return r.count
	case Status:
		return r.status
	case Cause:
		return r.cause
	case EPC:
		return r.epc
	case PRId:
		return r.prid
	}
	return 0
}

// Write sets the value of the register as if by the MTC0 instruction.
//
// BADVADDR and PRId are read only. Only the software interrupt bits of the
// CAUSE register can be written.
func (r *Registers) Write(reg int, v uint32) {
	switch reg {
	case Count:
		r.count = v
	case Status:
		r.status = v
	case Cause:
		r.cause = (r.cause &^ CauseIPSW) | (v & CauseIPSW)
	case EPC:
		r.epc = v
	}
}

// Poke sets the value of any register, including those that are read only
// to the MTC0 instruction. Intended for debuggers.
func (r *Registers) Poke(reg int, v uint32) {
	switch reg {
	case BadVAddr:
		r.badVAddr = v
	case Cause:
		r.cause = v
	case PRId:
		r.prid = v
	default:
		r.Write(reg, v)
	}
}

// Tick increases the COUNT register by one.
func (r *Registers) Tick() {
	r.count++
}

// SampleInterrupts copies the state of the interrupt inputs into the hardware
// bits of the IP field. Bit zero of lines corresponds to interrupt level HW0.
func (r *Registers) SampleInterrupts(lines uint8) {
	hw := (uint32(lines) << (8 + exceptions.HW0)) & CauseIPHW
	r.cause = (r.cause &^ CauseIPHW) | hw
}

// InterruptPending returns true if an interrupt is pending, is not masked
// and interrupts are enabled.
func (r *Registers) InterruptPending() bool {
	if r.status&StatusIEc == 0 {
		return false
	}
	return r.cause&r.status&CauseIP != 0
}

// Vector returns the exception vector. The general vector is replaced with the
// bootstrap vector if the BEV bit is set.
func (r *Registers) Vector(general uint32) uint32 {
	if r.status&StatusBEV != 0 {
		return BootstrapVector
	}
	return general
}

// Enter updates the registers on entry to the exception handler.
//
// The mode bits in STATUS behave as a three entry stack of interrupt enable
// and kernel/user mode pairs. Entering an exception pushes a pair of zeroes,
// which disables interrupts and puts the core in kernel mode.
func (r *Registers) Enter(exc *exceptions.Exception, epc uint32, delaySlot bool) {
	mode := r.status & StatusMode
	r.status = (r.status &^ StatusMode) | ((mode << 2) & StatusMode)

	r.cause = (r.cause &^ (CauseExcCode | CauseBD)) | ((uint32(exc.Code) << 2) & CauseExcCode)
	if delaySlot {
		r.cause |= CauseBD
	}

	r.epc = epc

	if exc.HasBadAddr {
		r.badVAddr = exc.BadAddr
	}
}

// ReturnFromException pops the mode stack in the STATUS register. The oldest
// entry is left unchanged.
func (r *Registers) ReturnFromException() {
	mode := r.status & StatusMode
	r.status = (r.status &^ 0x0f) | (mode >> 2)
}

// ExcCode returns the ExcCode field of the CAUSE register.
func (r *Registers) ExcCode() exceptions.Code {
	return exceptions.Code((r.cause & CauseExcCode) >> 2)
}
