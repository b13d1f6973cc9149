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

package cpu

import (
	"github.com/socsim/socsim/curated"
	"github.com/socsim/socsim/hardware/cpu/exceptions"
	"github.com/socsim/socsim/logger"
)

// preciseEPC returns the value of EPC for an exception that is reported
// against the instruction at pc. if the instruction is in a delay slot then
// EPC is the address of the branch and the BD bit of CAUSE must be set.
func (mc *CPU) preciseEPC() (uint32, bool) {
	if mc.delaySlot {
		return mc.pc - 4, true
	}
	return mc.pc, false
}

// exceptionEPC returns the value of EPC for an exception raised by the
// instruction at pc. none of the effects of the instruction are committed.
//
// an imprecise exception is reported against the address that would have
// been fetched next. an instruction that raises an exception is never a taken
// branch so that address is always nextPC.
func (mc *CPU) exceptionEPC(code exceptions.Code) (uint32, bool) {
	if code.Precise() {
		return mc.preciseEPC()
	}
	return mc.nextPC, false
}

// sensedInterrupt returns the interrupt to be taken in this cycle, if any. A
// previously delayed interrupt has priority over a newly sensed interrupt.
func (mc *CPU) sensedInterrupt() *exceptions.Exception {
	if mc.interruptDelayed != nil {
		irq := mc.interruptDelayed
		mc.interruptDelayed = nil
		return irq
	}
	if mc.cp0.InterruptPending() {
		return exceptions.New(exceptions.Interrupt)
	}
	return nil
}

// takeException commits the exception. control passes to the exception vector.
//
// the doubleFault argument indicates that the exception was raised by the
// first instruction of the exception handler. such an exception is taken like
// any other unless the AbortDoubleFault preference is set, in which case the
// state of the core is left unchanged and an error is returned.
func (mc *CPU) takeException(exc *exceptions.Exception, epc uint32, delaySlot bool, doubleFault bool) error {
	mc.LastResult.Exception = exc
	mc.LastResult.EPC = epc
	mc.LastResult.Final = true

	if doubleFault {
		mc.LastResult.DoubleFault = true
		logger.Logf(logger.Allow, "cpu", "core %d: double fault (%v at %08x)", mc.ident, exc, mc.pc)
		if mc.abortDoubleFault {
			return curated.Errorf(DoubleFault, mc.ident, exc, mc.pc)
		}
	}

	mc.cp0.Enter(exc, epc, delaySlot)

	vector := mc.cp0.Vector(mc.exceptionVector)
	mc.pc = vector
	mc.nextPC = vector + 4
	mc.delaySlot = false
	mc.fetchID = mc.newID()
	mc.atVector = true

	// a delayed interrupt is forgotten. it will be sensed again after the
	// handler has returned if the interrupt line is still active
	mc.interruptDelayed = nil

	mc.cp0.Tick()

	return nil
}
