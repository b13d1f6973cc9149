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
	"github.com/socsim/socsim/hardware/cpu/cop0"
	"github.com/socsim/socsim/hardware/cpu/decode"
	"github.com/socsim/socsim/hardware/cpu/exceptions"
	"github.com/socsim/socsim/hardware/cpu/registers"
	"github.com/socsim/socsim/hardware/memory/bus"
)

// Update is the state update phase of the cycle. The responses in the inputs
// answer the requests returned by the most recent call to Outputs().
//
// The order of priority in a cycle is:
//
//  1. bus error on the instruction fetch
//  2. bus error on the data access
//  3. freeze (a response has not yet arrived)
//  4. interrupt delayed from the previous cycle
//  5. newly sensed interrupt
//  6. exception raised by the instruction
//
// The returned error is only ever non-nil for an emulation fault that can not
// be represented architecturally. See the AbortDoubleFault preference.
func (mc *CPU) Update(in bus.Inputs) error {
	mc.LastResult.Reset()
	mc.LastResult.Cycle = mc.cp0.Read(cop0.Count)
	mc.LastResult.Address = mc.pc
	mc.LastResult.DelaySlot = mc.delaySlot

	// interrupt lines are sampled every cycle, even when frozen
	mc.cp0.SampleInterrupts(in.Interrupts)

	load, dataExc, dataWait := mc.seq.response(in.Data)
	fetchWait := !in.Instruction.Valid || in.Instruction.ID != mc.fetchID

	mc.LastResult.Load = load

	// a completed load is committed whatever else happens in the cycle. it
	// can not be cancelled because the instruction that caused it has already
	// retired
	doubleFault := mc.atVector

	if !fetchWait && in.Instruction.BusError {
		mc.regs.Commit(load)
		epc, bd := mc.preciseEPC()
		return mc.takeException(exceptions.NewWithAddress(exceptions.BusErrorInstruction, mc.pc), epc, bd, doubleFault)
	}

	if dataExc != nil {
		// the load that caused the error has already retired. the instruction
		// at pc is the one that would have been executed next but it has not
		// been executed, so EPC must still account for a delay slot
		epc, bd := mc.preciseEPC()
		return mc.takeException(dataExc, epc, bd, doubleFault)
	}

	if dataWait || fetchWait {
		mc.regs.Commit(load)
		mc.LastResult.Frozen = true
		mc.LastResult.Final = true
		return nil
	}

	mc.atVector = false

	// instruction fetch from an address that is not word aligned
	if mc.pc&0x03 != 0 {
		mc.regs.Commit(load)
		exc := exceptions.NewWithAddress(exceptions.AddressErrorLoad, mc.pc)
		epc, bd := mc.exceptionEPC(exc.Code)
		return mc.takeException(exc, epc, bd, doubleFault)
	}

	ins := decode.Instruction(in.Instruction.Word)
	class := decode.Decode(ins)
	mc.LastResult.Fetched = true
	mc.LastResult.Word = ins
	mc.LastResult.Class = class

	rs := mc.regs.ReadBypassed(ins.Rs(), load)
	rt := mc.regs.ReadBypassed(ins.Rt(), load)

	eff := mc.execute(ins, class, rs, rt)
	mc.LastResult.BranchTaken = eff.taken && eff.exception == nil

	if irq := mc.sensedInterrupt(); irq != nil {
		// the instruction is cancelled if it raised an exception of its own.
		// on return from the interrupt the instruction will be executed again
		if eff.exception != nil {
			mc.regs.Commit(load)
			epc, bd := mc.preciseEPC()
			return mc.takeException(irq, epc, bd, doubleFault)
		}

		// taking the interrupt now would lose the effect of the branch. the
		// interrupt is taken after the delay slot has been executed
		if eff.taken {
			mc.interruptDelayed = irq
			mc.LastResult.InterruptDelayed = true
			mc.commit(eff, load)
			mc.cp0.Tick()
			mc.LastResult.Final = true
			return nil
		}

		// the interrupt is taken after the instruction has committed. EPC is
		// the address of the instruction that would have been executed next
		mc.commit(eff, load)
		return mc.takeException(irq, mc.pc, false, doubleFault)
	}

	if eff.exception != nil {
		mc.regs.Commit(load)
		epc, bd := mc.exceptionEPC(eff.exception.Code)
		return mc.takeException(eff.exception, epc, bd, doubleFault)
	}

	mc.commit(eff, load)
	mc.cp0.Tick()
	mc.LastResult.Final = true

	return nil
}

// commit the effect of the instruction and advance the program counter. the
// completed load is committed before the writes of the instruction.
func (mc *CPU) commit(eff effect, load registers.Bypass) {
	mc.regs.Commit(load)

	if eff.writeReg {
		mc.regs.Write(eff.reg, eff.value)
	}
	if eff.writeHI {
		mc.regs.SetHI(eff.hi)
	}
	if eff.writeLO {
		mc.regs.SetLO(eff.lo)
	}
	if eff.writeCop0 {
		mc.cp0.Write(eff.cop0Reg, eff.cop0Value)
	}
	if eff.rfe {
		mc.cp0.ReturnFromException()
	}
	if eff.access != nil {
		mc.LastResult.Access = mc.seq.issue(*eff.access, mc.newID())
	}

	futureNextPC := mc.nextPC + 4
	if eff.taken {
		futureNextPC = eff.target
	}
	mc.pc = mc.nextPC
	mc.nextPC = futureNextPC
	mc.delaySlot = eff.flowControl
	mc.fetchID = mc.newID()

	mc.LastResult.Retired = true
}

// Outputs is the output phase of the cycle. It returns the instruction fetch
// request for the next instruction and the outstanding data request, if any.
//
// Outputs does not change the state of the core and can be called any number
// of times.
func (mc *CPU) Outputs() bus.Outputs {
	return bus.Outputs{
		Fetch: bus.Request{
			ID:      mc.fetchID,
			Op:      bus.Read,
			Size:    bus.Word,
			Address: mc.pc,
		},
		Data: mc.seq.request(),
	}
}
