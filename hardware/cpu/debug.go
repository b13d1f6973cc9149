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
	"github.com/socsim/socsim/hardware/cpu/registers"
)

// the debug registers are numbered in the order used by the GDB remote
// protocol for MIPS targets. the registers after DebugPC are not part of that
// protocol.
const (
	DebugStatus   = registers.NumGPR
	DebugLO       = registers.NumGPR + 1
	DebugHI       = registers.NumGPR + 2
	DebugBadVAddr = registers.NumGPR + 3
	DebugCause    = registers.NumGPR + 4
	DebugPC       = registers.NumGPR + 5
	DebugEPC      = registers.NumGPR + 6
	DebugCount    = registers.NumGPR + 7
	DebugNextPC   = registers.NumGPR + 8

	NumDebugRegisters = registers.NumGPR + 9
)

// RegisterCount returns the number of registers accessible through the
// GetRegister() and SetRegister() functions.
func (mc *CPU) RegisterCount() int {
	return NumDebugRegisters
}

// RegisterName returns the name of the debug register.
func (mc *CPU) RegisterName(i int) string {
	switch {
	case i >= 0 && i < registers.NumGPR:
		return registers.Names[i]
	case i == DebugStatus:
		return "sr"
	case i == DebugLO:
		return "lo"
	case i == DebugHI:
		return "hi"
	case i == DebugBadVAddr:
		return "bad"
	case i == DebugCause:
		return "cause"
	case i == DebugPC:
		return "pc"
	case i == DebugEPC:
		return "epc"
	case i == DebugCount:
		return "count"
	case i == DebugNextPC:
		return "npc"
	}
	return ""
}

// GetRegister returns the value of the debug register. Returns false if the
// register does not exist.
func (mc *CPU) GetRegister(i int) (uint32, bool) {
	switch {
	case i >= 0 && i < registers.NumGPR:
		return mc.regs.Read(i), true
	case i == DebugStatus:
		return mc.cp0.Read(cop0.Status), true
	case i == DebugLO:
		return mc.regs.LO(), true
	case i == DebugHI:
		return mc.regs.HI(), true
	case i == DebugBadVAddr:
		return mc.cp0.Read(cop0.BadVAddr), true
	case i == DebugCause:
		return mc.cp0.Read(cop0.Cause), true
	case i == DebugPC:
		return mc.pc, true
	case i == DebugEPC:
		return mc.cp0.Read(cop0.EPC), true
	case i == DebugCount:
		return mc.cp0.Read(cop0.Count), true
	case i == DebugNextPC:
		return mc.nextPC, true
	}
	return 0, false
}

// SetRegister changes the value of the debug register without going through
// the normal execution of the core. Returns false if the register does not
// exist.
func (mc *CPU) SetRegister(i int, v uint32) bool {
	switch {
	case i >= 0 && i < registers.NumGPR:
		mc.regs.Write(i, v)
	case i == DebugStatus:
		mc.cp0.Poke(cop0.Status, v)
	case i == DebugLO:
		mc.regs.SetLO(v)
	case i == DebugHI:
		mc.regs.SetHI(v)
	case i == DebugBadVAddr:
		mc.cp0.Poke(cop0.BadVAddr, v)
	case i == DebugCause:
		mc.cp0.Poke(cop0.Cause, v)
	case i == DebugPC:
		mc.SetPC(v)
	case i == DebugEPC:
		mc.cp0.Poke(cop0.EPC, v)
	case i == DebugCount:
		mc.cp0.Poke(cop0.Count, v)
	case i == DebugNextPC:
		mc.nextPC = v
	default:
		return false
	}
	return true
}

// GetCop0 returns the value of the coprocessor zero register.
func (mc *CPU) GetCop0(reg int) uint32 {
	return mc.cp0.Read(reg)
}

// SetCop0 changes the value of the coprocessor zero register. Registers that
// are read only to the MTC0 instruction can be changed.
func (mc *CPU) SetCop0(reg int, v uint32) {
	mc.cp0.Poke(reg, v)
}

// GetPC returns the address of the next instruction to be executed.
func (mc *CPU) GetPC() uint32 {
	return mc.pc
}

// GetNextPC returns the address of the instruction that follows the next
// instruction to be executed.
func (mc *CPU) GetNextPC() uint32 {
	return mc.nextPC
}

// SetPC changes the address of the next instruction to be executed. The
// instruction is not in a delay slot and execution continues sequentially
// from the new address.
func (mc *CPU) SetPC(addr uint32) {
	mc.pc = addr
	mc.nextPC = addr + 4
	mc.delaySlot = false
	mc.fetchID = mc.newID()
}

// InterruptDelayed returns true if an interrupt has been deferred until the
// next cycle.
func (mc *CPU) InterruptDelayed() bool {
	return mc.interruptDelayed != nil
}
