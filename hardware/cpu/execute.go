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
	"github.com/socsim/socsim/hardware/cpu/decode"
	"github.com/socsim/socsim/hardware/cpu/exceptions"
	"github.com/socsim/socsim/logger"
)

// effect is the architectural effect of a single instruction. it is computed
// by execute() and committed at the end of the cycle unless the instruction is
// cancelled by an exception.
type effect struct {
	// general purpose register write
	writeReg bool
	reg      int
	value    uint32

	// HI/LO writes
	writeHI bool
	writeLO bool
	hi      uint32
	lo      uint32

	// coprocessor zero
	writeCop0 bool
	cop0Reg   int
	cop0Value uint32
	rfe       bool

	// branches and jumps. flowControl is true for every branch or jump
	// whether or not the branch is taken
	flowControl bool
	taken       bool
	target      uint32

	// data access
	access *access

	// synchronous exception raised by the instruction
	exception *exceptions.Exception
}

func (eff *effect) setReg(reg int, v uint32) {
	eff.writeReg = true
	eff.reg = reg
	eff.value = v
}

// execute computes the effect of the instruction. the rs and rt arguments are
// the values of the source registers after bypassing.
//
// the function does not change the state of the CPU.
func (mc *CPU) execute(ins decode.Instruction, class decode.Class, rs uint32, rt uint32) effect {
	var eff effect

	switch class {
	case decode.Reserved:
		eff.exception = exceptions.New(exceptions.ReservedInstruction)

	case decode.ADD, decode.ADDU, decode.SUB, decode.SUBU,
		decode.AND, decode.OR, decode.XOR, decode.NOR,
		decode.SLT, decode.SLTU:
		mc.executeALU(&eff, ins, class, rs, rt)

	case decode.ADDI, decode.ADDIU, decode.SLTI, decode.SLTIU,
		decode.ANDI, decode.ORI, decode.XORI, decode.LUI:
		mc.executeImmediate(&eff, ins, class, rs)

	case decode.SLL, decode.SRL, decode.SRA,
		decode.SLLV, decode.SRLV, decode.SRAV:
		mc.executeShift(&eff, ins, class, rs, rt)

	case decode.MULT, decode.MULTU, decode.DIV, decode.DIVU,
		decode.MFHI, decode.MTHI, decode.MFLO, decode.MTLO:
		mc.executeMulDiv(&eff, ins, class, rs, rt)

	case decode.BEQ, decode.BNE, decode.BLEZ, decode.BGTZ,
		decode.BLTZ, decode.BGEZ, decode.BLTZAL, decode.BGEZAL,
		decode.J, decode.JAL, decode.JR, decode.JALR:
		mc.executeBranch(&eff, ins, class, rs, rt)

	case decode.LB, decode.LH, decode.LW, decode.LBU, decode.LHU,
		decode.SB, decode.SH, decode.SW, decode.CACHE:
		mc.executeMemory(&eff, ins, class, rs, rt)

	case decode.MFC0, decode.MTC0, decode.RFE:
		mc.executeCop0(&eff, ins, class, rt)

	case decode.SYSCALL:
		eff.exception = exceptions.New(exceptions.Syscall)

	case decode.BREAK:
		eff.exception = exceptions.New(exceptions.Breakpoint)

	default:
		// every class returned by decode.Decode() is handled above. reaching
		// this point means the decode tables and the execute engine disagree
		logger.Logf(logger.Allow, "cpu", "unhandled instruction class: %s", class)
		eff.exception = exceptions.New(exceptions.ReservedInstruction)
	}

	return eff
}
