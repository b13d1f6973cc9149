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
	"github.com/socsim/socsim/hardware/cpu/registers"
)

// executeBranch handles all branch and jump instructions. the target address
// is relative to the address of the delay slot.
//
// the link forms of the instructions write the address of the instruction
// after the delay slot. the link register is written whether or not the
// branch is taken.
func (mc *CPU) executeBranch(eff *effect, ins decode.Instruction, class decode.Class, rs uint32, rt uint32) {
	eff.flowControl = true

	delaySlot := mc.pc + 4
	link := mc.pc + 8
	branch := delaySlot + ins.SImm()<<2

	switch class {
	case decode.BEQ:
		eff.taken, eff.target = rs == rt, branch
	case decode.BNE:
		eff.taken, eff.target = rs != rt, branch
	case decode.BLEZ:
		eff.taken, eff.target = int32(rs) <= 0, branch
	case decode.BGTZ:
		eff.taken, eff.target = int32(rs) > 0, branch
	case decode.BLTZ:
		eff.taken, eff.target = int32(rs) < 0, branch
	case decode.BGEZ:
		eff.taken, eff.target = int32(rs) >= 0, branch
	case decode.BLTZAL:
		eff.taken, eff.target = int32(rs) < 0, branch
		eff.setReg(registers.RA, link)
	case decode.BGEZAL:
		eff.taken, eff.target = int32(rs) >= 0, branch
		eff.setReg(registers.RA, link)
	case decode.J:
		eff.taken, eff.target = true, (delaySlot&0xf0000000)|(ins.Target()<<2)
	case decode.JAL:
		eff.taken, eff.target = true, (delaySlot&0xf0000000)|(ins.Target()<<2)
		eff.setReg(registers.RA, link)
	case decode.JR:
		eff.taken, eff.target = true, rs
	case decode.JALR:
		eff.taken, eff.target = true, rs
		eff.setReg(ins.Rd(), link)
	}
}
