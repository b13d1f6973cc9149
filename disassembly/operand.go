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

package disassembly

import (
	"fmt"

	"github.com/socsim/socsim/hardware/cpu/cop0"
	"github.com/socsim/socsim/hardware/cpu/decode"
	"github.com/socsim/socsim/hardware/cpu/registers"
)

func reg(i int) string {
	return "$" + registers.Names[i]
}

func cop0Reg(i int) string {
	switch i {
	case cop0.BadVAddr:
		return "$badvaddr"
	case cop0.Count:
		return "$count"
	case cop0.Status:
		return "$sr"
	case cop0.Cause:
		return "$cause"
	case cop0.EPC:
		return "$epc"
	case cop0.PRId:
		return "$prid"
	}
	return fmt.Sprintf("$%d", i)
}

func simm(ins decode.Instruction) string {
	return fmt.Sprintf("%d", int32(ins.SImm()))
}

func operand(addr uint32, ins decode.Instruction, class decode.Class) string {
	switch class.Category() {
	case decode.CatReserved:
		return fmt.Sprintf(".word 0x%08x", uint32(ins))

	case decode.CatALU:
		return fmt.Sprintf("%s, %s, %s", reg(ins.Rd()), reg(ins.Rs()), reg(ins.Rt()))

	case decode.CatImmediate:
		switch class {
		case decode.LUI:
			return fmt.Sprintf("%s, 0x%04x", reg(ins.Rt()), ins.Imm())
		case decode.ANDI, decode.ORI, decode.XORI:
			return fmt.Sprintf("%s, %s, 0x%04x", reg(ins.Rt()), reg(ins.Rs()), ins.Imm())
		}
		return fmt.Sprintf("%s, %s, %s", reg(ins.Rt()), reg(ins.Rs()), simm(ins))

	case decode.CatShift:
		return fmt.Sprintf("%s, %s, %d", reg(ins.Rd()), reg(ins.Rt()), ins.Shamt())

	case decode.CatShiftVariable:
		return fmt.Sprintf("%s, %s, %s", reg(ins.Rd()), reg(ins.Rt()), reg(ins.Rs()))

	case decode.CatMulDiv:
		return fmt.Sprintf("%s, %s", reg(ins.Rs()), reg(ins.Rt()))

	case decode.CatHiLo:
		switch class {
		case decode.MFHI, decode.MFLO:
			return reg(ins.Rd())
		}
		return reg(ins.Rs())

	case decode.CatBranch:
		target := addr + 4 + ins.SImm()<<2
		switch class {
		case decode.BEQ, decode.BNE:
			return fmt.Sprintf("%s, %s, %08x", reg(ins.Rs()), reg(ins.Rt()), target)
		}
		return fmt.Sprintf("%s, %08x", reg(ins.Rs()), target)

	case decode.CatJump:
		return fmt.Sprintf("%08x", (addr+4)&0xf0000000|ins.Target()<<2)

	case decode.CatJumpRegister:
		if class == decode.JALR && ins.Rd() != registers.RA {
			return fmt.Sprintf("%s, %s", reg(ins.Rd()), reg(ins.Rs()))
		}
		return reg(ins.Rs())

	case decode.CatLoad, decode.CatStore:
		if class == decode.CACHE {
			return fmt.Sprintf("%d, %s(%s)", ins.Rt(), simm(ins), reg(ins.Rs()))
		}
		return fmt.Sprintf("%s, %s(%s)", reg(ins.Rt()), simm(ins), reg(ins.Rs()))

	case decode.CatTrap:
		if ins.Code() != 0 {
			return fmt.Sprintf("%d", ins.Code())
		}

	case decode.CatCop0:
		if class == decode.RFE {
			return ""
		}
		return fmt.Sprintf("%s, %s", reg(ins.Rt()), cop0Reg(ins.Rd()))
	}

	return ""
}
