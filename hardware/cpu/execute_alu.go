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
)

// add and subtract are performed with 33 bits of precision. if the result
// does not fit into 32 bits then the operation has overflowed.
func addOverflow(a uint32, b uint32) (uint32, bool) {
	r := int64(int32(a)) + int64(int32(b))
	return uint32(r), r != int64(int32(r))
}

func subOverflow(a uint32, b uint32) (uint32, bool) {
	r := int64(int32(a)) - int64(int32(b))
	return uint32(r), r != int64(int32(r))
}

func boolToUint32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func (mc *CPU) executeALU(eff *effect, ins decode.Instruction, class decode.Class, rs uint32, rt uint32) {
	var v uint32

	switch class {
	case decode.ADD:
		var overflow bool
		v, overflow = addOverflow(rs, rt)
		if overflow {
			eff.exception = exceptions.New(exceptions.Overflow)
			return
		}
	case decode.ADDU:
		v = rs + rt
	case decode.SUB:
		var overflow bool
		v, overflow = subOverflow(rs, rt)
		if overflow {
			eff.exception = exceptions.New(exceptions.Overflow)
			return
		}
	case decode.SUBU:
		v = rs - rt
	case decode.AND:
		v = rs & rt
	case decode.OR:
		v = rs | rt
	case decode.XOR:
		v = rs ^ rt
	case decode.NOR:
		v = ^(rs | rt)
	case decode.SLT:
		v = boolToUint32(int32(rs) < int32(rt))
	case decode.SLTU:
		v = boolToUint32(rs < rt)
	}

	eff.setReg(ins.Rd(), v)
}

func (mc *CPU) executeImmediate(eff *effect, ins decode.Instruction, class decode.Class, rs uint32) {
	var v uint32

	switch class {
	case decode.ADDI:
		var overflow bool
		v, overflow = addOverflow(rs, ins.SImm())
		if overflow {
			eff.exception = exceptions.New(exceptions.Overflow)
			return
		}
	case decode.ADDIU:
		v = rs + ins.SImm()
	case decode.SLTI:
		v = boolToUint32(int32(rs) < int32(ins.SImm()))
	case decode.SLTIU:
		// the immediate is sign extended but the comparison is unsigned
		v = boolToUint32(rs < ins.SImm())
	case decode.ANDI:
		v = rs & ins.Imm()
	case decode.ORI:
		v = rs | ins.Imm()
	case decode.XORI:
		v = rs ^ ins.Imm()
	case decode.LUI:
		v = ins.Imm() << 16
	}

	eff.setReg(ins.Rt(), v)
}

func (mc *CPU) executeShift(eff *effect, ins decode.Instruction, class decode.Class, rs uint32, rt uint32) {
	var v uint32

	switch class {
	case decode.SLL:
		v = rt << ins.Shamt()
	case decode.SRL:
		v = rt >> ins.Shamt()
	case decode.SRA:
		v = uint32(int32(rt) >> ins.Shamt())
	case decode.SLLV:
		v = rt << (rs & 0x1f)
	case decode.SRLV:
		v = rt >> (rs & 0x1f)
	case decode.SRAV:
		v = uint32(int32(rt) >> (rs & 0x1f))
	}

	eff.setReg(ins.Rd(), v)
}
