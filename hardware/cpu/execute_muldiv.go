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
)

func (mc *CPU) executeMulDiv(eff *effect, ins decode.Instruction, class decode.Class, rs uint32, rt uint32) {
	switch class {
	case decode.MULT:
		p := uint64(int64(int32(rs)) * int64(int32(rt)))
		eff.writeHI, eff.writeLO = true, true
		eff.hi, eff.lo = uint32(p>>32), uint32(p)

	case decode.MULTU:
		p := uint64(rs) * uint64(rt)
		eff.writeHI, eff.writeLO = true, true
		eff.hi, eff.lo = uint32(p>>32), uint32(p)

	case decode.DIV:
		eff.writeHI, eff.writeLO = true, true
		if rt == 0 {
			eff.hi, eff.lo = mc.divideByZero(rs, true)
			return
		}

		// dividing the most negative number by minus one overflows. go
		// defines the result of the overflow to be the dividend with a
		// remainder of zero, which is also what the hardware produces
		n, d := int32(rs), int32(rt)
		eff.hi, eff.lo = uint32(n%d), uint32(n/d)

	case decode.DIVU:
		eff.writeHI, eff.writeLO = true, true
		if rt == 0 {
			eff.hi, eff.lo = mc.divideByZero(rs, false)
			return
		}
		eff.hi, eff.lo = rs%rt, rs/rt

	case decode.MFHI:
		eff.setReg(ins.Rd(), mc.regs.HI())

	case decode.MFLO:
		eff.setReg(ins.Rd(), mc.regs.LO())

	case decode.MTHI:
		eff.writeHI = true
		eff.hi = rs

	case decode.MTLO:
		eff.writeLO = true
		eff.lo = rs
	}
}

// divideByZero returns the values of HI and LO after a division by zero. the
// result is undefined so the values are taken from the random number
// generator of the instance.
//
// without an instance the values are those produced by the R3000: the
// dividend in HI and a quotient of -1 (or +1 for a negative dividend of a
// signed division) in LO.
func (mc *CPU) divideByZero(rs uint32, signed bool) (uint32, uint32) {
	if mc.instance != nil {
		return mc.instance.Random.Uint32(mc.randomKey(0x100)), mc.instance.Random.Uint32(mc.randomKey(0x101))
	}
	if signed && int32(rs) < 0 {
		return rs, 1
	}
	return rs, 0xffffffff
}
