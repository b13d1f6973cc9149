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
	"github.com/socsim/socsim/hardware/memory/bus"
)

// executeMemory prepares the data access of loads and stores. the access is
// not issued if the address is not aligned to the size of the access.
func (mc *CPU) executeMemory(eff *effect, ins decode.Instruction, class decode.Class, rs uint32, rt uint32) {
	acc := &access{
		address: rs + ins.SImm(),
		dest:    ins.Rt(),
		data:    rt,
	}

	switch class {
	case decode.LB:
		acc.op, acc.size, acc.signed = bus.Read, bus.Byte, true
	case decode.LBU:
		acc.op, acc.size = bus.Read, bus.Byte
	case decode.LH:
		acc.op, acc.size, acc.signed = bus.Read, bus.Half, true
	case decode.LHU:
		acc.op, acc.size = bus.Read, bus.Half
	case decode.LW:
		acc.op, acc.size = bus.Read, bus.Word
	case decode.SB:
		acc.op, acc.size = bus.Write, bus.Byte
	case decode.SH:
		acc.op, acc.size = bus.Write, bus.Half
	case decode.SW:
		acc.op, acc.size = bus.Write, bus.Word
	case decode.CACHE:
		// the rt field selects the cache operation. there is only one
		// operation, which is an invalidation of the line containing the
		// address
		acc.op, acc.size, acc.data = bus.Invalidate, bus.Word, 0
	}

	if acc.op != bus.Invalidate && acc.address&uint32(acc.size-1) != 0 {
		code := exceptions.AddressErrorLoad
		if acc.op == bus.Write {
			code = exceptions.AddressErrorStore
		}
		eff.exception = exceptions.NewWithAddress(code, acc.address)
		return
	}

	eff.access = acc
}
