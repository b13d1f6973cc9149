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

// the core is always assumed to have access to coprocessor zero, whatever the
// mode of the processor.
func (mc *CPU) executeCop0(eff *effect, ins decode.Instruction, class decode.Class, rt uint32) {
	switch class {
	case decode.MFC0:
		eff.setReg(ins.Rt(), mc.cp0.Read(ins.Rd()))
	case decode.MTC0:
		eff.writeCop0 = true
		eff.cop0Reg = ins.Rd()
		eff.cop0Value = rt
	case decode.RFE:
		eff.rfe = true
	}
}
