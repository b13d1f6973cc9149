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

// Package cpu emulates a pipelined MIPS-I processor core, cycle by cycle.
//
// The core is advanced with a two-phase contract. Update() consumes the
// responses of the memory system and the state of the interrupt lines and
// commits the architectural effect of the cycle. Outputs() then reports the
// instruction fetch and data requests for the next cycle without changing
// any state. The two phases must be called alternately, starting with
// Outputs() after Reset().
//
//	mc.Reset()
//	for {
//		out := mc.Outputs()
//		in := memory.answer(out)
//		if err := mc.Update(in); err != nil {
//			break
//		}
//	}
//
// All branches and jumps have a single delay slot. The instruction in the delay
// slot is always executed, whether the branch is taken or not.
//
// A load instruction issues a data request that is answered in a later cycle.
// The loaded value is available to the instruction that is executed in the
// cycle the response arrives (see registers.Bypass). The core is frozen while
// a data request is outstanding. There is only ever one outstanding data
// request.
//
// Exceptions are taken at the end of the cycle in which they are raised. The
// STATUS, CAUSE, EPC and BADVADDR registers of coprocessor zero are set
// accordingly and the next instruction is fetched from the exception vector.
// An interrupt sensed in the same cycle as a taken branch is deferred until
// the delay slot has been executed.
//
// The LastResult field describes what happened in the most recent cycle.
package cpu
