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

package execution

import (
	"fmt"
	"strings"

	"github.com/socsim/socsim/hardware/cpu/decode"
	"github.com/socsim/socsim/hardware/cpu/exceptions"
	"github.com/socsim/socsim/hardware/cpu/registers"
	"github.com/socsim/socsim/hardware/memory/bus"
)

// Result records the outcome of a single cycle.
type Result struct {
	// the cycle number, taken from the COUNT register before the cycle is
	// executed
	Cycle uint32

	// the address of the instruction and the instruction word. the word is
	// only valid if Fetched is true
	Address uint32
	Word    decode.Instruction
	Class   decode.Class
	Fetched bool

	// the core was waiting for a memory response and nothing was executed
	Frozen bool

	// the instruction at Address has committed its effect
	Retired bool

	// the instruction is in a branch delay slot
	DelaySlot bool

	// the instruction is a branch or jump and the branch was taken
	BranchTaken bool

	// a load completed in this cycle
	Load registers.Bypass

	// the data request issued by the instruction
	Access *bus.Request

	// the exception taken at the end of this cycle and the value written to
	// EPC. nil if no exception was taken
	Exception *exceptions.Exception
	EPC       uint32

	// an interrupt was sensed but deferred to the following cycle because
	// the instruction was a taken branch
	InterruptDelayed bool

	// the exception was raised while executing the first instruction of an
	// exception handler
	DoubleFault bool

	// whether this data has been finalised
	Final bool
}

// Reset the result to its zero state.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("%08x ", r.Address))

	switch {
	case r.Frozen:
		s.WriteString("-------- frozen")
	case !r.Fetched:
		s.WriteString("????????        ")
	default:
		s.WriteString(fmt.Sprintf("%08x %-7s", uint32(r.Word), r.Class))
	}

	if r.DelaySlot {
		s.WriteString(" [ds]")
	}
	if r.BranchTaken {
		s.WriteString(" [taken]")
	}
	if r.Load.Valid {
		s.WriteString(fmt.Sprintf(" load %s", r.Load))
	}
	if r.Access != nil {
		s.WriteString(fmt.Sprintf(" mem %s", r.Access))
	}
	if r.InterruptDelayed {
		s.WriteString(" [int delayed]")
	}
	if r.Exception != nil {
		s.WriteString(fmt.Sprintf(" exception %s epc=%08x", r.Exception, r.EPC))
	}
	if r.DoubleFault {
		s.WriteString(" [double fault]")
	}

	return s.String()
}
