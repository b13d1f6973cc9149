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
	"github.com/socsim/socsim/curated"
	"github.com/socsim/socsim/hardware/cpu/decode"
)

// IsValid checks whether the instance of Result contains information that is
// internally consistent.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("execution: result not finalised")
	}

	if r.Frozen {
		if r.Retired || r.Exception != nil || r.Access != nil || r.BranchTaken {
			return curated.Errorf("execution: frozen cycle with side effects")
		}
		return nil
	}

	if r.Retired && !r.Fetched {
		return curated.Errorf("execution: instruction retired without being fetched")
	}

	if r.BranchTaken && !r.Class.IsFlowControl() {
		return curated.Errorf("execution: branch taken by non flow control instruction (%s)", r.Class)
	}

	if r.Access != nil && !r.Retired {
		return curated.Errorf("execution: memory access by cancelled instruction (%s)", r.Class)
	}

	if r.Class == decode.Reserved && r.Retired {
		return curated.Errorf("execution: reserved instruction retired")
	}

	if r.DoubleFault && r.Exception == nil {
		return curated.Errorf("execution: double fault without exception")
	}

	if r.InterruptDelayed && !r.BranchTaken {
		return curated.Errorf("execution: interrupt delayed without taken branch")
	}

	return nil
}
