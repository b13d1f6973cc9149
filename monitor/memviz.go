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

package monitor

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/socsim/socsim/hardware/cpu/cop0"
)

// the view of a core that is rendered by memviz. the view is built from the
// debug interface of the core rather than from the core itself because the
// core refers to the preferences and the rest of the platform instance.
type coreView struct {
	Core      int
	Cycle     uint64
	PC        uint32
	NextPC    uint32
	Registers map[string]uint32
	Cop0      map[string]uint32
}

func (mon *Monitor) memviz(out io.Writer) error {
	mc := mon.plt.Cores[mon.core]

	v := &coreView{
		Core:      mon.core,
		Cycle:     mon.plt.Cycles(),
		PC:        mc.GetPC(),
		NextPC:    mc.GetNextPC(),
		Registers: make(map[string]uint32),
		Cop0: map[string]uint32{
			"status":   mc.GetCop0(cop0.Status),
			"cause":    mc.GetCop0(cop0.Cause),
			"epc":      mc.GetCop0(cop0.EPC),
			"badvaddr": mc.GetCop0(cop0.BadVAddr),
			"count":    mc.GetCop0(cop0.Count),
			"prid":     mc.GetCop0(cop0.PRId),
		},
	}

	for i := 0; i < mc.RegisterCount(); i++ {
		if r, ok := mc.GetRegister(i); ok {
			v.Registers[mc.RegisterName(i)] = r
		}
	}

	memviz.Map(out, v)

	return nil
}
