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

package hardware

import (
	"github.com/socsim/socsim/hardware/cpu"
	"github.com/socsim/socsim/hardware/memory/bus"
	"github.com/socsim/socsim/hardware/memory/ram"
)

// State stores the platform sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
type State struct {
	Cores       []*cpu.CPU
	Mem         *ram.RAM
	Interrupts  []uint8
	schedule    []InterruptEvent
	scheduleIdx int
	inputs      []bus.Inputs
	cycles      uint64
}

// Snapshot creates a copy of a previously snapshotted platform State.
func (s *State) Snapshot() *State {
	n := &State{
		Cores:       make([]*cpu.CPU, len(s.Cores)),
		Mem:         s.Mem.Snapshot(),
		Interrupts:  append([]uint8{}, s.Interrupts...),
		schedule:    append([]InterruptEvent{}, s.schedule...),
		scheduleIdx: s.scheduleIdx,
		inputs:      append([]bus.Inputs{}, s.inputs...),
		cycles:      s.cycles,
	}
	for i, mc := range s.Cores {
		n.Cores[i] = mc.Snapshot()
	}
	return n
}

// Snapshot the state of the platform sub-systems.
func (plt *Platform) Snapshot() *State {
	s := &State{
		Cores:       plt.Cores,
		Mem:         plt.Mem,
		Interrupts:  plt.Interrupts,
		schedule:    plt.schedule,
		scheduleIdx: plt.scheduleIdx,
		inputs:      plt.inputs,
		cycles:      plt.cycles,
	}
	return s.Snapshot()
}

// Plumb a previously snapshotted platform. The number of cores in the state
// must match the number of cores in the platform.
func (plt *Platform) Plumb(state *State) {
	if state == nil {
		panic("platform: cannot plumb in a nil state")
	}
	if len(state.Cores) != len(plt.Cores) {
		panic("platform: cannot plumb in a state with a different number of cores")
	}

	// take another snapshot of the state before plumbing. we don't want the
	// platform to change what we have stored in the state
	s := state.Snapshot()
	plt.Cores = s.Cores
	plt.Mem = s.Mem
	plt.Interrupts = s.Interrupts
	plt.schedule = s.schedule
	plt.scheduleIdx = s.scheduleIdx
	plt.inputs = s.inputs
	plt.cycles = s.cycles
}
