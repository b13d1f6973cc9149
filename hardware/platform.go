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
	"fmt"
	"sort"
	"strings"

	"github.com/socsim/socsim/curated"
	"github.com/socsim/socsim/hardware/cpu"
	"github.com/socsim/socsim/hardware/cpu/execution"
	"github.com/socsim/socsim/hardware/instance"
	"github.com/socsim/socsim/hardware/memory/bus"
	"github.com/socsim/socsim/hardware/memory/ram"
	"github.com/socsim/socsim/logger"
)

// Sentinal errors.
const (
	NumCores  = "platform: unsupported number of cores (%d)"
	CoreFault = "platform: core %d: %v"
	NoCore    = "platform: no such core (%d)"
)

// MaxCores is the maximum number of cores in a platform. The core identifier
// is visible in the low byte of the PRId register.
const MaxCores = 256

// InterruptEvent changes the interrupt lines of a core at a specific cycle.
type InterruptEvent struct {
	Cycle uint64
	Core  int
	Lines uint8
}

func (ev InterruptEvent) String() string {
	return fmt.Sprintf("cycle %d: core %d lines=%06b", ev.Cycle, ev.Core, ev.Lines)
}

// Platform is the simulated system.
type Platform struct {
	Instance *instance.Instance

	Cores []*cpu.CPU
	Mem   *ram.RAM

	// interrupt lines of each core. the lines can be changed directly
	// between calls to Step() or through the interrupt schedule
	Interrupts []uint8

	// ordered by cycle. events before scheduleIdx have been applied since the
	// last reset
	schedule    []InterruptEvent
	scheduleIdx int

	// responses to the outputs of each core. used in the next update phase
	inputs []bus.Inputs

	// number of cycles since reset
	cycles uint64

	// called for every core on every cycle by Run() and RunForCycles(). can
	// be nil
	CycleCallback func(core int, r *execution.Result) error
}

// NewPlatform creates a new platform with the specified number of cores. The
// memory has no regions and must be populated before the platform is reset.
//
// The Random field of the instance is plumbed into the platform. The random
// number generator will be keyed on the cycle count of the platform.
func NewPlatform(ins *instance.Instance, numCores int) (*Platform, error) {
	if numCores < 1 || numCores > MaxCores {
		return nil, curated.Errorf(NumCores, numCores)
	}

	plt := &Platform{
		Instance:   ins,
		Cores:      make([]*cpu.CPU, numCores),
		Interrupts: make([]uint8, numCores),
		inputs:     make([]bus.Inputs, numCores),
	}

	// every core has an instruction port and a data port
	plt.Mem = ram.NewRAM(numCores*2, ins.Prefs.BigEndian.Get().(bool))

	for i := range plt.Cores {
		plt.Cores[i] = cpu.NewCPU(ins, i)
	}

	ins.Random.Plumb(plt)

	return plt, nil
}

func (plt *Platform) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("cycle %d\n", plt.cycles))
	for _, mc := range plt.Cores {
		s.WriteString(fmt.Sprintf("core %d: %s\n", mc.Ident(), mc.String()))
	}
	for _, r := range plt.Mem.Regions() {
		s.WriteString(r.String())
		s.WriteString("\n")
	}
	return s.String()
}

// Cycles returns the number of cycles since the last reset. Implements the
// random.Clock interface.
func (plt *Platform) Cycles() uint64 {
	return plt.cycles
}

// Core returns the core with the identifier.
func (plt *Platform) Core(ident int) (*cpu.CPU, error) {
	if ident < 0 || ident >= len(plt.Cores) {
		return nil, curated.Errorf(NoCore, ident)
	}
	return plt.Cores[ident], nil
}

// Schedule adds an event to the interrupt schedule.
func (plt *Platform) Schedule(ev InterruptEvent) error {
	if ev.Core < 0 || ev.Core >= len(plt.Cores) {
		return curated.Errorf(NoCore, ev.Core)
	}
	plt.schedule = append(plt.schedule, ev)

	// applied events are not sorted. an event for a cycle that has already
	// passed is applied on the next call to Step()
	pending := plt.schedule[plt.scheduleIdx:]
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Cycle < pending[j].Cycle
	})
	return nil
}

// Reset every core and forget all memory transactions in progress. The
// content of memory and the interrupt schedule are preserved.
func (plt *Platform) Reset() {
	plt.cycles = 0
	plt.scheduleIdx = 0
	plt.Mem.Reset()
	for i, mc := range plt.Cores {
		mc.Reset()
		plt.Interrupts[i] = 0
	}
	plt.service()
}

// Resync discards the responses prepared for the next cycle and asks memory
// again. Should be called after the state of a core has been changed outside
// of the Step() function, for example with SetPC().
func (plt *Platform) Resync() {
	plt.service()
}

// service collects the outputs of every core and gives them to memory. the
// responses are stored for the next call to Step().
func (plt *Platform) service() {
	for i, mc := range plt.Cores {
		out := mc.Outputs()
		plt.inputs[i].Instruction = plt.Mem.Service(i*2, out.Fetch)
		if out.Data != nil {
			plt.inputs[i].Data = plt.Mem.Service(i*2+1, *out.Data)
		} else {
			plt.inputs[i].Data = bus.Response{}
		}
	}
}

func (plt *Platform) applySchedule() {
	for plt.scheduleIdx < len(plt.schedule) {
		ev := plt.schedule[plt.scheduleIdx]
		if ev.Cycle > plt.cycles {
			break
		}
		plt.Interrupts[ev.Core] = ev.Lines
		logger.Logf(logger.Allow, "platform", "interrupt event: %s", ev)
		plt.scheduleIdx++
	}
}

// Step advances the platform by one cycle. The cycleCallback function is
// called after the update phase of every core and can be nil.
//
// The cores are updated in order. If a core or the cycleCallback returns an
// error then the cycle is left incomplete: the cores before it have been
// updated, the cores after it have not, the cycle count is unchanged and
// memory has not been serviced. The platform should be restored with Plumb()
// or Reset() before it is stepped again.
func (plt *Platform) Step(cycleCallback func(core int, r *execution.Result) error) error {
	plt.applySchedule()

	for i, mc := range plt.Cores {
		in := plt.inputs[i]
		in.Interrupts = plt.Interrupts[i]

		if err := mc.Update(in); err != nil {
			return curated.Errorf(CoreFault, i, err)
		}

		if cycleCallback != nil {
			if err := cycleCallback(i, &mc.LastResult); err != nil {
				return err
			}
		}
	}

	plt.cycles++
	plt.service()

	return nil
}
