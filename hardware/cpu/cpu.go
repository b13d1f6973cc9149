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
	"fmt"

	"github.com/socsim/socsim/hardware/cpu/cop0"
	"github.com/socsim/socsim/hardware/cpu/exceptions"
	"github.com/socsim/socsim/hardware/cpu/execution"
	"github.com/socsim/socsim/hardware/cpu/registers"
	"github.com/socsim/socsim/hardware/instance"
	"github.com/socsim/socsim/hardware/preferences"
)

// Sentinal errors.
const (
	DoubleFault = "cpu: double fault on core %d (%v at %08x)"
)

// CPU implements a single MIPS-I core.
type CPU struct {
	instance *instance.Instance

	// identifies the core in a multi-core platform. the lower eight bits are
	// visible in the PRId register
	ident int

	regs registers.File
	cp0  cop0.Registers

	// pc is the address of the instruction that is executed in the next
	// update phase. nextPC is the address of the instruction after that
	pc     uint32
	nextPC uint32

	// the instruction at pc is in a branch delay slot
	delaySlot bool

	// interrupt sensed in the same cycle as a taken branch. the interrupt
	// will be taken on the next non-frozen cycle
	interruptDelayed *exceptions.Exception

	seq sequencer

	// transaction ID of the instruction fetch for pc
	fetchID uint64

	// source of transaction IDs
	ids uint64

	// the instruction at pc is the first instruction of the exception handler
	atVector bool

	// values taken from the preferences on reset
	resetVector      uint32
	exceptionVector  uint32
	abortDoubleFault bool

	// the result of the most recent call to Update()
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// instance argument can be nil, in which case default preferences are used
// and the core is never initialised in a random state.
//
// The CPU must be reset before use.
func NewCPU(instance *instance.Instance, ident int) *CPU {
	return &CPU{
		instance: instance,
		ident:    ident,
	}
}

// Ident returns the identifier of the core.
func (mc *CPU) Ident() int {
	return mc.ident
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

func (mc *CPU) String() string {
	return fmt.Sprintf("pc=%08x next=%08x %s %s", mc.pc, mc.nextPC, mc.cp0.String(), mc.seq.String())
}

// Reset reinitialises all architectural state. Execution will start at the
// reset vector.
func (mc *CPU) Reset() {
	mc.resetVector = preferences.DefaultResetVector
	mc.exceptionVector = preferences.DefaultExceptionVector
	mc.abortDoubleFault = false
	prid := uint32(preferences.DefaultPRId)
	bigEndian := false

	mc.regs.Reset()

	// checking for instance == nil because it's possible for NewCPU to be
	// called with a nil instance (test package)
	if mc.instance != nil {
		p := mc.instance.Prefs
		mc.resetVector = p.ResetVector.Get().(uint32)
		mc.exceptionVector = p.ExceptionVector.Get().(uint32)
		mc.abortDoubleFault = p.AbortDoubleFault.Get().(bool)
		prid = uint32(p.PRId.Get().(int))
		bigEndian = p.BigEndian.Get().(bool)

		if p.RandomState.Get().(bool) {
			for i := 1; i < registers.NumGPR; i++ {
				mc.regs.Write(i, mc.instance.Random.Uint32(mc.randomKey(uint64(i))))
			}
		}
	}

	mc.cp0 = *cop0.NewRegisters((prid &^ 0xff) | uint32(mc.ident&0xff))

	mc.pc = mc.resetVector
	mc.nextPC = mc.pc + 4
	mc.delaySlot = false
	mc.interruptDelayed = nil
	mc.atVector = false
	mc.seq.reset(bigEndian)
	mc.fetchID = mc.newID()

	mc.LastResult.Reset()
}

// Cycles returns the value of the COUNT register. Implements the random.Clock
// interface.
func (mc *CPU) Cycles() uint64 {
	return uint64(mc.cp0.Read(cop0.Count))
}

func (mc *CPU) newID() uint64 {
	mc.ids++
	return mc.ids
}

// keys for the random number generator are unique to the core
func (mc *CPU) randomKey(n uint64) uint64 {
	return uint64(mc.ident)<<32 | n
}
