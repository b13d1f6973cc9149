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

package hardware_test

import (
	"path/filepath"
	"testing"

	"github.com/socsim/socsim/curated"
	"github.com/socsim/socsim/govern"
	"github.com/socsim/socsim/hardware"
	"github.com/socsim/socsim/hardware/cpu"
	"github.com/socsim/socsim/hardware/cpu/cop0"
	"github.com/socsim/socsim/hardware/cpu/exceptions"
	"github.com/socsim/socsim/hardware/cpu/execution"
	"github.com/socsim/socsim/hardware/instance"
	"github.com/socsim/socsim/hardware/preferences"
	"github.com/socsim/socsim/prefs"
	"github.com/socsim/socsim/test"
)

const (
	bootOrigin    = 0xbfc00000
	handlerOrigin = 0x80000080
)

func newPlatform(t *testing.T, numCores int, configure func(p *preferences.Preferences)) *hardware.Platform {
	t.Helper()

	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)

	ins, err := instance.NewInstance(nil, p)
	test.DemandSuccess(t, err)
	ins.Normalise()

	if configure != nil {
		configure(p)
	}

	plt, err := hardware.NewPlatform(ins, numCores)
	test.DemandSuccess(t, err)

	_, err = plt.Mem.AddRegion("boot", bootOrigin, 0x1000, true)
	test.DemandSuccess(t, err)
	_, err = plt.Mem.AddRegion("kseg0", 0x80000000, 0x1000, false)
	test.DemandSuccess(t, err)
	_, err = plt.Mem.AddRegion("data", 0x00000000, 0x10000, false)
	test.DemandSuccess(t, err)

	put(t, plt, handlerOrigin, 0x08000000|(handlerOrigin>>2)&0x03ffffff, 0)

	return plt
}

func put(t *testing.T, plt *hardware.Platform, origin uint32, instructions ...uint32) {
	t.Helper()
	for _, w := range instructions {
		test.DemandSuccess(t, plt.Mem.PokeWord(origin, w))
		origin += 4
	}
}

func itype(op, rs, rt uint32, imm int16) uint32 {
	return op<<26 | rs<<21 | rt<<16 | uint32(uint16(imm))
}

func rtype(rs, rt, rd, shamt, funct uint32) uint32 {
	return rs<<21 | rt<<16 | rd<<11 | shamt<<6 | funct
}

func TestNumCores(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	ins, err := instance.NewInstance(nil, p)
	test.DemandSuccess(t, err)

	_, err = hardware.NewPlatform(ins, 0)
	test.ExpectSuccess(t, curated.Is(err, hardware.NumCores))
	_, err = hardware.NewPlatform(ins, hardware.MaxCores+1)
	test.ExpectSuccess(t, curated.Is(err, hardware.NumCores))
}

func TestMultiCore(t *testing.T) {
	plt := newPlatform(t, 4, nil)

	// every core writes its identifier plus one to a slot in memory
	put(t, plt, bootOrigin,
		itype(0x10, 0x00, 1, cop0.PRId<<11), // mfc0 $1, prid
		itype(0x0c, 1, 1, 0xff),             // andi $1, $1, 0xff
		rtype(0, 1, 2, 2, 0x00),             // sll $2, $1, 2
		itype(0x09, 1, 3, 1),                // addiu $3, $1, 1
		itype(0x2b, 2, 3, 0x100),            // sw $3, 0x100($2)
		0x0bf00005,                          // j bfc00014
		0,
	)
	plt.Reset()

	test.DemandSuccess(t, plt.RunForCycles(50, nil))
	test.ExpectEquality(t, plt.Cycles(), 50)

	for i := 0; i < 4; i++ {
		w, err := plt.Mem.PeekWord(0x100 + uint32(i)*4)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, w, uint32(i+1))

		mc, err := plt.Core(i)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, mc.GetCop0(cop0.PRId)&0xff, uint32(i))
	}

	_, err := plt.Core(4)
	test.ExpectSuccess(t, curated.Is(err, hardware.NoCore))
}

type retired struct {
	address uint32
	word    uint32
}

// the stream of retired instructions does not depend on the latency of memory
func TestLatencyTransparency(t *testing.T) {
	program := []uint32{
		itype(0x09, 0, 1, 0),     // addiu $1, $0, 0
		itype(0x09, 0, 2, 0x200), // addiu $2, $0, 0x200
		itype(0x2b, 2, 1, 0),     // loop: sw $1, 0($2)
		itype(0x23, 2, 3, 0),     // lw $3, 0($2)
		rtype(4, 3, 4, 0, 0x21),  // addu $4, $4, $3
		itype(0x09, 1, 1, 1),     // addiu $1, $1, 1
		itype(0x0b, 1, 6, 10),    // sltiu $6, $1, 10
		itype(0x05, 6, 0, -6),    // bne $6, $0, loop
		itype(0x09, 2, 2, 4),     // addiu $2, $2, 4
		0x0bf00009,               // j bfc00024
		0,
	}

	const numRetired = 100

	run := func(latency int) ([]retired, uint32) {
		plt := newPlatform(t, 1, nil)
		put(t, plt, bootOrigin, program...)
		test.DemandSuccess(t, plt.Mem.SetLatency(0, latency))
		test.DemandSuccess(t, plt.Mem.SetLatency(1, latency))
		plt.Reset()

		var stream []retired
		record := func(core int, r *execution.Result) error {
			test.ExpectSuccess(t, r.IsValid())
			if r.Retired {
				stream = append(stream, retired{address: r.Address, word: uint32(r.Word)})
			}
			return nil
		}

		for i := 0; i < numRetired*10 && len(stream) < numRetired; i++ {
			test.DemandSuccess(t, plt.Step(record))
		}
		test.DemandEquality(t, len(stream), numRetired, latency)

		sum, _ := plt.Cores[0].GetRegister(4)
		return stream, sum
	}

	expected, sum := run(0)
	test.ExpectEquality(t, sum, 45)

	for _, latency := range []int{1, 3, 7} {
		stream, s := run(latency)
		test.ExpectEquality(t, s, sum, latency)
		for i := range expected {
			if !test.ExpectEquality(t, stream[i], expected[i], latency, i) {
				break
			}
		}
	}
}

func TestInterruptSchedule(t *testing.T) {
	plt := newPlatform(t, 2, nil)
	put(t, plt, bootOrigin,
		itype(0x09, 0, 1, 0x0401),           // addiu $1, $0, 0x401
		itype(0x10, 0x04, 1, cop0.Status<<11), // mtc0 $1, status
		0x0bf00002,                          // j bfc00008
		0,
	)
	plt.Reset()

	test.DemandSuccess(t, plt.Schedule(hardware.InterruptEvent{Cycle: 10, Core: 1, Lines: 0x01}))
	test.ExpectSuccess(t, curated.Is(plt.Schedule(hardware.InterruptEvent{Core: 2}), hardware.NoCore))

	var taken []int
	record := func(core int, r *execution.Result) error {
		if r.Exception != nil && r.Exception.Code == exceptions.Interrupt {
			taken = append(taken, core)
		}
		return nil
	}

	for i := 0; i < 20; i++ {
		test.DemandSuccess(t, plt.Step(record))
	}

	// only core one is interrupted and only once because the handler runs
	// with interrupts disabled
	test.DemandEquality(t, len(taken), 1)
	test.ExpectEquality(t, taken[0], 1)
	test.ExpectEquality(t, plt.Interrupts[1], 0x01)
	test.ExpectEquality(t, plt.Interrupts[0], 0x00)

	// reset clears the interrupt lines
	plt.Reset()
	test.ExpectEquality(t, plt.Interrupts[1], 0x00)

	// the schedule is kept by the reset and is played again
	for i := 0; i < 20; i++ {
		test.DemandSuccess(t, plt.Step(record))
	}
	test.DemandEquality(t, len(taken), 2)
	test.ExpectEquality(t, taken[1], 1)

	// an event scheduled for a cycle that has passed is applied by the next
	// step
	test.DemandSuccess(t, plt.Schedule(hardware.InterruptEvent{Cycle: 5, Core: 0, Lines: 0x02}))
	test.DemandSuccess(t, plt.Step(record))
	test.ExpectEquality(t, plt.Interrupts[0], 0x02)
}

func TestRun(t *testing.T) {
	plt := newPlatform(t, 1, nil)
	put(t, plt, bootOrigin, 0x0bf00000, 0) // j bfc00000
	plt.Reset()

	var n int
	err := plt.Run(func() (govern.State, error) {
		n++
		if n >= 25 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, plt.Cycles(), 25)

	err = plt.Run(func() (govern.State, error) {
		return govern.Stepping, nil
	})
	test.ExpectSuccess(t, curated.Is(err, hardware.UnsupportedState))

	// RunForCycles can be ended early
	err = plt.RunForCycles(100, func(cycle uint64) (govern.State, error) {
		if cycle == 30 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, plt.Cycles(), 30)

	// the cycle callback is called for every core on every cycle
	var calls int
	plt.CycleCallback = func(core int, r *execution.Result) error {
		calls++
		return nil
	}
	test.ExpectSuccess(t, plt.RunForCycles(10, nil))
	test.ExpectEquality(t, calls, 10)
}

func TestCoreFault(t *testing.T) {
	plt := newPlatform(t, 1, func(p *preferences.Preferences) {
		p.ExceptionVector.Set(uint32(0x10000000))
		p.AbortDoubleFault.Set(true)
	})
	put(t, plt, bootOrigin, 0x0000000c) // syscall
	plt.Reset()

	err := plt.RunForCycles(10, nil)
	test.ExpectSuccess(t, curated.Is(err, hardware.CoreFault))
	test.ExpectSuccess(t, curated.Has(err, cpu.DoubleFault))
}

func TestStepError(t *testing.T) {
	plt := newPlatform(t, 2, nil)
	put(t, plt, bootOrigin, 0x0bf00000, 0) // j bfc00000
	plt.Reset()

	test.DemandSuccess(t, plt.Step(nil))
	state := plt.Snapshot()

	err := plt.Step(func(core int, r *execution.Result) error {
		return curated.Errorf("stopped by core %d", core)
	})
	test.ExpectSuccess(t, curated.Is(err, "stopped by core %d"))

	// the cycle is incomplete. only the first core has been updated
	test.ExpectEquality(t, plt.Cycles(), 1)
	test.ExpectEquality(t, plt.Cores[0].GetPC(), bootOrigin)
	test.ExpectEquality(t, plt.Cores[1].GetPC(), bootOrigin+4)

	plt.Plumb(state)
	test.DemandSuccess(t, plt.Step(nil))
	test.ExpectEquality(t, plt.Cycles(), 2)
	test.ExpectEquality(t, plt.Cores[0].GetPC(), bootOrigin)
	test.ExpectEquality(t, plt.Cores[1].GetPC(), bootOrigin)
}

func TestSnapshot(t *testing.T) {
	plt := newPlatform(t, 1, nil)
	put(t, plt, bootOrigin,
		itype(0x09, 1, 1, 1),     // addiu $1, $1, 1
		itype(0x2b, 0, 1, 0x100), // sw $1, 0x100($0)
		0x0bf00000,               // j bfc00000
		0,
	)
	plt.Reset()

	test.DemandSuccess(t, plt.RunForCycles(10, nil))
	state := plt.Snapshot()
	r1, _ := plt.Cores[0].GetRegister(1)
	w, _ := plt.Mem.PeekWord(0x100)

	test.DemandSuccess(t, plt.RunForCycles(40, nil))
	test.ExpectEquality(t, plt.Cycles(), 50)
	r1After, _ := plt.Cores[0].GetRegister(1)
	test.ExpectInequality(t, r1After, r1)

	plt.Plumb(state)
	test.ExpectEquality(t, plt.Cycles(), 10)
	v, _ := plt.Cores[0].GetRegister(1)
	test.ExpectEquality(t, v, r1)
	x, _ := plt.Mem.PeekWord(0x100)
	test.ExpectEquality(t, x, w)

	// the plumbed state continues exactly as the original
	test.DemandSuccess(t, plt.RunForCycles(40, nil))
	v, _ = plt.Cores[0].GetRegister(1)
	test.ExpectEquality(t, v, r1After)

	// the state is not changed by running the plumbed platform
	plt.Plumb(state)
	test.ExpectEquality(t, plt.Cycles(), 10)
}
