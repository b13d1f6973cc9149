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

package cpu_test

import (
	"path/filepath"
	"testing"

	"github.com/socsim/socsim/hardware/cpu"
	"github.com/socsim/socsim/hardware/instance"
	"github.com/socsim/socsim/hardware/memory/bus"
	"github.com/socsim/socsim/hardware/memory/ram"
	"github.com/socsim/socsim/hardware/preferences"
	"github.com/socsim/socsim/prefs"
	"github.com/socsim/socsim/test"
)

const (
	bootOrigin    = 0xbfc00000
	handlerOrigin = 0x80000080
	dataOrigin    = 0x00000000
)

const (
	fetchPort = 0
	dataPort  = 1
)

// harness connects a single core to a RAM instance.
type harness struct {
	t          *testing.T
	mc         *cpu.CPU
	mem        *ram.RAM
	interrupts uint8
}

func newHarness(t *testing.T, configure func(p *preferences.Preferences)) *harness {
	t.Helper()

	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	if configure != nil {
		configure(p)
	}

	ins, err := instance.NewInstance(nil, p)
	test.DemandSuccess(t, err)
	ins.Random.ZeroSeed = true

	mc := cpu.NewCPU(ins, 0)
	ins.Random.Plumb(mc)

	return attachMemory(t, mc, p.BigEndian.Get().(bool))
}

// newBareHarness creates a harness for a core without an instance.
func newBareHarness(t *testing.T) *harness {
	t.Helper()
	return attachMemory(t, cpu.NewCPU(nil, 0), false)
}

func attachMemory(t *testing.T, mc *cpu.CPU, bigEndian bool) *harness {
	t.Helper()

	mem := ram.NewRAM(2, bigEndian)
	_, err := mem.AddRegion("boot", bootOrigin, 0x1000, false)
	test.DemandSuccess(t, err)
	_, err = mem.AddRegion("kseg0", 0x80000000, 0x1000, false)
	test.DemandSuccess(t, err)
	_, err = mem.AddRegion("data", dataOrigin, 0x10000, false)
	test.DemandSuccess(t, err)

	h := &harness{t: t, mc: mc, mem: mem}

	// the exception handler loops on itself unless a test replaces it
	h.put(handlerOrigin, j(handlerOrigin), nop())

	mc.Reset()

	return h
}

// put instructions into memory. returns the address after the last
// instruction.
func (h *harness) put(origin uint32, instructions ...uint32) uint32 {
	h.t.Helper()
	for _, w := range instructions {
		test.DemandSuccess(h.t, h.mem.PokeWord(origin, w))
		origin += 4
	}
	return origin
}

// step runs one cycle of the core.
func (h *harness) step() error {
	out := h.mc.Outputs()
	in := bus.Inputs{
		Interrupts:  h.interrupts,
		Instruction: h.mem.Service(fetchPort, out.Fetch),
	}
	if out.Data != nil {
		in.Data = h.mem.Service(dataPort, *out.Data)
	}
	return h.mc.Update(in)
}

// run the number of cycles. the test fails on the first error.
func (h *harness) run(cycles int) {
	h.t.Helper()
	for i := 0; i < cycles; i++ {
		test.DemandSuccess(h.t, h.step())
	}
}

// runTo runs the core until the next instruction to be executed is at the
// address. the test fails if the address is not reached within the number of
// cycles.
func (h *harness) runTo(addr uint32, cycles int) {
	h.t.Helper()
	for i := 0; i < cycles; i++ {
		if h.mc.GetPC() == addr {
			return
		}
		test.DemandSuccess(h.t, h.step())
	}
	if h.mc.GetPC() != addr {
		h.t.Fatalf("address %08x not reached in %d cycles (pc is %08x)", addr, cycles, h.mc.GetPC())
	}
}

func (h *harness) reg(i int) uint32 {
	h.t.Helper()
	v, ok := h.mc.GetRegister(i)
	test.DemandSuccess(h.t, ok)
	return v
}

// instruction encoding
func rtype(rs, rt, rd, shamt, funct uint32) uint32 {
	return rs<<21 | rt<<16 | rd<<11 | shamt<<6 | funct
}

func itype(op, rs, rt uint32, imm uint16) uint32 {
	return op<<26 | rs<<21 | rt<<16 | uint32(imm)
}

func jtype(op uint32, target uint32) uint32 {
	return op<<26 | (target>>2)&0x03ffffff
}

func nop() uint32                   { return 0 }
func sll(rd, rt, sa uint32) uint32  { return rtype(0, rt, rd, sa, 0x00) }
func sra(rd, rt, sa uint32) uint32  { return rtype(0, rt, rd, sa, 0x03) }
func srlv(rd, rt, rs uint32) uint32 { return rtype(rs, rt, rd, 0, 0x06) }
func jr(rs uint32) uint32           { return rtype(rs, 0, 0, 0, 0x08) }
func jalr(rd, rs uint32) uint32     { return rtype(rs, 0, rd, 0, 0x09) }
func syscall() uint32               { return 0x0000000c }
func brk() uint32                   { return 0x0000000d }
func mfhi(rd uint32) uint32         { return rtype(0, 0, rd, 0, 0x10) }
func mflo(rd uint32) uint32         { return rtype(0, 0, rd, 0, 0x12) }
func mult(rs, rt uint32) uint32     { return rtype(rs, rt, 0, 0, 0x18) }
func multu(rs, rt uint32) uint32    { return rtype(rs, rt, 0, 0, 0x19) }
func div(rs, rt uint32) uint32      { return rtype(rs, rt, 0, 0, 0x1a) }
func divu(rs, rt uint32) uint32     { return rtype(rs, rt, 0, 0, 0x1b) }
func add(rd, rs, rt uint32) uint32  { return rtype(rs, rt, rd, 0, 0x20) }
func addu(rd, rs, rt uint32) uint32 { return rtype(rs, rt, rd, 0, 0x21) }
func sub(rd, rs, rt uint32) uint32  { return rtype(rs, rt, rd, 0, 0x22) }
func slt(rd, rs, rt uint32) uint32  { return rtype(rs, rt, rd, 0, 0x2a) }
func sltu(rd, rs, rt uint32) uint32 { return rtype(rs, rt, rd, 0, 0x2b) }
func nor(rd, rs, rt uint32) uint32  { return rtype(rs, rt, rd, 0, 0x27) }

func bltz(rs uint32, off int16) uint32    { return itype(0x01, rs, 0x00, uint16(off)) }
func bgezal(rs uint32, off int16) uint32  { return itype(0x01, rs, 0x11, uint16(off)) }
func j(target uint32) uint32              { return jtype(0x02, target) }
func jal(target uint32) uint32            { return jtype(0x03, target) }
func beq(rs, rt uint32, off int16) uint32 { return itype(0x04, rs, rt, uint16(off)) }
func bne(rs, rt uint32, off int16) uint32 { return itype(0x05, rs, rt, uint16(off)) }
func addi(rt, rs uint32, imm int16) uint32 {
	return itype(0x08, rs, rt, uint16(imm))
}
func addiu(rt, rs uint32, imm int16) uint32 {
	return itype(0x09, rs, rt, uint16(imm))
}
func sltiu(rt, rs uint32, imm int16) uint32 {
	return itype(0x0b, rs, rt, uint16(imm))
}
func ori(rt, rs uint32, imm uint16) uint32 { return itype(0x0d, rs, rt, imm) }
func lui(rt uint32, imm uint16) uint32     { return itype(0x0f, 0, rt, imm) }

func mfc0(rt, rd uint32) uint32 { return itype(0x10, 0x00, rt, uint16(rd<<11)) }
func mtc0(rt, rd uint32) uint32 { return itype(0x10, 0x04, rt, uint16(rd<<11)) }
func rfe() uint32               { return 0x42000010 }

func lb(rt uint32, off int16, base uint32) uint32  { return itype(0x20, base, rt, uint16(off)) }
func lh(rt uint32, off int16, base uint32) uint32  { return itype(0x21, base, rt, uint16(off)) }
func lw(rt uint32, off int16, base uint32) uint32  { return itype(0x23, base, rt, uint16(off)) }
func lbu(rt uint32, off int16, base uint32) uint32 { return itype(0x24, base, rt, uint16(off)) }
func lhu(rt uint32, off int16, base uint32) uint32 { return itype(0x25, base, rt, uint16(off)) }
func sb(rt uint32, off int16, base uint32) uint32  { return itype(0x28, base, rt, uint16(off)) }
func sh(rt uint32, off int16, base uint32) uint32  { return itype(0x29, base, rt, uint16(off)) }
func sw(rt uint32, off int16, base uint32) uint32  { return itype(0x2b, base, rt, uint16(off)) }
func cache(off int16, base uint32) uint32          { return itype(0x2f, base, 0, uint16(off)) }
