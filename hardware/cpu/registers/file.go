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

package registers

import (
	"fmt"
	"strings"
)

// NumGPR is the number of general purpose registers.
const NumGPR = 32

// Zero is the index of the hardwired zero register.
const Zero = 0

// RA is the index of the link register used by JAL and the link forms of the
// conditional branches.
const RA = 31

// Names of the general purpose registers in the conventional ABI form.
var Names = [NumGPR]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

// Bypass is a register value published by the memory sequencer in the cycle a
// load completes. A Bypass with Valid set to false has no effect.
type Bypass struct {
	Reg   int
	Value uint32
	Valid bool
}

func (b Bypass) String() string {
	if !b.Valid {
		return "-"
	}
	return fmt.Sprintf("$%s=%08x", Names[b.Reg], b.Value)
}

// File is the general purpose register file and the HI/LO pair.
type File struct {
	gpr [NumGPR]uint32
	hi  uint32
	lo  uint32
}

// Reset all registers to zero.
func (f *File) Reset() {
	*f = File{}
}

// Read the value of the register. Register zero always reads as zero.
func (f *File) Read(i int) uint32 {
	if i == Zero {
		return 0
	}
	return f.gpr[i&(NumGPR-1)]
}

// Write value to the register. Writes to register zero are accepted but have
// no effect.
func (f *File) Write(i int, v uint32) {
	if i == Zero {
		return
	}
	f.gpr[i&(NumGPR-1)] = v
}

// ReadBypassed is like Read except that the bypass value is returned if it
// is valid and names the register. Register zero is never bypassed.
func (f *File) ReadBypassed(i int, b Bypass) uint32 {
	if b.Valid && b.Reg == i && i != Zero {
		return b.Value
	}
	return f.Read(i)
}

// Commit writes a valid bypass value to the register file.
func (f *File) Commit(b Bypass) {
	if b.Valid {
		f.Write(b.Reg, b.Value)
	}
}

// HI returns the upper half of the multiply result or the remainder of a
// division.
func (f *File) HI() uint32 {
	return f.hi
}

// LO returns the lower half of the multiply result or the quotient of a
// division.
func (f *File) LO() uint32 {
	return f.lo
}

// SetHiLo sets both halves of the HI/LO pair.
func (f *File) SetHiLo(hi uint32, lo uint32) {
	f.hi = hi
	f.lo = lo
}

// SetHI sets the HI register only.
func (f *File) SetHI(v uint32) {
	f.hi = v
}

// SetLO sets the LO register only.
func (f *File) SetLO(v uint32) {
	f.lo = v
}

func (f *File) String() string {
	s := strings.Builder{}
	for i := 0; i < NumGPR; i++ {
		s.WriteString(fmt.Sprintf("%-4s %08x", Names[i], f.Read(i)))
		if i%4 == 3 {
			s.WriteString("\n")
		} else {
			s.WriteString("  ")
		}
	}
	s.WriteString(fmt.Sprintf("hi   %08x  lo   %08x", f.hi, f.lo))
	return s.String()
}
