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

package decode

// Instruction is a single 32bit instruction word.
type Instruction uint32

// Opcode is the primary opcode field, bits 31-26.
func (ins Instruction) Opcode() uint32 {
	return uint32(ins) >> 26
}

// Rs is the first source register field, bits 25-21.
func (ins Instruction) Rs() int {
	return int((uint32(ins) >> 21) & 0x1f)
}

// Rt is the second source (or immediate destination) register field, bits
// 20-16.
func (ins Instruction) Rt() int {
	return int((uint32(ins) >> 16) & 0x1f)
}

// Rd is the destination register field of R-type instructions, bits 15-11.
func (ins Instruction) Rd() int {
	return int((uint32(ins) >> 11) & 0x1f)
}

// Shamt is the shift amount field, bits 10-6.
func (ins Instruction) Shamt() uint32 {
	return (uint32(ins) >> 6) & 0x1f
}

// Funct is the function field, bits 5-0.
func (ins Instruction) Funct() uint32 {
	return uint32(ins) & 0x3f
}

// Imm is the zero-extended 16bit immediate.
func (ins Instruction) Imm() uint32 {
	return uint32(ins) & 0xffff
}

// SImm is the sign-extended 16bit immediate.
func (ins Instruction) SImm() uint32 {
	return uint32(int32(int16(uint16(ins))))
}

// Target is the 26bit jump target field.
func (ins Instruction) Target() uint32 {
	return uint32(ins) & 0x03ffffff
}

// Code is the 20bit code field of the SYSCALL and BREAK instructions.
func (ins Instruction) Code() uint32 {
	return (uint32(ins) >> 6) & 0x000fffff
}
