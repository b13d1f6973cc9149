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

// primary opcodes with a secondary decoding stage.
const (
	opSpecial = 0x00
	opRegimm  = 0x01
	opCop0    = 0x10
)

// primary opcode table. opcodes group naturally in fours so the table is
// laid out as four rows of sixteen.
var primary = [64]Class{
	// 0x00
	Reserved, Reserved, J, JAL, BEQ, BNE, BLEZ, BGTZ,
	ADDI, ADDIU, SLTI, SLTIU, ANDI, ORI, XORI, LUI,

	// 0x10. COP1 to COP3 are not implemented and neither are the MIPS-II
	// branch-likely opcodes
	Reserved, Reserved, Reserved, Reserved, Reserved, Reserved, Reserved, Reserved,
	Reserved, Reserved, Reserved, Reserved, Reserved, Reserved, Reserved, Reserved,

	// 0x20. LWL, LWR, SWL and SWR are not implemented
	LB, LH, Reserved, LW, LBU, LHU, Reserved, Reserved,
	SB, SH, Reserved, SW, Reserved, Reserved, Reserved, CACHE,

	// 0x30. coprocessor loads and stores are not implemented
	Reserved, Reserved, Reserved, Reserved, Reserved, Reserved, Reserved, Reserved,
	Reserved, Reserved, Reserved, Reserved, Reserved, Reserved, Reserved, Reserved,
}

// SPECIAL table, indexed by the function field.
var special = [64]Class{
	// 0x00
	SLL, Reserved, SRL, SRA, SLLV, Reserved, SRLV, SRAV,
	JR, JALR, Reserved, Reserved, SYSCALL, BREAK, Reserved, Reserved,

	// 0x10
	MFHI, MTHI, MFLO, MTLO, Reserved, Reserved, Reserved, Reserved,
	MULT, MULTU, DIV, DIVU, Reserved, Reserved, Reserved, Reserved,

	// 0x20
	ADD, ADDU, SUB, SUBU, AND, OR, XOR, NOR,
	Reserved, Reserved, SLT, SLTU, Reserved, Reserved, Reserved, Reserved,

	// 0x30
	Reserved, Reserved, Reserved, Reserved, Reserved, Reserved, Reserved, Reserved,
	Reserved, Reserved, Reserved, Reserved, Reserved, Reserved, Reserved, Reserved,
}

// REGIMM (branch on condition) table, indexed by the rt field.
var regimm = [32]Class{
	// 0x00
	BLTZ, BGEZ, Reserved, Reserved, Reserved, Reserved, Reserved, Reserved,
	Reserved, Reserved, Reserved, Reserved, Reserved, Reserved, Reserved, Reserved,

	// 0x10
	BLTZAL, BGEZAL, Reserved, Reserved, Reserved, Reserved, Reserved, Reserved,
	Reserved, Reserved, Reserved, Reserved, Reserved, Reserved, Reserved, Reserved,
}

// rs field values for the COP0 opcode.
const (
	cop0MF = 0x00
	cop0MT = 0x04
	cop0CO = 0x10
)

// function field of a COP0 coprocessor operation. the TLB operations are not
// implemented.
const cop0FunctRFE = 0x10

// Decode returns the instruction class for the instruction word.
func Decode(ins Instruction) Class {
	switch ins.Opcode() {
	case opSpecial:
		return special[ins.Funct()]
	case opRegimm:
		return regimm[ins.Rt()]
	case opCop0:
		return decodeCop0(ins)
	}
	return primary[ins.Opcode()]
}

func decodeCop0(ins Instruction) Class {
	rs := ins.Rs()
	switch {
	case rs == cop0MF:
		return MFC0
	case rs == cop0MT:
		return MTC0
	case rs&cop0CO == cop0CO:
		if ins.Funct() == cop0FunctRFE {
			return RFE
		}
	}
	return Reserved
}
