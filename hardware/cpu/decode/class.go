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

// Class identifies one instruction of the MIPS-I instruction set as
// implemented by the ISS. The list is closed: the execute engine switches
// over every value.
type Class int

// List of valid Class values.
const (
	Reserved Class = iota

	// SPECIAL
	SLL
	SRL
	SRA
	SLLV
	SRLV
	SRAV
	JR
	JALR
	SYSCALL
	BREAK
	MFHI
	MTHI
	MFLO
	MTLO
	MULT
	MULTU
	DIV
	DIVU
	ADD
	ADDU
	SUB
	SUBU
	AND
	OR
	XOR
	NOR
	SLT
	SLTU

	// REGIMM
	BLTZ
	BGEZ
	BLTZAL
	BGEZAL

	// primary
	J
	JAL
	BEQ
	BNE
	BLEZ
	BGTZ
	ADDI
	ADDIU
	SLTI
	SLTIU
	ANDI
	ORI
	XORI
	LUI
	LB
	LH
	LW
	LBU
	LHU
	SB
	SH
	SW
	CACHE

	// COP0
	MFC0
	MTC0
	RFE

	// NumClasses is the number of Class values. It is not a valid Class.
	NumClasses
)

var mnemonics = [NumClasses]string{
	Reserved: "???",
	SLL:      "sll", SRL: "srl", SRA: "sra", SLLV: "sllv", SRLV: "srlv", SRAV: "srav",
	JR: "jr", JALR: "jalr", SYSCALL: "syscall", BREAK: "break",
	MFHI: "mfhi", MTHI: "mthi", MFLO: "mflo", MTLO: "mtlo",
	MULT: "mult", MULTU: "multu", DIV: "div", DIVU: "divu",
	ADD: "add", ADDU: "addu", SUB: "sub", SUBU: "subu",
	AND: "and", OR: "or", XOR: "xor", NOR: "nor", SLT: "slt", SLTU: "sltu",
	BLTZ: "bltz", BGEZ: "bgez", BLTZAL: "bltzal", BGEZAL: "bgezal",
	J: "j", JAL: "jal", BEQ: "beq", BNE: "bne", BLEZ: "blez", BGTZ: "bgtz",
	ADDI: "addi", ADDIU: "addiu", SLTI: "slti", SLTIU: "sltiu",
	ANDI: "andi", ORI: "ori", XORI: "xori", LUI: "lui",
	LB: "lb", LH: "lh", LW: "lw", LBU: "lbu", LHU: "lhu",
	SB: "sb", SH: "sh", SW: "sw", CACHE: "cache",
	MFC0: "mfc0", MTC0: "mtc0", RFE: "rfe",
}

func (c Class) String() string {
	if c < 0 || c >= NumClasses {
		return "???"
	}
	return mnemonics[c]
}

// Category groups classes by the kind of effect they have. Used by the
// execute engine and by the disassembler to decide on operand formatting.
type Category int

// List of valid Category values.
const (
	CatReserved Category = iota
	CatALU
	CatImmediate
	CatShift
	CatShiftVariable
	CatMulDiv
	CatHiLo
	CatBranch
	CatJump
	CatJumpRegister
	CatLoad
	CatStore
	CatTrap
	CatCop0
)

// Category returns the category of the instruction class.
func (c Class) Category() Category {
	switch c {
	case ADD, ADDU, SUB, SUBU, AND, OR, XOR, NOR, SLT, SLTU:
		return CatALU
	case ADDI, ADDIU, SLTI, SLTIU, ANDI, ORI, XORI, LUI:
		return CatImmediate
	case SLL, SRL, SRA:
		return CatShift
	case SLLV, SRLV, SRAV:
		return CatShiftVariable
	case MULT, MULTU, DIV, DIVU:
		return CatMulDiv
	case MFHI, MTHI, MFLO, MTLO:
		return CatHiLo
	case BEQ, BNE, BLEZ, BGTZ, BLTZ, BGEZ, BLTZAL, BGEZAL:
		return CatBranch
	case J, JAL:
		return CatJump
	case JR, JALR:
		return CatJumpRegister
	case LB, LH, LW, LBU, LHU:
		return CatLoad
	case SB, SH, SW, CACHE:
		return CatStore
	case SYSCALL, BREAK:
		return CatTrap
	case MFC0, MTC0, RFE:
		return CatCop0
	}
	return CatReserved
}

// IsFlowControl returns true if the instruction is followed by a delay slot.
func (c Class) IsFlowControl() bool {
	switch c.Category() {
	case CatBranch, CatJump, CatJumpRegister:
		return true
	}
	return false
}
