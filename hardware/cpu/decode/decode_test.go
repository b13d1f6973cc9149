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

package decode_test

import (
	"testing"

	"github.com/socsim/socsim/hardware/cpu/decode"
	"github.com/socsim/socsim/test"
)

func TestFields(t *testing.T) {
	// addi $t1, $t0, -4
	ins := decode.Instruction(0x2109fffc)
	test.ExpectEquality(t, ins.Opcode(), 0x08)
	test.ExpectEquality(t, ins.Rs(), 8)
	test.ExpectEquality(t, ins.Rt(), 9)
	test.ExpectEquality(t, ins.Imm(), 0xfffc)
	test.ExpectEquality(t, ins.SImm(), 0xfffffffc)

	// sll $v0, $v1, 3
	ins = decode.Instruction(0x000310c0)
	test.ExpectEquality(t, ins.Rt(), 3)
	test.ExpectEquality(t, ins.Rd(), 2)
	test.ExpectEquality(t, ins.Shamt(), 3)
	test.ExpectEquality(t, ins.Funct(), 0)

	// jal 0x00400000
	ins = decode.Instruction(0x0c100000)
	test.ExpectEquality(t, ins.Target(), 0x00100000)

	// syscall 0x12345
	ins = decode.Instruction(0x12345<<6 | 0x0c)
	test.ExpectEquality(t, ins.Code(), 0x12345)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		word  uint32
		class decode.Class
	}{
		{0x00000000, decode.SLL},
		{0x03e00008, decode.JR},
		{0x0000000c, decode.SYSCALL},
		{0x0000000d, decode.BREAK},
		{0x01095020, decode.ADD},
		{0x01095021, decode.ADDU},
		{0x0109502a, decode.SLT},
		{0x0109001a, decode.DIV},
		{0x00005010, decode.MFHI},
		{0x05000004, decode.BLTZ},
		{0x05110004, decode.BGEZAL},
		{0x08000000, decode.J},
		{0x0c000000, decode.JAL},
		{0x3c010000, decode.LUI},
		{0x8c220000, decode.LW},
		{0x90220000, decode.LBU},
		{0xac220000, decode.SW},
		{0xbc200000, decode.CACHE},
		{0x40026000, decode.MFC0},
		{0x40826000, decode.MTC0},
		{0x42000010, decode.RFE},

		// reserved encodings
		{0x00000001, decode.Reserved},
		{0x05020000, decode.Reserved},
		{0x44000000, decode.Reserved},
		{0x42000001, decode.Reserved},
		{0x88220000, decode.Reserved},
		{0xc4220000, decode.Reserved},
		{0x40400000, decode.Reserved},
		{0xfc000000, decode.Reserved},
	}

	for _, tt := range tests {
		test.ExpectEquality(t, decode.Decode(decode.Instruction(tt.word)), tt.class, tt.word)
	}
}

// every class except Reserved must be reachable from at least one encoding
func TestDecodeCoverage(t *testing.T) {
	seen := make(map[decode.Class]bool)

	for op := uint32(0); op < 64; op++ {
		for funct := uint32(0); funct < 64; funct++ {
			for rt := uint32(0); rt < 32; rt++ {
				for _, rs := range []uint32{0, 4, 16} {
					w := op<<26 | rs<<21 | rt<<16 | funct
					seen[decode.Decode(decode.Instruction(w))] = true
				}
			}
		}
	}

	for c := decode.Reserved + 1; c < decode.NumClasses; c++ {
		test.ExpectSuccess(t, seen[c], c.String())
	}
}

func TestCategory(t *testing.T) {
	test.ExpectSuccess(t, decode.BEQ.IsFlowControl())
	test.ExpectSuccess(t, decode.JALR.IsFlowControl())
	test.ExpectFailure(t, decode.SYSCALL.IsFlowControl())
	test.ExpectEquality(t, decode.CACHE.Category(), decode.CatStore)
	test.ExpectEquality(t, decode.Reserved.Category(), decode.CatReserved)
	test.ExpectEquality(t, decode.Class(-1).String(), "???")
	test.ExpectEquality(t, decode.ADDIU.String(), "addiu")
}
