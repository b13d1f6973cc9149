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

package registers_test

import (
	"strings"
	"testing"

	"github.com/socsim/socsim/hardware/cpu/registers"
	"github.com/socsim/socsim/test"
)

func TestRegisterZero(t *testing.T) {
	var f registers.File

	for _, v := range []uint32{1, 0xffffffff, 0x80000000, 0x12345678} {
		f.Write(registers.Zero, v)
		test.ExpectEquality(t, f.Read(registers.Zero), 0)
	}

	// bypass to register zero is ignored
	b := registers.Bypass{Reg: registers.Zero, Value: 0xdeadbeef, Valid: true}
	test.ExpectEquality(t, f.ReadBypassed(registers.Zero, b), 0)
	f.Commit(b)
	test.ExpectEquality(t, f.Read(registers.Zero), 0)
}

func TestReadWrite(t *testing.T) {
	var f registers.File

	for i := 1; i < registers.NumGPR; i++ {
		f.Write(i, uint32(i)*0x01010101)
	}
	for i := 1; i < registers.NumGPR; i++ {
		test.ExpectEquality(t, f.Read(i), uint32(i)*0x01010101)
	}

	f.Reset()
	for i := 0; i < registers.NumGPR; i++ {
		test.ExpectEquality(t, f.Read(i), 0)
	}
}

func TestBypass(t *testing.T) {
	var f registers.File
	f.Write(1, 10)
	f.Write(2, 20)

	b := registers.Bypass{Reg: 1, Value: 99, Valid: true}
	test.ExpectEquality(t, f.ReadBypassed(1, b), 99)
	test.ExpectEquality(t, f.ReadBypassed(2, b), 20)

	// register file is untouched until the bypass is committed
	test.ExpectEquality(t, f.Read(1), 10)
	f.Commit(b)
	test.ExpectEquality(t, f.Read(1), 99)

	// invalid bypass has no effect
	b = registers.Bypass{Reg: 2, Value: 0, Valid: false}
	test.ExpectEquality(t, f.ReadBypassed(2, b), 20)
	f.Commit(b)
	test.ExpectEquality(t, f.Read(2), 20)
	test.ExpectEquality(t, b.String(), "-")
}

func TestHiLo(t *testing.T) {
	var f registers.File
	f.SetHiLo(1, 2)
	test.ExpectEquality(t, f.HI(), 1)
	test.ExpectEquality(t, f.LO(), 2)
	f.SetHI(3)
	f.SetLO(4)
	test.ExpectEquality(t, f.HI(), 3)
	test.ExpectEquality(t, f.LO(), 4)
	test.ExpectSuccess(t, strings.Contains(f.String(), "hi   00000003"))
}
