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

package exceptions_test

import (
	"testing"

	"github.com/socsim/socsim/hardware/cpu/exceptions"
	"github.com/socsim/socsim/test"
)

func TestPrecise(t *testing.T) {
	for _, c := range []exceptions.Code{
		exceptions.ReservedInstruction, exceptions.Overflow, exceptions.Breakpoint,
		exceptions.Syscall, exceptions.BusErrorInstruction,
	} {
		test.ExpectSuccess(t, c.Precise(), c)
	}

	for _, c := range []exceptions.Code{
		exceptions.Interrupt, exceptions.AddressErrorLoad,
		exceptions.AddressErrorStore, exceptions.BusErrorData,
	} {
		test.ExpectFailure(t, c.Precise(), c)
	}
}

func TestString(t *testing.T) {
	var e *exceptions.Exception
	test.ExpectEquality(t, e.String(), "none")

	e = exceptions.New(exceptions.Syscall)
	test.ExpectEquality(t, e.String(), "Sys")

	e = exceptions.NewWithAddress(exceptions.AddressErrorLoad, 0x1001)
	test.ExpectEquality(t, e.String(), "AdEL @ 00001001")

	test.ExpectEquality(t, exceptions.Code(3).String(), "exc(3)")
	test.ExpectEquality(t, exceptions.HW5.String(), "HW5")
	test.ExpectEquality(t, exceptions.SW1.String(), "SW1")
	test.ExpectEquality(t, exceptions.NumHardwareLevels, 6)
}
