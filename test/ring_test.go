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

package test_test

import (
	"testing"

	"github.com/socsim/socsim/test"
)

func TestRingWriter(t *testing.T) {
	r, err := test.NewRingWriter(8)
	test.DemandSuccess(t, err)

	r.Write([]byte("abc"))
	test.ExpectEquality(t, r.String(), "abc")

	r.Write([]byte("defgh"))
	test.ExpectEquality(t, r.String(), "abcdefgh")

	r.Write([]byte("ij"))
	test.ExpectEquality(t, r.String(), "cdefghij")

	r.Write([]byte("0123456789"))
	test.ExpectEquality(t, r.String(), "23456789")

	r.Reset()
	test.ExpectEquality(t, r.String(), "")

	_, err = test.NewRingWriter(0)
	test.ExpectFailure(t, err)
}
