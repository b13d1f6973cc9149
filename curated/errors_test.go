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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/socsim/socsim/curated"
	"github.com/socsim/socsim/test"
)

const testPattern = "test: %v"
const wrapPattern = "wrap: %v"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectEquality(t, e.Error(), "test: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testPattern, e)
	test.ExpectEquality(t, f.Error(), "test: foo")

	g := curated.Errorf(wrapPattern, f)
	test.ExpectEquality(t, g.Error(), "wrap: test: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, wrapPattern))
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.IsAny(nil))

	// Has() looks down the chain, Is() does not
	f := curated.Errorf(wrapPattern, e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, wrapPattern))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf(wrapPattern, io.EOF)
	test.ExpectSuccess(t, errors.Is(e, io.EOF))
}
