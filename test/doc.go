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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() function is the most useful. It compares two values
// of the same comparable type and fails the test (with t.Errorf()) if they
// differ. Use DemandEquality() when continuing the test after a failure
// makes no sense; it uses t.Fatalf() instead.
//
// ExpectSuccess() and ExpectFailure() test for "success" or "failure" of
// bool and error values.
//
// The package also contains a selection of io.Writer implementations useful
// when testing output: CompareWriter and RingWriter.
package test
