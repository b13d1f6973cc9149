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

package ram

import "fmt"

// Region is a contiguous area of memory.
type Region struct {
	Name     string
	Origin   uint32
	ReadOnly bool

	data []uint8
}

func (r *Region) String() string {
	ro := ""
	if r.ReadOnly {
		ro = " (ro)"
	}
	return fmt.Sprintf("%s: %08x-%08x%s", r.Name, r.Origin, r.Memtop(), ro)
}

// Size returns the number of bytes in the region.
func (r *Region) Size() uint32 {
	return uint32(len(r.data))
}

// Memtop returns the address of the last byte in the region.
func (r *Region) Memtop() uint32 {
	return r.Origin + r.Size() - 1
}

// Contains returns true if the address is inside the region.
func (r *Region) Contains(address uint32) bool {
	return address >= r.Origin && address-r.Origin < r.Size()
}

func (r *Region) overlaps(o *Region) bool {
	return r.Origin <= o.Memtop() && o.Origin <= r.Memtop()
}
