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

package disassembly

// Memory is the interface used by the Linear() function to read memory.
type Memory interface {
	PeekWord(address uint32) (uint32, error)
}

// Linear disassembles every word in the address range. The end address is
// inclusive. Both addresses are aligned down to a word boundary.
func Linear(mem Memory, start uint32, end uint32) ([]Entry, error) {
	start &^= 0x03
	end &^= 0x03

	var entries []Entry

	for a := start; a <= end; a += 4 {
		w, err := mem.PeekWord(a)
		if err != nil {
			return entries, err
		}
		entries = append(entries, Decode(a, w))

		// address wrapped
		if a == 0xfffffffc {
			break
		}
	}

	return entries, nil
}
