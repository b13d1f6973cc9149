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

package symbols

import (
	"fmt"
	"sort"
	"strings"
)

type table struct {
	// indexed by address
	entries map[uint32]string

	// sorted index of keys in entries
	idx []uint32

	// the longest symbol in the entries map
	maxWidth int
}

func newTable() *table {
	return &table{
		entries: make(map[uint32]string),
		idx:     make([]uint32, 0),
	}
}

func (t table) String() string {
	s := strings.Builder{}
	for _, a := range t.idx {
		s.WriteString(fmt.Sprintf("%08x -> %s\n", a, t.entries[a]))
	}
	return s.String()
}

// add symbol to the table. returns false if there is already a symbol for the
// address. the existing symbol is replaced only if prefer is true
func (t *table) add(addr uint32, symbol string, prefer bool) bool {
	if _, ok := t.entries[addr]; ok {
		if prefer {
			t.entries[addr] = symbol
			t.maxWidth = max(t.maxWidth, len(symbol))
		}
		return false
	}

	t.entries[addr] = symbol
	t.maxWidth = max(t.maxWidth, len(symbol))

	i := sort.Search(len(t.idx), func(i int) bool { return t.idx[i] >= addr })
	t.idx = append(t.idx, 0)
	copy(t.idx[i+1:], t.idx[i:])
	t.idx[i] = addr

	return true
}

// search is not case sensitive. the symbol argument should be upper case.
// returns the symbol as it was added
func (t table) search(symbol string) (string, uint32, bool) {
	for _, a := range t.idx {
		if strings.ToUpper(t.entries[a]) == symbol {
			return t.entries[a], a, true
		}
	}
	return "", 0, false
}

// the nearest symbol at or before the address
func (t table) nearest(addr uint32) (string, uint32, bool) {
	i := sort.Search(len(t.idx), func(i int) bool { return t.idx[i] > addr })
	if i == 0 {
		return "", 0, false
	}
	a := t.idx[i-1]
	return t.entries[a], a, true
}
