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
	"io"
	"sync"
)

// Symbols contains the label and data symbols for a platform.
type Symbols struct {
	crit sync.Mutex

	label *table
	data  *table
}

// NewSymbols is the preferred method of initialisation for the Symbols type.
func NewSymbols() *Symbols {
	return &Symbols{
		label: newTable(),
		data:  newTable(),
	}
}

// Add a symbol to the label or data table. If there is already a symbol for
// the address in that table then the new symbol is ignored and false is
// returned.
func (sym *Symbols) Add(target SearchTable, addr uint32, symbol string) bool {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	switch target {
	case SearchLabel:
		return sym.label.add(addr, symbol, false)
	case SearchData:
		return sym.data.add(addr, symbol, false)
	}

	return false
}

// Len returns the total number of symbols.
func (sym *Symbols) Len() int {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return len(sym.label.idx) + len(sym.data.idx)
}

// MaxWidth returns the width of the longest label.
func (sym *Symbols) MaxWidth() int {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.maxWidth
}

// ListSymbols writes every symbol to the output.
func (sym *Symbols) ListSymbols(output io.Writer) {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	fmt.Fprintf(output, "Labels\n------\n%s", sym.label)
	fmt.Fprintf(output, "\nData\n----\n%s", sym.data)
}
