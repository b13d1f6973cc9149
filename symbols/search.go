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
	"strings"
)

// SearchTable is used to select and identify a symbol table when searching.
type SearchTable int

// List of valid symbol table identifiers.
const (
	SearchAll SearchTable = iota
	SearchLabel
	SearchData
)

func (t SearchTable) String() string {
	switch t {
	case SearchAll:
		return "unspecified"
	case SearchLabel:
		return "label"
	case SearchData:
		return "data"
	}

	return ""
}

// SearchResults contains the normalised symbol info found in the SearchTable.
type SearchResults struct {
	// the table the result was found in
	Table SearchTable

	// symbol as it was added
	Symbol string

	// the address of the symbol
	Address uint32

	// offset from the address of the symbol. only ever non-zero for results
	// from Nearest()
	Offset uint32
}

func (res SearchResults) String() string {
	if res.Offset == 0 {
		return res.Symbol
	}
	return fmt.Sprintf("%s+%#x", res.Symbol, res.Offset)
}

// Search return the address of the supplied symbol. Search is not case
// sensitive. Labels are searched before data symbols.
//
// Returns nil if symbol is not found.
func (sym *Symbols) Search(symbol string, target SearchTable) *SearchResults {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	symbolUpper := strings.ToUpper(symbol)

	if target == SearchAll || target == SearchLabel {
		if norm, addr, ok := sym.label.search(symbolUpper); ok {
			return &SearchResults{Table: SearchLabel, Symbol: norm, Address: addr}
		}
	}

	if target == SearchAll || target == SearchData {
		if norm, addr, ok := sym.data.search(symbolUpper); ok {
			return &SearchResults{Table: SearchData, Symbol: norm, Address: addr}
		}
	}

	return nil
}

// ReverseSearch returns the symbol for the address.
//
// Returns nil if no symbol is found.
func (sym *Symbols) ReverseSearch(addr uint32, target SearchTable) *SearchResults {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	if target == SearchAll || target == SearchLabel {
		if s, ok := sym.label.entries[addr]; ok {
			return &SearchResults{Table: SearchLabel, Symbol: s, Address: addr}
		}
	}

	if target == SearchAll || target == SearchData {
		if s, ok := sym.data.entries[addr]; ok {
			return &SearchResults{Table: SearchData, Symbol: s, Address: addr}
		}
	}

	return nil
}

// Nearest returns the nearest label at or before the address, with the
// offset of the address from the label.
//
// Returns nil if there is no label before the address.
func (sym *Symbols) Nearest(addr uint32) *SearchResults {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	if s, a, ok := sym.label.nearest(addr); ok {
		return &SearchResults{Table: SearchLabel, Symbol: s, Address: a, Offset: addr - a}
	}

	return nil
}
