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

import (
	"fmt"
	"io"
	"strings"

	"github.com/socsim/socsim/symbols"
)

// WriteAttr controls what is printed by the Write() function.
type WriteAttr struct {
	Bytecode bool
	Notes    bool

	// labels are written on a line of their own before the entry at the
	// address of the label. can be nil
	Symbols *symbols.Symbols
}

// Write the entries in columns to the output.
func Write(output io.Writer, entries []Entry, attr WriteAttr) error {
	widthOperator := 0
	widthOperand := 0
	for _, e := range entries {
		widthOperator = max(widthOperator, len(e.Operator))
		widthOperand = max(widthOperand, len(e.Operand))
	}

	for _, e := range entries {
		if attr.Symbols != nil {
			if res := attr.Symbols.ReverseSearch(e.Addr, symbols.SearchLabel); res != nil {
				if _, err := fmt.Fprintf(output, "%s:\n", res.Symbol); err != nil {
					return err
				}
			}
		}

		s := strings.Builder{}
		s.WriteString(e.Address)
		if attr.Bytecode {
			s.WriteString(fmt.Sprintf(" %-8s", e.Bytecode))
		}
		s.WriteString(fmt.Sprintf(" %-*s %-*s", widthOperator, e.Operator, widthOperand, e.Operand))
		if attr.Notes {
			if n := e.Notes(); n != "" {
				s.WriteString(" ; ")
				s.WriteString(n)
			}
		}

		if _, err := io.WriteString(output, strings.TrimRight(s.String(), " ")+"\n"); err != nil {
			return err
		}
	}

	return nil
}

// Grep returns the entries where the operator or operand contain the search
// string. The search is not case sensitive.
func Grep(entries []Entry, search string) []Entry {
	search = strings.ToLower(search)

	var matches []Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Operator), search) ||
			strings.Contains(strings.ToLower(e.Operand), search) {
			matches = append(matches, e)
		}
	}
	return matches
}
