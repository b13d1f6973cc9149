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

// Package disassembly produces the textual representation of MIPS-I
// instructions. An Entry can be created from an instruction word and its
// address, with the Decode() function, or from the result of an executed
// instruction, with the FormatResult() function.
//
// Entries can be written in columns with the Write() function. The Linear()
// function disassembles a range of memory, treating every word as an
// instruction.
package disassembly
