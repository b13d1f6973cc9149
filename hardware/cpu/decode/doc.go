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

// Package decode maps a 32bit MIPS instruction word to the class of
// instruction it encodes. Decoding is a pure function of the word and does
// not depend on the state of any core.
//
// The primary opcode (the top six bits of the word) indexes a table of 64
// entries. Two of the primary opcodes (SPECIAL and REGIMM) select a further
// table using a secondary field: the function field for SPECIAL and the rt
// field for REGIMM. The COP0 opcode is decoded on the rs field and, for
// coprocessor operations, the function field.
//
// Any encoding that is not listed decodes to Reserved. It is up to the
// caller to raise a reserved-instruction exception for that class.
package decode
