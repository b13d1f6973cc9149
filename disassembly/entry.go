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
	"strings"

	"github.com/socsim/socsim/hardware/cpu/decode"
	"github.com/socsim/socsim/hardware/cpu/execution"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded from memory as though every word is an
// instruction. Executed entries were created from the result of an
// instruction that has been executed by a core.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelExecuted
)

// Entry is a disassembled instruction.
type Entry struct {
	Level EntryLevel

	// copy of the execution result. only valid if Level is EntryLevelExecuted
	Result execution.Result

	// the address and instruction word of the entry
	Addr  uint32
	Word  decode.Instruction
	Class decode.Class

	// string representations of the entry. Write() will apply white spacing
	// suitable for columnation
	Address  string
	Bytecode string
	Operator string
	Operand  string
}

// Decode the instruction word at the address.
func Decode(addr uint32, word uint32) Entry {
	ins := decode.Instruction(word)
	class := decode.Decode(ins)

	return Entry{
		Level:    EntryLevelDecoded,
		Addr:     addr,
		Word:     ins,
		Class:    class,
		Address:  fmt.Sprintf("%08x", addr),
		Bytecode: fmt.Sprintf("%08x", word),
		Operator: class.String(),
		Operand:  operand(addr, ins, class),
	}
}

// FormatResult creates an entry from the result of an executed instruction.
// Instructions that were not fetched (the core was frozen or the fetch caused
// a bus error) produce an entry with an empty Bytecode, Operator and Operand.
func FormatResult(result execution.Result) Entry {
	var e Entry
	if result.Fetched {
		e = Decode(result.Address, uint32(result.Word))
	} else {
		e.Addr = result.Address
		e.Address = fmt.Sprintf("%08x", result.Address)
	}
	e.Level = EntryLevelExecuted
	e.Result = result
	return e
}

func (e Entry) String() string {
	if e.Operand == "" {
		return strings.TrimSpace(fmt.Sprintf("%s %s %s", e.Address, e.Bytecode, e.Operator))
	}
	return fmt.Sprintf("%s %s %s %s", e.Address, e.Bytecode, e.Operator, e.Operand)
}

// Notes returns a short description of the execution of the entry. Empty if
// the entry was not executed.
func (e Entry) Notes() string {
	if e.Level != EntryLevelExecuted {
		return ""
	}

	r := e.Result

	var s []string
	if r.Frozen {
		s = append(s, "frozen")
	}
	if r.DelaySlot {
		s = append(s, "delay slot")
	}
	if r.BranchTaken {
		s = append(s, "taken")
	}
	if r.Load.Valid {
		s = append(s, fmt.Sprintf("load %s", r.Load))
	}
	if r.Access != nil {
		s = append(s, r.Access.String())
	}
	if r.InterruptDelayed {
		s = append(s, "interrupt delayed")
	}
	if r.Exception != nil {
		s = append(s, fmt.Sprintf("%s epc=%08x", r.Exception, r.EPC))
	}
	if r.DoubleFault {
		s = append(s, "double fault")
	}

	return strings.Join(s, "; ")
}
