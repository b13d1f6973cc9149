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

package bus

import "fmt"

// Op is the kind of memory operation.
type Op int

// List of valid Op values.
const (
	Read Op = iota
	Write

	// Invalidate is a store-like operation that carries no data. The memory
	// system acknowledges it like a write.
	Invalidate
)

func (o Op) String() string {
	switch o {
	case Read:
		return "read"
	case Write:
		return "write"
	case Invalidate:
		return "inval"
	}
	return "unknown op"
}

// Size is the width of the memory access in bytes.
type Size int

// List of valid Size values.
const (
	Byte Size = 1
	Half Size = 2
	Word Size = 4
)

func (s Size) String() string {
	switch s {
	case Byte:
		return "byte"
	case Half:
		return "half"
	case Word:
		return "word"
	}
	return "unknown size"
}

// Request is a single memory transaction. The Address is always the address
// of the accessed byte or half-word, not the aligned word address.
type Request struct {
	// transaction ID. a new transaction always has a different ID to the
	// previous transaction on the same port
	ID uint64

	Op      Op
	Size    Size
	Address uint32

	// the word to write. the data is replicated across all lanes appropriate
	// to the size of the write
	Data uint32

	// one bit per byte lane of Data that should be written. bit zero is the
	// least significant byte of Data
	ByteEnable uint8
}

func (r Request) String() string {
	switch r.Op {
	case Write:
		return fmt.Sprintf("#%d %s %s %08x=%08x/%04b", r.ID, r.Op, r.Size, r.Address, r.Data, r.ByteEnable)
	}
	return fmt.Sprintf("#%d %s %s %08x", r.ID, r.Op, r.Size, r.Address)
}

// Response is the reply of the memory system to a request.
type Response struct {
	// a response that is not valid means that the transaction is still in
	// progress. the other fields should be ignored
	Valid bool

	// the ID of the request being answered
	ID uint64

	// the aligned word containing the requested address. for writes the
	// value is undefined
	Word uint32

	// the address does not correspond to any memory
	BusError bool
}

func (r Response) String() string {
	if !r.Valid {
		return "wait"
	}
	if r.BusError {
		return fmt.Sprintf("#%d bus error", r.ID)
	}
	return fmt.Sprintf("#%d %08x", r.ID, r.Word)
}

// Inputs to a core for one cycle.
type Inputs struct {
	Instruction Response
	Data        Response

	// state of the interrupt lines. bit zero is the first hardware line
	Interrupts uint8
}

// Outputs of a core for one cycle. The Data field is nil if no data access is
// required.
type Outputs struct {
	Fetch Request
	Data  *Request
}

// Memory is implemented by memory systems that can answer core requests.
type Memory interface {
	// Service is called once per cycle per port. The memory system should
	// return a valid response once the transaction is complete.
	Service(port int, req Request) Response
}

// DebugBus is implemented by memory systems that allow inspection of memory
// outside of the normal bus protocol.
type DebugBus interface {
	Peek(address uint32) (uint8, error)
	Poke(address uint32, value uint8) error
}
