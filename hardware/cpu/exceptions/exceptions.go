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

// Package exceptions enumerates the exceptions and interrupt levels of the
// core.
//
// The absence of an exception is always represented by a nil *Exception,
// never by a special Code value.
package exceptions

import "fmt"

// Code is the exception code as written to the ExcCode field of the CAUSE
// register.
type Code uint32

// List of valid Code values. The gaps in the sequence are codes for features
// that are not implemented (TLB exceptions, coprocessor unusable).
const (
	Interrupt           Code = 0
	AddressErrorLoad    Code = 4
	AddressErrorStore   Code = 5
	BusErrorInstruction Code = 6
	BusErrorData        Code = 7
	Syscall             Code = 8
	Breakpoint          Code = 9
	ReservedInstruction Code = 10
	Overflow            Code = 12
)

// Reset is a pseudo-code used for the reset condition. It is never written to
// the CAUSE register.
const Reset Code = 0xff

func (c Code) String() string {
	switch c {
	case Interrupt:
		return "Int"
	case AddressErrorLoad:
		return "AdEL"
	case AddressErrorStore:
		return "AdES"
	case BusErrorInstruction:
		return "IBE"
	case BusErrorData:
		return "DBE"
	case Syscall:
		return "Sys"
	case Breakpoint:
		return "Bp"
	case ReservedInstruction:
		return "RI"
	case Overflow:
		return "Ov"
	case Reset:
		return "Reset"
	}
	return fmt.Sprintf("exc(%d)", uint32(c))
}

// Precise returns true if the exception is taken with EPC pointing at the
// instruction that caused it.
//
// Interrupts, address errors and data bus errors are sensed after the effect
// of an instruction has been computed. They are imprecise and EPC is the
// address that would have been fetched next.
func (c Code) Precise() bool {
	switch c {
	case ReservedInstruction, Overflow, Breakpoint, Syscall, BusErrorInstruction:
		return true
	}
	return false
}

// Level is a hardware or software interrupt line. The value corresponds to
// the bit position in the IP field of the CAUSE register and the IM field of
// the STATUS register.
type Level int

// List of valid Level values. Levels SW0 and SW1 are set by software through
// the CAUSE register. Levels HW0 to HW5 are driven by the interrupt inputs
// of the core.
const (
	SW0 Level = iota
	SW1
	HW0
	HW1
	HW2
	HW3
	HW4
	HW5

	// NumLevels is the number of interrupt levels. It is not a valid Level.
	NumLevels
)

// NumHardwareLevels is the number of interrupt input lines to the core.
const NumHardwareLevels = int(NumLevels - HW0)

func (l Level) String() string {
	if l < HW0 {
		return fmt.Sprintf("SW%d", int(l))
	}
	return fmt.Sprintf("HW%d", int(l-HW0))
}

// Exception is an exception raised during a cycle.
type Exception struct {
	Code Code

	// the faulting address for address errors and bus errors. only valid if
	// HasBadAddr is true
	BadAddr    uint32
	HasBadAddr bool
}

// New returns an exception without a bad address.
func New(code Code) *Exception {
	return &Exception{Code: code}
}

// NewWithAddress returns an exception with a bad address.
func NewWithAddress(code Code, addr uint32) *Exception {
	return &Exception{Code: code, BadAddr: addr, HasBadAddr: true}
}

func (e *Exception) String() string {
	if e == nil {
		return "none"
	}
	if e.HasBadAddr {
		return fmt.Sprintf("%s @ %08x", e.Code, e.BadAddr)
	}
	return e.Code.String()
}
