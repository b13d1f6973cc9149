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

package cpu

import (
	"fmt"

	"github.com/socsim/socsim/hardware/cpu/exceptions"
	"github.com/socsim/socsim/hardware/cpu/registers"
	"github.com/socsim/socsim/hardware/memory/bus"
)

type sequencerState int

const (
	seqIdle sequencerState = iota
	seqPendingLoad
	seqPendingStore
)

func (s sequencerState) String() string {
	switch s {
	case seqPendingLoad:
		return "load"
	case seqPendingStore:
		return "store"
	}
	return "idle"
}

// access describes the data access of a load or store instruction.
type access struct {
	op      bus.Op
	size    bus.Size
	address uint32

	// store data. not replicated across lanes
	data uint32

	// destination register and sign extension of loads
	dest   int
	signed bool
}

// sequencer manages the single outstanding data request of the core.
type sequencer struct {
	state     sequencerState
	acc       access
	req       bus.Request
	bigEndian bool
}

func (s *sequencer) reset(bigEndian bool) {
	*s = sequencer{bigEndian: bigEndian}
}

func (s *sequencer) String() string {
	if s.state == seqIdle {
		return "seq=idle"
	}
	return fmt.Sprintf("seq=%s(%s)", s.state, s.req)
}

// lane returns the bit position of the byte or half-word at the address
// within the aligned word.
func (s *sequencer) lane(address uint32, size bus.Size) uint32 {
	switch size {
	case bus.Byte:
		if s.bigEndian {
			return (3 - address&0x03) * 8
		}
		return (address & 0x03) * 8
	case bus.Half:
		if s.bigEndian {
			return (2 - address&0x02) * 8
		}
		return (address & 0x02) * 8
	}
	return 0
}

// issue a new data request. must only be called when the sequencer is idle.
func (s *sequencer) issue(acc access, id uint64) *bus.Request {
	s.acc = acc
	s.req = bus.Request{
		ID:      id,
		Op:      acc.op,
		Size:    acc.size,
		Address: acc.address,
	}

	switch acc.op {
	case bus.Read:
		s.state = seqPendingLoad
	case bus.Write:
		s.state = seqPendingStore
		lane := s.lane(acc.address, acc.size)
		switch acc.size {
		case bus.Byte:
			s.req.Data = (acc.data & 0xff) * 0x01010101
			s.req.ByteEnable = 0x01 << (lane / 8)
		case bus.Half:
			s.req.Data = (acc.data & 0xffff) * 0x00010001
			s.req.ByteEnable = 0x03 << (lane / 8)
		default:
			s.req.Data = acc.data
			s.req.ByteEnable = 0x0f
		}
	case bus.Invalidate:
		s.state = seqPendingStore
	}

	req := s.req
	return &req
}

// request returns the outstanding request or nil if the sequencer is idle.
func (s *sequencer) request() *bus.Request {
	if s.state == seqIdle {
		return nil
	}
	req := s.req
	return &req
}

// extract the loaded value from the word returned by the memory system.
func (s *sequencer) extract(word uint32) uint32 {
	v := word >> s.lane(s.acc.address, s.acc.size)
	switch s.acc.size {
	case bus.Byte:
		if s.acc.signed {
			return uint32(int32(int8(v)))
		}
		return v & 0xff
	case bus.Half:
		if s.acc.signed {
			return uint32(int32(int16(v)))
		}
		return v & 0xffff
	}
	return word
}

// response consumes the data response of the memory system. the wait return
// value is true if a request is outstanding and the response has not arrived.
//
// a completed load is returned as a valid Bypass. the register write must be
// committed by the caller before the writes of the instruction in the same
// cycle.
func (s *sequencer) response(resp bus.Response) (load registers.Bypass, exc *exceptions.Exception, wait bool) {
	if s.state == seqIdle {
		return registers.Bypass{}, nil, false
	}

	if !resp.Valid || resp.ID != s.req.ID {
		return registers.Bypass{}, nil, true
	}

	state := s.state
	s.state = seqIdle

	if resp.BusError {
		return registers.Bypass{}, exceptions.NewWithAddress(exceptions.BusErrorData, s.acc.address), false
	}

	if state == seqPendingLoad {
		load = registers.Bypass{
			Reg:   s.acc.dest,
			Value: s.extract(resp.Word),
			Valid: true,
		}
	}

	return load, nil, false
}
