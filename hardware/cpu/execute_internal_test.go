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
	"testing"

	"github.com/socsim/socsim/hardware/cpu/decode"
	"github.com/socsim/socsim/hardware/cpu/exceptions"
	"github.com/socsim/socsim/hardware/memory/bus"
	"github.com/socsim/socsim/test"
)

func TestExecuteCoverage(t *testing.T) {
	mc := NewCPU(nil, 0)
	mc.Reset()

	for c := decode.Class(1); c < decode.NumClasses; c++ {
		eff := mc.execute(0, c, 0, 0)
		if eff.exception != nil {
			test.ExpectInequality(t, eff.exception.Code, exceptions.ReservedInstruction, c)
		}
	}

	eff := mc.execute(0, decode.Reserved, 0, 0)
	test.DemandSuccess(t, eff.exception != nil)
	test.ExpectEquality(t, eff.exception.Code, exceptions.ReservedInstruction)
}

func TestExecuteFlowControl(t *testing.T) {
	mc := NewCPU(nil, 0)
	mc.Reset()

	for c := decode.Class(1); c < decode.NumClasses; c++ {
		eff := mc.execute(0, c, 0, 0)
		test.ExpectEquality(t, eff.flowControl, c.IsFlowControl(), c)
	}
}

func TestSequencerLanes(t *testing.T) {
	type lane struct {
		address   uint32
		size      bus.Size
		bigEndian bool
		expected  uint32
	}

	lanes := []lane{
		{0x100, bus.Byte, false, 0},
		{0x101, bus.Byte, false, 8},
		{0x102, bus.Byte, false, 16},
		{0x103, bus.Byte, false, 24},
		{0x100, bus.Byte, true, 24},
		{0x101, bus.Byte, true, 16},
		{0x102, bus.Byte, true, 8},
		{0x103, bus.Byte, true, 0},
		{0x100, bus.Half, false, 0},
		{0x102, bus.Half, false, 16},
		{0x100, bus.Half, true, 16},
		{0x102, bus.Half, true, 0},
		{0x100, bus.Word, false, 0},
		{0x100, bus.Word, true, 0},
	}

	for _, l := range lanes {
		s := sequencer{bigEndian: l.bigEndian}
		test.ExpectEquality(t, s.lane(l.address, l.size), l.expected, l)
	}
}

func TestSequencerStore(t *testing.T) {
	var s sequencer
	s.reset(false)

	req := s.issue(access{op: bus.Write, size: bus.Byte, address: 0x103, data: 0x1234}, 10)
	test.ExpectEquality(t, req.Data, 0x34343434)
	test.ExpectEquality(t, req.ByteEnable, 0x08)
	test.ExpectEquality(t, s.state, seqPendingStore)

	// request is repeated until the response arrives
	test.ExpectEquality(t, *s.request(), *req)
	_, _, wait := s.response(bus.Response{})
	test.ExpectSuccess(t, wait)
	_, _, wait = s.response(bus.Response{Valid: true, ID: 9})
	test.ExpectSuccess(t, wait)

	load, exc, wait := s.response(bus.Response{Valid: true, ID: 10})
	test.ExpectFailure(t, wait)
	test.ExpectSuccess(t, exc == nil)
	test.ExpectFailure(t, load.Valid)
	test.ExpectSuccess(t, s.request() == nil)

	s.reset(true)
	req = s.issue(access{op: bus.Write, size: bus.Half, address: 0x102, data: 0xabcd1234}, 11)
	test.ExpectEquality(t, req.Data, 0x12341234)
	test.ExpectEquality(t, req.ByteEnable, 0x03)
}

func TestSequencerLoad(t *testing.T) {
	var s sequencer
	s.reset(false)

	s.issue(access{op: bus.Read, size: bus.Half, address: 0x102, dest: 5, signed: true}, 1)
	load, exc, wait := s.response(bus.Response{Valid: true, ID: 1, Word: 0x8001ffff})
	test.ExpectFailure(t, wait)
	test.ExpectSuccess(t, exc == nil)
	test.ExpectSuccess(t, load.Valid)
	test.ExpectEquality(t, load.Reg, 5)
	test.ExpectEquality(t, load.Value, 0xffff8001)

	s.issue(access{op: bus.Read, size: bus.Word, address: 0x1000, dest: 6}, 2)
	load, exc, wait = s.response(bus.Response{Valid: true, ID: 2, BusError: true})
	test.ExpectFailure(t, wait)
	test.ExpectFailure(t, load.Valid)
	test.DemandSuccess(t, exc != nil)
	test.ExpectEquality(t, exc.Code, exceptions.BusErrorData)
	test.ExpectEquality(t, exc.BadAddr, 0x1000)
}
