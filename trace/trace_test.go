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

package trace_test

import (
	"os"
	"strings"
	"testing"

	"github.com/socsim/socsim/hardware/cpu/exceptions"
	"github.com/socsim/socsim/hardware/cpu/execution"
	"github.com/socsim/socsim/hardware/memory/bus"
	"github.com/socsim/socsim/test"
	"github.com/socsim/socsim/trace"
)

func TestTrace(t *testing.T) {
	w := &test.CompareWriter{}
	trc := trace.NewTracer(w, trace.Attr{Core: -1})

	r := execution.Result{
		Cycle:   2,
		Address: 0xbfc00008,
		Word:    0x8c820010,
		Fetched: true,
		Retired: true,
		Access:  &bus.Request{ID: 5, Op: bus.Read, Size: bus.Word, Address: 0x10},
		Final:   true,
	}
	test.ExpectSuccess(t, trc.Trace(0, &r))

	r = execution.Result{
		Cycle:   3,
		Address: 0xbfc0000c,
		Frozen:  true,
		Final:   true,
	}
	test.ExpectSuccess(t, trc.Trace(1, &r))

	test.ExpectEquality(t, trc.Lines, 1)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "c0 00000002 bfc00008 8c820010 lw      $v0, 16($a0) ; "))
	test.ExpectEquality(t, strings.Count(w.String(), "\n"), 1)
}

func TestTraceFrozen(t *testing.T) {
	w := &test.CompareWriter{}
	trc := trace.NewTracer(w, trace.Attr{Frozen: true, Core: 1})

	r := execution.Result{
		Cycle:   3,
		Address: 0xbfc0000c,
		Frozen:  true,
		Final:   true,
	}
	test.ExpectSuccess(t, trc.Trace(1, &r))

	// core zero is filtered out
	test.ExpectSuccess(t, trc.Trace(0, &r))

	test.ExpectSuccess(t, w.Compare("c1 00000003 bfc0000c -------- frozen\n"))
}

func TestTraceException(t *testing.T) {
	w := &test.CompareWriter{}
	trc := trace.NewTracer(w, trace.Attr{Core: -1})

	r := execution.Result{
		Cycle:     10,
		Address:   0x00000100,
		Word:      0x0000000c,
		Fetched:   true,
		Exception: exceptions.New(exceptions.Syscall),
		EPC:       0x00000100,
		Final:     true,
	}
	test.ExpectSuccess(t, trc.Trace(0, &r))
	test.ExpectSuccess(t, strings.Contains(w.String(), "syscall"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "Sys epc=00000100"))
}

func TestFileTracer(t *testing.T) {
	dir := t.TempDir()

	trc, err := trace.NewFileTracer(dir, "test", trace.Attr{Core: -1, Color: true})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(trc.Filename(), "trace_test_"))

	r := execution.Result{
		Address: 0xbfc00000,
		Word:    0x24010009,
		Fetched: true,
		Retired: true,
		Final:   true,
	}
	test.ExpectSuccess(t, trc.Trace(0, &r))
	fn := trc.Filename()
	test.ExpectSuccess(t, trc.Close())
	test.ExpectEquality(t, trc.Filename(), "")

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	// colour is never written to a file
	test.ExpectEquality(t, string(data), "c0 00000000 bfc00000 24010009 addiu   $at, $zero, 9\n")
}
