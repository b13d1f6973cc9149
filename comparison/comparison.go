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

package comparison

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/socsim/socsim/curated"
	"github.com/socsim/socsim/disassembly"
	"github.com/socsim/socsim/hardware"
	"github.com/socsim/socsim/hardware/cpu/execution"
)

// Sentinal errors.
const (
	CoreMismatch = "comparison: platforms have a different number of cores (%d and %d)"
	Divergence   = "comparison: core %d diverged after %d instructions"
)

// DefaultContext is the number of instructions included in the report.
const DefaultContext = 8

// a record is the textual representation of a retired instruction or an
// exception. the text is compared as well as reported
type record string

func newRecord(r *execution.Result) record {
	e := disassembly.FormatResult(*r)
	s := e.String()
	if r.Exception != nil {
		s = fmt.Sprintf("%s ; %s epc=%08x", s, r.Exception, r.EPC)
	}
	return record(s)
}

// the queue of records for a single core of one of the platforms
type queue struct {
	pending []record

	// most recent matched or diverged records. used for the report
	history []record
}

func (q *queue) remember(r record, context int) {
	q.history = append(q.history, r)
	if len(q.history) > context {
		q.history = q.history[len(q.history)-context:]
	}
}

// Comparison runs the driver and passenger platforms in step.
type Comparison struct {
	Driver    *hardware.Platform
	Passenger *hardware.Platform

	// the number of instructions kept for the report
	context int

	// queues for each core of each platform
	driver    []queue
	passenger []queue

	// number of records compared for each core
	compared []int

	// the core that diverged. -1 if there has been no divergence
	diverged int
}

// NewComparison is the preferred method of initialisation for the Comparison
// type. The context argument is the number of instructions included in a
// report. Both platforms should be reset and ready to run.
func NewComparison(driver *hardware.Platform, passenger *hardware.Platform, context int) (*Comparison, error) {
	if len(driver.Cores) != len(passenger.Cores) {
		return nil, curated.Errorf(CoreMismatch, len(driver.Cores), len(passenger.Cores))
	}

	if context < 1 {
		context = DefaultContext
	}

	n := len(driver.Cores)

	return &Comparison{
		Driver:    driver,
		Passenger: passenger,
		context:   context,
		driver:    make([]queue, n),
		passenger: make([]queue, n),
		compared:  make([]int, n),
		diverged:  -1,
	}, nil
}

func (cmp *Comparison) String() string {
	s := strings.Builder{}
	for i, n := range cmp.compared {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(fmt.Sprintf("core %d: %d", i, n))
	}
	return s.String()
}

// Compared returns the total number of instructions compared.
func (cmp *Comparison) Compared() int {
	var n int
	for _, c := range cmp.compared {
		n += c
	}
	return n
}

// Diverged returns the core that diverged and true. Returns false if the
// platforms have not diverged.
func (cmp *Comparison) Diverged() (int, bool) {
	return cmp.diverged, cmp.diverged >= 0
}

// Step both platforms by one cycle. Returns the Divergence error if the
// platforms no longer match. Further calls to Step() will return the same
// error.
func (cmp *Comparison) Step() error {
	if cmp.diverged >= 0 {
		return curated.Errorf(Divergence, cmp.diverged, cmp.compared[cmp.diverged])
	}

	err := cmp.Driver.Step(func(core int, r *execution.Result) error {
		if r.Retired || r.Exception != nil {
			cmp.driver[core].pending = append(cmp.driver[core].pending, newRecord(r))
		}
		return nil
	})
	if err != nil {
		return err
	}

	err = cmp.Passenger.Step(func(core int, r *execution.Result) error {
		if r.Retired || r.Exception != nil {
			cmp.passenger[core].pending = append(cmp.passenger[core].pending, newRecord(r))
		}
		return nil
	})
	if err != nil {
		return err
	}

	for core := range cmp.compared {
		if !cmp.compare(core) {
			cmp.diverged = core
			return curated.Errorf(Divergence, core, cmp.compared[core])
		}
	}

	return nil
}

// compare the pending records of the core. returns false on divergence.
func (cmp *Comparison) compare(core int) bool {
	d := &cmp.driver[core]
	p := &cmp.passenger[core]

	n := min(len(d.pending), len(p.pending))
	for i := 0; i < n; i++ {
		d.remember(d.pending[i], cmp.context)
		p.remember(p.pending[i], cmp.context)
		if d.pending[i] != p.pending[i] {
			d.pending = d.pending[i+1:]
			p.pending = p.pending[i+1:]
			return false
		}
		cmp.compared[core]++
	}

	d.pending = d.pending[n:]
	p.pending = p.pending[n:]

	return true
}

// Run both platforms for the number of cycles or until the platforms
// diverge.
func (cmp *Comparison) Run(numCycles uint64) error {
	for i := uint64(0); i < numCycles; i++ {
		if err := cmp.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Report describes the difference between the recent instructions of the two
// platforms. Lines only in the driver are prefixed with '-' and lines only in
// the passenger are prefixed with '+'. Returns the empty string if there has
// been no divergence.
func (cmp *Comparison) Report() string {
	if cmp.diverged < 0 {
		return ""
	}

	join := func(h []record) string {
		s := strings.Builder{}
		for _, r := range h {
			s.WriteString(string(r))
			s.WriteString("\n")
		}
		return s.String()
	}

	a := join(cmp.driver[cmp.diverged].history)
	b := join(cmp.passenger[cmp.diverged].history)

	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("core %d diverged after %d instructions\n", cmp.diverged, cmp.compared[cmp.diverged]))

	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		default:
			prefix = "  "
		}
		for _, l := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			s.WriteString(prefix)
			s.WriteString(l)
			s.WriteString("\n")
		}
	}

	return s.String()
}
