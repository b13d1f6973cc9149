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

package monitor

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/socsim/socsim/curated"
	"github.com/socsim/socsim/hardware"
	"github.com/socsim/socsim/symbols"
	"github.com/socsim/socsim/trace"
)

// Sentinal errors.
const (
	UnknownCommand   = "monitor: unknown command (%s)"
	AmbiguousCommand = "monitor: ambiguous command (%s)"
	CommandArgs      = "monitor: %s: %v"
	InputError       = "monitor: %v"
)

// the maximum number of cycles executed by the RUN command when no limit is
// given
const defaultRunLimit = 1000000

// Monitor is an interactive command line for a Platform.
type Monitor struct {
	plt *hardware.Platform

	input  *bufio.Scanner
	output io.Writer

	// the core selected with the CORE command
	core int

	// breakpoints on the address of the next instruction of any core
	breakpoints map[uint32]bool

	// the platform will halt when any core reaches this address. the
	// breakpoint cannot be removed with the BREAK command
	halt *uint32

	// symbols can be used in place of addresses. never nil
	symbols *symbols.Symbols

	// the tracer used to print the result of each cycle
	tracer *trace.Tracer

	// saved by the SNAPSHOT command and plumbed in by the RESTORE command
	snapshot *hardware.State

	// opens the terminal in cbreak mode for the KEYS command
	openKeys func() (io.ReadCloser, error)

	errorStyle *color.Color

	// the most recent STEP command. repeated on an empty line
	lastStep []string

	quit bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// Color should only be true if the output is a terminal.
func NewMonitor(plt *hardware.Platform, input io.Reader, output io.Writer, useColor bool) *Monitor {
	mon := &Monitor{
		plt:         plt,
		input:       bufio.NewScanner(input),
		output:      output,
		breakpoints: make(map[uint32]bool),
		symbols:     symbols.NewSymbols(),
		tracer:      trace.NewTracer(output, trace.Attr{Frozen: true, Color: useColor, Core: -1}),
		openKeys:    openTerminal,
		errorStyle:  color.New(color.FgRed),
	}

	if useColor {
		mon.errorStyle.EnableColor()
	} else {
		mon.errorStyle.DisableColor()
	}

	return mon
}

// SetSymbols sets the symbol table used by the monitor. Symbols can be used
// wherever a command expects an address.
func (mon *Monitor) SetSymbols(sym *symbols.Symbols) {
	if sym == nil {
		sym = symbols.NewSymbols()
	}
	mon.symbols = sym
}

// Halt sets an address that will stop the RUN command when any core reaches
// it. This is normally the halt address from the platform description.
func (mon *Monitor) Halt(address uint32) {
	mon.halt = &address
}

func (mon *Monitor) printLine(s string, a ...any) {
	fmt.Fprintf(mon.output, s, a...)
	fmt.Fprintln(mon.output)
}

func (mon *Monitor) printError(err error) {
	mon.errorStyle.Fprintf(mon.output, "* %v\n", err)
}

func (mon *Monitor) prompt() string {
	mc := mon.plt.Cores[mon.core]
	return fmt.Sprintf("[%d] c%d %08x > ", mon.plt.Cycles(), mon.core, mc.GetPC())
}

// Start the monitor. Returns when the QUIT command is entered or when the
// input has been exhausted. Errors from individual commands are printed to
// the output and do not cause the function to return.
func (mon *Monitor) Start() error {
	mon.printLine("%s", mon.plt)

	for !mon.quit {
		io.WriteString(mon.output, mon.prompt())

		if !mon.input.Scan() {
			if err := mon.input.Err(); err != nil {
				return curated.Errorf(InputError, err)
			}
			io.WriteString(mon.output, "\n")
			return nil
		}

		tokens := strings.Fields(mon.input.Text())

		// empty input repeats the last step command
		if len(tokens) == 0 {
			if mon.lastStep == nil {
				continue
			}
			tokens = mon.lastStep
		}

		if err := mon.command(tokens); err != nil {
			mon.printError(err)
		}
	}

	return nil
}

// step the platform by one cycle, printing the result of each core.
func (mon *Monitor) step() error {
	return mon.plt.Step(mon.tracer.Trace)
}

// run the platform until the limit is reached or a core moves to a
// breakpoint. nothing is printed for each cycle. returns the core that reached
// the breakpoint or -1 if the limit was reached.
func (mon *Monitor) run(limit uint64) (int, error) {
	pcs := make([]uint32, len(mon.plt.Cores))

	for i := uint64(0); i < limit; i++ {
		for c, mc := range mon.plt.Cores {
			pcs[c] = mc.GetPC()
		}

		if err := mon.plt.Step(nil); err != nil {
			return -1, err
		}

		for c, mc := range mon.plt.Cores {
			pc := mc.GetPC()
			if pc == pcs[c] {
				continue
			}
			if mon.breakpoints[pc] || (mon.halt != nil && *mon.halt == pc) {
				return c, nil
			}
		}
	}

	return -1, nil
}
