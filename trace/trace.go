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

package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/socsim/socsim/curated"
	"github.com/socsim/socsim/disassembly"
	"github.com/socsim/socsim/hardware/cpu/execution"
	"github.com/socsim/socsim/logger"
	"github.com/socsim/socsim/paths"
)

// Sentinal errors.
const (
	TraceFile = "trace: %v"
)

// Attr controls what is written by the Tracer.
type Attr struct {
	// include frozen cycles
	Frozen bool

	// apply colour to the trace
	Color bool

	// only trace the core with this identifier. a negative value means every
	// core is traced
	Core int
}

// Tracer writes the trace of a platform.
type Tracer struct {
	output io.Writer
	attr   Attr

	// the underlying file if the Tracer was created by NewFileTracer()
	file *os.File

	exception *color.Color
	frozen    *color.Color
	taken     *color.Color
	access    *color.Color

	// number of lines written
	Lines int
}

// NewTracer is the preferred method of initialisation for the Tracer type.
func NewTracer(output io.Writer, attr Attr) *Tracer {
	trc := &Tracer{
		output:    output,
		attr:      attr,
		exception: color.New(color.FgRed, color.Bold),
		frozen:    color.New(color.Faint),
		taken:     color.New(color.FgYellow),
		access:    color.New(color.FgCyan),
	}

	// colour is controlled by the Color attribute and not by whether the
	// output is a terminal
	for _, c := range []*color.Color{trc.exception, trc.frozen, trc.taken, trc.access} {
		if attr.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return trc
}

// NewFileTracer creates a Tracer that writes to a new file in the directory.
// The name of the file is unique and is based on the name argument. Colour is
// never used when writing to a file.
func NewFileTracer(dir string, name string, attr Attr) (*Tracer, error) {
	fn := filepath.Join(dir, paths.UniqueFilename("trace", name))

	f, err := os.Create(fn)
	if err != nil {
		return nil, curated.Errorf(TraceFile, err)
	}
	logger.Logf(logger.Allow, "trace", "writing trace to %s", fn)

	attr.Color = false
	trc := NewTracer(f, attr)
	trc.file = f

	return trc, nil
}

// Filename returns the name of the file being written to. Empty string if the
// Tracer was not created by NewFileTracer().
func (trc *Tracer) Filename() string {
	if trc.file == nil {
		return ""
	}
	return trc.file.Name()
}

// Close the underlying file, if there is one.
func (trc *Tracer) Close() error {
	if trc.file == nil {
		return nil
	}
	if err := trc.file.Close(); err != nil {
		return curated.Errorf(TraceFile, err)
	}
	trc.file = nil
	return nil
}

// Trace writes the result of a single core's cycle. Matches the signature of
// the cycleCallback argument of hardware.Platform.Step().
func (trc *Tracer) Trace(core int, r *execution.Result) error {
	if trc.attr.Core >= 0 && core != trc.attr.Core {
		return nil
	}

	prefix := fmt.Sprintf("c%d %08x ", core, r.Cycle)

	var err error

	switch {
	case r.Frozen:
		if !trc.attr.Frozen {
			return nil
		}
		_, err = trc.frozen.Fprintf(trc.output, "%s%08x -------- frozen\n", prefix, r.Address)

	default:
		e := disassembly.FormatResult(*r)
		line := fmt.Sprintf("%s%s %-8s %-7s %s", prefix, e.Address, e.Bytecode, e.Operator, e.Operand)

		var c *color.Color
		switch {
		case r.Exception != nil:
			c = trc.exception
		case r.BranchTaken:
			c = trc.taken
		case r.Access != nil:
			c = trc.access
		}

		if n := e.Notes(); n != "" {
			line = fmt.Sprintf("%s ; %s", line, n)
		}

		if c != nil {
			_, err = c.Fprintln(trc.output, line)
		} else {
			_, err = fmt.Fprintln(trc.output, line)
		}
	}

	if err != nil {
		return curated.Errorf(TraceFile, err)
	}

	trc.Lines++

	return nil
}
