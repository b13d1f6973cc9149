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

package logger

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// Colorizer applies basic coloring rules to logging output. The first line
// of a write is printed normally and any continuation lines are dimmed.
type Colorizer struct {
	out  io.Writer
	tail *color.Color
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{
		out:  out,
		tail: color.New(color.FgRed, color.Faint),
	}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	l := strings.Split(strings.TrimSpace(string(p)), "\n")
	if len(l) == 0 {
		return 0, nil
	}

	n, err := io.WriteString(c.out, l[0]+"\n")
	if err != nil {
		return n, err
	}

	for _, s := range l[1:] {
		m, err := c.tail.Fprintln(c.out, s)
		n += m
		if err != nil {
			return n, err
		}
	}

	return n, nil
}
