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

package modalflag

import (
	"fmt"
	"strings"
)

// help writes the usage message for the current mode to the Output writer.
// The flag descriptions are as formatted by pflag.
func (md *Modes) help() {
	usages := md.flags.FlagUsages()
	banner := md.Path()

	if usages == "" && len(md.subModes) == 0 {
		if banner != "" {
			fmt.Fprintf(md.Output, "No help available for %s\n", banner)
		} else {
			fmt.Fprintln(md.Output, "No help available")
		}
		return
	}

	if banner != "" {
		fmt.Fprintf(md.Output, "Usage for %s mode:\n", banner)
	} else {
		fmt.Fprintln(md.Output, "Usage:")
	}

	fmt.Fprint(md.Output, usages)

	if len(md.subModes) > 0 {
		if usages != "" {
			fmt.Fprintln(md.Output)
		}
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.additionalHelp)
	}
}
