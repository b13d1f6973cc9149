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

// Package monitor is an interactive command line for a running platform. It
// is a much reduced form of a debugger: the platform can be stepped one cycle
// at a time, run until a breakpoint, and the state of the cores and memory
// examined and changed.
//
// Commands are read one line at a time from any io.Reader. Commands are not
// case sensitive and a command can be abbreviated to any unique prefix. An
// empty line repeats the previous STEP command.
//
// The KEYS command puts the terminal into cbreak mode so that the platform can
// be stepped with a single key press. In keys mode the space bar steps a
// single cycle, the return key steps until the selected core retires an
// instruction and 'q' returns to the normal command line.
//
// The MEMVIZ command writes a graphviz description of the selected core's
// registers to a file. The file can be rendered with the dot tool.
package monitor
