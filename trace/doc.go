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

// Package trace writes a textual record of every cycle of a platform. The
// Tracer type implements a function suitable for the cycleCallback argument of
// the hardware.Platform.Step() function.
//
// Each line of the trace is prefixed by the core identifier and the value of
// the core's COUNT register at the start of the cycle. For example:
//
//	c0 00000002 bfc00008 8c820010 lw    $v0, 16($a0) ; #5 read word 00000010
//	c0 00000003 bfc0000c -------- frozen
//
// Frozen cycles can be omitted from the trace.
package trace
