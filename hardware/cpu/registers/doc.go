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

// Package registers implements the general purpose register file of the core,
// together with the HI/LO register pair.
//
// A load that completes in a cycle is not visible in the register file until
// the end of that cycle. The Bypass type carries the loaded value so that the
// instruction being decoded in the same cycle sees the new value rather than
// the stale one. See ReadBypassed().
package registers
