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

// Package comparison runs two platforms side by side and compares the
// instructions retired by each core. The two platforms will usually be
// created from the same description but with different preferences or memory
// latency.
//
// The platforms are not compared cycle by cycle. Instructions are queued as
// they retire and are compared once both platforms have retired them, which
// means that two platforms with different memory latency can be compared
// meaningfully.
//
// When the platforms diverge the Report() function describes the difference
// between the most recently retired instructions of the two platforms.
package comparison
