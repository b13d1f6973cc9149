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

// Package memory is the parent of the packages that connect the cores of a
// platform to memory.
//
// The bus package defines the contract between a core and the memory
// subsystem. A core presents at most one fetch request and one data request
// every cycle and is told which of the requests have completed.
//
// The ram package is the memory subsystem used by the platform. It is built
// from regions and has a configurable latency for every port. An address
// that is not in any region results in a bus error.
//
//	   core 0          core 1
//	  |      |        |      |
//	fetch   data    fetch   data
//	  |      |        |      |
//	  \/     \/       \/     \/
//
//	            ram.RAM
//
// Ports are numbered in the order shown, two for every core.
package memory
