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

// Package bus defines the transactions exchanged between a core and the
// memory system.
//
// Each cycle a core produces Outputs: an instruction fetch request and
// optionally a data request. The memory system answers with the Inputs of
// the next cycle. A response that is not Valid indicates that the memory
// system has not finished the transaction. The core will repeat the same
// request (with the same ID) every cycle until it receives a valid response.
package bus
