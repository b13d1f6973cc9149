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

// Package hardware is the base package for the simulated platform. It
// contains the Platform type which ties the cores and the memory system
// together.
//
// A call to Platform.Step() advances the simulation by one cycle. Every core
// runs its update phase with the responses produced by the memory at the end
// of the previous cycle. The outputs of every core are then collected and the
// memory answers them, ready for the next cycle.
//
// There is no concurrency inside the platform. Each core exclusively owns its
// architectural state and the cores only communicate through the memory.
package hardware
