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

// Package random should be used in preference to the math/rand package when a
// random number is required inside the simulation.
//
// Numbers are derived from the current simulation time, as reported by the
// Clock interface. The same cycle and the same key will always produce the
// same number for the lifetime of the process. This means that two platforms
// running in lock-step (see the comparison package) see identical values even
// though the values are "random".
//
// If the same random numbers are required every single time the program is
// run then set ZeroSeed to true. This is useful for testing purposes.
package random
