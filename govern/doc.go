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

// Package govern defines the types that describe the current condition of the
// simulation. The two conditions are Mode and State.
//
// The Mode is chosen on the command line and doesn't change for the life of
// the program. The State changes as the simulation runs and is most often the
// result of a continue check function supplied to the Run() functions of the
// hardware package.
package govern
