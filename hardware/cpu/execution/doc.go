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

// Package execution tracks the result of each cycle of the core. The Result
// type stores detailed information about what happened in the cycle and can be
// used to produce output for trace files, digests and the monitor.
//
// The Result.IsValid() function can be used to check whether a result is
// internally consistent. The cpu package doesn't call this function because it
// would introduce unwanted performance penalties, but it's probably okay to use
// in a debugging context.
package execution
