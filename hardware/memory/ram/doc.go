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

// Package ram implements the backing store of a platform. It answers the
// requests of any number of memory ports, each of which can be configured
// with an access latency.
//
// Memory is divided into regions. An access to an address outside of every
// region, or a write to a read-only region, results in a bus error.
//
// The latency of a port is the number of cycles for which the response to a
// new transaction is withheld. A latency of zero means that the response is
// available in the cycle following the request.
package ram
