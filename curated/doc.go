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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf(), which takes a formatting pattern
// and placeholder values just like fmt.Errorf().
//
// The pattern is what identifies a curated error. Sentinel patterns are
// stored as const strings by the package that raises them and tested for with
// Is() or Has():
//
//	const DoubleFault = "cpu: double fault at %08x"
//
//	err := curated.Errorf(DoubleFault, pc)
//	if curated.Is(err, cpu.DoubleFault) {
//		...
//	}
//
// Has() checks whether a pattern occurs anywhere in the chain of curated
// errors wrapped by %v placeholders.
//
// The Error() implementation normalises the message by removing duplicate
// adjacent parts, parts being separated by the sub-string ": ". This means
// that a function can wrap an error with its own context without worrying
// whether the context was already added further down the call stack:
//
//	loader: loader: image not found
//
// is printed as
//
//	loader: image not found
package curated
