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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock reports the current simulation time in cycles.
type Clock interface {
	Cycles() uint64
}

// Random is a random number generator that is sensitive to time within the
// simulation.
type Random struct {
	clk Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type. The
// clk argument can be nil in which case simulation time is always zero.
func NewRandom(clk Clock) *Random {
	return &Random{
		clk: clk,
	}
}

// Plumb a new clock into the random number generator.
func (rnd *Random) Plumb(clk Clock) {
	rnd.clk = clk
}

func (rnd *Random) rand(key uint64) *rand.Rand {
	var t uint64
	if rnd.clk != nil {
		t = rnd.clk.Cycles()
	}

	seed := int64(t*0x9e3779b97f4a7c15 ^ key)
	if !rnd.ZeroSeed {
		seed += baseSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Uint32 returns a random 32bit value for the current simulation time. The key
// distinguishes separate consumers that ask for a number on the same cycle (eg.
// the core ident in a multi-core platform).
func (rnd *Random) Uint32(key uint64) uint32 {
	return rnd.rand(key).Uint32()
}

// Intn returns a random number in the range [0, n) for the current simulation
// time.
func (rnd *Random) Intn(key uint64, n int) int {
	return rnd.rand(key).Intn(n)
}
