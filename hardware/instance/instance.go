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

// Package instance defines those parts of the simulation that might change
// from instance to instance of the Platform type, but is not actually the
// Platform itself.
//
// Particularly useful when running more than one instance of the simulation in
// parallel, as the comparison package does.
package instance

import (
	"github.com/socsim/socsim/hardware/preferences"
	"github.com/socsim/socsim/random"
)

// Label indicates the context of the instance.
type Label string

// List of valid Label values.
const (
	Main       Label = ""
	Comparison Label = "comparison"
)

// Instance defines those parts of the simulation that might change between
// different instantiations of the Platform type.
type Instance struct {
	Label Label

	Random *random.Random

	// the preferences of the running instance. this instance can be shared
	// with other running instances of the simulation.
	Prefs *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// The clk argument is the source of simulation time for the random number
// generator and may be nil (use Random.Plumb() to supply it later). The prefs
// argument can also be nil, in which case a new prefs instance will be
// created. Providing a non-nil value allows the preferences of more than one
// instance to be synchronised.
func NewInstance(clk random.Clock, prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{
		Random: random.NewRandom(clk),
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	ins.Prefs = prefs

	return ins, nil
}

// Normalise ensures the instance is in an known default state. Useful for
// regression testing where the initial state must be the same for every run of
// the test.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.Prefs.SetDefaults()
}
