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

package govern

// State indicates the simulation's state.
type State int

// List of possible simulation states.
//
// SimulatorStart is the default state and should never be entered once the
// simulation has begun.
//
// Initialising can be used when reinitialising the simulation. for example,
// when a new platform description is being loaded.
const (
	SimulatorStart State = iota
	Initialising
	Paused
	Stepping
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case SimulatorStart:
		return "SimulatorStart"
	case Initialising:
		return "Initialising"
	case Paused:
		return "Paused"
	case Stepping:
		return "Stepping"
	case Running:
		return "Running"
	case Ending:
		return "Ending"
	}

	return ""
}

// SubState allows more detail for some states. Normal indicates that there is
// no more information to impart about the state.
type SubState int

// List of possible sub states.
const (
	Normal SubState = iota
	PausedAtBreak
	PausedAtFault
)

func (s SubState) String() string {
	switch s {
	case PausedAtBreak:
		return "Paused at break"
	case PausedAtFault:
		return "Paused at fault"
	}
	return ""
}

// StateIntegrity checks whether the combination of state, sub-state makes
// sense.
//
// Rules:
//
//  1. Normal can coexist with any state
//
//  2. PausedAtBreak and PausedAtFault can only be paired with the Paused state
func StateIntegrity(state State, subState SubState) bool {
	if subState == Normal {
		return true
	}
	if state == Paused {
		return subState == PausedAtBreak || subState == PausedAtFault
	}
	return false
}
