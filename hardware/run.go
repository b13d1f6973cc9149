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

package hardware

import (
	"github.com/socsim/socsim/curated"
	"github.com/socsim/socsim/govern"
)

// While the continueCheck() function only runs at the end of a cycle, it can
// still be expensive to do a full continue check every time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// UnsupportedState is returned by the Run() functions when the continue check
// returns a state that can not be handled.
const UnsupportedState = "platform: unsupported simulation state (%s) in Run() function"

// Run sets the simulation running as quickly as possible. The CycleCallback
// field of the platform is called for every core on every cycle. The continueCheck
// function is called at the end of every cycle and can be nil, in which case
// the simulation runs until a core returns an error.
func (plt *Platform) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			if err := plt.Step(plt.CycleCallback); err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForCycles sets the platform running for the specified number of cycles.
// The continueCheck function is called with the cycle count at the end of
// every cycle and can end the run early. It can be nil.
func (plt *Platform) RunForCycles(numCycles uint64, continueCheck func(cycle uint64) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(cycle uint64) (govern.State, error) { return govern.Running, nil }
	}

	targetCycle := plt.cycles + numCycles

	state := govern.Running
	for plt.cycles < targetCycle && state != govern.Ending {
		err := plt.Step(plt.CycleCallback)
		if err != nil {
			return err
		}

		state, err = continueCheck(plt.cycles)
		if err != nil {
			return err
		}
	}

	return nil
}
