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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/socsim/socsim/curated"
	"github.com/socsim/socsim/govern"
	"github.com/socsim/socsim/hardware"
)

// sentinal error returned by Run() loop.
const timedOut = "performance: timed out"

// HaltedEarly is returned by Check() if the platform halts before the end of
// the lead time.
const HaltedEarly = "performance: platform halted before measurement began"

// the number of cycles between checks of the timer. checking the timer
// channel is relatively expensive
const performanceBrake = 1000

// time allowed for the simulation to settle before measurement begins.
var leadTime = 2 * time.Second

// Check the performance of the simulator with the supplied platform.
//
// The platform will run for the specified duration and will create a cpu,
// memory profile, a trace (or a combination of those) as defined by the
// Profile argument. The halted function can be nil. If it is not nil then the
// measurement ends early when it returns true.
func Check(output io.Writer, profile Profile, plt *hardware.Platform, halted func() bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	var measuring bool
	var startCycle uint64
	var startTime time.Time

	runner := func() error {
		// signals false when the lead time has elapsed and true when the
		// measurement period has concluded
		timerChan := make(chan bool, 2)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		brake := 0

		return plt.Run(func() (govern.State, error) {
			if halted != nil && halted() {
				return govern.Ending, nil
			}

			brake++
			if brake < performanceBrake {
				return govern.Running, nil
			}
			brake = 0

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, curated.Errorf(timedOut)
				}
				measuring = true
				startCycle = plt.Cycles()
				startTime = time.Now()
			default:
			}

			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !curated.Is(err, timedOut) {
		return err
	}

	if !measuring {
		return curated.Errorf(HaltedEarly)
	}

	elapsed := time.Since(startTime).Seconds()
	numCycles := plt.Cycles() - startCycle

	fmt.Fprintf(output, "%.3f MHz (%d cycles in %.2f seconds)\n", CalcMHz(numCycles, elapsed), numCycles, elapsed)

	return nil
}

// CalcMHz returns the simulated clock rate in MHz.
func CalcMHz(numCycles uint64, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return float64(numCycles) / seconds / 1000000
}
