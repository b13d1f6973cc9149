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

package monitor

import (
	"fmt"
	"io"
)

// the most number of cycles a single instruction step will take before
// giving up
const instructionStepLimit = 10000

// step until the selected core is no longer frozen.
func (mon *Monitor) stepInstruction() error {
	mc := mon.plt.Cores[mon.core]
	for i := 0; i < instructionStepLimit; i++ {
		if err := mon.step(); err != nil {
			return err
		}
		if !mc.LastResult.Frozen {
			return nil
		}
	}
	return fmt.Errorf("core %d did not complete an instruction in %d cycles", mon.core, instructionStepLimit)
}

func (mon *Monitor) cmdKeys(_ []string) error {
	keys, err := mon.openKeys()
	if err != nil {
		return err
	}
	defer keys.Close()

	mon.printLine("space steps a cycle, return steps an instruction, q leaves")

	b := make([]byte, 1)
	for {
		n, err := keys.Read(b)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if n == 0 {
			continue
		}

		switch b[0] {
		case ' ':
			err = mon.step()
		case '\n', '\r':
			err = mon.stepInstruction()
		case 'q', 'Q', 0x1b:
			return nil
		}

		if err != nil {
			return err
		}
	}
}
