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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/socsim/socsim/hardware/cpu/execution"
)

// size of a single record in the hash
const recordSize = 14

// Retired produces a hash of the instructions retired by every core of a
// platform, and of the exceptions taken. The hash does not depend on the
// number of cycles the instructions took to complete, so two runs of the same
// program with different memory latency will produce the same hash.
//
// Frozen cycles do not contribute to the hash.
type Retired struct {
	hash   hash.Hash
	record [recordSize]byte

	// number of records in the hash
	Count int
}

// NewRetired is the preferred method of initialisation for the Retired type.
func NewRetired() *Retired {
	return &Retired{
		hash: sha1.New(),
	}
}

// Hash implements the digest.Digest interface.
func (dig *Retired) Hash() string {
	return fmt.Sprintf("%x", dig.hash.Sum(nil))
}

// ResetDigest implements the digest.Digest interface.
func (dig *Retired) ResetDigest() {
	dig.hash.Reset()
	dig.Count = 0
}

// Trace adds the result of a cycle to the hash. Matches the signature of the
// cycleCallback argument of hardware.Platform.Step().
func (dig *Retired) Trace(core int, r *execution.Result) error {
	if !r.Retired && r.Exception == nil {
		return nil
	}

	dig.record[0] = uint8(core)
	binary.BigEndian.PutUint32(dig.record[1:], r.Address)
	binary.BigEndian.PutUint32(dig.record[5:], uint32(r.Word))
	if r.Exception != nil {
		dig.record[9] = uint8(r.Exception.Code)
		binary.BigEndian.PutUint32(dig.record[10:], r.EPC)
	} else {
		dig.record[9] = 0xff
		binary.BigEndian.PutUint32(dig.record[10:], 0)
	}

	// writes to a hash.Hash never return an error
	_, _ = dig.hash.Write(dig.record[:])
	dig.Count++

	return nil
}
