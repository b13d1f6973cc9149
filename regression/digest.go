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

package regression

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/socsim/socsim/database"
	"github.com/socsim/socsim/digest"
	"github.com/socsim/socsim/govern"
	"github.com/socsim/socsim/hardware/instance"
	"github.com/socsim/socsim/hardware/preferences"
	"github.com/socsim/socsim/loader"
	"github.com/socsim/socsim/prefs"
)

const digestEntryType = "digest"

const (
	digestFieldDescription int = iota
	digestFieldCycles
	digestFieldPrefs
	digestFieldDigest
	digestFieldNotes
	numDigestFields
)

// DigestRegression is the simplest regression type. It runs the platform for
// a fixed number of cycles, or until it halts, and compares the digest of the
// retired instructions.
type DigestRegression struct {
	Description string
	Cycles      uint64

	// command line preferences applied when the platform is built. in the
	// format accepted by prefs.PushCommandLineStack()
	Prefs string

	Notes  string
	digest string
}

// NewDigestRegression is the preferred method of initialisation for the
// DigestRegression type. The description filename is made absolute.
func NewDigestRegression(description string, cycles uint64, prefs string, notes string) (*DigestRegression, error) {
	fn, err := filepath.Abs(description)
	if err != nil {
		return nil, err
	}

	if strings.Contains(fn, ",") || strings.Contains(prefs, ",") || strings.Contains(notes, ",") {
		return nil, fmt.Errorf("commas are not allowed in a digest regression")
	}

	return &DigestRegression{
		Description: fn,
		Cycles:      cycles,
		Prefs:       prefs,
		Notes:       notes,
	}, nil
}

func deserialiseDigestEntry(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != numDigestFields {
		return nil, fmt.Errorf("digest entry: wrong number of fields (%d)", len(fields))
	}

	reg := &DigestRegression{
		Description: fields[digestFieldDescription],
		Prefs:       fields[digestFieldPrefs],
		digest:      fields[digestFieldDigest],
		Notes:       fields[digestFieldNotes],
	}

	var err error
	reg.Cycles, err = strconv.ParseUint(fields[digestFieldCycles], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("digest entry: invalid cycles field (%s)", fields[digestFieldCycles])
	}

	return reg, nil
}

// EntryType implements the database.Entry interface.
func (reg DigestRegression) EntryType() string {
	return digestEntryType
}

// Serialise implements the database.Entry interface.
func (reg *DigestRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		reg.Description,
		strconv.FormatUint(reg.Cycles, 10),
		reg.Prefs,
		reg.digest,
		reg.Notes,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (reg DigestRegression) CleanUp() error {
	return nil
}

// String implements the database.Entry interface.
func (reg DigestRegression) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s] %s cycles=%d", digestEntryType, filepath.Base(reg.Description), reg.Cycles))
	if reg.Prefs != "" {
		s.WriteString(fmt.Sprintf(" prefs=%s", reg.Prefs))
	}
	if reg.Notes != "" {
		s.WriteString(fmt.Sprintf(" [%s]", reg.Notes))
	}
	return s.String()
}

// Digest returns the recorded digest. Empty if the regression has never been
// run.
func (reg DigestRegression) Digest() string {
	return reg.digest
}

// regress implements the Regressor interface.
func (reg *DigestRegression) regress(newRegression bool, output io.Writer) (bool, string, error) {
	desc, err := loader.ReadDescription(reg.Description)
	if err != nil {
		return false, "", err
	}

	prefs.PushCommandLineStack(reg.Prefs)
	p, err := preferences.NewPreferences()
	prefs.PopCommandLineStack()
	if err != nil {
		return false, "", err
	}

	ins, err := instance.NewInstance(nil, p)
	if err != nil {
		return false, "", err
	}

	// regression tests are always run with the same random sequence
	ins.Normalise()

	plt, err := desc.Build(ins)
	if err != nil {
		return false, "", err
	}

	dig := digest.NewRetired()
	plt.CycleCallback = dig.Trace

	err = plt.RunForCycles(reg.Cycles, func(_ uint64) (govern.State, error) {
		if desc.Halted(plt) {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	if err != nil {
		return false, "", err
	}

	if newRegression {
		reg.digest = dig.Hash()
		return true, "", nil
	}

	if dig.Hash() != reg.digest {
		return false, fmt.Sprintf("digest mismatch after %d instructions (%s)", dig.Count, dig.Hash()), nil
	}

	return true, "", nil
}
