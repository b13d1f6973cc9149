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

// Package preferences collates the preference values used by the simulated
// hardware.
package preferences

import (
	"github.com/socsim/socsim/curated"
	"github.com/socsim/socsim/paths"
	"github.com/socsim/socsim/prefs"
)

// Default values for the address preferences.
const (
	DefaultResetVector     = 0xbfc00000
	DefaultExceptionVector = 0x80000080
)

// DefaultPRId is the default implementation field of the PRId register. The
// value is that of the R3000A.
const DefaultPRId = 0x0200

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// initialise general purpose registers to a random state on reset
	RandomState prefs.Bool

	// address of the first instruction fetched after reset
	ResetVector prefs.Address

	// address of the general exception handler. the bootstrap exception
	// vector is used instead when the BEV bit in the STATUS register is set
	ExceptionVector prefs.Address

	// data accesses are big endian rather than little endian
	BigEndian prefs.Bool

	// an exception raised while the core is executing the first instruction
	// of the exception handler causes the update phase to return an error
	AbortDoubleFault prefs.Bool

	// value of the implementation/revision part of the PRId register. the
	// lower eight bits are replaced by the ident of the core
	PRId prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

// NewPreferencesFromFile is like NewPreferences but the values are
// loaded from the named file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("iss.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("iss.resetvector", &p.ResetVector)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("iss.exceptionvector", &p.ExceptionVector)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("iss.bigendian", &p.BigEndian)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("iss.abortdoublefault", &p.AbortDoubleFault)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("iss.prid", &p.PRId)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.RandomState.Set(false)
	p.ResetVector.Set(uint32(DefaultResetVector))
	p.ExceptionVector.Set(uint32(DefaultExceptionVector))
	p.BigEndian.Set(false)
	p.AbortDoubleFault.Set(false)
	p.PRId.Set(DefaultPRId)
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
