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

package prefs

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/socsim/socsim/curated"
	"gopkg.in/yaml.v2"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences.yaml"

// WarningBoilerPlate is written at the top of every preferences file.
const WarningBoilerPlate = "# *** do not edit this file by hand unless you know what you are doing ***"

// Sentinal errors.
const (
	NoPrefsFile     = "prefs: no prefs file (%v)"
	UnknownPrefsKey = "prefs: unknown key (%s)"
	PrefsIO         = "prefs: %v"
)

// Disk represents preference values as stored on disk. The file is shared by
// every Disk instance that names it. Keys that are not known to a Disk are
// preserved when the file is saved.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s: %s\n", k, dsk.entries[k]))
	}
	return s.String()
}

// Add preference value to list of values to store/load from Disk. The key
// value will be used to identify the preference in the preferences file.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.ContainsAny(key, " :#") {
		return fmt.Errorf("prefs: illegal key %q", key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all entries to their default value. This is the zero value for each
// type unless a hook alters it.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(PrefsIO, err)
		}
	}
	return nil
}

// Set the value of the entry with the specified key.
func (dsk *Disk) Set(key string, v Value) error {
	p, ok := dsk.entries[key]
	if !ok {
		return curated.Errorf(UnknownPrefsKey, key)
	}
	return p.Set(v)
}

func (dsk *Disk) read() (map[string]string, error) {
	data, err := os.ReadFile(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf(PrefsIO, err)
	}

	m := make(map[string]string)
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, curated.Errorf(PrefsIO, err)
	}

	return m, nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	m, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		m = make(map[string]string)
	}

	for k, p := range dsk.entries {
		m[k] = p.String()
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return curated.Errorf(PrefsIO, err)
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(PrefsIO, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s\n%s", WarningBoilerPlate, data); err != nil {
		return curated.Errorf(PrefsIO, err)
	}

	return nil
}

// Load preference values from disk. Values specified on the command line with
// PushCommandLineStack() take priority over values on disk.
//
// A missing preferences file is reported as a NoPrefsFile error after any
// command line values have been applied.
func (dsk *Disk) Load() error {
	m, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for k, v := range m {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(PrefsIO, err)
			}
		}
	}

	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf(PrefsIO, err)
			}
		}
	}

	return err
}
