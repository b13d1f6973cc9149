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

package database

import "github.com/socsim/socsim/curated"

// SelectAll entries in the database. onSelect can be nil.
//
// onSelect should return false if the selection process is to be discontinued.
func (db Session) SelectAll(onSelect func(int, Entry) (bool, error)) (Entry, error) {
	return db.SelectKeys(onSelect)
}

// SelectKeys matches entries with the specified keys. onSelect can be nil. If
// no keys are specified then every entry is selected. Returns the last entry
// selected, which is nil if the database is empty.
//
// onSelect should return false if the selection process is to be discontinued.
func (db Session) SelectKeys(onSelect func(int, Entry) (bool, error), keys ...int) (Entry, error) {
	var entry Entry

	if onSelect == nil {
		onSelect = func(_ int, _ Entry) (bool, error) { return true, nil }
	}

	keyList := keys
	if len(keys) == 0 {
		keyList = db.SortedKeyList()
	}

	for _, k := range keyList {
		ent, ok := db.entries[k]
		if !ok {
			return entry, curated.Errorf(NoKey, k)
		}
		entry = ent

		cont, err := onSelect(k, entry)
		if err != nil {
			return entry, err
		}
		if !cont {
			break
		}
	}

	return entry, nil
}
