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

package database_test

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/socsim/socsim/curated"
	"github.com/socsim/socsim/database"
	"github.com/socsim/socsim/test"
)

type testEntry struct {
	name    string
	cleaned *bool
}

func (e testEntry) EntryType() string {
	return "test"
}

func (e testEntry) String() string {
	return fmt.Sprintf("test entry %s", e.name)
}

func (e testEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{e.name, "x"}, nil
}

func (e testEntry) CleanUp() error {
	if e.cleaned != nil {
		*e.cleaned = true
	}
	return nil
}

func initSession(db *database.Session) error {
	return db.RegisterEntryType("test", func(fields database.SerialisedEntry) (database.Entry, error) {
		if len(fields) != 2 {
			return nil, fmt.Errorf("wrong number of fields")
		}
		return testEntry{name: fields[0]}, nil
	})
}

func TestSession(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	// the database must exist unless it is being created
	_, err := database.StartSession(pth, database.ActivityReading, initSession)
	test.ExpectSuccess(t, curated.Is(err, database.DatabaseError))

	db, err := database.StartSession(pth, database.ActivityCreating, initSession)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, db.NumEntries(), 0)

	for _, n := range []string{"a", "b", "c"} {
		key, err := db.Add(testEntry{name: n})
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, key, int(n[0]-'a'))
	}
	test.ExpectSuccess(t, db.EndSession(true))

	db, err = database.StartSession(pth, database.ActivityModifying, initSession)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, db.NumEntries(), 3)

	var cleaned bool
	ent, err := db.Get(1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ent.String(), "test entry b")

	_, err = db.Get(10)
	test.ExpectSuccess(t, curated.Is(err, database.NoKey))

	// replace entry with one that records the cleanup
	test.ExpectSuccess(t, db.Delete(1))
	key, err := db.Add(testEntry{name: "d", cleaned: &cleaned})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, key, 1)
	test.ExpectSuccess(t, db.Delete(1))
	test.ExpectSuccess(t, cleaned)
	test.ExpectSuccess(t, db.EndSession(true))

	db, err = database.StartSession(pth, database.ActivityReading, initSession)
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, db.List(w))
	test.ExpectEquality(t, w.String(), "000 test entry a\n002 test entry c\nTotal: 2\n")

	_, err = db.Add(testEntry{name: "e"})
	test.ExpectSuccess(t, curated.Is(err, database.SessionReading))
	test.ExpectSuccess(t, db.EndSession(true))
}

func TestSelect(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(pth, database.ActivityCreating, initSession)
	test.DemandSuccess(t, err)
	defer db.EndSession(false)

	ent, err := db.SelectAll(nil)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ent == nil)

	for _, n := range []string{"a", "b", "c", "d"} {
		_, err := db.Add(testEntry{name: n})
		test.DemandSuccess(t, err)
	}

	var names []string
	_, err = db.SelectAll(func(key int, ent database.Entry) (bool, error) {
		names = append(names, ent.(testEntry).name)
		return key < 2, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Join(names, ""), "abc")

	names = names[:0]
	ent, err = db.SelectKeys(func(key int, ent database.Entry) (bool, error) {
		names = append(names, ent.(testEntry).name)
		return true, nil
	}, 3, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Join(names, ""), "da")
	test.ExpectEquality(t, ent.(testEntry).name, "a")

	_, err = db.SelectKeys(nil, 7)
	test.ExpectSuccess(t, curated.Is(err, database.NoKey))
}

func TestInvalidFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(pth, database.ActivityCreating, func(db *database.Session) error {
		return nil
	})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, db.EndSession(false))

	// an entry type that is not registered
	db, err = database.StartSession(pth, database.ActivityCreating, initSession)
	test.DemandSuccess(t, err)
	_, err = db.Add(testEntry{name: "a"})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, db.EndSession(true))

	_, err = database.StartSession(pth, database.ActivityReading, func(db *database.Session) error {
		return nil
	})
	test.ExpectSuccess(t, curated.Is(err, database.InvalidEntry))
}
