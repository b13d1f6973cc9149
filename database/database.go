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

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/socsim/socsim/curated"
)

// Sentinal errors.
const (
	DatabaseError  = "database: %v"
	MaxEntries     = "database: maximum entries exceeded (max %d)"
	NoKey          = "database: key not available (%d)"
	SessionReading = "database: session is read only"
	InvalidEntry   = "database: line %d: %v"
)

const maxEntries = 1000

const fieldSep = ","
const entrySep = "\n"

const (
	leaderFieldKey int = iota
	leaderFieldType
	numLeaderFields
)

func recordHeader(key int, entryType string) string {
	return fmt.Sprintf("%03d%s%s", key, fieldSep, entryType)
}

// Activity describes what will happen during a session.
type Activity int

// List of valid Activity values.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// Session is an open database.
type Session struct {
	activity Activity
	dbfile   *os.File

	entries    map[int]Entry
	entryTypes map[string]Deserialiser
}

// StartSession opens the database file and reads the entries. The init
// function should register the entry types that the database may contain.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Deserialiser),
	}

	var flags int
	switch activity {
	case ActivityReading:
		flags = os.O_RDONLY
	case ActivityModifying:
		flags = os.O_RDWR
	case ActivityCreating:
		flags = os.O_RDWR | os.O_CREATE
	}

	var err error

	db.dbfile, err = os.OpenFile(path, flags, 0o600)
	if err != nil {
		return nil, curated.Errorf(DatabaseError, err)
	}

	if err := init(db); err != nil {
		db.dbfile.Close()
		return nil, curated.Errorf(DatabaseError, err)
	}

	if err := db.readDBFile(); err != nil {
		db.dbfile.Close()
		return nil, err
	}

	return db, nil
}

// EndSession closes the database file. Entries are written to the file if
// commitChanges is true and the session is not read only.
func (db *Session) EndSession(commitChanges bool) error {
	if db.dbfile == nil {
		return nil
	}

	defer func() {
		db.dbfile.Close()
		db.dbfile = nil
	}()

	if !commitChanges || db.activity == ActivityReading {
		return nil
	}

	if err := db.dbfile.Truncate(0); err != nil {
		return curated.Errorf(DatabaseError, err)
	}
	if _, err := db.dbfile.Seek(0, io.SeekStart); err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]

		ser, err := ent.Serialise()
		if err != nil {
			return curated.Errorf(DatabaseError, err)
		}

		s := strings.Builder{}
		s.WriteString(recordHeader(key, ent.EntryType()))
		for _, f := range ser {
			s.WriteString(fieldSep)
			s.WriteString(f)
		}
		s.WriteString(entrySep)

		if _, err := db.dbfile.WriteString(s.String()); err != nil {
			return curated.Errorf(DatabaseError, err)
		}
	}

	return nil
}

func (db *Session) readDBFile() error {
	buffer, err := io.ReadAll(db.dbfile)
	if err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	lines := strings.Split(string(buffer), entrySep)

	for i, l := range lines {
		l = strings.TrimSpace(l)
		if len(l) == 0 {
			continue
		}

		fields := strings.Split(l, fieldSep)
		if len(fields) < numLeaderFields {
			return curated.Errorf(InvalidEntry, i+1, "missing fields")
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return curated.Errorf(InvalidEntry, i+1, fmt.Sprintf("invalid key (%s)", fields[leaderFieldKey]))
		}

		if _, ok := db.entries[key]; ok {
			return curated.Errorf(InvalidEntry, i+1, fmt.Sprintf("duplicate key (%d)", key))
		}

		des, ok := db.entryTypes[fields[leaderFieldType]]
		if !ok {
			return curated.Errorf(InvalidEntry, i+1, fmt.Sprintf("unrecognised entry type (%s)", fields[leaderFieldType]))
		}

		ent, err := des(fields[numLeaderFields:])
		if err != nil {
			return curated.Errorf(InvalidEntry, i+1, err)
		}

		db.entries[key] = ent
	}

	return nil
}

// NumEntries returns the number of entries in the database.
func (db Session) NumEntries() int {
	return len(db.entries)
}

// SortedKeyList returns the keys of every entry in order.
func (db Session) SortedKeyList() []int {
	keyList := make([]int, 0, len(db.entries))
	for k := range db.entries {
		keyList = append(keyList, k)
	}
	sort.Ints(keyList)
	return keyList
}

// List every entry in key order.
func (db Session) List(output io.Writer) error {
	if db.NumEntries() == 0 {
		_, err := io.WriteString(output, "database is empty\n")
		return err
	}

	for _, key := range db.SortedKeyList() {
		if _, err := fmt.Fprintf(output, "%03d %s\n", key, db.entries[key]); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(output, "Total: %d\n", db.NumEntries())
	return err
}

// Add an entry to the database with the lowest unused key. Returns the key.
func (db *Session) Add(ent Entry) (int, error) {
	if db.activity == ActivityReading {
		return 0, curated.Errorf(SessionReading)
	}

	var key int
	for key = 0; key < maxEntries; key++ {
		if _, ok := db.entries[key]; !ok {
			break
		}
	}

	if key == maxEntries {
		return 0, curated.Errorf(MaxEntries, maxEntries)
	}

	db.entries[key] = ent

	return key, nil
}

// Get the entry with the key.
func (db Session) Get(key int) (Entry, error) {
	ent, ok := db.entries[key]
	if !ok {
		return nil, curated.Errorf(NoKey, key)
	}
	return ent, nil
}

// Delete the entry with the key. The CleanUp() function of the entry is
// called before it is removed.
func (db *Session) Delete(key int) error {
	if db.activity == ActivityReading {
		return curated.Errorf(SessionReading)
	}

	ent, ok := db.entries[key]
	if !ok {
		return curated.Errorf(NoKey, key)
	}

	if err := ent.CleanUp(); err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	delete(db.entries, key)

	return nil
}
