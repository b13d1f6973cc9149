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

// Package database is a very simple way of storing structured and arbitrary
// entry types in a flat file.
//
// Use of a database requires starting a "session" with StartSession(),
// coupled with EndSession() once we're done. For example (error handling
// removed for clarity):
//
//	db, _ := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
//	defer db.EndSession(true)
//
// The activity argument describes what will happen during the session. A
// database file is created if it does not exist only with ActivityCreating.
// Changes are only written by EndSession() for ActivityCreating and
// ActivityModifying.
//
// The init function registers the entry types the database might contain:
//
//	func initDBSession(db *database.Session) error {
//		return db.RegisterEntryType("digest", deserialiseDigest)
//	}
//
// The deserialiser is called with the fields of each entry of that type when
// the database file is read. Fields are numbered from zero and do not include
// the key or the entry type.
//
// Once a session has started, entries can be added, deleted, listed and
// selected.
package database
