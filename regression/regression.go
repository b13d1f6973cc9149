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
	"sort"
	"strconv"

	"github.com/socsim/socsim/curated"
	"github.com/socsim/socsim/database"
	"github.com/socsim/socsim/paths"
)

// Sentinal errors.
const (
	RegressionError = "regression: %v"
	InvalidKey      = "regression: invalid key (%s)"
)

const regressionDBFile = "regressionDB"

// Regressor is the generic entry type in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the newRegression
	// flag indicates that the regressor is being run for the first time and
	// the result should be recorded rather than compared
	//
	// returns false and a message if the regression failed
	regress(newRegression bool, output io.Writer) (bool, string, error)
}

func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(digestEntryType, deserialiseDigestEntry)
}

// the path to the regression database. defaults to the resource path
var dbPath = func() (string, error) {
	return paths.ResourcePath("", regressionDBFile)
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer) error {
	pth, err := dbPath()
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	db, err := database.StartSession(pth, database.ActivityCreating, initDBSession)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd runs the regressor for the first time and adds it to the
// database.
func RegressAdd(output io.Writer, reg Regressor) error {
	pth, err := dbPath()
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	db, err := database.StartSession(pth, database.ActivityCreating, initDBSession)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}
	defer db.EndSession(true)

	ok, msg, err := reg.regress(true, output)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}
	if !ok {
		return curated.Errorf(RegressionError, msg)
	}

	key, err := db.Add(reg)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	fmt.Fprintf(output, "added: %03d %s\n", key, reg)

	return nil
}

// RegressDelete removes the entry with the key from the database. The
// confirmation reader is used to confirm the deletion. The first byte read
// should be 'y' or 'Y'.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf(InvalidKey, key)
	}

	pth, err := dbPath()
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	db, err := database.StartSession(pth, database.ActivityModifying, initDBSession)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}
	defer db.EndSession(true)

	ent, err := db.Get(v)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	fmt.Fprintf(output, "%s\ndelete? (y/n): ", ent)

	confirm := make([]byte, 1)
	if _, err := confirmation.Read(confirm); err != nil {
		return curated.Errorf(RegressionError, err)
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		if err := db.Delete(v); err != nil {
			return curated.Errorf(RegressionError, err)
		}
		fmt.Fprintf(output, "deleted test #%03d from regression database\n", v)
	}

	return nil
}

// RegressRun runs the regression tests with the keys. All tests are run if
// no keys are given. Returns an error only if the database can not be read or
// a key is invalid. A failed test is reported to the output.
func RegressRun(output io.Writer, verbose bool, filterKeys []string) error {
	keys := make([]int, 0, len(filterKeys))
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return curated.Errorf(InvalidKey, k)
		}
		keys = append(keys, v)
	}
	sort.Ints(keys)

	pth, err := dbPath()
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	db, err := database.StartSession(pth, database.ActivityReading, initDBSession)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}
	defer db.EndSession(false)

	var numSucceed, numFail, numError int

	onSelect := func(key int, ent database.Entry) (bool, error) {
		reg, ok := ent.(Regressor)
		if !ok {
			return false, curated.Errorf(RegressionError, "database entry does not satisfy Regressor interface")
		}

		ok, msg, err := reg.regress(false, output)

		switch {
		case err != nil:
			numError++
			fmt.Fprintf(output, "  ERROR: %03d %s\n", key, reg)
			if verbose {
				fmt.Fprintf(output, "%v\n", err)
			}
		case !ok:
			numFail++
			fmt.Fprintf(output, "failure: %03d %s\n", key, reg)
			if verbose && msg != "" {
				fmt.Fprintf(output, "%s\n", msg)
			}
		default:
			numSucceed++
			fmt.Fprintf(output, "succeed: %03d %s\n", key, reg)
		}

		return true, nil
	}

	_, err = db.SelectKeys(onSelect, keys...)

	fmt.Fprintf(output, "regression tests: %d succeed, %d fail", numSucceed, numFail)
	if numError > 0 {
		fmt.Fprintf(output, " [%d with errors]", numError)
	}
	fmt.Fprintln(output)

	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	return nil
}
