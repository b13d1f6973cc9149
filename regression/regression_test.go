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
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/socsim/socsim/curated"
	"github.com/socsim/socsim/test"
)

const description = `
cores: 1
halt: 0xbfc0000c
regions:
  - name: boot
    origin: 0xbfc00000
    size: 0x1000
    readonly: true
  - name: ram
    origin: 0x00000000
    size: 0x10000
latency:
  fetch: 1
  data: 1
images:
  - file: boot.bin
    origin: 0xbfc00000
`

func writeBoot(t *testing.T, dir string, program ...uint32) {
	t.Helper()
	boot := make([]byte, len(program)*4)
	for i, w := range program {
		binary.LittleEndian.PutUint32(boot[i*4:], w)
	}
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "boot.bin"), boot, 0o644))
}

// prepare a platform description and a private regression database. returns
// the directory containing the description.
func prepare(t *testing.T) string {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	db := filepath.Join(t.TempDir(), regressionDBFile)
	restore := dbPath
	dbPath = func() (string, error) {
		return db, nil
	}
	t.Cleanup(func() {
		dbPath = restore
	})

	dir := t.TempDir()
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "platform.yaml"), []byte(description), 0o644))
	writeBoot(t, dir,
		0x24010009, // addiu $1, $0, 9
		0xac010204, // sw $1, 0x204($0)
		0x0bf00002, // j bfc00008
		0x00000000,
	)

	return dir
}

func TestDigestEntry(t *testing.T) {
	_, err := NewDigestRegression("platform,yaml", 100, "", "")
	test.ExpectFailure(t, err)

	reg, err := NewDigestRegression("platform.yaml", 100, "iss.prid::0x0230", "notes")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, filepath.IsAbs(reg.Description))
	test.ExpectEquality(t, reg.String(), "[digest] platform.yaml cycles=100 prefs=iss.prid::0x0230 [notes]")

	ser, err := reg.Serialise()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(ser), numDigestFields)

	ent, err := deserialiseDigestEntry(ser)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ent.String(), reg.String())

	ser[digestFieldCycles] = "many"
	_, err = deserialiseDigestEntry(ser)
	test.ExpectFailure(t, err)

	_, err = deserialiseDigestEntry(ser[:2])
	test.ExpectFailure(t, err)
}

func TestRegression(t *testing.T) {
	dir := prepare(t)

	w := &test.CompareWriter{}

	test.ExpectSuccess(t, RegressList(w))
	test.ExpectSuccess(t, w.Compare("database is empty\n"))
	w.Clear()

	reg, err := NewDigestRegression(filepath.Join(dir, "platform.yaml"), 1000, "", "")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, RegressAdd(w, reg))
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "added: 000 [digest] platform.yaml"))
	test.ExpectInequality(t, reg.Digest(), "")
	w.Clear()

	test.ExpectSuccess(t, RegressList(w))
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "Total: 1\n"))
	w.Clear()

	// unchanged program
	test.ExpectSuccess(t, RegressRun(w, false, nil))
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "succeed: 000"))
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "regression tests: 1 succeed, 0 fail\n"))
	w.Clear()

	// a different program retires different instructions
	writeBoot(t, dir,
		0x2401000a, // addiu $1, $0, 10
		0xac010204, // sw $1, 0x204($0)
		0x0bf00002, // j bfc00008
		0x00000000,
	)
	test.ExpectSuccess(t, RegressRun(w, true, []string{"0"}))
	lines := w.Lines()
	test.DemandSuccess(t, len(lines) >= 2)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "failure: 000"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "digest mismatch"))
	test.ExpectEquality(t, lines[len(lines)-1], "regression tests: 0 succeed, 1 fail")
	w.Clear()

	// missing description
	test.DemandSuccess(t, os.Remove(filepath.Join(dir, "platform.yaml")))
	test.ExpectSuccess(t, RegressRun(w, false, nil))
	test.ExpectSuccess(t, strings.Contains(w.String(), "[1 with errors]"))
	w.Clear()
}

func TestRegressionKeys(t *testing.T) {
	dir := prepare(t)

	w := &test.CompareWriter{}

	err := RegressRun(w, false, []string{"x"})
	test.ExpectSuccess(t, curated.Is(err, InvalidKey))

	reg, err := NewDigestRegression(filepath.Join(dir, "platform.yaml"), 1000, "", "")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, RegressAdd(w, reg))
	w.Clear()

	err = RegressRun(w, false, []string{"5"})
	test.ExpectFailure(t, err)

	// deletion not confirmed
	test.ExpectSuccess(t, RegressDelete(w, strings.NewReader("n"), "0"))
	w.Clear()
	test.ExpectSuccess(t, RegressList(w))
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "Total: 1\n"))
	w.Clear()

	test.ExpectSuccess(t, RegressDelete(w, strings.NewReader("y"), "0"))
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "deleted test #000 from regression database\n"))
	w.Clear()
	test.ExpectSuccess(t, RegressList(w))
	test.ExpectSuccess(t, w.Compare("database is empty\n"))
}
