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

package paths

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/socsim/socsim/test"
)

func TestLocalResourcePath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	dir := t.TempDir()
	test.DemandSuccess(t, os.Chdir(dir))
	test.DemandSuccess(t, os.Mkdir(LocalResourcePath, 0o700))

	pth, err := ResourcePath("traces", "foo")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(LocalResourcePath, "traces", "foo"))

	fi, err := os.Stat(filepath.Join(LocalResourcePath, "traces"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())

	pth, err = ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, LocalResourcePath)
}

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2020, 3, 4, 5, 6, 7, 0, time.UTC)
	test.ExpectEquality(t, uniqueFilename("trace", "boot", n), "trace_boot_20200304_050607")
	test.ExpectEquality(t, uniqueFilename("trace", "  ", n), "trace_20200304_050607")
}
