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

package preferences_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/socsim/socsim/hardware/preferences"
	"github.com/socsim/socsim/prefs"
	"github.com/socsim/socsim/test"
)

func TestDefaults(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.ResetVector.Get().(uint32), preferences.DefaultResetVector)
	test.ExpectEquality(t, p.ExceptionVector.Get().(uint32), preferences.DefaultExceptionVector)
	test.ExpectEquality(t, p.BigEndian.Get().(bool), false)
	test.ExpectEquality(t, p.PRId.Get().(int), preferences.DefaultPRId)
}

func TestLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	err := os.WriteFile(pth, []byte("iss.bigendian: \"true\"\niss.resetvector: \"0x00001000\"\n"), 0o600)
	test.DemandSuccess(t, err)

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.BigEndian.Get().(bool), true)
	test.ExpectEquality(t, p.ResetVector.Get().(uint32), 0x1000)

	p.SetDefaults()
	test.ExpectEquality(t, p.BigEndian.Get().(bool), false)
}
