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
)

// LocalResourcePath is the name of the directory which, if present in the
// current working directory, is used in preference to the user config
// directory.
const LocalResourcePath = ".socsim"

const configDir = "socsim"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the OS/build specific paths.
//
// The subPth argument should not contain the name of the resource and will be
// created if it does not exist. The file argument may be empty.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(base, subPth)
	if _, err := os.Stat(pth); err != nil {
		if err := os.MkdirAll(pth, 0o700); err != nil {
			return "", err
		}
	}

	return filepath.Join(pth, file), nil
}

func basePath() (string, error) {
	if fi, err := os.Stat(LocalResourcePath); err == nil && fi.IsDir() {
		return LocalResourcePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, configDir), nil
}
