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

//go:build !windows
// +build !windows

package monitor

import (
	"io"

	"github.com/pkg/term"
)

// keyTerminal restores the terminal to its original mode on Close().
type keyTerminal struct {
	*term.Term
}

func (k keyTerminal) Close() error {
	if err := k.Term.Restore(); err != nil {
		_ = k.Term.Close()
		return err
	}
	return k.Term.Close()
}

// open the controlling terminal in cbreak mode. key presses are available
// immediately and are not echoed.
func openTerminal() (io.ReadCloser, error) {
	t, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return nil, err
	}
	return keyTerminal{Term: t}, nil
}
