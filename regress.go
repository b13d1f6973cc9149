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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/socsim/socsim/loader"
	"github.com/socsim/socsim/modalflag"
	"github.com/socsim/socsim/regression"
)

type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	p[0] = 'y'
	return 1, nil
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		verbose := md.AddBool("verbose", false, "output more detail (eg. error messages)")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		return regression.RegressRun(md.Output, *verbose, md.RemainingArgs())

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

		return regression.RegressList(md.Output)

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			// use stdin for confirmation unless "yes" flag has been sent
			var confirmation io.Reader
			if *answerYes {
				confirmation = &yesReader{}
			} else {
				confirmation = os.Stdin
			}
			return regression.RegressDelete(md.Output, confirmation, md.GetArg(0))
		}
		return fmt.Errorf("only one entry can be deleted at at time")

	case "ADD":
		return regressAdd(md)
	}

	return nil
}

func regressAdd(md *modalflag.Modes) error {
	md.NewMode()

	cycles := md.AddUint64("cycles", 0, "maximum number of cycles to run (overrides description)")
	prefs := md.AddString("prefs", "", "preferences to apply to the platform")
	notes := md.AddString("notes", "", "additional annotation for the database")

	md.AdditionalHelp(
		`The platform is run until it halts or until the cycle limit. The digest of the
retired instructions is recorded in the regression database. The platform
description must specify a halt address or a cycle limit, or the cycles flag
must be given.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fn, err := oneArg(md)
	if err != nil {
		return err
	}

	desc, err := loader.ReadDescription(fn)
	if err != nil {
		return err
	}

	limit := *cycles
	if limit == 0 {
		limit = desc.Cycles
	}
	if limit == 0 {
		return fmt.Errorf("cycle limit required for regression entry")
	}

	reg, err := regression.NewDigestRegression(fn, limit, *prefs, *notes)
	if err != nil {
		return err
	}

	return regression.RegressAdd(md.Output, reg)
}
