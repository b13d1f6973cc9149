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

// Package modalflag is a wrapper for the pflag package. It provides a
// convenient method of handling program modes (and sub-modes) and allows
// different flags for each mode.
//
// Unlike pflag.FlagSet, where Parse() is called with the list of arguments,
// modalflag is first given the arguments with NewArgs() and then Parse() is
// called with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Non-flag arguments are retrieved after parsing with RemainingArgs() or
// GetArg().
//
// Flags are added with the AddBool(), AddInt(), etc. functions. These return
// a pointer to a variable of the specified type that is set by the next call
// to Parse():
//
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//
// Flags are specified in the usual pflag style, ie. with two hyphens, and must
// precede the sub-mode and any other argument.
//
// A mode is a special argument that puts the program into a different mode of
// operation, each with its own set of flags and arguments. Sub-modes are added
// with AddSubModes(). The first sub-mode is the default and all sub-mode
// comparisons are case insensitive.
//
//	md.AddSubModes("run", "trace", "monitor", "compare")
//	p, err := md.Parse()
//	switch p {
//	case ParseError:
//		return err
//	case ParseHelp:
//		return nil
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		cycles := md.AddUint64("cycles", 0, "number of cycles to run for")
//		_, _ = md.Parse()
//		run(*cycles, md.RemainingArgs())
//	}
//
// Modes can be chained to any depth by calling NewMode() and AddSubModes()
// again. The Path() function returns all the modes encountered so far.
//
// If the EnvPrefix field is set then flags that have not been specified on the
// command line are taken from environment variables. For example, with a
// prefix of "SOCSIM_" the flag "trace-dir" is taken from the variable
// SOCSIM_TRACE_DIR.
package modalflag
