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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/socsim/socsim/modalflag"
	"github.com/socsim/socsim/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"--test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")

	test.ExpectFailure(t, *testFlag)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectSuccess(t, *testFlag)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(1), "2")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"--unknown"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"--help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"))
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-h"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	help := tw.String()
	test.ExpectSuccess(t, strings.HasPrefix(help, "Usage:\n"))
	test.ExpectSuccess(t, strings.Contains(help, "--test"))
	test.ExpectSuccess(t, strings.Contains(help, "test flag (default true)"))
}

func TestHelpModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"--help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp))
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"--help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	help := tw.String()
	test.ExpectSuccess(t, strings.Contains(help, "test flag (default true)"))
	test.ExpectSuccess(t, strings.HasSuffix(help, "\n  available sub-modes: A, B, C\n    default: A\n"))
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"--verbose", "trace", "--cores", "4", "system.yaml"})
	verbose := md.AddBool("verbose", false, "")
	md.AddSubModes("run", "trace", "monitor")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *verbose)
	test.ExpectEquality(t, md.Mode(), "TRACE")

	md.NewMode()
	cores := md.AddInt("cores", 1, "")

	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *cores, 4)
	test.ExpectEquality(t, md.Path(), "TRACE")
	test.ExpectEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "system.yaml")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"system.yaml"})
	md.AddSubModes("run", "trace")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.GetArg(0), "system.yaml")
}

func TestEnvironment(t *testing.T) {
	t.Setenv("SOCSIM_TEST_TRACE_DIR", "/tmp/traces")
	t.Setenv("SOCSIM_TEST_CYCLES", "100")

	md := modalflag.Modes{Output: &test.CompareWriter{}, EnvPrefix: "SOCSIM_TEST_"}
	md.NewArgs([]string{"--cycles", "50"})
	dir := md.AddString("trace-dir", "", "")
	cycles := md.AddUint64("cycles", 0, "")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *dir, "/tmp/traces")

	// the command line takes priority over the environment
	test.ExpectEquality(t, *cycles, 50)

	var visited []string
	md.Visit(func(flag string) {
		visited = append(visited, flag)
	})
	test.ExpectEquality(t, len(visited), 2)
}

func TestEnvironmentInvalid(t *testing.T) {
	t.Setenv("SOCSIM_TEST_CYCLES", "notanumber")

	md := modalflag.Modes{Output: &test.CompareWriter{}, EnvPrefix: "SOCSIM_TEST_"}
	md.NewArgs([]string{})
	cycles := md.AddInt("cycles", 7, "")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(err.Error(), "SOCSIM_TEST_CYCLES"))

	// the default value is not overwritten
	test.ExpectEquality(t, *cycles, 7)
}

func TestHelpSubMode(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"trace", "--help"})
	md.AddSubModes("run", "trace")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)

	md.NewMode()
	md.AdditionalHelp("additional help")
	md.AddBool("frozen", false, "show frozen cycles")

	p, _ = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	help := tw.String()
	test.ExpectSuccess(t, strings.HasPrefix(help, "Usage for TRACE mode:\n"))
	test.ExpectSuccess(t, strings.Contains(help, "--frozen"))
	test.ExpectSuccess(t, strings.HasSuffix(help, "\nadditional help\n"))

	tw.Clear()
	md.NewMode()
	md.NewArgs([]string{"--help"})
	p, _ = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available for TRACE\n"))
}
