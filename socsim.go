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
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/socsim/socsim/comparison"
	"github.com/socsim/socsim/curated"
	"github.com/socsim/socsim/digest"
	"github.com/socsim/socsim/disassembly"
	"github.com/socsim/socsim/govern"
	"github.com/socsim/socsim/hardware"
	"github.com/socsim/socsim/hardware/cpu/execution"
	"github.com/socsim/socsim/hardware/instance"
	"github.com/socsim/socsim/hardware/preferences"
	"github.com/socsim/socsim/loader"
	"github.com/socsim/socsim/logger"
	"github.com/socsim/socsim/modalflag"
	"github.com/socsim/socsim/monitor"
	"github.com/socsim/socsim/performance"
	"github.com/socsim/socsim/prefs"
	"github.com/socsim/socsim/statsview"
	"github.com/socsim/socsim/symbols"
	"github.com/socsim/socsim/trace"
	"github.com/socsim/socsim/version"
)

// prefix of environment variables that can be used instead of flags
const envPrefix = "SOCSIM_"

// NoEnd is returned when a platform would run forever.
const NoEnd = "socsim: platform has no halt address and no cycle limit"

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout, EnvPrefix: envPrefix}

	p, err := start(md, args)
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// start parses the top level of the command line and runs the selected mode.
// errors from the mode are returned with ParseContinue.
func start(md *modalflag.Modes, args []string) (modalflag.ParseResult, error) {
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "TRACE", "MONITOR", "COMPARE", "DISASM", "PERFORMANCE", "REGRESS", "VERSION")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return p, err
	}

	return p, dispatch(md)
}

func dispatch(md *modalflag.Modes) error {
	switch md.Mode() {
	case "RUN":
		return run(md)
	case "TRACE":
		return traceMode(md)
	case "MONITOR":
		return monitorMode(md)
	case "COMPARE":
		return compare(md)
	case "DISASM":
		return disasm(md)
	case "PERFORMANCE":
		return perform(md)
	case "REGRESS":
		return regress(md)
	case "VERSION":
		return showVersion(md)
	}
	return nil
}

// flags common to every mode that builds a platform.
type commonFlags struct {
	prefs *string
	log   *bool
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		prefs: md.AddString("prefs", "", "preferences to apply to the platform (eg. \"iss.randstate::true; iss.prid::0x0300\")"),
		log:   md.AddBool("log", false, "echo log to stdout"),
	}
}

// apply the common flags. the returned function should be called once the
// mode has finished.
func (f commonFlags) apply(output io.Writer) func() {
	if *f.log {
		logger.SetEcho(output, false)
	}

	prefs.PushCommandLineStack(*f.prefs)

	return func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "socsim", "unused preferences: %s", unused)
		}
		logger.SetEcho(nil, false)
	}
}

// build platform from the description file.
func build(filename string) (*loader.Description, *hardware.Platform, error) {
	desc, err := loader.ReadDescription(filename)
	if err != nil {
		return nil, nil, err
	}

	plt, err := buildFromDescription(desc)
	if err != nil {
		return nil, nil, err
	}

	return desc, plt, nil
}

// build platform with a new instance. preferences are loaded from disk and
// from the current group of command line preferences.
func buildFromDescription(desc *loader.Description) (*hardware.Platform, error) {
	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	ins, err := instance.NewInstance(nil, p)
	if err != nil {
		return nil, err
	}

	return desc.Build(ins)
}

// run platform until it halts or until the cycle limit. a limit of zero means
// the limit from the description is used. it is an error for there to be
// neither a limit nor a halt address.
func runPlatform(desc *loader.Description, plt *hardware.Platform, limit uint64) error {
	if limit == 0 {
		limit = desc.Cycles
	}
	if limit == 0 && desc.Halt == nil {
		return curated.Errorf(NoEnd)
	}

	return plt.Run(func() (govern.State, error) {
		if desc.Halted(plt) {
			return govern.Ending, nil
		}
		if limit > 0 && plt.Cycles() >= limit {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
}

// requires exactly one argument after the flags.
func oneArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", fmt.Errorf("platform description required")
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	common := addCommonFlags(md)
	cycles := md.AddUint64("cycles", 0, "maximum number of cycles to run (overrides description)")
	stats := md.AddBool("statsview", false, "launch statsview server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fn, err := oneArg(md)
	if err != nil {
		return err
	}

	defer common.apply(md.Output)()

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(md.Output, "")
	}

	desc, plt, err := build(fn)
	if err != nil {
		return err
	}

	dig := digest.NewRetired()
	plt.CycleCallback = dig.Trace

	if err := runPlatform(desc, plt, *cycles); err != nil {
		return err
	}

	summary(md.Output, desc, plt)
	fmt.Fprintf(md.Output, "%d instructions retired: %s\n", dig.Count, dig.Hash())

	return nil
}

func summary(output io.Writer, desc *loader.Description, plt *hardware.Platform) {
	if desc.Halted(plt) {
		fmt.Fprintf(output, "halted after %d cycles\n", plt.Cycles())
	} else {
		fmt.Fprintf(output, "stopped after %d cycles\n", plt.Cycles())
	}
}

func traceMode(md *modalflag.Modes) error {
	md.NewMode()

	common := addCommonFlags(md)
	cycles := md.AddUint64("cycles", 0, "maximum number of cycles to run (overrides description)")
	frozen := md.AddBool("frozen", false, "include frozen cycles in trace")
	core := md.AddInt("core", -1, "only trace the numbered core")
	useColor := md.AddBool("color", !color.NoColor, "colour trace output")
	dir := md.AddString("dir", "", "write trace to a new file in the directory")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fn, err := oneArg(md)
	if err != nil {
		return err
	}

	defer common.apply(md.Output)()

	desc, plt, err := build(fn)
	if err != nil {
		return err
	}

	attr := trace.Attr{Frozen: *frozen, Color: *useColor, Core: *core}

	var trc *trace.Tracer
	if *dir == "" {
		trc = trace.NewTracer(md.Output, attr)
	} else {
		trc, err = trace.NewFileTracer(*dir, filepath.Base(fn), attr)
		if err != nil {
			return err
		}
	}
	defer trc.Close()

	dig := digest.NewRetired()
	plt.CycleCallback = func(core int, r *execution.Result) error {
		if err := dig.Trace(core, r); err != nil {
			return err
		}
		return trc.Trace(core, r)
	}

	if err := runPlatform(desc, plt, *cycles); err != nil {
		return err
	}

	if trc.Filename() != "" {
		fmt.Fprintf(md.Output, "%d lines written to %s\n", trc.Lines, trc.Filename())
	}
	summary(md.Output, desc, plt)
	fmt.Fprintf(md.Output, "%d instructions retired: %s\n", dig.Count, dig.Hash())

	return nil
}

func monitorMode(md *modalflag.Modes) error {
	md.NewMode()

	common := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fn, err := oneArg(md)
	if err != nil {
		return err
	}

	defer common.apply(md.Output)()

	desc, plt, err := build(fn)
	if err != nil {
		return err
	}

	mon := monitor.NewMonitor(plt, os.Stdin, md.Output, !color.NoColor)
	mon.SetSymbols(desc.Symbols())
	if desc.Halt != nil {
		mon.Halt(*desc.Halt)
	}

	return mon.Start()
}

func compare(md *modalflag.Modes) error {
	md.NewMode()

	common := addCommonFlags(md)
	cycles := md.AddUint64("cycles", 0, "number of cycles to compare (overrides description)")
	fetch := md.AddInt("fetch-latency", -1, "fetch latency of the second platform")
	data := md.AddInt("data-latency", -1, "data latency of the second platform")
	passengerPrefs := md.AddString("passenger-prefs", "", "preferences to apply to the second platform")
	context := md.AddInt("context", comparison.DefaultContext, "number of instructions shown on divergence")
	md.AdditionalHelp("The second platform is built from the second description if it is given,\n" +
		"otherwise from the first description. The latency flags override the\n" +
		"latency of the second platform.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var driverFn, passengerFn string
	switch len(md.RemainingArgs()) {
	case 1:
		driverFn = md.GetArg(0)
		passengerFn = driverFn
	case 2:
		driverFn = md.GetArg(0)
		passengerFn = md.GetArg(1)
	default:
		return fmt.Errorf("one or two platform descriptions required")
	}

	defer common.apply(md.Output)()

	desc, driver, err := build(driverFn)
	if err != nil {
		return err
	}

	pdesc, err := loader.ReadDescription(passengerFn)
	if err != nil {
		return err
	}
	if *fetch >= 0 {
		pdesc.Latency.Fetch = *fetch
	}
	if *data >= 0 {
		pdesc.Latency.Data = *data
	}

	// the passenger has its own group of command line preferences
	prefs.PushCommandLineStack(*passengerPrefs)
	passenger, err := buildFromDescription(pdesc)
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "socsim", "unused passenger preferences: %s", unused)
	}
	if err != nil {
		return err
	}

	cmp, err := comparison.NewComparison(driver, passenger, *context)
	if err != nil {
		return err
	}

	limit := *cycles
	if limit == 0 {
		limit = desc.Cycles
	}
	if limit == 0 {
		return fmt.Errorf("number of cycles required")
	}

	err = cmp.Run(limit)
	if curated.Is(err, comparison.Divergence) {
		io.WriteString(md.Output, cmp.Report())
		return err
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "no divergence after %d cycles (%s)\n", limit, cmp)

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	common := addCommonFlags(md)
	start := md.AddString("start", "", "start address or symbol (defaults to the reset vector)")
	end := md.AddString("end", "", "end address (defaults to 64 words after start)")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	grep := md.AddString("grep", "", "only show instructions with the search string")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fn, err := oneArg(md)
	if err != nil {
		return err
	}

	defer common.apply(md.Output)()

	desc, plt, err := build(fn)
	if err != nil {
		return err
	}
	sym := desc.Symbols()

	s := plt.Cores[0].GetPC()
	if *start != "" {
		if res := sym.Search(*start, symbols.SearchLabel); res != nil {
			s = res.Address
		} else if s, err = parseAddress(*start); err != nil {
			return err
		}
	}

	e := s + 63*4
	if *end != "" {
		if e, err = parseAddress(*end); err != nil {
			return err
		}
	}

	entries, err := disassembly.Linear(plt.Mem, s, e)
	if *grep != "" {
		entries = disassembly.Grep(entries, *grep)
	}
	if werr := disassembly.Write(md.Output, entries, disassembly.WriteAttr{Bytecode: *bytecode, Symbols: sym}); werr != nil {
		return werr
	}

	return err
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	common := addCommonFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "create profiling data. comma separated list of NONE, CPU, MEM, TRACE or ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fn, err := oneArg(md)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	defer common.apply(md.Output)()

	desc, plt, err := build(fn)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, plt, func() bool { return desc.Halted(plt) }, *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control system")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}

func parseAddress(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("not an address (%s)", s)
	}
	return uint32(v), nil
}
