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

package monitor

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/socsim/socsim/curated"
	"github.com/socsim/socsim/disassembly"
	"github.com/socsim/socsim/hardware/cpu"
	"github.com/socsim/socsim/hardware/cpu/cop0"
	"github.com/socsim/socsim/hardware/cpu/registers"
	"github.com/socsim/socsim/logger"
	"github.com/socsim/socsim/symbols"
)

type command struct {
	name string
	args string
	help string
	fn   func(mon *Monitor, args []string) error
}

// list of commands in the order they are shown by HELP. assigned in init()
// because the HELP command refers to the list
var commands []command

func init() {
	commands = []command{
		{"STEP", "[n]", "step the platform by n cycles", (*Monitor).cmdStep},
		{"RUN", "[n]", "run the platform until a breakpoint or for n cycles", (*Monitor).cmdRun},
		{"BREAK", "[address]", "toggle breakpoint or list breakpoints", (*Monitor).cmdBreak},
		{"CORE", "[n]", "select core", (*Monitor).cmdCore},
		{"REGS", "", "show registers of the selected core", (*Monitor).cmdRegs},
		{"SET", "register value", "change register of the selected core", (*Monitor).cmdSet},
		{"PC", "address", "change program counter of the selected core", (*Monitor).cmdPC},
		{"PEEK", "address [n]", "show n words of memory", (*Monitor).cmdPeek},
		{"POKE", "address value", "change word of memory", (*Monitor).cmdPoke},
		{"DISASM", "[address [n]]", "disassemble n words of memory", (*Monitor).cmdDisasm},
		{"SYMBOL", "[name]", "find symbol or list all symbols", (*Monitor).cmdSymbol},
		{"INTERRUPT", "lines", "set hardware interrupt lines of the selected core", (*Monitor).cmdInterrupt},
		{"RESET", "", "reset platform", (*Monitor).cmdReset},
		{"SNAPSHOT", "", "save the state of the platform", (*Monitor).cmdSnapshot},
		{"RESTORE", "", "restore the saved state of the platform", (*Monitor).cmdRestore},
		{"MEMVIZ", "filename", "write graphviz description of the selected core", (*Monitor).cmdMemviz},
		{"LOG", "[n]", "show the last n log entries", (*Monitor).cmdLog},
		{"KEYS", "", "step the platform with single key presses", (*Monitor).cmdKeys},
		{"HELP", "[command]", "list commands", (*Monitor).cmdHelp},
		{"QUIT", "", "leave the monitor", (*Monitor).cmdQuit},
	}
}

// find command by name or by unique prefix.
func findCommand(name string) (command, error) {
	name = strings.ToUpper(name)

	var found []command
	for _, c := range commands {
		if c.name == name {
			return c, nil
		}
		if strings.HasPrefix(c.name, name) {
			found = append(found, c)
		}
	}

	switch len(found) {
	case 0:
		return command{}, curated.Errorf(UnknownCommand, name)
	case 1:
		return found[0], nil
	}
	return command{}, curated.Errorf(AmbiguousCommand, name)
}

func (mon *Monitor) command(tokens []string) error {
	c, err := findCommand(tokens[0])
	if err != nil {
		return err
	}
	if err := c.fn(mon, tokens[1:]); err != nil {
		if curated.IsAny(err) {
			return err
		}
		return curated.Errorf(CommandArgs, strings.ToLower(c.name), err)
	}
	return nil
}

// addresses are always hexadecimal with an optional 0x prefix.
// addresses may also be given as a symbol.
func (mon *Monitor) parseAddress(s string) (uint32, error) {
	if res := mon.symbols.Search(s, symbols.SearchAll); res != nil {
		return res.Address, nil
	}
	return parseAddress(s)
}

func parseAddress(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("not an address (%s)", s)
	}
	return uint32(v), nil
}

// values are decimal unless prefixed with 0x.
func parseValue(s string) (uint32, error) {
	if strings.HasPrefix(s, "-") {
		v, err := strconv.ParseInt(s, 0, 32)
		if err != nil {
			return 0, fmt.Errorf("not a value (%s)", s)
		}
		return uint32(v), nil
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("not a value (%s)", s)
	}
	return uint32(v), nil
}

// optional count argument. returns the default if the argument is missing.
func parseCount(args []string, idx int, def uint64) (uint64, error) {
	if len(args) <= idx {
		return def, nil
	}
	v, err := strconv.ParseUint(args[idx], 10, 64)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("not a count (%s)", args[idx])
	}
	return v, nil
}

// find register of the selected core by name or by number. the dollar sign
// prefix is optional.
func (mon *Monitor) findRegister(s string) (int, error) {
	mc := mon.plt.Cores[mon.core]

	n := strings.TrimPrefix(strings.ToLower(s), "$")
	for i := 0; i < mc.RegisterCount(); i++ {
		if mc.RegisterName(i) == n {
			return i, nil
		}
	}

	if v, err := strconv.Atoi(n); err == nil && v >= 0 && v < registers.NumGPR {
		return v, nil
	}

	return 0, fmt.Errorf("unknown register (%s)", s)
}

func (mon *Monitor) cmdStep(args []string) error {
	n, err := parseCount(args, 0, 1)
	if err != nil {
		return err
	}

	mon.lastStep = append([]string{"STEP"}, args...)

	for i := uint64(0); i < n; i++ {
		if err := mon.step(); err != nil {
			return err
		}
	}
	return nil
}

func (mon *Monitor) cmdRun(args []string) error {
	limit, err := parseCount(args, 0, defaultRunLimit)
	if err != nil {
		return err
	}

	start := mon.plt.Cycles()

	core, err := mon.run(limit)
	if err != nil {
		return err
	}

	ran := mon.plt.Cycles() - start
	if core < 0 {
		mon.printLine("ran for %d cycles", ran)
		return nil
	}

	pc := mon.plt.Cores[core].GetPC()
	if mon.halt != nil && *mon.halt == pc {
		mon.printLine("core %d halted at %08x after %d cycles", core, pc, ran)
	} else {
		mon.printLine("core %d reached breakpoint at %08x after %d cycles", core, pc, ran)
	}
	mon.core = core

	return nil
}

func (mon *Monitor) cmdBreak(args []string) error {
	if len(args) == 0 {
		if len(mon.breakpoints) == 0 {
			mon.printLine("no breakpoints")
			return nil
		}

		l := make([]uint32, 0, len(mon.breakpoints))
		for a := range mon.breakpoints {
			l = append(l, a)
		}
		sort.Slice(l, func(i, j int) bool { return l[i] < l[j] })
		for _, a := range l {
			mon.printLine("%08x", a)
		}
		return nil
	}

	a, err := mon.parseAddress(args[0])
	if err != nil {
		return err
	}

	if mon.breakpoints[a] {
		delete(mon.breakpoints, a)
		mon.printLine("breakpoint at %08x removed", a)
	} else {
		mon.breakpoints[a] = true
		mon.printLine("breakpoint at %08x added", a)
	}

	return nil
}

func (mon *Monitor) cmdCore(args []string) error {
	if len(args) == 0 {
		mon.printLine("core %d of %d", mon.core, len(mon.plt.Cores))
		return nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("not a core (%s)", args[0])
	}
	if _, err := mon.plt.Core(n); err != nil {
		return err
	}
	mon.core = n

	return nil
}

func (mon *Monitor) cmdRegs(_ []string) error {
	mc := mon.plt.Cores[mon.core]

	s := strings.Builder{}
	for i := 0; i < registers.NumGPR; i++ {
		v, _ := mc.GetRegister(i)
		s.WriteString(fmt.Sprintf("%4s=%08x", registers.Names[i], v))
		if i%4 == 3 {
			s.WriteString("\n")
		} else {
			s.WriteString(" ")
		}
	}

	hi, _ := mc.GetRegister(cpu.DebugHI)
	lo, _ := mc.GetRegister(cpu.DebugLO)
	s.WriteString(fmt.Sprintf("  hi=%08x   lo=%08x\n", hi, lo))
	s.WriteString(fmt.Sprintf("  sr=%08x cause=%08x epc=%08x bad=%08x\n",
		mc.GetCop0(cop0.Status), mc.GetCop0(cop0.Cause), mc.GetCop0(cop0.EPC), mc.GetCop0(cop0.BadVAddr)))
	s.WriteString(fmt.Sprintf("  pc=%08x next=%08x count=%08x", mc.GetPC(), mc.GetNextPC(), mc.GetCop0(cop0.Count)))

	mon.printLine("%s", s.String())

	return nil
}

func (mon *Monitor) cmdSet(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("register and value required")
	}

	r, err := mon.findRegister(args[0])
	if err != nil {
		return err
	}
	v, err := parseValue(args[1])
	if err != nil {
		return err
	}

	mon.plt.Cores[mon.core].SetRegister(r, v)

	// changing the PC changes the fetch request
	mon.plt.Resync()

	return nil
}

func (mon *Monitor) cmdPC(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("address required")
	}

	a, err := mon.parseAddress(args[0])
	if err != nil {
		return err
	}

	mon.plt.Cores[mon.core].SetPC(a)
	mon.plt.Resync()

	return nil
}

func (mon *Monitor) cmdPeek(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("address required")
	}

	a, err := mon.parseAddress(args[0])
	if err != nil {
		return err
	}
	n, err := parseCount(args, 1, 1)
	if err != nil {
		return err
	}

	a &^= 0x03
	for i := uint64(0); i < n; i++ {
		w, err := mon.plt.Mem.PeekWord(a)
		if err != nil {
			return err
		}
		mon.printLine("%08x %08x", a, w)
		a += 4
	}

	return nil
}

func (mon *Monitor) cmdPoke(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("address and value required")
	}

	a, err := mon.parseAddress(args[0])
	if err != nil {
		return err
	}
	v, err := parseValue(args[1])
	if err != nil {
		return err
	}

	return mon.plt.Mem.PokeWord(a, v)
}

func (mon *Monitor) cmdDisasm(args []string) error {
	a := mon.plt.Cores[mon.core].GetPC()
	if len(args) > 0 {
		var err error
		a, err = mon.parseAddress(args[0])
		if err != nil {
			return err
		}
	}

	n, err := parseCount(args, 1, 8)
	if err != nil {
		return err
	}

	entries, err := disassembly.Linear(mon.plt.Mem, a, a+uint32(n-1)*4)
	if werr := disassembly.Write(mon.output, entries, disassembly.WriteAttr{Bytecode: true, Symbols: mon.symbols}); werr != nil {
		return werr
	}

	return err
}

func (mon *Monitor) cmdSymbol(args []string) error {
	if len(args) == 0 {
		if mon.symbols.Len() == 0 {
			mon.printLine("no symbols")
			return nil
		}
		mon.symbols.ListSymbols(mon.output)
		return nil
	}

	if res := mon.symbols.Search(args[0], symbols.SearchAll); res != nil {
		mon.printLine("%s (%s) -> %08x", res.Symbol, res.Table, res.Address)
		return nil
	}

	// reverse search if the argument is an address
	if a, err := parseAddress(args[0]); err == nil {
		if res := mon.symbols.Nearest(a); res != nil {
			mon.printLine("%08x -> %s", a, res)
			return nil
		}
	}

	return fmt.Errorf("no symbol for %s", args[0])
}

func (mon *Monitor) cmdInterrupt(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("interrupt lines required")
	}

	v, err := parseValue(args[0])
	if err != nil {
		return err
	}
	if v > 0x3f {
		return fmt.Errorf("there are six interrupt lines (%#x)", v)
	}

	mon.plt.Interrupts[mon.core] = uint8(v)

	return nil
}

func (mon *Monitor) cmdReset(_ []string) error {
	mon.plt.Reset()
	logger.Log(logger.Allow, "monitor", "platform reset")
	return nil
}

func (mon *Monitor) cmdSnapshot(_ []string) error {
	mon.snapshot = mon.plt.Snapshot()
	mon.printLine("snapshot taken at cycle %d", mon.plt.Cycles())
	return nil
}

func (mon *Monitor) cmdRestore(_ []string) error {
	if mon.snapshot == nil {
		return fmt.Errorf("no snapshot")
	}
	mon.plt.Plumb(mon.snapshot)
	mon.printLine("restored to cycle %d", mon.plt.Cycles())
	return nil
}

func (mon *Monitor) cmdMemviz(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("filename required")
	}

	f, err := os.Create(args[0])
	if err != nil {
		return err
	}

	err = mon.memviz(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	mon.printLine("core %d written to %s", mon.core, args[0])

	return nil
}

func (mon *Monitor) cmdLog(args []string) error {
	n, err := parseCount(args, 0, 10)
	if err != nil {
		return err
	}
	logger.Tail(mon.output, int(n))
	return nil
}

func (mon *Monitor) cmdHelp(args []string) error {
	if len(args) > 0 {
		c, err := findCommand(args[0])
		if err != nil {
			return err
		}
		mon.printLine("%s %s", c.name, c.args)
		mon.printLine("  %s", c.help)
		return nil
	}

	for _, c := range commands {
		mon.printLine("%-24s %s", strings.TrimSpace(c.name+" "+c.args), c.help)
	}

	return nil
}

func (mon *Monitor) cmdQuit(_ []string) error {
	mon.quit = true
	return nil
}
