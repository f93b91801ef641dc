// This file is part of Nexel24.
//
// Nexel24 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Nexel24 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Nexel24.  If not, see <https://www.gnu.org/licenses/>.

package debugger

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/nexel24/nexel24/curated"
	"github.com/nexel24/nexel24/debugger/terminal"
	"github.com/nexel24/nexel24/disassembly"
	"github.com/nexel24/nexel24/hardware"
	"github.com/nexel24/nexel24/hardware/coprocessors/pad"
	"github.com/nexel24/nexel24/hardware/interrupts"
	"github.com/nexel24/nexel24/hardware/memory/memorymap"
	"github.com/nexel24/nexel24/logger"
)

// debugger keywords.
const (
	cmdHelp  = "HELP"
	cmdQuit  = "QUIT"
	cmdReset = "RESET"

	cmdStep  = "STEP"
	cmdFrame = "FRAME"
	cmdRun   = "RUN"
	cmdKeys  = "KEYS"

	cmdRegs   = "REGS"
	cmdStats  = "STATS"
	cmdPeek   = "PEEK"
	cmdPoke   = "POKE"
	cmdDisasm = "DISASM"
	cmdGrep   = "GREP"
	cmdMemMap = "MEMMAP"
	cmdLoad   = "LOAD"

	cmdRaise  = "RAISE"
	cmdPad    = "PAD"
	cmdCoproc = "COPROC"

	cmdBreak = "BREAK"
	cmdDrop  = "DROP"
	cmdClear = "CLEAR"

	cmdLog    = "LOG"
	cmdMemviz = "MEMVIZ"
	cmdDigest = "DIGEST"
)

var help = map[string]string{
	cmdHelp:  "Lists commands and provides help for individual debugger commands",
	cmdQuit:  "Exits the debugger",
	cmdReset: "Reset the console to its initial state",

	cmdStep:  "Step forward one instruction. Optional argument sets the number of instructions",
	cmdFrame: "Run the emulation for one frame. Optional argument sets the number of frames",
	cmdRun:   "Run the emulation until a halt, a breakpoint or an interrupt from the keyboard",
	cmdKeys:  "Single key control: space to step, f to run a frame, q to return",

	cmdRegs:   "Display the CPU registers and pending interrupts",
	cmdStats:  "Display the execution statistics",
	cmdPeek:   "Inspect memory. Optional argument sets the number of bytes",
	cmdPoke:   "Modify a sequence of memory addresses",
	cmdDisasm: "Disassemble memory. Defaults to the current PC",
	cmdGrep:   "Search the disassembly of a memory range for a mnemonic or operand",
	cmdMemMap: "Display the console memory map",
	cmdLoad:   "Load a file into a memory area",

	cmdRaise:  "Raise an interrupt",
	cmdPad:    "Press or release game pad buttons (eg. PAD PRESS A+START)",
	cmdCoproc: "Display the state of the coprocessors",

	cmdBreak: "Halt execution when the PC reaches the address. Lists breakpoints without an address",
	cmdDrop:  "Drop the breakpoint at the address",
	cmdClear: "Clear all breakpoints",

	cmdLog:    "Print the log. Optional argument limits the output to the most recent entries",
	cmdMemviz: "Write a graphviz description of the console state to a file",
	cmdDigest: "Print a hash of the console state. The hash is chained to the previous hash unless RESET is given",
}

var commandTemplate = []string{
	cmdHelp + " (%<command>S)",
	cmdQuit,
	cmdReset,
	cmdStep + " (%<count>N)",
	cmdFrame + " (%<count>N)",
	cmdRun,
	cmdKeys,
	cmdRegs,
	cmdStats,
	cmdPeek + " [%<address>S] (%<count>N)",
	cmdPoke + " [%<address>S] [%<value>N] {%<values>N}",
	cmdDisasm + " (%<address>S) (%<count>N)",
	cmdGrep + " (MNEMONIC|OPERAND) [%<search>S] [%<address>S] [%<count>N]",
	cmdMemMap,
	cmdLoad + " [%<area>S] [%<file>F]",
	cmdRaise + " [%<interrupt>S]",
	cmdPad + " [PRESS|RELEASE] [%<buttons>S]",
	cmdCoproc,
	cmdBreak + " (%<address>S)",
	cmdDrop + " [%<address>S]",
	cmdClear,
	cmdLog + " (%<count>N)",
	cmdMemviz + " [%<file>F]",
	cmdDigest + " (RESET)",
}

type command func(dbg *Debugger, ctx context.Context, args []string) error

var commands map[string]command

func init() {
	commands = map[string]command{
		cmdHelp:   (*Debugger).cmdHelp,
		cmdQuit:   (*Debugger).cmdQuit,
		cmdReset:  (*Debugger).cmdReset,
		cmdStep:   (*Debugger).cmdStep,
		cmdFrame:  (*Debugger).cmdFrame,
		cmdRun:    (*Debugger).cmdRun,
		cmdKeys:   (*Debugger).cmdKeys,
		cmdRegs:   (*Debugger).cmdRegs,
		cmdStats:  (*Debugger).cmdStats,
		cmdPeek:   (*Debugger).cmdPeek,
		cmdPoke:   (*Debugger).cmdPoke,
		cmdDisasm: (*Debugger).cmdDisasm,
		cmdGrep:   (*Debugger).cmdGrep,
		cmdMemMap: (*Debugger).cmdMemMap,
		cmdLoad:   (*Debugger).cmdLoad,
		cmdRaise:  (*Debugger).cmdRaise,
		cmdPad:    (*Debugger).cmdPad,
		cmdCoproc: (*Debugger).cmdCoproc,
		cmdBreak:  (*Debugger).cmdBreak,
		cmdDrop:   (*Debugger).cmdDrop,
		cmdClear:  (*Debugger).cmdClear,
		cmdLog:    (*Debugger).cmdLog,
		cmdMemviz: (*Debugger).cmdMemviz,
		cmdDigest: (*Debugger).cmdDigest,
	}
}

func (dbg *Debugger) dispatch(ctx context.Context, tokens []string) error {
	keyword := strings.ToUpper(tokens[0])
	f, ok := commands[keyword]
	if !ok {
		return curated.Errorf(UnknownCommand, tokens[0])
	}
	return f(dbg, ctx, tokens[1:])
}

func (dbg *Debugger) cmdHelp(_ context.Context, args []string) error {
	if len(args) == 0 {
		keywords := make([]string, 0, len(help))
		for k := range help {
			keywords = append(keywords, k)
		}
		sort.Strings(keywords)
		dbg.printLine(terminal.StyleHelp, "%s", strings.Join(keywords, " "))
		return nil
	}

	keyword := strings.ToUpper(args[0])
	h, ok := help[keyword]
	if !ok {
		return curated.Errorf(UnknownCommand, args[0])
	}
	dbg.printLine(terminal.StyleHelp, "%s", h)
	for _, t := range commandTemplate {
		if t == keyword || strings.HasPrefix(t, keyword+" ") {
			dbg.printLine(terminal.StyleHelp, "  usage: %s", t)
		}
	}
	return nil
}

func (dbg *Debugger) cmdQuit(_ context.Context, _ []string) error {
	dbg.quit = true
	return nil
}

func (dbg *Debugger) cmdReset(_ context.Context, _ []string) error {
	dbg.con.Reset()
	dbg.printLine(terminal.StyleFeedback, "console reset")
	return nil
}

// step the console once and report whether execution should stop. The
// executed value is false if the console was already halted.
func (dbg *Debugger) step() (executed bool, stop bool, reason string) {
	if dbg.con.Step() == 0 {
		return false, true, dbg.con.Stats().String()
	}
	if dbg.con.CPU.Halted() {
		return true, true, dbg.con.Stats().String()
	}
	if pc := dbg.con.CPU.PC.Address(); dbg.breakpoints.check(pc) {
		return true, true, fmt.Sprintf("break at %06x", pc)
	}
	return true, false, ""
}

func (dbg *Debugger) cmdStep(_ context.Context, args []string) error {
	n, err := count(cmdStep, args, 0, 1)
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		executed, stop, reason := dbg.step()
		if executed {
			dbg.printLine(terminal.StyleInstrument, "%s", dbg.con.CPU.LastResult.String())
		}
		if stop {
			dbg.printLine(terminal.StyleFeedback, "%s", reason)
			break
		}
	}
	return nil
}

func (dbg *Debugger) cmdFrame(ctx context.Context, args []string) error {
	n, err := count(cmdFrame, args, 0, 1)
	if err != nil {
		return err
	}
	if err := dbg.con.RunFrames(ctx, n); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "%s", dbg.con.Stats().String())
	return nil
}

// run steps the console until it halts, a breakpoint is reached or the
// context is cancelled.
func (dbg *Debugger) run(ctx context.Context) (string, error) {
	brake := 0
	for {
		if brake == 0 {
			if err := ctx.Err(); err != nil {
				return "stopped", nil
			}
		}
		brake = (brake + 1) % hardware.PerformanceBrake

		if _, stop, reason := dbg.step(); stop {
			return reason, nil
		}
	}
}

func (dbg *Debugger) cmdRun(ctx context.Context, _ []string) error {
	if dbg.con.CPU.Halted() {
		dbg.printLine(terminal.StyleFeedback, "%s", dbg.con.Stats().String())
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	reason, err := dbg.run(ctx)
	if err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "%s", reason)
	return nil
}

func (dbg *Debugger) cmdRegs(_ context.Context, _ []string) error {
	dbg.printLine(terminal.StyleInstrument, "%s", dbg.con.CPU.String())
	dbg.printLine(terminal.StyleInstrument, "%s", dbg.con.CPU.GeneralString())
	dbg.printLine(terminal.StyleInstrument, "%s", dbg.con.IC.String())
	return nil
}

func (dbg *Debugger) cmdStats(_ context.Context, _ []string) error {
	dbg.printLine(terminal.StyleFeedback, "%s", dbg.con.Stats().String())
	return nil
}

const peekWidth = 16

func (dbg *Debugger) cmdPeek(_ context.Context, args []string) error {
	if len(args) == 0 {
		return curated.Errorf(MissingArgument, cmdPeek, "an address")
	}
	if len(args) > 2 {
		return curated.Errorf(TooManyArguments, cmdPeek)
	}

	address, err := dbg.address(cmdPeek, args[0])
	if err != nil {
		return err
	}
	n, err := count(cmdPeek, args, 1, 1)
	if err != nil {
		return err
	}

	s := strings.Builder{}
	for i := 0; i < n; i++ {
		a := (address + uint32(i)) & memorymap.AddressMask
		if i%peekWidth == 0 {
			if i > 0 {
				dbg.printLine(terminal.StyleInstrument, "%s", s.String())
				s.Reset()
			}
			s.WriteString(fmt.Sprintf("%06x:", a))
		}
		s.WriteString(fmt.Sprintf(" %02x", dbg.con.Mem.Peek(a)))
	}
	dbg.printLine(terminal.StyleInstrument, "%s", s.String())

	return nil
}

func (dbg *Debugger) cmdPoke(_ context.Context, args []string) error {
	if len(args) < 2 {
		return curated.Errorf(MissingArgument, cmdPoke, "an address and at least one value")
	}

	address, err := dbg.address(cmdPoke, args[0])
	if err != nil {
		return err
	}

	values := make([]uint8, 0, len(args)-1)
	for _, a := range args[1:] {
		v, ok := parseNumber(a)
		if !ok || v > 0xff {
			return curated.Errorf(InvalidArgument, cmdPoke, a)
		}
		values = append(values, uint8(v))
	}

	for i, v := range values {
		dbg.con.Mem.Poke((address+uint32(i))&memorymap.AddressMask, v)
	}

	return nil
}

const defaultDisasmCount = 8

func (dbg *Debugger) cmdDisasm(_ context.Context, args []string) error {
	if len(args) > 2 {
		return curated.Errorf(TooManyArguments, cmdDisasm)
	}

	address := dbg.con.CPU.PC.Address()
	if len(args) > 0 {
		var err error
		address, err = dbg.address(cmdDisasm, args[0])
		if err != nil {
			return err
		}
	}

	n, err := count(cmdDisasm, args, 1, defaultDisasmCount)
	if err != nil {
		return err
	}

	w := dbg.writer(terminal.StyleInstrument)
	defer w.Flush()
	return disassembly.Write(w, dbg.con.Mem, address, n, dbg.labels)
}

func (dbg *Debugger) cmdGrep(_ context.Context, args []string) error {
	if len(args) < 4 {
		return curated.Errorf(MissingArgument, cmdGrep, "a scope, search string, address and count")
	}

	var scope disassembly.GrepScope
	switch strings.ToUpper(args[0]) {
	case "MNEMONIC":
		scope = disassembly.GrepMnemonic
	case "OPERAND":
		scope = disassembly.GrepOperand
	case "ALL":
		scope = disassembly.GrepAll
	default:
		return curated.Errorf(InvalidArgument, cmdGrep, args[0])
	}

	address, err := dbg.address(cmdGrep, args[2])
	if err != nil {
		return err
	}
	n, err := count(cmdGrep, args, 3, 1)
	if err != nil {
		return err
	}

	w := dbg.writer(terminal.StyleInstrument)
	defer w.Flush()
	return disassembly.Grep(w, disassembly.Range(dbg.con.Mem, address, n), scope, args[1], false)
}

func (dbg *Debugger) cmdMemMap(_ context.Context, _ []string) error {
	w := dbg.writer(terminal.StyleInstrument)
	defer w.Flush()
	fmt.Fprint(w, memorymap.Summary())
	return nil
}

func (dbg *Debugger) cmdLoad(_ context.Context, args []string) error {
	if len(args) < 2 {
		return curated.Errorf(MissingArgument, cmdLoad, "an area and a file")
	}

	area := memorymap.AreaFromString(args[0])
	if area == memorymap.Undefined {
		return curated.Errorf(InvalidArgument, cmdLoad, args[0])
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		return curated.Errorf(InvalidArgument, cmdLoad, err)
	}

	if err := dbg.con.Load(area, data); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "%d bytes loaded into %s", len(data), area)
	return nil
}

func (dbg *Debugger) cmdRaise(_ context.Context, args []string) error {
	if len(args) == 0 {
		return curated.Errorf(MissingArgument, cmdRaise, "an interrupt")
	}
	id, ok := interrupts.IDFromString(args[0])
	if !ok {
		return curated.Errorf(InvalidArgument, cmdRaise, args[0])
	}
	dbg.con.RaiseInterrupt(id)
	return nil
}

func (dbg *Debugger) cmdPad(_ context.Context, args []string) error {
	if len(args) < 2 {
		return curated.Errorf(MissingArgument, cmdPad, "PRESS or RELEASE and a button list")
	}

	buttons, ok := pad.ButtonsFromString(args[1])
	if !ok {
		return curated.Errorf(InvalidArgument, cmdPad, args[1])
	}

	switch strings.ToUpper(args[0]) {
	case "PRESS":
		dbg.con.Pad.Press(buttons)
	case "RELEASE":
		dbg.con.Pad.Release(buttons)
	default:
		return curated.Errorf(InvalidArgument, cmdPad, args[0])
	}

	dbg.printLine(terminal.StyleFeedback, "pad: %s", dbg.con.Pad.State())
	return nil
}

func (dbg *Debugger) cmdCoproc(_ context.Context, _ []string) error {
	for _, c := range dbg.con.Coprocessors() {
		dbg.printLine(terminal.StyleInstrument, "%-6s %06x-%06x %s", c.Label(), c.Origin(), c.Memtop(), c)
	}
	return nil
}

func (dbg *Debugger) cmdBreak(_ context.Context, args []string) error {
	if len(args) == 0 {
		dbg.printLine(terminal.StyleFeedback, "%s", dbg.breakpoints.String())
		return nil
	}
	for _, a := range args {
		address, err := dbg.address(cmdBreak, a)
		if err != nil {
			return err
		}
		if !dbg.breakpoints.add(address) {
			dbg.printLine(terminal.StyleFeedback, "break at %06x already exists", address)
		}
	}
	return nil
}

func (dbg *Debugger) cmdDrop(_ context.Context, args []string) error {
	if len(args) == 0 {
		return curated.Errorf(MissingArgument, cmdDrop, "an address")
	}
	address, err := dbg.address(cmdDrop, args[0])
	if err != nil {
		return err
	}
	if !dbg.breakpoints.drop(address) {
		return curated.Errorf(InvalidArgument, cmdDrop, args[0])
	}
	return nil
}

func (dbg *Debugger) cmdClear(_ context.Context, _ []string) error {
	dbg.breakpoints.clear()
	return nil
}

func (dbg *Debugger) cmdLog(_ context.Context, args []string) error {
	w := dbg.writer(terminal.StyleFeedback)
	defer w.Flush()

	if len(args) == 0 {
		logger.Write(w)
		return nil
	}

	n, err := count(cmdLog, args, 0, 0)
	if err != nil {
		return err
	}
	logger.Tail(w, n)
	return nil
}

func (dbg *Debugger) cmdDigest(_ context.Context, args []string) error {
	if len(args) > 0 {
		if !strings.EqualFold(args[0], "RESET") {
			return curated.Errorf(InvalidArgument, cmdDigest, args[0])
		}
		dbg.digest.ResetDigest()
	}
	dbg.printLine(terminal.StyleFeedback, "%s", dbg.digest.Update())
	return nil
}
