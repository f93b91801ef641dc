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

package debugger_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nexel24/nexel24/curated"
	"github.com/nexel24/nexel24/debugger"
	"github.com/nexel24/nexel24/debugger/terminal"
	"github.com/nexel24/nexel24/hardware"
	"github.com/nexel24/nexel24/hardware/coprocessors/pad"
	"github.com/nexel24/nexel24/hardware/instance"
	"github.com/nexel24/nexel24/hardware/interrupts"
	"github.com/nexel24/nexel24/hardware/memory/memorymap"
	"github.com/nexel24/nexel24/test"
)

// mockTerm is a scripted terminal. output is recorded without echo lines.
type mockTerm struct {
	input       []string
	keys        []byte
	interactive bool
	output      []string
	errors      []string
}

func (trm *mockTerm) Initialise() error   { return nil }
func (trm *mockTerm) CleanUp()            {}
func (trm *mockTerm) Silence(bool)        {}
func (trm *mockTerm) IsInteractive() bool { return trm.interactive }

func (trm *mockTerm) TermRead(_ string) (string, error) {
	if len(trm.input) == 0 {
		return "", io.EOF
	}
	s := trm.input[0]
	trm.input = trm.input[1:]
	return s, nil
}

func (trm *mockTerm) TermPrintLine(style terminal.Style, s string) {
	switch style {
	case terminal.StyleEcho:
	case terminal.StyleError:
		trm.errors = append(trm.errors, s)
	default:
		trm.output = append(trm.output, s)
	}
}

func (trm *mockTerm) ReadKeys(f func(key byte) bool) error {
	for _, k := range trm.keys {
		if !f(k) {
			break
		}
	}
	return nil
}

func (trm *mockTerm) contains(s string) bool {
	for _, o := range trm.output {
		if strings.Contains(o, s) {
			return true
		}
	}
	return false
}

const resetAddress = uint32(0x001000)

// program is LDA #$1234, NOP, HLT.
var program = []uint8{0x01, 0x34, 0x12, 0x00, 0xff}

func newDebugger(t *testing.T, trm *mockTerm) (*debugger.Debugger, *hardware.Console) {
	t.Helper()

	ins, err := instance.NewInstance(instance.Test, nil)
	test.DemandSuccess(t, err)
	con, err := hardware.NewConsole(ins)
	test.DemandSuccess(t, err)

	bios := make([]uint8, 0x20)
	bios[interrupts.VectorReset] = uint8(resetAddress & 0xff)
	bios[interrupts.VectorReset+1] = uint8(resetAddress >> 8 & 0xff)
	bios[interrupts.VectorReset+2] = uint8(resetAddress >> 16 & 0xff)
	test.DemandSuccess(t, con.Load(memorymap.BIOS, bios))
	con.Reset()

	for i, b := range program {
		con.Mem.Poke(resetAddress+uint32(i), b)
	}

	return debugger.NewDebugger(con, trm), con
}

func TestInputLoop(t *testing.T) {
	trm := &mockTerm{input: []string{"step", "regs", "; a comment", "", "QUIT", "STEP"}}
	dbg, con := newDebugger(t, trm)

	test.DemandSuccess(t, dbg.Start(context.Background()))
	test.Equate(t, con.CPU.PC.Address(), 0x001003)
	test.Equate(t, con.CPU.Registers().A, 0x1234)
	test.Equate(t, len(trm.errors), 0)
	test.ExpectedSuccess(t, trm.contains("LDA"))
	test.ExpectedSuccess(t, trm.contains("A=1234"))

	// end of input also ends the session
	trm = &mockTerm{input: []string{"STEP 2"}}
	dbg, con = newDebugger(t, trm)
	test.DemandSuccess(t, dbg.Start(context.Background()))
	test.Equate(t, con.CPU.PC.Address(), 0x001004)
}

func TestErrors(t *testing.T) {
	trm := &mockTerm{input: []string{"FOO", "PEEK"}}
	dbg, _ := newDebugger(t, trm)
	test.DemandSuccess(t, dbg.Start(context.Background()))
	test.Equate(t, len(trm.errors), 2)

	ctx := context.Background()
	err := dbg.Execute(ctx, "FOO")
	test.ExpectedSuccess(t, curated.Is(err, debugger.UnknownCommand))
	err = dbg.Execute(ctx, "PEEK")
	test.ExpectedSuccess(t, curated.Is(err, debugger.MissingArgument))
	err = dbg.Execute(ctx, "POKE $2000 300")
	test.ExpectedSuccess(t, curated.Is(err, debugger.InvalidArgument))
	err = dbg.Execute(ctx, "STEP 0")
	test.ExpectedSuccess(t, curated.Is(err, debugger.InvalidArgument))
	err = dbg.Execute(ctx, "PEEK $2000 1 2")
	test.ExpectedSuccess(t, curated.Is(err, debugger.TooManyArguments))
	err = dbg.Execute(ctx, "PEEK 0x1000000")
	test.ExpectedSuccess(t, curated.Is(err, debugger.InvalidArgument))
}

func TestRunAndBreakpoints(t *testing.T) {
	trm := &mockTerm{}
	dbg, con := newDebugger(t, trm)
	ctx := context.Background()

	test.DemandSuccess(t, dbg.Execute(ctx, "BREAK $001003"))
	test.DemandSuccess(t, dbg.Execute(ctx, "BREAK $001003"))
	test.ExpectedSuccess(t, trm.contains("already exists"))

	test.DemandSuccess(t, dbg.Execute(ctx, "RUN"))
	test.Equate(t, con.CPU.PC.Address(), 0x001003)
	test.ExpectedSuccess(t, trm.contains("break at 001003"))

	trm.output = nil
	test.DemandSuccess(t, dbg.Execute(ctx, "BREAK"))
	test.ExpectedSuccess(t, trm.contains("001003"))

	// running from a breakpoint continues to the halt
	test.DemandSuccess(t, dbg.Execute(ctx, "RUN"))
	test.Equate(t, con.CPU.Halted(), true)
	test.ExpectedSuccess(t, trm.contains("halted"))

	test.DemandSuccess(t, dbg.Execute(ctx, "DROP $001003"))
	err := dbg.Execute(ctx, "DROP $001003")
	test.ExpectedSuccess(t, curated.Is(err, debugger.InvalidArgument))

	test.DemandSuccess(t, dbg.Execute(ctx, "BREAK $001000 $001004"))
	test.DemandSuccess(t, dbg.Execute(ctx, "CLEAR"))
	trm.output = nil
	test.DemandSuccess(t, dbg.Execute(ctx, "BREAK"))
	test.ExpectedSuccess(t, trm.contains("no breakpoints"))

	test.DemandSuccess(t, dbg.Execute(ctx, "RESET"))
	test.Equate(t, con.CPU.Halted(), false)
	test.Equate(t, con.CPU.PC.Address(), resetAddress)
}

func TestRunCancelled(t *testing.T) {
	trm := &mockTerm{}
	dbg, con := newDebugger(t, trm)

	// BRA to self
	con.Mem.Poke(resetAddress, 0x30)
	con.Mem.Poke(resetAddress+1, 0xfe)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	test.DemandSuccess(t, dbg.Execute(ctx, "RUN"))
	test.ExpectedSuccess(t, trm.contains("stopped"))
	test.Equate(t, con.CPU.Halted(), false)
}

func TestFrame(t *testing.T) {
	trm := &mockTerm{}
	dbg, con := newDebugger(t, trm)

	test.DemandSuccess(t, dbg.Execute(context.Background(), "FRAME 3"))
	test.Equate(t, con.CPU.Halted(), true)
	test.ExpectedSuccess(t, trm.contains("frame=1"))
}

func TestPeekPoke(t *testing.T) {
	trm := &mockTerm{}
	dbg, con := newDebugger(t, trm)
	ctx := context.Background()

	test.DemandSuccess(t, dbg.Execute(ctx, "POKE $2000 1 2 0x03"))
	test.Equate(t, con.Mem.Peek(0x002002), 0x03)

	test.DemandSuccess(t, dbg.Execute(ctx, "PEEK 0x2000 3"))
	test.Equate(t, trm.output[len(trm.output)-1], "002000: 01 02 03")

	trm.output = nil
	test.DemandSuccess(t, dbg.Execute(ctx, "PEEK $2000 17"))
	test.Equate(t, len(trm.output), 2)
	test.Equate(t, trm.output[1], "002010: 00")

	// labels are accepted as addresses
	dbg.AddLabels(map[string]uint32{"data": 0x002000})
	test.DemandSuccess(t, dbg.Execute(ctx, "POKE data 0xaa"))
	test.Equate(t, con.Mem.Peek(0x002000), 0xaa)
}

func TestDisasm(t *testing.T) {
	trm := &mockTerm{}
	dbg, _ := newDebugger(t, trm)
	dbg.AddLabels(map[string]uint32{"start": resetAddress})

	test.DemandSuccess(t, dbg.Execute(context.Background(), "DISASM start 3"))
	test.Equate(t, len(trm.output), 4)
	test.Equate(t, trm.output[0], "start:")
	test.ExpectedSuccess(t, strings.Contains(trm.output[1], "LDA #$1234"))
	test.ExpectedSuccess(t, strings.Contains(trm.output[2], "NOP"))
	test.ExpectedSuccess(t, strings.Contains(trm.output[3], "HLT"))

	trm.output = nil
	test.DemandSuccess(t, dbg.Execute(context.Background(), "GREP MNEMONIC hlt $001000 3"))
	test.Equate(t, len(trm.output), 1)
	test.ExpectedSuccess(t, strings.Contains(trm.output[0], "001004"))
}

func TestInterruptsAndPad(t *testing.T) {
	trm := &mockTerm{}
	dbg, con := newDebugger(t, trm)
	ctx := context.Background()

	test.DemandSuccess(t, dbg.Execute(ctx, "RAISE timer0"))
	test.Equate(t, con.IC.Pending(interrupts.TIMER0), true)
	err := dbg.Execute(ctx, "RAISE foo")
	test.ExpectedSuccess(t, curated.Is(err, debugger.InvalidArgument))

	test.DemandSuccess(t, dbg.Execute(ctx, "PAD PRESS A+START"))
	test.Equate(t, uint16(con.Pad.State()), uint16(pad.ButtonA|pad.Start))
	test.DemandSuccess(t, dbg.Execute(ctx, "PAD RELEASE a"))
	test.Equate(t, uint16(con.Pad.State()), uint16(pad.Start))
	err = dbg.Execute(ctx, "PAD PUSH A")
	test.ExpectedSuccess(t, curated.Is(err, debugger.InvalidArgument))

	trm.output = nil
	test.DemandSuccess(t, dbg.Execute(ctx, "COPROC"))
	test.Equate(t, len(trm.output), len(con.Coprocessors()))
}

func TestKeys(t *testing.T) {
	trm := &mockTerm{interactive: true, keys: []byte{' ', ' ', 'x', 'q', ' '}}
	dbg, con := newDebugger(t, trm)

	test.DemandSuccess(t, dbg.Execute(context.Background(), "KEYS"))
	test.Equate(t, con.CPU.PC.Address(), 0x001004)

	trm = &mockTerm{keys: []byte{' '}}
	dbg, _ = newDebugger(t, trm)
	err := dbg.Execute(context.Background(), "KEYS")
	test.ExpectedSuccess(t, curated.Is(err, terminal.NotInteractive))
}

func TestHelp(t *testing.T) {
	trm := &mockTerm{}
	dbg, _ := newDebugger(t, trm)

	test.DemandSuccess(t, dbg.Execute(context.Background(), "HELP"))
	test.ExpectedSuccess(t, trm.contains("STEP"))

	trm.output = nil
	test.DemandSuccess(t, dbg.Execute(context.Background(), "HELP peek"))
	test.ExpectedSuccess(t, trm.contains("usage: PEEK"))

	err := dbg.Execute(context.Background(), "HELP FOO")
	test.ExpectedSuccess(t, curated.Is(err, debugger.UnknownCommand))
}

func TestMemviz(t *testing.T) {
	trm := &mockTerm{}
	dbg, _ := newDebugger(t, trm)

	pth := filepath.Join(t.TempDir(), "state.dot")
	test.DemandSuccess(t, dbg.Execute(context.Background(), "MEMVIZ "+pth))

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectedSuccess(t, strings.Contains(string(data), "digraph"))
}

func TestDigest(t *testing.T) {
	trm := &mockTerm{}
	dbg, _ := newDebugger(t, trm)
	ctx := context.Background()

	test.DemandSuccess(t, dbg.Execute(ctx, "DIGEST"))
	first := trm.output[len(trm.output)-1]
	test.Equate(t, len(first), 40)

	test.DemandSuccess(t, dbg.Execute(ctx, "DIGEST"))
	test.ExpectedSuccess(t, trm.output[len(trm.output)-1] != first)

	test.DemandSuccess(t, dbg.Execute(ctx, "DIGEST reset"))
	test.Equate(t, trm.output[len(trm.output)-1], first)

	err := dbg.Execute(ctx, "DIGEST foo")
	test.ExpectedSuccess(t, curated.Is(err, debugger.InvalidArgument))
}
