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
	"errors"
	"fmt"
	"io"

	"github.com/nexel24/nexel24/debugger/terminal"
	"github.com/nexel24/nexel24/digest"
	"github.com/nexel24/nexel24/hardware"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	con  *hardware.Console
	term terminal.Terminal

	// labels shown in disassembly. can be empty
	labels map[string]uint32

	breakpoints breakpoints

	digest *digest.State

	// set by the QUIT command
	quit bool
}

// NewDebugger creates and initialises everything required for a new
// debugging session. Use the Start() method to actually begin the session.
func NewDebugger(con *hardware.Console, term terminal.Terminal) *Debugger {
	return &Debugger{
		con:    con,
		term:   term,
		labels: make(map[string]uint32),
		digest: digest.NewState(con),
	}
}

// AddLabels adds to the labels used in disassembly output.
func (dbg *Debugger) AddLabels(labels map[string]uint32) {
	for n, a := range labels {
		dbg.labels[n] = a
	}
}

func (dbg *Debugger) prompt() string {
	if dbg.con.CPU.Halted() {
		return fmt.Sprintf("[ %06x halted ] >> ", dbg.con.CPU.PC.Address())
	}
	return fmt.Sprintf("[ %06x ] >> ", dbg.con.CPU.PC.Address())
}

// Start the main debugger sequence. Returns when the QUIT command is
// entered, when the input is exhausted or when the context is cancelled.
func (dbg *Debugger) Start(ctx context.Context) error {
	if err := dbg.term.Initialise(); err != nil {
		return err
	}
	defer dbg.term.CleanUp()

	dbg.quit = false
	for !dbg.quit {
		if err := ctx.Err(); err != nil {
			return nil
		}

		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		dbg.term.TermPrintLine(terminal.StyleEcho, input)

		if err := dbg.Execute(ctx, input); err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	return nil
}

// Execute a single line of input.
func (dbg *Debugger) Execute(ctx context.Context, input string) error {
	tokens := tokenise(input)
	if len(tokens) == 0 {
		return nil
	}
	return dbg.dispatch(ctx, tokens)
}

func (dbg *Debugger) printLine(style terminal.Style, format string, args ...any) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(format, args...))
}

// writer returns an io.Writer that prints to the terminal. The Flush() method
// of the returned writer must be called when writing is complete.
func (dbg *Debugger) writer(style terminal.Style) *terminal.Writer {
	return &terminal.Writer{Output: dbg.term, Style: style}
}
