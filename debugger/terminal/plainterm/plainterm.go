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

// Package plainterm implements the Terminal interface for the Nexel24
// debugger. It's as simple as simple can be and offers no line editing.
//
// On a real terminal the KeyReader interface is also implemented, using
// cbreak mode on the controlling tty.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	pkgterm "github.com/pkg/term"
	"golang.org/x/term"

	"github.com/nexel24/nexel24/curated"
	"github.com/nexel24/nexel24/debugger/terminal"
)

// the device opened for cbreak mode.
const ttyDevice = "/dev/tty"

// PlainTerminal is the default, most basic terminal interface. It keeps the
// terminal in whatever mode it started, probably cooked mode.
type PlainTerminal struct {
	input       io.Reader
	output      io.Writer
	scanner     *bufio.Scanner
	interactive bool
	silenced    bool
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type. If input and output are nil then stdin and stdout are
// used.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	if input == nil {
		input = os.Stdin
	}
	if output == nil {
		output = os.Stdout
	}
	return &PlainTerminal{
		input:  input,
		output: output,
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Initialise implements the terminal.Terminal interface.
func (pt *PlainTerminal) Initialise() error {
	pt.scanner = bufio.NewScanner(pt.input)
	pt.interactive = isTerminal(pt.input) && isTerminal(pt.output)
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (pt *PlainTerminal) CleanUp() {
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.interactive
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if pt.silenced && style != terminal.StyleError {
		return
	}

	// we don't need to echo user input for this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}

	io.WriteString(pt.output, s)
	io.WriteString(pt.output, "\n")
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt string) (string, error) {
	if pt.scanner == nil {
		pt.scanner = bufio.NewScanner(pt.input)
	}

	if pt.interactive && !pt.silenced {
		io.WriteString(pt.output, prompt)
	}

	if !pt.scanner.Scan() {
		if err := pt.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimRight(pt.scanner.Text(), "\r"), nil
}

// ReadKeys implements the terminal.KeyReader interface.
func (pt *PlainTerminal) ReadKeys(f func(key byte) bool) error {
	if !pt.interactive {
		return curated.Errorf(terminal.NotInteractive)
	}

	tty, err := pkgterm.Open(ttyDevice, pkgterm.CBreakMode)
	if err != nil {
		return err
	}
	defer tty.Close()
	defer tty.Restore()

	key := make([]byte, 1)
	for {
		n, err := tty.Read(key)
		if err != nil {
			return err
		}
		if n == 0 {
			continue
		}
		if !f(key[0]) {
			return nil
		}
	}
}
