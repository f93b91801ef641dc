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

package plainterm_test

import (
	"io"
	"strings"
	"testing"

	"github.com/nexel24/nexel24/curated"
	"github.com/nexel24/nexel24/debugger/terminal"
	"github.com/nexel24/nexel24/debugger/terminal/plainterm"
	"github.com/nexel24/nexel24/test"
)

func TestReadPrint(t *testing.T) {
	out := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("STEP\r\nREGS\n"), out)
	test.DemandSuccess(t, pt.Initialise())
	defer pt.CleanUp()

	test.Equate(t, pt.IsInteractive(), false)

	s, err := pt.TermRead("> ")
	test.DemandSuccess(t, err)
	test.Equate(t, s, "STEP")

	s, err = pt.TermRead("> ")
	test.DemandSuccess(t, err)
	test.Equate(t, s, "REGS")

	_, err = pt.TermRead("> ")
	test.Equate(t, err == io.EOF, true)

	// the prompt is not printed for non-interactive terminals
	test.ExpectedSuccess(t, out.Compare(""))

	pt.TermPrintLine(terminal.StyleEcho, "echo")
	pt.TermPrintLine(terminal.StyleFeedback, "feedback")
	pt.TermPrintLine(terminal.StyleError, "error")
	test.ExpectedSuccess(t, out.Compare("feedback\n* error\n"))

	out.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "feedback")
	pt.TermPrintLine(terminal.StyleError, "error")
	test.ExpectedSuccess(t, out.Compare("* error\n"))
}

func TestReadKeysNotInteractive(t *testing.T) {
	pt := plainterm.NewPlainTerminal(strings.NewReader(""), &test.CompareWriter{})
	test.DemandSuccess(t, pt.Initialise())

	err := pt.ReadKeys(func(byte) bool { return false })
	test.ExpectedSuccess(t, curated.Is(err, terminal.NotInteractive))
}

func TestWriter(t *testing.T) {
	out := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader(""), out)
	test.DemandSuccess(t, pt.Initialise())

	w := &terminal.Writer{Output: pt, Style: terminal.StyleFeedback}
	io.WriteString(w, "one\ntw")
	test.ExpectedSuccess(t, out.Compare("one\n"))
	io.WriteString(w, "o\nthree")
	w.Flush()
	test.ExpectedSuccess(t, out.Compare("one\ntwo\nthree\n"))
}
