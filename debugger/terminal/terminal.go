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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit. The most likely treatment is to print different
// styles in different colours.
type Style int

// List of terminal styles.
const (
	// the text echoed back to the user after it has been entered
	StyleEcho Style = iota

	// information from the debugger about the emulation
	StyleFeedback

	// help text
	StyleHelp

	// disassembly and CPU results
	StyleInstrument

	// used for errors. should be printed even if the terminal is silenced
	StyleError
)

// Sentinel error patterns.
const (
	NotInteractive = "terminal: not an interactive terminal"
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input, without the line ending. The
	// prompt should be shown to the user if the terminal is interactive.
	// io.EOF is returned when there is no more input
	TermRead(prompt string) (string, error)

	// IsInteractive should return true for implementations that require user
	// interaction. Instances that don't expect user intervention should return
	// false
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything
	Initialise() error

	// Restore the terminal to its original state, if possible
	CleanUp()

	// Silence all output except error messages
	Silence(silenced bool)
}

// KeyReader is implemented by terminals that can read single key presses.
type KeyReader interface {
	// ReadKeys puts the terminal into a mode where keys are delivered without
	// waiting for the return key. The function is called for every key and
	// the mode ends when it returns false. The terminal is restored to its
	// previous mode before ReadKeys returns
	ReadKeys(f func(key byte) bool) error
}

// Writer adapts an Output for use as an io.Writer. Each line written is sent
// to the terminal with the style.
type Writer struct {
	Output Output
	Style  Style
	buffer []byte
}

func (w *Writer) Write(p []byte) (int, error) {
	w.buffer = append(w.buffer, p...)
	for {
		i := indexNewline(w.buffer)
		if i < 0 {
			break
		}
		w.Output.TermPrintLine(w.Style, string(w.buffer[:i]))
		w.buffer = w.buffer[i+1:]
	}
	return len(p), nil
}

// Flush sends any incomplete line to the terminal.
func (w *Writer) Flush() {
	if len(w.buffer) > 0 {
		w.Output.TermPrintLine(w.Style, string(w.buffer))
		w.buffer = w.buffer[:0]
	}
}

func indexNewline(b []byte) int {
	for i, c := range b {
		if c == '\n' {
			return i
		}
	}
	return -1
}
