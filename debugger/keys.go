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

	"github.com/nexel24/nexel24/curated"
	"github.com/nexel24/nexel24/debugger/terminal"
)

// single key bindings for the KEYS command.
const (
	keyStep  = ' '
	keyFrame = 'f'
	keyQuit  = 'q'
)

func (dbg *Debugger) cmdKeys(ctx context.Context, _ []string) error {
	kr, ok := dbg.term.(terminal.KeyReader)
	if !ok || !dbg.term.IsInteractive() {
		return curated.Errorf(terminal.NotInteractive)
	}

	dbg.printLine(terminal.StyleHelp, "space: step  f: frame  q: return")

	var err error
	readErr := kr.ReadKeys(func(key byte) bool {
		if ctx.Err() != nil {
			return false
		}

		switch key {
		case keyStep:
			err = dbg.cmdStep(ctx, nil)
		case keyFrame:
			err = dbg.cmdFrame(ctx, nil)
		case keyQuit:
			return false
		}

		return err == nil && !dbg.con.CPU.Halted()
	})

	if readErr != nil {
		return readErr
	}
	return err
}
