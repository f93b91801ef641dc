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
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/nexel24/nexel24/curated"
	"github.com/nexel24/nexel24/debugger/terminal"
	"github.com/nexel24/nexel24/hardware"
	"github.com/nexel24/nexel24/hardware/cpu"
)

// snapshot is the structure given to memviz. The fields are copies of the
// console state.
type snapshot struct {
	Registers   cpu.Registers
	Pending     uint16
	Stats       hardware.Stats
	Breakpoints []uint32
}

func (dbg *Debugger) snapshot() *snapshot {
	s := &snapshot{
		Registers: dbg.con.CPU.Registers(),
		Pending:   dbg.con.IC.PendingMask(),
		Stats:     dbg.con.Stats(),
	}
	for a := range dbg.breakpoints.addresses {
		s.Breakpoints = append(s.Breakpoints, a)
	}
	return s
}

func (dbg *Debugger) cmdMemviz(_ context.Context, args []string) error {
	if len(args) == 0 {
		return curated.Errorf(MissingArgument, cmdMemviz, "a file")
	}

	f, err := os.Create(args[0])
	if err != nil {
		return curated.Errorf(InvalidArgument, cmdMemviz, err)
	}
	defer f.Close()

	memviz.Map(f, dbg.snapshot())
	dbg.printLine(terminal.StyleFeedback, "state written to %s", args[0])

	return nil
}
