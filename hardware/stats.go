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

package hardware

import (
	"fmt"

	"github.com/nexel24/nexel24/hardware/cpu"
)

// Stats is a summary of the state of the console.
type Stats struct {
	TotalCycles uint64
	FrameCount  uint64
	PC          uint32
	Halted      bool
	Fault       cpu.Fault
}

func (s Stats) String() string {
	h := ""
	if s.Halted {
		h = " halted"
		if s.Fault.Code != cpu.FaultNone {
			h = fmt.Sprintf(" halted (%s)", s.Fault)
		}
	}
	return fmt.Sprintf("frame=%d cycles=%d PC=%06x%s", s.FrameCount, s.TotalCycles, s.PC, h)
}

// Stats returns the current execution statistics.
func (con *Console) Stats() Stats {
	return Stats{
		TotalCycles: con.CPU.Cycles(),
		FrameCount:  con.frameCount,
		PC:          con.CPU.PC.Address(),
		Halted:      con.CPU.Halted(),
		Fault:       con.CPU.Fault(),
	}
}
