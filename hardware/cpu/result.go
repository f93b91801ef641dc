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

package cpu

import (
	"fmt"

	"github.com/nexel24/nexel24/hardware/cpu/instructions"
	"github.com/nexel24/nexel24/hardware/interrupts"
)

// Result contains all the interesting information from a single call to
// Step().
type Result struct {
	// the address at which the opcode was found
	Address uint32

	// the definition of the instruction. nil if the opcode was not decoded or
	// if the step did not reach the decode stage
	Defn *instructions.Definition

	// the operand as read from memory. the meaning depends on the addressing
	// mode of the instruction
	Operand uint32

	// number of cycles consumed by the step
	Cycles int

	// whether the branch of a branch instruction was taken
	BranchTaken bool

	// the step serviced an interrupt rather than executing an instruction
	Interrupted bool
	Interrupt   interrupts.ID

	// the step did nothing because the CPU is waiting for an interrupt
	Waiting bool

	// the step caused a decode fault
	Fault bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	switch {
	case r.Interrupted:
		return fmt.Sprintf("%06x\t** %s **\t\t[%d]", r.Address, r.Interrupt, r.Cycles)
	case r.Waiting:
		return fmt.Sprintf("%06x\t** WFI **\t\t[%d]", r.Address, r.Cycles)
	case r.Defn == nil:
		return fmt.Sprintf("%06x\t???\t\t[%d]", r.Address, r.Cycles)
	}

	var taken string
	if r.BranchTaken {
		taken = " taken"
	}

	var fault string
	if r.Fault {
		fault = " * decode fault *"
	}

	return fmt.Sprintf("%06x\t%s\t%s\t[%d]%s%s", r.Address, r.Defn.Operator,
		r.Defn.FormatOperand(r.Operand, r.Address), r.Cycles, taken, fault)
}
