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

package registers

import "fmt"

// ProgramCounter is the 24-bit program counter.
type ProgramCounter struct {
	value uint32
}

// the program counter is 24 bits wide.
const pcMask = 0xffffff

// NewProgramCounter is the preferred method of initialisation for the
// ProgramCounter.
func NewProgramCounter(val uint32) ProgramCounter {
	return ProgramCounter{value: val & pcMask}
}

// Label returns the canonical name for the program counter.
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%06x", pc.value)
}

// Address returns the current value of the PC.
func (pc ProgramCounter) Address() uint32 {
	return pc.value
}

// Load a value into the PC. Bits above 24 are ignored.
func (pc *ProgramCounter) Load(val uint32) {
	pc.value = val & pcMask
}

// Add a value to the PC. The PC wraps at 24 bits.
func (pc *ProgramCounter) Add(val uint32) {
	pc.value = (pc.value + val) & pcMask
}

// Relative adds a signed offset to the PC, as used by the branch
// instructions.
func (pc *ProgramCounter) Relative(offset int8) {
	pc.value = uint32(int32(pc.value)+int32(offset)) & pcMask
}
