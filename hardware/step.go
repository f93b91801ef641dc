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

// Step the emulation by one CPU instruction. The coprocessors are advanced by
// the cycles consumed by the instruction and the interrupts they report are
// made pending.
//
// Returns the number of cycles consumed. A halted CPU consumes no cycles and
// the coprocessors are not advanced.
func (con *Console) Step() int {
	cycles := con.CPU.Step()
	if cycles == 0 {
		return 0
	}

	for _, cop := range con.coprocessors {
		for _, id := range cop.Tick(cycles) {
			con.IC.Raise(id)
		}
	}

	return cycles
}
