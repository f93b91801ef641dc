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

package instructions

// AddressingMode describes how the operand of an instruction is encoded.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied      AddressingMode = iota
	Immediate                   // #imm16
	Immediate8                  // #imm8
	Absolute                    // abs24
	Relative                    // rel8. used by branch instructions
	Register                    // a single register code in the low nibble
	RegisterPair                // dst<<4 | src
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Immediate:
		return "Immediate"
	case Immediate8:
		return "Immediate8"
	case Absolute:
		return "Absolute"
	case Relative:
		return "Relative"
	case Register:
		return "Register"
	case RegisterPair:
		return "RegisterPair"
	}
	return "unknown addressing mode"
}

// OperandBytes returns the number of bytes following the opcode for the
// addressing mode.
func (m AddressingMode) OperandBytes() int {
	switch m {
	case Immediate:
		return 2
	case Immediate8, Relative, Register, RegisterPair:
		return 1
	case Absolute:
		return 3
	}
	return 0
}
