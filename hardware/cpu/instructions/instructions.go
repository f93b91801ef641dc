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

import (
	"fmt"
	"strings"
)

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	Effect         Category
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction. The CPU adds
// one cycle to the cost of a branch instruction when the branch is taken.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// FormatOperand returns the operand in assembler notation. The address is the
// address of the opcode and is used to show the target of a branch.
func (defn Definition) FormatOperand(operand uint32, address uint32) string {
	switch defn.AddressingMode {
	case Immediate:
		return fmt.Sprintf("#$%04x", operand)
	case Immediate8:
		return fmt.Sprintf("#$%02x", operand)
	case Absolute:
		return fmt.Sprintf("$%06x", operand)
	case Relative:
		target := (address + uint32(defn.Bytes) + uint32(int32(int8(operand)))) & 0xffffff
		return fmt.Sprintf("$%06x", target)
	case Register:
		return RegisterName(uint8(operand & 0x0f))
	case RegisterPair:
		return fmt.Sprintf("%s,%s", RegisterName(uint8(operand>>4)), RegisterName(uint8(operand&0x0f)))
	}
	return ""
}

// Register codes used by the Register and RegisterPair addressing modes.
const (
	RegA  = uint8(0)
	RegX  = uint8(1)
	RegY  = uint8(2)
	RegSP = uint8(3)
	RegR0 = uint8(4)

	// the highest valid register code
	RegR7 = uint8(11)
)

var registerNames = []string{"A", "X", "Y", "SP", "R0", "R1", "R2", "R3", "R4", "R5", "R6", "R7"}

// RegisterName returns the assembler name of the register code.
func RegisterName(code uint8) string {
	if int(code) >= len(registerNames) {
		return fmt.Sprintf("?%d", code)
	}
	return registerNames[code]
}

// RegisterCode returns the code for the named register. Case insensitive.
func RegisterCode(name string) (uint8, bool) {
	for i, n := range registerNames {
		if strings.EqualFold(n, name) {
			return uint8(i), true
		}
	}
	return 0, false
}
