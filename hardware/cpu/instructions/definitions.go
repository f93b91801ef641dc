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

// the instruction table. cycle counts are the base cost. branch instructions
// cost one more cycle when taken and DIV has a variable surcharge
var table = []Definition{
	{OpCode: 0x00, Operator: Nop, Bytes: 1, Cycles: 1, AddressingMode: Implied, Effect: Control},
	{OpCode: 0x01, Operator: Lda, Bytes: 3, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x02, Operator: Sta, Bytes: 4, Cycles: 3, AddressingMode: Absolute, Effect: Write},
	{OpCode: 0x03, Operator: Ldx, Bytes: 3, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x04, Operator: Stx, Bytes: 4, Cycles: 3, AddressingMode: Absolute, Effect: Write},
	{OpCode: 0x05, Operator: Ldy, Bytes: 3, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x06, Operator: Sty, Bytes: 4, Cycles: 3, AddressingMode: Absolute, Effect: Write},
	{OpCode: 0x07, Operator: Lda, Bytes: 4, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x08, Operator: Ldx, Bytes: 4, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x09, Operator: Ldy, Bytes: 4, Cycles: 4, AddressingMode: Absolute, Effect: Read},

	{OpCode: 0x10, Operator: Add, Bytes: 3, Cycles: 2, AddressingMode: Immediate, Effect: Modify},
	{OpCode: 0x11, Operator: Sub, Bytes: 3, Cycles: 2, AddressingMode: Immediate, Effect: Modify},
	{OpCode: 0x12, Operator: And, Bytes: 3, Cycles: 2, AddressingMode: Immediate, Effect: Modify},
	{OpCode: 0x13, Operator: Or, Bytes: 3, Cycles: 2, AddressingMode: Immediate, Effect: Modify},
	{OpCode: 0x14, Operator: Xor, Bytes: 3, Cycles: 2, AddressingMode: Immediate, Effect: Modify},
	{OpCode: 0x15, Operator: Mul, Bytes: 3, Cycles: 5, AddressingMode: Immediate, Effect: Modify},
	{OpCode: 0x16, Operator: Div, Bytes: 3, Cycles: 2, AddressingMode: Immediate, Effect: Modify},
	{OpCode: 0x17, Operator: Mov, Bytes: 2, Cycles: 2, AddressingMode: RegisterPair, Effect: Modify},
	{OpCode: 0x18, Operator: Inc, Bytes: 2, Cycles: 2, AddressingMode: Register, Effect: Modify},
	{OpCode: 0x19, Operator: Dec, Bytes: 2, Cycles: 2, AddressingMode: Register, Effect: Modify},
	{OpCode: 0x1a, Operator: Bit, Bytes: 3, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x1b, Operator: Bset, Bytes: 3, Cycles: 2, AddressingMode: Immediate, Effect: Modify},
	{OpCode: 0x1c, Operator: Bclr, Bytes: 3, Cycles: 2, AddressingMode: Immediate, Effect: Modify},

	{OpCode: 0x20, Operator: Jmp, Bytes: 4, Cycles: 3, AddressingMode: Absolute, Effect: Flow},
	{OpCode: 0x21, Operator: Jsr, Bytes: 4, Cycles: 5, AddressingMode: Absolute, Effect: Subroutine},
	{OpCode: 0x22, Operator: Rts, Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Subroutine},

	{OpCode: 0x30, Operator: Bra, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x31, Operator: Beq, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x32, Operator: Bne, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x33, Operator: Bcs, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x34, Operator: Bcc, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x35, Operator: Bmi, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x36, Operator: Bpl, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x37, Operator: Bvs, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x38, Operator: Bvc, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},

	{OpCode: 0x40, Operator: Sei, Bytes: 1, Cycles: 1, AddressingMode: Implied, Effect: Control},
	{OpCode: 0x41, Operator: Cli, Bytes: 1, Cycles: 1, AddressingMode: Implied, Effect: Control},
	{OpCode: 0x42, Operator: Rti, Bytes: 1, Cycles: 5, AddressingMode: Implied, Effect: Interrupt},
	{OpCode: 0x43, Operator: Wfi, Bytes: 1, Cycles: 1, AddressingMode: Implied, Effect: Interrupt},
	{OpCode: 0x44, Operator: Cop, Bytes: 2, Cycles: 3, AddressingMode: Immediate8, Effect: Control},

	{OpCode: 0xff, Operator: Hlt, Bytes: 1, Cycles: 1, AddressingMode: Implied, Effect: Control},
}

// the table indexed by opcode. undefined opcodes are nil
var definitions [256]*Definition

func init() {
	for i := range table {
		definitions[table[i].OpCode] = &table[i]
	}
}

// GetDefinitions returns the instruction table indexed by opcode. Entries for
// undefined opcodes are nil. The returned array is a copy but the Definitions
// are shared and must not be altered.
func GetDefinitions() [256]*Definition {
	return definitions
}

// Lookup returns the Definition for the opcode or nil if the opcode is
// undefined.
func Lookup(opcode uint8) *Definition {
	return definitions[opcode]
}

// Find returns the Definition for the operator and addressing mode. Used when
// encoding instructions.
func Find(op Operator, mode AddressingMode) *Definition {
	for i := range table {
		if table[i].Operator == op && table[i].AddressingMode == mode {
			return &table[i]
		}
	}
	return nil
}

// Modes returns the addressing modes available to the operator.
func Modes(op Operator) []AddressingMode {
	var modes []AddressingMode
	for _, d := range table {
		if d.Operator == op {
			modes = append(modes, d.AddressingMode)
		}
	}
	return modes
}
