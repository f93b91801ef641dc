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

import "strings"

// Operator identifies the operation performed by an instruction. More than
// one opcode can share an Operator, distinguished by the AddressingMode.
type Operator int

// List of valid operators.
const (
	Nop Operator = iota
	Lda
	Ldx
	Ldy
	Sta
	Stx
	Sty
	Add
	Sub
	And
	Or
	Xor
	Mul
	Div
	Mov
	Inc
	Dec
	Bit
	Bset
	Bclr
	Jmp
	Jsr
	Rts
	Bra
	Beq
	Bne
	Bcs
	Bcc
	Bmi
	Bpl
	Bvs
	Bvc
	Sei
	Cli
	Rti
	Wfi
	Cop
	Hlt

	numOperators
)

var mnemonics = [numOperators]string{
	"NOP", "LDA", "LDX", "LDY", "STA", "STX", "STY",
	"ADD", "SUB", "AND", "OR", "XOR", "MUL", "DIV",
	"MOV", "INC", "DEC", "BIT", "BSET", "BCLR",
	"JMP", "JSR", "RTS",
	"BRA", "BEQ", "BNE", "BCS", "BCC", "BMI", "BPL", "BVS", "BVC",
	"SEI", "CLI", "RTI", "WFI", "COP", "HLT",
}

func (op Operator) String() string {
	if op < 0 || op >= numOperators {
		return "???"
	}
	return mnemonics[op]
}

// OperatorFromMnemonic returns the Operator for the mnemonic. Case
// insensitive.
func OperatorFromMnemonic(mnemonic string) (Operator, bool) {
	for i, m := range mnemonics {
		if strings.EqualFold(m, mnemonic) {
			return Operator(i), true
		}
	}
	return numOperators, false
}

// IsBranch returns true if the operator is one of the relative branch
// instructions.
func (op Operator) IsBranch() bool {
	return op >= Bra && op <= Bvc
}
