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

package instructions_test

import (
	"testing"

	"github.com/nexel24/nexel24/hardware/cpu/instructions"
	"github.com/nexel24/nexel24/test"
)

func TestDefinitions(t *testing.T) {
	defs := instructions.GetDefinitions()

	n := 0
	for opcode, defn := range defs {
		if defn == nil {
			continue
		}
		n++

		test.Equate(t, int(defn.OpCode), opcode)

		// the encoded size is always the opcode plus the operand
		test.Equate(t, defn.Bytes, 1+defn.AddressingMode.OperandBytes())

		// branches are all relative and have the same base cost
		if defn.Operator.IsBranch() {
			test.Equate(t, defn.IsBranch(), true)
			test.Equate(t, defn.Cycles, 2)
		}
	}
	test.Equate(t, n, 41)

	test.Equate(t, instructions.Lookup(0x0a) == nil, true)
	test.Equate(t, instructions.Lookup(0xff).Operator.String(), "HLT")
}

func TestFind(t *testing.T) {
	defn := instructions.Find(instructions.Lda, instructions.Absolute)
	test.DemandSuccess(t, defn != nil)
	test.Equate(t, defn.OpCode, 0x07)

	test.Equate(t, instructions.Find(instructions.Sta, instructions.Immediate) == nil, true)
	test.Equate(t, len(instructions.Modes(instructions.Ldx)), 2)

	op, ok := instructions.OperatorFromMnemonic("bset")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, op.String(), "BSET")

	_, ok = instructions.OperatorFromMnemonic("ADC")
	test.ExpectedFailure(t, ok)
}

func TestFormatOperand(t *testing.T) {
	test.Equate(t, instructions.Lookup(0x01).FormatOperand(0x1234, 0), "#$1234")
	test.Equate(t, instructions.Lookup(0x02).FormatOperand(0x000009, 0), "$000009")
	test.Equate(t, instructions.Lookup(0x44).FormatOperand(0x01, 0), "#$01")

	// branch target is relative to the following instruction
	test.Equate(t, instructions.Lookup(0x30).FormatOperand(0xf7, 0x000007), "$000000")
	test.Equate(t, instructions.Lookup(0x31).FormatOperand(0x10, 0x000100), "$000112")

	test.Equate(t, instructions.Lookup(0x17).FormatOperand(0x40, 0), "R0,A")
	test.Equate(t, instructions.Lookup(0x18).FormatOperand(0x03, 0), "SP")

	code, ok := instructions.RegisterCode("r7")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, code, instructions.RegR7)
}
