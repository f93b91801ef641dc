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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/nexel24/nexel24/hardware/cpu/instructions"
	"github.com/nexel24/nexel24/hardware/memory/bus"
)

// Entry is a single disassembled instruction.
type Entry struct {
	Address uint32

	// the bytes that make up the instruction, including the opcode
	Bytes []uint8

	// nil if the opcode is undefined
	Definition *instructions.Definition

	// the operand as it would be fetched by the CPU
	Operand uint32
}

// Disassemble the instruction at the address.
func Disassemble(mem bus.DebugBus, address uint32) Entry {
	address &= addressMask

	e := Entry{
		Address: address,
	}

	opcode := mem.Peek(address)
	e.Definition = instructions.Lookup(opcode)
	if e.Definition == nil {
		e.Bytes = []uint8{opcode}
		return e
	}

	e.Bytes = make([]uint8, e.Definition.Bytes)
	for i := range e.Bytes {
		e.Bytes[i] = mem.Peek((address + uint32(i)) & addressMask)
	}

	// operand bytes are little-endian
	for i := len(e.Bytes) - 1; i > 0; i-- {
		e.Operand = e.Operand<<8 | uint32(e.Bytes[i])
	}

	return e
}

const addressMask = 0xffffff

// Next returns the address of the instruction following the entry.
func (e Entry) Next() uint32 {
	return (e.Address + uint32(len(e.Bytes))) & addressMask
}

// Mnemonic returns the operator of the instruction or "??" for an undefined
// opcode.
func (e Entry) Mnemonic() string {
	if e.Definition == nil {
		return "??"
	}
	return e.Definition.Operator.String()
}

// OperandString returns the operand formatted in the way the assembler
// accepts it. Branch operands are shown as the target address.
func (e Entry) OperandString() string {
	if e.Definition == nil {
		return ""
	}
	return e.Definition.FormatOperand(e.Operand, e.Address)
}

// Bytecode returns the bytes of the instruction as a hex string.
func (e Entry) Bytecode() string {
	s := make([]string, len(e.Bytes))
	for i, b := range e.Bytes {
		s[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(s, " ")
}

func (e Entry) String() string {
	s := fmt.Sprintf("%06x  %-12s %s", e.Address, e.Bytecode(), e.Mnemonic())
	if o := e.OperandString(); o != "" {
		s = fmt.Sprintf("%s %s", s, o)
	}
	return s
}
