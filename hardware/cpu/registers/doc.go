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

// Package registers implements the registers of the CPU. The Register type is
// a general 16-bit register and is used for the accumulator, the index
// registers, the general purpose registers and the stack pointer. The
// ProgramCounter is 24-bit and the StatusRegister holds the CPU flags.
//
// Functions that change the value of a Register report the state of the carry
// and overflow flags where appropriate. The zero and negative flags are
// derived from the register on demand:
//
//	a.Load(10)
//	carry, overflow := a.Subtract(11)
//	sr.Zero = a.IsZero()
//	sr.Negative = a.IsNegative()
//
// In this case, the zero flag in the status register will be false and carry
// will be true because the subtraction borrowed.
package registers
