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

// Package vlu implements the vector coprocessor. The VLU has eight vector
// registers and four matrix registers. Each vector has three components and
// each matrix has three rows of three components. Components are signed 8.8
// fixed point values.
//
// Register map, relative to the origin of the VLU. All components are 16-bit
// little-endian values:
//
//	0x00 - 0x2f	vector registers. vector n component c at n*6 + c*2
//	0x30 - 0x77	matrix registers. matrix m row r column c at
//			0x30 + m*18 + r*6 + c*2
//	0x80		job. writing starts the job
//	0x81		destination register
//	0x82		first operand register
//	0x83		second operand register
//	0x84		scalar result (low byte)
//	0x85		scalar result (high byte)
//	0x86		status. bit 0 done, bit 1 error. write 1 to clear
//
// Jobs:
//
//	0	transform. dest = matrix[b] * vector[a]
//	1	dot. scalar = vector[a] . vector[b]
//	2	cross. dest = vector[a] x vector[b]
//	3	normalise. dest = vector[a] / |vector[a]|
//
// A job completes immediately and the VLU_DONE interrupt is raised on the
// next tick. A job that names a register that does not exist sets the error
// bit in the status register and leaves the registers unchanged but the job
// still completes and raises the interrupt.
package vlu
