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

// Package assembler converts NRAW source into machine code for the console
// CPU.
//
// NRAW is a line based syntax. Each line holds an optional label, an optional
// instruction and an optional comment:
//
//	start:  LDA #0x1234   ; load A
//	        STA data
//	        BRA start
//	data:   NOP
//
// Comments start with a semicolon. Labels end with a colon and take the
// address of the next instruction. Immediate values are prefixed with a hash.
// Numbers are decimal or hexadecimal, with either the 0x or $ prefix.
//
// The register instructions name registers directly. MOV takes the
// destination first:
//
//	MOV R0,A
//	INC X
//
// The operand of an absolute or branch instruction can be a number or a
// label. Branch targets are absolute addresses. The assembler calculates the
// relative offset and fails if the target is out of range.
package assembler
