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

// Package instructions defines the instruction set of the CPU. Each opcode
// has a Definition describing the operator, the addressing mode, the number
// of bytes in the encoding and the base cost in cycles.
//
// The definitions are used by the CPU when executing, by the disassembly
// package when decoding a program and by the assembler when encoding one.
// Definitions are accessed through GetDefinitions() or Lookup().
package instructions
