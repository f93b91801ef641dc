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

package assembler

// Sentinel error patterns. The first value of every pattern is the line
// number in the source.
const (
	UnknownInstruction = "assembler: line %d: unknown instruction (%s)"
	MissingOperand     = "assembler: line %d: %s requires an operand"
	UnexpectedOperand  = "assembler: line %d: unexpected operand for %s (%s)"
	InvalidNumber      = "assembler: line %d: invalid number (%s)"
	InvalidRegister    = "assembler: line %d: invalid register (%s)"
	InvalidLabel       = "assembler: line %d: invalid label (%s)"
	DuplicateLabel     = "assembler: line %d: duplicate label (%s)"
	LabelNotFound      = "assembler: line %d: label not found (%s)"
	OutOfRange         = "assembler: line %d: value out of range (%s)"
	BranchOutOfRange   = "assembler: line %d: branch to %s out of range (%d)"
)
