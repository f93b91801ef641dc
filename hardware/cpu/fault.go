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

package cpu

import "fmt"

// FaultCode distinguishes the reason the CPU halted.
type FaultCode int

// List of valid FaultCode values.
const (
	// the CPU is not halted or was halted by a HLT instruction
	FaultNone FaultCode = iota

	// the CPU encountered an opcode or register code it did not recognise
	FaultDecode
)

func (c FaultCode) String() string {
	switch c {
	case FaultNone:
		return "none"
	case FaultDecode:
		return "decode fault"
	}
	return "unknown fault"
}

// Fault records the details of an abnormal halt.
type Fault struct {
	Code    FaultCode
	Opcode  uint8
	Address uint32
}

func (f Fault) String() string {
	if f.Code == FaultNone {
		return f.Code.String()
	}
	return fmt.Sprintf("%s: opcode %02x at %06x", f.Code, f.Opcode, f.Address)
}
