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

package bus

// CPUBus defines the operations for the memory system when accessed from the
// CPU. Addresses are 24-bit and are masked by the implementation. None of the
// operations can fail: reads from unmapped addresses return the open bus
// value and writes to unmapped or read-only addresses are ignored.
type CPUBus interface {
	Read(address uint32) uint8
	Write(address uint32, data uint8)

	// multi-byte values are little-endian. the address of each byte wraps
	// independently at the top of the address space
	Read16(address uint32) uint16
	Read24(address uint32) uint32
	Write16(address uint32, data uint16)
}

// DebugBus defines the meta-operations for memory. Think of these functions
// as "debugging" functions, that is operations outside of the normal
// operation of the machine.
//
// Peek and Poke access backing storage directly. I/O handlers are not
// consulted and the read-only policy of an area does not apply to Poke.
type DebugBus interface {
	Peek(address uint32) uint8
	Poke(address uint32, data uint8)
}

// IOHandler is implemented by the owners of register ranges in the I/O area.
// The offset is relative to the origin of the range the handler was
// registered with.
type IOHandler interface {
	Read(offset uint32) uint8
	Write(offset uint32, data uint8)
}

// IORegistry is implemented by a memory system that allows ranges of the I/O
// area to be claimed by an IOHandler.
type IORegistry interface {
	RegisterIOHandler(label string, origin, memtop uint32, handler IOHandler) error
}
