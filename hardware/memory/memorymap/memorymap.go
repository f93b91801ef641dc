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

package memorymap

import "strings"

// Area represents the different areas of memory.
type Area int

// List of valid Area values. Undefined is used for addresses in the gaps
// between areas.
const (
	Undefined Area = iota
	WorkRAM
	ExpandedRAM
	IO
	VRAM
	CRAM
	CartROM
	CartSave
	BIOS
)

// Areas lists every defined area in address order.
var Areas = []Area{WorkRAM, ExpandedRAM, IO, VRAM, CRAM, CartROM, CartSave, BIOS}

func (a Area) String() string {
	switch a {
	case WorkRAM:
		return "WorkRAM"
	case ExpandedRAM:
		return "ExpandedRAM"
	case IO:
		return "IO"
	case VRAM:
		return "VRAM"
	case CRAM:
		return "CRAM"
	case CartROM:
		return "CartROM"
	case CartSave:
		return "CartSave"
	case BIOS:
		return "BIOS"
	}
	return "undefined"
}

// AreaFromString is the inverse of Area.String(). The comparison is case
// insensitive. Returns Undefined if the string does not name an area.
func AreaFromString(s string) Area {
	for _, a := range Areas {
		if strings.EqualFold(a.String(), s) {
			return a
		}
	}
	return Undefined
}

// AddressMask limits an address to the 24-bit address space.
const AddressMask = uint32(0xffffff)

// The origin and memory top (inclusive) of each area of memory.
const (
	OriginWorkRAM     = uint32(0x000000)
	MemtopWorkRAM     = uint32(0x00ffff)
	OriginExpandedRAM = uint32(0x010000)
	MemtopExpandedRAM = uint32(0x03ffff)
	OriginIO          = uint32(0x100000)
	MemtopIO          = uint32(0x10ffff)
	OriginVRAM        = uint32(0x200000)
	MemtopVRAM        = uint32(0x27ffff)
	OriginCRAM        = uint32(0x280000)
	MemtopCRAM        = uint32(0x28ffff)
	OriginCartROM     = uint32(0x400000)
	MemtopCartROM     = uint32(0x9fffff)
	OriginCartSave    = uint32(0xa00000)
	MemtopCartSave    = uint32(0xa3ffff)
	OriginBIOS        = uint32(0xff0000)
	MemtopBIOS        = uint32(0xffffff)
)

// Origin returns the first address of the area.
func (a Area) Origin() uint32 {
	switch a {
	case WorkRAM:
		return OriginWorkRAM
	case ExpandedRAM:
		return OriginExpandedRAM
	case IO:
		return OriginIO
	case VRAM:
		return OriginVRAM
	case CRAM:
		return OriginCRAM
	case CartROM:
		return OriginCartROM
	case CartSave:
		return OriginCartSave
	case BIOS:
		return OriginBIOS
	}
	return 0
}

// Memtop returns the last address of the area.
func (a Area) Memtop() uint32 {
	switch a {
	case WorkRAM:
		return MemtopWorkRAM
	case ExpandedRAM:
		return MemtopExpandedRAM
	case IO:
		return MemtopIO
	case VRAM:
		return MemtopVRAM
	case CRAM:
		return MemtopCRAM
	case CartROM:
		return MemtopCartROM
	case CartSave:
		return MemtopCartSave
	case BIOS:
		return MemtopBIOS
	}
	return 0
}

// Size returns the number of bytes in the area.
func (a Area) Size() int {
	if a == Undefined {
		return 0
	}
	return int(a.Memtop()-a.Origin()) + 1
}

// ReadOnly returns true if the CPU cannot write to the area. Read-only areas
// are filled by loading an image.
func (a Area) ReadOnly() bool {
	return a == CartROM || a == BIOS
}

// MapAddress masks the address to 24 bits and returns the area it belongs to.
func MapAddress(address uint32) (uint32, Area) {
	address &= AddressMask

	// areas are ordered by address so the first area with a memtop at or
	// above the address is the only candidate
	for _, a := range Areas {
		if address <= a.Memtop() {
			if address >= a.Origin() {
				return address, a
			}
			return address, Undefined
		}
	}

	return address, Undefined
}
