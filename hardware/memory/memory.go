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

package memory

import (
	"fmt"
	"strings"

	"github.com/nexel24/nexel24/curated"
	"github.com/nexel24/nexel24/hardware/instance"
	"github.com/nexel24/nexel24/hardware/memory/bus"
	"github.com/nexel24/nexel24/hardware/memory/memorymap"
	"github.com/nexel24/nexel24/logger"
)

// OpenBus is the value returned when reading an address that does not belong
// to any area.
const OpenBus = uint8(0x00)

// Sentinel error patterns.
const (
	SizeExceeded = "memory: %s image of %d bytes exceeds area size (%d bytes)"
	UnknownArea  = "memory: cannot load into undefined area"
	IOOutOfRange = "memory: I/O handler range %06x -> %06x is outside the I/O area"
	IOOverlap    = "memory: I/O handler range %06x -> %06x overlaps existing handler %s"
)

// area is the backing storage for one memorymap.Area.
type area struct {
	id     memorymap.Area
	origin uint32
	data   []uint8
}

// ioRange is a part of the I/O area claimed by a handler.
type ioRange struct {
	label   string
	origin  uint32
	memtop  uint32
	handler bus.IOHandler
}

func (r ioRange) String() string {
	return fmt.Sprintf("%s %06x -> %06x", r.label, r.origin, r.memtop)
}

// Memory is the console's memory bus. It implements the bus.CPUBus and
// bus.DebugBus interfaces.
type Memory struct {
	instance *instance.Instance

	// indexed by memorymap.Area. the entry for memorymap.Undefined is nil
	areas [memorymap.BIOS + 1]*area

	// sorted by origin. ranges never overlap
	io []ioRange

	// index into io of the most recently used handler. accesses to
	// registers tend to cluster so this saves a search most of the time
	lastIO int
}

// NewMemory is the preferred method of initialisation for the Memory type.
// All storage is zero filled. The instance argument can be nil.
func NewMemory(instance *instance.Instance) *Memory {
	mem := &Memory{
		instance: instance,
	}

	for _, a := range memorymap.Areas {
		mem.areas[a] = &area{
			id:     a,
			origin: a.Origin(),
			data:   make([]uint8, a.Size()),
		}
	}

	return mem
}

func (mem *Memory) String() string {
	s := strings.Builder{}
	s.WriteString(memorymap.Summary())
	for _, r := range mem.io {
		s.WriteString(fmt.Sprintf("  %s\n", r))
	}
	return s.String()
}

// RegisterIOHandler claims the range origin to memtop (inclusive) of the I/O
// area for the handler. The label is used for logging and for error messages.
func (mem *Memory) RegisterIOHandler(label string, origin, memtop uint32, handler bus.IOHandler) error {
	if origin > memtop || origin < memorymap.OriginIO || memtop > memorymap.MemtopIO {
		return curated.Errorf(IOOutOfRange, origin, memtop)
	}

	i := 0
	for ; i < len(mem.io); i++ {
		r := mem.io[i]
		if origin <= r.memtop && memtop >= r.origin {
			return curated.Errorf(IOOverlap, origin, memtop, r.label)
		}
		if r.origin > memtop {
			break
		}
	}

	r := ioRange{label: label, origin: origin, memtop: memtop, handler: handler}
	mem.io = append(mem.io, ioRange{})
	copy(mem.io[i+1:], mem.io[i:])
	mem.io[i] = r
	mem.lastIO = i

	return nil
}

// ioHandler returns the range claiming the address or nil if the address has
// not been claimed.
func (mem *Memory) ioHandler(address uint32) *ioRange {
	if mem.lastIO < len(mem.io) {
		r := &mem.io[mem.lastIO]
		if address >= r.origin && address <= r.memtop {
			return r
		}
	}
	for i := range mem.io {
		r := &mem.io[i]
		if address >= r.origin && address <= r.memtop {
			mem.lastIO = i
			return r
		}
	}
	return nil
}

// Read implements the bus.CPUBus interface.
func (mem *Memory) Read(address uint32) uint8 {
	address, ar := memorymap.MapAddress(address)

	switch ar {
	case memorymap.Undefined:
		return OpenBus
	case memorymap.IO:
		if r := mem.ioHandler(address); r != nil {
			return r.handler.Read(address - r.origin)
		}
		if mem.instance.LogUnhandledIO() {
			logger.Logf(mem.instance, "memory", "unhandled I/O read at %06x", address)
		}
	}

	a := mem.areas[ar]
	return a.data[address-a.origin]
}

// Write implements the bus.CPUBus interface.
func (mem *Memory) Write(address uint32, data uint8) {
	address, ar := memorymap.MapAddress(address)

	switch ar {
	case memorymap.Undefined:
		return
	case memorymap.IO:
		if r := mem.ioHandler(address); r != nil {
			r.handler.Write(address-r.origin, data)
			return
		}
		if mem.instance.LogUnhandledIO() {
			logger.Logf(mem.instance, "memory", "unhandled I/O write of %02x at %06x", data, address)
		}
	default:
		if ar.ReadOnly() {
			return
		}
	}

	a := mem.areas[ar]
	a.data[address-a.origin] = data
}

// Read16 implements the bus.CPUBus interface.
func (mem *Memory) Read16(address uint32) uint16 {
	lo := uint16(mem.Read(address))
	hi := uint16(mem.Read(address + 1))
	return lo | hi<<8
}

// Read24 implements the bus.CPUBus interface.
func (mem *Memory) Read24(address uint32) uint32 {
	lo := uint32(mem.Read(address))
	mid := uint32(mem.Read(address + 1))
	hi := uint32(mem.Read(address + 2))
	return lo | mid<<8 | hi<<16
}

// Write16 implements the bus.CPUBus interface.
func (mem *Memory) Write16(address uint32, data uint16) {
	mem.Write(address, uint8(data))
	mem.Write(address+1, uint8(data>>8))
}

// Peek implements the bus.DebugBus interface.
func (mem *Memory) Peek(address uint32) uint8 {
	address, ar := memorymap.MapAddress(address)
	if ar == memorymap.Undefined {
		return OpenBus
	}
	a := mem.areas[ar]
	return a.data[address-a.origin]
}

// Poke implements the bus.DebugBus interface.
func (mem *Memory) Poke(address uint32, data uint8) {
	address, ar := memorymap.MapAddress(address)
	if ar == memorymap.Undefined {
		return
	}
	a := mem.areas[ar]
	a.data[address-a.origin] = data
}
