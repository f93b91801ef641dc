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
	"github.com/nexel24/nexel24/curated"
	"github.com/nexel24/nexel24/hardware/memory/memorymap"
	"github.com/nexel24/nexel24/logger"
)

// Load copies data into the area starting at the area's origin. The access
// policy of the area does not apply. If data is shorter than the area then
// the remainder of the area is left unchanged.
//
// Returns a SizeExceeded error if data is larger than the area. The area is
// not changed in that case.
func (mem *Memory) Load(ar memorymap.Area, data []uint8) error {
	a := mem.lookupArea(ar)
	if a == nil {
		return curated.Errorf(UnknownArea)
	}
	if len(data) > len(a.data) {
		return curated.Errorf(SizeExceeded, ar, len(data), len(a.data))
	}

	copy(a.data, data)
	logger.Logf(mem.instance, "memory", "loaded %d bytes into %s", len(data), ar)

	return nil
}

// Save returns a copy of the contents of the area. Returns nil for the
// Undefined area or a value that names no area.
func (mem *Memory) Save(ar memorymap.Area) []uint8 {
	a := mem.lookupArea(ar)
	if a == nil {
		return nil
	}
	c := make([]uint8, len(a.data))
	copy(c, a.data)
	return c
}

// Clear zero fills the area. Storage is not reallocated.
func (mem *Memory) Clear(ar memorymap.Area) {
	a := mem.lookupArea(ar)
	if a == nil {
		return
	}
	clear(a.data)
}

// lookupArea returns nil for Undefined and for values outside the area list.
func (mem *Memory) lookupArea(ar memorymap.Area) *area {
	if ar <= memorymap.Undefined || ar > memorymap.BIOS {
		return nil
	}
	return mem.areas[ar]
}
