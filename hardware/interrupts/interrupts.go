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

package interrupts

import (
	"fmt"
	"strings"

	"github.com/nexel24/nexel24/hardware/memory/bus"
	"github.com/nexel24/nexel24/hardware/memory/memorymap"
)

// ID identifies an interrupt source. The numeric value of an ID is its
// priority, lower values being serviced first.
type ID int

// List of valid ID values in order of priority.
const (
	NMI ID = iota
	HBLANK
	DMA_DONE
	VLU_DONE
	APU_BUF_EMPTY
	TIMER0
	Reserved
	PAD_EVENT
	SWI

	// the number of interrupt IDs. not a valid ID
	NumIDs
)

// IDs lists every interrupt source in priority order.
var IDs = []ID{NMI, HBLANK, DMA_DONE, VLU_DONE, APU_BUF_EMPTY, TIMER0, Reserved, PAD_EVENT, SWI}

func (id ID) String() string {
	switch id {
	case NMI:
		return "NMI"
	case HBLANK:
		return "HBLANK"
	case DMA_DONE:
		return "DMA_DONE"
	case VLU_DONE:
		return "VLU_DONE"
	case APU_BUF_EMPTY:
		return "APU_BUF_EMPTY"
	case TIMER0:
		return "TIMER0"
	case Reserved:
		return "Reserved"
	case PAD_EVENT:
		return "PAD_EVENT"
	case SWI:
		return "SWI"
	}
	return fmt.Sprintf("ID(%d)", int(id))
}

// IDFromString returns the ID with the name s. Case insensitive.
func IDFromString(s string) (ID, bool) {
	for _, id := range IDs {
		if strings.EqualFold(id.String(), s) {
			return id, true
		}
	}
	return NumIDs, false
}

// Vector table offsets from the origin of the BIOS.
const (
	VectorReset       = uint32(0x00)
	VectorSWI         = uint32(0x03)
	VectorPadEvent    = uint32(0x06)
	VectorTimer0      = uint32(0x09)
	VectorAPUBufEmpty = uint32(0x0c)
	VectorVLUDone     = uint32(0x0f)
	VectorDMADone     = uint32(0x12)
	VectorHBLANK      = uint32(0x15)
	VectorNMI         = uint32(0x18)
	VectorReserved    = uint32(0x1b)
	VectorTableOrigin = memorymap.OriginBIOS
	VectorTableMemtop = VectorTableOrigin + VectorReserved + 2
)

// Vector returns the address of the vector slot for the ID.
func (id ID) Vector() uint32 {
	var offset uint32
	switch id {
	case NMI:
		offset = VectorNMI
	case HBLANK:
		offset = VectorHBLANK
	case DMA_DONE:
		offset = VectorDMADone
	case VLU_DONE:
		offset = VectorVLUDone
	case APU_BUF_EMPTY:
		offset = VectorAPUBufEmpty
	case TIMER0:
		offset = VectorTimer0
	case Reserved:
		offset = VectorReserved
	case PAD_EVENT:
		offset = VectorPadEvent
	case SWI:
		offset = VectorSWI
	}
	return VectorTableOrigin + offset
}

// Controller records which interrupts are pending. The zero value is ready to
// use with nothing pending.
type Controller struct {
	// bit n is set if ID(n) is pending
	pending uint16
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController() *Controller {
	return &Controller{}
}

func (ic *Controller) String() string {
	s := strings.Builder{}
	for _, id := range IDs {
		if ic.Pending(id) {
			if s.Len() > 0 {
				s.WriteString(" ")
			}
			s.WriteString(id.String())
		}
	}
	if s.Len() == 0 {
		return "none pending"
	}
	return s.String()
}

// Reset forgets all pending interrupts.
func (ic *Controller) Reset() {
	ic.pending = 0
}

// Raise marks the interrupt as pending. Raising an interrupt that is already
// pending has no additional effect. Invalid IDs are ignored.
func (ic *Controller) Raise(id ID) {
	if id < 0 || id >= NumIDs {
		return
	}
	ic.pending |= 1 << id
}

// Acknowledge clears the pending state of the interrupt.
func (ic *Controller) Acknowledge(id ID) {
	if id < 0 || id >= NumIDs {
		return
	}
	ic.pending &^= 1 << id
}

// Pending returns true if the interrupt has been raised and not acknowledged.
func (ic *Controller) Pending(id ID) bool {
	if id < 0 || id >= NumIDs {
		return false
	}
	return ic.pending&(1<<id) != 0
}

// PendingMask returns the pending state of every interrupt as a bit field. Bit
// n represents ID(n).
func (ic *Controller) PendingMask() uint16 {
	return ic.pending
}

// NextEligible returns the highest priority pending interrupt. If
// interruptDisable is true then only the NMI is eligible.
//
// The interrupt is not acknowledged. The second return value is false if no
// interrupt is eligible.
func (ic *Controller) NextEligible(interruptDisable bool) (ID, bool) {
	if ic.pending == 0 {
		return NumIDs, false
	}

	if interruptDisable {
		if ic.pending&(1<<NMI) != 0 {
			return NMI, true
		}
		return NumIDs, false
	}

	for _, id := range IDs {
		if ic.pending&(1<<id) != 0 {
			return id, true
		}
	}

	return NumIDs, false
}

// VectorFor returns the address of the service routine for the interrupt,
// read from the vector table through the bus.
func (ic *Controller) VectorFor(id ID, mem bus.CPUBus) uint32 {
	return mem.Read24(id.Vector())
}

// ResetVector returns the address at which execution starts after a reset.
func ResetVector(mem bus.CPUBus) uint32 {
	return mem.Read24(VectorTableOrigin + VectorReset)
}
