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

// Package coprocessors defines the interface shared by the devices attached
// to the I/O area of the memory bus. The devices themselves are implemented
// in the sub-packages.
//
// A coprocessor is driven in two ways. The CPU reads and writes its
// registers through the bus.IOHandler interface and the console advances it
// with Tick() after every CPU step. Tick() returns the interrupts that the
// coprocessor wants to raise. Returning the interrupts, rather than raising
// them directly, means the coprocessors do not need access to the interrupt
// controller.
package coprocessors

import (
	"github.com/nexel24/nexel24/hardware/interrupts"
	"github.com/nexel24/nexel24/hardware/memory/bus"
)

// Coprocessor is implemented by all devices in the I/O area.
type Coprocessor interface {
	bus.IOHandler

	// Label is a short name for the coprocessor, used in logs and by the
	// debugger
	Label() string

	// the I/O address range claimed by the coprocessor (inclusive)
	Origin() uint32
	Memtop() uint32

	// Tick advances the coprocessor by the number of CPU cycles. Returns the
	// interrupts to raise, if any
	Tick(cycles int) []interrupts.ID

	// Reset puts the coprocessor into its power-on state
	Reset()

	String() string
}

// Register claims the coprocessor's address range on the memory bus.
func Register(mem bus.IORegistry, cop Coprocessor) error {
	return mem.RegisterIOHandler(cop.Label(), cop.Origin(), cop.Memtop(), cop)
}
