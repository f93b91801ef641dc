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

// Package interrupts implements the priority interrupt controller. Interrupt
// sources are identified by the ID type. Sources raise an interrupt with the
// Raise() function and the CPU asks for the next interrupt to service with
// NextEligible().
//
// Priority is fixed. NMI is the highest priority and SWI is the lowest. The
// NMI is the only interrupt that is eligible for servicing when the CPU's
// interrupt disable flag is set.
//
// Every ID has a three byte slot in the vector table at the bottom of the
// BIOS. The slot holds the address of the service routine in little-endian
// order. The address of the slot is given by Vector() and the service address
// is read with VectorFor().
package interrupts
