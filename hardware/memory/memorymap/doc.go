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

// Package memorymap describes the 24-bit address space. Each address belongs
// to at most one Area and addresses that belong to no area are "open bus".
//
// The MapAddress() function masks an address to 24 bits and returns the area
// it belongs to. Area.Origin() and Area.Memtop() give the inclusive range of
// an area. Implementations of the different memory areas can index their
// backing storage with (address - origin).
package memorymap
