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

// Package memory implements the 24-bit memory bus of the console. The Memory
// type owns the backing storage for every area in the memory map and applies
// the access policy of each area:
//
//   - reads from addresses outside any area return OpenBus
//   - writes to addresses outside any area are ignored
//   - writes to read-only areas (CartROM and BIOS) are ignored
//
// Read-only areas are filled with the Load() function, which is the only way
// of writing to them outside of the debugging Poke() function.
//
// Parts of the I/O area can be claimed by coprocessors with
// RegisterIOHandler(). Accesses in a claimed range are delegated to the
// handler and the Memory type does not interpret them in any way. Parts of
// the I/O area that have not been claimed behave like ordinary RAM.
package memory
