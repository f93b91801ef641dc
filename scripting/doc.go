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

// Package scripting runs Lua scripts against a console. Scripts are useful
// for automated testing of console programs and for setting up complex
// machine states before handing over to the debugger.
//
// The following functions are available to the script in addition to the
// standard Lua libraries:
//
//	load(area, path)	load a file into a memory area ("BIOS", "CartROM", etc.)
//	reset()			reset the console
//	step([n])		execute n instructions. returns the cycles consumed
//	frame([n])		run n frames
//	peek(addr)		returns the byte at the address
//	poke(addr, v)		writes a byte to the address
//	reg(name)		returns the value of a CPU register (PC, A, X, Y, SP, SR, R0-R7)
//	raise(name)		raise an interrupt ("TIMER0", "NMI", etc.)
//	press(buttons)		press game pad buttons ("A+START")
//	release(buttons)	release game pad buttons
//	halted()		returns true if the CPU has halted
//	cycles()		returns the number of cycles since reset
//	assemble(src, origin)	assemble source and write it to memory at origin
//	digest([reset])		returns a hash of the console state, chained to the previous hash
//
// The assemble() function returns a table of the label addresses in the
// source. The print() function writes to the output given to NewScript().
package scripting
