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

// Package hardware is the base package for the Nexel24 emulation. The Console
// type ties the memory bus, the CPU, the interrupt controller and the
// coprocessors together.
//
// The emulation is driven one instruction at a time with Step(). After every
// instruction the coprocessors are advanced by the number of cycles the
// instruction consumed and any interrupts they report are raised on the
// interrupt controller. Those interrupts are considered by the CPU at the
// start of the next Step().
//
// RunFrame() and RunFrames() call Step() until a frame's worth of cycles has
// been consumed. Neither function consults the wall clock. Pacing to real
// time is the business of the front end.
package hardware
