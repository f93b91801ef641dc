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

// Package cpu emulates the 24-bit CPU of the console. The CPU executes
// instructions according to the single byte value read from the address
// pointed to by the program counter. This single byte is the opcode and is
// looked up in the instruction table (see the instructions package). The
// instruction definition for that opcode is then used to move execution of
// the program forward.
//
// The CPU requires an implementation of bus.CPUBus and an interrupt
// controller. The bus defines the memory operations required by the CPU.
//
//	mc := cpu.NewCPU(instance, mem, ic)
//	mc.Reset()
//
//	for !mc.Halted {
//		cycles := mc.Step()
//		...
//	}
//
// Each call to Step() executes one instruction, services one interrupt or
// idles for one cycle while waiting for an interrupt. It returns the number
// of cycles consumed. The caller uses the cycle count to advance any
// coprocessors attached to the bus.
//
// The LastResult field can be probed for information about the last step.
// Very useful for debuggers.
//
// Interrupt eligibility is checked before an instruction is executed and
// never during. When an interrupt is serviced the opcode at the program
// counter is not consumed and will be fetched again when the interrupt
// service routine returns with RTI.
package cpu
