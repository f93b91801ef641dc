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

package cpu

import (
	"fmt"

	"github.com/nexel24/nexel24/hardware/cpu/instructions"
	"github.com/nexel24/nexel24/hardware/cpu/registers"
	"github.com/nexel24/nexel24/hardware/instance"
	"github.com/nexel24/nexel24/hardware/interrupts"
	"github.com/nexel24/nexel24/hardware/memory/bus"
)

// Cycle costs of steps that do not execute an instruction.
const (
	DispatchCycles = 5
	WaitCycles     = 1
	FaultCycles    = 1
)

// ResetSP is the value of the stack pointer after a reset. The stack grows
// downwards from the top of work RAM.
const ResetSP = uint16(0xffff)

// CoprocessorPort receives the commands of COP instructions. Command zero is
// handled by the CPU and is never sent to the port.
type CoprocessorPort interface {
	Command(cmd uint8)
}

// CPU implements the 24-bit CPU of the console. Register logic is implemented
// by the types in the registers sub-package.
type CPU struct {
	instance *instance.Instance

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	R      [8]registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	mem          bus.CPUBus
	ic           *interrupts.Controller
	port         CoprocessorPort
	instructions [256]*instructions.Definition

	// halted by HLT or by a decode fault. requires a Reset()
	halted bool

	// waiting for an interrupt after a WFI instruction
	waiting bool

	// the reason for the halt if it was not caused by HLT
	fault Fault

	// running count of cycles since the last reset
	cycles uint64

	// result of the most recent call to Step()
	LastResult Result
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU should be Reset() before use. The instance argument can be nil.
func NewCPU(instance *instance.Instance, mem bus.CPUBus, ic *interrupts.Controller) *CPU {
	mc := &CPU{
		instance:     instance,
		mem:          mem,
		ic:           ic,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewRegister(ResetSP, "SP"),
		Status:       registers.NewStatusRegister(),
		instructions: instructions.GetDefinitions(),
	}
	for i := range mc.R {
		mc.R[i] = registers.NewRegister(0, fmt.Sprintf("R%d", i))
	}
	return mc
}

// AttachCoprocessorPort sets the destination for COP commands. A nil port
// means that commands other than zero are ignored.
func (mc *CPU) AttachCoprocessorPort(port CoprocessorPort) {
	mc.port = port
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// GeneralString returns the general purpose registers as a string.
func (mc *CPU) GeneralString() string {
	s := ""
	for i, r := range mc.R {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%s=%s", r.Label(), r)
	}
	return s
}

// Reset reinitialises all registers and loads the PC from the reset vector.
// Pending interrupts are the responsibility of the interrupt controller.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	for i := range mc.R {
		mc.R[i].Load(0)
	}
	mc.SP.Load(ResetSP)
	mc.Status.Reset()

	mc.halted = false
	mc.waiting = false
	mc.fault = Fault{}
	mc.cycles = 0

	mc.PC.Load(interrupts.ResetVector(mc.mem))
}

// Halted returns true if the CPU has stopped executing instructions. Check
// Fault() to see whether the halt was abnormal.
func (mc *CPU) Halted() bool {
	return mc.halted
}

// Waiting returns true if the CPU is waiting for an interrupt.
func (mc *CPU) Waiting() bool {
	return mc.waiting
}

// Fault returns the reason for an abnormal halt. The Code field is FaultNone
// if the CPU is running or was halted by the HLT instruction.
func (mc *CPU) Fault() Fault {
	return mc.fault
}

// Cycles returns the number of cycles consumed since the last reset.
func (mc *CPU) Cycles() uint64 {
	return mc.cycles
}

// Registers is a copy of the CPU registers at a moment in time.
type Registers struct {
	PC     uint32
	A      uint16
	X      uint16
	Y      uint16
	R      [8]uint16
	SP     uint16
	Status registers.StatusRegister
}

// Registers returns a copy of the current register values.
func (mc *CPU) Registers() Registers {
	regs := Registers{
		PC:     mc.PC.Address(),
		A:      mc.A.Value(),
		X:      mc.X.Value(),
		Y:      mc.Y.Value(),
		SP:     mc.SP.Value(),
		Status: mc.Status,
	}
	for i, r := range mc.R {
		regs.R[i] = r.Value()
	}
	return regs
}

// register returns the register for the code used by the Register and
// RegisterPair addressing modes. Returns nil for an invalid code.
func (mc *CPU) register(code uint8) *registers.Register {
	switch code {
	case instructions.RegA:
		return &mc.A
	case instructions.RegX:
		return &mc.X
	case instructions.RegY:
		return &mc.Y
	case instructions.RegSP:
		return &mc.SP
	}
	if code >= instructions.RegR0 && code <= instructions.RegR7 {
		return &mc.R[code-instructions.RegR0]
	}
	return nil
}
