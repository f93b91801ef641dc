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

package cpu_test

import (
	"testing"

	"github.com/nexel24/nexel24/hardware/cpu"
	"github.com/nexel24/nexel24/hardware/cpu/instructions"
	rtest "github.com/nexel24/nexel24/hardware/cpu/registers/test"
	"github.com/nexel24/nexel24/hardware/interrupts"
	"github.com/nexel24/nexel24/hardware/memory"
	"github.com/nexel24/nexel24/hardware/memory/memorymap"
	"github.com/nexel24/nexel24/test"
)

const (
	resetAddress  = uint32(0x001000)
	timerAddress  = uint32(0x002000)
	nmiAddress    = uint32(0x003000)
	swiAddress    = uint32(0x004000)
	padAddress    = uint32(0x005000)
	subroutine    = uint32(0x001100)
	stackTop      = uint32(0x00ffff)
	dataAddress   = uint32(0x000800)
	vectorPadding = 0x20
)

type cmdRecorder struct {
	cmds []uint8
}

func (r *cmdRecorder) Command(cmd uint8) {
	r.cmds = append(r.cmds, cmd)
}

func putVector(bios []uint8, offset uint32, address uint32) {
	bios[offset] = uint8(address)
	bios[offset+1] = uint8(address >> 8)
	bios[offset+2] = uint8(address >> 16)
}

// newTestCPU returns a reset CPU with the vector table pointing into work RAM.
func newTestCPU(t *testing.T) (*cpu.CPU, *memory.Memory, *interrupts.Controller) {
	t.Helper()

	mem := memory.NewMemory(nil)
	bios := make([]uint8, vectorPadding)
	putVector(bios, interrupts.VectorReset, resetAddress)
	putVector(bios, interrupts.VectorTimer0, timerAddress)
	putVector(bios, interrupts.VectorNMI, nmiAddress)
	putVector(bios, interrupts.VectorSWI, swiAddress)
	putVector(bios, interrupts.VectorPadEvent, padAddress)
	test.DemandSuccess(t, mem.Load(memorymap.BIOS, bios))

	ic := interrupts.NewController()
	mc := cpu.NewCPU(nil, mem, ic)
	mc.Reset()

	return mc, mem, ic
}

func putInstructions(mem *memory.Memory, origin uint32, bytes ...uint8) uint32 {
	for i, b := range bytes {
		mem.Poke(origin+uint32(i), b)
	}
	return origin + uint32(len(bytes))
}

func step(t *testing.T, mc *cpu.CPU, expectedCycles int) {
	t.Helper()
	cycles := mc.Step()
	if cycles != expectedCycles {
		t.Errorf("step cost %d cycles - wanted %d [%s]", cycles, expectedCycles, mc.LastResult)
	}
}

func TestReset(t *testing.T) {
	mc, _, _ := newTestCPU(t)

	rtest.EquateRegisters(t, mc.PC, int(resetAddress))
	rtest.EquateRegisters(t, mc.SP, 0xffff)
	rtest.EquateRegisters(t, mc.A, 0)
	rtest.EquateRegisters(t, mc.Status, "nv--dizc")
	test.ExpectedFailure(t, mc.Halted())
	test.ExpectedFailure(t, mc.Waiting())
	test.Equate(t, mc.Cycles(), 0)
}

func TestBIOSProgram(t *testing.T) {
	mem := memory.NewMemory(nil)

	// reset vector points to the byte following the vector table
	bios := make([]uint8, vectorPadding)
	putVector(bios, interrupts.VectorReset, memorymap.OriginBIOS+vectorPadding)
	bios = append(bios, 0x01, 0x34, 0x12, 0xff)
	test.DemandSuccess(t, mem.Load(memorymap.BIOS, bios))

	mc := cpu.NewCPU(nil, mem, interrupts.NewController())
	mc.Reset()

	for i := 0; i < 10 && !mc.Halted(); i++ {
		mc.Step()
	}

	test.ExpectedSuccess(t, mc.Halted())
	rtest.EquateRegisters(t, mc.A, 0x1234)
	test.Equate(t, mc.Fault().Code == cpu.FaultNone, true)
	test.Equate(t, mc.Cycles(), 3)

	// halted CPU consumes no cycles
	test.Equate(t, mc.Step(), 0)
	test.Equate(t, mc.Cycles(), 3)
}

func TestLoadStore(t *testing.T) {
	mc, mem, _ := newTestCPU(t)

	// LDA #$8001; STA data; LDX data; LDY #$0000
	putInstructions(mem, resetAddress,
		0x01, 0x01, 0x80,
		0x02, uint8(dataAddress&0xff), uint8(dataAddress>>8&0xff), uint8(dataAddress>>16&0xff),
		0x08, uint8(dataAddress&0xff), uint8(dataAddress>>8&0xff), uint8(dataAddress>>16&0xff),
		0x05, 0x00, 0x00,
	)

	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.A, 0x8001)
	rtest.EquateRegisters(t, mc.Status, "Nv--dizc")

	step(t, mc, 3)
	test.Equate(t, mem.Read(dataAddress), 0x01)
	test.Equate(t, mem.Read(dataAddress+1), 0x80)

	step(t, mc, 4)
	rtest.EquateRegisters(t, mc.X, 0x8001)

	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.Y, 0x0000)
	rtest.EquateRegisters(t, mc.Status, "nv--diZc")
	rtest.EquateRegisters(t, mc.PC, int(resetAddress)+14)
}

func TestArithmetic(t *testing.T) {
	mc, mem, _ := newTestCPU(t)

	putInstructions(mem, resetAddress,
		0x01, 0xff, 0xff, // LDA #$ffff
		0x10, 0x01, 0x00, // ADD #1
		0x01, 0xff, 0x7f, // LDA #$7fff
		0x10, 0x01, 0x00, // ADD #1
		0x01, 0x01, 0x00, // LDA #1
		0x11, 0x02, 0x00, // SUB #2
		0x01, 0x05, 0x00, // LDA #5
		0x11, 0x03, 0x00, // SUB #3
	)

	step(t, mc, 2)
	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.A, 0)
	rtest.EquateRegisters(t, mc.Status, "nv--diZC")

	step(t, mc, 2)
	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.A, 0x8000)
	rtest.EquateRegisters(t, mc.Status, "NV--dizc")

	// carry is set when the subtraction borrows
	step(t, mc, 2)
	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.A, 0xffff)
	rtest.EquateRegisters(t, mc.Status, "Nv--dizC")

	step(t, mc, 2)
	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.A, 2)
	rtest.EquateRegisters(t, mc.Status, "nv--dizc")
}

func TestBitwise(t *testing.T) {
	mc, mem, _ := newTestCPU(t)

	putInstructions(mem, resetAddress,
		0x01, 0xf0, 0xf0, // LDA #$f0f0
		0x12, 0xff, 0x00, // AND #$00ff
		0x13, 0x0f, 0x00, // OR #$000f
		0x14, 0xff, 0x00, // XOR #$00ff
		0x01, 0x00, 0xc0, // LDA #$c000
		0x1a, 0x00, 0x40, // BIT #$4000
		0x1a, 0x0f, 0x00, // BIT #$000f
		0x1b, 0x01, 0x00, // BSET #$0001
		0x1c, 0x00, 0x80, // BCLR #$8000
	)

	step(t, mc, 2)
	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.A, 0x00f0)
	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.A, 0x00ff)
	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.A, 0x0000)
	rtest.EquateRegisters(t, mc.Status, "nv--diZc")

	step(t, mc, 2)
	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.A, 0xc000)
	rtest.EquateRegisters(t, mc.Status, "nV--dizc")
	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.Status, "nv--diZc")

	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.A, 0xc001)
	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.A, 0x4001)
	rtest.EquateRegisters(t, mc.Status, "nv--dizc")
}

func TestMultiplyDivide(t *testing.T) {
	mc, mem, _ := newTestCPU(t)

	putInstructions(mem, resetAddress,
		0x01, 0x34, 0x12, // LDA #$1234
		0x15, 0x00, 0x01, // MUL #$0100
		0x01, 0x64, 0x00, // LDA #100
		0x16, 0x07, 0x00, // DIV #7
		0x01, 0x34, 0x12, // LDA #$1234
		0x16, 0x00, 0x00, // DIV #0
		0x01, 0xff, 0xff, // LDA #$ffff
		0x16, 0x01, 0x00, // DIV #1
	)

	step(t, mc, 2)
	step(t, mc, 5)
	rtest.EquateRegisters(t, mc.A, 0x3400)
	rtest.EquateRegisters(t, mc.X, 0x0012)
	test.Equate(t, mc.Status.Carry, true)

	// cost depends on the size of the quotient
	step(t, mc, 2)
	step(t, mc, 4)
	rtest.EquateRegisters(t, mc.A, 14)
	rtest.EquateRegisters(t, mc.X, 2)
	test.Equate(t, mc.Status.Overflow, false)

	// division by zero
	step(t, mc, 2)
	step(t, mc, 12)
	rtest.EquateRegisters(t, mc.A, 0xffff)
	rtest.EquateRegisters(t, mc.X, 0x1234)
	test.Equate(t, mc.Status.Overflow, true)

	step(t, mc, 2)
	step(t, mc, 12)
	rtest.EquateRegisters(t, mc.A, 0xffff)
	rtest.EquateRegisters(t, mc.X, 0)
	test.Equate(t, mc.Status.Overflow, false)
}

func TestRegisterInstructions(t *testing.T) {
	mc, mem, _ := newTestCPU(t)

	putInstructions(mem, resetAddress,
		0x01, 0x00, 0x80, // LDA #$8000
		0x17, 0x40, // MOV R0,A
		0x18, 0x04, // INC R0
		0x19, 0x01, // DEC X
		0x17, 0x23, // MOV Y,SP
		0x18, 0x0b, // INC R7
	)

	step(t, mc, 2)
	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.R[0], 0x8000)
	rtest.EquateRegisters(t, mc.Status, "Nv--dizc")

	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.R[0], 0x8001)

	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.X, 0xffff)

	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.Y, 0xffff)

	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.R[7], 1)
	test.Equate(t, mc.Registers().R[7], 1)
}

func TestInvalidRegister(t *testing.T) {
	mc, mem, _ := newTestCPU(t)

	// MOV with a destination register code of 12
	putInstructions(mem, resetAddress, 0x17, 0xc0)

	step(t, mc, cpu.FaultCycles)
	test.ExpectedSuccess(t, mc.Halted())
	test.Equate(t, mc.Fault().Code == cpu.FaultDecode, true)
	test.Equate(t, mc.Fault().Opcode, 0x17)
	rtest.EquateRegisters(t, mc.PC, int(resetAddress)+1)
}

func TestDecodeFault(t *testing.T) {
	mc, mem, _ := newTestCPU(t)

	putInstructions(mem, resetAddress, 0x00, 0x0a)

	step(t, mc, 1)
	step(t, mc, cpu.FaultCycles)
	test.ExpectedSuccess(t, mc.Halted())

	f := mc.Fault()
	test.Equate(t, f.Code == cpu.FaultDecode, true)
	test.Equate(t, f.Opcode, 0x0a)
	test.Equate(t, f.Address, resetAddress+1)
	test.Equate(t, f.String(), "decode fault: opcode 0a at 001001")
	rtest.EquateRegisters(t, mc.PC, int(resetAddress)+2)

	step(t, mc, 0)

	// reset clears the fault
	mc.Reset()
	test.ExpectedFailure(t, mc.Halted())
	test.Equate(t, mc.Fault().Code == cpu.FaultNone, true)
}

func TestBranches(t *testing.T) {
	mc, mem, _ := newTestCPU(t)

	putInstructions(mem, resetAddress,
		0x01, 0x00, 0x00, // LDA #0
		0x31, 0x02, // BEQ +2
		0x00, 0x00, // NOP; NOP
		0x32, 0x05, // BNE +5
		0x30, 0xf5, // BRA -11
	)

	step(t, mc, 2)
	step(t, mc, 3)
	rtest.EquateRegisters(t, mc.PC, int(resetAddress)+7)
	test.ExpectedSuccess(t, mc.LastResult.BranchTaken)

	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.PC, int(resetAddress)+9)
	test.ExpectedFailure(t, mc.LastResult.BranchTaken)

	step(t, mc, 3)
	rtest.EquateRegisters(t, mc.PC, int(resetAddress))
}

func TestConditionalBranches(t *testing.T) {
	type branch struct {
		opcode uint8
		status uint8
		taken  bool
	}

	for _, b := range []branch{
		{opcode: 0x31, status: 0x02, taken: true},
		{opcode: 0x31, status: 0x00, taken: false},
		{opcode: 0x32, status: 0x00, taken: true},
		{opcode: 0x33, status: 0x01, taken: true},
		{opcode: 0x34, status: 0x01, taken: false},
		{opcode: 0x35, status: 0x80, taken: true},
		{opcode: 0x36, status: 0x80, taken: false},
		{opcode: 0x37, status: 0x40, taken: true},
		{opcode: 0x38, status: 0x00, taken: true},
	} {
		mc, mem, _ := newTestCPU(t)
		putInstructions(mem, resetAddress, b.opcode, 0x10)
		mc.Status.FromValue(b.status)

		mc.Step()
		test.DemandEquality(t, mc.LastResult.BranchTaken, b.taken, instructions.Lookup(b.opcode).Operator)
		if b.taken {
			test.Equate(t, mc.LastResult.Cycles, 3)
			rtest.EquateRegisters(t, mc.PC, int(resetAddress)+0x12)
		} else {
			test.Equate(t, mc.LastResult.Cycles, 2)
			rtest.EquateRegisters(t, mc.PC, int(resetAddress)+2)
		}
	}
}

func TestSubroutine(t *testing.T) {
	mc, mem, _ := newTestCPU(t)

	// JSR subroutine; HLT
	putInstructions(mem, resetAddress,
		0x21, uint8(subroutine&0xff), uint8(subroutine>>8&0xff), uint8(subroutine>>16&0xff),
		0xff,
	)

	// RTS
	putInstructions(mem, subroutine, 0x22)

	step(t, mc, 5)
	rtest.EquateRegisters(t, mc.PC, int(subroutine))
	rtest.EquateRegisters(t, mc.SP, 0xfffc)

	// return address is pushed low byte first
	test.Equate(t, mem.Read(stackTop), 0x04)
	test.Equate(t, mem.Read(stackTop-1), 0x10)
	test.Equate(t, mem.Read(stackTop-2), 0x00)

	step(t, mc, 4)
	rtest.EquateRegisters(t, mc.PC, int(resetAddress)+4)
	rtest.EquateRegisters(t, mc.SP, 0xffff)

	step(t, mc, 1)
	test.ExpectedSuccess(t, mc.Halted())
}

func TestStackWrap(t *testing.T) {
	mc, mem, _ := newTestCPU(t)

	putInstructions(mem, resetAddress,
		0x21, uint8(subroutine&0xff), uint8(subroutine>>8&0xff), uint8(subroutine>>16&0xff),
	)
	putInstructions(mem, subroutine, 0x22)

	// a push from SP 0x0001 wraps to the top of the stack
	mc.SP.Load(0x0001)
	step(t, mc, 5)
	rtest.EquateRegisters(t, mc.SP, 0xfffe)
	test.Equate(t, mem.Read(0x0001), 0x04)
	test.Equate(t, mem.Read(0x0000), 0x10)
	test.Equate(t, mem.Read(0xffff), 0x00)

	step(t, mc, 4)
	rtest.EquateRegisters(t, mc.SP, 0x0001)
	rtest.EquateRegisters(t, mc.PC, int(resetAddress)+4)
}

func TestInterruptDispatch(t *testing.T) {
	mc, mem, ic := newTestCPU(t)

	// NOP; NOP
	putInstructions(mem, resetAddress, 0x00, 0x00)

	// RTI
	putInstructions(mem, timerAddress, 0x42)

	step(t, mc, 1)
	mc.Status.Carry = true
	ic.Raise(interrupts.TIMER0)

	step(t, mc, cpu.DispatchCycles)
	test.ExpectedSuccess(t, mc.LastResult.Interrupted)
	rtest.EquateRegisters(t, mc.PC, int(timerAddress))
	rtest.EquateRegisters(t, mc.SP, 0xfffb)
	rtest.EquateRegisters(t, mc.Status, "nv--dIzC")
	test.ExpectedFailure(t, ic.Pending(interrupts.TIMER0))

	// PC pushed before the flags
	test.Equate(t, mem.Read(stackTop), 0x01)
	test.Equate(t, mem.Read(stackTop-1), 0x10)
	test.Equate(t, mem.Read(stackTop-2), 0x00)
	test.Equate(t, mem.Read(stackTop-3), 0x01)

	step(t, mc, 5)
	rtest.EquateRegisters(t, mc.PC, int(resetAddress)+1)
	rtest.EquateRegisters(t, mc.SP, 0xffff)
	rtest.EquateRegisters(t, mc.Status, "nv--dizC")

	// the NOP that was at the PC when the interrupt was serviced
	step(t, mc, 1)
	rtest.EquateRegisters(t, mc.PC, int(resetAddress)+2)

	test.Equate(t, mc.Cycles(), 1+cpu.DispatchCycles+5+1)
}

func TestInterruptDisable(t *testing.T) {
	mc, mem, ic := newTestCPU(t)

	// SEI; NOP; NOP
	putInstructions(mem, resetAddress, 0x40, 0x00, 0x00)

	step(t, mc, 1)
	ic.Raise(interrupts.TIMER0)
	step(t, mc, 1)
	rtest.EquateRegisters(t, mc.PC, int(resetAddress)+2)
	test.ExpectedSuccess(t, ic.Pending(interrupts.TIMER0))

	// NMI ignores the interrupt disable flag
	ic.Raise(interrupts.NMI)
	step(t, mc, cpu.DispatchCycles)
	rtest.EquateRegisters(t, mc.PC, int(nmiAddress))
	test.Equate(t, mc.LastResult.Interrupt.String(), "NMI")
	test.ExpectedSuccess(t, ic.Pending(interrupts.TIMER0))
}

func TestRTINotInterrupted(t *testing.T) {
	mc, mem, ic := newTestCPU(t)

	putInstructions(mem, resetAddress, 0x00, 0x00)
	putInstructions(mem, timerAddress, 0x42)

	ic.Raise(interrupts.TIMER0)
	step(t, mc, cpu.DispatchCycles)

	// NMI raised while the PC points at RTI is serviced after the RTI
	ic.Raise(interrupts.NMI)
	step(t, mc, 5)
	test.Equate(t, mc.LastResult.Defn.Operator.String(), "RTI")
	rtest.EquateRegisters(t, mc.PC, int(resetAddress))

	step(t, mc, cpu.DispatchCycles)
	rtest.EquateRegisters(t, mc.PC, int(nmiAddress))
}

func TestWaitForInterrupt(t *testing.T) {
	mc, mem, ic := newTestCPU(t)

	// WFI; NOP
	putInstructions(mem, resetAddress, 0x43, 0x00)

	step(t, mc, 1)
	test.ExpectedSuccess(t, mc.Waiting())

	// waiting costs one cycle per step and does nothing else
	for i := 0; i < 5; i++ {
		step(t, mc, cpu.WaitCycles)
		test.ExpectedSuccess(t, mc.LastResult.Waiting)
	}
	rtest.EquateRegisters(t, mc.PC, int(resetAddress)+1)

	// the waiting state ends and the interrupt is serviced in the same step
	ic.Raise(interrupts.PAD_EVENT)
	step(t, mc, cpu.DispatchCycles)
	test.ExpectedFailure(t, mc.Waiting())
	rtest.EquateRegisters(t, mc.PC, int(padAddress))

	// return address is the instruction after the WFI
	test.Equate(t, mem.Read(stackTop), 0x01)
}

func TestWaitWithInterruptsDisabled(t *testing.T) {
	mc, mem, ic := newTestCPU(t)

	// SEI; WFI
	putInstructions(mem, resetAddress, 0x40, 0x43)

	step(t, mc, 1)
	step(t, mc, 1)

	ic.Raise(interrupts.TIMER0)
	step(t, mc, cpu.WaitCycles)
	test.ExpectedSuccess(t, mc.Waiting())

	ic.Raise(interrupts.NMI)
	step(t, mc, cpu.DispatchCycles)
	test.ExpectedFailure(t, mc.Waiting())
	rtest.EquateRegisters(t, mc.PC, int(nmiAddress))
}

func TestCoprocessorCommand(t *testing.T) {
	mc, mem, ic := newTestCPU(t)

	// SEI; COP #0; COP #5; COP #6
	putInstructions(mem, resetAddress, 0x40, 0x44, 0x00, 0x44, 0x05, 0x44, 0x06)

	step(t, mc, 1)
	step(t, mc, 3)
	test.ExpectedSuccess(t, ic.Pending(interrupts.SWI))

	// commands without a port are ignored
	step(t, mc, 3)

	rec := &cmdRecorder{}
	mc.AttachCoprocessorPort(rec)
	step(t, mc, 3)
	test.Equate(t, len(rec.cmds), 1)
	test.Equate(t, rec.cmds[0], 0x06)
}

func TestSoftwareInterrupt(t *testing.T) {
	mc, mem, _ := newTestCPU(t)

	// COP #0; NOP
	putInstructions(mem, resetAddress, 0x44, 0x00, 0x00)

	step(t, mc, 3)
	step(t, mc, cpu.DispatchCycles)
	rtest.EquateRegisters(t, mc.PC, int(swiAddress))
	test.Equate(t, mc.LastResult.Interrupt.String(), "SWI")
}

func TestResultString(t *testing.T) {
	mc, mem, _ := newTestCPU(t)

	putInstructions(mem, resetAddress, 0x01, 0x34, 0x12)
	mc.Step()
	test.Equate(t, mc.LastResult.String(), "001000\tLDA\t#$1234\t[2]")
}
