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
	"math/bits"

	"github.com/nexel24/nexel24/hardware/cpu/instructions"
	"github.com/nexel24/nexel24/hardware/interrupts"
	"github.com/nexel24/nexel24/logger"
)

// Step executes a single instruction, services a single interrupt or idles
// while waiting for an interrupt. Returns the number of cycles consumed. A
// halted CPU consumes no cycles.
func (mc *CPU) Step() int {
	if mc.halted {
		return 0
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	if mc.waiting {
		if _, ok := mc.ic.NextEligible(mc.Status.InterruptDisable); !ok {
			mc.LastResult.Waiting = true
			return mc.charge(WaitCycles)
		}

		// the interrupt is serviced by the eligibility check below
		mc.waiting = false
	}

	opcode := mc.mem.Read(mc.PC.Address())
	defn := mc.instructions[opcode]

	// RTI is never interrupted so that an interrupt arriving during a
	// service routine is not serviced until the return has completed
	if defn == nil || defn.Operator != instructions.Rti {
		if id, ok := mc.ic.NextEligible(mc.Status.InterruptDisable); ok {
			mc.dispatch(id)
			return mc.charge(DispatchCycles)
		}
	}

	if defn == nil {
		mc.decodeFault(opcode)
		return mc.charge(FaultCycles)
	}

	mc.LastResult.Defn = defn
	operand := mc.fetchOperand(defn)
	mc.LastResult.Operand = operand
	mc.PC.Add(uint32(defn.Bytes))

	extra, ok := mc.execute(defn, operand)
	if !ok {
		mc.decodeFault(opcode)
		return mc.charge(FaultCycles)
	}

	return mc.charge(defn.Cycles + extra)
}

func (mc *CPU) charge(cycles int) int {
	mc.cycles += uint64(cycles)
	mc.LastResult.Cycles = cycles
	return cycles
}

// dispatch services the interrupt. The PC is pushed unchanged so the opcode
// at the PC will be fetched again on return.
func (mc *CPU) dispatch(id interrupts.ID) {
	mc.push24(mc.PC.Address())
	mc.push8(mc.Status.Value())
	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.ic.VectorFor(id, mc.mem))
	mc.ic.Acknowledge(id)

	mc.LastResult.Interrupted = true
	mc.LastResult.Interrupt = id
}

// decodeFault halts the CPU and leaves the PC pointing at the byte after the
// faulting opcode.
func (mc *CPU) decodeFault(opcode uint8) {
	address := mc.LastResult.Address
	mc.halted = true
	mc.fault = Fault{
		Code:    FaultDecode,
		Opcode:  opcode,
		Address: address,
	}
	mc.PC.Load(address + 1)
	mc.LastResult.Fault = true
	logger.Logf(mc.instance, "cpu", "%s", mc.fault)
}

func (mc *CPU) fetchOperand(defn *instructions.Definition) uint32 {
	address := mc.PC.Address() + 1
	switch defn.AddressingMode {
	case instructions.Immediate:
		return uint32(mc.mem.Read16(address))
	case instructions.Absolute:
		return mc.mem.Read24(address)
	case instructions.Immediate8, instructions.Relative, instructions.Register, instructions.RegisterPair:
		return uint32(mc.mem.Read(address))
	}
	return 0
}

// execute the decoded instruction. the PC has already been advanced past the
// instruction. returns the number of cycles in addition to the base cost of
// the instruction. the second return value is false if the operand contains
// an invalid register code, in which case the state of the CPU is unchanged.
func (mc *CPU) execute(defn *instructions.Definition, operand uint32) (int, bool) {
	imm := uint16(operand)

	switch defn.Operator {
	case instructions.Nop:

	case instructions.Lda:
		mc.A.Load(mc.load(defn, operand))
		mc.Status.SetZN(mc.A)

	case instructions.Ldx:
		mc.X.Load(mc.load(defn, operand))
		mc.Status.SetZN(mc.X)

	case instructions.Ldy:
		mc.Y.Load(mc.load(defn, operand))
		mc.Status.SetZN(mc.Y)

	case instructions.Sta:
		mc.mem.Write16(operand, mc.A.Value())

	case instructions.Stx:
		mc.mem.Write16(operand, mc.X.Value())

	case instructions.Sty:
		mc.mem.Write16(operand, mc.Y.Value())

	case instructions.Add:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(imm)
		mc.Status.SetZN(mc.A)

	case instructions.Sub:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(imm)
		mc.Status.SetZN(mc.A)

	case instructions.And:
		mc.A.AND(imm)
		mc.Status.SetZN(mc.A)

	case instructions.Or:
		mc.A.OR(imm)
		mc.Status.SetZN(mc.A)

	case instructions.Xor:
		mc.A.XOR(imm)
		mc.Status.SetZN(mc.A)

	case instructions.Mul:
		hi := mc.A.Multiply(imm)
		mc.X.Load(hi)
		mc.Status.Carry = hi != 0
		mc.Status.SetZN(mc.A)

	case instructions.Div:
		return mc.divide(imm), true

	case instructions.Mov:
		dst := mc.register(uint8(operand >> 4))
		src := mc.register(uint8(operand & 0x0f))
		if dst == nil || src == nil {
			return 0, false
		}
		dst.Load(src.Value())
		mc.Status.SetZN(*dst)

	case instructions.Inc:
		r := mc.register(uint8(operand & 0x0f))
		if r == nil {
			return 0, false
		}
		r.Increment()
		mc.Status.SetZN(*r)

	case instructions.Dec:
		r := mc.register(uint8(operand & 0x0f))
		if r == nil {
			return 0, false
		}
		r.Decrement()
		mc.Status.SetZN(*r)

	case instructions.Bit:
		v := mc.A.Value() & imm
		mc.Status.Zero = v == 0
		mc.Status.Negative = v&0x8000 == 0x8000
		mc.Status.Overflow = v&0x4000 == 0x4000

	case instructions.Bset:
		mc.A.OR(imm)
		mc.Status.SetZN(mc.A)

	case instructions.Bclr:
		mc.A.Clear(imm)
		mc.Status.SetZN(mc.A)

	case instructions.Jmp:
		mc.PC.Load(operand)

	case instructions.Jsr:
		mc.push24(mc.PC.Address())
		mc.PC.Load(operand)

	case instructions.Rts:
		mc.PC.Load(mc.pop24())

	case instructions.Bra, instructions.Beq, instructions.Bne, instructions.Bcs, instructions.Bcc,
		instructions.Bmi, instructions.Bpl, instructions.Bvs, instructions.Bvc:
		if mc.branchCondition(defn.Operator) {
			mc.PC.Relative(int8(operand))
			mc.LastResult.BranchTaken = true
			return 1, true
		}

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Rti:
		mc.Status.FromValue(mc.pop8())
		mc.PC.Load(mc.pop24())

	case instructions.Wfi:
		mc.waiting = true

	case instructions.Cop:
		cmd := uint8(operand)
		if cmd == 0 {
			mc.ic.Raise(interrupts.SWI)
		} else if mc.port != nil {
			mc.port.Command(cmd)
		}

	case instructions.Hlt:
		mc.halted = true
	}

	return 0, true
}

// load returns the 16-bit value for a load instruction.
func (mc *CPU) load(defn *instructions.Definition, operand uint32) uint16 {
	if defn.AddressingMode == instructions.Absolute {
		return mc.mem.Read16(operand)
	}
	return uint16(operand)
}

// divide A by the divisor. the quotient is left in A and the remainder in X.
// division by zero sets the overflow flag, loads A with 0xffff and leaves the
// dividend in X. returns the variable part of the cost.
func (mc *CPU) divide(divisor uint16) int {
	const maxSurcharge = 10

	if divisor == 0 {
		mc.X.Load(mc.A.Value())
		mc.A.Load(0xffff)
		mc.Status.Overflow = true
		mc.Status.SetZN(mc.A)
		return maxSurcharge
	}

	mc.X.Load(mc.A.Divide(divisor))
	mc.Status.Overflow = false
	mc.Status.SetZN(mc.A)

	return bits.Len16(mc.A.Value()) * maxSurcharge / 16
}

func (mc *CPU) branchCondition(op instructions.Operator) bool {
	switch op {
	case instructions.Bra:
		return true
	case instructions.Beq:
		return mc.Status.Zero
	case instructions.Bne:
		return !mc.Status.Zero
	case instructions.Bcs:
		return mc.Status.Carry
	case instructions.Bcc:
		return !mc.Status.Carry
	case instructions.Bmi:
		return mc.Status.Negative
	case instructions.Bpl:
		return !mc.Status.Negative
	case instructions.Bvs:
		return mc.Status.Overflow
	case instructions.Bvc:
		return !mc.Status.Overflow
	}
	return false
}
