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

package vlu

import (
	"fmt"
	"strings"

	"github.com/nexel24/nexel24/curated"
	"github.com/nexel24/nexel24/hardware/instance"
	"github.com/nexel24/nexel24/hardware/interrupts"
	"github.com/nexel24/nexel24/logger"
)

// Address range of the VLU registers.
const (
	Origin = uint32(0x104000)
	Memtop = uint32(0x1040ff)
)

// Number of registers of each type.
const (
	NumVectors  = 8
	NumMatrices = 4
)

// Register offsets.
const (
	RegVectors   = 0x00
	RegMatrices  = 0x30
	RegJob       = 0x80
	RegDest      = 0x81
	RegOperandA  = 0x82
	RegOperandB  = 0x83
	RegScalarLo  = 0x84
	RegScalarHi  = 0x85
	RegStatus    = 0x86
	vectorSize   = 6
	matrixSize   = 18
	matricesTop  = RegMatrices + NumMatrices*matrixSize
	numRegisters = 0x100
)

// Sentinel error patterns.
const (
	InvalidVector = "vlu: invalid vector register %d"
	InvalidMatrix = "vlu: invalid matrix register %d"
	UnknownJob    = "vlu: unknown job %d"
)

// Status bits.
const (
	StatusDone  = uint8(0x01)
	StatusError = uint8(0x02)
)

// Job identifies the operation started by writing to the job register.
type Job uint8

// List of valid Job values.
const (
	Transform Job = iota
	Dot
	Cross
	Normalise
)

func (j Job) String() string {
	switch j {
	case Transform:
		return "transform"
	case Dot:
		return "dot"
	case Cross:
		return "cross"
	case Normalise:
		return "normalise"
	}
	return fmt.Sprintf("job(%d)", uint8(j))
}

// VLU implements the vector coprocessor.
type VLU struct {
	instance *instance.Instance

	Vectors  [NumVectors]Vector
	Matrices [NumMatrices]Matrix
	Scalar   Fixed

	dest     uint8
	operandA uint8
	operandB uint8
	status   uint8

	// a job has completed since the last tick
	done bool

	// the error from the most recent job that failed
	lastError error

	scratch [numRegisters]uint8
}

// NewVLU is the preferred method of initialisation for the VLU type.
func NewVLU(instance *instance.Instance) *VLU {
	return &VLU{instance: instance}
}

// Label implements the coprocessors.Coprocessor interface.
func (vlu *VLU) Label() string {
	return "VLU"
}

// Origin implements the coprocessors.Coprocessor interface.
func (vlu *VLU) Origin() uint32 {
	return Origin
}

// Memtop implements the coprocessors.Coprocessor interface.
func (vlu *VLU) Memtop() uint32 {
	return Memtop
}

func (vlu *VLU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("status=%02x scalar=%s", vlu.status, vlu.Scalar))
	for i, v := range vlu.Vectors {
		s.WriteString(fmt.Sprintf("\n  v%d: %s", i, v))
	}
	return s.String()
}

// Reset implements the coprocessors.Coprocessor interface.
func (vlu *VLU) Reset() {
	vlu.Vectors = [NumVectors]Vector{}
	vlu.Matrices = [NumMatrices]Matrix{}
	vlu.Scalar = 0
	vlu.dest = 0
	vlu.operandA = 0
	vlu.operandB = 0
	vlu.status = 0
	vlu.done = false
	vlu.lastError = nil
	clear(vlu.scratch[:])
}

// component returns a pointer to the fixed point value for the register
// offset. the offset is rounded down to an even number. returns nil if the
// offset is not in the vector or matrix area.
func (vlu *VLU) component(offset uint32) *Fixed {
	offset &^= 1
	if offset < RegMatrices {
		return &vlu.Vectors[offset/vectorSize][(offset%vectorSize)/2]
	}
	if offset < matricesTop {
		offset -= RegMatrices
		m := offset / matrixSize
		offset %= matrixSize
		return &vlu.Matrices[m][offset/vectorSize][(offset%vectorSize)/2]
	}
	return nil
}

// Read implements the bus.IOHandler interface.
func (vlu *VLU) Read(offset uint32) uint8 {
	if c := vlu.component(offset); c != nil {
		if offset&1 == 1 {
			return uint8(uint16(*c) >> 8)
		}
		return uint8(*c)
	}

	switch offset {
	case RegDest:
		return vlu.dest
	case RegOperandA:
		return vlu.operandA
	case RegOperandB:
		return vlu.operandB
	case RegScalarLo:
		return uint8(vlu.Scalar)
	case RegScalarHi:
		return uint8(uint16(vlu.Scalar) >> 8)
	case RegStatus:
		return vlu.status
	}

	return vlu.scratch[offset&0xff]
}

// Write implements the bus.IOHandler interface.
func (vlu *VLU) Write(offset uint32, data uint8) {
	if c := vlu.component(offset); c != nil {
		v := uint16(*c)
		if offset&1 == 1 {
			v = (v & 0x00ff) | uint16(data)<<8
		} else {
			v = (v & 0xff00) | uint16(data)
		}
		*c = Fixed(v)
		return
	}

	switch offset {
	case RegJob:
		vlu.Compute(Job(data))
	case RegDest:
		vlu.dest = data
	case RegOperandA:
		vlu.operandA = data
	case RegOperandB:
		vlu.operandB = data
	case RegStatus:
		vlu.status &^= data
	default:
		vlu.scratch[offset&0xff] = data
	}
}

// Compute performs the job with the operands in the destination and operand
// registers. Completion is signalled by the next call to Tick().
func (vlu *VLU) Compute(job Job) {
	if err := vlu.compute(job); err != nil {
		vlu.status |= StatusError
		logger.Logf(vlu.instance, "vlu", "%s: %v", job, err)
		vlu.lastError = err
	}
	vlu.status |= StatusDone
	vlu.done = true
}

func (vlu *VLU) vector(idx uint8) (Vector, error) {
	if int(idx) >= NumVectors {
		return Vector{}, curated.Errorf(InvalidVector, idx)
	}
	return vlu.Vectors[idx], nil
}

func (vlu *VLU) compute(job Job) error {
	if int(vlu.dest) >= NumVectors && job != Dot {
		return curated.Errorf(InvalidVector, vlu.dest)
	}

	a, err := vlu.vector(vlu.operandA)
	if err != nil {
		return err
	}

	switch job {
	case Transform:
		if int(vlu.operandB) >= NumMatrices {
			return curated.Errorf(InvalidMatrix, vlu.operandB)
		}
		vlu.Vectors[vlu.dest] = transform(vlu.Matrices[vlu.operandB], a)

	case Dot:
		b, err := vlu.vector(vlu.operandB)
		if err != nil {
			return err
		}
		vlu.Scalar = dot(a, b)

	case Cross:
		b, err := vlu.vector(vlu.operandB)
		if err != nil {
			return err
		}
		vlu.Vectors[vlu.dest] = cross(a, b)

	case Normalise:
		vlu.Vectors[vlu.dest] = normalise(a)

	default:
		return curated.Errorf(UnknownJob, uint8(job))
	}

	return nil
}

// LastError returns the error of the most recent job that failed. Returns
// nil if no job has failed since the last reset.
func (vlu *VLU) LastError() error {
	return vlu.lastError
}

// Tick implements the coprocessors.Coprocessor interface.
func (vlu *VLU) Tick(_ int) []interrupts.ID {
	if !vlu.done {
		return nil
	}
	vlu.done = false
	return []interrupts.ID{interrupts.VLU_DONE}
}
