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

package vlu_test

import (
	"testing"

	"github.com/nexel24/nexel24/curated"
	"github.com/nexel24/nexel24/hardware/coprocessors/vlu"
	"github.com/nexel24/nexel24/test"
)

// write a 16-bit little-endian value through the register window.
func write16(v *vlu.VLU, offset uint32, value vlu.Fixed) {
	v.Write(offset, uint8(value))
	v.Write(offset+1, uint8(uint16(value)>>8))
}

func setVector(v *vlu.VLU, n int, x, y, z float64) {
	base := uint32(n * 6)
	write16(v, base, vlu.FixedFromFloat(x))
	write16(v, base+2, vlu.FixedFromFloat(y))
	write16(v, base+4, vlu.FixedFromFloat(z))
}

func startJob(v *vlu.VLU, job vlu.Job, dest, a, b uint8) {
	v.Write(vlu.RegDest, dest)
	v.Write(vlu.RegOperandA, a)
	v.Write(vlu.RegOperandB, b)
	v.Write(vlu.RegJob, uint8(job))
}

func TestFixed(t *testing.T) {
	test.Equate(t, int16(vlu.FixedFromFloat(1.0)), 0x100)
	test.Equate(t, int16(vlu.FixedFromFloat(-0.5)), -0x80)
	test.Equate(t, int16(vlu.FixedFromFloat(1000)), 0x7fff)
	test.Equate(t, vlu.FixedFromFloat(2.25).String(), "2.250")
}

func TestRegisterWindow(t *testing.T) {
	v := vlu.NewVLU(nil)

	setVector(v, 7, 1, -1, 0.5)
	test.Equate(t, v.Vectors[7].String(), "[1.000, -1.000, 0.500]")
	test.Equate(t, v.Read(7*6+2), 0x00)
	test.Equate(t, v.Read(7*6+3), 0xff)

	// matrix 1 row 2 column 0
	write16(v, vlu.RegMatrices+18+12, vlu.FixedOne)
	test.Equate(t, int16(v.Matrices[1][2][0]), 0x100)
}

func TestDot(t *testing.T) {
	v := vlu.NewVLU(nil)
	setVector(v, 0, 1, 2, 3)
	setVector(v, 1, 4, -5, 6)

	startJob(v, vlu.Dot, 0, 0, 1)
	test.Equate(t, int16(v.Scalar), 0x0c00)
	test.Equate(t, v.Read(vlu.RegScalarLo), 0x00)
	test.Equate(t, v.Read(vlu.RegScalarHi), 0x0c)

	// done is reported on the next tick only
	ids := v.Tick(1)
	test.DemandEquality(t, len(ids), 1)
	test.Equate(t, ids[0].String(), "VLU_DONE")
	test.Equate(t, len(v.Tick(1)), 0)

	test.Equate(t, v.Read(vlu.RegStatus), vlu.StatusDone)
	v.Write(vlu.RegStatus, vlu.StatusDone)
	test.Equate(t, v.Read(vlu.RegStatus), 0)
}

func TestCross(t *testing.T) {
	v := vlu.NewVLU(nil)
	setVector(v, 0, 1, 0, 0)
	setVector(v, 1, 0, 1, 0)

	startJob(v, vlu.Cross, 2, 0, 1)
	test.Equate(t, v.Vectors[2].String(), "[0.000, 0.000, 1.000]")
}

func TestTransform(t *testing.T) {
	v := vlu.NewVLU(nil)
	setVector(v, 0, 1, 2, 3)

	// matrix 0 swaps x and y and doubles z
	v.Matrices[0] = vlu.Matrix{
		{0, vlu.FixedOne, 0},
		{vlu.FixedOne, 0, 0},
		{0, 0, 2 * vlu.FixedOne},
	}

	startJob(v, vlu.Transform, 3, 0, 0)
	test.Equate(t, v.Vectors[3].String(), "[2.000, 1.000, 6.000]")
}

func TestNormalise(t *testing.T) {
	v := vlu.NewVLU(nil)
	setVector(v, 0, 3, 0, 4)

	startJob(v, vlu.Normalise, 1, 0, 0)
	test.Equate(t, v.Vectors[1].String(), "[0.602, 0.000, 0.801]")

	// zero vector normalises to zero
	startJob(v, vlu.Normalise, 1, 2, 0)
	test.Equate(t, v.Vectors[1].String(), "[0.000, 0.000, 0.000]")
}

func TestBadRegister(t *testing.T) {
	v := vlu.NewVLU(nil)
	setVector(v, 0, 1, 1, 1)

	startJob(v, vlu.Transform, 0, 0, 4)
	test.Equate(t, v.Read(vlu.RegStatus), vlu.StatusDone|vlu.StatusError)
	test.ExpectedSuccess(t, curated.Is(v.LastError(), vlu.InvalidMatrix))

	// the job still completes
	test.Equate(t, len(v.Tick(1)), 1)

	// registers unchanged
	test.Equate(t, v.Vectors[0].String(), "[1.000, 1.000, 1.000]")

	startJob(v, vlu.Dot, 0, 8, 0)
	test.ExpectedSuccess(t, curated.Is(v.LastError(), vlu.InvalidVector))

	v.Reset()
	test.Equate(t, v.Read(vlu.RegStatus), 0)
	test.ExpectedSuccess(t, v.LastError())
}
