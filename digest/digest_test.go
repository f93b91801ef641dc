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

package digest_test

import (
	"testing"

	"github.com/nexel24/nexel24/digest"
	"github.com/nexel24/nexel24/hardware"
	"github.com/nexel24/nexel24/test"
)

func TestState(t *testing.T) {
	conA, err := hardware.NewConsole(nil)
	test.DemandSuccess(t, err)
	conB, err := hardware.NewConsole(nil)
	test.DemandSuccess(t, err)

	digA := digest.NewState(conA)
	digB := digest.NewState(conB)
	test.Equate(t, digA.Hash(), "0000000000000000000000000000000000000000")

	test.Equate(t, digA.Update(), digB.Update())

	conA.Mem.Poke(0x001000, 0x01)
	test.ExpectedSuccess(t, digA.Update() != digB.Update())

	// the hashes are chained so matching the memory is not enough
	conB.Mem.Poke(0x001000, 0x01)
	test.ExpectedSuccess(t, digA.Update() != digB.Update())

	digA.ResetDigest()
	digB.ResetDigest()
	test.Equate(t, digA.Update(), digB.Update())

	// registers contribute to the hash
	conA.CPU.A.Load(0x1234)
	test.ExpectedSuccess(t, digA.Update() != digB.Update())
}
