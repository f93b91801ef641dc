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

package hardware

import (
	"context"
)

// Checking a context or a continue condition after every instruction is
// expensive. PerformanceBrake is the number of instructions that can safely
// pass between checks. For example:
//
//	brake++
//	if brake >= hardware.PerformanceBrake {
//		brake = 0
//		if ctx.Err() != nil {
//			return
//		}
//	}
const PerformanceBrake = 100

// CyclesPerFrame returns the frame budget for RunFrame(). The value comes
// from the emulation.cyclesPerFrame preference and falls back to the
// CyclesPerFrame constant if the preference is not positive.
func (con *Console) CyclesPerFrame() int {
	if con.Instance != nil && con.Instance.Prefs != nil {
		if n := con.Instance.Prefs.CyclesPerFrame.Get().(int); n > 0 {
			return n
		}
	}
	return CyclesPerFrame
}

// RunFrame steps the emulation until a frame's worth of cycles has been
// consumed or until the CPU halts. The context is checked before the first
// instruction and then every PerformanceBrake instructions. The frame count
// is not incremented if the frame was interrupted by the context.
//
// The final instruction of a frame may take the cycle count past the frame
// budget. The excess is not carried into the next frame.
func (con *Console) RunFrame(ctx context.Context) error {
	budget := con.CyclesPerFrame()

	var brake int

	for used := 0; used < budget; {
		if brake == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		brake++
		if brake >= PerformanceBrake {
			brake = 0
		}

		cycles := con.Step()
		if cycles == 0 {
			break
		}
		used += cycles
	}

	con.frameCount++

	return nil
}

// RunFrames calls RunFrame() n times. It returns early if the CPU halts or if
// the context is cancelled.
func (con *Console) RunFrames(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := con.RunFrame(ctx); err != nil {
			return err
		}
		if con.CPU.Halted() {
			break
		}
	}
	return nil
}

// Run steps the emulation until the CPU halts or the context is cancelled.
// The continueCheck function is called after every frame and can be nil.
// Returning false from continueCheck ends the run.
func (con *Console) Run(ctx context.Context, continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for !con.CPU.Halted() {
		if err := con.RunFrame(ctx); err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			break
		}
	}

	return nil
}
