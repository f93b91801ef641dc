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

package performance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/nexel24/nexel24/curated"
	"github.com/nexel24/nexel24/hardware"
)

// the time the emulation runs before measurement starts.
const leadTime = time.Second

// Check the performance of the emulation. The console should have been
// prepared and reset before the call. The console runs for the duration
// after a short lead time and the number of frames is reported to the
// output.
func Check(ctx context.Context, output io.Writer, con *hardware.Console, profile Profile, duration time.Duration) error {
	if duration <= 0 {
		return curated.Errorf(PerformanceError, "duration must be positive")
	}

	var startFrame uint64
	var endFrame uint64

	runner := func() error {
		lead, cancel := context.WithTimeout(ctx, leadTime)
		err := con.Run(lead, nil)
		cancel()
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		startFrame = con.Stats().FrameCount

		measure, cancel := context.WithTimeout(ctx, duration)
		defer cancel()
		err = con.Run(measure, nil)
		endFrame = con.Stats().FrameCount
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return nil
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	if con.CPU.Halted() {
		fmt.Fprintf(output, "console halted during measurement: %s\n", con.Stats())
		return nil
	}

	numFrames := endFrame - startFrame
	fps, accuracy := CalcFPS(numFrames, duration.Seconds(), hardware.TargetFPS)
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, duration.Seconds(), accuracy)

	return nil
}
