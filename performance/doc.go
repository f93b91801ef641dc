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

// Package performance contains helper functions relating to the speed of the
// emulation.
//
// Check() runs the emulation for a fixed duration of time and reports the
// number of frames per second. It can optionally write profiling
// information.
//
// RunProfiler() runs any function under the profilers selected by the Profile
// argument.
//
// CalcFPS() calculates frames-per-second in aggregate along with an accuracy
// value, as compared to the target frame rate. It is not suitable for live
// FPS monitoring.
package performance
