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

// Package statsview runs a local HTTP server showing charts of the Go
// runtime statistics of the emulator. The charts are provided by
// github.com/go-echarts/statsview and are useful when profiling the
// emulation loop.
//
// After launch, the charts are viewable at:
//
//	localhost:12600/debug/statsview
//
// The standard pprof pages are available at:
//
//	localhost:12600/debug/pprof/
package statsview
