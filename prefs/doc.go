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

// Package prefs implements the preferences system. Preference values are
// typed (Bool, Int and String) and can be stored on disk with the Disk type.
//
// Preference values can also be specified on the command line. A group of
// values is pushed onto the command line stack with PushCommandLineStack() and
// is consulted by Disk.Load() after the file values have been applied:
//
//	prefs.PushCommandLineStack("emulation.cyclesPerFrame::153600")
//
// Each value on the stack is consumed when it is used. Values that are never
// used are returned by PopCommandLineStack(), which is useful for reporting
// mistyped keys.
package prefs
