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

// Package resources prepares paths for files used by the emulator, such as
// the preferences file.
//
// The JoinPath() function returns the path to the resource specified in the
// arguments, creating any intermediate directories as required. It does not
// otherwise touch or create files.
//
// If a directory named ".nexel24" exists in the current working directory
// then paths are rooted there. This is convenient during development and for
// portable installations. Otherwise paths are rooted in the user's
// configuration directory. On a modern Linux system the full path would be
// something like:
//
//	/home/user/.config/nexel24/
package resources
