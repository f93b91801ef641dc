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

// Package modalflag wraps the flag package of the standard library so that a
// program can have modes, each with its own set of flags.
//
// Arguments are given to NewArgs() and are then consumed by one or more calls
// to Parse(). Flags for the current mode are added between the two:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG")
//	p, err := md.Parse()
//
// After Parse() returns ParseContinue the Mode() function names the selected
// mode. The first sub-mode is the default and is selected if the first
// argument does not name a mode. Call NewMode() to begin parsing the flags of
// the selected mode:
//
//	switch md.Mode() {
//	case "DEBUG":
//		md.NewMode()
//		script := md.AddString("script", "", "run script on start")
//		p, err := md.Parse()
//		...
//	}
//
// The path of modes taken through the arguments is returned by Path(), for
// example "DEBUG" or "RUN/FAST".
package modalflag
