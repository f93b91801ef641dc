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

// Package debugger implements a line based monitor for the Nexel24 console.
//
// Commands are entered one per line. Keywords are case insensitive and
// numbers can be decimal or hexadecimal, with either the 0x or $ prefix. The
// HELP command lists the available commands.
//
// On an interactive terminal the KEYS command switches to single key
// stepping:
//
//	space	step one instruction
//	f	run one frame
//	q	return to the command line
package debugger
