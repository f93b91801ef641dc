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

package debugger

import (
	"strconv"
	"strings"

	"github.com/nexel24/nexel24/curated"
)

// Sentinel error patterns.
const (
	UnknownCommand   = "debugger: unknown command (%s)"
	MissingArgument  = "debugger: %s requires %s"
	TooManyArguments = "debugger: too many arguments for %s"
	InvalidArgument  = "debugger: invalid argument for %s (%s)"
)

// tokenise splits the input into words. Anything after a semicolon is a
// comment.
func tokenise(input string) []string {
	if i := strings.IndexByte(input, ';'); i >= 0 {
		input = input[:i]
	}
	return strings.Fields(input)
}

// parseNumber accepts decimal and hexadecimal numbers.
func parseNumber(s string) (uint32, bool) {
	var v uint64
	var err error
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		v, err = strconv.ParseUint(s[2:], 16, 32)
	case strings.HasPrefix(s, "$"):
		v, err = strconv.ParseUint(s[1:], 16, 32)
	default:
		v, err = strconv.ParseUint(s, 10, 32)
	}
	return uint32(v), err == nil
}

// address resolves a number or a label to an address.
func (dbg *Debugger) address(cmd string, s string) (uint32, error) {
	if v, ok := parseNumber(s); ok {
		if v > 0xffffff {
			return 0, curated.Errorf(InvalidArgument, cmd, s)
		}
		return v, nil
	}
	if v, ok := dbg.labels[s]; ok {
		return v, nil
	}
	return 0, curated.Errorf(InvalidArgument, cmd, s)
}

// count parses an optional count argument. The default is returned if the
// argument is missing.
func count(cmd string, args []string, idx int, def int) (int, error) {
	if idx >= len(args) {
		return def, nil
	}
	v, ok := parseNumber(args[idx])
	if !ok || v == 0 {
		return 0, curated.Errorf(InvalidArgument, cmd, args[idx])
	}
	return int(v), nil
}
