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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in
// memory, including the unmapped gaps. Useful for reference.
func Summary() string {
	s := strings.Builder{}

	next := uint32(0)
	for _, a := range Areas {
		if a.Origin() > next {
			s.WriteString(fmt.Sprintf("%06x -> %06x\t%s\n", next, a.Origin()-1, Undefined))
		}
		access := "RW"
		if a.ReadOnly() {
			access = "RO"
		}
		s.WriteString(fmt.Sprintf("%06x -> %06x\t%s (%s)\n", a.Origin(), a.Memtop(), a, access))
		next = a.Memtop() + 1
	}

	return s.String()
}
