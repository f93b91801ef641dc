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
	"fmt"
	"sort"
	"strings"
)

// breakpoints halt execution when the PC reaches one of the addresses. Breaks
// are checked by RUN and STEP after every instruction.
type breakpoints struct {
	addresses map[uint32]bool
}

func (bp *breakpoints) add(address uint32) bool {
	if bp.addresses == nil {
		bp.addresses = make(map[uint32]bool)
	}
	if bp.addresses[address] {
		return false
	}
	bp.addresses[address] = true
	return true
}

func (bp *breakpoints) drop(address uint32) bool {
	if !bp.addresses[address] {
		return false
	}
	delete(bp.addresses, address)
	return true
}

func (bp *breakpoints) clear() {
	bp.addresses = nil
}

func (bp *breakpoints) check(address uint32) bool {
	return bp.addresses[address]
}

func (bp breakpoints) String() string {
	if len(bp.addresses) == 0 {
		return "no breakpoints"
	}

	l := make([]uint32, 0, len(bp.addresses))
	for a := range bp.addresses {
		l = append(l, a)
	}
	sort.Slice(l, func(i, j int) bool { return l[i] < l[j] })

	s := strings.Builder{}
	for i, a := range l {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%06x", a))
	}
	return s.String()
}
