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

package disassembly

import (
	"io"

	"github.com/nexel24/nexel24/hardware/memory/bus"
)

// Range disassembles count instructions starting at address.
func Range(mem bus.DebugBus, address uint32, count int) []Entry {
	entries := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		e := Disassemble(mem, address)
		entries = append(entries, e)
		address = e.Next()
	}
	return entries
}

// Write disassembles count instructions starting at address to the output.
// The labels argument can be nil. Labels are printed on their own line
// before the instruction at the label's address.
func Write(output io.Writer, mem bus.DebugBus, address uint32, count int, labels map[string]uint32) error {
	byAddress := make(map[uint32][]string)
	for n, a := range labels {
		byAddress[a] = append(byAddress[a], n)
	}

	for _, e := range Range(mem, address, count) {
		for _, n := range sortedNames(byAddress[e.Address]) {
			if _, err := io.WriteString(output, n+":\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(output, e.String()+"\n"); err != nil {
			return err
		}
	}

	return nil
}
