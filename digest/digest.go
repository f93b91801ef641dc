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

// Package digest creates hashes of the console state. A hash is a quick way of
// checking that two emulations have arrived at the same state, which is
// useful when testing console programs with scripts.
//
// Each hash is chained to the previous hash. Two State digests only match if
// every call to Update() saw the same console state.
package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/nexel24/nexel24/hardware"
	"github.com/nexel24/nexel24/hardware/memory/memorymap"
)

// Digest implementations compute a hash of some part of the emulation.
type Digest interface {
	Hash() string
	ResetDigest()
}

// the writable memory areas. read-only areas do not contribute to the hash.
var areas = []memorymap.Area{
	memorymap.WorkRAM,
	memorymap.ExpandedRAM,
	memorymap.VRAM,
	memorymap.CRAM,
	memorymap.CartSave,
}

// State computes a hash of the CPU registers and the writable memory of a
// console.
type State struct {
	con    *hardware.Console
	digest [sha1.Size]byte
	buffer []byte
}

// NewState is the preferred method of initialisation for the State type.
func NewState(con *hardware.Console) *State {
	return &State{con: con}
}

// Hash implements the Digest interface.
func (dig *State) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *State) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
}

// Update the hash with the current state of the console. Returns the new
// hash.
func (dig *State) Update() string {
	dig.buffer = append(dig.buffer[:0], dig.digest[:]...)

	regs := dig.con.CPU.Registers()
	dig.buffer = binary.LittleEndian.AppendUint32(dig.buffer, regs.PC)
	dig.buffer = binary.LittleEndian.AppendUint16(dig.buffer, regs.A)
	dig.buffer = binary.LittleEndian.AppendUint16(dig.buffer, regs.X)
	dig.buffer = binary.LittleEndian.AppendUint16(dig.buffer, regs.Y)
	for _, r := range regs.R {
		dig.buffer = binary.LittleEndian.AppendUint16(dig.buffer, r)
	}
	dig.buffer = binary.LittleEndian.AppendUint16(dig.buffer, regs.SP)
	dig.buffer = append(dig.buffer, regs.Status.Value())

	for _, ar := range areas {
		dig.buffer = append(dig.buffer, dig.con.Mem.Save(ar)...)
	}

	dig.digest = sha1.Sum(dig.buffer)

	return dig.Hash()
}
