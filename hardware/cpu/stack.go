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

package cpu

// the stack lives in work RAM. SP addresses the next free byte and the stack
// grows downwards. SP wraps at 16 bits.

func (mc *CPU) push8(v uint8) {
	mc.mem.Write(uint32(mc.SP.Value()), v)
	mc.SP.Decrement()
}

func (mc *CPU) pop8() uint8 {
	mc.SP.Increment()
	return mc.mem.Read(uint32(mc.SP.Value()))
}

// push24 writes the low byte first so that the high byte ends up at the
// lowest address.
func (mc *CPU) push24(v uint32) {
	mc.push8(uint8(v))
	mc.push8(uint8(v >> 8))
	mc.push8(uint8(v >> 16))
}

func (mc *CPU) pop24() uint32 {
	hi := uint32(mc.pop8())
	mid := uint32(mc.pop8())
	lo := uint32(mc.pop8())
	return hi<<16 | mid<<8 | lo
}
