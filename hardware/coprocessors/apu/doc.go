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

// Package apu implements the register surface of the six channel audio
// processor. Sound is not produced. The APU models the consumption of sample
// data so that programs waiting for a buffer to empty behave correctly.
//
// Each channel has a window of 16 registers. Channel n starts at offset
// n*0x10:
//
//	0x00	control. bit 0 enable, bits 1-2 voice
//	0x01	volume
//	0x02	pan
//	0x03	status. bit 0 buffer empty, bit 1 active. write bit 0 to refill
//	0x04	frequency (low byte)
//	0x05	frequency (high byte)
//	0x06	effect mask
//	0x08	sample address (low byte)
//	0x09	sample address (middle byte)
//	0x0a	sample address (high byte)
//	0x0b	sample length (high byte)
//	0x0c	sample length (low byte)
//
// The global registers follow the channel windows:
//
//	0x60	status. bit 0 buffer empty, bit 1 channel active. write bit 0 to
//		acknowledge the buffer empty latch
//	0x61	control
//	0x62	version (read only)
//
// Unused offsets read as 0xff.
package apu
