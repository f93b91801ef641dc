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

// Package vdp implements the register surface and beam timing of the video
// display processor. Pixel generation is not emulated. The VDP counts
// scanlines, raises the HBLANK and VBLANK interrupts and performs DMA
// transfers through the memory bus.
//
// Registers are 16-bit little-endian values accessed as two bytes. Writing
// one byte of a register leaves the other byte unchanged.
//
//	0x00	display control
//	0x02	status (read only). bit 0 VBLANK, bit 1 HBLANK, bit 2 line compare, bit 3 DMA busy
//	0x04	vertical count (read only)
//	0x06	horizontal count (read only)
//	0x70	DMA source, bits 0 to 15
//	0x72	DMA source, bits 16 to 23
//	0x74	DMA destination, bits 0 to 15
//	0x76	DMA destination, bits 16 to 23
//	0x78	DMA length in bytes
//	0x7a	DMA control. setting bit 15 starts the transfer
//	0x80	interrupt enable. bit 0 HBLANK, bit 1 VBLANK, bit 2 line compare, bit 3 DMA
//	0x82	interrupt status. same bits as the enable register. write 1 to clear
//	0x84	line compare
//
// All other offsets in the range are plain storage.
//
// A frame is 288 scanlines of 1024 CPU cycles. The vertical blank starts on
// line 240 and the horizontal blank covers the last 256 cycles of every
// line. VBLANK is delivered to the CPU as the NMI and the line compare
// interrupt shares the HBLANK vector.
//
// A DMA transfer starts on the first Tick() after bit 15 of the control
// register is set. The whole transfer happens in that Tick().
package vdp
