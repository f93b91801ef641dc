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

package vdp

import (
	"fmt"

	"github.com/nexel24/nexel24/hardware/instance"
	"github.com/nexel24/nexel24/hardware/interrupts"
	"github.com/nexel24/nexel24/hardware/memory/bus"
	"github.com/nexel24/nexel24/logger"
)

// Address range of the VDP registers.
const (
	Origin = uint32(0x100000)
	Memtop = uint32(0x103fff)
)

// Register offsets.
const (
	RegDisplay     = 0x00
	RegStatus      = 0x02
	RegVCount      = 0x04
	RegHCount      = 0x06
	RegDMASource   = 0x70
	RegDMASourceHi = 0x72
	RegDMADest     = 0x74
	RegDMADestHi   = 0x76
	RegDMALength   = 0x78
	RegDMAControl  = 0x7a
	RegIRQEnable   = 0x80
	RegIRQStatus   = 0x82
	RegLineCompare = 0x84
)

// Bits of the status, interrupt enable and interrupt status registers.
const (
	StatusVBlank  = uint16(0x0001)
	StatusHBlank  = uint16(0x0002)
	StatusLineCmp = uint16(0x0004)
	StatusDMABusy = uint16(0x0008)

	IRQHBlank  = uint16(0x0001)
	IRQVBlank  = uint16(0x0002)
	IRQLineCmp = uint16(0x0004)
	IRQDMA     = uint16(0x0008)

	DMAStart = uint16(0x8000)
)

// Beam timing in CPU cycles.
const (
	CyclesPerLine  = 1024
	LinesPerFrame  = 288
	VBlankLine     = 240
	HBlankStart    = 768
	CyclesPerFrame = CyclesPerLine * LinesPerFrame
)

const regionSize = Memtop - Origin + 1

// VDP implements the video display processor.
type VDP struct {
	instance *instance.Instance
	mem      bus.CPUBus

	// storage for every register that is not handled specially
	regs [regionSize]uint8

	// cycles since reset
	cycle uint64

	irqStatus  uint16
	dmaPending bool
}

// NewVDP is the preferred method of initialisation for the VDP type. The bus
// is used for DMA transfers.
func NewVDP(instance *instance.Instance, mem bus.CPUBus) *VDP {
	return &VDP{
		instance: instance,
		mem:      mem,
	}
}

// Label implements the coprocessors.Coprocessor interface.
func (vdp *VDP) Label() string {
	return "VDP"
}

// Origin implements the coprocessors.Coprocessor interface.
func (vdp *VDP) Origin() uint32 {
	return Origin
}

// Memtop implements the coprocessors.Coprocessor interface.
func (vdp *VDP) Memtop() uint32 {
	return Memtop
}

func (vdp *VDP) String() string {
	return fmt.Sprintf("frame=%d line=%03d h=%04d status=%04x irq=%04x/%04x",
		vdp.Frame(), vdp.Line(), vdp.HCount(), vdp.status(),
		vdp.word(RegIRQEnable), vdp.irqStatus)
}

// Reset implements the coprocessors.Coprocessor interface.
func (vdp *VDP) Reset() {
	clear(vdp.regs[:])
	vdp.cycle = 0
	vdp.irqStatus = 0
	vdp.dmaPending = false
}

// Frame returns the number of complete frames since reset.
func (vdp *VDP) Frame() uint64 {
	return vdp.cycle / CyclesPerFrame
}

// Line returns the current scanline.
func (vdp *VDP) Line() int {
	return int(vdp.cycle%CyclesPerFrame) / CyclesPerLine
}

// HCount returns the position of the beam in the current scanline.
func (vdp *VDP) HCount() int {
	return int(vdp.cycle % CyclesPerLine)
}

// Cycle returns the number of cycles since reset.
func (vdp *VDP) Cycle() uint64 {
	return vdp.cycle
}

func (vdp *VDP) word(offset uint32) uint16 {
	return uint16(vdp.regs[offset]) | uint16(vdp.regs[offset+1])<<8
}

func (vdp *VDP) status() uint16 {
	var s uint16
	if vdp.Line() >= VBlankLine {
		s |= StatusVBlank
	}
	if vdp.HCount() >= HBlankStart {
		s |= StatusHBlank
	}
	if vdp.Line() == int(vdp.word(RegLineCompare)) {
		s |= StatusLineCmp
	}
	if vdp.dmaPending {
		s |= StatusDMABusy
	}
	return s
}

// byte half of a 16-bit value.
func half(v uint16, offset uint32) uint8 {
	if offset&1 == 1 {
		return uint8(v >> 8)
	}
	return uint8(v)
}

// Read implements the bus.IOHandler interface.
func (vdp *VDP) Read(offset uint32) uint8 {
	offset %= regionSize
	switch offset &^ 1 {
	case RegStatus:
		return half(vdp.status(), offset)
	case RegVCount:
		return half(uint16(vdp.Line()), offset)
	case RegHCount:
		return half(uint16(vdp.HCount()), offset)
	case RegIRQStatus:
		return half(vdp.irqStatus, offset)
	}
	return vdp.regs[offset]
}

// Write implements the bus.IOHandler interface.
func (vdp *VDP) Write(offset uint32, data uint8) {
	offset %= regionSize
	switch offset &^ 1 {
	case RegStatus, RegVCount, RegHCount:
		return
	case RegIRQStatus:
		if offset&1 == 1 {
			vdp.irqStatus &^= uint16(data) << 8
		} else {
			vdp.irqStatus &^= uint16(data)
		}
		return
	case RegDMAControl:
		vdp.regs[offset] = data
		if vdp.word(RegDMAControl)&DMAStart == DMAStart {
			vdp.dmaPending = true
		}
		return
	}
	vdp.regs[offset] = data
}

// DMA returns the source, destination and length of the DMA transfer as
// currently programmed.
func (vdp *VDP) DMA() (source uint32, dest uint32, length uint16) {
	source = uint32(vdp.word(RegDMASource)) | uint32(vdp.regs[RegDMASourceHi])<<16
	dest = uint32(vdp.word(RegDMADest)) | uint32(vdp.regs[RegDMADestHi])<<16
	length = vdp.word(RegDMALength)
	return source, dest, length
}

func (vdp *VDP) dma() {
	source, dest, length := vdp.DMA()
	for i := uint32(0); i < uint32(length); i++ {
		vdp.mem.Write(dest+i, vdp.mem.Read(source+i))
	}

	control := vdp.word(RegDMAControl) &^ DMAStart
	vdp.regs[RegDMAControl] = uint8(control)
	vdp.regs[RegDMAControl+1] = uint8(control >> 8)
	vdp.dmaPending = false

	logger.Logf(vdp.instance, "vdp", "dma %06x -> %06x (%d bytes)", source, dest, length)
}

// crossed returns true if a point phase+n*period, for any n >= 0, lies in
// the range (before, after].
func crossed(before, after, period, phase uint64) bool {
	count := func(c uint64) uint64 {
		if c < phase {
			return 0
		}
		return (c-phase)/period + 1
	}
	return count(after) > count(before)
}

// raise latches the interrupt status bit and returns true if the interrupt
// is enabled.
func (vdp *VDP) raise(bit uint16) bool {
	if vdp.word(RegIRQEnable)&bit != bit {
		return false
	}
	vdp.irqStatus |= bit
	return true
}

// Tick implements the coprocessors.Coprocessor interface. Each interrupt is
// raised at most once per call, however many times the event happened.
func (vdp *VDP) Tick(cycles int) []interrupts.ID {
	var ids []interrupts.ID

	if vdp.dmaPending {
		vdp.dma()
		if vdp.raise(IRQDMA) {
			ids = append(ids, interrupts.DMA_DONE)
		}
	}

	if cycles <= 0 {
		return ids
	}

	before := vdp.cycle
	vdp.cycle += uint64(cycles)
	after := vdp.cycle

	if crossed(before, after, CyclesPerFrame, VBlankLine*CyclesPerLine) {
		if vdp.raise(IRQVBlank) {
			ids = append(ids, interrupts.NMI)
		}
	}

	hblank := false
	if crossed(before, after, CyclesPerLine, HBlankStart) {
		hblank = vdp.raise(IRQHBlank)
	}

	if cmp := uint64(vdp.word(RegLineCompare)); cmp < LinesPerFrame {
		if crossed(before, after, CyclesPerFrame, cmp*CyclesPerLine) {
			if vdp.raise(IRQLineCmp) {
				hblank = true
			}
		}
	}

	if hblank {
		ids = append(ids, interrupts.HBLANK)
	}

	return ids
}
