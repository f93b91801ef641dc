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

package apu

import (
	"fmt"
	"strings"

	"github.com/nexel24/nexel24/hardware/instance"
	"github.com/nexel24/nexel24/hardware/interrupts"
	"github.com/nexel24/nexel24/logger"
)

// Address range of the APU registers.
const (
	Origin = uint32(0x10c000)
	Memtop = uint32(0x10c0ff)
)

// NumChannels is the number of audio channels.
const NumChannels = 6

// Register layout.
const (
	ChannelStride = 0x10
	RegStatus     = NumChannels * ChannelStride
	RegControl    = RegStatus + 1
	RegVersion    = RegStatus + 2
)

// Version is the value of the version register.
const Version = uint8(0x10)

// Status bits of both the global and the channel status registers.
const (
	StatusBufferEmpty = uint8(0x01)
	StatusActive      = uint8(0x02)
)

// CyclesPerSampleUnit is the number of CPU cycles it takes for an enabled
// channel to consume one unit of sample data.
const CyclesPerSampleUnit = 64

// Voice selects the sound generator of a channel.
type Voice uint8

// List of valid Voice values.
const (
	PCM Voice = iota
	FM
	Wavetable
	Noise
)

func (v Voice) String() string {
	switch v {
	case PCM:
		return "PCM"
	case FM:
		return "FM"
	case Wavetable:
		return "Wavetable"
	case Noise:
		return "Noise"
	}
	return "unknown voice"
}

// Channel is the state of a single audio channel.
type Channel struct {
	Enabled       bool
	Voice         Voice
	Volume        uint8
	Pan           uint8
	Frequency     uint16
	Effect        uint8
	SampleAddress uint32
	SampleLength  uint16
	BufferEmpty   bool
}

func (ch *Channel) reset() {
	*ch = Channel{
		Volume:      0xff,
		Pan:         0x80,
		BufferEmpty: true,
	}
}

func (ch Channel) String() string {
	if !ch.Enabled {
		return "off"
	}
	return fmt.Sprintf("%s vol=%02x pan=%02x freq=%04x addr=%06x len=%04x empty=%v",
		ch.Voice, ch.Volume, ch.Pan, ch.Frequency, ch.SampleAddress, ch.SampleLength, ch.BufferEmpty)
}

// APU implements the audio processor coprocessor.
type APU struct {
	instance *instance.Instance

	Channels [NumChannels]Channel
	control  uint8

	// set when an enabled channel runs out of sample data. cleared by
	// writing to the status register
	latch bool

	// the latch has been reported as an interrupt
	reported bool
}

// NewAPU is the preferred method of initialisation for the APU type.
func NewAPU(instance *instance.Instance) *APU {
	apu := &APU{instance: instance}
	apu.Reset()
	return apu
}

// Label implements the coprocessors.Coprocessor interface.
func (apu *APU) Label() string {
	return "APU"
}

// Origin implements the coprocessors.Coprocessor interface.
func (apu *APU) Origin() uint32 {
	return Origin
}

// Memtop implements the coprocessors.Coprocessor interface.
func (apu *APU) Memtop() uint32 {
	return Memtop
}

func (apu *APU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("status=%02x control=%02x", apu.status(), apu.control))
	for i, ch := range apu.Channels {
		s.WriteString(fmt.Sprintf("\n  ch%d: %s", i, ch))
	}
	return s.String()
}

// Reset implements the coprocessors.Coprocessor interface.
func (apu *APU) Reset() {
	for i := range apu.Channels {
		apu.Channels[i].reset()
	}
	apu.control = 0
	apu.latch = false
	apu.reported = false
}

func (apu *APU) status() uint8 {
	var s uint8
	for _, ch := range apu.Channels {
		if ch.Enabled {
			s |= StatusActive
			if ch.BufferEmpty {
				s |= StatusBufferEmpty
			}
		}
	}
	return s
}

// Read implements the bus.IOHandler interface.
func (apu *APU) Read(offset uint32) uint8 {
	if offset < RegStatus {
		return apu.readChannel(&apu.Channels[offset/ChannelStride], offset%ChannelStride)
	}

	switch offset {
	case RegStatus:
		return apu.status()
	case RegControl:
		return apu.control
	case RegVersion:
		return Version
	}

	return 0xff
}

func (apu *APU) readChannel(ch *Channel, reg uint32) uint8 {
	switch reg {
	case 0x00:
		var v uint8
		if ch.Enabled {
			v |= 0x01
		}
		return v | uint8(ch.Voice)<<1
	case 0x01:
		return ch.Volume
	case 0x02:
		return ch.Pan
	case 0x03:
		var v uint8
		if ch.BufferEmpty {
			v |= StatusBufferEmpty
		}
		if ch.Enabled {
			v |= StatusActive
		}
		return v
	case 0x04:
		return uint8(ch.Frequency)
	case 0x05:
		return uint8(ch.Frequency >> 8)
	case 0x06:
		return ch.Effect
	case 0x08:
		return uint8(ch.SampleAddress)
	case 0x09:
		return uint8(ch.SampleAddress >> 8)
	case 0x0a:
		return uint8(ch.SampleAddress >> 16)
	case 0x0b:
		return uint8(ch.SampleLength >> 8)
	case 0x0c:
		return uint8(ch.SampleLength)
	}
	return 0xff
}

// Write implements the bus.IOHandler interface.
func (apu *APU) Write(offset uint32, data uint8) {
	if offset < RegStatus {
		apu.writeChannel(&apu.Channels[offset/ChannelStride], offset%ChannelStride, data)
		return
	}

	switch offset {
	case RegStatus:
		if data&StatusBufferEmpty == StatusBufferEmpty {
			apu.latch = false
			apu.reported = false
		}
	case RegControl:
		apu.control = data
	}
}

func (apu *APU) writeChannel(ch *Channel, reg uint32, data uint8) {
	switch reg {
	case 0x00:
		ch.Enabled = data&0x01 == 0x01
		ch.Voice = Voice((data >> 1) & 0x03)
		if ch.Enabled {
			ch.BufferEmpty = ch.SampleLength == 0
		}
	case 0x01:
		ch.Volume = data
	case 0x02:
		ch.Pan = data
	case 0x03:
		if data&StatusBufferEmpty == StatusBufferEmpty {
			ch.BufferEmpty = false
		}
	case 0x04:
		ch.Frequency = (ch.Frequency & 0xff00) | uint16(data)
	case 0x05:
		ch.Frequency = (ch.Frequency & 0x00ff) | uint16(data)<<8
	case 0x06:
		ch.Effect = data
	case 0x08:
		ch.SampleAddress = (ch.SampleAddress & 0xffff00) | uint32(data)
	case 0x09:
		ch.SampleAddress = (ch.SampleAddress & 0xff00ff) | uint32(data)<<8
	case 0x0a:
		ch.SampleAddress = (ch.SampleAddress & 0x00ffff) | uint32(data)<<16
	case 0x0b:
		ch.SampleLength = (ch.SampleLength & 0x00ff) | uint16(data)<<8
		ch.BufferEmpty = ch.SampleLength == 0 && ch.Enabled
	case 0x0c:
		ch.SampleLength = (ch.SampleLength & 0xff00) | uint16(data)
		ch.BufferEmpty = ch.SampleLength == 0 && ch.Enabled
	}
}

// Tick implements the coprocessors.Coprocessor interface. Every enabled
// channel consumes one unit of sample data for every CyclesPerSampleUnit
// cycles, with a minimum of one unit per tick.
//
// The latch is set when a channel runs out of data. The APU_BUF_EMPTY
// interrupt is returned once for each time the latch is set.
func (apu *APU) Tick(cycles int) []interrupts.ID {
	if cycles <= 0 {
		return nil
	}

	units := max(1, cycles/CyclesPerSampleUnit)

	for i := range apu.Channels {
		ch := &apu.Channels[i]
		if !ch.Enabled || ch.BufferEmpty {
			continue
		}
		if int(ch.SampleLength) > units {
			ch.SampleLength -= uint16(units)
			continue
		}
		ch.SampleLength = 0
		ch.BufferEmpty = true
		if !apu.latch {
			logger.Logf(apu.instance, "apu", "channel %d buffer empty", i)
		}
		apu.latch = true
	}

	if apu.latch && !apu.reported {
		apu.reported = true
		return []interrupts.ID{interrupts.APU_BUF_EMPTY}
	}

	return nil
}
