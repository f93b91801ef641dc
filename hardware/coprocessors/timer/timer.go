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

// Package timer implements TIMER0, a 16-bit down counter that raises the
// TIMER0 interrupt when it underflows.
//
// Register map, relative to the origin of the timer:
//
//	0x00	reload value (low byte)
//	0x01	reload value (high byte)
//	0x02	counter (low byte)
//	0x03	counter (high byte)
//	0x04	control. bit 0 enable, bit 1 auto-reload
//	0x05	status. bit 0 underflow. write 1 to clear
//
// Writing to the high byte of the reload register also loads the counter.
package timer

import (
	"fmt"

	"github.com/nexel24/nexel24/hardware/instance"
	"github.com/nexel24/nexel24/hardware/interrupts"
	"github.com/nexel24/nexel24/logger"
)

// Address range of the timer registers.
const (
	Origin = uint32(0x108000)
	Memtop = uint32(0x10800f)
)

// Register offsets.
const (
	RegReloadLo  = 0x00
	RegReloadHi  = 0x01
	RegCounterLo = 0x02
	RegCounterHi = 0x03
	RegControl   = 0x04
	RegStatus    = 0x05
)

// Control and status bits.
const (
	ControlEnable     = uint8(0x01)
	ControlAutoReload = uint8(0x02)
	StatusUnderflow   = uint8(0x01)
)

// Timer implements the TIMER0 coprocessor.
type Timer struct {
	instance *instance.Instance

	Reload  uint16
	Counter uint16
	Control uint8
	Status  uint8

	// scratch space for the other registers in the range
	scratch [16]uint8
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer(instance *instance.Instance) *Timer {
	return &Timer{instance: instance}
}

// Label implements the coprocessors.Coprocessor interface.
func (tmr *Timer) Label() string {
	return "TIMER0"
}

// Origin implements the coprocessors.Coprocessor interface.
func (tmr *Timer) Origin() uint32 {
	return Origin
}

// Memtop implements the coprocessors.Coprocessor interface.
func (tmr *Timer) Memtop() uint32 {
	return Memtop
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("reload=%04x counter=%04x enabled=%v auto=%v underflow=%v",
		tmr.Reload, tmr.Counter,
		tmr.Control&ControlEnable == ControlEnable,
		tmr.Control&ControlAutoReload == ControlAutoReload,
		tmr.Status&StatusUnderflow == StatusUnderflow)
}

// Reset implements the coprocessors.Coprocessor interface.
func (tmr *Timer) Reset() {
	tmr.Reload = 0
	tmr.Counter = 0
	tmr.Control = 0
	tmr.Status = 0
	clear(tmr.scratch[:])
}

// Read implements the bus.IOHandler interface.
func (tmr *Timer) Read(offset uint32) uint8 {
	switch offset {
	case RegReloadLo:
		return uint8(tmr.Reload)
	case RegReloadHi:
		return uint8(tmr.Reload >> 8)
	case RegCounterLo:
		return uint8(tmr.Counter)
	case RegCounterHi:
		return uint8(tmr.Counter >> 8)
	case RegControl:
		return tmr.Control
	case RegStatus:
		return tmr.Status
	}
	return tmr.scratch[offset&0x0f]
}

// Write implements the bus.IOHandler interface.
func (tmr *Timer) Write(offset uint32, data uint8) {
	switch offset {
	case RegReloadLo:
		tmr.Reload = (tmr.Reload & 0xff00) | uint16(data)
	case RegReloadHi:
		tmr.Reload = (tmr.Reload & 0x00ff) | uint16(data)<<8
		tmr.Counter = tmr.Reload
	case RegCounterLo:
		tmr.Counter = (tmr.Counter & 0xff00) | uint16(data)
	case RegCounterHi:
		tmr.Counter = (tmr.Counter & 0x00ff) | uint16(data)<<8
	case RegControl:
		tmr.Control = data & (ControlEnable | ControlAutoReload)
	case RegStatus:
		tmr.Status &^= data
	default:
		tmr.scratch[offset&0x0f] = data
	}
}

// Tick implements the coprocessors.Coprocessor interface. The counter
// decreases by one every cycle. An underflow happens when the counter
// decreases from zero.
//
// Only one interrupt is raised per tick, even if the counter underflows more
// than once.
func (tmr *Timer) Tick(cycles int) []interrupts.ID {
	if tmr.Control&ControlEnable != ControlEnable || cycles <= 0 {
		return nil
	}

	c := uint32(cycles)
	if c <= uint32(tmr.Counter) {
		tmr.Counter -= uint16(c)
		return nil
	}

	// cycles remaining after the first underflow
	c -= uint32(tmr.Counter) + 1

	if tmr.Control&ControlAutoReload == ControlAutoReload {
		period := uint32(tmr.Reload) + 1
		tmr.Counter = tmr.Reload - uint16(c%period)
	} else {
		tmr.Counter = 0
		tmr.Control &^= ControlEnable
	}

	tmr.Status |= StatusUnderflow
	logger.Logf(tmr.instance, "timer", "underflow (reload %04x)", tmr.Reload)

	return []interrupts.ID{interrupts.TIMER0}
}
