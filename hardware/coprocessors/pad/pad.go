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

// Package pad implements the game pad interface. The front end (or a script)
// presses and releases buttons with the Press() and Release() functions. A
// change in the button state is latched in the change register and raises
// the PAD_EVENT interrupt on the next tick.
//
// Register map, relative to the origin of the pad interface:
//
//	0x00	button state (low byte)
//	0x01	button state (high byte)
//	0x02	changed buttons (low byte). write 1 to clear
//	0x03	changed buttons (high byte). write 1 to clear
//
// A set bit in the button state means the button is pressed.
package pad

import (
	"fmt"
	"strings"

	"github.com/nexel24/nexel24/hardware/instance"
	"github.com/nexel24/nexel24/hardware/interrupts"
	"github.com/nexel24/nexel24/logger"
)

// Address range of the pad registers.
const (
	Origin = uint32(0x10a000)
	Memtop = uint32(0x10a00f)
)

// Register offsets.
const (
	RegButtonsLo = 0x00
	RegButtonsHi = 0x01
	RegChangedLo = 0x02
	RegChangedHi = 0x03
)

// Buttons is a bit field of button values.
type Buttons uint16

// List of button values.
const (
	Up Buttons = 1 << iota
	Down
	Left
	Right
	ButtonA
	ButtonB
	ButtonC
	ButtonX
	ButtonY
	ButtonZ
	ShoulderL
	ShoulderR
	Start
	Select
)

var buttonNames = []struct {
	b    Buttons
	name string
}{
	{Up, "UP"}, {Down, "DOWN"}, {Left, "LEFT"}, {Right, "RIGHT"},
	{ButtonA, "A"}, {ButtonB, "B"}, {ButtonC, "C"},
	{ButtonX, "X"}, {ButtonY, "Y"}, {ButtonZ, "Z"},
	{ShoulderL, "L"}, {ShoulderR, "R"},
	{Start, "START"}, {Select, "SELECT"},
}

func (b Buttons) String() string {
	var s []string
	for _, n := range buttonNames {
		if b&n.b == n.b {
			s = append(s, n.name)
		}
	}
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, "+")
}

// ButtonsFromString converts a list of button names separated by '+' into a
// Buttons value. Case insensitive.
func ButtonsFromString(s string) (Buttons, bool) {
	var b Buttons
	for _, f := range strings.Split(s, "+") {
		f = strings.TrimSpace(f)
		found := false
		for _, n := range buttonNames {
			if strings.EqualFold(n.name, f) {
				b |= n.b
				found = true
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return b, true
}

// Pad implements the game pad coprocessor. Press() and Release() are not safe
// to call concurrently with the emulation.
type Pad struct {
	instance *instance.Instance

	state   Buttons
	changed Buttons

	// a change has happened since the last tick
	event bool

	scratch [16]uint8
}

// NewPad is the preferred method of initialisation for the Pad type.
func NewPad(instance *instance.Instance) *Pad {
	return &Pad{instance: instance}
}

// Label implements the coprocessors.Coprocessor interface.
func (pd *Pad) Label() string {
	return "PAD"
}

// Origin implements the coprocessors.Coprocessor interface.
func (pd *Pad) Origin() uint32 {
	return Origin
}

// Memtop implements the coprocessors.Coprocessor interface.
func (pd *Pad) Memtop() uint32 {
	return Memtop
}

func (pd *Pad) String() string {
	return fmt.Sprintf("pressed=%s changed=%s", pd.state, pd.changed)
}

// Reset implements the coprocessors.Coprocessor interface.
func (pd *Pad) Reset() {
	pd.state = 0
	pd.changed = 0
	pd.event = false
	clear(pd.scratch[:])
}

// State returns the buttons currently pressed.
func (pd *Pad) State() Buttons {
	return pd.state
}

// Press the buttons. Buttons that are already pressed are unaffected.
func (pd *Pad) Press(buttons Buttons) {
	pd.update(pd.state | buttons)
}

// Release the buttons. Buttons that are not pressed are unaffected.
func (pd *Pad) Release(buttons Buttons) {
	pd.update(pd.state &^ buttons)
}

func (pd *Pad) update(state Buttons) {
	diff := pd.state ^ state
	if diff == 0 {
		return
	}
	pd.state = state
	pd.changed |= diff
	pd.event = true
	logger.Logf(pd.instance, "pad", "%s", pd)
}

// Read implements the bus.IOHandler interface.
func (pd *Pad) Read(offset uint32) uint8 {
	switch offset {
	case RegButtonsLo:
		return uint8(pd.state)
	case RegButtonsHi:
		return uint8(pd.state >> 8)
	case RegChangedLo:
		return uint8(pd.changed)
	case RegChangedHi:
		return uint8(pd.changed >> 8)
	}
	return pd.scratch[offset&0x0f]
}

// Write implements the bus.IOHandler interface. The button state cannot be
// written.
func (pd *Pad) Write(offset uint32, data uint8) {
	switch offset {
	case RegButtonsLo, RegButtonsHi:
	case RegChangedLo:
		pd.changed &^= Buttons(data)
	case RegChangedHi:
		pd.changed &^= Buttons(data) << 8
	default:
		pd.scratch[offset&0x0f] = data
	}
}

// Tick implements the coprocessors.Coprocessor interface.
func (pd *Pad) Tick(_ int) []interrupts.ID {
	if !pd.event {
		return nil
	}
	pd.event = false
	return []interrupts.ID{interrupts.PAD_EVENT}
}
