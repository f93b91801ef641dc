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

// Package preferences collates the preference values used by the hardware
// emulation.
package preferences

import (
	"github.com/nexel24/nexel24/prefs"
)

// Default values for the preferences.
const (
	DefaultCyclesPerFrame = 307200
	DefaultFrameRate      = 60
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the number of CPU cycles in each call to Console.RunFrame()
	CyclesPerFrame prefs.Int

	// the number of frames per second the front end should aim for. the
	// console itself never consults wall time
	FrameRate prefs.Int

	// whether the emulation is allowed to add entries to the central log
	Logging prefs.Bool

	// log reads and writes to the I/O area that have no registered handler
	LogUnhandledIO prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If path is empty then the preferences are not associated
// with a file on disk and the default values are used.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	if path == "" {
		return p, nil
	}

	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("emulation.cyclesPerFrame", &p.CyclesPerFrame)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("emulation.frameRate", &p.FrameRate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("emulation.logging", &p.Logging)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.bus.logUnhandledIO", &p.LogUnhandledIO)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.CyclesPerFrame.Set(DefaultCyclesPerFrame)
	_ = p.FrameRate.Set(DefaultFrameRate)
	_ = p.Logging.Set(true)
	_ = p.LogUnhandledIO.Set(false)
}

// Load hardware preferences from disk. Does nothing if the preferences are
// not associated with a file.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save current hardware preferences to disk. Does nothing if the preferences
// are not associated with a file.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
