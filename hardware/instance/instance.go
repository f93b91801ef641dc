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

// Package instance defines those parts of the emulation that might change from
// instance to instance of the Console type, but is not actually the Console
// itself.
package instance

import (
	"github.com/nexel24/nexel24/hardware/preferences"
)

// Label indicates the context of the instance.
type Label string

// List of valid Label values.
const (
	Main   Label = ""
	Script Label = "script"
	Test   Label = "test"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the Console type.
type Instance struct {
	Label Label

	// the preferences of the running instance. the preferences can be shared
	// with other running instances of the emulation
	Prefs *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// The prefs argument can be nil in which case a new Preferences instance with
// default values is created. Providing a non-nil value allows the preferences
// of more than one instance to be synchronised.
func NewInstance(label Label, prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{
		Label: label,
	}

	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, err
		}
	}

	ins.Prefs = prefs

	return ins, nil
}

// AllowLogging implements the logger.Permission interface. A nil instance
// always allows logging.
func (ins *Instance) AllowLogging() bool {
	if ins == nil || ins.Prefs == nil {
		return true
	}
	return ins.Prefs.Logging.Get().(bool)
}

// LogUnhandledIO returns true if accesses to the I/O area without a handler
// should be logged. A nil instance never logs them.
func (ins *Instance) LogUnhandledIO() bool {
	if ins == nil || ins.Prefs == nil {
		return false
	}
	return ins.Prefs.LogUnhandledIO.Get().(bool)
}
