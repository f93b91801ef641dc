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

// Package test contains helper functions for testing the registers package
// and packages that use it.
package test

import (
	"testing"

	"github.com/nexel24/nexel24/hardware/cpu/registers"
)

// EquateRegisters is used to test equality between registers and an expected
// value. The expected value can be an integer or, for the status register, a
// string as returned by StatusRegister.String().
func EquateRegisters(t *testing.T, value, expectedValue any) {
	t.Helper()

	switch v := value.(type) {
	default:
		t.Fatalf("unhandled type for EquateRegisters() (%T)", v)

	case registers.Register:
		ev, ok := expectedValue.(int)
		if !ok {
			t.Fatalf("expected value for Register must be int (%T)", expectedValue)
		}
		if int(v.Value()) != ev {
			t.Errorf("%s register failed (%04x - wanted %04x)", v.Label(), v.Value(), ev)
		}

	case registers.ProgramCounter:
		ev, ok := expectedValue.(int)
		if !ok {
			t.Fatalf("expected value for ProgramCounter must be int (%T)", expectedValue)
		}
		if int(v.Address()) != ev {
			t.Errorf("program counter failed (%06x - wanted %06x)", v.Address(), ev)
		}

	case registers.StatusRegister:
		ev, ok := expectedValue.(string)
		if !ok {
			t.Fatalf("expected value for StatusRegister must be string (%T)", expectedValue)
		}
		if v.String() != ev {
			t.Errorf("status register failed (%s - wanted %s)", v, ev)
		}
	}
}
