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

package test

import (
	"fmt"
	"testing"
)

// integer returns the decimal representation of any integer type. integers of
// different types are equal if their decimal representations are equal.
func integer(v any) (string, bool) {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v), true
	}
	return "", false
}

// Equate is used to test equality between one value and another. Generally,
// both values must be of the same type but integer types may be compared with
// one another. For example, it is convenient to compare a uint16 register
// value with an untyped integer constant.
//
// If a comparison is required for which the function does not support then
// the test is failed with t.Fatalf().
func Equate(t *testing.T, value, expectedValue any) {
	t.Helper()

	if v, ok := integer(value); ok {
		ev, ok := integer(expectedValue)
		if !ok {
			t.Fatalf("values for Equate() are not compatible (%T and %T)", value, expectedValue)
			return
		}
		if v != ev {
			t.Errorf("equation of type %T failed (%d - wanted %d)", value, value, expectedValue)
		}
		return
	}

	switch v := value.(type) {
	default:
		t.Fatalf("unhandled type for Equate() function (%T)", v)

	case nil:
		if expectedValue != nil {
			t.Errorf("equation of type %T failed (%v - wanted nil)", v, v)
		}

	case string:
		switch ev := expectedValue.(type) {
		case string:
			if v != ev {
				t.Errorf("equation of type %T failed (%s - wanted %s)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}

	case bool:
		switch ev := expectedValue.(type) {
		case bool:
			if v != ev {
				t.Errorf("equation of type %T failed (%v - wanted %v)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}
	}
}
