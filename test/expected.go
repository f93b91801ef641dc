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

import "testing"

// isSuccess interprets v as a success or failure. supported types are:
//
//	bool -> bool == true
//	error -> error == nil
//	nil -> success
func isSuccess(t *testing.T, v any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
	}

	return false
}

// ExpectedFailure tests argument v for a failure condition suitable for its
// type. A nil value is not a failure.
func ExpectedFailure(t *testing.T, v any) bool {
	t.Helper()

	if v == nil {
		t.Errorf("expected failure (nil)")
		return false
	}

	if isSuccess(t, v) {
		t.Errorf("expected failure (%T)", v)
		return false
	}

	return true
}

// ExpectedSuccess tests argument v for a success condition suitable for its
// type.
func ExpectedSuccess(t *testing.T, v any) bool {
	t.Helper()

	if !isSuccess(t, v) {
		t.Errorf("expected success (%T: %v)", v, v)
		return false
	}

	return true
}
