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

package test_test

import (
	"errors"
	"testing"

	"github.com/nexel24/nexel24/test"
)

func TestExpected(t *testing.T) {
	var err error
	test.ExpectedSuccess(t, true)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, nil)
	test.ExpectedFailure(t, false)
	test.ExpectedFailure(t, errors.New("test"))
}

func TestEquateMixedIntegers(t *testing.T) {
	test.Equate(t, uint16(0x1234), 0x1234)
	test.Equate(t, uint32(0xff0003), 0xff0003)
	test.Equate(t, uint64(307200), 307200)
	test.Equate(t, uint8(0xff), uint16(0xff))
	test.Equate(t, "abc", "abc")
	test.Equate(t, true, true)
}

func TestDemand(t *testing.T) {
	test.DemandEquality(t, 10, 10)
	test.DemandEquality(t, "foo", "foo", "tagged")
	test.DemandSuccess(t, true)
	test.DemandFailure(t, errors.New("test"))
}

func TestCompareWriter(t *testing.T) {
	tw := &test.CompareWriter{}
	tw.Write([]byte("hello "))
	tw.Write([]byte("world"))
	test.Equate(t, tw.Compare("hello world"), true)
	tw.Clear()
	test.Equate(t, tw.Compare(""), true)
}
