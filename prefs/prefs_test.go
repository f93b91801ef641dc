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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nexel24/nexel24/curated"
	"github.com/nexel24/nexel24/prefs"
	"github.com/nexel24/nexel24/test"
)

func TestTypes(t *testing.T) {
	var b prefs.Bool
	test.ExpectedSuccess(t, b.Set("TRUE"))
	test.Equate(t, b.Get().(bool), true)
	test.ExpectedSuccess(t, b.Set("nope"))
	test.Equate(t, b.Get().(bool), false)
	test.ExpectedFailure(t, b.Set(10))

	var i prefs.Int
	test.ExpectedSuccess(t, i.Set("0x4b000"))
	test.Equate(t, i.Get().(int), 307200)
	err := i.Set("foo")
	test.ExpectedSuccess(t, curated.Is(err, prefs.CannotConvert))

	var s prefs.String
	test.ExpectedSuccess(t, s.Set("localhost:12600"))
	test.Equate(t, s.String(), "localhost:12600")
}

func TestHooks(t *testing.T) {
	var i prefs.Int
	var seen int
	i.SetHookPost(func(v prefs.Value) error {
		seen = v.(int)
		return nil
	})
	test.ExpectedSuccess(t, i.Set(100))
	test.Equate(t, seen, 100)
}

func TestDisk(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	var cycles prefs.Int
	var logging prefs.Bool

	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dsk.Add("emulation.cyclesPerFrame", &cycles))
	test.DemandSuccess(t, dsk.Add("emulation.logging", &logging))
	test.ExpectedFailure(t, dsk.Add("emulation.logging", &logging))

	// missing file is not an error
	test.DemandSuccess(t, dsk.Load())

	cycles.Set(1000)
	logging.Set(true)
	test.DemandSuccess(t, dsk.Save())

	// a second disk instance sharing the file
	var other prefs.String
	dsk2, _ := prefs.NewDisk(pth)
	dsk2.Add("other.value", &other)
	other.Set("hello")
	test.DemandSuccess(t, dsk2.Save())

	cycles.Set(0)
	logging.Set(false)
	test.DemandSuccess(t, dsk.Load())
	test.Equate(t, cycles.Get().(int), 1000)
	test.Equate(t, logging.Get().(bool), true)

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.Equate(t, string(data), prefs.WarningBoilerPlate+"\n"+
		"emulation.cyclesPerFrame :: 1000\n"+
		"emulation.logging :: true\n"+
		"other.value :: hello\n")
}

func TestDiskCommandLineOverride(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	var cycles prefs.Int
	dsk, _ := prefs.NewDisk(pth)
	dsk.Add("emulation.cyclesPerFrame", &cycles)

	prefs.PushCommandLineStack("emulation.cyclesPerFrame::500")
	test.DemandSuccess(t, dsk.Load())
	test.Equate(t, cycles.Get().(int), 500)

	// the value was consumed by the Load()
	test.Equate(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineStackValues(t *testing.T) {
	test.Equate(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("foo::bar")
	test.Equate(t, prefs.PopCommandLineStack(), "foo::bar")

	prefs.PushCommandLineStack("   foo:: bar ")
	test.Equate(t, prefs.PopCommandLineStack(), "foo::bar")

	// remaining string is sorted
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.Equate(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	prefs.PushCommandLineStack("foo_bar")
	test.Equate(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("foo::bar;baz_qux")
	ok, _ := prefs.GetCommandLinePref("baz")
	test.ExpectedFailure(t, ok)
	ok, v := prefs.GetCommandLinePref("foo")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, v, "bar")
	test.Equate(t, prefs.PopCommandLineStack(), "")
}
