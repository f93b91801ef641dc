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

package scripting

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nexel24/nexel24/assembler"
	"github.com/nexel24/nexel24/curated"
	"github.com/nexel24/nexel24/digest"
	"github.com/nexel24/nexel24/hardware"
	"github.com/nexel24/nexel24/hardware/coprocessors/pad"
	"github.com/nexel24/nexel24/hardware/interrupts"
	"github.com/nexel24/nexel24/hardware/memory/memorymap"
	"github.com/nexel24/nexel24/logger"
)

// Sentinel error patterns.
const (
	ScriptError = "script: %v"
)

// Script is a Lua environment attached to a console.
type Script struct {
	con    *hardware.Console
	state  *lua.LState
	output io.Writer
	digest *digest.State
}

// NewScript is the preferred method of initialisation for the Script type.
// Output from the Lua print() function is sent to the output, which can be
// nil. The Close() function should be called when the script is no longer
// required.
func NewScript(con *hardware.Console, output io.Writer) *Script {
	if output == nil {
		output = io.Discard
	}

	scr := &Script{
		con:    con,
		state:  lua.NewState(),
		output: output,
		digest: digest.NewState(con),
	}

	for name, f := range map[string]lua.LGFunction{
		"print":    scr.print,
		"load":     scr.load,
		"reset":    scr.reset,
		"step":     scr.step,
		"frame":    scr.frame,
		"peek":     scr.peek,
		"poke":     scr.poke,
		"reg":      scr.reg,
		"raise":    scr.raise,
		"press":    scr.press,
		"release":  scr.release,
		"halted":   scr.halted,
		"cycles":   scr.cycles,
		"assemble": scr.assemble,
		"digest":   scr.hash,
	} {
		scr.state.SetGlobal(name, scr.state.NewFunction(f))
	}

	return scr
}

// Close the Lua environment.
func (scr *Script) Close() {
	scr.state.Close()
}

// RunString runs the Lua source. The script is stopped if the context is
// cancelled.
func (scr *Script) RunString(ctx context.Context, source string) error {
	scr.state.SetContext(ctx)
	defer scr.state.RemoveContext()

	if err := scr.state.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunFile runs the Lua script in the named file.
func (scr *Script) RunFile(ctx context.Context, path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return curated.Errorf(ScriptError, err)
	}
	logger.Logf(scr.con.Instance, "script", "running %s", path)
	return scr.RunString(ctx, string(source))
}

// context returns the context of the running script. The context is never
// nil while a script is running.
func (scr *Script) context() context.Context {
	if ctx := scr.state.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	return 0
}

func (scr *Script) load(L *lua.LState) int {
	name := L.CheckString(1)
	path := L.CheckString(2)

	area := memorymap.AreaFromString(name)
	if area == memorymap.Undefined {
		L.ArgError(1, fmt.Sprintf("unknown memory area %s", name))
		return 0
	}

	data, err := os.ReadFile(path)
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}

	if err := scr.con.Load(area, data); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) reset(L *lua.LState) int {
	scr.con.Reset()
	return 0
}

func (scr *Script) step(L *lua.LState) int {
	n := L.OptInt(1, 1)
	cycles := 0
	for i := 0; i < n; i++ {
		c := scr.con.Step()
		if c == 0 {
			break
		}
		cycles += c
	}
	L.Push(lua.LNumber(cycles))
	return 1
}

func (scr *Script) frame(L *lua.LState) int {
	n := L.OptInt(1, 1)
	if err := scr.con.RunFrames(scr.context(), n); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) address(L *lua.LState, n int) uint32 {
	v := L.CheckInt(n)
	if v < 0 || uint32(v) > memorymap.AddressMask {
		L.ArgError(n, fmt.Sprintf("address out of range (%#x)", v))
	}
	return uint32(v)
}

func (scr *Script) peek(L *lua.LState) int {
	L.Push(lua.LNumber(scr.con.Mem.Peek(scr.address(L, 1))))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	address := scr.address(L, 1)
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, fmt.Sprintf("value out of range (%#x)", v))
		return 0
	}
	scr.con.Mem.Poke(address, uint8(v))
	return 0
}

func (scr *Script) reg(L *lua.LState) int {
	name := strings.ToUpper(L.CheckString(1))
	regs := scr.con.CPU.Registers()

	var v uint32
	switch name {
	case "PC":
		v = regs.PC
	case "A":
		v = uint32(regs.A)
	case "X":
		v = uint32(regs.X)
	case "Y":
		v = uint32(regs.Y)
	case "SP":
		v = uint32(regs.SP)
	case "SR":
		v = uint32(regs.Status.Value())
	default:
		var r int
		if _, err := fmt.Sscanf(name, "R%d", &r); err != nil || r < 0 || r >= len(regs.R) {
			L.ArgError(1, fmt.Sprintf("unknown register %s", name))
			return 0
		}
		v = uint32(regs.R[r])
	}

	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) raise(L *lua.LState) int {
	name := L.CheckString(1)
	id, ok := interrupts.IDFromString(name)
	if !ok {
		L.ArgError(1, fmt.Sprintf("unknown interrupt %s", name))
		return 0
	}
	scr.con.RaiseInterrupt(id)
	return 0
}

func (scr *Script) buttons(L *lua.LState) pad.Buttons {
	s := L.CheckString(1)
	b, ok := pad.ButtonsFromString(s)
	if !ok {
		L.ArgError(1, fmt.Sprintf("unknown buttons %s", s))
	}
	return b
}

func (scr *Script) press(L *lua.LState) int {
	scr.con.Pad.Press(scr.buttons(L))
	return 0
}

func (scr *Script) release(L *lua.LState) int {
	scr.con.Pad.Release(scr.buttons(L))
	return 0
}

func (scr *Script) halted(L *lua.LState) int {
	L.Push(lua.LBool(scr.con.CPU.Halted()))
	return 1
}

func (scr *Script) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(scr.con.CPU.Cycles()))
	return 1
}

func (scr *Script) assemble(L *lua.LState) int {
	source := L.CheckString(1)
	origin := scr.address(L, 2)

	prg, err := assembler.Assemble(source, origin)
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	prg.Poke(scr.con.Mem)

	labels := L.NewTable()
	for n, a := range prg.Labels {
		labels.RawSetString(n, lua.LNumber(a))
	}
	L.Push(labels)
	return 1
}

func (scr *Script) hash(L *lua.LState) int {
	if L.OptBool(1, false) {
		scr.digest.ResetDigest()
	}
	L.Push(lua.LString(scr.digest.Update()))
	return 1
}
