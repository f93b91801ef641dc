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

package hardware

import (
	"fmt"
	"strings"

	"github.com/nexel24/nexel24/hardware/coprocessors"
	"github.com/nexel24/nexel24/hardware/coprocessors/apu"
	"github.com/nexel24/nexel24/hardware/coprocessors/pad"
	"github.com/nexel24/nexel24/hardware/coprocessors/timer"
	"github.com/nexel24/nexel24/hardware/coprocessors/vdp"
	"github.com/nexel24/nexel24/hardware/coprocessors/vlu"
	"github.com/nexel24/nexel24/hardware/cpu"
	"github.com/nexel24/nexel24/hardware/instance"
	"github.com/nexel24/nexel24/hardware/interrupts"
	"github.com/nexel24/nexel24/hardware/memory"
	"github.com/nexel24/nexel24/hardware/memory/memorymap"
	"github.com/nexel24/nexel24/logger"
)

// Timing of the console.
const (
	CPUClockHz     = 18_432_000
	TargetFPS      = 60
	CyclesPerFrame = CPUClockHz / TargetFPS
)

// Console is the root of the emulation. It contains every part of the
// hardware.
type Console struct {
	Instance *instance.Instance

	Mem *memory.Memory
	CPU *cpu.CPU
	IC  *interrupts.Controller

	VDP   *vdp.VDP
	VLU   *vlu.VLU
	APU   *apu.APU
	Timer *timer.Timer
	Pad   *pad.Pad

	// every coprocessor in the order they are ticked
	coprocessors []coprocessors.Coprocessor

	// number of frames completed by RunFrame() since the last reset
	frameCount uint64
}

// NewConsole creates a new Console and everything associated with the
// hardware. The instance argument can be nil, in which case a new instance
// with default preferences is created.
//
// The console should be Reset() after the BIOS has been loaded.
func NewConsole(ins *instance.Instance) (*Console, error) {
	if ins == nil {
		var err error
		ins, err = instance.NewInstance(instance.Main, nil)
		if err != nil {
			return nil, err
		}
	}

	con := &Console{
		Instance: ins,
		Mem:      memory.NewMemory(ins),
		IC:       interrupts.NewController(),
	}

	con.CPU = cpu.NewCPU(ins, con.Mem, con.IC)
	con.CPU.AttachCoprocessorPort(con)

	con.VDP = vdp.NewVDP(ins, con.Mem)
	con.VLU = vlu.NewVLU(ins)
	con.APU = apu.NewAPU(ins)
	con.Timer = timer.NewTimer(ins)
	con.Pad = pad.NewPad(ins)

	con.coprocessors = []coprocessors.Coprocessor{
		con.VDP, con.VLU, con.APU, con.Timer, con.Pad,
	}

	for _, cop := range con.coprocessors {
		if err := coprocessors.Register(con.Mem, cop); err != nil {
			return nil, err
		}
	}

	return con, nil
}

func (con *Console) String() string {
	s := strings.Builder{}
	s.WriteString(con.CPU.String())
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("IRQ: %s", con.IC))
	for _, cop := range con.coprocessors {
		s.WriteString(fmt.Sprintf("\n%s: %s", cop.Label(), cop))
	}
	return s.String()
}

// Coprocessors returns the list of attached coprocessors.
func (con *Console) Coprocessors() []coprocessors.Coprocessor {
	return con.coprocessors
}

// Reset the console. The state of every component is reinitialised in place
// and pending interrupts are discarded. Memory contents are not changed.
func (con *Console) Reset() {
	con.IC.Reset()
	for _, cop := range con.coprocessors {
		cop.Reset()
	}
	con.CPU.Reset()
	con.frameCount = 0

	logger.Logf(con.Instance, "console", "reset (PC=%06x)", con.CPU.PC.Address())
}

// Load copies data into the memory area. The BIOS and cartridge ROM can only
// be written in this way. The console is not reset.
func (con *Console) Load(area memorymap.Area, data []uint8) error {
	if err := con.Mem.Load(area, data); err != nil {
		return err
	}
	logger.Logf(con.Instance, "console", "loaded %d bytes into %s", len(data), area)
	return nil
}

// RaiseInterrupt makes an interrupt pending. Invalid IDs are ignored.
func (con *Console) RaiseInterrupt(id interrupts.ID) {
	con.IC.Raise(id)
}

// Command implements the cpu.CoprocessorPort interface. The console has no
// devices that accept COP commands so they are only logged.
func (con *Console) Command(cmd uint8) {
	logger.Logf(con.Instance, "console", "COP command %02x at %06x", cmd, con.CPU.LastResult.Address)
}
