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

package memory_test

import (
	"testing"

	"github.com/nexel24/nexel24/curated"
	"github.com/nexel24/nexel24/hardware/memory"
	"github.com/nexel24/nexel24/hardware/memory/memorymap"
	"github.com/nexel24/nexel24/test"
)

// records accesses made through the I/O handler interface.
type ioRecorder struct {
	regs   [16]uint8
	reads  []uint32
	writes []uint32
}

func (r *ioRecorder) Read(offset uint32) uint8 {
	r.reads = append(r.reads, offset)
	return r.regs[offset&0x0f] ^ 0xaa
}

func (r *ioRecorder) Write(offset uint32, data uint8) {
	r.writes = append(r.writes, offset)
	r.regs[offset&0x0f] = data
}

func TestOpenBus(t *testing.T) {
	mem := memory.NewMemory(nil)

	// gap between ExpandedRAM and IO
	mem.Write(0x050000, 0x12)
	test.Equate(t, mem.Read(0x050000), memory.OpenBus)

	// gap between CartSave and BIOS
	test.Equate(t, mem.Read(0xb00000), memory.OpenBus)
	test.Equate(t, mem.Peek(0xb00000), memory.OpenBus)
}

func TestReadWrite(t *testing.T) {
	mem := memory.NewMemory(nil)

	for _, a := range []uint32{0x000000, 0x00ffff, 0x010000, 0x200010, 0x28ffff, 0xa00000} {
		mem.Write(a, 0x5a)
		test.Equate(t, mem.Read(a), 0x5a)
	}
}

func TestReadOnly(t *testing.T) {
	mem := memory.NewMemory(nil)

	mem.Write(memorymap.OriginBIOS, 0x12)
	test.Equate(t, mem.Read(memorymap.OriginBIOS), 0x00)

	mem.Write(memorymap.OriginCartROM+0x100, 0x12)
	test.Equate(t, mem.Read(memorymap.OriginCartROM+0x100), 0x00)

	// poke bypasses the access policy
	mem.Poke(memorymap.OriginBIOS, 0x34)
	test.Equate(t, mem.Read(memorymap.OriginBIOS), 0x34)
}

func TestMultiByte(t *testing.T) {
	mem := memory.NewMemory(nil)

	mem.Write16(0x1000, 0x1234)
	test.Equate(t, mem.Read(0x1000), 0x34)
	test.Equate(t, mem.Read(0x1001), 0x12)
	test.Equate(t, mem.Read16(0x1000), 0x1234)

	mem.Write(0x1002, 0x56)
	test.Equate(t, mem.Read24(0x1000), 0x561234)
}

func TestAddressWrap(t *testing.T) {
	mem := memory.NewMemory(nil)

	test.DemandSuccess(t, mem.Load(memorymap.BIOS, make([]uint8, memorymap.BIOS.Size()-1)))
	mem.Poke(0xffffff, 0xcd)
	mem.Write(0x000000, 0xab)

	// the second byte of the read wraps around to address zero
	test.Equate(t, mem.Read16(0xffffff), 0xabcd)

	// address bits above 24 are ignored
	test.Equate(t, mem.Read(0x1000000), 0xab)
}

func TestLoad(t *testing.T) {
	mem := memory.NewMemory(nil)

	mem.Poke(memorymap.OriginBIOS+3, 0xee)
	test.DemandSuccess(t, mem.Load(memorymap.BIOS, []uint8{0x01, 0x02, 0x03}))
	test.Equate(t, mem.Read(memorymap.OriginBIOS), 0x01)
	test.Equate(t, mem.Read(memorymap.OriginBIOS+2), 0x03)

	// remainder of area is untouched
	test.Equate(t, mem.Read(memorymap.OriginBIOS+3), 0xee)

	// oversized image
	err := mem.Load(memorymap.BIOS, make([]uint8, memorymap.BIOS.Size()+1))
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, memory.SizeExceeded))
	test.Equate(t, mem.Read(memorymap.OriginBIOS), 0x01)

	err = mem.Load(memorymap.Undefined, []uint8{0x00})
	test.ExpectedSuccess(t, curated.Is(err, memory.UnknownArea))

	// values outside the area list
	err = mem.Load(memorymap.Area(42), []uint8{0x00})
	test.ExpectedSuccess(t, curated.Is(err, memory.UnknownArea))
	err = mem.Load(memorymap.Area(-1), []uint8{0x00})
	test.ExpectedSuccess(t, curated.Is(err, memory.UnknownArea))
}

func TestSaveClear(t *testing.T) {
	mem := memory.NewMemory(nil)

	mem.Write(memorymap.OriginCartSave+1, 0x99)
	sav := mem.Save(memorymap.CartSave)
	test.Equate(t, len(sav), memorymap.CartSave.Size())
	test.Equate(t, sav[1], 0x99)

	// save is a copy
	sav[1] = 0x00
	test.Equate(t, mem.Read(memorymap.OriginCartSave+1), 0x99)

	mem.Clear(memorymap.CartSave)
	test.Equate(t, mem.Read(memorymap.OriginCartSave+1), 0x00)

	test.Equate(t, mem.Save(memorymap.Undefined) == nil, true)
	test.Equate(t, mem.Save(memorymap.Area(42)) == nil, true)

	// no effect and no panic
	mem.Clear(memorymap.Area(42))
	mem.Clear(memorymap.Undefined)
}

func TestIOHandler(t *testing.T) {
	mem := memory.NewMemory(nil)
	rec := &ioRecorder{}

	test.DemandSuccess(t, mem.RegisterIOHandler("rec", 0x108000, 0x10800f, rec))

	mem.Write(0x108003, 0x11)
	test.Equate(t, len(rec.writes), 1)
	test.Equate(t, rec.writes[0], 0x03)

	test.Equate(t, mem.Read(0x108003), 0x11^0xaa)
	test.Equate(t, len(rec.reads), 1)

	// peek reads backing storage and does not call the handler
	test.Equate(t, mem.Peek(0x108003), 0x00)
	test.Equate(t, len(rec.reads), 1)

	// unclaimed parts of the I/O area behave as RAM
	mem.Write(0x108010, 0x77)
	test.Equate(t, mem.Read(0x108010), 0x77)
	test.Equate(t, len(rec.writes), 1)
}

func TestIOHandlerRegistration(t *testing.T) {
	mem := memory.NewMemory(nil)

	test.DemandSuccess(t, mem.RegisterIOHandler("a", 0x104000, 0x1040ff, &ioRecorder{}))
	test.DemandSuccess(t, mem.RegisterIOHandler("b", 0x100000, 0x103fff, &ioRecorder{}))

	err := mem.RegisterIOHandler("c", 0x1040f0, 0x104100, &ioRecorder{})
	test.ExpectedSuccess(t, curated.Is(err, memory.IOOverlap))

	err = mem.RegisterIOHandler("d", 0x0ffff0, 0x100010, &ioRecorder{})
	test.ExpectedSuccess(t, curated.Is(err, memory.IOOutOfRange))

	err = mem.RegisterIOHandler("e", 0x108010, 0x108000, &ioRecorder{})
	test.ExpectedSuccess(t, curated.Is(err, memory.IOOutOfRange))

	// adjacent ranges are allowed
	test.DemandSuccess(t, mem.RegisterIOHandler("f", 0x104100, 0x1041ff, &ioRecorder{}))

	// handlers are found regardless of registration order
	a := &ioRecorder{}
	b := &ioRecorder{}
	test.DemandSuccess(t, mem.RegisterIOHandler("g", 0x10c000, 0x10c0ff, a))
	test.DemandSuccess(t, mem.RegisterIOHandler("h", 0x10a000, 0x10a00f, b))
	mem.Write(0x10c001, 0x01)
	mem.Write(0x10a001, 0x01)
	mem.Write(0x10c002, 0x01)
	test.Equate(t, len(a.writes), 2)
	test.Equate(t, len(b.writes), 1)
}
