// This file is part of rustyNES.
//
// rustyNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rustyNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rustyNES.  If not, see <https://www.gnu.org/licenses/>.

package memory_test

import (
	"testing"

	"github.com/GaryFrazier/rustyNES/hardware/memory"
	"github.com/GaryFrazier/rustyNES/hardware/ppu"
	"github.com/GaryFrazier/rustyNES/logger"
	"github.com/GaryFrazier/rustyNES/test"
)

type mockStaller struct {
	stalls int
}

func (s *mockStaller) StallDMA() {
	s.stalls++
}

func TestRAMMirroring(t *testing.T) {
	mem := memory.NewMemory(logger.Allow)

	mem.Write(0x0001, 0xaa)
	test.ExpectEquality(t, mem.Read(0x0801), 0xaa)
	test.ExpectEquality(t, mem.Read(0x1001), 0xaa)
	test.ExpectEquality(t, mem.Read(0x1801), 0xaa)

	mem.Write(0x1fff, 0xbb)
	test.ExpectEquality(t, mem.Read(0x07ff), 0xbb)
	test.ExpectEquality(t, mem.LastAccessAddress, 0x07ff)
}

func TestReadWord(t *testing.T) {
	mem := memory.NewMemory(logger.Allow)
	mem.WriteBlock(0xfffc, []uint8{0x00, 0xc0})
	test.ExpectEquality(t, mem.ReadWord(0xfffc), 0xc000)

	// each byte of the word is mapped independently
	mem.Write(0x07ff, 0x34)
	mem.Write(0x0000, 0x12)
	test.ExpectEquality(t, mem.ReadWord(0x07ff), 0x1234)

	// the top of the RAM mirrors is followed by the PPU registers
	mem.Write(0x2000, 0x56)
	test.ExpectEquality(t, mem.ReadWord(0x1fff), 0x5634)
}

func TestNoPPU(t *testing.T) {
	mem := memory.NewMemory(logger.Allow)

	// without a PPU attached the registers behave like RAM
	mem.Write(0x2002, 0x80)
	test.ExpectEquality(t, mem.Read(0x3ffa), 0x80)
}

func TestPPUBridge(t *testing.T) {
	mem := memory.NewMemory(logger.Allow)
	p := ppu.NewPPU(logger.Allow)
	mem.AttachPPU(p)

	// write through a mirror reaches the PPU and the underlying array
	mem.Write(0x2008, 0x80)
	test.ExpectEquality(t, p.Ctrl, 0x80)
	test.ExpectEquality(t, mem.Peek(0x2000), 0x80)

	// two writes to PPUADDR through different mirrors
	mem.Write(0x2006, 0x21)
	mem.Write(0x3ffe, 0x00)
	test.ExpectEquality(t, p.VRAMAddress(), 0x2100)

	// PPUDATA write then buffered read
	mem.Write(0x2007, 0x42)
	mem.Write(0x2006, 0x21)
	mem.Write(0x2006, 0x00)
	mem.Read(0x2007)
	test.ExpectEquality(t, mem.Read(0x2007), 0x42)
}

func TestPPUStatus(t *testing.T) {
	mem := memory.NewMemory(logger.Allow)
	p := ppu.NewPPU(logger.Allow)
	mem.AttachPPU(p)

	for p.Scanline != 242 {
		p.Step()
	}
	test.ExpectSuccess(t, p.VBlank())

	// peek has no side effects
	test.ExpectEquality(t, mem.Peek(0x2002)&0x80, 0x80)
	test.ExpectSuccess(t, p.VBlank())

	test.ExpectEquality(t, mem.Read(0x2002)&0x80, 0x80)
	test.ExpectFailure(t, p.VBlank())
	test.ExpectEquality(t, mem.Read(0x2002)&0x80, 0x00)
}

func TestOAMDMA(t *testing.T) {
	mem := memory.NewMemory(logger.Allow)
	p := ppu.NewPPU(logger.Allow)
	s := &mockStaller{}
	mem.AttachPPU(p)
	mem.AttachStaller(s)

	for i := 0; i < 256; i++ {
		mem.Write(0x0200+uint16(i), uint8(i))
	}

	mem.Write(0x4014, 0x02)
	test.ExpectEquality(t, s.stalls, 1)
	test.ExpectEquality(t, p.OAM[0x00], 0x00)
	test.ExpectEquality(t, p.OAM[0x80], 0x80)
	test.ExpectEquality(t, p.OAM[0xff], 0xff)

	// transfer begins at the current OAM address
	mem.Write(0x2003, 0x10)
	mem.Write(0x4014, 0x02)
	test.ExpectEquality(t, s.stalls, 2)
	test.ExpectEquality(t, p.OAM[0x10], 0x00)
	test.ExpectEquality(t, p.OAM[0x0f], 0xff)
}

func TestPoke(t *testing.T) {
	mem := memory.NewMemory(logger.Allow)
	p := ppu.NewPPU(logger.Allow)
	mem.AttachPPU(p)

	// poking a PPU register does not reach the PPU
	mem.Poke(0x2000, 0x80)
	test.ExpectEquality(t, p.Ctrl, 0x00)

	mem.Poke(0x8000, 0xea)
	test.ExpectEquality(t, mem.Peek(0x8000), 0xea)
	test.ExpectEquality(t, mem.Read(0x8000), 0xea)
}
