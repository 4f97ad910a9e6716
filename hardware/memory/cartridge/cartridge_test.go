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

package cartridge_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/GaryFrazier/rustyNES/cartridgeloader"
	"github.com/GaryFrazier/rustyNES/curated"
	"github.com/GaryFrazier/rustyNES/hardware/memory"
	"github.com/GaryFrazier/rustyNES/hardware/memory/cartridge"
	"github.com/GaryFrazier/rustyNES/hardware/ppu"
	"github.com/GaryFrazier/rustyNES/logger"
	"github.com/GaryFrazier/rustyNES/test"
)

// makeROM creates an iNES image. every byte of a PRG bank is the bank number
// plus one and every byte of a CHR bank is 0x80 plus the bank number
func makeROM(prg int, chr int, flags6 uint8, flags7 uint8) []uint8 {
	data := []uint8{'N', 'E', 'S', 0x1a, uint8(prg), uint8(chr), flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
	if flags6&0x04 == 0x04 {
		data = append(data, make([]uint8, cartridge.TrainerSize)...)
	}
	for b := 0; b < prg; b++ {
		for i := 0; i < cartridge.PRGBankSize; i++ {
			data = append(data, uint8(b+1))
		}
	}
	for b := 0; b < chr; b++ {
		for i := 0; i < cartridge.CHRBankSize; i++ {
			data = append(data, uint8(0x80+b))
		}
	}
	return data
}

func TestHeader(t *testing.T) {
	h, err := cartridge.ParseHeader(makeROM(2, 1, 0x01, 0x00))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.PRGBanks, 2)
	test.ExpectEquality(t, h.CHRBanks, 1)
	test.ExpectEquality(t, h.Mapper, 0)
	test.ExpectEquality(t, h.Mirroring, ppu.Vertical)
	test.ExpectEquality(t, h.TV, cartridge.NTSC)
	test.ExpectEquality(t, h.Size(), 16+2*0x4000+0x2000)

	// mapper number is split over flags 6 and 7
	h, err = cartridge.ParseHeader(makeROM(1, 1, 0x1a, 0x48))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Mapper, 0x41)
	test.ExpectEquality(t, h.Mirroring, ppu.FourScreen)
	test.ExpectSuccess(t, h.Battery)
	test.ExpectFailure(t, h.Trainer)
	test.ExpectSuccess(t, h.NES20)
	test.ExpectEquality(t, h.Size(), 16+0x4000+0x2000)

	// trainer adds to the size
	h, err = cartridge.ParseHeader(makeROM(1, 0, 0x04, 0x00))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, h.Trainer)
	test.ExpectEquality(t, h.Mirroring, ppu.Horizontal)
	test.ExpectEquality(t, h.Size(), 16+512+0x4000)
}

func TestBadData(t *testing.T) {
	_, err := cartridge.Parse([]uint8{'N', 'E', 'X', 0x1a, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	test.ExpectSuccess(t, curated.Is(err, cartridge.BadMagic))

	_, err = cartridge.Parse([]uint8{'N', 'E', 'S'})
	test.ExpectSuccess(t, curated.Is(err, cartridge.Truncated))

	data := makeROM(2, 1, 0x00, 0x00)
	_, err = cartridge.Parse(data[:len(data)-1])
	test.ExpectSuccess(t, curated.Is(err, cartridge.Truncated))

	_, err = cartridge.Parse(makeROM(1, 1, 0x10, 0x00))
	test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedMapper))
}

func TestParse(t *testing.T) {
	cart, err := cartridge.Parse(makeROM(1, 1, 0x04, 0x00))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(cart.Trainer), 512)
	test.ExpectEquality(t, len(cart.PRG), 0x4000)
	test.ExpectEquality(t, len(cart.CHR), 0x2000)
	test.ExpectEquality(t, cart.PRG[0], 0x01)
	test.ExpectEquality(t, cart.CHR[0], 0x80)
	test.ExpectEquality(t, cart.MapperID(), "NROM")
}

func TestNROM(t *testing.T) {
	mem := memory.NewMemory(logger.Allow)
	p := ppu.NewPPU(logger.Allow)

	// one PRG bank is mirrored
	cart, err := cartridge.Parse(makeROM(1, 1, 0x01, 0x00))
	test.DemandSuccess(t, err)
	cart.Initialise(mem, p)
	test.ExpectEquality(t, mem.Peek(0x8000), 0x01)
	test.ExpectEquality(t, mem.Peek(0xbfff), 0x01)
	test.ExpectEquality(t, mem.Peek(0xc000), 0x01)
	test.ExpectEquality(t, mem.Peek(0xffff), 0x01)
	test.ExpectEquality(t, p.Peek(0x0000), 0x80)
	test.ExpectEquality(t, p.Peek(0x1fff), 0x80)
	test.ExpectEquality(t, p.Mirroring(), ppu.Vertical)

	// two PRG banks are contiguous
	mem = memory.NewMemory(logger.Allow)
	cart, err = cartridge.Parse(makeROM(2, 1, 0x00, 0x00))
	test.DemandSuccess(t, err)
	cart.Initialise(mem, p)
	test.ExpectEquality(t, mem.Peek(0x8000), 0x01)
	test.ExpectEquality(t, mem.Peek(0xc000), 0x02)
	test.ExpectEquality(t, p.Mirroring(), ppu.Horizontal)
}

func TestNewCartridge(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "nrom.nes")
	test.DemandSuccess(t, os.WriteFile(fn, makeROM(1, 1, 0x00, 0x00), 0o644))

	cl := cartridgeloader.NewLoader(fn)
	cart, err := cartridge.NewCartridge(&cl)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.Filename, fn)
	test.ExpectEquality(t, cart.Hash, cl.Hash)

	fn = filepath.Join(t.TempDir(), "bad.nes")
	test.DemandSuccess(t, os.WriteFile(fn, []uint8("not a cartridge file"), 0o644))
	cl = cartridgeloader.NewLoader(fn)
	_, err = cartridge.NewCartridge(&cl)
	test.ExpectSuccess(t, curated.Has(err, cartridge.BadMagic))
}
