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

package memorymap_test

import (
	"testing"

	"github.com/GaryFrazier/rustyNES/hardware/memory/memorymap"
	"github.com/GaryFrazier/rustyNES/test"
)

func TestRAMMirrors(t *testing.T) {
	for _, a := range []uint16{0x0000, 0x0800, 0x1000, 0x1800} {
		ma, area := memorymap.MapAddress(a + 0x0123)
		test.ExpectEquality(t, ma, 0x0123, a)
		test.ExpectEquality(t, area, memorymap.RAM, a)
	}

	ma, _ := memorymap.MapAddress(0x1fff)
	test.ExpectEquality(t, ma, 0x07ff)
}

func TestPPUMirrors(t *testing.T) {
	ma, area := memorymap.MapAddress(0x2002)
	test.ExpectEquality(t, ma, 0x2002)
	test.ExpectEquality(t, area, memorymap.PPU)

	ma, area = memorymap.MapAddress(0x3ffe)
	test.ExpectEquality(t, ma, 0x2006)
	test.ExpectEquality(t, area, memorymap.PPU)

	ma, _ = memorymap.MapAddress(0x2008)
	test.ExpectEquality(t, ma, 0x2000)

	ma, _ = memorymap.MapAddress(0x3456)
	test.ExpectEquality(t, ma, 0x2006)
}

func TestUnmirrored(t *testing.T) {
	type grid struct {
		address uint16
		area    memorymap.Area
	}

	for _, g := range []grid{
		{0x4000, memorymap.APU},
		{0x4014, memorymap.APU},
		{0x401f, memorymap.APU},
		{0x4020, memorymap.Expansion},
		{0x6000, memorymap.SRAM},
		{0x7fff, memorymap.SRAM},
		{0x8000, memorymap.PRG},
		{0xfffc, memorymap.PRG},
		{0xffff, memorymap.PRG},
	} {
		ma, area := memorymap.MapAddress(g.address)
		test.ExpectEquality(t, ma, g.address, g.address)
		test.ExpectEquality(t, area, g.area, g.address)
	}
}

// mapping must be idempotent for every address
func TestIdempotence(t *testing.T) {
	for a := 0; a <= 0xffff; a++ {
		ma, area := memorymap.MapAddress(uint16(a))
		mb, areb := memorymap.MapAddress(ma)
		if ma != mb || area != areb {
			t.Fatalf("mapping of %#04x is not idempotent", a)
		}
	}
}
