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

package symbols_test

import (
	"strings"
	"testing"

	"github.com/GaryFrazier/rustyNES/disassembly/symbols"
	"github.com/GaryFrazier/rustyNES/test"
)

type vectors [0x10000]uint8

func (v *vectors) Peek(address uint16) uint8 {
	return v[address]
}

func (v *vectors) Poke(address uint16, value uint8) {
	v[address] = value
}

func TestRegisterSymbols(t *testing.T) {
	sym := symbols.NewSymbols()

	s, ok := sym.GetWriteSymbol(0x2000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "PPUCTRL")

	// mirrors of the PPU registers
	s, ok = sym.GetWriteSymbol(0x3ff8)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "PPUCTRL")

	s, ok = sym.GetReadSymbol(0x200a)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "PPUSTATUS")

	// PPUCTRL has no meaning when read
	_, ok = sym.GetReadSymbol(0x2000)
	test.ExpectFailure(t, ok)

	s, ok = sym.GetWriteSymbol(0x4014)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "OAMDMA")
}

func TestLabels(t *testing.T) {
	sym := symbols.NewSymbols()

	var mem vectors
	mem.Poke(0xfffa, 0x10)
	mem.Poke(0xfffb, 0x80)
	mem.Poke(0xfffc, 0x00)
	mem.Poke(0xfffd, 0x80)
	mem.Poke(0xfffe, 0x00)
	mem.Poke(0xffff, 0x80)
	sym.AddVectorLabels(&mem)

	s, ok := sym.GetLabel(0x8000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "RESET")

	s, ok = sym.GetLabel(0x8010)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "NMI")

	// labels are normalised and made unique
	test.ExpectSuccess(t, sym.AddLabel(0x8020, "  main  loop ", false))
	s, _ = sym.GetLabel(0x8020)
	test.ExpectEquality(t, s, "main_loop")

	test.ExpectSuccess(t, sym.AddLabel(0x8030, "main loop", false))
	s, _ = sym.GetLabel(0x8030)
	test.ExpectEquality(t, s, "main_loop_1")

	// existing labels are only replaced when preferred
	test.ExpectFailure(t, sym.AddLabel(0x8000, "start", false))
	test.ExpectSuccess(t, sym.AddLabel(0x8000, "start", true))
	s, _ = sym.GetLabel(0x8000)
	test.ExpectEquality(t, s, "start")

	addr, ok := sym.SearchLabel("MAIN_LOOP")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, addr, 0x8020)

	test.ExpectSuccess(t, sym.RemoveLabel(0x8020))
	test.ExpectFailure(t, sym.RemoveLabel(0x8020))
	_, ok = sym.GetLabel(0x8020)
	test.ExpectFailure(t, ok)

	w := &strings.Builder{}
	sym.ListLabels(w)
	test.ExpectEquality(t, w.String(), "Labels\n------\n0x8000 -> start\n0x8010 -> NMI\n0x8030 -> main_loop_1\n")
}
