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

package disassembly

import (
	"github.com/GaryFrazier/rustyNES/curated"
	"github.com/GaryFrazier/rustyNES/disassembly/symbols"
	"github.com/GaryFrazier/rustyNES/hardware/memory/cartridge"
	"github.com/GaryFrazier/rustyNES/hardware/memory/cpubus"
	"github.com/GaryFrazier/rustyNES/hardware/ppu"
)

// DisasmError is the pattern for errors returned by the disassembly package.
const DisasmError = "disassembly: %v"

// Disassembly represents the annotated disassembly of an address range.
type Disassembly struct {
	Sym *symbols.Symbols

	// entries in address order
	entries []*Entry
	byAddr  map[uint16]*Entry

	widths widths
}

// FromMemory disassembles the memory from origin to memtop inclusive. The
// symbols argument can be nil, in which case a new symbols table is created
// and labels are added for the interrupt vector destinations.
func FromMemory(mem cpubus.Debugger, sym *symbols.Symbols, origin uint16, memtop uint16) (*Disassembly, error) {
	if memtop < origin {
		return nil, curated.Errorf(DisasmError, curated.Errorf("memtop (%#04x) is before origin (%#04x)", memtop, origin))
	}

	if sym == nil {
		sym = symbols.NewSymbols()
		sym.AddVectorLabels(mem)
	}

	dsm := &Disassembly{
		Sym:    sym,
		byAddr: make(map[uint16]*Entry),
	}

	for a := int(origin); a <= int(memtop); {
		e := FormatResult(dsm.Sym, decode(mem, uint16(a)))
		dsm.entries = append(dsm.entries, e)
		dsm.byAddr[uint16(a)] = e
		dsm.widths.update(e)
		a += e.Result.ByteCount
	}

	return dsm, nil
}

// FromCartridge disassembles the PRG data of the cartridge as it appears in
// CPU memory, from 0x8000 to the end of memory.
func FromCartridge(cart *cartridge.Cartridge) (*Disassembly, error) {
	if cart == nil {
		return nil, curated.Errorf(DisasmError, "no cartridge")
	}

	mem := &prgMemory{}
	cart.Initialise(mem, discardCHR{})

	return FromMemory(mem, nil, 0x8000, 0xffff)
}

// Get returns the entry for the address. The address must be the start of a
// decoded instruction.
func (dsm *Disassembly) Get(address uint16) (*Entry, bool) {
	e, ok := dsm.byAddr[address]
	return e, ok
}

// Len returns the number of entries in the disassembly.
func (dsm *Disassembly) Len() int {
	return len(dsm.entries)
}

// prgMemory is a flat address space used to receive PRG data from a
// cartridge.
type prgMemory [0x10000]uint8

func (mem *prgMemory) WriteBlock(origin uint16, data []uint8) {
	for i, d := range data {
		mem[origin+uint16(i)] = d
	}
}

func (mem *prgMemory) Peek(address uint16) uint8 {
	return mem[address]
}

func (mem *prgMemory) Poke(address uint16, value uint8) {
	mem[address] = value
}

// discardCHR ignores the PPU side of cartridge initialisation.
type discardCHR struct{}

func (discardCHR) LoadCHR(_ []uint8, _ bool) {}

func (discardCHR) SetMirroring(_ ppu.Mirroring) {}
