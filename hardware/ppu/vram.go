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

package ppu

// Mirroring describes how the four logical nametables are mapped onto
// physical memory.
type Mirroring int

// List of valid Mirroring values.
const (
	Horizontal Mirroring = iota
	Vertical
	FourScreen
	SingleLower
	SingleUpper
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	case FourScreen:
		return "FourScreen"
	case SingleLower:
		return "SingleLower"
	case SingleUpper:
		return "SingleUpper"
	}
	return "unknown mirroring"
}

// the physical nametable for each logical nametable, per mirroring type
var nametableMap = map[Mirroring][4]uint16{
	Horizontal:  {0, 0, 1, 1},
	Vertical:    {0, 1, 0, 1},
	FourScreen:  {0, 1, 2, 3},
	SingleLower: {0, 0, 0, 0},
	SingleUpper: {1, 1, 1, 1},
}

// origins of the areas in PPU address space
const (
	nametableOrigin = uint16(0x2000)
	paletteOrigin   = uint16(0x3f00)
)

// SetMirroring selects the nametable mirroring.
func (p *PPU) SetMirroring(m Mirroring) {
	p.mirroring = m
}

// Mirroring returns the current nametable mirroring.
func (p *PPU) Mirroring() Mirroring {
	return p.mirroring
}

// LoadCHR copies data into the pattern tables. CHR ROM is read-only; CHR RAM
// is used when the cartridge has no CHR data.
func (p *PPU) LoadCHR(data []uint8, writable bool) {
	copy(p.chr[:], data)
	p.chrWritable = writable
}

func (p *PPU) nametableAddress(address uint16) uint16 {
	address = (address - nametableOrigin) & 0x0fff
	table := nametableMap[p.mirroring][address/0x400]
	return table*0x400 + (address & 0x03ff)
}

func paletteAddress(address uint16) uint16 {
	idx := address & 0x1f

	// the background colour entries of the sprite palettes mirror those of
	// the background palettes
	if idx >= 0x10 && idx&0x03 == 0 {
		idx -= 0x10
	}
	return idx
}

// Peek returns the value at the address in PPU address space.
func (p *PPU) Peek(address uint16) uint8 {
	return p.read(address)
}

// Poke sets the value at the address in PPU address space. CHR ROM can be
// poked.
func (p *PPU) Poke(address uint16, data uint8) {
	address &= 0x3fff
	if address < nametableOrigin {
		p.chr[address] = data
		return
	}
	p.write(address, data)
}

func (p *PPU) read(address uint16) uint8 {
	address &= 0x3fff
	switch {
	case address < nametableOrigin:
		return p.chr[address]
	case address < paletteOrigin:
		return p.nametables[p.nametableAddress(address)]
	}
	return p.palette[paletteAddress(address)]
}

func (p *PPU) write(address uint16, data uint8) {
	address &= 0x3fff
	switch {
	case address < nametableOrigin:
		if p.chrWritable {
			p.chr[address] = data
		}
	case address < paletteOrigin:
		p.nametables[p.nametableAddress(address)] = data
	default:
		p.palette[paletteAddress(address)] = data
	}
}
