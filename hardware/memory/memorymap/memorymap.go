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

package memorymap

// Area represents the different areas of memory.
type Area int

// The different memory areas of the NES.
const (
	RAM Area = iota
	PPU
	APU
	Expansion
	SRAM
	PRG
)

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case APU:
		return "APU"
	case Expansion:
		return "Expansion"
	case SRAM:
		return "SRAM"
	case PRG:
		return "PRG"
	}
	return "undefined"
}

// The origin and memory top for each area of memory, in primary address
// space.
const (
	OriginRAM       = uint16(0x0000)
	MemtopRAM       = uint16(0x07ff)
	OriginPPU       = uint16(0x2000)
	MemtopPPU       = uint16(0x2007)
	OriginAPU       = uint16(0x4000)
	MemtopAPU       = uint16(0x401f)
	OriginExpansion = uint16(0x4020)
	MemtopExpansion = uint16(0x5fff)
	OriginSRAM      = uint16(0x6000)
	MemtopSRAM      = uint16(0x7fff)
	OriginPRG       = uint16(0x8000)
	MemtopPRG       = uint16(0xffff)
)

// The extent of the mirrored regions.
const (
	MemtopRAMMirror = uint16(0x1fff)
	MemtopPPUMirror = uint16(0x3fff)
)

// The bits of an address that are relevant inside a mirrored region.
const (
	MaskRAM = uint16(0x07ff)
	MaskPPU = uint16(0x0007)
)

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// MapAddress translates the address argument from mirror space to primary
// space.
func MapAddress(address uint16) (uint16, Area) {
	// note that the order of these filters is important

	if address <= MemtopRAMMirror {
		return address & MaskRAM, RAM
	}

	if address <= MemtopPPUMirror {
		return OriginPPU | (address & MaskPPU), PPU
	}

	if address <= MemtopAPU {
		return address, APU
	}

	if address <= MemtopExpansion {
		return address, Expansion
	}

	if address <= MemtopSRAM {
		return address, SRAM
	}

	return address, PRG
}
