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

package cartridge

import (
	"github.com/GaryFrazier/rustyNES/curated"
	"github.com/GaryFrazier/rustyNES/hardware/memory/memorymap"
)

// mapper implementations arrange the cartridge data in the CPU and PPU
// address spaces.
type mapper interface {
	id() string
	initialise(cart *Cartridge, mem PRGLoader, p CHRLoader)
}

func newMapper(h Header) (mapper, error) {
	switch h.Mapper {
	case 0:
		return nrom{}, nil
	}
	return nil, curated.Errorf(UnsupportedMapper, h.Mapper)
}

// nrom is mapper 0. there is no bank switching. either one or two PRG banks
// and a single CHR bank or CHR RAM.
type nrom struct{}

func (nrom) id() string {
	return "NROM"
}

func (nrom) initialise(cart *Cartridge, mem PRGLoader, p CHRLoader) {
	if len(cart.PRG) > 0 {
		mem.WriteBlock(memorymap.OriginPRG, cart.PRG[:min(len(cart.PRG), 2*PRGBankSize)])

		// a single bank is mirrored in the upper half of PRG space
		if len(cart.PRG) == PRGBankSize {
			mem.WriteBlock(memorymap.OriginPRG+PRGBankSize, cart.PRG)
		}
	}

	if len(cart.CHR) > 0 {
		p.LoadCHR(cart.CHR[:min(len(cart.CHR), CHRBankSize)], false)
	} else {
		p.LoadCHR(nil, true)
	}

	p.SetMirroring(cart.Header.Mirroring)
}
