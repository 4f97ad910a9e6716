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
	"fmt"

	"github.com/GaryFrazier/rustyNES/cartridgeloader"
	"github.com/GaryFrazier/rustyNES/curated"
	"github.com/GaryFrazier/rustyNES/hardware/ppu"
)

// PRGLoader is the CPU side of the cartridge interface.
type PRGLoader interface {
	WriteBlock(origin uint16, data []uint8)
}

// CHRLoader is the PPU side of the cartridge interface.
type CHRLoader interface {
	LoadCHR(data []uint8, writable bool)
	SetMirroring(m ppu.Mirroring)
}

// Cartridge defines the information and operations for an NES cartridge.
type Cartridge struct {
	Filename string
	Hash     string

	Header Header

	Trainer []uint8
	PRG     []uint8
	CHR     []uint8

	mapper mapper
}

func (cart Cartridge) String() string {
	return fmt.Sprintf("%s (%s)", cart.Filename, cart.Header)
}

// Parse decodes an iNES image. Data following the CHR banks is ignored.
func Parse(data []uint8) (*Cartridge, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	if len(data) < h.Size() {
		return nil, curated.Errorf(Truncated, len(data), h.Size())
	}

	m, err := newMapper(h)
	if err != nil {
		return nil, err
	}

	cart := &Cartridge{
		Header: h,
		mapper: m,
	}

	idx := HeaderSize
	if h.Trainer {
		cart.Trainer = data[idx : idx+TrainerSize]
		idx += TrainerSize
	}

	cart.PRG = data[idx : idx+h.PRGBanks*PRGBankSize]
	idx += len(cart.PRG)

	cart.CHR = data[idx : idx+h.CHRBanks*CHRBankSize]

	return cart, nil
}

// NewCartridge loads the data indicated by the cartridge loader and parses
// it.
func NewCartridge(cl *cartridgeloader.Loader) (*Cartridge, error) {
	err := cl.Load()
	if err != nil {
		return nil, err
	}

	cart, err := Parse(cl.Data)
	if err != nil {
		return nil, curated.Errorf("%s: %v", cl.ShortName(), err)
	}

	cart.Filename = cl.Filename
	cart.Hash = cl.Hash

	return cart, nil
}

// MapperID returns the name of the mapper used by the cartridge.
func (cart Cartridge) MapperID() string {
	return cart.mapper.id()
}

// Initialise copies the cartridge data into CPU and PPU memory.
func (cart *Cartridge) Initialise(mem PRGLoader, p CHRLoader) {
	cart.mapper.initialise(cart, mem, p)
}
