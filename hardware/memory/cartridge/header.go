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

	"github.com/GaryFrazier/rustyNES/curated"
	"github.com/GaryFrazier/rustyNES/hardware/ppu"
)

// Sentinel error patterns.
const (
	BadMagic          = "cartridge: bad magic (%q)"
	Truncated         = "cartridge: truncated data (%d bytes, need %d)"
	UnsupportedMapper = "cartridge: unsupported mapper (%d)"
)

// the first four bytes of every iNES file
const magic = "NES\x1a"

// sizes of the header and the data blocks
const (
	HeaderSize  = 16
	TrainerSize = 512
	PRGBankSize = 0x4000
	CHRBankSize = 0x2000
)

// TVSystem is the television standard indicated by the header.
type TVSystem int

// List of valid TVSystem values.
const (
	NTSC TVSystem = iota
	PAL
	DualCompatible
)

func (tv TVSystem) String() string {
	switch tv {
	case NTSC:
		return "NTSC"
	case PAL:
		return "PAL"
	case DualCompatible:
		return "Dual"
	}
	return "unknown TV system"
}

// Header is the decoded iNES header.
type Header struct {
	// number of 16KB PRG banks
	PRGBanks int

	// number of 8KB CHR banks. zero means the cartridge uses CHR RAM
	CHRBanks int

	Mapper    uint8
	Mirroring ppu.Mirroring

	// battery backed PRG RAM at 0x6000
	Battery bool

	// 512 byte trainer between header and PRG data
	Trainer bool

	VSUnisystem bool
	PlayChoice  bool

	// header is in NES 2.0 format. the additional NES 2.0 fields are not
	// decoded
	NES20 bool

	// PRG RAM size in 8KB units. a value of zero means 8KB
	PRGRAMSize int

	TV TVSystem
}

func (h Header) String() string {
	return fmt.Sprintf("mapper %d: PRG %dx16KB CHR %dx8KB %s %s",
		h.Mapper, h.PRGBanks, h.CHRBanks, h.Mirroring, h.TV)
}

// ParseHeader decodes the 16 byte iNES header at the start of data.
func ParseHeader(data []uint8) (Header, error) {
	var h Header

	if len(data) >= len(magic) && string(data[:len(magic)]) != magic {
		return h, curated.Errorf(BadMagic, string(data[:len(magic)]))
	}

	if len(data) < HeaderSize {
		return h, curated.Errorf(Truncated, len(data), HeaderSize)
	}

	h.PRGBanks = int(data[4])
	h.CHRBanks = int(data[5])

	flags6 := data[6]
	flags7 := data[7]

	switch {
	case flags6&0x08 == 0x08:
		h.Mirroring = ppu.FourScreen
	case flags6&0x01 == 0x01:
		h.Mirroring = ppu.Vertical
	default:
		h.Mirroring = ppu.Horizontal
	}

	h.Battery = flags6&0x02 == 0x02
	h.Trainer = flags6&0x04 == 0x04
	h.VSUnisystem = flags7&0x01 == 0x01
	h.PlayChoice = flags7&0x02 == 0x02
	h.NES20 = flags7&0x0c == 0x08

	h.Mapper = (flags7 & 0xf0) | (flags6 >> 4)

	h.PRGRAMSize = int(data[8])

	// flags 9 is the official location of the TV system but flags 10 is
	// more commonly used
	switch data[10] & 0x03 {
	case 0x02:
		h.TV = PAL
	case 0x01, 0x03:
		h.TV = DualCompatible
	default:
		if data[9]&0x01 == 0x01 {
			h.TV = PAL
		} else {
			h.TV = NTSC
		}
	}

	return h, nil
}

// Size returns the number of bytes the complete file should have according
// to the header.
func (h Header) Size() int {
	n := HeaderSize + h.PRGBanks*PRGBankSize + h.CHRBanks*CHRBankSize
	if h.Trainer {
		n += TrainerSize
	}
	return n
}
