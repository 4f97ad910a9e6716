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

import (
	"github.com/GaryFrazier/rustyNES/logger"
)

// Register addresses in CPU space. The CPU memory package is responsible for
// mapping mirrors onto these addresses.
const (
	PPUCTRL   = uint16(0x2000)
	PPUMASK   = uint16(0x2001)
	PPUSTATUS = uint16(0x2002)
	OAMADDR   = uint16(0x2003)
	OAMDATA   = uint16(0x2004)
	PPUSCROLL = uint16(0x2005)
	PPUADDR   = uint16(0x2006)
	PPUDATA   = uint16(0x2007)
)

// ReadRegister returns the value of a register as read by the CPU, with all
// side effects. Reading a write-only register returns the value of the last
// write to any register.
func (p *PPU) ReadRegister(reg uint16) uint8 {
	switch reg {
	case PPUSTATUS:
		data := (p.Status & 0xe0) | (p.openBus & 0x1f)
		p.Status &^= statusVBlank
		p.w = false
		return data

	case OAMDATA:
		return p.OAM[p.OAMAddr]

	case PPUDATA:
		var data uint8
		if p.v&0x3fff >= paletteOrigin {
			// palette reads are not buffered. the buffer is filled with the
			// nametable byte underneath the palette
			data = p.read(p.v)
			p.readBuffer = p.read(p.v - 0x1000)
		} else {
			data = p.readBuffer
			p.readBuffer = p.read(p.v)
		}
		p.incrementV()
		return data
	}

	logger.Logf(p.perm, "ppu", "read of write-only register (%#04x)", reg)
	return p.openBus
}

// PeekRegister returns the value of a register without side effects.
func (p *PPU) PeekRegister(reg uint16) uint8 {
	switch reg {
	case PPUSTATUS:
		return (p.Status & 0xe0) | (p.openBus & 0x1f)
	case OAMDATA:
		return p.OAM[p.OAMAddr]
	case PPUDATA:
		return p.readBuffer
	}
	return p.openBus
}

// WriteRegister changes the value of a register as written by the CPU, with
// all side effects.
func (p *PPU) WriteRegister(reg uint16, data uint8) {
	p.openBus = data

	switch reg {
	case PPUCTRL:
		// enabling NMI output during vblank raises an NMI immediately
		if p.Ctrl&ctrlNMIOutput == 0 && data&ctrlNMIOutput == ctrlNMIOutput && p.VBlank() {
			p.nmi = true
		}
		p.Ctrl = data
		p.t = (p.t & 0xf3ff) | (uint16(data&0x03) << 10)

	case PPUMASK:
		p.Mask = data

	case PPUSTATUS:
		// read only

	case OAMADDR:
		p.OAMAddr = data

	case OAMDATA:
		p.OAM[p.OAMAddr] = data
		p.OAMAddr++

	case PPUSCROLL:
		if !p.w {
			p.t = (p.t & 0xffe0) | uint16(data>>3)
			p.x = data & 0x07
		} else {
			p.t = (p.t & 0x8c1f) | (uint16(data&0x07) << 12) | (uint16(data&0xf8) << 2)
		}
		p.w = !p.w

	case PPUADDR:
		if !p.w {
			p.t = (p.t & 0x80ff) | (uint16(data&0x3f) << 8)
		} else {
			p.t = (p.t & 0xff00) | uint16(data)
			p.v = p.t
		}
		p.w = !p.w

	case PPUDATA:
		p.write(p.v, data)
		p.incrementV()
	}
}

// WriteOAM writes a byte to OAM at the current OAM address and increments
// the address. Used by OAM DMA.
func (p *PPU) WriteOAM(data uint8) {
	p.OAM[p.OAMAddr] = data
	p.OAMAddr++
}

func (p *PPU) incrementV() {
	if p.Ctrl&ctrlIncrement32 == ctrlIncrement32 {
		p.v += 32
	} else {
		p.v++
	}
	p.v &= 0x3fff
}
