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
	"fmt"

	"github.com/GaryFrazier/rustyNES/logger"
)

// bits in the control register
const (
	ctrlIncrement32 = uint8(0x04)
	ctrlNMIOutput   = uint8(0x80)
)

// bits in the mask register
const (
	maskShowBackground = uint8(0x08)
	maskShowSprites    = uint8(0x10)
)

// bits in the status register
const (
	statusSpriteOverflow = uint8(0x20)
	statusSprite0Hit     = uint8(0x40)
	statusVBlank         = uint8(0x80)
)

// PPU contains the timing and register state of the picture processing unit.
//
// The counter fields are exported for the benefit of the debugger and should
// be treated as read-only.
type PPU struct {
	perm logger.Permission

	// the current position in the frame
	Cycle    int
	Scanline int

	// the number of frames completed since reset and whether the current
	// frame is odd
	Frame    int
	OddFrame bool

	// the memory mapped registers
	Ctrl    uint8
	Mask    uint8
	Status  uint8
	OAMAddr uint8

	// the internal registers. v is the current VRAM address, t is the
	// temporary VRAM address, x is the fine X scroll and w is the write
	// latch shared by PPUSCROLL and PPUADDR
	v uint16
	t uint16
	x uint8
	w bool

	// the value returned by the next read of PPUDATA
	readBuffer uint8

	// the value of the last write to any register. the low five bits of
	// PPUSTATUS read as this value
	openBus uint8

	// object attribute memory
	OAM [256]uint8

	// pattern tables, nametables and palette
	chr         [0x2000]uint8
	chrWritable bool
	nametables  [0x1000]uint8
	palette     [32]uint8
	mirroring   Mirroring

	// an NMI has been signalled and not yet collected
	nmi bool

	// shorten the pre-render scanline on odd frames when rendering is enabled
	OddFrameSkip bool
}

// NewPPU is the preferred method of initialisation for the PPU type.
func NewPPU(perm logger.Permission) *PPU {
	p := &PPU{
		perm:         perm,
		chrWritable:  true,
		OddFrameSkip: true,
	}
	p.Reset()
	return p
}

func (p *PPU) String() string {
	return fmt.Sprintf("frame=%d scanline=%d cycle=%d phase=%s ctrl=%#02x mask=%#02x status=%#02x v=%#04x",
		p.Frame, p.Scanline, p.Cycle, p.Phase(), p.Ctrl, p.Mask, p.Status, p.v)
}

// Coords returns the current frame, scanline and cycle.
func (p *PPU) Coords() (int, int, int) {
	return p.Frame, p.Scanline, p.Cycle
}

// Reset the PPU to its power-on state. Pattern table, nametable and palette
// contents are preserved.
func (p *PPU) Reset() {
	p.Cycle = 0
	p.Scanline = 0
	p.Frame = 0
	p.OddFrame = false
	p.Ctrl = 0
	p.Mask = 0
	p.Status = 0
	p.OAMAddr = 0
	p.v = 0
	p.t = 0
	p.x = 0
	p.w = false
	p.readBuffer = 0
	p.openBus = 0
	p.nmi = false
}

// Phase returns the Phase of the current scanline.
func (p *PPU) Phase() Phase {
	return PhaseOf(p.Scanline)
}

// VBlank returns true if the vertical blank flag is set.
func (p *PPU) VBlank() bool {
	return p.Status&statusVBlank == statusVBlank
}

// Rendering returns true if either background or sprite rendering is
// enabled.
func (p *PPU) Rendering() bool {
	return p.Mask&(maskShowBackground|maskShowSprites) != 0
}

// NMI returns true if an NMI has been signalled since the last call to the
// function.
func (p *PPU) NMI() bool {
	n := p.nmi
	p.nmi = false
	return n
}

// VRAMAddress returns the current value of the internal VRAM address.
func (p *PPU) VRAMAddress() uint16 {
	return p.v
}

// Step moves the state of the PPU forward one cycle. Returns true if the
// step completed a frame.
//
// The cycle being processed is the one the PPU is at on entry. The vertical
// blank flag is raised by the step made at cycle 1 of VBlankStartScanline,
// which is the second step on that scanline. Cycle 0 of every scanline is
// idle.
func (p *PPU) Step() bool {
	switch p.Phase() {
	case VBlankStart:
		if p.Cycle == 1 {
			p.Status |= statusVBlank
			if p.Ctrl&ctrlNMIOutput == ctrlNMIOutput {
				p.nmi = true
			}
		}
	case PreRender:
		if p.Cycle == 1 {
			p.Status &^= statusVBlank | statusSprite0Hit | statusSpriteOverflow
		}

		// the idle cycle at the end of the pre-render scanline is skipped on
		// odd frames
		if p.Cycle == CyclesPerScanline-2 && p.OddFrame && p.OddFrameSkip && p.Rendering() {
			p.Cycle++
		}
	case Visible, PostRender, VBlank:
	}

	p.Cycle++
	if p.Cycle < CyclesPerScanline {
		return false
	}

	p.Cycle = 0
	p.Scanline++
	if p.Scanline < ScanlinesPerFrame {
		return false
	}

	p.Scanline = 0
	p.Frame++
	p.OddFrame = !p.OddFrame
	return true
}
