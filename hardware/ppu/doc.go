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

// Package ppu implements the timing skeleton of the NES picture processing
// unit. There is no pixel generation. What is emulated is the part of the PPU
// that is visible to the CPU: the scanline and cycle counters, the vertical
// blank flag and the NMI it raises, and the side effects of reading and
// writing the eight memory mapped registers.
//
// Three times for every tick of the CPU, the PPU Step() function is called.
// A frame is 262 scanlines of 341 cycles. Every scanline belongs to exactly
// one Phase:
//
//	Visible      0 to 239
//	PostRender   240
//	VBlankStart  241
//	VBlank       242 to 260
//	PreRender    261
//
// The vertical blank flag is set at cycle 1 of the VBlankStart scanline and
// cleared at cycle 1 of the PreRender scanline. If the NMI output bit of the
// control register is set when the flag is raised then an NMI is signalled.
// The signal is collected with the NMI() function.
//
// On odd frames, when rendering is enabled, the PreRender scanline is one
// cycle shorter.
//
// The PPU has its own 14 bit address space. Pattern tables (CHR) occupy
// 0x0000 to 0x1fff, the four nametables occupy 0x2000 to 0x2fff (mirrored to
// 0x3eff) and the palette occupies 0x3f00 to 0x3f1f (mirrored to 0x3fff).
// Only two nametables are backed by memory unless four screen mirroring is
// selected.
package ppu
