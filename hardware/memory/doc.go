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

// Package memory implements the 64KB address space of the NES as seen by the
// CPU. The CPU accesses memory through the cpubus.Memory interface, which the
// Memory type implements.
//
//	    CPU ---- cpu bus ---- MEMORY ---- register bridge ---- PPU
//	                             |
//	                             |
//	                        debugger bus
//	                             |
//	                             |
//	                          DEBUGGER
//
// Every address is first mapped to its primary address with the memorymap
// package. Writes to the PPU registers are delivered to the PPU and then
// stored in the underlying array. Reads of PPUSTATUS, OAMDATA and PPUDATA are
// answered by the PPU; reads of the other PPU registers return the underlying
// array.
//
// A write to OAMDMA (0x4014) copies a page of memory to the PPU's object
// attribute memory and stalls the CPU while it does so.
//
// The debugger bus (the Peek() and Poke() functions) accesses memory without
// side effects.
package memory
