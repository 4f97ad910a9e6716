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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents. The 2KB of internal RAM is mirrored four times over
// the first 8KB of the address space and the eight PPU registers are
// mirrored over the next 8KB. Every access to memory should pass the address
// through MapAddress() before using it.
//
// MapAddress() is total: every 16 bit address maps to exactly one primary
// address and one Area. There are no unmapped regions.
package memorymap
