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

// Package disassembly coordinates the disassembly of NES programs.
//
// A static disassembly of an address range is created with FromMemory() or,
// for the PRG data of a cartridge, with FromCartridge(). Decoding is linear,
// from the start of the range to the end, using the instruction definitions
// of the CPU. Opcodes that have no definition are decoded as a single byte
// with the "???" operator.
//
// The FormatResult() function creates an Entry from the result of an
// executed instruction and is used for instruction tracing. Entries can be
// written in columns with the Write() and WriteEntry() functions.
package disassembly
