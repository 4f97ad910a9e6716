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

// Package hardware is the base package for the NES emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The NES type is the root of the emulation and contains external references
// to all the NES sub-systems. From here, the emulation can either be started
// to run continuously (with an optional callback to check for continuation);
// or it can be stepped instruction by instruction or cycle by cycle.
//
// The order of events in a single cycle (see NES.Tick()) is:
//
//  1. the CPU is advanced one cycle
//  2. the PPU is advanced three cycles
//  3. an NMI signalled by the PPU is forwarded to the CPU
//
// The forwarded NMI is recognised by the CPU at the next instruction
// boundary.
package hardware
