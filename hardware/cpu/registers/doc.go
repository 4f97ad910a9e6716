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

// Package registers implements the three types of register found in the 6502
// family: the 8 bit general purpose register, the 16 bit program counter and
// the status register.
//
// The general purpose register implements the arithmetic and logical
// operations of the CPU. The functions return information about the result
// of the operation (carry and overflow) but do not set any flags. Setting the
// status register is the responsibility of the CPU, which is free to ignore
// the information. For example:
//
//	a.Load(0x50)
//	_, v := a.Add(0x50, false)
//	sr.Set(registers.Overflow, v)
//	sr.Set(registers.Zero, a.IsZero())
//	sr.Set(registers.Sign, a.IsNegative())
//
// The 2A03 has no decimal mode. The decimal flag can be set and cleared but
// the Add() and Subtract() functions are always binary.
package registers
