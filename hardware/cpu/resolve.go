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

package cpu

import (
	"github.com/GaryFrazier/rustyNES/hardware/cpu/execution"
	"github.com/GaryFrazier/rustyNES/hardware/cpu/instructions"
)

// resolve the effective address for the addressing mode and operand. The
// pageFault return value is true if indexing carried into the high byte of
// the address.
//
// Implied, Immediate and Relative modes have no effective address and the
// operand is returned unchanged.
func (mc *CPU) resolve(mode instructions.AddressingMode, operand uint16) (address uint16, pageFault bool) {
	switch mode {
	case instructions.ZeroPage:
		return operand & 0x00ff, false

	case instructions.ZeroPageIndexedX:
		return uint16(uint8(operand) + mc.X.Value()), false

	case instructions.ZeroPageIndexedY:
		return uint16(uint8(operand) + mc.Y.Value()), false

	case instructions.Absolute:
		return operand, false

	case instructions.AbsoluteIndexedX:
		address = operand + mc.X.Address()
		return address, address&0xff00 != operand&0xff00

	case instructions.AbsoluteIndexedY:
		address = operand + mc.Y.Address()
		return address, address&0xff00 != operand&0xff00

	case instructions.Indirect:
		// the high byte of the target is read from the start of the same
		// page if the pointer is at the end of a page
		hiPtr := (operand & 0xff00) | uint16(uint8(operand)+1)
		if operand&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		}
		lo := mc.mem.Read(operand)
		hi := mc.mem.Read(hiPtr)
		return (uint16(hi) << 8) | uint16(lo), false

	case instructions.IndexedIndirect:
		ptr := uint8(operand) + mc.X.Value()
		if ptr == 0xff {
			mc.LastResult.CPUBug = execution.ZeroPagePointerWrap
		}
		return mc.readZeroPagePointer(ptr), false

	case instructions.IndirectIndexed:
		ptr := uint8(operand)
		if ptr == 0xff {
			mc.LastResult.CPUBug = execution.ZeroPagePointerWrap
		}
		base := mc.readZeroPagePointer(ptr)
		address = base + mc.Y.Address()
		return address, address&0xff00 != base&0xff00
	}

	return operand, false
}

// readZeroPagePointer reads a 16 bit pointer from page zero. the high byte of
// a pointer at 0xff is read from 0x00.
func (mc *CPU) readZeroPagePointer(ptr uint8) uint16 {
	lo := mc.mem.Read(uint16(ptr))
	hi := mc.mem.Read(uint16(ptr + 1))
	return (uint16(hi) << 8) | uint16(lo)
}
