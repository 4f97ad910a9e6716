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
	"github.com/GaryFrazier/rustyNES/hardware/cpu/registers"
	"github.com/GaryFrazier/rustyNES/hardware/memory/cpubus"
)

// the stack grows downwards from the top of page one. the stack pointer
// wraps around within the page.

func (mc *CPU) push(v uint8) {
	mc.mem.Write(cpubus.Stack|mc.SP.Address(), v)
	mc.SP.Load(mc.SP.Value() - 1)
}

func (mc *CPU) pull() uint8 {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.mem.Read(cpubus.Stack | mc.SP.Address())
}

func (mc *CPU) push16(v uint16) {
	mc.push(uint8(v >> 8))
	mc.push(uint8(v))
}

func (mc *CPU) pull16() uint16 {
	lo := mc.pull()
	hi := mc.pull()
	return (uint16(hi) << 8) | uint16(lo)
}

// interrupt performs the hardware interrupt sequence for the vector. the
// status register is pushed with the break flag clear.
func (mc *CPU) interrupt(vector uint16) {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()
	mc.LastResult.Interrupt = true

	mc.push16(mc.PC.Address())
	mc.push(mc.Status.Push(false))
	mc.Status.Set(registers.InterruptDisable, true)
	mc.PC.Load(mc.read16Bit(vector))

	mc.LastResult.Cycles = 7
	mc.LastResult.Final = true
}
