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

package disassembly

import (
	"github.com/GaryFrazier/rustyNES/hardware/cpu/execution"
	"github.com/GaryFrazier/rustyNES/hardware/cpu/instructions"
	"github.com/GaryFrazier/rustyNES/hardware/memory/cpubus"
)

// decode the instruction at the address without executing it. memory is
// accessed with Peek() so there are no side effects.
func decode(mem cpubus.Debugger, address uint16) execution.Result {
	r := execution.Result{
		Address:   address,
		ByteCount: 1,
	}

	opcode := mem.Peek(address)
	r.Defn = instructions.Lookup(opcode)

	switch r.Defn.Bytes {
	case 2:
		r.InstructionData = uint16(mem.Peek(address + 1))
		r.ByteCount = 2
	case 3:
		lo := mem.Peek(address + 1)
		hi := mem.Peek(address + 2)
		r.InstructionData = uint16(hi)<<8 | uint16(lo)
		r.ByteCount = 3
	}

	r.Cycles = r.Defn.Cycles

	return r
}
