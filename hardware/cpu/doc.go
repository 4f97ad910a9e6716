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

// Package cpu emulates the 2A03 found in the NES. The 2A03 is a 6502 without
// the decimal mode circuitry. The CPU executes instructions according to the
// single byte value read from the address pointed to by the program counter.
// This single byte is the opcode and is looked up in the instruction table.
// The instruction definition for that opcode is then used to move execution
// of the program forward.
//
// An instance of the CPU type requires an implementation of cpubus.Memory.
// The memory implementation is responsible for mapping addresses and for any
// side effects of reading or writing.
//
// There are two ways of driving the CPU. ExecuteInstruction() performs an
// entire instruction immediately and records the cost of the instruction in
// the LastResult field. RunCycle() is intended to be called once per CPU
// clock. On the first clock of an instruction the instruction is executed in
// its entirety and the remaining clocks of its cost are spent waiting:
//
//	mc := cpu.NewCPU(logger.Allow, mem)
//	mc.Reset()
//
//	for {
//		if err := mc.RunCycle(); err != nil {
//			return err
//		}
//		// three PPU cycles for every CPU cycle
//	}
//
// Interrupts are only recognised at instruction boundaries. NMI() latches a
// pending non-maskable interrupt and IRQ() sets the level of the interrupt
// request line.
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information. Very
// useful for debuggers.
package cpu
