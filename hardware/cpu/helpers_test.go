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

package cpu_test

import (
	"testing"

	"github.com/GaryFrazier/rustyNES/hardware/cpu"
	"github.com/GaryFrazier/rustyNES/logger"
	"github.com/GaryFrazier/rustyNES/test"
)

type mockMem struct {
	data [0x10000]uint8
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.data[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.data[address] = data
}

func (mem *mockMem) Peek(address uint16) uint8 {
	return mem.data[address]
}

func (mem *mockMem) Poke(address uint16, value uint8) {
	mem.data[address] = value
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.data[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) putVector(vector uint16, address uint16) {
	mem.data[vector] = uint8(address)
	mem.data[vector+1] = uint8(address >> 8)
}

// newTestCPU returns a CPU with the stack pointer at its post-reset value and
// the PC at origin. the status register is clear except for the unused bit
func newTestCPU(origin uint16) (*cpu.CPU, *mockMem) {
	mem := &mockMem{}
	mc := cpu.NewCPU(logger.Allow, mem)
	mc.SP.Load(0xfd)
	mc.LoadPC(origin)
	return mc, mem
}

func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.DemandSuccess(t, mc.LastResult.IsValid())
}
