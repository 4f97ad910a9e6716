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

package digest_test

import (
	"testing"

	"github.com/GaryFrazier/rustyNES/digest"
	"github.com/GaryFrazier/rustyNES/hardware/cpu"
	"github.com/GaryFrazier/rustyNES/logger"
	"github.com/GaryFrazier/rustyNES/test"
)

type flatMem struct {
	data [0x10000]uint8
}

func (mem *flatMem) Read(address uint16) uint8 {
	return mem.data[address]
}

func (mem *flatMem) Write(address uint16, data uint8) {
	mem.data[address] = data
}

func (mem *flatMem) Peek(address uint16) uint8 {
	return mem.data[address]
}

func (mem *flatMem) Poke(address uint16, value uint8) {
	mem.data[address] = value
}

// runs INX / JMP $8000 for the number of instructions. the value of
// startX is loaded into the X register before the first instruction
func fingerprint(t *testing.T, dig *digest.CPU, startX uint8, count int) string {
	t.Helper()

	mem := &flatMem{}
	copy(mem.data[0x8000:], []uint8{0xe8, 0x4c, 0x00, 0x80})

	mc := cpu.NewCPU(logger.Allow, mem)
	mc.SP.Load(0xfd)
	mc.LoadPC(0x8000)
	mc.X.Load(startX)

	for range count {
		test.DemandSuccess(t, mc.ExecuteInstruction())
		dig.Update(mc)
	}

	return dig.Hash()
}

func TestRepeatable(t *testing.T) {
	a := fingerprint(t, digest.NewCPU(), 0, 100)
	b := fingerprint(t, digest.NewCPU(), 0, 100)
	test.ExpectEquality(t, a, b)
	test.ExpectEquality(t, len(a), 40)
}

func TestDivergence(t *testing.T) {
	a := fingerprint(t, digest.NewCPU(), 0, 100)
	b := fingerprint(t, digest.NewCPU(), 1, 100)
	test.ExpectInequality(t, a, b)

	c := fingerprint(t, digest.NewCPU(), 0, 101)
	test.ExpectInequality(t, a, c)
}

func TestReset(t *testing.T) {
	dig := digest.NewCPU()
	empty := dig.Hash()

	fingerprint(t, dig, 0, 10)
	test.ExpectInequality(t, dig.Hash(), empty)

	dig.ResetDigest()
	test.ExpectEquality(t, dig.Hash(), empty)
	test.ExpectEquality(t, dig.String(), empty+" (0 instructions)")
}
