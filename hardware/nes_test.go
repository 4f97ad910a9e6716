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

package hardware_test

import (
	"testing"

	"github.com/GaryFrazier/rustyNES/curated"
	"github.com/GaryFrazier/rustyNES/debugger/govern"
	"github.com/GaryFrazier/rustyNES/hardware"
	"github.com/GaryFrazier/rustyNES/hardware/cpu"
	"github.com/GaryFrazier/rustyNES/hardware/memory/cartridge"
	"github.com/GaryFrazier/rustyNES/hardware/preferences"
	"github.com/GaryFrazier/rustyNES/random"
	"github.com/GaryFrazier/rustyNES/test"
)

// makeNROM creates a single bank NROM image with the program placed at
// 0x8000. the reset and IRQ vectors point to 0x8000 and the NMI vector points
// to nmi
func makeNROM(program []uint8, nmi uint16) []uint8 {
	prg := make([]uint8, cartridge.PRGBankSize)
	copy(prg, program)

	prg[0x3ffa] = uint8(nmi)
	prg[0x3ffb] = uint8(nmi >> 8)
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80
	prg[0x3ffe] = 0x00
	prg[0x3fff] = 0x80

	data := []uint8{'N', 'E', 'S', 0x1a, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	data = append(data, prg...)
	data = append(data, make([]uint8, cartridge.CHRBankSize)...)
	return data
}

func newTestNES(t *testing.T, program []uint8, nmi uint16) *hardware.NES {
	t.Helper()

	nes, err := hardware.NewNES(nil)
	test.DemandSuccess(t, err)
	nes.SetLogging(false)

	cart, err := cartridge.Parse(makeNROM(program, nmi))
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, nes.AttachCartridge(cart))
	return nes
}

func TestBoot(t *testing.T) {
	nes := newTestNES(t, []uint8{0xa9, 0x80}, 0x8000)
	test.ExpectEquality(t, nes.CPU.PC.Address(), 0x8000)
	test.ExpectEquality(t, nes.CPU.SP.Value(), 0xfd)
	test.ExpectSuccess(t, nes.CPU.Busy())

	// the reset sequence followed by the LDA instruction
	var ticks int
	err := nes.Step(func() error {
		ticks++
		return nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ticks, 10)
	test.ExpectEquality(t, nes.CPU.A.Value(), 0x80)
	test.ExpectEquality(t, nes.CPU.PC.Address(), 0x8002)

	// three PPU cycles for every CPU cycle
	test.ExpectEquality(t, nes.PPU.Cycle, 30)
	test.ExpectEquality(t, nes.PPU.Scanline, 0)
}

func TestTick(t *testing.T) {
	nes := newTestNES(t, []uint8{0x4c, 0x00, 0x80}, 0x8000)

	for i := 0; i < 100; i++ {
		frame, err := nes.Tick()
		test.DemandSuccess(t, err)
		test.ExpectFailure(t, frame)
	}
	test.ExpectEquality(t, nes.CPU.Cycles, uint64(100))
	test.ExpectEquality(t, nes.PPU.Cycle, 300)
}

func TestFrames(t *testing.T) {
	// enable NMI and loop forever. the NMI handler increments 0x10
	program := make([]uint8, 0x20)
	copy(program, []uint8{
		0xa9, 0x80, // LDA #$80
		0x8d, 0x00, 0x20, // STA $2000
		0x4c, 0x05, 0x80, // JMP $8005
	})
	copy(program[0x10:], []uint8{
		0xe6, 0x10, // INC $10
		0x40, // RTI
	})

	nes := newTestNES(t, program, 0x8010)

	var calls int
	err := nes.RunForFrameCount(2, func(frame int) (govern.State, error) {
		calls++
		return govern.Running, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, nes.PPU.Frame, 2)
	test.ExpectEquality(t, nes.Mem.Peek(0x10), 2)
	test.ExpectSuccess(t, calls > 0)

	// continue check can end the emulation before the frame count is reached
	err = nes.RunForFrameCount(10, func(frame int) (govern.State, error) {
		return govern.Ending, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, nes.PPU.Frame, 2)
}

func TestRun(t *testing.T) {
	nes := newTestNES(t, []uint8{0xe8, 0x4c, 0x00, 0x80}, 0x8000)

	var n int
	err := nes.Run(func() (govern.State, error) {
		n++
		if n >= 10 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.DemandSuccess(t, err)

	// INX and JMP alternate. five of the ten instructions are INX
	test.ExpectEquality(t, nes.CPU.X.Value(), 5)

	// unsupported states are an error
	err = nes.Run(func() (govern.State, error) {
		return govern.EmulatorStart, nil
	})
	test.ExpectFailure(t, err)
}

func TestKilled(t *testing.T) {
	nes := newTestNES(t, []uint8{0x02, 0xea}, 0x8000)

	err := nes.Step(nil)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nes.CPU.Killed)

	err = nes.Step(nil)
	test.ExpectSuccess(t, curated.Is(err, cpu.KilledCPU))

	// reset revives the CPU
	test.DemandSuccess(t, nes.Reset())
	test.ExpectFailure(t, nes.CPU.Killed)
}

func TestOAMDMA(t *testing.T) {
	nes := newTestNES(t, []uint8{
		0xa9, 0x02, // LDA #$02
		0x8d, 0x14, 0x40, // STA $4014
		0xea, // NOP
	}, 0x8000)

	for i := 0; i < 256; i++ {
		nes.Mem.Poke(0x0200+uint16(i), uint8(i^0xff))
	}

	test.DemandSuccess(t, nes.Step(nil))

	c0 := nes.CPU.Cycles
	var ticks int
	err := nes.Step(func() error {
		ticks++
		return nil
	})
	test.DemandSuccess(t, err)

	// the DMA stall is one cycle longer when the write happens on an odd cycle
	test.ExpectEquality(t, ticks, 4+513+int((c0+1)%2))

	for i := 0; i < 256; i++ {
		test.ExpectEquality(t, nes.PPU.OAM[i], uint8(i^0xff), i)
	}

	test.DemandSuccess(t, nes.Step(nil))
	test.ExpectEquality(t, nes.CPU.PC.Address(), 0x8006)
}

func TestPreferences(t *testing.T) {
	prefs := &preferences.Preferences{}
	prefs.SetDefaults()
	test.DemandSuccess(t, prefs.OddFrameSkip.Set(false))

	nes, err := hardware.NewNES(prefs)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, nes.PPU.OddFrameSkip)

	test.DemandSuccess(t, prefs.OddFrameSkip.Set(true))
	test.DemandSuccess(t, nes.Reset())
	test.ExpectSuccess(t, nes.PPU.OddFrameSkip)
}

func TestRandomState(t *testing.T) {
	prefs := &preferences.Preferences{}
	prefs.SetDefaults()
	test.DemandSuccess(t, prefs.RandomState.Set(true))

	a, err := hardware.NewNES(prefs)
	test.DemandSuccess(t, err)
	b, err := hardware.NewNES(prefs)
	test.DemandSuccess(t, err)

	// the same PPU position with a zero seed produces the same registers
	a.CPU.Random.(*random.Random).ZeroSeed = true
	b.CPU.Random.(*random.Random).ZeroSeed = true
	test.DemandSuccess(t, a.Reset())
	test.DemandSuccess(t, b.Reset())

	test.ExpectEquality(t, a.CPU.A.Value(), b.CPU.A.Value())
	test.ExpectEquality(t, a.CPU.X.Value(), b.CPU.X.Value())
	test.ExpectEquality(t, a.CPU.Y.Value(), b.CPU.Y.Value())
}
