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

package ppu_test

import (
	"testing"

	"github.com/GaryFrazier/rustyNES/hardware/ppu"
	"github.com/GaryFrazier/rustyNES/logger"
	"github.com/GaryFrazier/rustyNES/test"
)

// step the PPU to the start of the scanline
func stepToScanline(p *ppu.PPU, scanline int) {
	for p.Scanline != scanline || p.Cycle != 0 {
		p.Step()
	}
}

func TestPhases(t *testing.T) {
	test.ExpectEquality(t, ppu.PhaseOf(0), ppu.Visible)
	test.ExpectEquality(t, ppu.PhaseOf(239), ppu.Visible)
	test.ExpectEquality(t, ppu.PhaseOf(240), ppu.PostRender)
	test.ExpectEquality(t, ppu.PhaseOf(241), ppu.VBlankStart)
	test.ExpectEquality(t, ppu.PhaseOf(242), ppu.VBlank)
	test.ExpectEquality(t, ppu.PhaseOf(260), ppu.VBlank)
	test.ExpectEquality(t, ppu.PhaseOf(261), ppu.PreRender)
}

func TestScanlineAdvance(t *testing.T) {
	p := ppu.NewPPU(logger.Allow)
	test.ExpectEquality(t, p.Scanline, 0)
	test.ExpectEquality(t, p.Cycle, 0)

	for i := 0; i < 340; i++ {
		p.Step()
	}
	test.ExpectEquality(t, p.Scanline, 0)
	test.ExpectEquality(t, p.Cycle, 340)

	p.Step()
	test.ExpectEquality(t, p.Scanline, 1)
	test.ExpectEquality(t, p.Cycle, 0)
}

func TestVBlank(t *testing.T) {
	p := ppu.NewPPU(logger.Allow)

	stepToScanline(p, 241)
	test.ExpectFailure(t, p.VBlank())

	// flag is raised at cycle 1
	p.Step()
	test.ExpectFailure(t, p.VBlank())
	p.Step()
	test.ExpectSuccess(t, p.VBlank())

	// NMI output is disabled so no NMI signal
	test.ExpectFailure(t, p.NMI())

	// flag is still set at the start of the pre-render scanline
	stepToScanline(p, 261)
	test.ExpectSuccess(t, p.VBlank())
	p.Step()
	p.Step()
	test.ExpectFailure(t, p.VBlank())
}

func TestVBlankNMI(t *testing.T) {
	p := ppu.NewPPU(logger.Allow)
	p.WriteRegister(ppu.PPUCTRL, 0x80)

	stepToScanline(p, 241)
	p.Step()
	p.Step()
	test.ExpectSuccess(t, p.NMI())

	// the signal is collected only once
	test.ExpectFailure(t, p.NMI())
}

func TestNMIEnabledDuringVBlank(t *testing.T) {
	p := ppu.NewPPU(logger.Allow)
	stepToScanline(p, 242)
	test.ExpectSuccess(t, p.VBlank())
	test.ExpectFailure(t, p.NMI())

	p.WriteRegister(ppu.PPUCTRL, 0x80)
	test.ExpectSuccess(t, p.NMI())

	// writing the bit again while it is already set does not raise another
	p.WriteRegister(ppu.PPUCTRL, 0x80)
	test.ExpectFailure(t, p.NMI())
}

func TestFrameLength(t *testing.T) {
	p := ppu.NewPPU(logger.Allow)

	steps := 0
	for !p.Step() {
		steps++
	}
	steps++
	test.ExpectEquality(t, steps, 341*262)
	test.ExpectEquality(t, p.Frame, 1)
	test.ExpectSuccess(t, p.OddFrame)
	test.ExpectEquality(t, p.Scanline, 0)
}

func TestOddFrameSkip(t *testing.T) {
	p := ppu.NewPPU(logger.Allow)

	// enable background rendering
	p.WriteRegister(ppu.PPUMASK, 0x08)

	// even frame is full length
	steps := 1
	for !p.Step() {
		steps++
	}
	test.ExpectEquality(t, steps, 341*262)

	// odd frame is one cycle shorter
	steps = 1
	for !p.Step() {
		steps++
	}
	test.ExpectEquality(t, steps, 341*262-1)
	test.ExpectFailure(t, p.OddFrame)

	// no skip when rendering is disabled
	p.WriteRegister(ppu.PPUMASK, 0x00)
	p.Step()
	for !p.Step() {
	}
	steps = 1
	for !p.Step() {
		steps++
	}
	test.ExpectEquality(t, steps, 341*262)
}
