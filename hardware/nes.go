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

package hardware

import (
	"fmt"

	"github.com/GaryFrazier/rustyNES/hardware/cpu"
	"github.com/GaryFrazier/rustyNES/hardware/memory"
	"github.com/GaryFrazier/rustyNES/hardware/memory/cartridge"
	"github.com/GaryFrazier/rustyNES/hardware/ppu"
	"github.com/GaryFrazier/rustyNES/hardware/preferences"
	"github.com/GaryFrazier/rustyNES/logger"
	"github.com/GaryFrazier/rustyNES/random"
)

// the number of PPU cycles for every CPU cycle
const ppuCyclesPerCPUCycle = 3

// NES contains all the emulated hardware of the NES.
type NES struct {
	Prefs *preferences.Preferences

	CPU *cpu.CPU
	Mem *memory.Memory
	PPU *ppu.PPU

	// the attached cartridge. nil if no cartridge is attached
	Cart *cartridge.Cartridge

	// whether the hardware is allowed to create log entries
	quiet bool
}

// NewNES creates a new NES and everything associated with the hardware. It is
// used for all aspects of emulation: debugging sessions, and regular play.
//
// The prefs argument can be nil, in which case the default preferences are
// used and nothing is read from disk.
func NewNES(prefs *preferences.Preferences) (*NES, error) {
	var err error

	if prefs == nil {
		prefs = &preferences.Preferences{}
		prefs.SetDefaults()
	}

	nes := &NES{Prefs: prefs}

	nes.Mem = memory.NewMemory(nes)
	nes.PPU = ppu.NewPPU(nes)
	nes.CPU = cpu.NewCPU(nes, nes.Mem)
	nes.CPU.Random = random.NewRandom(nes.PPU)

	nes.Mem.AttachPPU(nes.PPU)
	nes.Mem.AttachStaller(nes.CPU)

	err = nes.Reset()
	if err != nil {
		return nil, err
	}

	return nes, nil
}

func (nes *NES) String() string {
	return fmt.Sprintf("%s\n%s", nes.CPU, nes.PPU)
}

// AllowLogging implements the logger.Permission interface.
func (nes *NES) AllowLogging() bool {
	return !nes.quiet
}

// SetLogging sets whether the hardware is allowed to create log entries.
func (nes *NES) SetLogging(allow bool) {
	nes.quiet = !allow
}

// AttachCartridge clears memory, initialises the cartridge and resets the
// NES. A nil cartridge leaves memory empty.
func (nes *NES) AttachCartridge(cart *cartridge.Cartridge) error {
	nes.Mem.Clear()
	nes.Cart = cart

	if cart != nil {
		cart.Initialise(nes.Mem, nes.PPU)
		logger.Logf(nes, "nes", "attached %s", cart)
	}

	return nes.Reset()
}

// Reset emulates the reset line of the console. The preferences are applied
// before the CPU and PPU are reset.
func (nes *NES) Reset() error {
	nes.CPU.RandomState = nes.Prefs.RandomState.Get().(bool)
	nes.PPU.OddFrameSkip = nes.Prefs.OddFrameSkip.Get().(bool)

	nes.CPU.Reset()
	nes.PPU.Reset()

	return nil
}

// Tick advances the emulation by one CPU cycle. Returns true if the PPU
// completed a frame during the cycle.
func (nes *NES) Tick() (bool, error) {
	err := nes.CPU.RunCycle()

	var frame bool
	for i := 0; i < ppuCyclesPerCPUCycle; i++ {
		if nes.PPU.Step() {
			frame = true
		}
	}

	if nes.PPU.NMI() {
		nes.CPU.NMI()
	}

	return frame, err
}
