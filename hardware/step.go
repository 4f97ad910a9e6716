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
	"github.com/GaryFrazier/rustyNES/curated"
	"github.com/GaryFrazier/rustyNES/hardware/cpu"
)

// Step the emulation forward by one CPU instruction, or by one interrupt
// sequence. Any cycles outstanding from the previous instruction, including
// DMA stalls, are completed first.
//
// The cycleCallback function is called after every cycle and can be nil.
func (nes *NES) Step(cycleCallback func() error) error {
	if nes.CPU.Killed {
		return curated.Errorf(cpu.KilledCPU, nes.CPU.PC.Address())
	}

	tick := func() error {
		_, err := nes.Tick()
		if err != nil {
			return err
		}
		if cycleCallback != nil {
			return cycleCallback()
		}
		return nil
	}

	// complete any outstanding cycles. this also handles the cycles of the
	// reset sequence
	for nes.CPU.Busy() {
		if err := tick(); err != nil {
			return err
		}
	}

	// begin the next instruction and wait for it to complete
	if err := tick(); err != nil {
		return err
	}
	for nes.CPU.Busy() {
		if err := tick(); err != nil {
			return err
		}
	}

	return nil
}
