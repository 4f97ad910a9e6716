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

package memory

import (
	"github.com/GaryFrazier/rustyNES/logger"
)

// oamDMA copies the page of memory indicated by the data to the PPU's object
// attribute memory, starting at the current OAM address.
func (mem *Memory) oamDMA(page uint8) {
	if mem.ppu == nil {
		return
	}

	origin := uint16(page) << 8
	for i := uint16(0); i < 256; i++ {
		mem.ppu.WriteOAM(mem.Read(origin + i))
	}

	logger.Logf(mem.perm, "memory", "oam dma from %#04x", origin)

	if mem.staller != nil {
		mem.staller.StallDMA()
	}
}
