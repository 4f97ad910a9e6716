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

package random

import (
	"math/rand/v2"
	"time"

	"github.com/GaryFrazier/rustyNES/hardware/ppu"
)

// the base seed for all random numbers
var baseSeed uint64

func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Coords is implemented by the PPU.
type Coords interface {
	Coords() (frame int, scanline int, cycle int)
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	coords Coords

	// use zero seed rather than the random base seed
	ZeroSeed bool

	// the stream for the most recent position and seed
	pos  uint64
	seed uint64
	rng  *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(coords Coords) *Random {
	return &Random{
		coords: coords,
	}
}

// translate PPU coordinates into a single value
func position(c Coords) uint64 {
	frame, scanline, cycle := c.Coords()
	return uint64(frame)*ppu.ScanlinesPerFrame*ppu.CyclesPerScanline +
		uint64(scanline)*ppu.CyclesPerScanline + uint64(cycle)
}

func (rnd *Random) stream() *rand.Rand {
	pos := position(rnd.coords)
	seed := baseSeed
	if rnd.ZeroSeed {
		seed = 0
	}
	if rnd.rng == nil || pos != rnd.pos || seed != rnd.seed {
		rnd.pos = pos
		rnd.seed = seed
		rnd.rng = rand.New(rand.NewPCG(seed, pos))
	}
	return rnd.rng
}

// IntN returns a number in the range [0, n). Panics if n <= 0.
func (rnd *Random) IntN(n int) int {
	return rnd.stream().IntN(n)
}
