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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/GaryFrazier/rustyNES/hardware/cpu"
)

// Digest implementations calculate a fingerprint of the emulation.
type Digest interface {
	Hash() string
	ResetDigest()
}

// the number of bytes of CPU state added to the chain for every instruction:
// PC (2), A, X, Y, SP, SR and the cycle count (8)
const stateSize = 2 + 5 + 8

// CPU fingerprints the state of the CPU after every instruction.
type CPU struct {
	digest [sha1.Size]byte
	state  []byte

	// the number of updates since the last reset
	count int
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU() *CPU {
	return &CPU{
		state: make([]byte, sha1.Size+stateSize),
	}
}

func (dig *CPU) String() string {
	return fmt.Sprintf("%s (%d instructions)", dig.Hash(), dig.count)
}

// Hash implements the Digest interface.
func (dig *CPU) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *CPU) ResetDigest() {
	clear(dig.digest[:])
	dig.count = 0
}

// Update adds the current state of the CPU to the fingerprint.
func (dig *CPU) Update(mc *cpu.CPU) {
	// chain fingerprints by copying the previous value to the head of the
	// state data
	n := copy(dig.state, dig.digest[:])

	binary.LittleEndian.PutUint16(dig.state[n:], mc.PC.Address())
	n += 2
	dig.state[n] = mc.A.Value()
	dig.state[n+1] = mc.X.Value()
	dig.state[n+2] = mc.Y.Value()
	dig.state[n+3] = mc.SP.Value()
	dig.state[n+4] = mc.Status.Bits()
	n += 5
	binary.LittleEndian.PutUint64(dig.state[n:], mc.Cycles)

	dig.digest = sha1.Sum(dig.state)
	dig.count++
}
