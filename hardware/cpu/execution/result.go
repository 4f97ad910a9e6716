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

package execution

import (
	"github.com/GaryFrazier/rustyNES/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the definition of the instruction. nil until the opcode has been read
	Defn *instructions.Definition

	// the number of bytes read during instruction decode
	ByteCount int

	// the operand of the instruction. for a branch instruction this is the
	// unsigned offset value
	InstructionData uint16

	// the number of cycles the instruction actually took. usually the same as
	// Defn.Cycles but page faults and branches can add to this
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether the branch instruction was taken
	BranchSuccess bool

	// a known CPU bug was triggered
	CPUBug Bug

	// the result is for an interrupt sequence (NMI or IRQ) and not an
	// instruction. Defn will be nil
	Interrupt bool

	// whether this data has been finalised. other fields may be undefined if
	// Final is false
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}
