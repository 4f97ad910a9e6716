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

package disassembly

import (
	"fmt"

	"github.com/GaryFrazier/rustyNES/hardware/cpu/execution"
	"github.com/GaryFrazier/rustyNES/hardware/cpu/instructions"
)

// Entry is a disassambled instruction. The string fields are formatted for
// presentation.
type Entry struct {
	// the result the entry was created from. for a static disassembly the
	// result is decoded without being executed and the Final field is false
	Result execution.Result

	Label    string
	Address  string
	Bytecode string
	Operator string
	Operand  string

	// the number of cycles defined for the instruction. page sensitive
	// instructions are annotated with an asterisk and branch instructions
	// show the taken cycles
	Cycles string

	// notes about the execution of the instruction, if it was executed
	Notes string
}

func (e *Entry) String() string {
	if e.Operand == "" {
		return e.Operator
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operand)
}

// addrModeDecoration decorates the operand according to the addressing mode
// of the instruction.
func addrModeDecoration(operand string, mode instructions.AddressingMode) string {
	switch mode {
	case instructions.Immediate:
		return fmt.Sprintf("#%s", operand)
	case instructions.Indirect:
		return fmt.Sprintf("(%s)", operand)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("(%s,X)", operand)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("(%s),Y", operand)
	case instructions.AbsoluteIndexedX, instructions.ZeroPageIndexedX:
		return fmt.Sprintf("%s,X", operand)
	case instructions.AbsoluteIndexedY, instructions.ZeroPageIndexedY:
		return fmt.Sprintf("%s,Y", operand)
	}
	return operand
}

// branchDestination returns the address the branch instruction at address
// jumps to when the branch is taken.
func branchDestination(address uint16, offset uint16) uint16 {
	return address + 2 + uint16(int8(uint8(offset)))
}

// cyclesNotation returns the cycles string for the definition.
func cyclesNotation(defn *instructions.Definition) string {
	if defn.IsBranch() {
		return fmt.Sprintf("%d/%d", defn.Cycles, defn.Cycles+1)
	}
	if defn.PageSensitive {
		return fmt.Sprintf("%d*", defn.Cycles)
	}
	return fmt.Sprintf("%d", defn.Cycles)
}
