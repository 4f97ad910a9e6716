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
	"strings"

	"github.com/GaryFrazier/rustyNES/disassembly/symbols"
	"github.com/GaryFrazier/rustyNES/hardware/cpu/execution"
	"github.com/GaryFrazier/rustyNES/hardware/cpu/instructions"
)

// FormatResult creates an Entry for the supplied result. The symbols
// argument can be nil, in which case operands are not replaced by symbols.
//
// A result that is not final is formatted as far as the number of bytes that
// have been read allows.
func FormatResult(sym *symbols.Symbols, result execution.Result) *Entry {
	e := &Entry{
		Result:  result,
		Address: fmt.Sprintf("$%04x", result.Address),
	}

	if sym != nil {
		if l, ok := sym.GetLabel(result.Address); ok {
			e.Label = l
		}
	}

	if result.Interrupt {
		e.Operator = "interrupt"
		e.Cycles = fmt.Sprintf("%d", result.Cycles)
		return e
	}

	// the opcode has not been read yet
	if result.Defn == nil {
		e.Operator = "???"
		return e
	}

	e.Operator = result.Defn.Operator.String()
	e.Cycles = cyclesNotation(result.Defn)

	// bytecode and operand string is assembled depending on the number of
	// expected bytes and the number of bytes read so far
	var operand string

	switch result.Defn.Bytes {
	case 3:
		switch result.ByteCount {
		case 3:
			operand = fmt.Sprintf("$%04x", result.InstructionData)
			e.Bytecode = fmt.Sprintf("%02x %02x %02x", result.Defn.OpCode, result.InstructionData&0x00ff, result.InstructionData>>8)
		case 2:
			operand = fmt.Sprintf("$??%02x", result.InstructionData&0x00ff)
			e.Bytecode = fmt.Sprintf("%02x %02x ??", result.Defn.OpCode, result.InstructionData&0x00ff)
		default:
			operand = "$????"
			e.Bytecode = fmt.Sprintf("%02x ?? ??", result.Defn.OpCode)
		}
	case 2:
		switch result.ByteCount {
		case 2:
			operand = fmt.Sprintf("$%02x", result.InstructionData)
			e.Bytecode = fmt.Sprintf("%02x %02x", result.Defn.OpCode, result.InstructionData&0x00ff)
		default:
			operand = "$??"
			e.Bytecode = fmt.Sprintf("%02x ??", result.Defn.OpCode)
		}
	default:
		e.Bytecode = fmt.Sprintf("%02x", result.Defn.OpCode)
	}

	// symbols are only used for complete operands
	if result.Defn.Bytes > 1 && result.ByteCount == result.Defn.Bytes {
		operand = symbolise(sym, result, operand)
	}

	e.Operand = addrModeDecoration(operand, result.Defn.AddressingMode)

	if result.Final {
		e.Notes = notes(result)
	}

	return e
}

// symbolise returns the operand with a symbol substituted for the address
// where possible. branch operands are always converted to the destination
// address.
func symbolise(sym *symbols.Symbols, result execution.Result, operand string) string {
	defn := result.Defn
	data := result.InstructionData

	if defn.IsBranch() {
		data = branchDestination(result.Address, data)
		operand = fmt.Sprintf("$%04x", data)
	}

	if sym == nil {
		return operand
	}

	switch defn.Effect {
	case instructions.Flow, instructions.Subroutine:
		if defn.AddressingMode == instructions.Indirect {
			break
		}
		if l, ok := sym.GetLabel(data); ok {
			return l
		}
	case instructions.Read:
		if defn.AddressingMode == instructions.Immediate {
			break
		}
		if s, ok := sym.GetReadSymbol(data); ok {
			return s
		}
	case instructions.Write, instructions.RMW:
		if s, ok := sym.GetWriteSymbol(data); ok {
			return s
		}
	}

	return operand
}

// notes returns a summary of the how the instruction was executed.
func notes(result execution.Result) string {
	var s strings.Builder

	s.WriteString(fmt.Sprintf("%d", result.Cycles))

	if result.PageFault {
		s.WriteString(" page-fault")
	}

	if result.Defn.IsBranch() {
		if result.BranchSuccess {
			s.WriteString(" branched")
		} else {
			s.WriteString(" not-branched")
		}
	}

	if result.CPUBug != execution.NoBug {
		s.WriteString(fmt.Sprintf(" [%s]", result.CPUBug))
	}

	return s.String()
}
