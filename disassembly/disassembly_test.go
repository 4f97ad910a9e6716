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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/GaryFrazier/rustyNES/disassembly"
	"github.com/GaryFrazier/rustyNES/hardware/cpu/execution"
	"github.com/GaryFrazier/rustyNES/hardware/cpu/instructions"
	"github.com/GaryFrazier/rustyNES/hardware/memory/cartridge"
	"github.com/GaryFrazier/rustyNES/test"
)

type mockMem [0x10000]uint8

func (mem *mockMem) Peek(address uint16) uint8 {
	return mem[address]
}

func (mem *mockMem) Poke(address uint16, value uint8) {
	mem[address] = value
}

func newProgram() *mockMem {
	mem := &mockMem{}
	copy(mem[0x8000:], []uint8{
		0xa9, 0x80, // LDA #$80
		0x8d, 0x00, 0x20, // STA $2000
		0xad, 0x02, 0x20, // LDA $2002
		0x10, 0xfb, // BPL $8005
		0x4c, 0x00, 0x80, // JMP $8000
		0xab, 0x00, // LXA #$00
	})
	mem.Poke(0xfffc, 0x00)
	mem.Poke(0xfffd, 0x80)
	return mem
}

func TestFromMemory(t *testing.T) {
	dsm, err := disassembly.FromMemory(newProgram(), nil, 0x8000, 0x800d)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dsm.Len(), 6)

	e, ok := dsm.Get(0x8000)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Label, "RESET")
	test.ExpectEquality(t, e.Address, "$8000")
	test.ExpectEquality(t, e.Bytecode, "a9 80")
	test.ExpectEquality(t, e.Operator, "LDA")
	test.ExpectEquality(t, e.Operand, "#$80")
	test.ExpectEquality(t, e.Cycles, "2")
	test.ExpectEquality(t, e.String(), "LDA #$80")

	// register symbols
	e, ok = dsm.Get(0x8002)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Bytecode, "8d 00 20")
	test.ExpectEquality(t, e.Operand, "PPUCTRL")

	e, ok = dsm.Get(0x8005)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Operand, "PPUSTATUS")

	// branch operands are shown as the destination address
	e, ok = dsm.Get(0x8008)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Operator, "BPL")
	test.ExpectEquality(t, e.Operand, "$8005")
	test.ExpectEquality(t, e.Cycles, "2/3")

	// labels replace jump destinations
	e, ok = dsm.Get(0x800a)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.String(), "JMP RESET")

	e, ok = dsm.Get(0x800d)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.String(), "LXA #$00")
	test.ExpectEquality(t, e.Bytecode, "ab 00")

	// addresses inside an instruction have no entry
	_, ok = dsm.Get(0x8001)
	test.ExpectFailure(t, ok)

	_, err = disassembly.FromMemory(newProgram(), nil, 0x8000, 0x7fff)
	test.ExpectFailure(t, err)
}

func TestWrite(t *testing.T) {
	dsm, err := disassembly.FromMemory(newProgram(), nil, 0x8000, 0x800d)
	test.DemandSuccess(t, err)

	w := &strings.Builder{}
	dsm.Write(w, disassembly.WriteAttr{Bytecode: true})

	lines := strings.Split(strings.TrimSpace(w.String()), "\n")
	test.DemandEquality(t, len(lines), 7)
	test.ExpectEquality(t, lines[0], "RESET")
	test.ExpectEquality(t, lines[1], "$8000  a9 80     LDA #$80")
	test.ExpectEquality(t, lines[2], "$8002  8d 00 20  STA PPUCTRL")

	w.Reset()
	n := dsm.Grep(w, disassembly.GrepOperator, "lda", false)
	test.ExpectEquality(t, n, 2)
	test.ExpectSuccess(t, strings.Contains(w.String(), "LDA PPUSTATUS"))

	w.Reset()
	n = dsm.Grep(w, disassembly.GrepOperator, "lda", true)
	test.ExpectEquality(t, n, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestFormatResult(t *testing.T) {
	r := execution.Result{
		Address:         0x8000,
		Defn:            instructions.Lookup(0xbd),
		ByteCount:       3,
		InstructionData: 0x02ff,
		Cycles:          5,
		PageFault:       true,
		Final:           true,
	}

	e := disassembly.FormatResult(nil, r)
	test.ExpectEquality(t, e.String(), "LDA $02ff,X")
	test.ExpectEquality(t, e.Cycles, "4*")
	test.ExpectEquality(t, e.Notes, "5 page-fault")

	r = execution.Result{
		Address:         0x8000,
		Defn:            instructions.Lookup(0xd0),
		ByteCount:       2,
		InstructionData: 0x02,
		Cycles:          3,
		BranchSuccess:   true,
		Final:           true,
	}

	e = disassembly.FormatResult(nil, r)
	test.ExpectEquality(t, e.String(), "BNE $8004")
	test.ExpectEquality(t, e.Notes, "3 branched")

	// partially decoded instruction
	r = execution.Result{
		Address:   0x8000,
		Defn:      instructions.Lookup(0x4c),
		ByteCount: 2,
	}

	e = disassembly.FormatResult(nil, r)
	test.ExpectEquality(t, e.Bytecode, "4c 00 ??")
	test.ExpectEquality(t, e.Operand, "$??00")
	test.ExpectEquality(t, e.Notes, "")

	// nothing decoded
	e = disassembly.FormatResult(nil, execution.Result{Address: 0x8000})
	test.ExpectEquality(t, e.Operator, "???")
	test.ExpectEquality(t, e.Bytecode, "")

	w := &strings.Builder{}
	disassembly.WriteEntry(w, disassembly.WriteAttr{Notes: true}, disassembly.FormatResult(nil, execution.Result{Interrupt: true, Cycles: 7, Final: true}))
	test.ExpectEquality(t, w.String(), "$0000  interrupt\n")
}

func TestFromCartridge(t *testing.T) {
	data := []uint8{'N', 'E', 'S', 0x1a, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]uint8, cartridge.PRGBankSize)
	copy(prg, []uint8{0x78, 0xd8}) // SEI; CLD
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0xc0
	data = append(data, prg...)

	cart, err := cartridge.Parse(data)
	test.DemandSuccess(t, err)

	dsm, err := disassembly.FromCartridge(cart)
	test.DemandSuccess(t, err)

	// the single bank is mirrored. the reset vector points into the mirror
	e, ok := dsm.Get(0xc000)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Label, "RESET")
	test.ExpectEquality(t, e.Operator, "SEI")

	e, ok = dsm.Get(0x8001)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Operator, "CLD")

	_, err = disassembly.FromCartridge(nil)
	test.ExpectFailure(t, err)
}
