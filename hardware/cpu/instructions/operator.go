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

package instructions

import "strings"

// Operator identifies the operation performed by an instruction, independent
// of the addressing mode.
type Operator int

// List of operators. The documented instruction set is followed by the
// undocumented instructions.
const (
	Nop Operator = iota
	Adc
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	Lax
	Sax
	Dcp
	Isc
	Slo
	Rla
	Sre
	Rra
	Anc
	Alr
	Arr
	Axs
	Xaa
	Ahx
	Tas
	Shy
	Shx
	Las
	Lxa
	Kil

	numOperators
)

var operatorNames = [numOperators]string{
	"NOP", "ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE",
	"BPL", "BRK", "BVC", "BVS", "CLC", "CLD", "CLI", "CLV", "CMP", "CPX",
	"CPY", "DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY", "JMP", "JSR",
	"LDA", "LDX", "LDY", "LSR", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA", "STX", "STY",
	"TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
	"LAX", "SAX", "DCP", "ISC", "SLO", "RLA", "SRE", "RRA", "ANC", "ALR",
	"ARR", "AXS", "XAA", "AHX", "TAS", "SHY", "SHX", "LAS", "LXA", "KIL",
}

func (o Operator) String() string {
	if o < 0 || o >= numOperators {
		return "???"
	}
	return operatorNames[o]
}

// OperatorFromMnemonic returns the Operator for the mnemonic. The mnemonic is
// not case sensitive. Returns false if the mnemonic is not recognised.
func OperatorFromMnemonic(mnemonic string) (Operator, bool) {
	mnemonic = strings.ToUpper(mnemonic)
	for i, n := range operatorNames {
		if n == mnemonic {
			return Operator(i), true
		}
	}
	return Nop, false
}
