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

package registers

import (
	"strings"
)

// StatusFlag identifies a single bit in the status register.
type StatusFlag uint8

// List of valid StatusFlag values.
const (
	Carry            StatusFlag = 0x01
	Zero             StatusFlag = 0x02
	InterruptDisable StatusFlag = 0x04
	DecimalMode      StatusFlag = 0x08
	Break            StatusFlag = 0x10
	Unused           StatusFlag = 0x20
	Overflow         StatusFlag = 0x40
	Sign             StatusFlag = 0x80
)

// the bits of the status register that are not affected by PLP and RTI
const pulledMask = uint8(Break | Unused)

// StatusRegister is the special purpose register that stores the flags of
// the CPU. The unused bit always reads as set.
type StatusRegister struct {
	value uint8
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{value: uint8(Unused)}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}
	flag := func(f StatusFlag, set rune, unset rune) {
		if sr.Contains(f) {
			s.WriteRune(set)
		} else {
			s.WriteRune(unset)
		}
	}

	flag(Sign, 'N', 'n')
	flag(Overflow, 'V', 'v')
	s.WriteRune('-')
	flag(Break, 'B', 'b')
	flag(DecimalMode, 'D', 'd')
	flag(InterruptDisable, 'I', 'i')
	flag(Zero, 'Z', 'z')
	flag(Carry, 'C', 'c')

	return s.String()
}

// Reset status flags to the power-on state.
func (sr *StatusRegister) Reset() {
	sr.value = uint8(InterruptDisable | Unused)
}

// Set or clear a flag.
func (sr *StatusRegister) Set(f StatusFlag, v bool) {
	if v {
		sr.value |= uint8(f)
	} else {
		sr.value &^= uint8(f)
	}
	sr.value |= uint8(Unused)
}

// Contains returns true if flag is set.
func (sr StatusRegister) Contains(f StatusFlag) bool {
	return sr.value&uint8(f) == uint8(f)
}

// Bits returns the raw value of the register.
func (sr StatusRegister) Bits() uint8 {
	return sr.value | uint8(Unused)
}

// Load the register with a raw value.
func (sr *StatusRegister) Load(v uint8) {
	sr.value = v | uint8(Unused)
}

// Push returns the value of the register as it should be written to the
// stack. The break flag in the pushed value indicates whether the push was
// the result of a PHP or BRK instruction (true) or of an interrupt (false).
func (sr StatusRegister) Push(brk bool) uint8 {
	v := sr.value | uint8(Unused)
	if brk {
		return v | uint8(Break)
	}
	return v &^ uint8(Break)
}

// Pull sets the register from a value taken from the stack. The break and
// unused bits are unaffected.
func (sr *StatusRegister) Pull(v uint8) {
	sr.value = (sr.value & pulledMask) | (v &^ pulledMask) | uint8(Unused)
}

// Carry returns the state of the carry flag.
func (sr StatusRegister) Carry() bool {
	return sr.Contains(Carry)
}

// Zero returns the state of the zero flag.
func (sr StatusRegister) Zero() bool {
	return sr.Contains(Zero)
}

// InterruptDisable returns the state of the interrupt disable flag.
func (sr StatusRegister) InterruptDisable() bool {
	return sr.Contains(InterruptDisable)
}

// DecimalMode returns the state of the decimal flag. The flag has no effect
// on arithmetic.
func (sr StatusRegister) DecimalMode() bool {
	return sr.Contains(DecimalMode)
}

// Overflow returns the state of the overflow flag.
func (sr StatusRegister) Overflow() bool {
	return sr.Contains(Overflow)
}

// Sign returns the state of the sign (negative) flag.
func (sr StatusRegister) Sign() bool {
	return sr.Contains(Sign)
}

// SetZN sets the zero and sign flags according to the value.
func (sr *StatusRegister) SetZN(v uint8) {
	sr.Set(Zero, v == 0)
	sr.Set(Sign, v&0x80 == 0x80)
}
