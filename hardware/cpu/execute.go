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

package cpu

import (
	"github.com/GaryFrazier/rustyNES/curated"
	"github.com/GaryFrazier/rustyNES/hardware/cpu/instructions"
	"github.com/GaryFrazier/rustyNES/hardware/cpu/registers"
	"github.com/GaryFrazier/rustyNES/hardware/memory/cpubus"
	"github.com/GaryFrazier/rustyNES/logger"
)

// ExecuteInstruction performs the instruction at the current PC in its
// entirety. The cost of the instruction is recorded in LastResult.Cycles.
//
// Interrupts are not checked. Use RunCycle() for that.
func (mc *CPU) ExecuteInstruction() error {
	if mc.Killed {
		return curated.Errorf(KilledCPU, mc.PC.Address())
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode := mc.read8BitPC()
	defn := instructions.Lookup(opcode)

	mc.LastResult.Defn = defn
	mc.LastResult.Cycles = defn.Cycles

	// fetch operand
	var operand uint16
	switch defn.Bytes {
	case 2:
		operand = uint16(mc.read8BitPC())
	case 3:
		operand = mc.read16BitPC()
	}
	mc.LastResult.InstructionData = operand

	// the byte following BRK is padding and is skipped over. it does not
	// form part of the instruction
	if defn.Operator == instructions.Brk {
		mc.PC.Add(1)
	}

	var address uint16
	var value uint8

	switch defn.AddressingMode {
	case instructions.Implied:
		value = mc.A.Value()

	case instructions.Immediate:
		value = uint8(operand)

	case instructions.Relative:
		value = uint8(operand)

	default:
		var pageFault bool
		address, pageFault = mc.resolve(defn.AddressingMode, operand)
		if pageFault && defn.PageSensitive {
			mc.LastResult.PageFault = true
			mc.LastResult.Cycles++
		}

		if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
			value = mc.mem.Read(address)
		}
	}

	switch defn.Operator {
	case instructions.Nop:

	case instructions.Clc:
		mc.Status.Set(registers.Carry, false)

	case instructions.Cld:
		mc.Status.Set(registers.DecimalMode, false)

	case instructions.Cli:
		mc.Status.Set(registers.InterruptDisable, false)

	case instructions.Clv:
		mc.Status.Set(registers.Overflow, false)

	case instructions.Sec:
		mc.Status.Set(registers.Carry, true)

	case instructions.Sed:
		mc.Status.Set(registers.DecimalMode, true)

	case instructions.Sei:
		mc.Status.Set(registers.InterruptDisable, true)

	case instructions.Pha:
		mc.push(mc.A.Value())

	case instructions.Pla:
		mc.A.Load(mc.pull())
		mc.Status.SetZN(mc.A.Value())

	case instructions.Php:
		mc.push(mc.Status.Push(true))

	case instructions.Plp:
		mc.Status.Pull(mc.pull())

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.SetZN(mc.A.Value())

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.SetZN(mc.X.Value())

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.SetZN(mc.A.Value())

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.SetZN(mc.X.Value())

	case instructions.Txs:
		// does not affect the status register
		mc.SP.Load(mc.X.Value())

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.And:
		mc.A.AND(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.SetZN(mc.X.Value())

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Sta:
		mc.mem.Write(address, mc.A.Value())

	case instructions.Stx:
		mc.mem.Write(address, mc.X.Value())

	case instructions.Sty:
		mc.mem.Write(address, mc.Y.Value())

	case instructions.Inx:
		mc.X.Load(mc.X.Value() + 1)
		mc.Status.SetZN(mc.X.Value())

	case instructions.Iny:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Dex:
		mc.X.Load(mc.X.Value() - 1)
		mc.Status.SetZN(mc.X.Value())

	case instructions.Dey:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Asl:
		value = mc.shift(defn, address, value, func(r *registers.Register) bool {
			return r.ASL()
		})

	case instructions.Lsr:
		value = mc.shift(defn, address, value, func(r *registers.Register) bool {
			return r.LSR()
		})

	case instructions.Rol:
		carry := mc.Status.Carry()
		value = mc.shift(defn, address, value, func(r *registers.Register) bool {
			return r.ROL(carry)
		})

	case instructions.Ror:
		carry := mc.Status.Carry()
		value = mc.shift(defn, address, value, func(r *registers.Register) bool {
			return r.ROR(carry)
		})

	case instructions.Adc:
		mc.adc(value)

	case instructions.Sbc:
		mc.sbc(value)

	case instructions.Cmp:
		mc.compare(mc.A.Value(), value)

	case instructions.Cpx:
		mc.compare(mc.X.Value(), value)

	case instructions.Cpy:
		mc.compare(mc.Y.Value(), value)

	case instructions.Bit:
		mc.acc8.Load(value)
		mc.Status.Set(registers.Sign, mc.acc8.IsNegative())
		mc.Status.Set(registers.Overflow, mc.acc8.IsBitV())
		mc.acc8.AND(mc.A.Value())
		mc.Status.Set(registers.Zero, mc.acc8.IsZero())

	case instructions.Inc:
		value++
		mc.mem.Write(address, value)
		mc.Status.SetZN(value)

	case instructions.Dec:
		value--
		mc.mem.Write(address, value)
		mc.Status.SetZN(value)

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry(), value)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry(), value)

	case instructions.Beq:
		mc.branch(mc.Status.Zero(), value)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero(), value)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign(), value)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign(), value)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow(), value)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow(), value)

	case instructions.Jsr:
		// the address pushed to the stack is the address of the last byte
		// of the JSR instruction
		mc.push16(mc.PC.Address() - 1)
		mc.PC.Load(address)

	case instructions.Rts:
		mc.PC.Load(mc.pull16() + 1)

	case instructions.Brk:
		mc.push16(mc.PC.Address())
		mc.push(mc.Status.Push(true))
		mc.Status.Set(registers.InterruptDisable, true)
		mc.PC.Load(mc.read16Bit(cpubus.IRQ))

	case instructions.Rti:
		mc.Status.Pull(mc.pull())
		mc.PC.Load(mc.pull16())

	// undocumented instructions

	case instructions.Lax:
		mc.A.Load(value)
		mc.X.Load(value)
		mc.Status.SetZN(value)

	case instructions.Sax:
		mc.mem.Write(address, mc.A.Value()&mc.X.Value())

	case instructions.Dcp:
		value--
		mc.mem.Write(address, value)
		mc.compare(mc.A.Value(), value)

	case instructions.Isc:
		value++
		mc.mem.Write(address, value)
		mc.sbc(value)

	case instructions.Slo:
		mc.acc8.Load(value)
		mc.Status.Set(registers.Carry, mc.acc8.ASL())
		value = mc.acc8.Value()
		mc.mem.Write(address, value)
		mc.A.ORA(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Rla:
		mc.acc8.Load(value)
		mc.Status.Set(registers.Carry, mc.acc8.ROL(mc.Status.Carry()))
		value = mc.acc8.Value()
		mc.mem.Write(address, value)
		mc.A.AND(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Sre:
		mc.acc8.Load(value)
		mc.Status.Set(registers.Carry, mc.acc8.LSR())
		value = mc.acc8.Value()
		mc.mem.Write(address, value)
		mc.A.EOR(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Rra:
		mc.acc8.Load(value)
		mc.Status.Set(registers.Carry, mc.acc8.ROR(mc.Status.Carry()))
		value = mc.acc8.Value()
		mc.mem.Write(address, value)
		mc.adc(value)

	case instructions.Anc:
		mc.A.AND(value)
		mc.Status.SetZN(mc.A.Value())
		mc.Status.Set(registers.Carry, mc.A.IsNegative())

	case instructions.Alr:
		mc.A.AND(value)
		mc.Status.Set(registers.Carry, mc.A.LSR())
		mc.Status.SetZN(mc.A.Value())

	case instructions.Arr:
		mc.A.AND(value)
		mc.A.ROR(mc.Status.Carry())
		mc.Status.SetZN(mc.A.Value())
		bit6 := mc.A.Value()&0x40 == 0x40
		bit5 := mc.A.Value()&0x20 == 0x20
		mc.Status.Set(registers.Carry, bit6)
		mc.Status.Set(registers.Overflow, bit6 != bit5)

	case instructions.Axs:
		ax := mc.A.Value() & mc.X.Value()
		mc.Status.Set(registers.Carry, ax >= value)
		mc.X.Load(ax - value)
		mc.Status.SetZN(mc.X.Value())

	case instructions.Xaa:
		// the magic constant varies between chips. 0xee is the most common
		mc.A.Load((mc.A.Value() | 0xee) & mc.X.Value() & value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Lxa:
		// same magic constant as XAA
		v := (mc.A.Value() | 0xee) & value
		mc.A.Load(v)
		mc.X.Load(v)
		mc.Status.SetZN(v)

	case instructions.Ahx:
		h := uint8((address-mc.Y.Address())>>8) + 1
		mc.mem.Write(address, mc.A.Value()&mc.X.Value()&h)

	case instructions.Tas:
		mc.SP.Load(mc.A.Value() & mc.X.Value())
		h := uint8((address-mc.Y.Address())>>8) + 1
		mc.mem.Write(address, mc.SP.Value()&h)

	case instructions.Shy:
		h := uint8((address-mc.X.Address())>>8) + 1
		mc.mem.Write(address, mc.Y.Value()&h)

	case instructions.Shx:
		h := uint8((address-mc.Y.Address())>>8) + 1
		mc.mem.Write(address, mc.X.Value()&h)

	case instructions.Las:
		v := value & mc.SP.Value()
		mc.A.Load(v)
		mc.X.Load(v)
		mc.SP.Load(v)
		mc.Status.SetZN(v)

	case instructions.Kil:
		// the PC is left pointing at the byte after the KIL opcode
		mc.Killed = true
		logger.Logf(mc.perm, "cpu", "KIL instruction (%#02x) at (%#04x)", defn.OpCode, mc.LastResult.Address)

	default:
		return curated.Errorf(UnimplementedInstruction, opcode, mc.LastResult.Address)
	}

	mc.LastResult.Final = true

	return nil
}

// shift performs the shift or rotate operation on either the accumulator or
// on memory, depending on the addressing mode of the instruction. the carry
// flag is set from the bit shifted out.
func (mc *CPU) shift(defn *instructions.Definition, address uint16, value uint8, op func(r *registers.Register) bool) uint8 {
	if defn.AddressingMode == instructions.Implied {
		mc.Status.Set(registers.Carry, op(&mc.A))
		mc.Status.SetZN(mc.A.Value())
		return mc.A.Value()
	}

	mc.acc8.Load(value)
	mc.Status.Set(registers.Carry, op(&mc.acc8))
	value = mc.acc8.Value()
	mc.mem.Write(address, value)
	mc.Status.SetZN(value)
	return value
}

func (mc *CPU) adc(value uint8) {
	carry, overflow := mc.A.Add(value, mc.Status.Carry())
	mc.Status.Set(registers.Carry, carry)
	mc.Status.Set(registers.Overflow, overflow)
	mc.Status.SetZN(mc.A.Value())
}

func (mc *CPU) sbc(value uint8) {
	carry, overflow := mc.A.Subtract(value, mc.Status.Carry())
	mc.Status.Set(registers.Carry, carry)
	mc.Status.Set(registers.Overflow, overflow)
	mc.Status.SetZN(mc.A.Value())
}

// compare sets the carry, zero and sign flags as though value had been
// subtracted from reg. the sign flag is bit 7 of the 8 bit difference, so
// CMP #$00 with A=$ff sets N.
func (mc *CPU) compare(reg uint8, value uint8) {
	mc.acc8.Load(reg)
	carry, _ := mc.acc8.Subtract(value, true)
	mc.Status.Set(registers.Carry, carry)
	mc.Status.SetZN(mc.acc8.Value())
}

// branch to the signed offset if flag is true. taking the branch costs one
// additional cycle and crossing a page costs one more.
func (mc *CPU) branch(flag bool, offset uint8) {
	if !flag {
		return
	}

	mc.LastResult.BranchSuccess = true
	mc.LastResult.Cycles++

	if mc.PC.AddSigned(offset) {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}
}
