// generated code - do not change

package instructions

// definitions is the table of instruction definitions for the 2A03, indexed
// by opcode.
var definitions = [256]*Definition{
	0x00: {OpCode: 0x00, Mnemonic: "BRK", Operator: Brk, Bytes: 1, Cycles: 7, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt, Undocumented: false},
	0x01: {OpCode: 0x01, Mnemonic: "ORA", Operator: Ora, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read, Undocumented: false},
	0x02: {OpCode: 0x02, Mnemonic: "KIL", Operator: Kil, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Flow, Undocumented: true},
	0x03: {OpCode: 0x03, Mnemonic: "SLO", Operator: Slo, Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x04: {OpCode: 0x04, Mnemonic: "NOP", Operator: Nop, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: true},
	0x05: {OpCode: 0x05, Mnemonic: "ORA", Operator: Ora, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false},
	0x06: {OpCode: 0x06, Mnemonic: "ASL", Operator: Asl, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: false},
	0x07: {OpCode: 0x07, Mnemonic: "SLO", Operator: Slo, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x08: {OpCode: 0x08, Mnemonic: "PHP", Operator: Php, Bytes: 1, Cycles: 3, AddressingMode: Implied, PageSensitive: false, Effect: Write, Undocumented: false},
	0x09: {OpCode: 0x09, Mnemonic: "ORA", Operator: Ora, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false},
	0x0a: {OpCode: 0x0a, Mnemonic: "ASL", Operator: Asl, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: RMW, Undocumented: false},
	0x0b: {OpCode: 0x0b, Mnemonic: "ANC", Operator: Anc, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	0x0c: {OpCode: 0x0c, Mnemonic: "NOP", Operator: Nop, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: true},
	0x0d: {OpCode: 0x0d, Mnemonic: "ORA", Operator: Ora, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false},
	0x0e: {OpCode: 0x0e, Mnemonic: "ASL", Operator: Asl, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: false},
	0x0f: {OpCode: 0x0f, Mnemonic: "SLO", Operator: Slo, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x10: {OpCode: 0x10, Mnemonic: "BPL", Operator: Bpl, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow, Undocumented: false},
	0x11: {OpCode: 0x11, Mnemonic: "ORA", Operator: Ora, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read, Undocumented: false},
	0x12: {OpCode: 0x12, Mnemonic: "KIL", Operator: Kil, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Flow, Undocumented: true},
	0x13: {OpCode: 0x13, Mnemonic: "SLO", Operator: Slo, Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x14: {OpCode: 0x14, Mnemonic: "NOP", Operator: Nop, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: true},
	0x15: {OpCode: 0x15, Mnemonic: "ORA", Operator: Ora, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: false},
	0x16: {OpCode: 0x16, Mnemonic: "ASL", Operator: Asl, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false},
	0x17: {OpCode: 0x17, Mnemonic: "SLO", Operator: Slo, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x18: {OpCode: 0x18, Mnemonic: "CLC", Operator: Clc, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	0x19: {OpCode: 0x19, Mnemonic: "ORA", Operator: Ora, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: false},
	0x1a: {OpCode: 0x1a, Mnemonic: "NOP", Operator: Nop, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true},
	0x1b: {OpCode: 0x1b, Mnemonic: "SLO", Operator: Slo, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x1c: {OpCode: 0x1c, Mnemonic: "NOP", Operator: Nop, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: true},
	0x1d: {OpCode: 0x1d, Mnemonic: "ORA", Operator: Ora, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: false},
	0x1e: {OpCode: 0x1e, Mnemonic: "ASL", Operator: Asl, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false},
	0x1f: {OpCode: 0x1f, Mnemonic: "SLO", Operator: Slo, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x20: {OpCode: 0x20, Mnemonic: "JSR", Operator: Jsr, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: Subroutine, Undocumented: false},
	0x21: {OpCode: 0x21, Mnemonic: "AND", Operator: And, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read, Undocumented: false},
	0x22: {OpCode: 0x22, Mnemonic: "KIL", Operator: Kil, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Flow, Undocumented: true},
	0x23: {OpCode: 0x23, Mnemonic: "RLA", Operator: Rla, Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x24: {OpCode: 0x24, Mnemonic: "BIT", Operator: Bit, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false},
	0x25: {OpCode: 0x25, Mnemonic: "AND", Operator: And, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false},
	0x26: {OpCode: 0x26, Mnemonic: "ROL", Operator: Rol, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: false},
	0x27: {OpCode: 0x27, Mnemonic: "RLA", Operator: Rla, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x28: {OpCode: 0x28, Mnemonic: "PLP", Operator: Plp, Bytes: 1, Cycles: 4, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	0x29: {OpCode: 0x29, Mnemonic: "AND", Operator: And, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false},
	0x2a: {OpCode: 0x2a, Mnemonic: "ROL", Operator: Rol, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: RMW, Undocumented: false},
	0x2b: {OpCode: 0x2b, Mnemonic: "ANC", Operator: Anc, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	0x2c: {OpCode: 0x2c, Mnemonic: "BIT", Operator: Bit, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false},
	0x2d: {OpCode: 0x2d, Mnemonic: "AND", Operator: And, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false},
	0x2e: {OpCode: 0x2e, Mnemonic: "ROL", Operator: Rol, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: false},
	0x2f: {OpCode: 0x2f, Mnemonic: "RLA", Operator: Rla, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x30: {OpCode: 0x30, Mnemonic: "BMI", Operator: Bmi, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow, Undocumented: false},
	0x31: {OpCode: 0x31, Mnemonic: "AND", Operator: And, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read, Undocumented: false},
	0x32: {OpCode: 0x32, Mnemonic: "KIL", Operator: Kil, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Flow, Undocumented: true},
	0x33: {OpCode: 0x33, Mnemonic: "RLA", Operator: Rla, Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x34: {OpCode: 0x34, Mnemonic: "NOP", Operator: Nop, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: true},
	0x35: {OpCode: 0x35, Mnemonic: "AND", Operator: And, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: false},
	0x36: {OpCode: 0x36, Mnemonic: "ROL", Operator: Rol, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false},
	0x37: {OpCode: 0x37, Mnemonic: "RLA", Operator: Rla, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x38: {OpCode: 0x38, Mnemonic: "SEC", Operator: Sec, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	0x39: {OpCode: 0x39, Mnemonic: "AND", Operator: And, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: false},
	0x3a: {OpCode: 0x3a, Mnemonic: "NOP", Operator: Nop, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true},
	0x3b: {OpCode: 0x3b, Mnemonic: "RLA", Operator: Rla, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x3c: {OpCode: 0x3c, Mnemonic: "NOP", Operator: Nop, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: true},
	0x3d: {OpCode: 0x3d, Mnemonic: "AND", Operator: And, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: false},
	0x3e: {OpCode: 0x3e, Mnemonic: "ROL", Operator: Rol, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false},
	0x3f: {OpCode: 0x3f, Mnemonic: "RLA", Operator: Rla, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x40: {OpCode: 0x40, Mnemonic: "RTI", Operator: Rti, Bytes: 1, Cycles: 6, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt, Undocumented: false},
	0x41: {OpCode: 0x41, Mnemonic: "EOR", Operator: Eor, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read, Undocumented: false},
	0x42: {OpCode: 0x42, Mnemonic: "KIL", Operator: Kil, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Flow, Undocumented: true},
	0x43: {OpCode: 0x43, Mnemonic: "SRE", Operator: Sre, Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x44: {OpCode: 0x44, Mnemonic: "NOP", Operator: Nop, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: true},
	0x45: {OpCode: 0x45, Mnemonic: "EOR", Operator: Eor, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false},
	0x46: {OpCode: 0x46, Mnemonic: "LSR", Operator: Lsr, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: false},
	0x47: {OpCode: 0x47, Mnemonic: "SRE", Operator: Sre, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x48: {OpCode: 0x48, Mnemonic: "PHA", Operator: Pha, Bytes: 1, Cycles: 3, AddressingMode: Implied, PageSensitive: false, Effect: Write, Undocumented: false},
	0x49: {OpCode: 0x49, Mnemonic: "EOR", Operator: Eor, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false},
	0x4a: {OpCode: 0x4a, Mnemonic: "LSR", Operator: Lsr, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: RMW, Undocumented: false},
	0x4b: {OpCode: 0x4b, Mnemonic: "ALR", Operator: Alr, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	0x4c: {OpCode: 0x4c, Mnemonic: "JMP", Operator: Jmp, Bytes: 3, Cycles: 3, AddressingMode: Absolute, PageSensitive: false, Effect: Flow, Undocumented: false},
	0x4d: {OpCode: 0x4d, Mnemonic: "EOR", Operator: Eor, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false},
	0x4e: {OpCode: 0x4e, Mnemonic: "LSR", Operator: Lsr, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: false},
	0x4f: {OpCode: 0x4f, Mnemonic: "SRE", Operator: Sre, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x50: {OpCode: 0x50, Mnemonic: "BVC", Operator: Bvc, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow, Undocumented: false},
	0x51: {OpCode: 0x51, Mnemonic: "EOR", Operator: Eor, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read, Undocumented: false},
	0x52: {OpCode: 0x52, Mnemonic: "KIL", Operator: Kil, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Flow, Undocumented: true},
	0x53: {OpCode: 0x53, Mnemonic: "SRE", Operator: Sre, Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x54: {OpCode: 0x54, Mnemonic: "NOP", Operator: Nop, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: true},
	0x55: {OpCode: 0x55, Mnemonic: "EOR", Operator: Eor, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: false},
	0x56: {OpCode: 0x56, Mnemonic: "LSR", Operator: Lsr, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false},
	0x57: {OpCode: 0x57, Mnemonic: "SRE", Operator: Sre, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x58: {OpCode: 0x58, Mnemonic: "CLI", Operator: Cli, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	0x59: {OpCode: 0x59, Mnemonic: "EOR", Operator: Eor, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: false},
	0x5a: {OpCode: 0x5a, Mnemonic: "NOP", Operator: Nop, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true},
	0x5b: {OpCode: 0x5b, Mnemonic: "SRE", Operator: Sre, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x5c: {OpCode: 0x5c, Mnemonic: "NOP", Operator: Nop, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: true},
	0x5d: {OpCode: 0x5d, Mnemonic: "EOR", Operator: Eor, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: false},
	0x5e: {OpCode: 0x5e, Mnemonic: "LSR", Operator: Lsr, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false},
	0x5f: {OpCode: 0x5f, Mnemonic: "SRE", Operator: Sre, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x60: {OpCode: 0x60, Mnemonic: "RTS", Operator: Rts, Bytes: 1, Cycles: 6, AddressingMode: Implied, PageSensitive: false, Effect: Subroutine, Undocumented: false},
	0x61: {OpCode: 0x61, Mnemonic: "ADC", Operator: Adc, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read, Undocumented: false},
	0x62: {OpCode: 0x62, Mnemonic: "KIL", Operator: Kil, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Flow, Undocumented: true},
	0x63: {OpCode: 0x63, Mnemonic: "RRA", Operator: Rra, Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x64: {OpCode: 0x64, Mnemonic: "NOP", Operator: Nop, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: true},
	0x65: {OpCode: 0x65, Mnemonic: "ADC", Operator: Adc, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false},
	0x66: {OpCode: 0x66, Mnemonic: "ROR", Operator: Ror, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: false},
	0x67: {OpCode: 0x67, Mnemonic: "RRA", Operator: Rra, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x68: {OpCode: 0x68, Mnemonic: "PLA", Operator: Pla, Bytes: 1, Cycles: 4, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	0x69: {OpCode: 0x69, Mnemonic: "ADC", Operator: Adc, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false},
	0x6a: {OpCode: 0x6a, Mnemonic: "ROR", Operator: Ror, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: RMW, Undocumented: false},
	0x6b: {OpCode: 0x6b, Mnemonic: "ARR", Operator: Arr, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	0x6c: {OpCode: 0x6c, Mnemonic: "JMP", Operator: Jmp, Bytes: 3, Cycles: 5, AddressingMode: Indirect, PageSensitive: false, Effect: Flow, Undocumented: false},
	0x6d: {OpCode: 0x6d, Mnemonic: "ADC", Operator: Adc, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false},
	0x6e: {OpCode: 0x6e, Mnemonic: "ROR", Operator: Ror, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: false},
	0x6f: {OpCode: 0x6f, Mnemonic: "RRA", Operator: Rra, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x70: {OpCode: 0x70, Mnemonic: "BVS", Operator: Bvs, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow, Undocumented: false},
	0x71: {OpCode: 0x71, Mnemonic: "ADC", Operator: Adc, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read, Undocumented: false},
	0x72: {OpCode: 0x72, Mnemonic: "KIL", Operator: Kil, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Flow, Undocumented: true},
	0x73: {OpCode: 0x73, Mnemonic: "RRA", Operator: Rra, Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x74: {OpCode: 0x74, Mnemonic: "NOP", Operator: Nop, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: true},
	0x75: {OpCode: 0x75, Mnemonic: "ADC", Operator: Adc, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: false},
	0x76: {OpCode: 0x76, Mnemonic: "ROR", Operator: Ror, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false},
	0x77: {OpCode: 0x77, Mnemonic: "RRA", Operator: Rra, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x78: {OpCode: 0x78, Mnemonic: "SEI", Operator: Sei, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	0x79: {OpCode: 0x79, Mnemonic: "ADC", Operator: Adc, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: false},
	0x7a: {OpCode: 0x7a, Mnemonic: "NOP", Operator: Nop, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true},
	0x7b: {OpCode: 0x7b, Mnemonic: "RRA", Operator: Rra, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x7c: {OpCode: 0x7c, Mnemonic: "NOP", Operator: Nop, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: true},
	0x7d: {OpCode: 0x7d, Mnemonic: "ADC", Operator: Adc, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: false},
	0x7e: {OpCode: 0x7e, Mnemonic: "ROR", Operator: Ror, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false},
	0x7f: {OpCode: 0x7f, Mnemonic: "RRA", Operator: Rra, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true},
	0x80: {OpCode: 0x80, Mnemonic: "NOP", Operator: Nop, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	0x81: {OpCode: 0x81, Mnemonic: "STA", Operator: Sta, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Write, Undocumented: false},
	0x82: {OpCode: 0x82, Mnemonic: "NOP", Operator: Nop, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	0x83: {OpCode: 0x83, Mnemonic: "SAX", Operator: Sax, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Write, Undocumented: true},
	0x84: {OpCode: 0x84, Mnemonic: "STY", Operator: Sty, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write, Undocumented: false},
	0x85: {OpCode: 0x85, Mnemonic: "STA", Operator: Sta, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write, Undocumented: false},
	0x86: {OpCode: 0x86, Mnemonic: "STX", Operator: Stx, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write, Undocumented: false},
	0x87: {OpCode: 0x87, Mnemonic: "SAX", Operator: Sax, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write, Undocumented: true},
	0x88: {OpCode: 0x88, Mnemonic: "DEY", Operator: Dey, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	0x89: {OpCode: 0x89, Mnemonic: "NOP", Operator: Nop, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	0x8a: {OpCode: 0x8a, Mnemonic: "TXA", Operator: Txa, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	0x8b: {OpCode: 0x8b, Mnemonic: "XAA", Operator: Xaa, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	0x8c: {OpCode: 0x8c, Mnemonic: "STY", Operator: Sty, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write, Undocumented: false},
	0x8d: {OpCode: 0x8d, Mnemonic: "STA", Operator: Sta, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write, Undocumented: false},
	0x8e: {OpCode: 0x8e, Mnemonic: "STX", Operator: Stx, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write, Undocumented: false},
	0x8f: {OpCode: 0x8f, Mnemonic: "SAX", Operator: Sax, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write, Undocumented: true},
	0x90: {OpCode: 0x90, Mnemonic: "BCC", Operator: Bcc, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow, Undocumented: false},
	0x91: {OpCode: 0x91, Mnemonic: "STA", Operator: Sta, Bytes: 2, Cycles: 6, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: Write, Undocumented: false},
	0x92: {OpCode: 0x92, Mnemonic: "KIL", Operator: Kil, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Flow, Undocumented: true},
	0x93: {OpCode: 0x93, Mnemonic: "AHX", Operator: Ahx, Bytes: 2, Cycles: 6, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: Write, Undocumented: true},
	0x94: {OpCode: 0x94, Mnemonic: "STY", Operator: Sty, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Write, Undocumented: false},
	0x95: {OpCode: 0x95, Mnemonic: "STA", Operator: Sta, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Write, Undocumented: false},
	0x96: {OpCode: 0x96, Mnemonic: "STX", Operator: Stx, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Write, Undocumented: false},
	0x97: {OpCode: 0x97, Mnemonic: "SAX", Operator: Sax, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Write, Undocumented: true},
	0x98: {OpCode: 0x98, Mnemonic: "TYA", Operator: Tya, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	0x99: {OpCode: 0x99, Mnemonic: "STA", Operator: Sta, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Write, Undocumented: false},
	0x9a: {OpCode: 0x9a, Mnemonic: "TXS", Operator: Txs, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	0x9b: {OpCode: 0x9b, Mnemonic: "TAS", Operator: Tas, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Write, Undocumented: true},
	0x9c: {OpCode: 0x9c, Mnemonic: "SHY", Operator: Shy, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: Write, Undocumented: true},
	0x9d: {OpCode: 0x9d, Mnemonic: "STA", Operator: Sta, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: Write, Undocumented: false},
	0x9e: {OpCode: 0x9e, Mnemonic: "SHX", Operator: Shx, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Write, Undocumented: true},
	0x9f: {OpCode: 0x9f, Mnemonic: "AHX", Operator: Ahx, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Write, Undocumented: true},
	0xa0: {OpCode: 0xa0, Mnemonic: "LDY", Operator: Ldy, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false},
	0xa1: {OpCode: 0xa1, Mnemonic: "LDA", Operator: Lda, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read, Undocumented: false},
	0xa2: {OpCode: 0xa2, Mnemonic: "LDX", Operator: Ldx, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false},
	0xa3: {OpCode: 0xa3, Mnemonic: "LAX", Operator: Lax, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read, Undocumented: true},
	0xa4: {OpCode: 0xa4, Mnemonic: "LDY", Operator: Ldy, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false},
	0xa5: {OpCode: 0xa5, Mnemonic: "LDA", Operator: Lda, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false},
	0xa6: {OpCode: 0xa6, Mnemonic: "LDX", Operator: Ldx, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false},
	0xa7: {OpCode: 0xa7, Mnemonic: "LAX", Operator: Lax, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: true},
	0xa8: {OpCode: 0xa8, Mnemonic: "TAY", Operator: Tay, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	0xa9: {OpCode: 0xa9, Mnemonic: "LDA", Operator: Lda, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false},
	0xaa: {OpCode: 0xaa, Mnemonic: "TAX", Operator: Tax, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	0xab: {OpCode: 0xab, Mnemonic: "LXA", Operator: Lxa, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	0xac: {OpCode: 0xac, Mnemonic: "LDY", Operator: Ldy, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false},
	0xad: {OpCode: 0xad, Mnemonic: "LDA", Operator: Lda, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false},
	0xae: {OpCode: 0xae, Mnemonic: "LDX", Operator: Ldx, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false},
	0xaf: {OpCode: 0xaf, Mnemonic: "LAX", Operator: Lax, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: true},
	0xb0: {OpCode: 0xb0, Mnemonic: "BCS", Operator: Bcs, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow, Undocumented: false},
	0xb1: {OpCode: 0xb1, Mnemonic: "LDA", Operator: Lda, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read, Undocumented: false},
	0xb2: {OpCode: 0xb2, Mnemonic: "KIL", Operator: Kil, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Flow, Undocumented: true},
	0xb3: {OpCode: 0xb3, Mnemonic: "LAX", Operator: Lax, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read, Undocumented: true},
	0xb4: {OpCode: 0xb4, Mnemonic: "LDY", Operator: Ldy, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: false},
	0xb5: {OpCode: 0xb5, Mnemonic: "LDA", Operator: Lda, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: false},
	0xb6: {OpCode: 0xb6, Mnemonic: "LDX", Operator: Ldx, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Read, Undocumented: false},
	0xb7: {OpCode: 0xb7, Mnemonic: "LAX", Operator: Lax, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Read, Undocumented: true},
	0xb8: {OpCode: 0xb8, Mnemonic: "CLV", Operator: Clv, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	0xb9: {OpCode: 0xb9, Mnemonic: "LDA", Operator: Lda, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: false},
	0xba: {OpCode: 0xba, Mnemonic: "TSX", Operator: Tsx, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	0xbb: {OpCode: 0xbb, Mnemonic: "LAS", Operator: Las, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: true},
	0xbc: {OpCode: 0xbc, Mnemonic: "LDY", Operator: Ldy, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: false},
	0xbd: {OpCode: 0xbd, Mnemonic: "LDA", Operator: Lda, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: false},
	0xbe: {OpCode: 0xbe, Mnemonic: "LDX", Operator: Ldx, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: false},
	0xbf: {OpCode: 0xbf, Mnemonic: "LAX", Operator: Lax, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: true},
	0xc0: {OpCode: 0xc0, Mnemonic: "CPY", Operator: Cpy, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false},
	0xc1: {OpCode: 0xc1, Mnemonic: "CMP", Operator: Cmp, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read, Undocumented: false},
	0xc2: {OpCode: 0xc2, Mnemonic: "NOP", Operator: Nop, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	0xc3: {OpCode: 0xc3, Mnemonic: "DCP", Operator: Dcp, Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW, Undocumented: true},
	0xc4: {OpCode: 0xc4, Mnemonic: "CPY", Operator: Cpy, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false},
	0xc5: {OpCode: 0xc5, Mnemonic: "CMP", Operator: Cmp, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false},
	0xc6: {OpCode: 0xc6, Mnemonic: "DEC", Operator: Dec, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: false},
	0xc7: {OpCode: 0xc7, Mnemonic: "DCP", Operator: Dcp, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: true},
	0xc8: {OpCode: 0xc8, Mnemonic: "INY", Operator: Iny, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	0xc9: {OpCode: 0xc9, Mnemonic: "CMP", Operator: Cmp, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false},
	0xca: {OpCode: 0xca, Mnemonic: "DEX", Operator: Dex, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	0xcb: {OpCode: 0xcb, Mnemonic: "AXS", Operator: Axs, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	0xcc: {OpCode: 0xcc, Mnemonic: "CPY", Operator: Cpy, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false},
	0xcd: {OpCode: 0xcd, Mnemonic: "CMP", Operator: Cmp, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false},
	0xce: {OpCode: 0xce, Mnemonic: "DEC", Operator: Dec, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: false},
	0xcf: {OpCode: 0xcf, Mnemonic: "DCP", Operator: Dcp, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: true},
	0xd0: {OpCode: 0xd0, Mnemonic: "BNE", Operator: Bne, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow, Undocumented: false},
	0xd1: {OpCode: 0xd1, Mnemonic: "CMP", Operator: Cmp, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read, Undocumented: false},
	0xd2: {OpCode: 0xd2, Mnemonic: "KIL", Operator: Kil, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Flow, Undocumented: true},
	0xd3: {OpCode: 0xd3, Mnemonic: "DCP", Operator: Dcp, Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW, Undocumented: true},
	0xd4: {OpCode: 0xd4, Mnemonic: "NOP", Operator: Nop, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: true},
	0xd5: {OpCode: 0xd5, Mnemonic: "CMP", Operator: Cmp, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: false},
	0xd6: {OpCode: 0xd6, Mnemonic: "DEC", Operator: Dec, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false},
	0xd7: {OpCode: 0xd7, Mnemonic: "DCP", Operator: Dcp, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true},
	0xd8: {OpCode: 0xd8, Mnemonic: "CLD", Operator: Cld, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	0xd9: {OpCode: 0xd9, Mnemonic: "CMP", Operator: Cmp, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: false},
	0xda: {OpCode: 0xda, Mnemonic: "NOP", Operator: Nop, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true},
	0xdb: {OpCode: 0xdb, Mnemonic: "DCP", Operator: Dcp, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW, Undocumented: true},
	0xdc: {OpCode: 0xdc, Mnemonic: "NOP", Operator: Nop, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: true},
	0xdd: {OpCode: 0xdd, Mnemonic: "CMP", Operator: Cmp, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: false},
	0xde: {OpCode: 0xde, Mnemonic: "DEC", Operator: Dec, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false},
	0xdf: {OpCode: 0xdf, Mnemonic: "DCP", Operator: Dcp, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true},
	0xe0: {OpCode: 0xe0, Mnemonic: "CPX", Operator: Cpx, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false},
	0xe1: {OpCode: 0xe1, Mnemonic: "SBC", Operator: Sbc, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read, Undocumented: false},
	0xe2: {OpCode: 0xe2, Mnemonic: "NOP", Operator: Nop, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	0xe3: {OpCode: 0xe3, Mnemonic: "ISC", Operator: Isc, Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW, Undocumented: true},
	0xe4: {OpCode: 0xe4, Mnemonic: "CPX", Operator: Cpx, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false},
	0xe5: {OpCode: 0xe5, Mnemonic: "SBC", Operator: Sbc, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false},
	0xe6: {OpCode: 0xe6, Mnemonic: "INC", Operator: Inc, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: false},
	0xe7: {OpCode: 0xe7, Mnemonic: "ISC", Operator: Isc, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: true},
	0xe8: {OpCode: 0xe8, Mnemonic: "INX", Operator: Inx, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	0xe9: {OpCode: 0xe9, Mnemonic: "SBC", Operator: Sbc, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false},
	0xea: {OpCode: 0xea, Mnemonic: "NOP", Operator: Nop, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	0xeb: {OpCode: 0xeb, Mnemonic: "SBC", Operator: Sbc, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	0xec: {OpCode: 0xec, Mnemonic: "CPX", Operator: Cpx, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false},
	0xed: {OpCode: 0xed, Mnemonic: "SBC", Operator: Sbc, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false},
	0xee: {OpCode: 0xee, Mnemonic: "INC", Operator: Inc, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: false},
	0xef: {OpCode: 0xef, Mnemonic: "ISC", Operator: Isc, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: true},
	0xf0: {OpCode: 0xf0, Mnemonic: "BEQ", Operator: Beq, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow, Undocumented: false},
	0xf1: {OpCode: 0xf1, Mnemonic: "SBC", Operator: Sbc, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read, Undocumented: false},
	0xf2: {OpCode: 0xf2, Mnemonic: "KIL", Operator: Kil, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Flow, Undocumented: true},
	0xf3: {OpCode: 0xf3, Mnemonic: "ISC", Operator: Isc, Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW, Undocumented: true},
	0xf4: {OpCode: 0xf4, Mnemonic: "NOP", Operator: Nop, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: true},
	0xf5: {OpCode: 0xf5, Mnemonic: "SBC", Operator: Sbc, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: false},
	0xf6: {OpCode: 0xf6, Mnemonic: "INC", Operator: Inc, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false},
	0xf7: {OpCode: 0xf7, Mnemonic: "ISC", Operator: Isc, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true},
	0xf8: {OpCode: 0xf8, Mnemonic: "SED", Operator: Sed, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	0xf9: {OpCode: 0xf9, Mnemonic: "SBC", Operator: Sbc, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: false},
	0xfa: {OpCode: 0xfa, Mnemonic: "NOP", Operator: Nop, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true},
	0xfb: {OpCode: 0xfb, Mnemonic: "ISC", Operator: Isc, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW, Undocumented: true},
	0xfc: {OpCode: 0xfc, Mnemonic: "NOP", Operator: Nop, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: true},
	0xfd: {OpCode: 0xfd, Mnemonic: "SBC", Operator: Sbc, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: false},
	0xfe: {OpCode: 0xfe, Mnemonic: "INC", Operator: Inc, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false},
	0xff: {OpCode: 0xff, Mnemonic: "ISC", Operator: Isc, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true},
}
