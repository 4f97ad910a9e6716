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
	"fmt"
	"math/rand/v2"

	"github.com/GaryFrazier/rustyNES/hardware/cpu/execution"
	"github.com/GaryFrazier/rustyNES/hardware/cpu/registers"
	"github.com/GaryFrazier/rustyNES/hardware/memory/cpubus"
	"github.com/GaryFrazier/rustyNES/logger"
)

// the number of cycles consumed by the reset sequence
const resetCycles = 8

// the base cost of an OAM DMA transfer. one additional cycle is required if
// the transfer begins on an odd CPU cycle
const dmaCycles = 513

// CPU implements the 2A03 as found in the NES. Register logic is implemented
// by the Register type in the registers sub-package.
type CPU struct {
	perm logger.Permission

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	mem cpubus.Memory

	// last result. the address field is guaranteed to be valid once the CPU
	// has executed at least one instruction or interrupt
	LastResult execution.Result

	// the number of cycles that have elapsed since the CPU was created. used
	// to decide the parity of DMA transfers
	Cycles uint64

	// the number of cycles remaining before the next instruction can begin
	wait int

	// the number of cycles the CPU has been halted for by DMA
	stall int

	// an NMI has been signalled and will be serviced at the next instruction
	// boundary
	nmiPending bool

	// the state of the IRQ line. the IRQ will be serviced at the next
	// instruction boundary if the interrupt disable flag is clear
	irqLine bool

	// the cpu has encountered a KIL instruction.
	// requires a Reset()
	Killed bool

	// RandomState causes Reset() to put the A, X and Y registers into a
	// random state
	RandomState bool

	// source of numbers for RandomState. the math/rand/v2 top-level
	// functions are used if Random is nil
	Random interface {
		IntN(n int) int
	}
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The CPU should be Reset() before use.
func NewCPU(perm logger.Permission, mem cpubus.Memory) *CPU {
	return &CPU{
		perm:   perm,
		mem:    mem,
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewRegister(0, "SP"),
		Status: registers.NewStatusRegister(),
		acc8:   registers.NewRegister(0, "accumulator"),
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset puts the CPU into the state it would be in after the reset line has
// been pulled. The PC is loaded from the reset vector and the APU/IO
// registers are silenced. The reset sequence is charged to the cycles that
// follow so the first instruction is not started until those cycles have
// elapsed.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Killed = false
	mc.nmiPending = false
	mc.irqLine = false
	mc.stall = 0

	if mc.RandomState {
		intN := rand.IntN
		if mc.Random != nil {
			intN = mc.Random.IntN
		}
		mc.A.Load(uint8(intN(256)))
		mc.X.Load(uint8(intN(256)))
		mc.Y.Load(uint8(intN(256)))
	} else {
		mc.A.Load(0)
		mc.X.Load(0)
		mc.Y.Load(0)
	}

	mc.SP.Load(0xfd)
	mc.Status.Reset()

	// silence APU and IO
	for a := uint16(0x4000); a <= 0x4013; a++ {
		mc.mem.Write(a, 0x00)
	}
	mc.mem.Write(0x4015, 0x00)
	mc.mem.Write(0x4017, 0x00)

	mc.PC.Load(mc.read16Bit(cpubus.Reset))
	mc.wait = resetCycles
}

// LoadPC loads the program counter directly. Any instruction that is still
// in progress is abandoned.
func (mc *CPU) LoadPC(address uint16) {
	mc.PC.Load(address)
	mc.wait = 0
}

// NMI signals a non-maskable interrupt. The interrupt is serviced at the next
// instruction boundary.
func (mc *CPU) NMI() {
	mc.nmiPending = true
}

// IRQ sets the level of the interrupt request line. The interrupt is serviced
// at the next instruction boundary for as long as the line is held and the
// interrupt disable flag is clear.
func (mc *CPU) IRQ(level bool) {
	mc.irqLine = level
}

// Stall halts the CPU for the number of cycles.
func (mc *CPU) Stall(cycles int) {
	mc.stall += cycles
}

// StallDMA halts the CPU for the duration of an OAM DMA transfer.
func (mc *CPU) StallDMA() {
	c := dmaCycles
	if mc.Cycles%2 == 1 {
		c++
	}
	mc.Stall(c)
}

// Busy returns true if the CPU is part way through an instruction or is
// stalled. The next call to RunCycle() will not begin a new instruction. A
// killed CPU is never busy.
func (mc *CPU) Busy() bool {
	return !mc.Killed && (mc.wait > 0 || mc.stall > 0)
}

// RunCycle advances the CPU by one clock. An instruction or interrupt
// sequence is performed on the first clock of its duration and the clocks
// that remain are spent waiting. A killed CPU consumes clocks and does
// nothing else.
func (mc *CPU) RunCycle() error {
	mc.Cycles++

	if mc.Killed {
		return nil
	}

	if mc.stall > 0 {
		mc.stall--
		return nil
	}

	if mc.wait > 0 {
		mc.wait--
		return nil
	}

	var err error

	if mc.nmiPending {
		mc.nmiPending = false
		mc.interrupt(cpubus.NMI)
	} else if mc.irqLine && !mc.Status.InterruptDisable() {
		mc.interrupt(cpubus.IRQ)
	} else {
		err = mc.ExecuteInstruction()
	}

	mc.wait = mc.LastResult.Cycles - 1
	if mc.wait < 0 {
		mc.wait = 0
	}

	return err
}

func (mc *CPU) read16Bit(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return (uint16(hi) << 8) | uint16(lo)
}

func (mc *CPU) read8BitPC() uint8 {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v
}

func (mc *CPU) read16BitPC() uint16 {
	lo := mc.read8BitPC()
	hi := mc.read8BitPC()
	return (uint16(hi) << 8) | uint16(lo)
}

// PredictRTS returns the PC address that would result if RTS was run at the
// current moment. Requires that the memory implements cpubus.Debugger.
func (mc *CPU) PredictRTS() (uint16, bool) {
	predict, ok := mc.mem.(cpubus.Debugger)
	if !ok {
		return 0, false
	}

	sp := uint16(mc.SP.Value() + 1)
	lo := predict.Peek(cpubus.Stack | sp)
	hi := predict.Peek(cpubus.Stack | uint16(uint8(sp)+1))

	return ((uint16(hi) << 8) | uint16(lo)) + 1, true
}
