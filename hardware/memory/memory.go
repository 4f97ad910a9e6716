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

package memory

import (
	"fmt"

	"github.com/GaryFrazier/rustyNES/hardware/memory/cpubus"
	"github.com/GaryFrazier/rustyNES/hardware/memory/memorymap"
	"github.com/GaryFrazier/rustyNES/logger"
)

// PPU is the register interface of the picture processing unit.
type PPU interface {
	ReadRegister(reg uint16) uint8
	WriteRegister(reg uint16, data uint8)
	PeekRegister(reg uint16) uint8
	WriteOAM(data uint8)
}

// Staller is implemented by the CPU. The CPU is halted for the duration of
// an OAM DMA transfer.
type Staller interface {
	StallDMA()
}

// Memory is the CPU address space.
type Memory struct {
	perm logger.Permission

	data [0x10000]uint8

	ppu     PPU
	staller Staller

	// the most recent access. the address is the primary address
	LastAccessAddress uint16
	LastAccessValue   uint8
	LastAccessWrite   bool
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The PPU and Staller can be attached later.
func NewMemory(perm logger.Permission) *Memory {
	return &Memory{perm: perm}
}

func (mem *Memory) String() string {
	op := "read"
	if mem.LastAccessWrite {
		op = "write"
	}
	return fmt.Sprintf("last %s %#02x at %#04x", op, mem.LastAccessValue, mem.LastAccessAddress)
}

// AttachPPU connects the memory mapped PPU registers to the PPU.
func (mem *Memory) AttachPPU(ppu PPU) {
	mem.ppu = ppu
}

// AttachStaller connects the OAM DMA stall signal to the CPU.
func (mem *Memory) AttachStaller(staller Staller) {
	mem.staller = staller
}

// Clear sets every byte of memory to zero.
func (mem *Memory) Clear() {
	clear(mem.data[:])
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) uint8 {
	ma, area := memorymap.MapAddress(address)

	data := mem.data[ma]
	if area == memorymap.PPU && mem.ppu != nil {
		switch ma {
		case cpubus.PPUSTATUSAddress, cpubus.OAMDATAAddress, cpubus.PPUDATAAddress:
			data = mem.ppu.ReadRegister(ma)
		}
	}

	mem.LastAccessAddress = ma
	mem.LastAccessValue = data
	mem.LastAccessWrite = false

	return data
}

// ReadWord returns the little-endian 16 bit value at the address. Each byte
// is mapped independently so a word that straddles a mirror boundary is read
// from two different primary addresses.
func (mem *Memory) ReadWord(address uint16) uint16 {
	lo := mem.Read(address)
	hi := mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) {
	ma, area := memorymap.MapAddress(address)

	if area == memorymap.PPU && mem.ppu != nil {
		mem.ppu.WriteRegister(ma, data)
	}

	mem.data[ma] = data

	mem.LastAccessAddress = ma
	mem.LastAccessValue = data
	mem.LastAccessWrite = true

	if ma == cpubus.OAMDMAAddress {
		mem.oamDMA(data)
	}
}

// WriteBlock writes data to consecutive addresses starting at origin. The
// address wraps at the top of memory.
func (mem *Memory) WriteBlock(origin uint16, data []uint8) {
	for i, d := range data {
		mem.Write(origin+uint16(i), d)
	}
}

// Peek implements the cpubus.Debugger interface.
func (mem *Memory) Peek(address uint16) uint8 {
	ma, area := memorymap.MapAddress(address)
	if area == memorymap.PPU && mem.ppu != nil {
		switch ma {
		case cpubus.PPUSTATUSAddress, cpubus.OAMDATAAddress, cpubus.PPUDATAAddress:
			return mem.ppu.PeekRegister(ma)
		}
	}
	return mem.data[ma]
}

// Poke implements the cpubus.Debugger interface.
func (mem *Memory) Poke(address uint16, value uint8) {
	ma, _ := memorymap.MapAddress(address)
	mem.data[ma] = value
}
