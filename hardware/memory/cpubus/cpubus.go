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

package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The memory implementation maps the address to its primary mirror and
// performs any side effects of the access.
//
// Every 16 bit address is valid so there is no error return. Reads from
// addresses that are not backed by anything return whatever was last written
// there.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Debugger is implemented by memory that allows access without side effects.
// Reading a PPU register through Peek() does not clear the vblank flag, for
// example.
type Debugger interface {
	Peek(address uint16) uint8
	Poke(address uint16, value uint8)
}

// Addresses of the interrupt vectors. Each vector is a little-endian 16 bit
// address.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// Stack is the page of memory used by the stack. The stack pointer is an
// offset into this page.
const Stack = uint16(0x0100)
