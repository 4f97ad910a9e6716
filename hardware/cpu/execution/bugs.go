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

package execution

// Bug notes that the instruction triggered a known defect of the 6502.
type Bug string

// List of known CPU bugs.
const (
	NoBug Bug = ""

	// JMP ($xxff) reads the high byte of the target from $xx00
	JmpIndirectAddressingBug Bug = "indirect addressing bug"

	// the pointer for (zp,X) and (zp),Y wraps inside page zero
	ZeroPagePointerWrap Bug = "zero page pointer wrap"
)
