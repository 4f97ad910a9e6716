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

// Package symbols helps keep track of address symbols. Symbols are divided
// into three tables: labels, read symbols and write symbols.
//
// The read and write tables are populated with the canonical names of the
// PPU and APU/IO registers. The label table is populated with the
// destinations of the interrupt vectors and with any labels added by the
// user.
package symbols
