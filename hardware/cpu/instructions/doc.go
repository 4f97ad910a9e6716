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

// Package instructions defines the instruction set of the 2A03. Every opcode
// is described by a Definition. Definitions are stored in a 256 entry table
// indexed by opcode and are retrieved with the Lookup() function.
//
// The table is generated from the CSV file in the generator directory. Use
// go generate to rebuild it after changing the CSV file.
package instructions

//go:generate go run ./generator
