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

// Package cartridge decodes iNES cartridge images and maps the cartridge
// memory into the NES.
//
// Parse() decodes the 16 byte header and extracts the PRG and CHR data. The
// Initialise() function of the resulting Cartridge copies the PRG data into
// CPU address space, the CHR data into the PPU pattern tables and sets the
// nametable mirroring of the PPU.
//
// Only mapper 0 (NROM) is currently supported. Cartridges with a single 16KB
// PRG bank have that bank mirrored at 0x8000 and 0xc000.
package cartridge
