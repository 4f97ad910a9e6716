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

// Package digest creates fingerprints of the emulation. Two runs of the same
// cartridge produce the same fingerprint only if the CPU passed through the
// same sequence of states.
//
// Fingerprints are chained. The previous value is fed into the calculation of
// the next value, so a single difference anywhere in the run changes every
// subsequent fingerprint.
package digest
