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

// Register represents a named address in PPU or APU/IO memory.
type Register string

// List of valid Register values.
const (
	PPUCTRL   Register = "PPUCTRL"
	PPUMASK   Register = "PPUMASK"
	PPUSTATUS Register = "PPUSTATUS"
	OAMADDR   Register = "OAMADDR"
	OAMDATA   Register = "OAMDATA"
	PPUSCROLL Register = "PPUSCROLL"
	PPUADDR   Register = "PPUADDR"
	PPUDATA   Register = "PPUDATA"

	SQ1_VOL    Register = "SQ1_VOL"
	SQ1_SWEEP  Register = "SQ1_SWEEP"
	SQ1_LO     Register = "SQ1_LO"
	SQ1_HI     Register = "SQ1_HI"
	SQ2_VOL    Register = "SQ2_VOL"
	SQ2_SWEEP  Register = "SQ2_SWEEP"
	SQ2_LO     Register = "SQ2_LO"
	SQ2_HI     Register = "SQ2_HI"
	TRI_LINEAR Register = "TRI_LINEAR"
	TRI_LO     Register = "TRI_LO"
	TRI_HI     Register = "TRI_HI"
	NOISE_VOL  Register = "NOISE_VOL"
	NOISE_LO   Register = "NOISE_LO"
	NOISE_HI   Register = "NOISE_HI"
	DMC_FREQ   Register = "DMC_FREQ"
	DMC_RAW    Register = "DMC_RAW"
	DMC_START  Register = "DMC_START"
	DMC_LEN    Register = "DMC_LEN"
	OAMDMA     Register = "OAMDMA"
	SND_CHN    Register = "SND_CHN"
	JOY1       Register = "JOY1"
	JOY2       Register = "JOY2"
)

// Addresses of the registers that have side effects when accessed by the
// CPU.
const (
	PPUCTRLAddress   = uint16(0x2000)
	PPUMASKAddress   = uint16(0x2001)
	PPUSTATUSAddress = uint16(0x2002)
	OAMADDRAddress   = uint16(0x2003)
	OAMDATAAddress   = uint16(0x2004)
	PPUSCROLLAddress = uint16(0x2005)
	PPUADDRAddress   = uint16(0x2006)
	PPUDATAAddress   = uint16(0x2007)
	OAMDMAAddress    = uint16(0x4014)
	SND_CHNAddress   = uint16(0x4015)
	JOY2Address      = uint16(0x4017)
)

// ReadSymbols indexes register symbols that have a meaning when read, by
// primary address.
var ReadSymbols = map[uint16]Register{
	0x2002: PPUSTATUS,
	0x2004: OAMDATA,
	0x2007: PPUDATA,
	0x4015: SND_CHN,
	0x4016: JOY1,
	0x4017: JOY2,
}

// WriteSymbols indexes register symbols that have a meaning when written, by
// primary address.
var WriteSymbols = map[uint16]Register{
	0x2000: PPUCTRL,
	0x2001: PPUMASK,
	0x2003: OAMADDR,
	0x2004: OAMDATA,
	0x2005: PPUSCROLL,
	0x2006: PPUADDR,
	0x2007: PPUDATA,
	0x4000: SQ1_VOL,
	0x4001: SQ1_SWEEP,
	0x4002: SQ1_LO,
	0x4003: SQ1_HI,
	0x4004: SQ2_VOL,
	0x4005: SQ2_SWEEP,
	0x4006: SQ2_LO,
	0x4007: SQ2_HI,
	0x4008: TRI_LINEAR,
	0x400a: TRI_LO,
	0x400b: TRI_HI,
	0x400c: NOISE_VOL,
	0x400e: NOISE_LO,
	0x400f: NOISE_HI,
	0x4010: DMC_FREQ,
	0x4011: DMC_RAW,
	0x4012: DMC_START,
	0x4013: DMC_LEN,
	0x4014: OAMDMA,
	0x4015: SND_CHN,
	0x4016: JOY1,
	0x4017: JOY2,
}
