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

package ppu

// Phase classifies a scanline.
type Phase int

// List of valid Phase values.
const (
	Visible Phase = iota
	PostRender
	VBlankStart
	VBlank
	PreRender
)

func (p Phase) String() string {
	switch p {
	case Visible:
		return "Visible"
	case PostRender:
		return "PostRender"
	case VBlankStart:
		return "VBlankStart"
	case VBlank:
		return "VBlank"
	case PreRender:
		return "PreRender"
	}
	return "unknown phase"
}

// Scanline and cycle limits.
const (
	CyclesPerScanline = 341
	ScanlinesPerFrame = 262

	LastVisibleScanline = 239
	PostRenderScanline  = 240
	VBlankStartScanline = 241 // vblank flag raised at cycle 1
	LastVBlankScanline  = 260
	PreRenderScanline   = 261
)

// PhaseOf returns the Phase of the scanline. Every scanline in the range 0 to
// 261 has a Phase. Values outside that range are treated as PreRender.
func PhaseOf(scanline int) Phase {
	switch {
	case scanline >= 0 && scanline <= LastVisibleScanline:
		return Visible
	case scanline == PostRenderScanline:
		return PostRender
	case scanline == VBlankStartScanline:
		return VBlankStart
	case scanline > VBlankStartScanline && scanline <= LastVBlankScanline:
		return VBlank
	}
	return PreRender
}
