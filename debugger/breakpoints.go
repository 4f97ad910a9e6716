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

package debugger

import (
	"fmt"
	"io"
	"slices"

	"github.com/GaryFrazier/rustyNES/curated"
)

// breakpoints halt the emulation when the PC reaches a specific address. the
// check is made after an instruction has completed so a RUN command issued
// when the PC is on a breakpoint will always move forward.
type breakpoints struct {
	breaks []uint16
}

func (bp *breakpoints) clear() {
	bp.breaks = bp.breaks[:0]
}

// add a new breakpoint. it is an error to add a breakpoint that already
// exists.
func (bp *breakpoints) add(address uint16) error {
	if slices.Contains(bp.breaks, address) {
		return curated.Errorf("break: already exists (%#04x)", address)
	}
	bp.breaks = append(bp.breaks, address)
	return nil
}

// drop the breakpoint using the number reported by list().
func (bp *breakpoints) drop(num int) error {
	if num < 0 || num >= len(bp.breaks) {
		return curated.Errorf("break: no such breakpoint (%d)", num)
	}
	bp.breaks = slices.Delete(bp.breaks, num, num+1)
	return nil
}

// check returns true if the address is a breakpoint.
func (bp *breakpoints) check(pc uint16) bool {
	return slices.Contains(bp.breaks, pc)
}

func (bp *breakpoints) list(output io.Writer) {
	if len(bp.breaks) == 0 {
		io.WriteString(output, "no breakpoints\n")
		return
	}
	for i, b := range bp.breaks {
		io.WriteString(output, fmt.Sprintf("% 2d: PC->$%04x\n", i, b))
	}
}
