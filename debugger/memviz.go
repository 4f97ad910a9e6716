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
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/GaryFrazier/rustyNES/curated"
	"github.com/GaryFrazier/rustyNES/paths"
)

// memviz writes a graphviz dot file of the emulated hardware. The filename
// of the new file is returned.
func (dbg *Debugger) memviz() (string, error) {
	fn := fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", dbg.cartName))

	f, err := os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", curated.Errorf("memviz: %v", err)
	}
	defer f.Close()

	memviz.Map(f, dbg.nes.CPU, dbg.nes.PPU)

	return fn, nil
}
