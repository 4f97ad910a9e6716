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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	Bytecode bool
	Cycles   bool
	Notes    bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) {
	for _, e := range dsm.entries {
		dsm.WriteEntry(output, attr, e)
	}
}

// WriteEntry writes a single entry to io.Writer. Labels are written on a line
// of their own before the entry.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) {
	writeEntry(output, attr, dsm.widths, e)
}

// WriteEntry writes a single entry to io.Writer without reference to a
// disassembly. Used for instruction tracing.
func WriteEntry(output io.Writer, attr WriteAttr, e *Entry) {
	var w widths
	w.update(e)
	w.operator = max(w.operator, 3)
	w.operand = max(w.operand, 9)
	writeEntry(output, attr, w, e)
}

func writeEntry(output io.Writer, attr WriteAttr, w widths, e *Entry) {
	if e == nil {
		return
	}

	if e.Label != "" {
		io.WriteString(output, fmt.Sprintf("%s\n", e.Label))
	}

	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("%-*s", w.address, e.Address))
	if attr.Bytecode {
		s.WriteString(fmt.Sprintf("  %-*s", w.bytecode, e.Bytecode))
	}
	s.WriteString(fmt.Sprintf("  %-*s", w.operator, e.Operator))
	s.WriteString(fmt.Sprintf(" %-*s", w.operand, e.Operand))
	if attr.Cycles {
		s.WriteString(fmt.Sprintf("  %-*s", w.cycles, e.Cycles))
	}
	if attr.Notes {
		s.WriteString(fmt.Sprintf("  %s", e.Notes))
	}

	io.WriteString(output, strings.TrimRight(s.String(), " "))
	io.WriteString(output, "\n")
}
