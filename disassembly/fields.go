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

type widths struct {
	label    int
	address  int
	bytecode int
	operator int
	operand  int
	cycles   int
	notes    int
}

// update width information for entry fields
func (w *widths) update(e *Entry) {
	w.label = max(w.label, len(e.Label))
	w.address = max(w.address, len(e.Address))
	w.bytecode = max(w.bytecode, len(e.Bytecode))
	w.operator = max(w.operator, len(e.Operator))
	w.operand = max(w.operand, len(e.Operand))
	w.cycles = max(w.cycles, len(e.Cycles))
	w.notes = max(w.notes, len(e.Notes))
}
