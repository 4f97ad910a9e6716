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

package symbols

import (
	"io"
	"sync"

	"github.com/GaryFrazier/rustyNES/hardware/memory/cpubus"
	"github.com/GaryFrazier/rustyNES/hardware/memory/memorymap"
)

// Symbols contains the all currently defined symbols.
type Symbols struct {
	label *table
	read  *table
	write *table

	crit sync.Mutex
}

// NewSymbols is the preferred method of initialisation for the Symbols type.
// The read and write tables are populated with the canonical register names.
func NewSymbols() *Symbols {
	sym := &Symbols{
		label: newTable(),
		read:  newTable(),
		write: newTable(),
	}

	for k, v := range cpubus.ReadSymbols {
		sym.read.add(k, string(v), true)
	}
	for k, v := range cpubus.WriteSymbols {
		sym.write.add(k, string(v), true)
	}

	return sym
}

// the interrupt vectors and the label given to their destinations
var vectorLabels = []struct {
	vector uint16
	label  string
}{
	{vector: cpubus.Reset, label: "RESET"},
	{vector: cpubus.NMI, label: "NMI"},
	{vector: cpubus.IRQ, label: "IRQ"},
}

// AddVectorLabels labels the destinations of the interrupt vectors. Existing
// labels are not replaced.
func (sym *Symbols) AddVectorLabels(mem cpubus.Debugger) {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	for _, v := range vectorLabels {
		addr := uint16(mem.Peek(v.vector)) | uint16(mem.Peek(v.vector+1))<<8
		sym.label.add(addr, v.label, false)
	}
}

// AddLabel adds a symbol to the label table. If prefer is true then any
// existing label for the address is replaced.
func (sym *Symbols) AddLabel(addr uint16, symbol string, prefer bool) bool {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.add(addr, symbol, prefer)
}

// RemoveLabel removes the label for the address.
func (sym *Symbols) RemoveLabel(addr uint16) bool {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.remove(addr)
}

// GetLabel returns the label for the address.
func (sym *Symbols) GetLabel(addr uint16) (string, bool) {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.get(addr)
}

// SearchLabel returns the address of the label. The search is case
// insensitive.
func (sym *Symbols) SearchLabel(symbol string) (uint16, bool) {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.search(symbol)
}

// GetReadSymbol returns the symbol for the address when it is read. Mirrors
// of the register resolve to the same symbol.
func (sym *Symbols) GetReadSymbol(addr uint16) (string, bool) {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	if v, ok := sym.read.get(addr); ok {
		return v, ok
	}

	addr, _ = memorymap.MapAddress(addr)
	return sym.read.get(addr)
}

// GetWriteSymbol returns the symbol for the address when it is written.
// Mirrors of the register resolve to the same symbol.
func (sym *Symbols) GetWriteSymbol(addr uint16) (string, bool) {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	if v, ok := sym.write.get(addr); ok {
		return v, ok
	}

	addr, _ = memorymap.MapAddress(addr)
	return sym.write.get(addr)
}

// ListSymbols outputs every symbol.
func (sym *Symbols) ListSymbols(output io.Writer) {
	sym.ListLabels(output)
	sym.ListReadSymbols(output)
	sym.ListWriteSymbols(output)
}

// ListLabels outputs every label.
func (sym *Symbols) ListLabels(output io.Writer) {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	io.WriteString(output, "Labels\n------\n")
	io.WriteString(output, sym.label.String())
}

// ListReadSymbols outputs every read symbol.
func (sym *Symbols) ListReadSymbols(output io.Writer) {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	io.WriteString(output, "\nRead Symbols\n------------\n")
	io.WriteString(output, sym.read.String())
}

// ListWriteSymbols outputs every write symbol.
func (sym *Symbols) ListWriteSymbols(output io.Writer) {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	io.WriteString(output, "\nWrite Symbols\n-------------\n")
	io.WriteString(output, sym.write.String())
}
