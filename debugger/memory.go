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
	"strconv"
	"strings"

	"github.com/GaryFrazier/rustyNES/curated"
	"github.com/GaryFrazier/rustyNES/hardware/memory/cpubus"
	"github.com/GaryFrazier/rustyNES/hardware/memory/memorymap"
)

// addressInfo is returned by the peek() and poke() functions.
type addressInfo struct {
	address uint16
	mapped  uint16
	area    memorymap.Area
	symbol  string
	data    uint8
}

func (ai addressInfo) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("$%04x", ai.address))
	if ai.mapped != ai.address {
		s.WriteString(fmt.Sprintf(" = $%04x", ai.mapped))
	}
	if ai.symbol != "" {
		s.WriteString(fmt.Sprintf(" (%s)", ai.symbol))
	}
	s.WriteString(fmt.Sprintf(" [%s] -> $%02x", ai.area, ai.data))
	return s.String()
}

// resolveAddress converts the token to an address. the token can be a number
// or the name of a label or register symbol.
func (dbg *Debugger) resolveAddress(token string) (uint16, error) {
	if a, err := strconv.ParseUint(token, 0, 16); err == nil {
		return uint16(a), nil
	}

	if a, ok := dbg.sym.SearchLabel(token); ok {
		return a, nil
	}

	for _, tbl := range []map[uint16]cpubus.Register{cpubus.ReadSymbols, cpubus.WriteSymbols} {
		for a, r := range tbl {
			if strings.EqualFold(string(r), token) {
				return a, nil
			}
		}
	}

	return 0, curated.Errorf("unrecognised address (%s)", token)
}

// parseValue converts the token to an 8 bit value.
func parseValue(token string) (uint8, error) {
	v, err := strconv.ParseUint(token, 0, 8)
	if err != nil {
		return 0, curated.Errorf("value must be 8 bit (%s)", token)
	}
	return uint8(v), nil
}

func (dbg *Debugger) info(address uint16) addressInfo {
	ai := addressInfo{address: address}
	ai.mapped, ai.area = memorymap.MapAddress(address)

	if l, ok := dbg.sym.GetLabel(address); ok {
		ai.symbol = l
	} else if s, ok := dbg.sym.GetReadSymbol(address); ok {
		ai.symbol = s
	} else if s, ok := dbg.sym.GetWriteSymbol(address); ok {
		ai.symbol = s
	}

	ai.data = dbg.nes.Mem.Peek(address)

	return ai
}

// peek returns the information at the address without side effects.
func (dbg *Debugger) peek(token string) (addressInfo, error) {
	address, err := dbg.resolveAddress(token)
	if err != nil {
		return addressInfo{}, err
	}
	return dbg.info(address), nil
}

// poke changes the value at the address without side effects.
func (dbg *Debugger) poke(token string, value string) (addressInfo, error) {
	address, err := dbg.resolveAddress(token)
	if err != nil {
		return addressInfo{}, err
	}

	v, err := parseValue(value)
	if err != nil {
		return addressInfo{}, err
	}

	dbg.nes.Mem.Poke(address, v)

	return dbg.info(address), nil
}
