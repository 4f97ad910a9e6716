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

// The generator creates the instruction table from the definitions CSV file.
// It is run from the instructions package with go generate.
package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/GaryFrazier/rustyNES/hardware/cpu/instructions"
)

const definitionsCSVFile = "./generator/instructions.csv"
const generatedGoFile = "./table.go"

const leadingBoilerPlate = "// generated code - do not change\n\n" +
	"package instructions\n\n" +
	"// definitions is the table of instruction definitions for the 2A03, indexed\n" +
	"// by opcode.\n" +
	"var definitions = [256]*Definition{\n"

const trailingBoilerPlate = "}\n"

var addressingModes = map[string]instructions.AddressingMode{
	"IMPLIED":             instructions.Implied,
	"IMMEDIATE":           instructions.Immediate,
	"RELATIVE":            instructions.Relative,
	"ABSOLUTE":            instructions.Absolute,
	"ZERO_PAGE":           instructions.ZeroPage,
	"INDIRECT":            instructions.Indirect,
	"INDEXED_INDIRECT":    instructions.IndexedIndirect,
	"INDIRECT_INDEXED":    instructions.IndirectIndexed,
	"ABSOLUTE_INDEXED_X":  instructions.AbsoluteIndexedX,
	"ABSOLUTE_INDEXED_Y":  instructions.AbsoluteIndexedY,
	"ZERO_PAGE_INDEXED_X": instructions.ZeroPageIndexedX,
	"ZERO_PAGE_INDEXED_Y": instructions.ZeroPageIndexedY,
}

var effects = map[string]instructions.EffectCategory{
	"READ":        instructions.Read,
	"WRITE":       instructions.Write,
	"RMW":         instructions.RMW,
	"FLOW":        instructions.Flow,
	"SUB-ROUTINE": instructions.Subroutine,
	"INTERRUPT":   instructions.Interrupt,
}

func parseCSV() (map[uint8]instructions.Definition, error) {
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return nil, fmt.Errorf("error opening instruction definitions (%w)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true

	// the effect and undocumented fields are optional
	csvr.FieldsPerRecord = -1

	deftable := make(map[uint8]instructions.Definition)

	for {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := csvr.FieldPos(0)

		if len(rec) < 5 || len(rec) > 7 {
			return nil, fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		newDef := instructions.Definition{}

		// field: opcode
		n, err := strconv.ParseUint(strings.TrimPrefix(rec[0], "0x"), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		newDef.OpCode = uint8(n)

		if _, ok := deftable[newDef.OpCode]; ok {
			return nil, fmt.Errorf("duplicate opcode (%#02x) [line %d]", newDef.OpCode, line)
		}

		// field: mnemonic
		newDef.Mnemonic = strings.ToUpper(rec[1])
		var ok bool
		newDef.Operator, ok = instructions.OperatorFromMnemonic(newDef.Mnemonic)
		if !ok {
			return nil, fmt.Errorf("unknown mnemonic for %#02x (%s) [line %d]", newDef.OpCode, rec[1], line)
		}

		// field: cycle count
		newDef.Cycles, err = strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", newDef.OpCode, rec[2], line)
		}

		// field: addressing mode. the addressing mode also defines how many
		// bytes an opcode requires
		newDef.AddressingMode, ok = addressingModes[strings.ToUpper(rec[3])]
		if !ok {
			return nil, fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", newDef.OpCode, rec[3], line)
		}
		newDef.Bytes = newDef.AddressingMode.Bytes()

		// field: page sensitive
		switch strings.ToUpper(rec[4]) {
		case "TRUE":
			newDef.PageSensitive = true
		case "FALSE":
			newDef.PageSensitive = false
		default:
			return nil, fmt.Errorf("invalid page sensitivity switch for %#02x (%s) [line %d]", newDef.OpCode, rec[4], line)
		}

		// field: effect category
		newDef.Effect = instructions.Read
		if len(rec) > 5 {
			newDef.Effect, ok = effects[strings.ToUpper(rec[5])]
			if !ok {
				return nil, fmt.Errorf("unknown category for %#02x (%s) [line %d]", newDef.OpCode, rec[5], line)
			}
		}

		// field: undocumented
		if len(rec) > 6 {
			if strings.ToUpper(rec[6]) != "UNDOCUMENTED" {
				return nil, fmt.Errorf("unknown flag for %#02x (%s) [line %d]", newDef.OpCode, rec[6], line)
			}
			newDef.Undocumented = true
		}

		deftable[newDef.OpCode] = newDef
	}

	return deftable, nil
}

func generate(deftable map[uint8]instructions.Definition) string {
	s := strings.Builder{}
	s.WriteString(leadingBoilerPlate)
	for opcode := 0; opcode < 256; opcode++ {
		d, ok := deftable[uint8(opcode)]
		if !ok {
			continue
		}
		s.WriteString(fmt.Sprintf("\t%#02x: {OpCode: %#02x, Mnemonic: %q, Operator: %s, Bytes: %d, Cycles: %d, AddressingMode: %s, PageSensitive: %t, Effect: %s, Undocumented: %t},\n",
			d.OpCode, d.OpCode, d.Mnemonic,
			d.Operator.String()[:1]+strings.ToLower(d.Operator.String()[1:]),
			d.Bytes, d.Cycles, d.AddressingMode, d.PageSensitive, d.Effect, d.Undocumented))
	}
	s.WriteString(trailingBoilerPlate)
	return s.String()
}

// checkTotal returns an error naming the first opcode with no definition.
// the instruction table covers every opcode.
func checkTotal(deftable map[uint8]instructions.Definition) error {
	for i := 0; i <= 255; i++ {
		if _, ok := deftable[uint8(i)]; !ok {
			return fmt.Errorf("no definition for opcode (%#02x)", i)
		}
	}
	return nil
}

func main() {
	deftable, err := parseCSV()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	err = checkTotal(deftable)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	output, err := format.Source([]byte(generate(deftable)))
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	err = os.WriteFile(generatedGoFile, output, 0644)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
