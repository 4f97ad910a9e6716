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
	"github.com/GaryFrazier/rustyNES/debugger/govern"
	"github.com/GaryFrazier/rustyNES/debugger/terminal"
	"github.com/GaryFrazier/rustyNES/debugger/terminal/commandline"
	"github.com/GaryFrazier/rustyNES/disassembly"
	"github.com/GaryFrazier/rustyNES/hardware/memory/memorymap"
	"github.com/GaryFrazier/rustyNES/logger"
)

// the number of instructions printed by DISASM when an address is given
// without a count.
const defaultDisasmCount = 16

// parseInput splits the input into tokens and processes the command.
func (dbg *Debugger) parseInput(input string) error {
	tokens := commandline.TokeniseInput(input)

	err := debuggerCommands.ValidateTokens(tokens)
	if err != nil {
		return err
	}

	return dbg.processTokens(tokens)
}

func (dbg *Debugger) processTokens(tokens *commandline.Tokens) error {
	command, ok := tokens.Get()
	if !ok {
		return nil
	}
	command = strings.ToUpper(command)

	switch command {
	default:
		return curated.Errorf("%s is not yet implemented", command)

	case cmdHelp:
		keyword, ok := tokens.Get()
		if ok {
			dbg.printLine(terminal.StyleHelp, debuggerCommands.Help(keyword))
		} else {
			dbg.printLine(terminal.StyleHelp, debuggerCommands.HelpOverview())
		}

	case cmdQuit:
		dbg.state = govern.Ending

	case cmdReset:
		err := dbg.nes.Reset()
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case cmdRun:
		dbg.state = govern.Running
		err := dbg.nes.Run(dbg.checkBreak)
		dbg.state = govern.Paused
		if err != nil {
			return err
		}

	case cmdStep:
		if tok, ok := tokens.Peek(); ok && strings.EqualFold(tok, "OUT") {
			tokens.Get()
			return dbg.stepOut()
		}

		count, err := parseCount(tokens, 1)
		if err != nil {
			return err
		}

		dbg.state = govern.Stepping
		defer func() { dbg.state = govern.Paused }()

		for range count {
			err = dbg.nes.Step(nil)
			if err != nil {
				return err
			}
			dbg.printResult(terminal.StyleCPUStep, disassembly.WriteAttr{Bytecode: true})
			if dbg.checkInterrupt() {
				break
			}
		}

	case cmdFrame:
		count, err := parseCount(tokens, 1)
		if err != nil {
			return err
		}

		dbg.state = govern.Running
		err = dbg.nes.RunForFrameCount(count, func(_ int) (govern.State, error) {
			return dbg.checkBreak()
		})
		dbg.state = govern.Paused
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "frame %d", dbg.nes.PPU.Frame)

	case cmdScript:
		return dbg.processScript(tokens)

	case cmdDisasm:
		return dbg.processDisasm(tokens)

	case cmdGrep:
		scope := disassembly.GrepAll
		search, _ := tokens.Get()
		if tokens.Remaining() > 0 {
			switch strings.ToUpper(search) {
			case "OPERATOR":
				scope = disassembly.GrepOperator
			case "OPERAND":
				scope = disassembly.GrepOperand
			default:
				return curated.Errorf(commandline.InvalidOption, cmdGrep, search)
			}
			search, _ = tokens.Get()
		}

		dsm, err := dbg.disassemble(memorymap.OriginPRG, memorymap.Memtop)
		if err != nil {
			return err
		}

		if dsm.Grep(dbg.printStyle(terminal.StyleFeedback), scope, search, false) == 0 {
			dbg.printLine(terminal.StyleFeedback, "%s not found in disassembly", search)
		}

	case cmdSymbol:
		return dbg.processSymbol(tokens)

	case cmdLast:
		if !dbg.nes.CPU.LastResult.Final {
			dbg.printLine(terminal.StyleFeedback, "no instruction executed yet")
			return nil
		}

		option, _ := tokens.Get()
		if strings.ToUpper(option) == "DEFN" {
			if dbg.nes.CPU.LastResult.Defn == nil {
				dbg.printLine(terminal.StyleFeedback, "no definition for interrupt sequence")
			} else {
				dbg.printLine(terminal.StyleInstrument, "%s", dbg.nes.CPU.LastResult.Defn)
			}
			return nil
		}

		dbg.printResult(terminal.StyleFeedback, disassembly.WriteAttr{Bytecode: true, Cycles: true, Notes: true})

	case cmdCPU:
		option, ok := tokens.Get()
		if !ok {
			dbg.printLine(terminal.StyleInstrument, "%s", dbg.nes.CPU)
			if dbg.nes.CPU.Killed {
				dbg.printLine(terminal.StyleInstrument, "CPU has been killed")
			}
			return nil
		}

		if strings.ToUpper(option) == "SET" {
			reg, ok := tokens.Get()
			if !ok {
				return curated.Errorf("%s SET requires a register and a value", cmdCPU)
			}
			value, ok := tokens.Get()
			if !ok {
				return curated.Errorf("%s SET requires a register and a value", cmdCPU)
			}
			err := dbg.setRegister(reg, value)
			if err != nil {
				return err
			}
			dbg.printLine(terminal.StyleInstrument, "%s", dbg.nes.CPU)
		}

	case cmdPPU:
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.nes.PPU)

	case cmdPeek:
		for tok, ok := tokens.Get(); ok; tok, ok = tokens.Get() {
			ai, err := dbg.peek(tok)
			if err != nil {
				dbg.printLine(terminal.StyleError, "%s", err)
				continue
			}
			dbg.printLine(terminal.StyleInstrument, "%s", ai)
		}

	case cmdPoke:
		address, _ := tokens.Get()
		value, _ := tokens.Get()
		ai, err := dbg.poke(address, value)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleInstrument, "%s", ai)

	case cmdBreak:
		return dbg.processBreak(tokens)

	case cmdLog:
		option, _ := tokens.Get()
		switch strings.ToUpper(option) {
		case "LAST":
			logger.Tail(dbg.printStyle(terminal.StyleFeedback), 1)
		case "CLEAR":
			logger.Clear()
		default:
			logger.Write(dbg.printStyle(terminal.StyleFeedback))
		}

	case cmdMemviz:
		fn, err := dbg.memviz()
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "memviz written to %s", fn)
	}

	return nil
}

// parseCount returns the next token as a positive number. the default value
// is returned if there are no more tokens.
func parseCount(tokens *commandline.Tokens, def int) (int, error) {
	tok, ok := tokens.Get()
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 1 {
		return 0, curated.Errorf("count must be a positive number (%s)", tok)
	}
	return n, nil
}

// stepOut runs until the current subroutine returns. the return is
// recognised by the PC arriving at the predicted RTS address with the stack
// pointer restored to where it was before the JSR.
func (dbg *Debugger) stepOut() error {
	rts, ok := dbg.nes.CPU.PredictRTS()
	if !ok {
		return curated.Errorf("%s OUT: return address unavailable", cmdStep)
	}
	sp := dbg.nes.CPU.SP.Value() + 2

	dbg.state = govern.Running
	err := dbg.nes.Run(func() (govern.State, error) {
		if dbg.nes.CPU.PC.Address() == rts && dbg.nes.CPU.SP.Value() == sp {
			return govern.Ending, nil
		}
		return dbg.checkBreak()
	})
	dbg.state = govern.Paused
	if err != nil {
		return err
	}

	dbg.printResult(terminal.StyleCPUStep, disassembly.WriteAttr{Bytecode: true})
	return nil
}

// printResult prints the most recent CPU result.
func (dbg *Debugger) printResult(sty terminal.Style, attr disassembly.WriteAttr) {
	e := disassembly.FormatResult(dbg.sym, dbg.nes.CPU.LastResult)
	disassembly.WriteEntry(dbg.printStyle(sty), attr, e)
}

// disassemble the current contents of memory, using the debugger's symbols.
func (dbg *Debugger) disassemble(origin uint16, memtop uint16) (*disassembly.Disassembly, error) {
	return disassembly.FromMemory(dbg.nes.Mem, dbg.sym, origin, memtop)
}

func (dbg *Debugger) processDisasm(tokens *commandline.Tokens) error {
	tok, ok := tokens.Get()
	if !ok {
		if dbg.nes.Cart == nil {
			return curated.Errorf("%s: no cartridge attached", cmdDisasm)
		}
		dsm, err := dbg.disassemble(memorymap.OriginPRG, memorymap.Memtop)
		if err != nil {
			return err
		}
		dsm.Write(dbg.printStyle(terminal.StyleFeedback), disassembly.WriteAttr{Bytecode: true})
		return nil
	}

	address, err := dbg.resolveAddress(tok)
	if err != nil {
		return err
	}

	count, err := parseCount(tokens, defaultDisasmCount)
	if err != nil {
		return err
	}

	// an instruction is never more than three bytes long
	memtop := uint16(min(int(address)+count*3, int(memorymap.Memtop)))

	dsm, err := dbg.disassemble(address, memtop)
	if err != nil {
		return err
	}

	w := dbg.printStyle(terminal.StyleFeedback)
	attr := disassembly.WriteAttr{Bytecode: true}

	a := int(address)
	for range count {
		e, ok := dsm.Get(uint16(a))
		if !ok {
			break
		}
		dsm.WriteEntry(w, attr, e)
		a += e.Result.ByteCount
	}

	return nil
}

func (dbg *Debugger) processSymbol(tokens *commandline.Tokens) error {
	tok, _ := tokens.Get()

	switch strings.ToUpper(tok) {
	case "LIST":
		w := dbg.printStyle(terminal.StyleFeedback)
		option, _ := tokens.Get()
		switch strings.ToUpper(option) {
		case "":
			dbg.sym.ListSymbols(w)
		case "LABELS":
			dbg.sym.ListLabels(w)
		case "READ":
			dbg.sym.ListReadSymbols(w)
		case "WRITE":
			dbg.sym.ListWriteSymbols(w)
		default:
			return curated.Errorf(commandline.InvalidOption, cmdSymbol, option)
		}

	case "ADD":
		tok, _ := tokens.Get()
		label, ok := tokens.Get()
		if !ok {
			return curated.Errorf("%s ADD requires an address and a label", cmdSymbol)
		}
		address, err := dbg.resolveAddress(tok)
		if err != nil {
			return err
		}
		if !dbg.sym.AddLabel(address, label, true) {
			return curated.Errorf("label not added (%s)", label)
		}
		l, _ := dbg.sym.GetLabel(address)
		dbg.printLine(terminal.StyleFeedback, "%s -> $%04x", l, address)

	case "REMOVE":
		tok, ok := tokens.Get()
		if !ok {
			return curated.Errorf("%s REMOVE requires an address", cmdSymbol)
		}
		address, err := dbg.resolveAddress(tok)
		if err != nil {
			return err
		}
		if !dbg.sym.RemoveLabel(address) {
			return curated.Errorf("no label at $%04x", address)
		}
		dbg.printLine(terminal.StyleFeedback, "label removed from $%04x", address)

	default:
		address, err := dbg.resolveAddress(tok)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "%s -> $%04x", strings.ToUpper(tok), address)
	}

	return nil
}

func (dbg *Debugger) processBreak(tokens *commandline.Tokens) error {
	tok, ok := tokens.Get()
	if !ok {
		dbg.breakpoints.list(dbg.printStyle(terminal.StyleFeedback))
		return nil
	}

	switch strings.ToUpper(tok) {
	case "LIST":
		dbg.breakpoints.list(dbg.printStyle(terminal.StyleFeedback))

	case "CLEAR":
		dbg.breakpoints.clear()
		dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")

	case "DROP":
		tok, ok := tokens.Get()
		if !ok {
			return curated.Errorf("%s DROP requires a breakpoint number", cmdBreak)
		}
		num, err := strconv.Atoi(tok)
		if err != nil {
			return curated.Errorf("break: no such breakpoint (%s)", tok)
		}
		err = dbg.breakpoints.drop(num)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint #%d dropped", num)

	default:
		address, err := dbg.resolveAddress(tok)
		if err != nil {
			return err
		}
		err = dbg.breakpoints.add(address)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "break on PC->$%04x added", address)
	}

	return nil
}

func (dbg *Debugger) processScript(tokens *commandline.Tokens) error {
	tok, _ := tokens.Get()

	switch strings.ToUpper(tok) {
	case "RECORD":
		filename, ok := tokens.Get()
		if !ok {
			return curated.Errorf("%s RECORD requires a filename", cmdScript)
		}
		err := dbg.scriptScribe.StartSession(filename)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "recording to %s", filename)

	case "END":
		if !dbg.scriptScribe.IsActive() {
			return curated.Errorf("%s: no script is being recorded", cmdScript)
		}

		// the END command itself is not part of the script
		dbg.scriptScribe.Rollback()

		err := dbg.scriptScribe.EndSession()
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "recording ended")

	default:
		err := dbg.startScript(tok)
		if err != nil {
			return err
		}
	}

	return nil
}

// setRegister changes the value of the named CPU register.
func (dbg *Debugger) setRegister(reg string, value string) error {
	mc := dbg.nes.CPU

	if strings.ToUpper(reg) == "PC" {
		v, err := strconv.ParseUint(value, 0, 16)
		if err != nil {
			return curated.Errorf("value must be 16 bit (%s)", value)
		}
		mc.PC.Load(uint16(v))
		return nil
	}

	v, err := parseValue(value)
	if err != nil {
		return err
	}

	switch strings.ToUpper(reg) {
	case "A":
		mc.A.Load(v)
	case "X":
		mc.X.Load(v)
	case "Y":
		mc.Y.Load(v)
	case "SP":
		mc.SP.Load(v)
	case "SR", "P":
		mc.Status.Load(v)
	default:
		return curated.Errorf("unrecognised register (%s)", reg)
	}

	return nil
}

func (dbg *Debugger) String() string {
	return fmt.Sprintf("%s: %s", dbg.state, dbg.nes)
}
