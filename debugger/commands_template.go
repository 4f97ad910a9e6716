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

	"github.com/GaryFrazier/rustyNES/debugger/terminal/commandline"
)

// debugger keywords
const (
	cmdReset = "RESET"
	cmdQuit  = "QUIT"
	cmdHelp  = "HELP"

	cmdRun    = "RUN"
	cmdStep   = "STEP"
	cmdFrame  = "FRAME"
	cmdScript = "SCRIPT"

	cmdDisasm = "DISASM"
	cmdGrep   = "GREP"
	cmdSymbol = "SYMBOL"
	cmdLast   = "LAST"
	cmdCPU    = "CPU"
	cmdPPU    = "PPU"
	cmdPeek   = "PEEK"
	cmdPoke   = "POKE"
	cmdBreak  = "BREAK"

	cmdLog    = "LOG"
	cmdMemviz = "MEMVIZ"
)

var commandTemplate = []commandline.Command{
	{
		Keyword: cmdReset,
		Help:    "Reset the emulated machine. Breakpoints and symbols are kept.",
	},
	{
		Keyword: cmdQuit,
		Help:    "Exit the debugger. An active script recording is ended.",
	},
	{
		Keyword: cmdHelp,
		Usage:   "[command]",
		MaxArgs: 1,
		Help:    "List all commands or show the help for a single command.",
	},
	{
		Keyword: cmdRun,
		Help:    "Run the emulation until a breakpoint is met or until interrupted with Ctrl-C.",
	},
	{
		Keyword: cmdStep,
		Usage:   "[OUT|count]",
		MaxArgs: 1,
		Help:    "Step forward by one CPU instruction, or by the number of instructions given. STEP OUT runs until the current subroutine returns.",
	},
	{
		Keyword: cmdFrame,
		Usage:   "[count]",
		MaxArgs: 1,
		Help:    "Run the emulation until the start of the next frame, or for the number of frames given. Breakpoints are honoured.",
	},
	{
		Keyword: cmdScript,
		Usage:   "filename | RECORD filename | END",
		MinArgs: 1,
		MaxArgs: 2,
		Help:    "Run commands from a script file. RECORD writes subsequent commands to a new script file until SCRIPT END.",
	},
	{
		Keyword: cmdDisasm,
		Usage:   "[address [count]]",
		MaxArgs: 2,
		Help:    "Print the disassembly of the cartridge area, or of count instructions from the address.",
	},
	{
		Keyword: cmdGrep,
		Usage:   "[OPERATOR|OPERAND] search",
		MinArgs: 1,
		MaxArgs: 2,
		Help:    "Search the disassembly. The search is not case sensitive.",
	},
	{
		Keyword: cmdSymbol,
		Usage:   "symbol | LIST [LABELS|READ|WRITE] | ADD address label | REMOVE address",
		MinArgs: 1,
		MaxArgs: 3,
		Help:    "Look up the address of a symbol or label, list the symbol tables, or maintain the list of labels.",
	},
	{
		Keyword: cmdLast,
		Usage:   "[DEFN]",
		MaxArgs: 1,
		Options: []string{"DEFN"},
		Help:    "Print the most recently executed instruction. DEFN prints the instruction definition.",
	},
	{
		Keyword: cmdCPU,
		Usage:   "[SET register value]",
		MaxArgs: 3,
		Options: []string{"SET"},
		Help:    "Print the CPU registers or change the value of a register (PC, A, X, Y, SP, SR).",
	},
	{
		Keyword: cmdPPU,
		Help:    "Print the PPU timing state and registers.",
	},
	{
		Keyword: cmdPeek,
		Usage:   "address [address...]",
		MinArgs: 1,
		MaxArgs: commandline.Unlimited,
		Help:    "Print the value at each address. Addresses can be numbers, symbols or labels. Peeking has no side effects.",
	},
	{
		Keyword: cmdPoke,
		Usage:   "address value",
		MinArgs: 2,
		MaxArgs: 2,
		Help:    "Change the value at the address. Poking has no side effects.",
	},
	{
		Keyword: cmdBreak,
		Usage:   "[address | LIST | CLEAR | DROP n]",
		MaxArgs: 2,
		Help:    "Halt RUN and FRAME when the PC reaches the address. Without arguments the breakpoints are listed.",
	},
	{
		Keyword: cmdLog,
		Usage:   "[LAST|CLEAR]",
		MaxArgs: 1,
		Options: []string{"LAST", "CLEAR"},
		Help:    "Print the emulation log, the most recent entry, or clear the log.",
	},
	{
		Keyword: cmdMemviz,
		Help:    "Write a graphviz representation of the CPU and memory to a new file in the current directory.",
	},
}

// debuggerCommands is the compiled version of commandTemplate.
var debuggerCommands *commandline.Commands

func init() {
	var err error

	debuggerCommands, err = commandline.NewCommands(commandTemplate)
	if err != nil {
		panic(fmt.Errorf("error compiling command template: %w", err))
	}
}
