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

// Package debugger implements a reasonably comprehensive debugging tool for
// the NES. Features include:
//
//   - stepping by CPU instruction
//   - running until a PC breakpoint is reached or for a number of frames
//   - inspection and modification of memory and CPU registers
//   - a disassembly of the cartridge, with symbols and labels
//   - recording and replaying of debugging scripts
//
// Initialisation of the debugger is done with the NewDebugger() function
//
//	dbg, err := debugger.NewDebugger(nes, term)
//
// The terminal argument is an implementation of the terminal.Terminal
// interface. The plainterm and colorterm packages provide implementations.
//
// The debugger is started with the Start() function. The cartridge loader
// argument can be nil, in which case the debugger runs on whatever is in
// memory.
//
//	err = dbg.Start(initScript, &loader)
//
// The Start() function returns only when the QUIT command is issued or when
// the terminal reaches the end of its input.
//
// The HELP command lists all commands. HELP followed by a command name gives
// usage information about that command.
package debugger
