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
	"os"
	"os/signal"
	"syscall"

	"github.com/GaryFrazier/rustyNES/cartridgeloader"
	"github.com/GaryFrazier/rustyNES/curated"
	"github.com/GaryFrazier/rustyNES/debugger/govern"
	"github.com/GaryFrazier/rustyNES/debugger/script"
	"github.com/GaryFrazier/rustyNES/debugger/terminal"
	"github.com/GaryFrazier/rustyNES/debugger/terminal/commandline"
	"github.com/GaryFrazier/rustyNES/disassembly"
	"github.com/GaryFrazier/rustyNES/disassembly/symbols"
	"github.com/GaryFrazier/rustyNES/hardware"
	"github.com/GaryFrazier/rustyNES/hardware/memory/cartridge"
	"github.com/GaryFrazier/rustyNES/logger"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	nes  *hardware.NES
	term terminal.Terminal

	// the short name of the attached cartridge. used when creating files
	cartName string

	sym         *symbols.Symbols
	breakpoints breakpoints

	// the current state of the debugger. the debugger state is not the same
	// as the state returned by the continueCheck() functions used with the
	// hardware Run() functions
	state govern.State

	// scripts being played back. the most recent script is at the end of the
	// slice. the terminal is used when the slice is empty
	scripts []terminal.Input

	// the scribe is used to record a new script
	scriptScribe script.Scribe

	// signals from the operating system. the channel is also checked while
	// the emulation is running so that a RUN command can be interrupted
	events terminal.ReadEvents
}

// NewDebugger creates and initialises everything required for a new debugging
// session.
func NewDebugger(nes *hardware.NES, term terminal.Terminal) (*Debugger, error) {
	if nes == nil {
		return nil, curated.Errorf("debugger: %v", "no hardware")
	}
	if term == nil {
		return nil, curated.Errorf("debugger: %v", "no terminal")
	}

	dbg := &Debugger{
		nes:   nes,
		term:  term,
		sym:   symbols.NewSymbols(),
		state: govern.Initialising,
	}

	dbg.events = terminal.ReadEvents{
		Signal: make(chan os.Signal, 1),
		SignalHandler: func(sig os.Signal) error {
			return curated.Errorf(terminal.UserInterrupt)
		},
	}

	return dbg, nil
}

// State returns the current state of the debugger.
func (dbg *Debugger) State() govern.State {
	return dbg.state
}

// Start the main debugger sequence. The cartridge loader can be nil, in which
// case the emulation runs on whatever is in memory.
func (dbg *Debugger) Start(initScript string, cl *cartridgeloader.Loader) error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(commandline.NewTabCompletion(debuggerCommands))

	if cl != nil && cl.Filename != "" {
		err = dbg.attachCartridge(cl)
		if err != nil {
			return curated.Errorf("debugger: %v", err)
		}
	}

	if initScript != "" {
		err = dbg.startScript(initScript)
		if err != nil {
			return curated.Errorf("debugger: %v", err)
		}
	}

	signal.Notify(dbg.events.Signal, syscall.SIGINT)
	defer signal.Stop(dbg.events.Signal)

	dbg.state = govern.Paused

	err = dbg.inputLoop()

	// make sure any recording has been written
	if errScribe := dbg.scriptScribe.EndSession(); err == nil {
		err = errScribe
	}

	dbg.state = govern.Ending

	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	return nil
}

func (dbg *Debugger) attachCartridge(cl *cartridgeloader.Loader) error {
	cart, err := cartridge.NewCartridge(cl)
	if err != nil {
		return err
	}

	err = dbg.nes.AttachCartridge(cart)
	if err != nil {
		return err
	}

	dbg.cartName = cl.ShortName()
	dbg.sym.AddVectorLabels(dbg.nes.Mem)

	logger.Logf(logger.Allow, "debugger", "attached %s", cart)

	return nil
}

// startScript pushes a new script onto the input stack.
func (dbg *Debugger) startScript(filename string) error {
	scr, err := script.RescribeScript(filename)
	if err != nil {
		return err
	}
	dbg.scripts = append(dbg.scripts, scr)
	dbg.scriptScribe.StartPlayback()
	return nil
}

// the input that should be used for the next command.
func (dbg *Debugger) input() terminal.Input {
	if len(dbg.scripts) > 0 {
		return dbg.scripts[len(dbg.scripts)-1]
	}
	return dbg.term
}

// prompt shows the disassembly of the next instruction.
func (dbg *Debugger) prompt() terminal.Prompt {
	pc := dbg.nes.CPU.PC.Address()

	dsm, err := disassembly.FromMemory(dbg.nes.Mem, dbg.sym, pc, pc)
	if err != nil {
		return terminal.Prompt{Content: fmt.Sprintf("$%04x", pc)}
	}

	e, _ := dsm.Get(pc)
	return terminal.Prompt{Content: fmt.Sprintf("$%04x %s", pc, e)}
}

// inputLoop reads and processes commands until the QUIT command is received
// or until the end of terminal input.
func (dbg *Debugger) inputLoop() error {
	for dbg.state != govern.Ending {
		inp := dbg.input()

		s, err := inp.TermRead(dbg.prompt(), &dbg.events)
		if err != nil {
			switch {
			case curated.Is(err, script.ScriptEnd):
				dbg.scripts = dbg.scripts[:len(dbg.scripts)-1]
				dbg.scriptScribe.EndPlayback()
				continue
			case curated.Is(err, terminal.UserInterrupt):
				dbg.printLine(terminal.StyleFeedback, "use QUIT to exit the debugger")
				continue
			case curated.Is(err, terminal.UserAbort), err == io.EOF:
				dbg.state = govern.Ending
				continue
			}
			return err
		}

		// non-interactive input is echoed so that the output of a script
		// makes sense
		if !inp.IsInteractive() && s != "" {
			dbg.printLine(terminal.StyleEcho, "%s", s)
		}

		dbg.scriptScribe.WriteInput(s)

		err = dbg.parseInput(s)
		if err != nil {
			dbg.scriptScribe.Rollback()
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}

// checkInterrupt returns true if an interrupt signal has been received.
func (dbg *Debugger) checkInterrupt() bool {
	select {
	case <-dbg.events.Signal:
		dbg.printLine(terminal.StyleFeedback, "interrupted")
		return true
	default:
	}
	return false
}

// checkBreak is used as the continueCheck() function while the emulation is
// running. the Ending state stops the hardware Run() loop.
func (dbg *Debugger) checkBreak() (govern.State, error) {
	pc := dbg.nes.CPU.PC.Address()
	if dbg.breakpoints.check(pc) {
		dbg.printLine(terminal.StyleFeedback, "break on PC->$%04x", pc)
		return govern.Ending, nil
	}

	if dbg.checkInterrupt() {
		return govern.Ending, nil
	}

	return govern.Running, nil
}
