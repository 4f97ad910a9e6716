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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/GaryFrazier/rustyNES/cartridgeloader"
	"github.com/GaryFrazier/rustyNES/debugger"
	"github.com/GaryFrazier/rustyNES/debugger/govern"
	"github.com/GaryFrazier/rustyNES/debugger/terminal"
	"github.com/GaryFrazier/rustyNES/debugger/terminal/colorterm"
	"github.com/GaryFrazier/rustyNES/debugger/terminal/plainterm"
	"github.com/GaryFrazier/rustyNES/digest"
	"github.com/GaryFrazier/rustyNES/disassembly"
	"github.com/GaryFrazier/rustyNES/disassembly/symbols"
	"github.com/GaryFrazier/rustyNES/hardware"
	"github.com/GaryFrazier/rustyNES/hardware/memory/cartridge"
	"github.com/GaryFrazier/rustyNES/hardware/preferences"
	"github.com/GaryFrazier/rustyNES/logger"
	"github.com/GaryFrazier/rustyNES/modalflag"
	"github.com/GaryFrazier/rustyNES/paths"
	"github.com/GaryFrazier/rustyNES/performance"
	"github.com/GaryFrazier/rustyNES/prefs"
	"github.com/GaryFrazier/rustyNES/statsview"
	"github.com/GaryFrazier/rustyNES/version"
)

const defaultInitScript = "debuggerInit"

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// stop the default interrupt signal handling. used when the debugger
	// handles interrupt signals itself.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// default ctrl-c handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Stop(intChan)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate when to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DEBUG":
		err = debug(md, sync)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// newPreferences pushes the prefs string onto the command line stack and
// loads the hardware preferences. the command line values take priority over
// the values on disk.
func newPreferences(prefsString string) (*preferences.Preferences, error) {
	prefs.PushCommandLineStack(prefsString)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused command line preferences (%s)", unused)
		}
	}()

	return preferences.NewPreferences()
}

// cartridge file is the only argument for every mode.
func cartridgeArg(md *modalflag.Modes) (cartridgeloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return cartridgeloader.Loader{}, fmt.Errorf("NES cartridge required for %s mode", md)
	case 1:
		return cartridgeloader.NewLoader(md.GetArg(0)), nil
	}
	return cartridgeloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	trace := md.AddBool("trace", false, "print every CPU instruction")
	log := md.AddBool("log", false, "echo log to stdout")
	fingerprint := md.AddBool("digest", false, "print a fingerprint of the CPU state sequence")
	frames := md.AddInt("frames", 0, "number of frames to run for. zero runs until an error")
	prefsString := md.AddString("prefs", "", "hardware preferences (eg. \"cpu.randomstate::true\")")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cl, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	if *log {
		logger.SetEcho(md.Output, false)
		defer logger.SetEcho(nil, false)
	}

	prf, err := newPreferences(*prefsString)
	if err != nil {
		return err
	}

	nes, err := hardware.NewNES(prf)
	if err != nil {
		return err
	}

	cart, err := cartridge.NewCartridge(&cl)
	if err != nil {
		return err
	}

	err = nes.AttachCartridge(cart)
	if err != nil {
		return err
	}

	continueCheck := func() (govern.State, error) {
		return govern.Running, nil
	}

	if *trace {
		sym := symbols.NewSymbols()
		sym.AddVectorLabels(nes.Mem)
		attr := disassembly.WriteAttr{Bytecode: true, Cycles: true, Notes: true}

		continueCheck = func() (govern.State, error) {
			disassembly.WriteEntry(md.Output, attr, disassembly.FormatResult(sym, nes.CPU.LastResult))
			return govern.Running, nil
		}
	}

	var dig *digest.CPU
	if *fingerprint {
		dig = digest.NewCPU()
		check := continueCheck
		continueCheck = func() (govern.State, error) {
			dig.Update(nes.CPU)
			return check()
		}
	}

	if *frames > 0 {
		err = nes.RunForFrameCount(*frames, func(_ int) (govern.State, error) {
			return continueCheck()
		})
	} else {
		err = nes.Run(continueCheck)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%d frames, %d CPU cycles\n", nes.PPU.Frame, nes.CPU.Cycles)
	if dig != nil {
		fmt.Fprintf(md.Output, "digest: %s\n", dig)
	}

	return nil
}

func debug(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	defInitScript, err := paths.ResourcePath("", defaultInitScript)
	if err != nil {
		return err
	}

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	initScript := md.AddString("initscript", defInitScript, "script to run on debugger start")
	prefsString := md.AddString("prefs", "", "hardware preferences (eg. \"cpu.randomstate::true\")")
	profile := md.AddString("profile", "none", "run debugger through profiler (cpu, mem, trace, all)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cl, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	// a missing init script is not an error unless it was specified by the
	// user
	if *initScript == defInitScript {
		if _, err := os.Stat(defInitScript); err != nil {
			*initScript = ""
		}
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	prf, err := newPreferences(*prefsString)
	if err != nil {
		return err
	}

	nes, err := hardware.NewNES(prf)
	if err != nil {
		return err
	}

	// turn off fallback ctrl-c handling. the debugger uses ctrl-c events to
	// interrupt execution of the emulation without quitting the debugger
	// itself
	sync.state <- stateRequest{req: reqNoIntSig}

	dbg, err := debugger.NewDebugger(nes, term)
	if err != nil {
		return err
	}

	return performance.RunProfiler(prof, "debugger", func() error {
		return dbg.Start(*initScript, &cl)
	})
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	cycles := md.AddBool("cycles", false, "include cycle counts in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cl, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	cart, err := cartridge.NewCartridge(&cl)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromCartridge(cart)
	if err != nil {
		return err
	}

	dsm.Write(md.Output, disassembly.WriteAttr{Bytecode: *bytecode, Cycles: *cycles})

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddDuration("duration", 5*time.Second, "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "produce profiling reports (cpu, mem, trace, all)")
	prefsString := md.AddString("prefs", "", "hardware preferences (eg. \"cpu.randomstate::true\")")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cl, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	prf, err := newPreferences(*prefsString)
	if err != nil {
		return err
	}

	if stats != nil && *stats {
		statsview.Launch(md.Output)
	}

	return performance.Check(md.Output, prof, cl, prf, *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}
