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

package debugger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GaryFrazier/rustyNES/cartridgeloader"
	"github.com/GaryFrazier/rustyNES/debugger"
	"github.com/GaryFrazier/rustyNES/debugger/govern"
	"github.com/GaryFrazier/rustyNES/debugger/terminal/plainterm"
	"github.com/GaryFrazier/rustyNES/hardware"
	"github.com/GaryFrazier/rustyNES/hardware/memory/cartridge"
	"github.com/GaryFrazier/rustyNES/test"
)

// the test program
//
//	$8000 LDA #$80
//	$8002 STA $0200
//	$8005 INX
//	$8006 JMP $8005
var program = []uint8{0xa9, 0x80, 0x8d, 0x00, 0x02, 0xe8, 0x4c, 0x05, 0x80}

// writeNROM creates a single bank NROM image file with the program placed at
// 0x8000. every vector points to 0x8000
func writeNROM(t *testing.T, program []uint8) string {
	t.Helper()

	prg := make([]uint8, cartridge.PRGBankSize)
	copy(prg, program)
	for _, v := range []int{0x3ffa, 0x3ffc, 0x3ffe} {
		prg[v] = 0x00
		prg[v+1] = 0x80
	}

	data := []uint8{'N', 'E', 'S', 0x1a, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	data = append(data, prg...)
	data = append(data, make([]uint8, cartridge.CHRBankSize)...)

	fn := filepath.Join(t.TempDir(), "test.nes")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))

	return fn
}

// runDebugger runs the debugger with the input and returns the output
func runDebugger(t *testing.T, program []uint8, input string, initScript string) (*test.Writer, *hardware.NES) {
	t.Helper()

	nes, err := hardware.NewNES(nil)
	test.DemandSuccess(t, err)
	nes.SetLogging(false)

	output := &test.Writer{}
	term := plainterm.NewPlainTerminal(strings.NewReader(input), output)

	dbg, err := debugger.NewDebugger(nes, term)
	test.DemandSuccess(t, err)

	cl := cartridgeloader.NewLoader(writeNROM(t, program))
	test.DemandSuccess(t, dbg.Start(initScript, &cl))
	test.ExpectEquality(t, dbg.State(), govern.Ending)

	return output, nes
}

func TestNoHardware(t *testing.T) {
	_, err := debugger.NewDebugger(nil, plainterm.NewPlainTerminal(strings.NewReader(""), &test.Writer{}))
	test.ExpectFailure(t, err)

	nes, err := hardware.NewNES(nil)
	test.DemandSuccess(t, err)
	_, err = debugger.NewDebugger(nes, nil)
	test.ExpectFailure(t, err)
}

func TestEndOfInput(t *testing.T) {
	// the debugger ends without the QUIT command when the input is exhausted
	output, _ := runDebugger(t, program, "", "")
	test.ExpectEquality(t, output.String(), "")
}

func TestBreakAndRun(t *testing.T) {
	output, nes := runDebugger(t, program, "BREAK $8006\nRUN\nCPU\nPEEK $0200 PPUSTATUS\nQUIT\n", "")

	test.ExpectSuccess(t, output.Contains("break on PC->$8006 added\n"))
	test.ExpectSuccess(t, output.Contains("break on PC->$8006\n"))
	test.ExpectSuccess(t, output.Contains("A=0x80"))
	test.ExpectSuccess(t, output.Contains("$0200 [RAM] -> $80\n"))
	test.ExpectSuccess(t, output.Contains("$2002 (PPUSTATUS) [PPU]"))

	test.ExpectEquality(t, nes.CPU.PC.Address(), 0x8006)
	test.ExpectEquality(t, nes.CPU.X.Value(), 1)

	// the second RUN moves past the breakpoint and halts on it again
	output, nes = runDebugger(t, program, "BREAK $8006\nRUN\nRUN\nQUIT\n", "")
	test.ExpectEquality(t, strings.Count(output.String(), "break on PC->$8006\n"), 2)
	test.ExpectEquality(t, nes.CPU.X.Value(), 2)
}

func TestBreakpointList(t *testing.T) {
	output, _ := runDebugger(t, program, "BREAK\nBREAK $8005\nBREAK $8006\nBREAK $8005\nBREAK LIST\nBREAK DROP 0\nBREAK\nBREAK CLEAR\nBREAK LIST\n", "")

	test.ExpectSuccess(t, output.Contains("no breakpoints\n"))
	test.ExpectSuccess(t, output.Contains("* break: already exists (0x8005)\n"))
	test.ExpectSuccess(t, output.Contains(" 0: PC->$8005\n 1: PC->$8006\n"))
	test.ExpectSuccess(t, output.Contains("breakpoint #0 dropped\n 0: PC->$8006\n"))
	test.ExpectSuccess(t, output.Contains("breakpoints cleared\nno breakpoints\n"))
}

func TestStep(t *testing.T) {
	output, nes := runDebugger(t, program, "LAST\nSTEP\nSTEP 2\nLAST\n", "")

	test.ExpectSuccess(t, output.Contains("no instruction executed yet\n"))
	test.ExpectSuccess(t, output.Contains("RESET\n$8000  a9 80  LDA #$80\n"))
	test.ExpectSuccess(t, output.Contains("STA $0200"))
	test.ExpectSuccess(t, output.Contains("INX"))
	test.ExpectEquality(t, nes.CPU.PC.Address(), 0x8006)
	test.ExpectEquality(t, nes.Mem.Peek(0x0200), 0x80)
}

func TestPokeAndRegisters(t *testing.T) {
	output, nes := runDebugger(t, program, "POKE $0010 $ff\nPOKE $0010 $100\nCPU SET X 10\nCPU SET PC $8005\nCPU SET Q 1\nSTEP\n", "")

	test.ExpectSuccess(t, output.Contains("$0010 [RAM] -> $ff\n"))
	test.ExpectSuccess(t, output.Contains("* value must be 8 bit (0x100)\n"))
	test.ExpectSuccess(t, output.Contains("* unrecognised register (Q)\n"))

	// the STEP completes the reset sequence and then runs the INX instruction
	// at the new PC
	test.ExpectEquality(t, nes.Mem.Peek(0x0010), 0xff)
	test.ExpectEquality(t, nes.CPU.X.Value(), 11)
	test.ExpectEquality(t, nes.CPU.PC.Address(), 0x8006)
}

func TestKilled(t *testing.T) {
	output, nes := runDebugger(t, []uint8{0x02}, "STEP\nCPU\nSTEP\nRESET\nCPU\n", "")

	test.ExpectSuccess(t, output.Contains("KIL"))
	test.ExpectSuccess(t, output.Contains("CPU has been killed\n"))
	test.ExpectSuccess(t, output.Contains("* cpu: CPU has been killed at"))
	test.ExpectSuccess(t, output.Contains("machine reset\n"))
	test.ExpectFailure(t, nes.CPU.Killed)
}

func TestStepOut(t *testing.T) {
	subroutine := []uint8{
		0x20, 0x06, 0x80, // JSR $8006
		0x4c, 0x03, 0x80, // JMP $8003
		0xe8, // INX
		0xe8, // INX
		0x60, // RTS
	}

	output, nes := runDebugger(t, subroutine, "STEP\nSTEP\nSTEP out\n", "")

	test.ExpectEquality(t, nes.CPU.PC.Address(), 0x8003)
	test.ExpectEquality(t, nes.CPU.X.Value(), 2)
	test.ExpectEquality(t, nes.CPU.SP.Value(), 0xfd)
	test.ExpectSuccess(t, output.Contains("RTS"))
}

func TestCommandErrors(t *testing.T) {
	output, _ := runDebugger(t, program, "FOO\nPOKE $10\nLOG BAR\nSTEP x\n", "")

	test.ExpectSuccess(t, output.Contains("* unrecognised command (FOO)\n"))
	test.ExpectSuccess(t, output.Contains("* wrong number of arguments for POKE (usage: POKE address value)\n"))
	test.ExpectSuccess(t, output.Contains("* invalid option for LOG (BAR)\n"))
	test.ExpectSuccess(t, output.Contains("* count must be a positive number (x)\n"))
}

func TestHelp(t *testing.T) {
	output, _ := runDebugger(t, program, "HELP STEP\nHELP\n", "")

	test.ExpectSuccess(t, output.Contains("usage: STEP [OUT|count]\n"))
	test.ExpectSuccess(t, output.Contains("BREAK"))
	test.ExpectSuccess(t, output.Contains("QUIT"))
}

func TestSymbols(t *testing.T) {
	output, _ := runDebugger(t, program, "SYMBOL PPUSTATUS\nSYMBOL ADD $8005 loop\nSYMBOL loop\nBREAK loop\nDISASM $8005 2\nSYMBOL REMOVE $8005\nSYMBOL REMOVE $8005\nSYMBOL LIST LABELS\n", "")

	test.ExpectSuccess(t, output.Contains("PPUSTATUS -> $2002\n"))
	test.ExpectSuccess(t, output.Contains("loop -> $8005\n"))
	test.ExpectSuccess(t, output.Contains("LOOP -> $8005\n"))
	test.ExpectSuccess(t, output.Contains("break on PC->$8005 added\n"))
	test.ExpectSuccess(t, output.Contains("loop\n$8005"))
	test.ExpectSuccess(t, output.Contains("JMP loop"))
	test.ExpectSuccess(t, output.Contains("label removed from $8005\n"))
	test.ExpectSuccess(t, output.Contains("* no label at $8005\n"))
	test.ExpectSuccess(t, output.Contains("Labels\n"))
	test.ExpectSuccess(t, output.Contains("RESET"))
}

func TestGrep(t *testing.T) {
	output, _ := runDebugger(t, program, "GREP OPERATOR inx\nGREP OPERAND zzz\nGREP FOO bar\n", "")

	test.ExpectSuccess(t, output.Contains("$8005  INX\n"))
	test.ExpectSuccess(t, output.Contains("zzz not found in disassembly\n"))
	test.ExpectSuccess(t, output.Contains("* invalid option for GREP (FOO)\n"))
}

func TestFrame(t *testing.T) {
	output, nes := runDebugger(t, program, "FRAME 2\nPPU\n", "")
	test.ExpectEquality(t, nes.PPU.Frame, 2)
	test.ExpectSuccess(t, output.Contains("frame 2\n"))
}

func TestScript(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "script")

	output, _ := runDebugger(t, program, "SCRIPT END\nSCRIPT RECORD "+fn+"\nSTEP\nFOO\nCPU\nSCRIPT END\nQUIT\n", "")
	test.ExpectSuccess(t, output.Contains("* SCRIPT: no script is being recorded\n"))
	test.ExpectSuccess(t, output.Contains("recording ended\n"))

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	// commands that failed and the SCRIPT END command are not recorded
	s := string(b)
	test.ExpectSuccess(t, strings.Contains(s, "STEP\n"))
	test.ExpectSuccess(t, strings.Contains(s, "CPU\n"))
	test.ExpectFailure(t, strings.Contains(s, "FOO"))
	test.ExpectFailure(t, strings.Contains(s, "SCRIPT END"))
	test.ExpectSuccess(t, strings.Contains(s, "# $8000  a9 80  LDA #$80\n"))

	// replay the script as the initialisation script
	_, nes := runDebugger(t, program, "QUIT\n", fn)
	test.ExpectEquality(t, nes.CPU.PC.Address(), 0x8002)

	// and with the SCRIPT command
	_, nes = runDebugger(t, program, "SCRIPT "+fn+"\nSTEP\nQUIT\n", "")
	test.ExpectEquality(t, nes.CPU.PC.Address(), 0x8005)
}

func TestLog(t *testing.T) {
	// the debugger logs the attachment of the cartridge
	output, _ := runDebugger(t, program, "LOG LAST\nLOG CLEAR\nLOG\n", "")
	test.ExpectEquality(t, strings.Count(output.String(), "debugger: attached "), 1)
}

func TestMemviz(t *testing.T) {
	t.Chdir(t.TempDir())

	output, _ := runDebugger(t, program, "MEMVIZ\n", "")
	test.ExpectSuccess(t, output.Contains("memviz written to memviz_test_"))

	m, err := filepath.Glob("memviz_test_*.dot")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(m), 1)
}
