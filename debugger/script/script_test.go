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

package script_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GaryFrazier/rustyNES/curated"
	"github.com/GaryFrazier/rustyNES/debugger/script"
	"github.com/GaryFrazier/rustyNES/debugger/terminal"
	"github.com/GaryFrazier/rustyNES/test"
)

func TestRescribe(t *testing.T) {
	scr, err := script.NewRescribe("test", strings.NewReader("# comment\nstep\n\n  # another\n  cpu  \nquit"))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, scr.IsInteractive())

	var lines []string
	for {
		s, err := scr.TermRead(terminal.Prompt{}, nil)
		if err != nil {
			test.ExpectSuccess(t, curated.Is(err, script.ScriptEnd))
			break
		}
		lines = append(lines, s)
	}

	test.ExpectEquality(t, strings.Join(lines, ","), "step,cpu,quit")

	_, err = script.RescribeScript(filepath.Join(t.TempDir(), "missing"))
	test.ExpectSuccess(t, curated.Is(err, script.ScriptUnavailable))
}

func TestScribe(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "script")

	var scr script.Scribe
	test.ExpectFailure(t, scr.IsActive())
	test.DemandSuccess(t, scr.StartSession(fn))
	test.ExpectSuccess(t, scr.IsActive())

	// second session is not allowed
	test.ExpectFailure(t, scr.StartSession(fn))

	scr.WriteInput("STEP")
	scr.WriteOutput("$8000 LDA #$80")

	// failed commands are rolled back
	scr.WriteInput("BAD")
	scr.Rollback()

	// commands from a script being played back are not recorded
	scr.StartPlayback()
	scr.WriteInput("CPU")
	scr.EndPlayback()

	scr.WriteInput("QUIT")
	test.DemandSuccess(t, scr.EndSession())
	test.ExpectFailure(t, scr.IsActive())

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), "STEP\n# $8000 LDA #$80\nQUIT\n")

	// existing files are not overwritten
	test.ExpectFailure(t, scr.StartSession(fn))

	// scribed scripts can be rescribed
	rsc, err := script.RescribeScript(fn)
	test.DemandSuccess(t, err)
	s, err := rsc.TermRead(terminal.Prompt{}, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "STEP")
	s, err = rsc.TermRead(terminal.Prompt{}, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "QUIT")
}
