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

package script

import (
	"io"
	"os"
	"strings"

	"github.com/GaryFrazier/rustyNES/curated"
	"github.com/GaryFrazier/rustyNES/debugger/terminal"
)

// Sentinal error patterns returned by the script package.
const (
	ScriptUnavailable = "script: file unavailable (%v)"
	ScriptEnd         = "script: end of script (%s)"
	ScribeError       = "script: scribe error (%v)"
)

const commentLine = "#"

// check if line is prepended with commentLine (ignoring leading spaces)
func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), commentLine)
}

// Rescribe represents an previously scribed script. The type implements the
// terminal.Input interface.
type Rescribe struct {
	name   string
	lines  []string
	lineCt int
}

// RescribeScript is the preferred method of initialisation for the Rescribe
// type.
func RescribeScript(scriptfile string) (*Rescribe, error) {
	f, err := os.Open(scriptfile)
	if err != nil {
		return nil, curated.Errorf(ScriptUnavailable, err)
	}
	defer f.Close()

	return NewRescribe(scriptfile, f)
}

// NewRescribe creates a Rescribe instance from the contents of the reader.
// The name is used in error messages.
func NewRescribe(name string, r io.Reader) (*Rescribe, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf(ScriptUnavailable, err)
	}

	scr := &Rescribe{name: name}

	for _, l := range strings.Split(string(b), "\n") {
		l = strings.TrimSpace(l)
		if l == "" || isComment(l) {
			continue
		}
		scr.lines = append(scr.lines, l)
	}

	return scr, nil
}

// IsInteractive implements the terminal.Input interface.
func (scr *Rescribe) IsInteractive() bool {
	return false
}

// TermRead implements the terminal.Input interface. Returns the ScriptEnd
// error when there are no more lines.
func (scr *Rescribe) TermRead(_ terminal.Prompt, _ *terminal.ReadEvents) (string, error) {
	if scr.lineCt >= len(scr.lines) {
		return "", curated.Errorf(ScriptEnd, scr.name)
	}

	s := scr.lines[scr.lineCt]
	scr.lineCt++

	return s, nil
}
