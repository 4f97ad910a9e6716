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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GaryFrazier/rustyNES/curated"
)

// Scribe can be used again after a start/end cycle. Not safe for concurrent
// use.
type Scribe struct {
	file       *os.File
	scriptfile string

	// the depth of script playback during the writing of a new script.
	// commands from a script being played back are not recorded
	playbackDepth int

	inputLine  string
	outputLine strings.Builder
}

// IsActive returns true if a script is currently being captured.
func (scr *Scribe) IsActive() bool {
	return scr.file != nil
}

// StartSession a new script. The file must not already exist.
func (scr *Scribe) StartSession(scriptfile string) error {
	if scr.IsActive() {
		return curated.Errorf(ScribeError, "already active")
	}

	f, err := os.OpenFile(scriptfile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return curated.Errorf(ScribeError, err)
	}

	scr.file = f
	scr.scriptfile = scriptfile

	return nil
}

// EndSession the current scribe session.
func (scr *Scribe) EndSession() error {
	if !scr.IsActive() {
		return nil
	}

	defer func() {
		scr.file = nil
		scr.scriptfile = ""
		scr.playbackDepth = 0
		scr.inputLine = ""
		scr.outputLine.Reset()
	}()

	// make sure everything has been written to the output file. the file is
	// closed even if the commit fails
	err := scr.Commit()

	errClose := scr.file.Close()
	if errClose != nil {
		return curated.Errorf(ScribeError, errClose)
	}

	return err
}

// StartPlayback indicates that a replayed script has begun.
func (scr *Scribe) StartPlayback() {
	if !scr.IsActive() {
		return
	}
	_ = scr.Commit()
	scr.playbackDepth++
}

// EndPlayback indicates that a replayed script has finished.
func (scr *Scribe) EndPlayback() {
	if !scr.IsActive() || scr.playbackDepth == 0 {
		return
	}
	_ = scr.Commit()
	scr.playbackDepth--
}

// Rollback undoes calls to WriteInput() and WriteOutput() since the last
// Commit(). Used when a command fails.
func (scr *Scribe) Rollback() {
	scr.inputLine = ""
	scr.outputLine.Reset()
}

// WriteInput writes user-input to the open script file. The previous input
// and any output is committed first.
func (scr *Scribe) WriteInput(command string) {
	if !scr.IsActive() || scr.playbackDepth > 0 {
		return
	}

	_ = scr.Commit()
	if command != "" {
		scr.inputLine = fmt.Sprintf("%s\n", command)
	}
}

// WriteOutput writes emulator output to the open script file. Output is
// written as comment lines.
func (scr *Scribe) WriteOutput(output string) {
	if !scr.IsActive() || scr.playbackDepth > 0 {
		return
	}

	for _, l := range strings.Split(output, "\n") {
		scr.outputLine.WriteString(fmt.Sprintf("%s %s\n", commentLine, l))
	}
}

// Commit most recent calls to WriteInput() and WriteOutput().
func (scr *Scribe) Commit() error {
	if !scr.IsActive() {
		return nil
	}

	defer scr.Rollback()

	for _, s := range []string{scr.inputLine, scr.outputLine.String()} {
		if s == "" {
			continue
		}
		if _, err := io.WriteString(scr.file, s); err != nil {
			return curated.Errorf(ScribeError, err)
		}
	}

	return nil
}
