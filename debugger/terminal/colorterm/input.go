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

package colorterm

import (
	"unicode"

	"github.com/GaryFrazier/rustyNES/curated"
	"github.com/GaryFrazier/rustyNES/debugger/terminal"
	"github.com/GaryFrazier/rustyNES/debugger/terminal/colorterm/easyterm"
	"github.com/GaryFrazier/rustyNES/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface. The terminal is put into
// raw mode for the duration of the read so that the line can be edited.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	if ct.silenced {
		return "", nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	var input []rune
	cursor := 0
	history := len(ct.commandHistory)

	// the latest input is kept when we scroll through history so that the
	// user can return to it
	var buffInput []rune

	p := prompt.String()

	redraw := func() {
		shown, offset := visibleInput(input, cursor, len([]rune(p)), ct.Geometry().Cols)
		ct.TermPrint("\r%s%s%s%s%s", ansi.ClearLine, ansi.PenStyles["bold"], p, ansi.NormalPen, string(shown))
		ct.TermPrint("\r%s", ansi.CursorMove(len([]rune(p))+cursor-offset))
	}

	for {
		redraw()

		// check for signals between key presses
		if events != nil && events.Signal != nil {
			select {
			case sig := <-events.Signal:
				ct.TermPrint("\r\n")
				return "", events.SignalHandler(sig)
			default:
			}
		}

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		if r != easyterm.KeyTab && ct.tabCompletion != nil {
			ct.tabCompletion.Reset()
		}

		switch r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(input[:cursor]))
				input = append([]rune(s), input[cursor:]...)
				cursor = len([]rune(s))
			}

		case easyterm.KeyInterrupt:
			ct.TermPrint("\r\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEOF:
			if len(input) == 0 {
				ct.TermPrint("\r\n")
				return "", curated.Errorf(terminal.UserAbort)
			}

		case easyterm.KeySuspend:
			ct.CanonicalMode()
			_ = easyterm.SuspendProcess()
			ct.RawMode()

		case easyterm.KeyCarriageReturn, '\n':
			s := string(input)
			if s != "" && (len(ct.commandHistory) == 0 || ct.commandHistory[len(ct.commandHistory)-1] != s) {
				ct.commandHistory = append(ct.commandHistory, s)
			}
			ct.TermPrint("\r\n")
			return s, nil

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				break
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ct.commandHistory) {
						buffInput = append(buffInput[:0], input...)
					}
					history--
					input = []rune(ct.commandHistory[history])
					cursor = len(input)
				}
			case easyterm.CursorDown:
				if history < len(ct.commandHistory)-1 {
					history++
					input = []rune(ct.commandHistory[history])
					cursor = len(input)
				} else if history == len(ct.commandHistory)-1 {
					history++
					input = append([]rune{}, buffInput...)
					cursor = len(input)
				}
			case easyterm.CursorForward:
				if cursor < len(input) {
					cursor++
				}
			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}
			case easyterm.CursorHome:
				cursor = 0
			case easyterm.CursorEnd:
				cursor = len(input)
			case easyterm.EscDelete:
				// delete is followed by a tilde
				_, _, _ = ct.reader.ReadRune()
				if cursor < len(input) {
					input = append(input[:cursor], input[cursor+1:]...)
					history = len(ct.commandHistory)
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyCtrlH:
			if cursor > 0 {
				input = append(input[:cursor-1], input[cursor:]...)
				cursor--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input[:cursor], append([]rune{r}, input[cursor:]...)...)
				cursor++
				history = len(ct.commandHistory)
			}
		}
	}
}

// visibleInput returns the part of the input that fits on the terminal line
// after the prompt, scrolled so that the cursor is always visible. The offset
// is the index of the first visible rune. A width of zero means the width of
// the terminal is unknown and all of the input is returned.
func visibleInput(input []rune, cursor int, promptLen int, width int) ([]rune, int) {
	avail := width - promptLen - 1
	if width <= 0 || avail <= 0 || len(input) <= avail {
		return input, 0
	}

	offset := 0
	if cursor > avail {
		offset = cursor - avail
	}

	end := min(offset+avail, len(input))
	return input[offset:end], offset
}
