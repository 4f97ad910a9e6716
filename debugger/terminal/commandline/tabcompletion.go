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

package commandline

import (
	"strings"
)

// TabCompletion should be initialised once with the instance of Commands it
// is to work with.
type TabCompletion struct {
	cmds *Commands

	// the matches for the current completion session and the index of the
	// most recent match returned by Complete()
	matches []string
	match   int

	// the part of the input before the token being completed
	prefix string

	// the most recent completion. if the input to Complete() is the same as
	// this then the next match is returned
	lastCompletion string
}

// NewTabCompletion initialises a new TabCompletion instance.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	return &TabCompletion{cmds: cmds}
}

// Complete transforms the input such that the last word in the input is
// expanded to meet the closest match. The keyword is completed from the list
// of commands and the first argument is completed from the options of the
// command.
//
// Subsequent calls with the result of the previous call cycle through the
// other matches.
func (tc *TabCompletion) Complete(input string) string {
	if len(tc.matches) > 0 && input == tc.lastCompletion {
		tc.match = (tc.match + 1) % len(tc.matches)
		tc.lastCompletion = tc.prefix + tc.matches[tc.match] + " "
		return tc.lastCompletion
	}

	tc.Reset()

	tokens := tokeniseInput(input)
	trailing := strings.HasSuffix(input, " ")

	var candidates []string
	var partial string

	switch {
	case len(tokens) == 1 && !trailing:
		candidates = tc.cmds.Keywords()
		partial = tokens[0]
	case len(tokens) == 1 && trailing, len(tokens) == 2 && !trailing:
		c, ok := tc.cmds.Lookup(tokens[0])
		if !ok {
			return input
		}
		candidates = c.Options
		if len(tokens) == 2 {
			partial = tokens[1]
		}
		tc.prefix = c.Keyword + " "
	default:
		return input
	}

	partial = strings.ToUpper(partial)
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToUpper(c), partial) {
			tc.matches = append(tc.matches, c)
		}
	}

	if len(tc.matches) == 0 {
		tc.prefix = ""
		return input
	}

	tc.lastCompletion = tc.prefix + tc.matches[0] + " "
	return tc.lastCompletion
}

// Reset is used to clear an outstanding completion session.
func (tc *TabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.match = 0
	tc.prefix = ""
	tc.lastCompletion = ""
}
