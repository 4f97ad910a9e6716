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
	"fmt"
	"slices"
	"strings"

	"github.com/GaryFrazier/rustyNES/curated"
)

// Sentinal error patterns returned by the commandline package.
const (
	UnrecognisedCommand = "unrecognised command (%s)"
	ArgumentCount       = "wrong number of arguments for %s (usage: %s)"
	InvalidOption       = "invalid option for %s (%s)"
)

// Unlimited can be used for the MaxArgs field of a Command.
const Unlimited = -1

// Command is the definition of a single command.
type Command struct {
	// the first token of the command. always stored in uppercase
	Keyword string

	// description of the arguments for usage messages. for example: "[address]"
	Usage string

	// the number of arguments allowed
	MinArgs int
	MaxArgs int

	// if Options is not empty then the first argument must be one of the
	// options. options are used for tab completion
	Options []string

	Help string
}

// usage returns the complete usage string for the command.
func (c Command) usage() string {
	if c.Usage == "" {
		return c.Keyword
	}
	return fmt.Sprintf("%s %s", c.Keyword, c.Usage)
}

// Commands is the root of the command definitions.
type Commands struct {
	cmds []Command
}

// NewCommands checks the definitions and creates a new instance of Commands.
// The definitions are sorted by keyword.
func NewCommands(defs []Command) (*Commands, error) {
	cmds := &Commands{}

	for _, c := range defs {
		c.Keyword = strings.ToUpper(strings.TrimSpace(c.Keyword))
		if c.Keyword == "" || strings.ContainsAny(c.Keyword, " \t") {
			return nil, curated.Errorf("commandline: bad keyword (%q)", c.Keyword)
		}

		if _, ok := cmds.Lookup(c.Keyword); ok {
			return nil, curated.Errorf("commandline: duplicate keyword (%s)", c.Keyword)
		}

		if c.MaxArgs != Unlimited && c.MaxArgs < c.MinArgs {
			return nil, curated.Errorf("commandline: bad argument count for %s", c.Keyword)
		}

		cmds.cmds = append(cmds.cmds, c)
	}

	slices.SortFunc(cmds.cmds, func(a, b Command) int {
		return strings.Compare(a.Keyword, b.Keyword)
	})

	return cmds, nil
}

func (cmds Commands) String() string {
	s := strings.Builder{}
	for _, c := range cmds.cmds {
		s.WriteString(c.usage())
		s.WriteString("\n")
	}
	return s.String()
}

// Len returns the number of commands.
func (cmds Commands) Len() int {
	return len(cmds.cmds)
}

// Lookup returns the command for the keyword. The keyword is not case
// sensitive.
func (cmds Commands) Lookup(keyword string) (Command, bool) {
	keyword = strings.ToUpper(keyword)
	for _, c := range cmds.cmds {
		if c.Keyword == keyword {
			return c, true
		}
	}
	return Command{}, false
}

// Keywords returns the list of keywords in alphabetical order.
func (cmds Commands) Keywords() []string {
	k := make([]string, 0, len(cmds.cmds))
	for _, c := range cmds.cmds {
		k = append(k, c.Keyword)
	}
	return k
}

// Validate input string against command definitions.
func (cmds Commands) Validate(input string) error {
	return cmds.ValidateTokens(TokeniseInput(input))
}

// ValidateTokens like Validate, but works on tokens rather than an input
// string. The tokens are reset before the function returns.
func (cmds Commands) ValidateTokens(tokens *Tokens) error {
	defer tokens.Reset()
	tokens.Reset()

	keyword, ok := tokens.Get()
	if !ok {
		return nil
	}

	c, ok := cmds.Lookup(keyword)
	if !ok {
		return curated.Errorf(UnrecognisedCommand, keyword)
	}

	n := tokens.Remaining()
	if n < c.MinArgs || (c.MaxArgs != Unlimited && n > c.MaxArgs) {
		return curated.Errorf(ArgumentCount, c.Keyword, c.usage())
	}

	if len(c.Options) > 0 && n > 0 {
		opt, _ := tokens.Peek()
		if !slices.ContainsFunc(c.Options, func(o string) bool {
			return strings.EqualFold(o, opt)
		}) {
			return curated.Errorf(InvalidOption, c.Keyword, opt)
		}
	}

	return nil
}

// HelpOverview returns a list of all the keywords, arranged in columns.
func (cmds Commands) HelpOverview() string {
	width := 0
	for _, c := range cmds.cmds {
		width = max(width, len(c.Keyword))
	}

	const columns = 6

	s := strings.Builder{}
	for i, c := range cmds.cmds {
		if i > 0 && i%columns == 0 {
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("%-*s ", width, c.Keyword))
	}

	return strings.TrimRight(s.String(), " ")
}

// Help returns the usage and the help text for the keyword.
func (cmds Commands) Help(keyword string) string {
	c, ok := cmds.Lookup(keyword)
	if !ok {
		return fmt.Sprintf("no help for %s", strings.ToUpper(keyword))
	}

	s := fmt.Sprintf("usage: %s", c.usage())
	if len(c.Options) > 0 {
		s = fmt.Sprintf("%s\noptions: %s", s, strings.Join(c.Options, "|"))
	}
	if c.Help != "" {
		s = fmt.Sprintf("%s\n\n%s", s, c.Help)
	}
	return s
}
