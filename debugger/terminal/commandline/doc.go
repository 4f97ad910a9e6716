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

// Package commandline facilitates parsing of command line input. Given a list
// of command definitions, it can be used to tokenise and validate user input.
// It also functions as a tab-completion engine, implementing the
// terminal.TabCompletion interface.
//
// The Commands type is the base product of the package. To create an instance
// of Commands, use NewCommands() with a suitable list of definitions:
//
//	cmds, _ := NewCommands([]Command{
//		{Keyword: "LIST"},
//		{Keyword: "PRINT", Usage: "[text]", MaxArgs: 1},
//		{Keyword: "SORT", Options: []string{"RISING", "FALLING"}, MinArgs: 1, MaxArgs: 1},
//	})
//
// Once created, the Commands instance can be used to validate input.
//
//	toks := TokeniseInput("list")
//	err := cmds.ValidateTokens(toks)
//
// Note that all validation is case-insensitive. Once validated the tokens can
// be processed and acted upon. The Get() function of the Tokens type can be
// used to retrieve the next token in line.
//
// The TabCompletion type is used to transform input such that it more closely
// resembles a valid command. The NewTabCompletion() function expects an
// instance of Commands.
//
//	tbc := NewTabCompletion(cmds)
//	inp := tbc.Complete("LIS")
//
// In this instance the value of inp will be "LIST " (note the trailing space).
// Given a number of options to use for the completion, the first option will
// be returned first followed by the second, third, etc. on subsequent calls to
// Complete(). A tab completion session can be terminated with a call to
// Reset().
package commandline
