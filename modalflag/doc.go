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

// Package modalflag wraps the flag package of the standard library and adds
// program modes. A mode is a command line argument that selects a different
// set of flags and arguments, in the way the go command has build, test, etc.
//
// Arguments are given with NewArgs() and then Parse() is called with no
// arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG", "DISASM")
//	r, err := md.Parse()
//
// The first sub-mode is the default and is selected when the first non-flag
// argument is not a sub-mode. Comparisons with sub-modes are not case
// sensitive. The selected mode is returned by Mode() and the modes found by
// every call to Parse() are returned by Path().
//
// A new set of flags is started with NewMode(). Flags are added in the same
// way as the flag package:
//
//	md.NewMode()
//	trace := md.AddBool("trace", false, "print every CPU instruction")
//	_, _ = md.Parse()
//
// Arguments that are not flags or sub-modes are returned by RemainingArgs()
// and GetArg(). Help requested with -help or -h is printed to the Output
// field and Parse() returns ParseHelp.
package modalflag
