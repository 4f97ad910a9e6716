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

// Package prefs facilitates the storage of preferences on disk. Preference
// values are typed (Bool, Int and String) and are associated with a key by
// adding them to a Disk instance:
//
//	var randomState prefs.Bool
//
//	dsk, _ := prefs.NewDisk("preferences")
//	dsk.Add("cpu.randomstate", &randomState)
//	dsk.Load()
//
// Values can also be specified on the command line. The string given to
// PushCommandLineStack() is of the form "key::value; key::value". Values on
// the top of the command line stack take precedence over values on disk when
// Disk.Load() is called. A command line value is used once only.
package prefs
