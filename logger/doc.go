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

// Package logger is the central log repository for rustyNES. There is a
// single central logger accessed through the package level functions Log()
// and Logf(). Additional, private, loggers can be created with NewLogger().
//
// Log entries are made up of a tag and a detail string. The tag is usually the
// name of the emulated component that made the entry. For example:
//
//	logger.Logf(logger.Allow, "CPU", "KIL instruction (%#04x)", pc)
//
// Repeated entries are folded into a single entry with a repeat count.
//
// The Permission interface controls whether an entry will be made. The
// logger.Allow value can be used when logging should always happen. Other
// implementations can decide based on context. The disassembler for example,
// runs the CPU in a special mode and does not want the log to be filled with
// entries that would not happen during normal emulation.
//
// The central logger can be echoed to an io.Writer with SetEcho().
package logger
