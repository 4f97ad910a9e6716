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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values
// in the same way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Packages declare their
// sentinel patterns as exported constants and test for them with Is() and
// Has():
//
//	const UnsupportedMapper = "cartridge: unsupported mapper (%d)"
//
//	err := curated.Errorf(UnsupportedMapper, 4)
//	if curated.Is(err, UnsupportedMapper) {
//		...
//	}
//
// Is() checks only the outermost error. Has() searches the whole chain,
// following curated values and any error that implements Unwrap().
//
// The Error() implementation normalises the message so that the chain does
// not contain duplicate adjacent parts. Chains are thought of as parts
// separated by the sub-string ': '. Wrapping an error with the same prefix
// at each level of a call stack therefore produces:
//
//	error: not yet implemented
//
// and not:
//
//	error: error: not yet implemented
package curated
