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

package registers_test

import (
	"testing"

	"github.com/GaryFrazier/rustyNES/hardware/cpu/registers"
	"github.com/GaryFrazier/rustyNES/test"
)

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), 0)

	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), 2)

	pc.Load(0xfffe)
	test.ExpectSuccess(t, pc.Add(3))
	test.ExpectEquality(t, pc.Address(), 1)
	test.ExpectEquality(t, pc.String(), "0x0001")
}

func TestProgramCounterSigned(t *testing.T) {
	pc := registers.NewProgramCounter(0xc010)

	// forwards on same page
	test.ExpectFailure(t, pc.AddSigned(0x10))
	test.ExpectEquality(t, pc.Address(), 0xc020)

	// backwards on same page
	test.ExpectFailure(t, pc.AddSigned(0xf0))
	test.ExpectEquality(t, pc.Address(), 0xc010)

	// backwards onto previous page
	test.ExpectSuccess(t, pc.AddSigned(0xe0))
	test.ExpectEquality(t, pc.Address(), 0xbff0)

	// forwards onto next page
	test.ExpectSuccess(t, pc.AddSigned(0x20))
	test.ExpectEquality(t, pc.Address(), 0xc010)
}
