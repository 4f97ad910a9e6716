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

package govern_test

import (
	"testing"

	"github.com/GaryFrazier/rustyNES/debugger/govern"
	"github.com/GaryFrazier/rustyNES/test"
)

func TestState(t *testing.T) {
	test.ExpectEquality(t, govern.Running.String(), "Running")
	test.ExpectFailure(t, govern.Running.Halted())
	test.ExpectFailure(t, govern.Paused.Halted())
	test.ExpectSuccess(t, govern.Ending.Halted())
	test.ExpectSuccess(t, govern.Initialising.Halted())
}
