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

package execution_test

import (
	"testing"

	"github.com/GaryFrazier/rustyNES/hardware/cpu/execution"
	"github.com/GaryFrazier/rustyNES/hardware/cpu/instructions"
	"github.com/GaryFrazier/rustyNES/test"
)

func TestValidity(t *testing.T) {
	var r execution.Result
	test.ExpectFailure(t, r.IsValid())

	// LDA abs,X
	r = execution.Result{
		Defn:      instructions.Lookup(0xbd),
		ByteCount: 3,
		Cycles:    4,
		Final:     true,
	}
	test.ExpectSuccess(t, r.IsValid())

	r.PageFault = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 5
	test.ExpectSuccess(t, r.IsValid())

	// STA abs,X is not page sensitive
	r = execution.Result{
		Defn:      instructions.Lookup(0x9d),
		ByteCount: 3,
		Cycles:    5,
		PageFault: true,
		Final:     true,
	}
	test.ExpectFailure(t, r.IsValid())

	// wrong byte count
	r.PageFault = false
	r.ByteCount = 2
	test.ExpectFailure(t, r.IsValid())
}

func TestBranchValidity(t *testing.T) {
	// BNE
	r := execution.Result{
		Defn:      instructions.Lookup(0xd0),
		ByteCount: 2,
		Cycles:    2,
		Final:     true,
	}
	test.ExpectSuccess(t, r.IsValid())

	r.Cycles = 3
	test.ExpectFailure(t, r.IsValid())

	r.BranchSuccess = true
	test.ExpectSuccess(t, r.IsValid())

	r.Cycles = 4
	test.ExpectSuccess(t, r.IsValid())

	r.Cycles = 5
	test.ExpectFailure(t, r.IsValid())
}

func TestInterruptValidity(t *testing.T) {
	r := execution.Result{Interrupt: true, Cycles: 7, Final: true}
	test.ExpectSuccess(t, r.IsValid())
	r.Cycles = 6
	test.ExpectFailure(t, r.IsValid())
}
