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

func TestRegister(t *testing.T) {
	var carry, overflow bool

	r8 := registers.NewRegister(0, "test")
	test.ExpectSuccess(t, r8.IsZero())
	test.ExpectEquality(t, r8.Value(), 0)
	test.ExpectEquality(t, r8.Label(), "test")

	// loading & addition
	r8.Load(127)
	test.ExpectEquality(t, r8.Value(), 127)
	carry, overflow = r8.Add(2, false)
	test.ExpectEquality(t, r8.Value(), 129)
	test.ExpectFailure(t, carry)
	test.ExpectSuccess(t, overflow)

	// addition boundary
	r8.Load(255)
	test.ExpectSuccess(t, r8.IsNegative())
	carry, overflow = r8.Add(1, false)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectSuccess(t, r8.IsZero())

	// addition boundary with carry
	r8.Load(254)
	carry, overflow = r8.Add(1, true)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectSuccess(t, r8.IsZero())

	r8.Load(255)
	carry, overflow = r8.Add(1, true)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectEquality(t, r8.Value(), 1)

	// adding 0xff with carry leaves the value unchanged but carries
	r8.Load(0x10)
	carry, _ = r8.Add(0xff, true)
	test.ExpectSuccess(t, carry)
	test.ExpectEquality(t, r8.Value(), 0x10)

	// subtraction
	r8.Load(11)
	r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 10)

	r8.Load(12)
	r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), 10)

	r8.Load(0x01)
	r8.Subtract(0x06, false)
	test.ExpectEquality(t, r8.Value(), 0xfa)

	// subtract on boundary
	r8.Load(0)
	carry, _ = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 255)
	test.ExpectFailure(t, carry)
	r8.Load(1)
	r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), 255)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.ExpectEquality(t, r8.Value(), 0x01)
	r8.EOR(0xff)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	r8.ORA(0x01)
	test.ExpectEquality(t, r8.Value(), 0xff)

	// shifts
	carry = r8.ASL()
	test.ExpectEquality(t, r8.Value(), 0xfe)
	test.ExpectSuccess(t, carry)
	carry = r8.LSR()
	test.ExpectEquality(t, r8.Value(), 0x7f)
	test.ExpectFailure(t, carry)
	carry = r8.LSR()
	test.ExpectSuccess(t, carry)

	// rotation
	r8.Load(0xff)
	carry = r8.ROL(false)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	test.ExpectSuccess(t, carry)
	carry = r8.ROR(true)
	test.ExpectEquality(t, r8.Value(), 0xff)
	test.ExpectFailure(t, carry)
}

func TestAddOverflow(t *testing.T) {
	type grid struct {
		a, m     uint8
		carryIn  bool
		result   uint8
		carry    bool
		overflow bool
	}

	for i, g := range []grid{
		{a: 0x50, m: 0x10, result: 0x60},
		{a: 0x50, m: 0x50, result: 0xa0, overflow: true},
		{a: 0x50, m: 0x90, result: 0xe0},
		{a: 0x50, m: 0xd0, result: 0x20, carry: true},
		{a: 0xd0, m: 0x10, result: 0xe0},
		{a: 0xd0, m: 0x50, result: 0x20, carry: true},
		{a: 0xd0, m: 0x90, result: 0x60, carry: true, overflow: true},
		{a: 0xd0, m: 0xd0, result: 0xa0, carry: true},
		{a: 0x7f, m: 0x00, carryIn: true, result: 0x80, overflow: true},
	} {
		r := registers.NewRegister(g.a, "A")
		carry, overflow := r.Add(g.m, g.carryIn)
		test.ExpectEquality(t, r.Value(), g.result, i)
		test.ExpectEquality(t, carry, g.carry, i)
		test.ExpectEquality(t, overflow, g.overflow, i)
	}
}

func TestSubtractOverflow(t *testing.T) {
	type grid struct {
		a, m     uint8
		result   uint8
		carry    bool
		overflow bool
	}

	// carry in is always set, meaning no borrow
	for i, g := range []grid{
		{a: 0x50, m: 0xf0, result: 0x60},
		{a: 0x50, m: 0xb0, result: 0xa0, overflow: true},
		{a: 0x50, m: 0x70, result: 0xe0},
		{a: 0x50, m: 0x30, result: 0x20, carry: true},
		{a: 0xd0, m: 0xf0, result: 0xe0},
		{a: 0xd0, m: 0xb0, result: 0x20, carry: true},
		{a: 0xd0, m: 0x70, result: 0x60, carry: true, overflow: true},
		{a: 0xd0, m: 0x30, result: 0xa0, carry: true},
	} {
		r := registers.NewRegister(g.a, "A")
		carry, overflow := r.Subtract(g.m, true)
		test.ExpectEquality(t, r.Value(), g.result, i)
		test.ExpectEquality(t, carry, g.carry, i)
		test.ExpectEquality(t, overflow, g.overflow, i)
	}
}
