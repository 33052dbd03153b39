// This file is part of GopherAdvance.
//
// GopherAdvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAdvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAdvance.  If not, see <https://www.gnu.org/licenses/>.

package alu_test

import (
	"testing"

	"github.com/gopheradvance/gopheradvance/hardware/arm7tdmi/alu"
	"github.com/gopheradvance/gopheradvance/test"
)

func TestShiftLogicalLeft(t *testing.T) {
	// LSL#0 is a true no-op. the carry flag passes through whatever its value
	r := alu.Shift(alu.LogicalLeft, 0, 0xdeadbeef, false)
	test.Equate(t, r.Result, 0xdeadbeef)
	test.Equate(t, r.Carry, false)

	r = alu.Shift(alu.LogicalLeft, 0, 0xdeadbeef, true)
	test.Equate(t, r.Result, 0xdeadbeef)
	test.Equate(t, r.Carry, true)

	// carry out is the last bit shifted off the top
	r = alu.Shift(alu.LogicalLeft, 1, 0x80000000, false)
	test.Equate(t, r.Result, 0)
	test.Equate(t, r.Carry, true)

	r = alu.Shift(alu.LogicalLeft, 4, 0x0f000000, false)
	test.Equate(t, r.Result, 0xf0000000)
	test.Equate(t, r.Carry, false)

	r = alu.Shift(alu.LogicalLeft, 31, 0x00000003, false)
	test.Equate(t, r.Result, 0x80000000)
	test.Equate(t, r.Carry, true)

	// LSL#32 must not wrap around to LSL#0. carry out is bit 0 of the value
	r = alu.Shift(alu.LogicalLeft, 32, 0x00000001, false)
	test.Equate(t, r.Result, 0)
	test.Equate(t, r.Carry, true)

	r = alu.Shift(alu.LogicalLeft, 32, 0xfffffffe, true)
	test.Equate(t, r.Result, 0)
	test.Equate(t, r.Carry, false)

	// beyond 32 both result and carry are zero
	r = alu.Shift(alu.LogicalLeft, 33, 0xffffffff, true)
	test.Equate(t, r.Result, 0)
	test.Equate(t, r.Carry, false)

	r = alu.Shift(alu.LogicalLeft, 40, 0xffffffff, true)
	test.Equate(t, r.Result, 0)
	test.Equate(t, r.Carry, false)
}

func TestShiftLogicalRight(t *testing.T) {
	// LSR#0 is the encoding for LSR#32, not a no-op
	r := alu.Shift(alu.LogicalRight, 0, 0x80000001, false)
	test.Equate(t, r.Result, 0)
	test.Equate(t, r.Carry, true)

	r = alu.Shift(alu.LogicalRight, 0, 0x7fffffff, true)
	test.Equate(t, r.Result, 0)
	test.Equate(t, r.Carry, false)

	r = alu.Shift(alu.LogicalRight, 1, 0x00000003, false)
	test.Equate(t, r.Result, 0x00000001)
	test.Equate(t, r.Carry, true)

	r = alu.Shift(alu.LogicalRight, 31, 0x80000000, false)
	test.Equate(t, r.Result, 0x00000001)
	test.Equate(t, r.Carry, false)

	// explicit LSR#32 behaves the same as the LSR#0 encoding
	r = alu.Shift(alu.LogicalRight, 32, 0x80000000, false)
	test.Equate(t, r.Result, 0)
	test.Equate(t, r.Carry, true)

	r = alu.Shift(alu.LogicalRight, 33, 0xffffffff, true)
	test.Equate(t, r.Result, 0)
	test.Equate(t, r.Carry, false)

	r = alu.Shift(alu.LogicalRight, 40, 0xffffffff, true)
	test.Equate(t, r.Result, 0)
	test.Equate(t, r.Carry, false)
}

func TestShiftArithmeticRight(t *testing.T) {
	r := alu.Shift(alu.ArithmeticRight, 1, 0x80000000, false)
	test.Equate(t, r.Result, 0xc0000000)
	test.Equate(t, r.Carry, false)

	r = alu.Shift(alu.ArithmeticRight, 4, 0x8000001f, false)
	test.Equate(t, r.Result, 0xf8000001)
	test.Equate(t, r.Carry, true)

	r = alu.Shift(alu.ArithmeticRight, 31, 0xc0000000, false)
	test.Equate(t, r.Result, 0xffffffff)
	test.Equate(t, r.Carry, true)

	// ASR#0 encodes ASR#32: every bit of the result is a copy of the sign
	// bit, as is the carry
	r = alu.Shift(alu.ArithmeticRight, 0, 0x80000000, false)
	test.Equate(t, r.Result, 0xffffffff)
	test.Equate(t, r.Carry, true)

	r = alu.Shift(alu.ArithmeticRight, 0, 0x40000000, true)
	test.Equate(t, r.Result, 0)
	test.Equate(t, r.Carry, false)

	r = alu.Shift(alu.ArithmeticRight, 32, 0x80000000, false)
	test.Equate(t, r.Result, 0xffffffff)
	test.Equate(t, r.Carry, true)

	r = alu.Shift(alu.ArithmeticRight, 40, 0x7fffffff, true)
	test.Equate(t, r.Result, 0)
	test.Equate(t, r.Carry, false)
}

func TestShiftRotateRight(t *testing.T) {
	// ROR#0 encodes RRX: a one bit rotate through the carry flag
	r := alu.Shift(alu.RotateRight, 0, 0x00000001, false)
	test.Equate(t, r.Result, 0)
	test.Equate(t, r.Carry, true)

	r = alu.Shift(alu.RotateRight, 0, 0x00000001, true)
	test.Equate(t, r.Result, 0x80000000)
	test.Equate(t, r.Carry, true)

	r = alu.Shift(alu.RotateRight, 0, 0x00000002, true)
	test.Equate(t, r.Result, 0x80000001)
	test.Equate(t, r.Carry, false)

	r = alu.Shift(alu.RotateRight, 4, 0x0000000f, false)
	test.Equate(t, r.Result, 0xf0000000)
	test.Equate(t, r.Carry, true)

	r = alu.Shift(alu.RotateRight, 31, 0x80000000, false)
	test.Equate(t, r.Result, 0x00000001)
	test.Equate(t, r.Carry, false)

	// ROR#32 leaves the value unchanged and copies bit 31 into the carry
	r = alu.Shift(alu.RotateRight, 32, 0xdeadbeef, false)
	test.Equate(t, r.Result, 0xdeadbeef)
	test.Equate(t, r.Carry, true)

	// amounts over 32 reduce modulo 32, except that a multiple of 32 is
	// ROR#32 and never RRX
	r = alu.Shift(alu.RotateRight, 33, 0x00000003, false)
	test.Equate(t, r.Result, 0x80000001)
	test.Equate(t, r.Carry, true)

	r = alu.Shift(alu.RotateRight, 64, 0xdeadbeef, false)
	test.Equate(t, r.Result, 0xdeadbeef)
	test.Equate(t, r.Carry, true)

	r = alu.Shift(alu.RotateRight, 40, 0x0000ff00, false)
	test.Equate(t, r.Result, 0x000000ff)
	test.Equate(t, r.Carry, false)
}

func TestShiftFlagsDefault(t *testing.T) {
	// a raw shift never populates the overflow, sign and zero fields. they
	// are computed later by the execution stage
	r := alu.Shift(alu.LogicalLeft, 1, 0xffffffff, true)
	test.Equate(t, r.Overflow, false)
	test.Equate(t, r.Sign, false)
	test.Equate(t, r.Zero, false)
}
