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

func TestDecodeImmediateOperand(t *testing.T) {
	// bit 25 set; rotate field of 1 means a rotation by 2
	op := alu.DecodeOperand(0x020001ff)
	imm, ok := op.(alu.ImmediateOperand)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, imm.Base, 0xff)
	test.Equate(t, imm.Shift, 2)

	// 0xff rotated right by 2
	test.Equate(t, op.String(), "#3221225535")
}

func TestDecodeRegisterOperand(t *testing.T) {
	// R5, no shift: renders as the bare register
	op := alu.DecodeOperand(0x00000005)
	reg, ok := op.(alu.RegisterOperand)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, reg.Register, 5)
	test.Equate(t, reg.Kind == alu.LogicalLeft, true)
	test.Equate(t, op.String(), "R5")

	// R1, LSL #4
	op = alu.DecodeOperand(0x00000201)
	test.Equate(t, op.String(), "R1, LSL #4")

	// shift amount supplied by register R3
	op = alu.DecodeOperand(0x00000352)
	reg, ok = op.(alu.RegisterOperand)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, reg.Kind == alu.ArithmeticRight, true)
	test.Equate(t, op.String(), "R2, ASR R3")
}

func TestZeroShiftRendering(t *testing.T) {
	// a zero immediate shift means different things for each shift kind and
	// the rendering must say so
	test.Equate(t, alu.DecodeOperand(0x00000005).String(), "R5")  // LSL
	test.Equate(t, alu.DecodeOperand(0x00000025).String(), "R5, LSR #32")
	test.Equate(t, alu.DecodeOperand(0x00000045).String(), "R5, ASR #32")
	test.Equate(t, alu.DecodeOperand(0x00000065).String(), "R5, RRX") // ROR
}

func TestDecodeOperandIdempotent(t *testing.T) {
	for _, word := range []uint32{0x020001ff, 0x00000005, 0x00000352, 0xe328f4ff} {
		a := alu.DecodeOperand(word)
		b := alu.DecodeOperand(word)
		test.Equate(t, a == b, true)
		test.Equate(t, a.String(), b.String())
	}
}
