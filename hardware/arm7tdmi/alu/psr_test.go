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

func TestDecodeMRS(t *testing.T) {
	// MRS R3, CPSR
	op, ok := alu.DecodePSRTransfer(0xe10f3000)
	test.ExpectedSuccess(t, ok)
	mrs, ok := op.(alu.MRS)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, mrs.Destination, 3)
}

func TestDecodeMSR(t *testing.T) {
	// MSR CPSR, R9
	op, ok := alu.DecodePSRTransfer(0xe129f009)
	test.ExpectedSuccess(t, ok)
	msr, ok := op.(alu.MSR)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, msr.Source, 9)
}

func TestDecodeMSRFlags(t *testing.T) {
	// MSR CPSR_flg, R5
	op, ok := alu.DecodePSRTransfer(0xe128f005)
	test.ExpectedSuccess(t, ok)
	msr, ok := op.(alu.MSRFlags)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, msr.Operand.String(), "R5")

	// MSR CPSR_flg, #0xff000000 (0xff rotated right by 8)
	op, ok = alu.DecodePSRTransfer(0xe328f4ff)
	test.ExpectedSuccess(t, ok)
	msr, ok = op.(alu.MSRFlags)
	test.ExpectedSuccess(t, ok)
	imm, ok := msr.Operand.(alu.ImmediateOperand)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, imm.Base, 0xff)
	test.Equate(t, imm.Shift, 8)
	test.Equate(t, imm.String(), "#4278190080")
}

func TestDecodeNotPSR(t *testing.T) {
	// TEQ R1, R2 occupies the same opcode range as MSR but has the S bit set
	_, ok := alu.DecodePSRTransfer(0xe1310002)
	test.ExpectedFailure(t, ok)

	// ADD R0, R0, R0
	_, ok = alu.DecodePSRTransfer(0xe0800000)
	test.ExpectedFailure(t, ok)
}

func TestPSRSelector(t *testing.T) {
	test.Equate(t, alu.SelectPSR(false).String(), "CPSR")
	test.Equate(t, alu.SelectPSR(true).String(), "SPSR")
}
