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

package disassembly_test

import (
	"testing"

	"github.com/gopheradvance/gopheradvance/disassembly"
	"github.com/gopheradvance/gopheradvance/test"
)

func TestDecodeDataProcessing(t *testing.T) {
	// ADD R0, R1, R2
	e := disassembly.Decode(0x08000000, 0xe0810002)
	test.Equate(t, e.Operator, "ADD")
	test.Equate(t, e.Operand, "R0, R1, R2")

	// ADDS R0, R1, R2
	e = disassembly.Decode(0x08000000, 0xe0910002)
	test.Equate(t, e.Operator, "ADDS")
	test.Equate(t, e.Operand, "R0, R1, R2")

	// MOV R0, #0 names no first operand register
	e = disassembly.Decode(0x08000000, 0xe3a00000)
	test.Equate(t, e.Operator, "MOV")
	test.Equate(t, e.Operand, "R0, #0")

	// CMP R1, R2 names no destination register
	e = disassembly.Decode(0x08000000, 0xe1510002)
	test.Equate(t, e.Operator, "CMP")
	test.Equate(t, e.Operand, "R1, R2")

	// MOV R0, R1, LSL #2
	e = disassembly.Decode(0x08000000, 0xe1a00101)
	test.Equate(t, e.Operator, "MOV")
	test.Equate(t, e.Operand, "R0, R1, LSL #2")
}

func TestDecodePSRTransfer(t *testing.T) {
	// MRS R3, CPSR
	e := disassembly.Decode(0x08000000, 0xe10f3000)
	test.Equate(t, e.Operator, "MRS")
	test.Equate(t, e.Operand, "R3, CPSR")

	// MRS R3, SPSR
	e = disassembly.Decode(0x08000000, 0xe14f3000)
	test.Equate(t, e.Operator, "MRS")
	test.Equate(t, e.Operand, "R3, SPSR")

	// MSR CPSR, R9
	e = disassembly.Decode(0x08000000, 0xe129f009)
	test.Equate(t, e.Operator, "MSR")
	test.Equate(t, e.Operand, "CPSR, R9")

	// MSR CPSR_flg, R5
	e = disassembly.Decode(0x08000000, 0xe128f005)
	test.Equate(t, e.Operator, "MSR")
	test.Equate(t, e.Operand, "CPSR_flg, R5")
}

func TestDecodeOtherGroups(t *testing.T) {
	// LDR R0, [R1] belongs to another instruction group
	e := disassembly.Decode(0x08000000, 0xe5910000)
	test.Equate(t, e.Operator, ".word")
	test.Equate(t, e.Operand, "0xe5910000")
}

func TestFromWords(t *testing.T) {
	dsm := disassembly.FromWords(0x08000000, []uint32{0xe0810002, 0xe1a00101})
	test.Equate(t, len(dsm.Entries), 2)
	test.Equate(t, dsm.Entries[0].Address, 0x08000000)
	test.Equate(t, dsm.Entries[1].Address, 0x08000004)

	tw := &test.CompareWriter{}
	err := dsm.Write(tw)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, tw.Compare(
		"08000000  e0810002  ADD  R0, R1, R2\n"+
			"08000004  e1a00101  MOV  R0, R1, LSL #2\n"))
}

func TestParseWord(t *testing.T) {
	w, err := disassembly.ParseWord("0xe0810002")
	test.ExpectedSuccess(t, err)
	test.Equate(t, w, 0xe0810002)

	w, err = disassembly.ParseWord("E0810002")
	test.ExpectedSuccess(t, err)
	test.Equate(t, w, 0xe0810002)

	_, err = disassembly.ParseWord("not a word")
	test.ExpectedFailure(t, err)
}
