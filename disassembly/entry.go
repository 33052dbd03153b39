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

package disassembly

import (
	"fmt"

	"github.com/gopheradvance/gopheradvance/hardware/arm7tdmi/alu"
)

// Entry is a single line in a disassembly.
type Entry struct {
	Address  uint32 `json:"address"`
	Word     uint32 `json:"word"`
	Operator string `json:"operator"`
	Operand  string `json:"operand"`
}

func (e Entry) String() string {
	return fmt.Sprintf("%08x  %08x  %-4s %s", e.Address, e.Word, e.Operator, e.Operand)
}

// Decode a single instruction word. The word is checked against the PSR
// transfer shapes before being treated as a data-processing instruction.
func Decode(address uint32, word uint32) Entry {
	e := Entry{Address: address, Word: word}

	if psr, ok := alu.DecodePSRTransfer(word); ok {
		// bit 22 selects between CPSR and SPSR for all three shapes
		reg := alu.SelectPSR(word&0x00400000 == 0x00400000)

		switch psr := psr.(type) {
		case alu.MRS:
			e.Operator = "MRS"
			e.Operand = fmt.Sprintf("R%d, %s", psr.Destination, reg)
		case alu.MSR:
			e.Operator = "MSR"
			e.Operand = fmt.Sprintf("%s, R%d", reg, psr.Source)
		case alu.MSRFlags:
			e.Operator = "MSR"
			e.Operand = fmt.Sprintf("%s_flg, %s", reg, psr.Operand)
		}

		return e
	}

	// data-processing instructions have zeroes in bits 26 and 27. anything
	// else is some other instruction group and is listed as a raw word
	if word&0x0c000000 != 0x00000000 {
		e.Operator = ".word"
		e.Operand = fmt.Sprintf("%#08x", word)
		return e
	}

	op := alu.Decode(word >> 21 & 0xf)
	op2 := alu.DecodeOperand(word)
	setFlags := word&0x00100000 == 0x00100000

	rn := word >> 16 & 0xf
	rd := word >> 12 & 0xf

	e.Operator = op.String()

	switch op {
	case alu.MOV, alu.MVN:
		// single operand moves name no first operand register
		if setFlags {
			e.Operator += "S"
		}
		e.Operand = fmt.Sprintf("R%d, %s", rd, op2)
	case alu.TST, alu.TEQ, alu.CMP, alu.CMN:
		// comparisons always set flags and name no destination
		e.Operand = fmt.Sprintf("R%d, %s", rn, op2)
	default:
		if setFlags {
			e.Operator += "S"
		}
		e.Operand = fmt.Sprintf("R%d, R%d, %s", rd, rn, op2)
	}

	return e
}
