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

package alu

import "fmt"

// Operation identifies one of the sixteen data-processing instructions. The
// numeric value of an Operation is the value of the 4-bit opcode field in the
// instruction word (bits 21 to 24).
type Operation int

// List of valid Operation values.
const (
	AND Operation = iota // 0x0
	EOR
	SUB
	RSB
	ADD
	ADC
	SBC
	RSC
	TST
	TEQ
	CMP
	CMN
	ORR
	MOV
	BIC
	MVN // 0xf
)

func (op Operation) String() string {
	switch op {
	case AND:
		return "AND"
	case EOR:
		return "EOR"
	case SUB:
		return "SUB"
	case RSB:
		return "RSB"
	case ADD:
		return "ADD"
	case ADC:
		return "ADC"
	case SBC:
		return "SBC"
	case RSC:
		return "RSC"
	case TST:
		return "TST"
	case TEQ:
		return "TEQ"
	case CMP:
		return "CMP"
	case CMN:
		return "CMN"
	case ORR:
		return "ORR"
	case MOV:
		return "MOV"
	case BIC:
		return "BIC"
	case MVN:
		return "MVN"
	}

	panic(fmt.Sprintf("alu: not a valid operation (%d)", int(op)))
}

// Decode returns the Operation encoded by the opcode field of a
// data-processing instruction.
//
// The opcode field is exactly four bits wide so a value greater than 0xf can
// only mean that the caller's field extraction is faulty. Decode panics in
// that case rather than silently settling on a default operation.
func Decode(opcode uint32) Operation {
	if opcode > 0xf {
		panic(fmt.Sprintf("alu: opcode field out of range (%#02x)", opcode))
	}
	return Operation(opcode)
}

// Family is the coarse classification of an Operation. The execution stage
// uses it to decide which status flags an operation updates: logical
// operations touch only N and Z, arithmetic operations also touch C and V.
type Family int

// List of valid Family values.
const (
	Logical Family = iota
	Arithmetic
)

func (f Family) String() string {
	switch f {
	case Logical:
		return "logical"
	case Arithmetic:
		return "arithmetic"
	}

	panic(fmt.Sprintf("alu: not a valid family (%d)", int(f)))
}

// Family returns the classification of the operation.
func (op Operation) Family() Family {
	switch op {
	case AND, EOR, TST, TEQ, ORR, MOV, BIC, MVN:
		return Logical
	case SUB, RSB, ADD, ADC, SBC, RSC, CMP, CMN:
		return Arithmetic
	}

	panic(fmt.Sprintf("alu: not a valid operation (%d)", int(op)))
}
