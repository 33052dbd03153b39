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

import (
	"fmt"
	"math/bits"
)

// ShiftOperator is the source of a shift amount: either a 5-bit constant
// taken from the instruction word or a register whose bottom byte supplies
// the amount at execution time.
//
// The set of operators is closed by the instruction encoding. ShiftAmount
// and ShiftRegister are the only implementations.
type ShiftOperator interface {
	fmt.Stringer

	shiftOperator()
}

// ShiftAmount is the immediate form of ShiftOperator.
type ShiftAmount uint32

func (s ShiftAmount) shiftOperator() {}

func (s ShiftAmount) String() string {
	return fmt.Sprintf("#%d", uint32(s))
}

// ShiftRegister is the register form of ShiftOperator. The register is named
// at decode time and read at execution time.
type ShiftRegister uint32

func (s ShiftRegister) shiftOperator() {}

func (s ShiftRegister) String() string {
	return fmt.Sprintf("R%d", uint32(s))
}

// Operand describes the second operand of a data-processing instruction.
// RegisterOperand and ImmediateOperand are the only implementations.
//
// An Operand is immutable once decoded. A RegisterOperand is a description
// only; it is resolved into a Shift() call by the execution stage once the
// named registers can be read.
type Operand interface {
	fmt.Stringer

	operand()
}

// RegisterOperand is the register form of the second operand: a register
// put through the barrel shifter before use.
type RegisterOperand struct {
	ShiftOp  ShiftOperator
	Kind     ShiftKind
	Register uint32
}

func (op RegisterOperand) operand() {}

// String renders the operand in the assembler's style. The zero immediate
// shift encodings render as their true meaning: a zero LSL is no shift at
// all, a zero ROR is RRX and a zero LSR or ASR is a shift by 32.
func (op RegisterOperand) String() string {
	if amt, ok := op.ShiftOp.(ShiftAmount); ok && amt == 0 {
		switch op.Kind {
		case LogicalLeft:
			return fmt.Sprintf("R%d", op.Register)
		case RotateRight:
			return fmt.Sprintf("R%d, RRX", op.Register)
		default:
			return fmt.Sprintf("R%d, %s #32", op.Register, op.Kind)
		}
	}

	return fmt.Sprintf("R%d, %s %s", op.Register, op.Kind, op.ShiftOp)
}

// ImmediateOperand is the immediate form of the second operand: an 8-bit
// base rotated right by Shift bits. Shift is always even and no more than 30
// (the 4-bit rotate field doubled).
type ImmediateOperand struct {
	Base  uint32
	Shift uint32
}

func (op ImmediateOperand) operand() {}

func (op ImmediateOperand) String() string {
	return fmt.Sprintf("#%d", bits.RotateLeft32(op.Base, -int(op.Shift)))
}

// DecodeOperand extracts the second operand description from the low bits of
// a data-processing instruction word. Bit 25 of the word selects between the
// immediate and register forms; for the register form, bit 4 selects between
// shift-by-immediate and shift-by-register addressing.
//
// Decoding is total: every 32-bit pattern yields a well formed operand and
// re-decoding a word always yields the same description.
func DecodeOperand(word uint32) Operand {
	if word&0x02000000 == 0x02000000 {
		// 8-bit base in bits 0 to 7; rotate count in bits 8 to 11. the
		// rotation applied to the base is twice the field value
		return ImmediateOperand{
			Base:  word & 0xff,
			Shift: (word >> 8 & 0xf) * 2,
		}
	}

	var shiftOp ShiftOperator
	if word&0x10 == 0x10 {
		shiftOp = ShiftRegister(word >> 8 & 0xf)
	} else {
		shiftOp = ShiftAmount(word >> 7 & 0x1f)
	}

	return RegisterOperand{
		ShiftOp:  shiftOp,
		Kind:     ShiftKind(word >> 5 & 0x03),
		Register: word & 0xf,
	}
}
