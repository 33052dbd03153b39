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

// ShiftKind distinguishes the four shift types understood by the barrel
// shifter. The numeric value of a ShiftKind is the value of the 2-bit shift
// field of a register operand (bits 5 and 6).
type ShiftKind int

// List of valid ShiftKind values.
const (
	LogicalLeft ShiftKind = iota
	LogicalRight
	ArithmeticRight
	RotateRight
)

func (k ShiftKind) String() string {
	switch k {
	case LogicalLeft:
		return "LSL"
	case LogicalRight:
		return "LSR"
	case ArithmeticRight:
		return "ASR"
	case RotateRight:
		return "ROR"
	}

	panic(fmt.Sprintf("alu: not a valid shift kind (%d)", int(k)))
}

// OpResult is the outcome of a barrel shifter or ALU step.
//
// A raw shift populates only the Result and Carry fields. Overflow, Sign and
// Zero are meaningful only once the execution stage has combined the shifter
// output with the first operand; the execution stage must compute them fresh
// and never read them from a shift-only result.
type OpResult struct {
	Result   uint32
	Carry    bool
	Overflow bool
	Sign     bool
	Zero     bool
}

// Shift puts value through the barrel shifter. amount is the effective shift
// amount, already resolved from either the 5-bit immediate field or the
// bottom byte of a shift register. carry is the current value of the C flag;
// it is consumed by LSL#0 (passed through unchanged) and by RRX (rotated into
// bit 31).
//
// The amount=0 encodings are not interchangeable between shift types and
// must not be collapsed into a single no-op branch: LSL#0 leaves value and
// carry untouched; LSR#0 is the encoding for LSR#32; ASR#0 is the encoding
// for ASR#32; ROR#0 is the encoding for RRX. "4.5.2 Shifts" in "ARM7TDMI
// Data Sheet".
func Shift(kind ShiftKind, amount uint32, value uint32, carry bool) OpResult {
	switch kind {
	case LogicalLeft:
		// if amount == 0 then
		//		C flag = unaffected
		//		result = value
		// else if amount <= 32 then
		//		C flag = value[32 - amount]
		//		result = value Logical_Shift_Left amount
		// else
		//		C flag = 0
		//		result = 0
		switch {
		case amount == 0:
			return OpResult{Result: value, Carry: carry}
		case amount <= 32:
			// shift in 64 bits. a native 32 bit shift by 32 wraps around to
			// a shift by zero
			v := uint64(value)
			m := uint64(0x01) << (32 - amount)
			return OpResult{
				Result: uint32(v << amount),
				Carry:  v&m == m,
			}
		default:
			return OpResult{}
		}

	case LogicalRight:
		// if amount == 0 then
		//		C flag = value[31]		(the encoding for LSR#32)
		//		result = 0
		// else if amount <= 32 then
		//		C flag = value[amount - 1]
		//		result = value Logical_Shift_Right amount
		// else
		//		C flag = 0
		//		result = 0
		switch {
		case amount == 0:
			return OpResult{Carry: value&0x80000000 == 0x80000000}
		case amount <= 32:
			v := uint64(value)
			m := uint64(0x01) << (amount - 1)
			return OpResult{
				Result: uint32(v >> amount),
				Carry:  v&m == m,
			}
		default:
			return OpResult{}
		}

	case ArithmeticRight:
		// if amount >= 1 and amount <= 31 then
		//		C flag = value[amount - 1]
		//		result = value Arithmetic_Shift_Right amount
		// else	 /* amount == 0 encodes ASR#32; 32 and over act the same */
		//		C flag = value[31]
		//		result = value[31] replicated in every bit
		if amount >= 1 && amount <= 31 {
			m := uint32(0x01) << (amount - 1)
			return OpResult{
				Result: uint32(int32(value) >> amount),
				Carry:  value&m == m,
			}
		}
		return OpResult{
			Result: uint32(int32(value) >> 31),
			Carry:  value&0x80000000 == 0x80000000,
		}

	case RotateRight:
		// ROR by n where n is greater than 32 gives the same result and
		// carry as ROR by n-32. reduce before checking for the special
		// encodings, taking care that a multiple of 32 reduces to ROR#32 and
		// not to RRX
		if amount > 32 {
			amount %= 32
			if amount == 0 {
				amount = 32
			}
		}

		switch {
		case amount == 0:
			// ROR#0 encodes RRX: a one bit rotate through the carry flag
			r := value >> 1
			if carry {
				r |= 0x80000000
			}
			return OpResult{Result: r, Carry: value&0x01 == 0x01}
		case amount < 32:
			m := uint32(0x01) << (amount - 1)
			return OpResult{
				Result: bits.RotateLeft32(value, -int(amount)),
				Carry:  value&m == m,
			}
		default:
			// ROR#32 leaves value unchanged and sets carry to bit 31
			return OpResult{Result: value, Carry: value&0x80000000 == 0x80000000}
		}
	}

	panic(fmt.Sprintf("alu: not a valid shift kind (%d)", int(kind)))
}
