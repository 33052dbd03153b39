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

func TestLogicalOperation(t *testing.T) {
	op := alu.Decode(0x9)
	test.Equate(t, op.String(), "TEQ")
	test.Equate(t, op.Family() == alu.Logical, true)
}

func TestArithmeticOperation(t *testing.T) {
	op := alu.Decode(0x2)
	test.Equate(t, op.String(), "SUB")
	test.Equate(t, op.Family() == alu.Arithmetic, true)
}

func TestDecodeBijection(t *testing.T) {
	// every opcode value maps to a distinct mnemonic
	seen := make(map[string]uint32)
	for opcode := uint32(0x0); opcode <= 0xf; opcode++ {
		op := alu.Decode(opcode)
		s := op.String()
		if prev, ok := seen[s]; ok {
			t.Errorf("opcodes %#02x and %#02x both decode to %s", prev, opcode, s)
		}
		seen[s] = opcode
	}
	test.Equate(t, len(seen), 16)
}

func TestFamilyPartition(t *testing.T) {
	logical := 0
	arithmetic := 0
	for opcode := uint32(0x0); opcode <= 0xf; opcode++ {
		switch alu.Decode(opcode).Family() {
		case alu.Logical:
			logical++
		case alu.Arithmetic:
			arithmetic++
		}
	}
	test.Equate(t, logical, 8)
	test.Equate(t, arithmetic, 8)
}

func TestDecodeOutOfRange(t *testing.T) {
	// the opcode field is four bits wide. a wider value means the caller's
	// field extraction is broken and must not be silently accepted
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for out of range opcode")
		}
	}()
	_ = alu.Decode(0x10)
}
