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

// PSR identifies one of the two program status registers visible to a PSR
// transfer instruction. The package only names the register; the storage
// lives with the register file.
type PSR int

// List of valid PSR values.
const (
	CPSR PSR = iota
	SPSR
)

// SelectPSR converts the Ps/Pd bit of a PSR transfer instruction (bit 22). A
// set bit selects the saved status register of the current mode.
func SelectPSR(bit bool) PSR {
	if bit {
		return SPSR
	}
	return CPSR
}

func (p PSR) String() string {
	switch p {
	case CPSR:
		return "CPSR"
	case SPSR:
		return "SPSR"
	}

	panic(fmt.Sprintf("alu: not a valid psr selector (%d)", int(p)))
}

// PSRTransfer describes one of the three PSR transfer operations that hide
// inside the data-processing instruction space. MRS, MSR and MSRFlags are
// the only implementations.
type PSRTransfer interface {
	psrTransfer()
}

// MRS transfers the contents of a status register to a general register.
type MRS struct {
	Destination uint32
}

func (m MRS) psrTransfer() {}

func (m MRS) String() string {
	return fmt.Sprintf("MRS R%d", m.Destination)
}

// MSR transfers the contents of a general register to a status register.
type MSR struct {
	Source uint32
}

func (m MSR) psrTransfer() {}

func (m MSR) String() string {
	return fmt.Sprintf("MSR R%d", m.Source)
}

// MSRFlags transfers a register or immediate operand to the flag bits of a
// status register, leaving the control bits alone.
type MSRFlags struct {
	Operand Operand
}

func (m MSRFlags) psrTransfer() {}

func (m MSRFlags) String() string {
	return fmt.Sprintf("MSR %s", m.Operand)
}

// DecodePSRTransfer checks word against the three instruction shapes that
// encode a PSR transfer rather than a true data-processing operation. The
// patterns are tried in MRS, MSR, MSRFlags order, although no word can
// match more than one of them; the fixed fields do not overlap.
//
// The second return value is false if the word matches none of the three, in
// which case the word should be decoded as an ordinary data-processing
// instruction. Whether a non-matching word is a valid instruction at all is
// the dispatcher's concern, not this function's.
func DecodePSRTransfer(word uint32) (PSRTransfer, bool) {
	switch {
	case bitrange(word, 23, 27) == 0b00010 &&
		bitrange(word, 16, 21) == 0b001111 &&
		bitrange(word, 0, 11) == 0b000000000000:
		return MRS{Destination: bitrange(word, 12, 15)}, true

	case bitrange(word, 23, 27) == 0b00010 &&
		bitrange(word, 12, 21) == 0b1010011111 &&
		bitrange(word, 4, 11) == 0b00000000:
		return MSR{Source: bitrange(word, 0, 3)}, true

	case bitrange(word, 26, 27) == 0b00 &&
		bitrange(word, 23, 24) == 0b10 &&
		bitrange(word, 12, 21) == 0b1010001111:
		// the operand follows the second operand encoding of the
		// data-processing group, with bit 25 selecting the immediate form
		return MSRFlags{Operand: DecodeOperand(word)}, true
	}

	return nil, false
}

// bitrange extracts bits lo to hi (inclusive) of v, shifted down to the
// bottom of the result.
func bitrange(v uint32, lo, hi uint) uint32 {
	return v >> lo & (1<<(hi-lo+1) - 1)
}
