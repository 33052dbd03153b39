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
	"encoding/binary"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gopheradvance/gopheradvance/curated"
)

// sentinal error messages for the disassembly package.
const (
	NotAWordStream = "disassembly: file is not a stream of 32-bit words (%d bytes)"
	BadWord        = "disassembly: not a 32-bit word (%s)"
)

// Disassembly is the result of disassembling a sequence of instruction
// words.
type Disassembly struct {
	Entries []Entry
}

// FromWords disassembles a block of instruction words, the first of which is
// located at origin.
func FromWords(origin uint32, words []uint32) *Disassembly {
	dsm := &Disassembly{
		Entries: make([]Entry, 0, len(words)),
	}

	addr := origin
	for _, w := range words {
		dsm.Entries = append(dsm.Entries, Decode(addr, w))
		addr += 4
	}

	return dsm
}

// FromFile disassembles a file of little-endian instruction words, the first
// of which is located at origin.
func FromFile(origin uint32, filename string) (*Disassembly, error) {
	d, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}

	if len(d)%4 != 0 {
		return nil, curated.Errorf(NotAWordStream, len(d))
	}

	words := make([]uint32, 0, len(d)/4)
	for i := 0; i < len(d); i += 4 {
		words = append(words, binary.LittleEndian.Uint32(d[i:]))
	}

	return FromWords(origin, words), nil
}

// ParseWord converts a hexadecimal string, with or without a 0x prefix, into
// an instruction word.
func ParseWord(s string) (uint32, error) {
	t := strings.TrimPrefix(strings.ToLower(s), "0x")
	w, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return 0, curated.Errorf(BadWord, s)
	}
	return uint32(w), nil
}

// Write the disassembly to io.Writer, one entry per line.
func (dsm *Disassembly) Write(output io.Writer) error {
	for _, e := range dsm.Entries {
		if _, err := io.WriteString(output, e.String()); err != nil {
			return curated.Errorf("disassembly: %v", err)
		}
		if _, err := io.WriteString(output, "\n"); err != nil {
			return curated.Errorf("disassembly: %v", err)
		}
	}
	return nil
}
