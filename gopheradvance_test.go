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

package main_test

import (
	"testing"

	"github.com/gopheradvance/gopheradvance/disassembly"
)

func BenchmarkDecode(b *testing.B) {
	// a representative spread of data-processing and PSR transfer words
	words := []uint32{
		0xe0810002, // ADD R0, R1, R2
		0xe1a00101, // MOV R0, R1, LSL #2
		0xe3a00000, // MOV R0, #0
		0xe1510002, // CMP R1, R2
		0xe10f3000, // MRS R3, CPSR
		0xe129f009, // MSR CPSR, R9
		0xe328f4ff, // MSR CPSR_flg, #0xff000000
	}

	for n := 0; n < b.N; n++ {
		for i, w := range words {
			_ = disassembly.Decode(uint32(i*4), w)
		}
	}
}
