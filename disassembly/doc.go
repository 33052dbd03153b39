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

// Package disassembly produces listings of ARM7TDMI data-processing code.
//
// Each 32-bit word is checked against the PSR transfer shapes first and only
// then decoded as a data-processing instruction, mirroring the order the
// instruction dispatcher uses. Words that are neither are listed as raw
// ".word" directives; full instruction set coverage is the dispatcher's
// business, not this package's.
//
// For quick disassemblies the FromFile() function can be used. The
// FromWords() function is useful when words have already arrived from
// somewhere else (the inspector for example).
package disassembly
