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

// Package alu implements decoding and execution semantics for the
// data-processing instruction group of the ARM7TDMI, along with the barrel
// shifter and the PSR transfer instructions that share the data-processing
// instruction space.
//
// Everything in the package is a pure function over its arguments. The
// package never touches the register file or the status register; it decodes
// instruction words into descriptions and computes shifter results from
// values handed to it. Resolving a register-shift description into an actual
// Shift() call, and folding an OpResult back into CPU state, is the business
// of the execution stage.
//
// References used in the implementation:
//
// ARM7TDMI Data Sheet (in particular "4.5 Data Processing"):
//
// https://www.dwedit.org/files/ARM7TDMI.pdf
//
// ARM Architecture Reference Manual:
//
// https://www.cs.miami.edu/home/burt/learning/Csc521.141/Documents/arm_arm.pdf
//
// GBATEK, for the encoding quirks that games actually rely on:
//
// https://problemkaputt.de/gbatek.htm
package alu
