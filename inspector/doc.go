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

// Package inspector provides an interactive console for probing the ALU
// decoder and the barrel shifter. It is a useful aid when checking how a
// particular instruction word will be interpreted, without having to set up
// a full emulation.
//
// Commands are flat and few:
//
//	DECODE <word>          decode an instruction word (a bare word works too)
//	SHIFT <op> <n> <value> run the barrel shifter (append C to set carry-in)
//	GRAPH <word> [file]    write a graphviz visualisation of a decoded word
//	LOG [n]                show the tail of the central log
//	HELP                   list the commands
//	QUIT                   leave the inspector
//
// The inspector interacts with the user through an implementation of the
// terminal.Terminal interface, found in the terminal sub-package.
package inspector
