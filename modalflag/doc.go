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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) with different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Whereas with flag.FlagSet you call Parse() with the array
// of strings as the only argument, with modalflag you first call NewArgs()
// with the array of arguments and then Parse() with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// The reason for this difference is to allow effective parsing of modes.
// Modes are added with AddSubModes() before the call to Parse(); the mode
// found during parsing is then available with the Mode() function:
//
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("DISASM", "INSPECT")
//	p, err := md.Parse()
//
//	switch md.Mode() {
//	case "DISASM":
//		...
//	case "INSPECT":
//		...
//	}
//
// Sub-modes can themselves have flags and further sub-modes. Call NewMode()
// to start a new flag context and Parse() again to parse the remaining
// arguments in that context.
package modalflag
