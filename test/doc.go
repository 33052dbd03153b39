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

// Package test contains helper functions to remove common boilerplate from
// test code.
//
// The Equate() function compares like-typed variables for equality. Some
// types (eg. uint32) can be compared against int for convenience, saving the
// tests from casting literal numbers. See the Equate() documentation.
//
// The ExpectedFailure() and ExpectedSuccess() functions test for failure and
// success under generic conditions. Note that the nil type is considered a
// success. This is because of how errors work in Go: a nil error indicates
// that nothing went wrong, so ExpectedSuccess must accept it.
//
// The CompareWriter type implements the io.Writer interface and can be used
// to capture output for comparison with an expected string.
package test
