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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It looks like
// the Errorf() function in the fmt package, taking a formatting pattern and
// placeholder values, but the pattern doubles as the error's identity.
//
// The Is() function checks whether an error was created by Errorf() with a
// specific pattern:
//
//	e := curated.Errorf("inspector: %v", underlying)
//
//	if curated.Is(e, "inspector: %v") {
//		...
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the chain of wrapped errors. The IsAny() function answers
// whether the error is curated at all; an uncurated error is one the program
// did not expect.
//
// The Error() function for curated errors normalises the message chain,
// removing adjacent duplicate message parts. This keeps messages tidy when
// an error is wrapped by a function that adds the same context twice.
package curated
