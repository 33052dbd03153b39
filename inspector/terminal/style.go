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

package terminal

// Style is used by the Output interface to decorate the output that is sent
// to it. A terminal implementation is free to interpret a style however it
// likes, including ignoring it completely.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back
	StyleEcho Style = iota

	// the prompt asking for input
	StylePrompt

	// the result of a decode or shift operation
	StyleResult

	// help information
	StyleHelp

	// information from the inspector about the inspector
	StyleFeedback

	// entries from the central log
	StyleLog

	// an error message
	StyleError
)

// IsPrompt returns true if the style is considered to be a prompt.
func (sty Style) IsPrompt() bool {
	return sty == StylePrompt
}
