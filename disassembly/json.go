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
	"io"

	"github.com/gopheradvance/gopheradvance/curated"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteJSON writes the disassembly to io.Writer as a JSON array of entries.
// Useful when the listing is destined for other tooling rather than human
// eyes.
func (dsm *Disassembly) WriteJSON(output io.Writer) error {
	d, err := json.MarshalIndent(dsm.Entries, "", "  ")
	if err != nil {
		return curated.Errorf("disassembly: %v", err)
	}

	if _, err := output.Write(d); err != nil {
		return curated.Errorf("disassembly: %v", err)
	}
	if _, err := io.WriteString(output, "\n"); err != nil {
		return curated.Errorf("disassembly: %v", err)
	}

	return nil
}
