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

package inspector_test

import (
	"strings"
	"testing"

	"github.com/gopheradvance/gopheradvance/inspector"
	"github.com/gopheradvance/gopheradvance/inspector/terminal"
	"github.com/gopheradvance/gopheradvance/test"
)

// mockTerm implements the terminal.Terminal interface. input is fed from a
// list of scripted lines and output is collected for inspection.
type mockTerm struct {
	script []string
	output []string
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermRead(buffer []byte, _ terminal.Prompt, _ *terminal.ReadEvents) (int, error) {
	if len(trm.script) == 0 {
		// the script should always end with QUIT but fail safely if it
		// doesn't
		n := copy(buffer, "QUIT")
		return n, nil
	}

	n := copy(buffer, trm.script[0])
	trm.script = trm.script[1:]
	return n, nil
}

func (trm *mockTerm) TermPrintLine(style terminal.Style, s string) {
	if style == terminal.StyleError {
		s = "* " + s
	}
	trm.output = append(trm.output, s)
}

// find returns true if any line of collected output contains s.
func (trm *mockTerm) find(s string) bool {
	for _, l := range trm.output {
		if strings.Contains(l, s) {
			return true
		}
	}
	return false
}

func TestInspector_decode(t *testing.T) {
	trm := &mockTerm{script: []string{
		"e0810002",
		"DECODE 0xe1a00101",
		"QUIT",
	}}

	insp, err := inspector.NewInspector(trm)
	test.ExpectedSuccess(t, err)

	err = insp.Run()
	test.ExpectedSuccess(t, err)

	// the bare word form and the explicit DECODE form both produce a listing
	// line. the second decode is four bytes along
	test.Equate(t, trm.find("00000000  e0810002  ADD  R0, R1, R2"), true)
	test.Equate(t, trm.find("00000004  e1a00101  MOV  R0, R1, LSL #2"), true)
}

func TestInspector_shift(t *testing.T) {
	trm := &mockTerm{script: []string{
		"SHIFT LSL 4 0xf0000000",
		"SHIFT ROR 0 0x00000001 C",
		"SHIFT XXX 1 2",
		"QUIT",
	}}

	insp, err := inspector.NewInspector(trm)
	test.ExpectedSuccess(t, err)

	err = insp.Run()
	test.ExpectedSuccess(t, err)

	test.Equate(t, trm.find("LSL #4 of f0000000 -> 00000000 (carry true)"), true)

	// ROR #0 with carry-in set is the RRX form
	test.Equate(t, trm.find("ROR #0 of 00000001 -> 80000000 (carry true)"), true)

	// unrecognised shift operations are reported as errors
	test.Equate(t, trm.find("* SHIFT: unrecognised shift operation (XXX)"), true)
}

func TestInspector_unrecognisedCommand(t *testing.T) {
	trm := &mockTerm{script: []string{
		"FOLDERol",
		"QUIT",
	}}

	insp, err := inspector.NewInspector(trm)
	test.ExpectedSuccess(t, err)

	err = insp.Run()
	test.ExpectedSuccess(t, err)

	test.Equate(t, trm.find("* unrecognised command (FOLDEROL)"), true)
}
