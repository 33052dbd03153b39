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

package inspector

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/inspector/terminal"
)

// buffer length for user input. long enough for any sensible command.
const inputBuffLen = 255

// Inspector is the interactive console around the ALU decoder.
type Inspector struct {
	term   terminal.Terminal
	events *terminal.ReadEvents

	// address used for the listing column of decode results. incremented by
	// four on every successful decode, like a program counter would be.
	address uint32

	running bool
}

// NewInspector is the preferred method of initialisation for the Inspector
// type. The terminal will be initialised on Run() and cleaned up when Run()
// returns.
func NewInspector(term terminal.Terminal) (*Inspector, error) {
	if term == nil {
		return nil, curated.Errorf("inspector: %v", "nil terminal")
	}

	insp := &Inspector{
		term: term,
		events: &terminal.ReadEvents{
			IntEvents: make(chan os.Signal, 1),
		},
	}

	return insp, nil
}

// Run is the main entry point for the inspector. It does not return until
// the user quits or an error occurs that the input loop cannot recover from.
func (insp *Inspector) Run() error {
	err := insp.term.Initialise()
	if err != nil {
		return curated.Errorf("inspector: %v", err)
	}
	defer insp.term.CleanUp()

	signal.Notify(insp.events.IntEvents, os.Interrupt)
	defer signal.Stop(insp.events.IntEvents)

	insp.term.TermPrintLine(terminal.StyleFeedback, "GopherAdvance ALU inspector. HELP for a list of commands.")

	insp.running = true
	input := make([]byte, inputBuffLen)

	for insp.running {
		prompt := terminal.Prompt{
			Content: fmt.Sprintf("%08x", insp.address),
			Style:   terminal.StylePrompt,
		}

		n, err := insp.term.TermRead(input, prompt, insp.events)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				insp.term.TermPrintLine(terminal.StyleFeedback, "use QUIT to leave the inspector")
				continue // for loop
			}
			return curated.Errorf("inspector: %v", err)
		}

		err = insp.parseInput(strings.TrimSpace(string(input[:n])))
		if err != nil {
			insp.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}
