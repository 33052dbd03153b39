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
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/disassembly"
	"github.com/gopheradvance/gopheradvance/hardware/arm7tdmi/alu"
	"github.com/gopheradvance/gopheradvance/inspector/terminal"
	"github.com/gopheradvance/gopheradvance/logger"
)

// default number of log entries shown by the LOG command.
const logTailLen = 10

// default file the GRAPH command writes to.
const graphFile = "inspector_graph.dot"

var helpText = []string{
	"DECODE <word>          decode an instruction word (a bare word works too)",
	"SHIFT <op> <n> <value> run the barrel shifter (append C to set carry-in)",
	"GRAPH <word> [file]    write a graphviz visualisation of a decoded word",
	"LOG [n]                show the tail of the central log",
	"HELP                   list the commands",
	"QUIT                   leave the inspector",
}

// parseInput splits user input into a command and its arguments and acts on
// the result. an empty input is not an error.
func (insp *Inspector) parseInput(input string) error {
	toks := strings.Fields(input)
	if len(toks) == 0 {
		return nil
	}

	cmd := strings.ToUpper(toks[0])
	args := toks[1:]

	switch cmd {
	case "QUIT", "EXIT":
		insp.running = false
		return nil

	case "HELP":
		for _, l := range helpText {
			insp.term.TermPrintLine(terminal.StyleHelp, l)
		}
		return nil

	case "DECODE":
		if len(args) != 1 {
			return curated.Errorf("DECODE: expects a single instruction word")
		}
		return insp.decode(args[0])

	case "SHIFT":
		return insp.shift(args)

	case "GRAPH":
		return insp.graph(args)

	case "LOG":
		return insp.logTail(args)
	}

	// a bare instruction word is a shorthand for DECODE
	if len(args) == 0 {
		if _, err := disassembly.ParseWord(toks[0]); err == nil {
			return insp.decode(toks[0])
		}
	}

	return curated.Errorf("unrecognised command (%s)", cmd)
}

func (insp *Inspector) decode(arg string) error {
	word, err := disassembly.ParseWord(arg)
	if err != nil {
		return err
	}

	e := disassembly.Decode(insp.address, word)
	insp.term.TermPrintLine(terminal.StyleResult, e.String())
	logger.Logf("inspector", "decoded %08x", word)

	insp.address += 4

	return nil
}

// shift runs the barrel shifter with the supplied arguments. arguments are,
// in order: the shift operation, the shift amount, the value to be shifted
// and, optionally, the letter C to indicate that carry-in is set.
func (insp *Inspector) shift(args []string) error {
	carry := false
	if len(args) == 4 && strings.ToUpper(args[3]) == "C" {
		carry = true
		args = args[:3]
	}
	if len(args) != 3 {
		return curated.Errorf("SHIFT: expects an operation, an amount and a value")
	}

	var kind alu.ShiftKind
	switch strings.ToUpper(args[0]) {
	case "LSL":
		kind = alu.LogicalLeft
	case "LSR":
		kind = alu.LogicalRight
	case "ASR":
		kind = alu.ArithmeticRight
	case "ROR":
		kind = alu.RotateRight
	default:
		return curated.Errorf("SHIFT: unrecognised shift operation (%s)", args[0])
	}

	amount, err := strconv.ParseUint(args[1], 0, 32)
	if err != nil {
		return curated.Errorf("SHIFT: not a valid amount (%s)", args[1])
	}

	value, err := strconv.ParseUint(args[2], 0, 32)
	if err != nil {
		return curated.Errorf("SHIFT: not a valid value (%s)", args[2])
	}

	r := alu.Shift(kind, uint32(amount), uint32(value), carry)
	insp.term.TermPrintLine(terminal.StyleResult,
		fmt.Sprintf("%s #%d of %08x -> %08x (carry %v)", kind, amount, value, r.Result, r.Carry))

	return nil
}

// graph decodes an instruction word and writes a graphviz (dot) rendering of
// the decoded structure. useful for seeing at a glance how the operand and
// shift fields nest.
func (insp *Inspector) graph(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return curated.Errorf("GRAPH: expects an instruction word and an optional filename")
	}

	word, err := disassembly.ParseWord(args[0])
	if err != nil {
		return err
	}

	filename := graphFile
	if len(args) == 2 {
		filename = args[1]
	}

	e := disassembly.Decode(insp.address, word)

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("GRAPH: %v", err)
	}
	defer f.Close()

	memviz.Map(f, &e)

	insp.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("written %s", filename))

	return nil
}

func (insp *Inspector) logTail(args []string) error {
	number := logTailLen
	if len(args) > 1 {
		return curated.Errorf("LOG: expects an optional number of entries")
	}
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return curated.Errorf("LOG: not a valid number of entries (%s)", args[0])
		}
		number = n
	}

	s := &strings.Builder{}
	logger.Tail(s, number)
	for _, l := range strings.Split(strings.TrimRight(s.String(), "\n"), "\n") {
		if l != "" {
			insp.term.TermPrintLine(terminal.StyleLog, l)
		}
	}

	return nil
}
